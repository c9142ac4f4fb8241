package main

import (
	"log"
	"os"

	clilib "github.com/urfave/cli/v2"
	wrcli "github.com/wildrydes/wildrydes/cli"
)

func newApp() *clilib.App {
	return &clilib.App{
		Name:    "wildrydes",
		Usage:   "Serve the Wild Rydes App greeting",
		Version: wrcli.Version,
		Flags: []clilib.Flag{
			&clilib.StringFlag{Name: "host", Usage: "interface to bind (default from config, else 0.0.0.0)"},
			&clilib.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "port to bind (default from config, else 80)"},
			&clilib.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to the YAML config file"},
		},
		Action: func(c *clilib.Context) error {
			return wrcli.DefaultAction(c)
		},
		Commands: []*clilib.Command{
			wrcli.ServeCommand,
			wrcli.DevCommand,
			wrcli.InfoCommand,
			wrcli.CheckCommand,
			wrcli.VersionCommand,
		},
	}
}

func runApp(args []string) error {
	return newApp().Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}

package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/wildrydes/wildrydes"
	"github.com/wildrydes/wildrydes/core"
)

func serverFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "host", Usage: "interface to bind (default from config, else 0.0.0.0)"},
		&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "port to bind (default from config, else 80)"},
		configFlag(),
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: core.DefaultConfigPath, Usage: "path to the YAML config file"}
}

func runtimeConfig(c *cli.Context, env string) wildrydes.RuntimeConfig {
	cfg := wildrydes.RuntimeConfig{
		Env:        env,
		ConfigPath: core.DefaultConfigPath,
	}
	if c.IsSet("host") {
		cfg.Host = c.String("host")
	}
	if c.IsSet("port") {
		cfg.Port = c.Int("port")
	}
	if c.IsSet("config") {
		cfg.ConfigPath = c.String("config")
	}
	return cfg
}

// DefaultAction runs when the binary is given no command, serving exactly
// as "serve" does with no flags.
var DefaultAction = func(c *cli.Context) error {
	if c.Args().Len() > 0 {
		return fmt.Errorf("unknown command %q", c.Args().First())
	}
	return wildrydes.Start(runtimeConfig(c, "prod"))
}

var ServeCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start the Wild Rydes App (default: 0.0.0.0:80)",
	Flags: serverFlags(),
	Action: func(c *cli.Context) error {
		return wildrydes.Start(runtimeConfig(c, "prod"))
	},
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Start in dev mode (debug logs and headers, live reload, config watching)",
	Flags: serverFlags(),
	Action: func(c *cli.Context) error {
		return wildrydes.Start(runtimeConfig(c, "dev"))
	},
}

package cli

import (
	"fmt"
	"os"

	"github.com/segmentio/encoding/json"
	"github.com/urfave/cli/v2"
	"github.com/wildrydes/wildrydes"
	"github.com/wildrydes/wildrydes/core"
)

type routeInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Name   string `json:"name"`
}

type infoReport struct {
	Addr   string      `json:"addr"`
	Config core.Config `json:"config"`
	Routes []routeInfo `json:"routes"`
}

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print the resolved config and routing table",
	Flags: []cli.Flag{
		configFlag(),
		&cli.BoolFlag{Name: "json", Usage: "emit JSON instead of text"},
	},
	Action: func(c *cli.Context) error {
		config := wildrydes.ResolveConfig(runtimeConfig(c, "prod"))
		router := core.NewRouter(config, core.RuntimeContext{Env: "prod"})

		report := infoReport{Addr: config.Addr(), Config: config}
		for _, route := range router.Routes() {
			report.Routes = append(report.Routes, routeInfo{
				Method: route.Method,
				Path:   route.Path,
				Name:   route.Name,
			})
		}

		if c.Bool("json") {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode info: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(data))
			return nil
		}

		fmt.Println("🌐 Listen Address:", report.Addr)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println("🔁 Debug Logs Enabled:", config.DebugLogs)
		fmt.Println()
		fmt.Println("🗂️  Routes Found:", len(report.Routes))
		for _, route := range report.Routes {
			fmt.Printf("   %s %s (%s)\n", route.Method, route.Path, route.Name)
		}
		return nil
	},
}

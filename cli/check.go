package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/urfave/cli/v2"
	"github.com/wildrydes/wildrydes/core"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate the config file",
	Flags: []cli.Flag{configFlag()},
	Action: func(c *cli.Context) error {
		path := c.String("config")

		cfg, err := core.ReadConfig(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Println("🧼 No config file at", path, "- defaults apply:", core.DefaultConfig().Addr())
				return nil
			}
			fmt.Printf("❌ %s → %v\n", path, err)
			return cli.Exit("config check failed", 1)
		}

		fmt.Printf("✅ %s → %s\n", path, cfg.Addr())
		return nil
	},
}

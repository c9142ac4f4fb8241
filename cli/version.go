package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Set with -ldflags "-X github.com/wildrydes/wildrydes/cli.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func BuildInfo() string {
	return fmt.Sprintf("wildrydes %s (commit=%s, date=%s)", Version, Commit, Date)
}

var VersionCommand = &cli.Command{
	Name:  "version",
	Usage: "Print build information",
	Action: func(c *cli.Context) error {
		fmt.Println(BuildInfo())
		return nil
	},
}

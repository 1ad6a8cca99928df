package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/sebamiro/geth"
	"github.com/sebamiro/geth/version"
)

func init() {
	VersionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show protocol and library versions")
}

// VersionCmd ...
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Version:", version.VersionWithMeta)
		if version.Commit != "" {
			fmt.Fprintln(out, "Git Commit:", version.Commit)
		}
		if version.Date != "" {
			fmt.Fprintln(out, "Git Commit Date:", version.Date)
		}
		if verbose {
			fmt.Fprintln(out, "JSON-RPC Version:", geth.DefaultVersion)
			fmt.Fprintln(out, "Catalogued Methods:", len(geth.Methods()))
		}
		fmt.Fprintln(out, "Architecture:", runtime.GOARCH)
		fmt.Fprintln(out, "Go Version:", runtime.Version())
		fmt.Fprintln(out, "Operating System:", runtime.GOOS)
	},
}

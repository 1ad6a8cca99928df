package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sebamiro/geth"
)

// MethodsCmd lists the catalogued methods.
var MethodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the catalogued methods and how their results are decoded",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, method := range geth.Methods() {
			policy, _ := geth.PolicyOf(method)
			fmt.Fprintf(w, "%s\t%s\n", method, policy)
		}
		return w.Flush()
	},
}

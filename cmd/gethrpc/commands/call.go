package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sebamiro/geth"
	"github.com/sebamiro/geth/flags"
)

// CallCmd sends one request and prints the post-processed result.
var CallCmd = &cobra.Command{
	Use:   "call <method> [param...]",
	Short: "Call a JSON-RPC method",
	Long: `Call a JSON-RPC method and print its result as JSON.

Every param is parsed as JSON and sent as a string when it is not valid JSON,
so 0x2a and latest need no quoting. Quantities are printed as integers.`,
	Example: `  gethrpc call eth_blockNumber
  gethrpc call eth_getBalance 0x407d73d8a49eeb85d32cf465507dd71d507100c1 latest
  gethrpc call eth_getBlockByNumber 0x1b4 false --rpc.endpoint 10.0.0.5:8545`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		method := args[0]
		if _, ok := geth.PolicyOf(method); !ok {
			logger.Info("method is not catalogued, printing the raw result", "method", method)
		}
		result, err := client.Dispatch(cmd.Context(), method, parseParams(args[1:])...)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		return printJSON(cmd.OutOrStdout(), result, viper.GetBool(flags.Output_Indent))
	},
}

func init() {
	CallCmd.Flags().Bool(flags.Output_Indent, false, "indent the printed result")
}

// parseParams turns command line params into JSON values.
func parseParams(args []string) []any {
	params := make([]any, 0, len(args))
	for _, arg := range args {
		if !json.Valid([]byte(arg)) {
			params = append(params, arg)
			continue
		}
		dec := json.NewDecoder(strings.NewReader(arg))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			params = append(params, arg)
			continue
		}
		params = append(params, v)
	}
	return params
}

func printJSON(w io.Writer, v any, indent bool) error {
	out, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if indent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", "  "); err != nil {
			return err
		}
		out = buf.Bytes()
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

package commands

import (
	"os"

	"github.com/cometbft/cometbft/libs/cli"
	cmtflags "github.com/cometbft/cometbft/libs/cli/flags"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sebamiro/geth"
	"github.com/sebamiro/geth/flags"
)

var (
	logger  = log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	verbose bool
)

// RootCmd is the root command for gethrpc. It is called once in the main
// function.
var RootCmd = &cobra.Command{
	Use:          "gethrpc",
	Short:        "Call the JSON-RPC API of a geth node",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		viper.AddConfigPath(".")
		if viper.GetBool(flags.Trace) {
			logger = log.NewTracingLogger(logger)
		}

		logger, err = cmtflags.ParseLogLevel(viper.GetString(flags.Log_Level), logger.With("module", "main"), cmd.Flag(flags.Log_Level).DefValue)
		return err
	},
}

func init() {
	RootCmd.PersistentFlags().String(flags.Log_Level, "info", "level of logging, can be debug, info, error, none or comma-separated list of module:level pairs with an optional *:level pair (* means all other modules). e.g. 'rpc:debug,*:error'")
	RootCmd.PersistentFlags().String(flags.RPC_Endpoint, "", "node address as host:port, overrides --rpc.host and --rpc.port")
	RootCmd.PersistentFlags().String(flags.RPC_Host, geth.DefaultHost, "node host")
	RootCmd.PersistentFlags().Int(flags.RPC_Port, geth.DefaultPort, "node port")
	RootCmd.PersistentFlags().String(flags.RPC_Version, geth.DefaultVersion, "JSON-RPC version sent in requests")
	RootCmd.PersistentFlags().Duration(flags.RPC_Timeout, 0, "timeout of a call, 0 for none")
	RootCmd.PersistentFlags().String(flags.RPC_Transport, transportHTTP, "http transport, can be http or fasthttp")
	RootCmd.AddCommand(
		CallCmd,
		MethodsCmd,
		VersionCmd,
		cli.NewCompletionCmd(RootCmd, true),
	)
}

package main

import (
	"os"
	"path/filepath"

	"github.com/cometbft/cometbft/libs/cli"

	"github.com/sebamiro/geth/cmd/gethrpc/commands"
)

func main() {
	cmd := cli.PrepareBaseCmd(commands.RootCmd, "GETHRPC", os.ExpandEnv(filepath.Join("$HOME", ".gethrpc")))

	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}

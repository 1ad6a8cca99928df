package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/sebamiro/geth"
	"github.com/sebamiro/geth/flags"
)

const (
	transportHTTP     = "http"
	transportFastHTTP = "fasthttp"
)

// targetFromConfig reads the node options from flags, env and config file.
func targetFromConfig() geth.Options {
	target := geth.Options{
		Version: viper.GetString(flags.RPC_Version),
		Host:    viper.GetString(flags.RPC_Host),
		Port:    viper.GetInt(flags.RPC_Port),
		Timeout: viper.GetDuration(flags.RPC_Timeout),
	}
	if endpoint := viper.GetString(flags.RPC_Endpoint); endpoint != "" {
		o := geth.Resolve(geth.HostPort(endpoint))
		target.Host, target.Port = o.Host, o.Port
	}
	return target
}

func newClient() (*geth.Client, error) {
	opts := []geth.Option{geth.WithLogger(logger.With("module", "rpc"))}
	switch transport := viper.GetString(flags.RPC_Transport); transport {
	case "", transportHTTP:
	case transportFastHTTP:
		opts = append(opts, geth.WithTransport(func() geth.HTTP { return geth.NewFastHTTP() }))
	default:
		return nil, fmt.Errorf("unknown transport %q, use %s or %s", transport, transportHTTP, transportFastHTTP)
	}
	client := geth.New(targetFromConfig(), opts...)
	logger.Debug("using node", "address", client.Address())
	return client, nil
}

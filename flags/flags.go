package flags

const (
	Home  = "home"
	Trace = "trace"

	Log_Level = "log.level"

	RPC_Endpoint  = "rpc.endpoint"
	RPC_Host      = "rpc.host"
	RPC_Port      = "rpc.port"
	RPC_Version   = "rpc.version"
	RPC_Timeout   = "rpc.timeout"
	RPC_Transport = "rpc.transport"

	Output_Indent = "indent"
)

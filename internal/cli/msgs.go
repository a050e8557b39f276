package cli

import (
	_ "embed"
	"strings"
)

const (
	MsgRootShort    = "Run a batch component action"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgActionsShort = "List the actions this component exposes"

	MsgVersionFormat = "kbcomponent version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDataDir = "Data directory holding the configuration and state (default $KBC_DATADIR or /data)"
	MsgFlagAction  = "Action to execute, overriding the configuration"
	MsgFlagFormat  = "Output format: auto, term, text, json or yaml"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")
)

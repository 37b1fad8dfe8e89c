package omni

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Per-repository development environment bootstrap"
	MsgUpShort   = "Set up the repository environment"
	MsgDownShort = "Tear down the repository environment"

	// Status messages
	MsgNothingToDo = "No %s configuration found, nothing to do."
	MsgStopped     = "Stopped at operation %d (%s)"

	// Error messages
	MsgErrTooManyArgs = "too many arguments"
	MsgErrNoCommand   = "no command specified"
	MsgErrInvalidMode = "invalid %s value %q"

	// Flag descriptions
	MsgFlagVerbose          = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagUpdateUserConfig = "Whether paths declared by the repository are imported into the user configuration (yes/ask/no)"
)

// Flag names
const (
	FlagUpdateUserConfig = "update-user-config"
	FlagHandlePath       = "handle-path"
	FlagComplete         = "complete"
)

// completionFlags is printed by --complete, one per line
var completionFlags = []string{
	"--" + FlagHandlePath,
	"--help",
	"--" + FlagUpdateUserConfig,
	"-h",
}

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/up-long.txt
	msgUpLongRaw string
	MsgUpLong    = strings.TrimSpace(msgUpLongRaw)

	//go:embed msgs/up-example.txt
	msgUpExampleRaw string
	MsgUpExample    = strings.TrimRight(msgUpExampleRaw, "\n")
)

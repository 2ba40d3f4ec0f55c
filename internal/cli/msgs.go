package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Operation descriptions
	MsgRootShort       = "Command-line client for AnimatedLEDStrip servers"
	MsgAnimationsShort = "List the animations the server can run"
	MsgRunningShort    = "List the animations currently running"
	MsgInfoShort       = "Show information about the LED strip"
	MsgStartShort      = "Start an animation"
	MsgEndShort        = "End a running animation"
	MsgConfigShort     = "Show or create the configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgVersionFormat = "ledctl version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"
	MsgConfigWritten = "Wrote %s\n"

	// Errors
	MsgErrNoOperation    = "Need to specify an operation"
	MsgErrNoServer       = "Server IP must be set"
	MsgErrNoPort         = "Server port must be set"
	MsgErrNoID           = "Animation ID must be set"
	MsgErrFlagNotAllowed = "Flag %s not allowed for operation %s"

	// Error report
	MsgReportInvalid    = "Invalid %s:"
	MsgReportAmbiguous  = "Ambiguous %s:"
	MsgReportFlag       = "Flag"
	MsgReportNotAllowed = "not allowed for operation"
	MsgReportValid      = "Valid options:"
	MsgReportCouldBe    = "Could be any of:"
	MsgReportAllowed    = "Flags allowed here:"
	MsgReportError      = "Error:"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Configuration file (default $XDG_CONFIG_HOME/ledctl/config.toml)"
	MsgFlagNoColor    = "Disable colored output"
	MsgFlagWait       = "How long to listen for server responses"
	MsgFlagServer     = "Server IP or host name"
	MsgFlagPort       = "Server port"
	MsgFlagFormat     = "Format string for each printed item (see 'ledctl help tokens')"
	MsgFlagAnimation  = "Name of the animation to start"
	MsgFlagColor      = "Comma separated colors for one color container; repeat for more"
	MsgFlagCenter     = "Center pixel of the animation"
	MsgFlagContinuous = "Whether the animation repeats (continuous, noncontinuous, default)"
	MsgFlagDelay      = "Delay between animation frames, in milliseconds"
	MsgFlagDelayMod   = "Multiplier applied to the delay"
	MsgFlagDirection  = "Direction of the animation (forward, backward)"
	MsgFlagDistance   = "Distance the animation travels"
	MsgFlagID         = "Animation ID"
	MsgFlagSection    = "Section of the strip to run on"
	MsgFlagSpacing    = "Spacing between repeated patterns"
	MsgFlagInit       = "Write a commented default configuration file"
	MsgFlagYAML       = "Print the configuration as YAML instead of TOML"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/start-long.txt
	msgStartLongRaw string
	MsgStartLong    = strings.TrimSpace(msgStartLongRaw)

	//go:embed msgs/start-example.txt
	msgStartExampleRaw string
	MsgStartExample    = strings.TrimSpace(msgStartExampleRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimSpace(msgListExampleRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

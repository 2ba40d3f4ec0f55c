package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/ledctl/pkg/errors"
	"github.com/arthur-debert/ledctl/pkg/resolve"
)

// Operation names. They double as cobra command names.
const (
	OpAnimations = "animations"
	OpCompletion = "completion"
	OpConfig     = "config"
	OpEnd        = "end"
	OpHelp       = "help"
	OpInfo       = "info"
	OpRunning    = "running"
	OpStart      = "start"
	OpVersion    = "version"
)

// OperationCatalog is matched, case-sensitively, against the first argument.
var OperationCatalog = resolve.NewCatalog("operation",
	OpAnimations,
	OpCompletion,
	OpConfig,
	OpEnd,
	OpHelp,
	OpInfo,
	OpRunning,
	OpStart,
	OpVersion,
)

// Flag names.
const (
	FlagVerbose    = "verbose"
	FlagConfig     = "config"
	FlagNoColor    = "no-color"
	FlagWait       = "wait"
	FlagServer     = "server"
	FlagPort       = "port"
	FlagFormat     = "format"
	FlagAnimation  = "animation"
	FlagColor      = "color"
	FlagCenter     = "center"
	FlagContinuous = "continuous"
	FlagDelay      = "delay"
	FlagDelayMod   = "delayMod"
	FlagDirection  = "direction"
	FlagDistance   = "distance"
	FlagID         = "id"
	FlagSection    = "section"
	FlagSpacing    = "spacing"
	FlagInit       = "init"
	FlagYAML       = "yaml"
)

var networkOps = []string{OpAnimations, OpRunning, OpInfo, OpStart, OpEnd}

// flagOperations lists the operations each flag may be set for. Flags not
// listed here are accepted everywhere.
var flagOperations = map[string][]string{
	FlagServer:     networkOps,
	FlagPort:       networkOps,
	FlagWait:       networkOps,
	FlagFormat:     {OpAnimations, OpRunning, OpInfo},
	FlagAnimation:  {OpStart},
	FlagColor:      {OpStart},
	FlagCenter:     {OpStart},
	FlagContinuous: {OpStart},
	FlagDelay:      {OpStart},
	FlagDelayMod:   {OpStart},
	FlagDirection:  {OpStart},
	FlagDistance:   {OpStart},
	FlagSection:    {OpStart},
	FlagSpacing:    {OpStart},
	FlagID:         {OpStart, OpEnd},
	FlagInit:       {OpConfig},
	FlagYAML:       {OpConfig},
}

// isNetworkOp reports whether op talks to the server.
func isNetworkOp(op string) bool {
	for _, n := range networkOps {
		if n == op {
			return true
		}
	}
	return false
}

// resolveOperation replaces an abbreviated operation in args[0] with its
// full name. Help flags and cobra's completion requests pass through.
func resolveOperation(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, MsgErrNoOperation)
	}

	first := args[0]
	switch first {
	case "-h", "--help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return args, nil
	}
	if strings.HasPrefix(first, "-") {
		return nil, errors.New(errors.ErrInvalidInput, MsgErrNoOperation)
	}

	opt, err := resolve.Resolve(first, OperationCatalog)
	if err != nil {
		return nil, err
	}

	resolved := make([]string, len(args))
	copy(resolved, args)
	resolved[0] = opt.Name
	return resolved, nil
}

// allowedFlags returns the restricted flags op accepts, sorted.
func allowedFlags(op string) []string {
	var allowed []string
	for flag, ops := range flagOperations {
		for _, o := range ops {
			if o == op {
				allowed = append(allowed, "--"+flag)
				break
			}
		}
	}
	sort.Strings(allowed)
	return allowed
}

// checkFlags rejects the first flag set on the command line that op does
// not accept.
func checkFlags(op string, flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		ops, restricted := flagOperations[f.Name]
		if !restricted {
			return
		}
		for _, o := range ops {
			if o == op {
				return
			}
		}
		err = errors.Newf(errors.ErrDisallowedFlag, MsgErrFlagNotAllowed, f.Name, op).
			WithDetail(errors.DetailFlag, f.Name).
			WithDetail(errors.DetailOp, op).
			WithDetail(errors.DetailOptions, allowedFlags(op))
	})
	return err
}

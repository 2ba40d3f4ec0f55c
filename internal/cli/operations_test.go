package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ledctl/pkg/errors"
)

func TestResolveOperation(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     string
		wantCode errors.ErrorCode
		options  []string
	}{
		{name: "full name", args: []string{"start"}, want: "start"},
		{name: "single letter", args: []string{"s"}, want: "start"},
		{name: "running", args: []string{"r"}, want: "running"},
		{name: "end", args: []string{"e"}, want: "end"},
		{name: "info", args: []string{"i"}, want: "info"},
		{name: "help", args: []string{"h"}, want: "help"},
		{name: "version", args: []string{"v"}, want: "version"},
		{name: "config", args: []string{"con"}, want: "config"},
		{name: "completion", args: []string{"com"}, want: "completion"},
		{name: "animations", args: []string{"anim"}, want: "animations"},
		{
			name:     "ambiguous",
			args:     []string{"c"},
			wantCode: errors.ErrAmbiguousReference,
			options:  []string{"completion", "config"},
		},
		{
			name:     "ambiguous longer prefix",
			args:     []string{"co"},
			wantCode: errors.ErrAmbiguousReference,
			options:  []string{"completion", "config"},
		},
		{
			name:     "unknown",
			args:     []string{"stop"},
			wantCode: errors.ErrUnresolvedReference,
			options:  OperationCatalog.Names(),
		},
		{name: "case sensitive", args: []string{"Start"}, wantCode: errors.ErrUnresolvedReference},
		{name: "longer than name", args: []string{"starts"}, wantCode: errors.ErrUnresolvedReference},
		{name: "empty", args: []string{""}, wantCode: errors.ErrUnresolvedReference},
		{name: "no arguments", args: nil, wantCode: errors.ErrInvalidInput},
		{name: "flag first", args: []string{"--server", "x", "start"}, wantCode: errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveOperation(tt.args)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
				if tt.options != nil {
					assert.Equal(t, tt.options, errors.DetailStrings(err, errors.DetailOptions))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestResolveOperation_KeepsRemainingArgs(t *testing.T) {
	args := []string{"s", "--animation", "Wipe"}
	got, err := resolveOperation(args)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "--animation", "Wipe"}, got)
	assert.Equal(t, "s", args[0], "input slice must not change")
}

func TestResolveOperation_PassThrough(t *testing.T) {
	for _, first := range []string{"--help", "-h", "__complete"} {
		got, err := resolveOperation([]string{first, "x"})
		require.NoError(t, err)
		assert.Equal(t, first, got[0])
	}
}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	(&flagValues{}).bind(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestCheckFlags(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		args    []string
		badFlag string
	}{
		{name: "server for listing", op: OpAnimations, args: []string{"--server", "h", "--port", "5"}},
		{name: "format for running", op: OpRunning, args: []string{"--format", "%i"}},
		{name: "format for info", op: OpInfo, args: []string{"--format", "%n"}},
		{name: "start parameters", op: OpStart, args: []string{
			"--animation", "a", "--color", "1", "--center", "2", "--continuous", "t",
			"--delay", "3", "--delayMod", "1.5", "--direction", "b", "--distance", "4",
			"--id", "x", "--section", "s", "--spacing", "5",
		}},
		{name: "id for end", op: OpEnd, args: []string{"--id", "x"}},
		{name: "ambient flags anywhere", op: OpVersion, args: []string{"-vv", "--no-color", "--config", "c.toml"}},
		{name: "config flags", op: OpConfig, args: []string{"--init", "--yaml"}},
		{name: "format for start", op: OpStart, args: []string{"--format", "%n"}, badFlag: FlagFormat},
		{name: "animation for running", op: OpRunning, args: []string{"--animation", "a"}, badFlag: FlagAnimation},
		{name: "id for animations", op: OpAnimations, args: []string{"--id", "1"}, badFlag: FlagID},
		{name: "server for config", op: OpConfig, args: []string{"--server", "h"}, badFlag: FlagServer},
		{name: "wait for help", op: OpHelp, args: []string{"--wait", "2s"}, badFlag: FlagWait},
		{name: "init for start", op: OpStart, args: []string{"--init"}, badFlag: FlagInit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkFlags(tt.op, newFlagSet(t, tt.args...))
			if tt.badFlag == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrDisallowedFlag))
			assert.Equal(t, tt.badFlag, errors.DetailString(err, errors.DetailFlag))
			assert.Equal(t, tt.op, errors.DetailString(err, errors.DetailOp))
			assert.Contains(t, err.Error(), "Flag "+tt.badFlag+" not allowed for operation "+tt.op)
		})
	}
}

func TestAllowedFlags(t *testing.T) {
	assert.Equal(t, []string{"--format", "--port", "--server", "--wait"}, allowedFlags(OpRunning))
	assert.Equal(t, []string{"--id", "--port", "--server", "--wait"}, allowedFlags(OpEnd))
	assert.Equal(t, []string{"--init", "--yaml"}, allowedFlags(OpConfig))
	assert.Empty(t, allowedFlags(OpVersion))
}

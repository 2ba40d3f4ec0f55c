package logging

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			var console bytes.Buffer

			SetupLoggerWithOptions(Options{
				Verbosity: tt.verbosity,
				Console:   &console,
				NoColor:   true,
				Fs:        fs,
				LogFile:   "/state/ledctl/ledctl.log",
			})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			exists, err := afero.Exists(fs, "/state/ledctl/ledctl.log")
			require.NoError(t, err)
			assert.True(t, exists, "log file should be created")
		})
	}
}

func TestSetupLogger_WritesToConsoleAndFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	var console bytes.Buffer

	SetupLoggerWithOptions(Options{
		Verbosity: 1,
		Console:   &console,
		NoColor:   true,
		Fs:        fs,
		LogFile:   "/logs/ledctl.log",
	})
	log.Info().Str("server", "10.0.0.1").Msg("connecting")

	assert.Contains(t, console.String(), "connecting")
	assert.Contains(t, console.String(), "server=10.0.0.1")

	content, err := afero.ReadFile(fs, "/logs/ledctl.log")
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"connecting"`)
}

func TestSetupLogger_NoFs(t *testing.T) {
	var console bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 0, Console: &console, NoColor: true})

	log.Warn().Msg("console only")
	assert.Contains(t, console.String(), "console only")
}

type readOnlyFs struct {
	afero.Fs
}

func (readOnlyFs) MkdirAll(string, os.FileMode) error { return errors.New("read-only") }

func TestSetupLogger_FileFailureFallsBackToConsole(t *testing.T) {
	var console bytes.Buffer
	SetupLoggerWithOptions(Options{
		Verbosity: 0,
		Console:   &console,
		NoColor:   true,
		Fs:        readOnlyFs{afero.NewMemMapFs()},
		LogFile:   "/nope/ledctl.log",
	})

	assert.Contains(t, console.String(), "Failed to create log file")
}

func TestGetLogFilePath(t *testing.T) {
	got := getLogFilePath()
	assert.True(t, strings.HasSuffix(got, "ledctl/ledctl.log") || strings.HasSuffix(got, `ledctl\ledctl.log`), got)
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("sender")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"sender"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	done := LogOperationStart(logger, "start")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"duration"`)
}

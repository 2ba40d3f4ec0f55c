package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/ledctl/pkg/cobrax/topics"
	"github.com/arthur-debert/ledctl/pkg/logging"
	"github.com/arthur-debert/ledctl/pkg/style"
)

// Command groups shown in the usage output.
const (
	groupServer = "server"
	groupClient = "client"
)

// App carries what the operations read from and write to.
type App struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Fs        afero.Fs
	NewClient ClientFactory
}

// NewApp returns an App wired to the process streams, the OS filesystem and
// real server connections.
func NewApp() *App {
	return &App{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Fs:        afero.NewOsFs(),
		NewClient: newSenderClient,
	}
}

// NewRootCmd returns the command tree, for documentation and completion
// generators.
func NewRootCmd() *cobra.Command {
	rootCmd, _ := NewApp().newRootCmd()
	return rootCmd
}

// Run executes one ledctl invocation and returns the process exit status.
func (a *App) Run(ctx context.Context, args []string) int {
	// Help texts are styled when the command tree is built
	if hasArg(args, "--"+FlagNoColor) {
		style.SetColorEnabled(false)
	}
	rootCmd, flags := a.newRootCmd()

	resolved, err := resolveOperation(args)
	if err != nil {
		a.report(err, hasArg(args, "--"+FlagNoColor))
		return 1
	}

	rootCmd.SetArgs(resolved)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Debug().Err(err).Msg("Operation failed")
		a.report(err, flags.noColor)
		return 1
	}
	return 0
}

func (a *App) report(err error, noColor bool) {
	_, _ = fmt.Fprint(a.Stderr, formatError(err, rendererFor(a.Stderr, noColor)))
}

func (a *App) newRootCmd() (*cobra.Command, *flagValues) {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	flags := &flagValues{}
	topicRenderer := topics.NewGlamourRenderer(!stdoutIsTerminal())

	rootCmd := &cobra.Command{
		Use:   "ledctl",
		Short: MsgRootShort,
		Long:  style.Render(MsgRootLong),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.noColor {
				style.SetColorEnabled(false)
				topicRenderer.NoColor = true
			}
			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: flags.verbosity,
				Console:   a.Stderr,
				NoColor:   flags.noColor || !isColorTerminal(a.Stderr),
				Fs:        a.Fs,
			})
			log.Debug().Str("operation", cmd.Name()).Msg("Operation started")

			return checkFlags(cmd.Name(), cmd.Flags())
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags.bind(rootCmd.PersistentFlags())

	rootCmd.SetOut(a.Stdout)
	rootCmd.SetErr(a.Stderr)

	rootCmd.AddGroup(&cobra.Group{ID: groupServer, Title: "OPERATIONS:"})
	rootCmd.AddGroup(&cobra.Group{ID: groupClient, Title: "CLIENT:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newAnimationsCmd(flags))
	rootCmd.AddCommand(a.newRunningCmd(flags))
	rootCmd.AddCommand(a.newInfoCmd(flags))
	rootCmd.AddCommand(a.newStartCmd(flags))
	rootCmd.AddCommand(a.newEndCmd(flags))
	rootCmd.AddCommand(a.newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Without topics, help still lists the operations
	if _, err := topics.InitializeWithOptions(rootCmd, topicFS(), topics.Options{
		Extensions: []string{".md"},
		Renderer:   topicRenderer,
	}); err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID(groupClient)

	return rootCmd, flags
}

func isColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && style.ColorSupported(f)
}

func hasArg(args []string, want string) bool {
	for _, arg := range args {
		if arg == want {
			return true
		}
	}
	return false
}

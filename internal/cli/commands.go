package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/ledctl/internal/version"
	"github.com/arthur-debert/ledctl/pkg/config"
	"github.com/arthur-debert/ledctl/pkg/errors"
	"github.com/arthur-debert/ledctl/pkg/style"
)

func (a *App) newNetworkCmd(flags *flagValues, op, short string) *cobra.Command {
	return &cobra.Command{
		Use:     op + " [flags]",
		Short:   short,
		GroupID: groupServer,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNetworkOp(cmd, op, flags)
		},
	}
}

func (a *App) newAnimationsCmd(flags *flagValues) *cobra.Command {
	cmd := a.newNetworkCmd(flags, OpAnimations, MsgAnimationsShort)
	cmd.Example = MsgListExample
	return cmd
}

func (a *App) newRunningCmd(flags *flagValues) *cobra.Command {
	cmd := a.newNetworkCmd(flags, OpRunning, MsgRunningShort)
	cmd.Example = MsgListExample
	return cmd
}

func (a *App) newInfoCmd(flags *flagValues) *cobra.Command {
	return a.newNetworkCmd(flags, OpInfo, MsgInfoShort)
}

func (a *App) newStartCmd(flags *flagValues) *cobra.Command {
	cmd := a.newNetworkCmd(flags, OpStart, MsgStartShort)
	cmd.Long = style.Render(MsgStartLong)
	cmd.Example = MsgStartExample
	return cmd
}

func (a *App) newEndCmd(flags *flagValues) *cobra.Command {
	cmd := a.newNetworkCmd(flags, OpEnd, MsgEndShort)
	cmd.Example = "  ledctl end --id 91210164"
	return cmd
}

func (a *App) newConfigCmd(flags *flagValues) *cobra.Command {
	return &cobra.Command{
		Use:     OpConfig + " [--init] [--yaml]",
		Short:   MsgConfigShort,
		Long:    style.Render(MsgConfigLong),
		GroupID: groupClient,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if flags.init {
				path := flags.configPath
				if path == "" {
					path = config.DefaultPath()
				}
				if err := config.WriteDefault(a.Fs, path); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, MsgConfigWritten, path)
				return nil
			}

			cfg, err := config.Load(config.LoadOptions{Fs: a.Fs, Path: flags.configPath})
			if err != nil {
				return err
			}

			syntax := config.SyntaxTOML
			if flags.yaml {
				syntax = config.SyntaxYAML
			}
			content, err := config.Marshal(cfg, syntax)
			if err != nil {
				return err
			}
			_, err = out.Write(content)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     OpVersion,
		Short:   MsgVersionShort,
		GroupID: groupClient,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   OpCompletion + " [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  style.Render(MsgCompletionLong),
		GroupID:               groupClient,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
				return errors.Wrapf(err, errors.ErrInternal, "failed to generate %s completion", args[0])
			}
			return nil
		},
	}
}

package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/ledctl/pkg/config"
	"github.com/arthur-debert/ledctl/pkg/errors"
	"github.com/arthur-debert/ledctl/pkg/format"
	"github.com/arthur-debert/ledctl/pkg/logging"
)

// loadConfig merges the configuration layers with the flags set for op.
func (a *App) loadConfig(cmd *cobra.Command, op string, flags *flagValues) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		Fs:        a.Fs,
		Path:      flags.configPath,
		Overrides: flags.overrides(op, cmd.Flags()),
	})
}

// runNetworkOp connects to the server, registers the printer for op, sends
// the request if op has one, listens for the configured wait and
// disconnects.
func (a *App) runNetworkOp(cmd *cobra.Command, op string, flags *flagValues) error {
	logger := logging.GetLogger("cli." + op)

	cfg, err := a.loadConfig(cmd, op, flags)
	if err != nil {
		return err
	}
	if cfg.Server.Host == "" {
		return errors.New(errors.ErrInvalidInput, MsgErrNoServer).
			WithDetail(errors.DetailFlag, FlagServer)
	}
	if cfg.Server.Port <= 0 {
		return errors.New(errors.ErrInvalidInput, MsgErrNoPort).
			WithDetail(errors.DetailFlag, FlagPort)
	}

	// Build the request first so bad input fails before connecting
	var request any
	switch op {
	case OpStart:
		data, err := flags.startRequest(cmd.Flags())
		if err != nil {
			return err
		}
		request = data
	case OpEnd:
		end, err := flags.endRequest()
		if err != nil {
			return err
		}
		request = end
	}

	printer := format.NewPrinter(a.Stdout, cfg.Format)
	client := a.NewClient(cfg.Server.Host, cfg.Server.Port, cfg.DialTimeout)

	switch op {
	case OpAnimations:
		client.OnAnimationInfo(printer.PrintAnimationInfo)
	case OpRunning:
		client.OnAnimationData(printer.PrintAnimationData)
	case OpInfo:
		client.OnStripInfo(printer.PrintStripInfo)
	}

	done := logging.LogOperationStart(logger, op)
	defer done()

	ctx := cmd.Context()
	if err := client.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := client.End(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close connection")
		}
	}()

	if request != nil {
		if err := client.Send(request); err != nil {
			return err
		}
		logger.Info().Str("operation", op).Msg("Request sent")
	}

	waitFor(ctx, cfg.Wait)
	return nil
}

// waitFor blocks for d or until ctx is done.
func waitFor(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

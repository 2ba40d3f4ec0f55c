package cli

import (
	"context"
	"time"

	"github.com/arthur-debert/ledctl/pkg/animation"
	"github.com/arthur-debert/ledctl/pkg/logging"
	"github.com/arthur-debert/ledctl/pkg/sender"
)

// Client is the part of sender.Sender the operations use.
type Client interface {
	OnAnimationInfo(fn func(animation.Info))
	OnAnimationData(fn func(animation.Data))
	OnStripInfo(fn func(animation.StripInfo))
	Start(ctx context.Context) error
	Send(msg any) error
	End() error
}

// ClientFactory creates the Client for a server address.
type ClientFactory func(host string, port int, dialTimeout time.Duration) Client

func newSenderClient(host string, port int, dialTimeout time.Duration) Client {
	return sender.New(host, port,
		sender.WithDialTimeout(dialTimeout),
		sender.WithLogger(logging.GetLogger("sender")),
	)
}

package sender

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"net"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/arthur-debert/ledctl/pkg/animation"
	"github.com/arthur-debert/ledctl/pkg/errors"
	"github.com/arthur-debert/ledctl/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultDialTimeout bounds how long Start waits for the TCP connection.
const DefaultDialTimeout = 5 * time.Second

// maxFrameSize caps a single frame. Animation info with long descriptions
// is the largest thing the server sends.
const maxFrameSize = 1 << 20

// Option configures a Sender
type Option func(*Sender)

// WithDialTimeout sets the connection timeout
func WithDialTimeout(d time.Duration) Option {
	return func(s *Sender) {
		if d > 0 {
			s.dialTimeout = d
		}
	}
}

// WithLogger replaces the default component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Sender) {
		s.logger = logger
	}
}

// Sender is a connection to an AnimatedLEDStrip server.
type Sender struct {
	host        string
	port        int
	dialTimeout time.Duration
	logger      zerolog.Logger

	mu      sync.Mutex
	conn    net.Conn
	done    chan struct{}
	onInfo  func(animation.Info)
	onData  func(animation.Data)
	onStrip func(animation.StripInfo)
	onEnd   func(animation.EndAnimation)
}

// New creates a Sender for host:port. No connection is made until Start.
func New(host string, port int, opts ...Option) *Sender {
	s := &Sender{
		host:        host,
		port:        port,
		dialTimeout: DefaultDialTimeout,
		logger:      logging.GetLogger("sender"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Address returns the host:port the sender connects to.
func (s *Sender) Address() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// OnAnimationInfo registers the callback for capability descriptors.
func (s *Sender) OnAnimationInfo(fn func(animation.Info)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onInfo = fn
}

// OnAnimationData registers the callback for running animations.
func (s *Sender) OnAnimationData(fn func(animation.Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onData = fn
}

// OnStripInfo registers the callback for the strip descriptor.
func (s *Sender) OnStripInfo(fn func(animation.StripInfo)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onStrip = fn
}

// OnEndAnimation registers the callback for animations the server ended.
func (s *Sender) OnEndAnimation(fn func(animation.EndAnimation)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEnd = fn
}

// Start connects to the server and starts receiving.
func (s *Sender) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return errors.New(errors.ErrInternal, "sender already started")
	}

	dialer := net.Dialer{Timeout: s.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.Address())
	if err != nil {
		return errors.Wrapf(err, errors.ErrConnect, "failed to connect to %s", s.Address()).
			WithDetail("address", s.Address())
	}

	s.logger.Info().Str("address", s.Address()).Msg("Connected to server")

	s.conn = conn
	s.done = make(chan struct{})
	go s.receive(conn, s.done)
	return nil
}

// Send writes one request to the server.
func (s *Sender) Send(msg any) error {
	frame, err := Encode(msg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return errors.New(errors.ErrSend, "sender is not started")
	}
	if _, err := s.conn.Write(frame); err != nil {
		return errors.Wrap(err, errors.ErrSend, "failed to send message")
	}

	s.logger.Debug().Int("bytes", len(frame)).Str("tag", string(frame[:tagLen])).Msg("Sent message")
	return nil
}

// End closes the connection and waits for the receive loop to finish. It
// is safe to call more than once.
func (s *Sender) End() error {
	s.mu.Lock()
	conn, done := s.conn, s.done
	s.conn = nil
	s.mu.Unlock()

	if conn == nil {
		return nil
	}

	err := conn.Close()
	<-done
	s.logger.Info().Str("address", s.Address()).Msg("Disconnected from server")

	if err != nil && !isExpectedCloseError(err) {
		return errors.Wrap(err, errors.ErrConnect, "failed to close connection")
	}
	return nil
}

func (s *Sender) receive(conn net.Conn, done chan struct{}) {
	defer close(done)

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)
	scanner.Split(splitFrames)

	for scanner.Scan() {
		s.dispatch(scanner.Bytes())
	}

	if err := scanner.Err(); err != nil && !isExpectedCloseError(err) {
		s.logger.Warn().Err(err).Msg("Receive loop stopped")
		return
	}
	s.logger.Debug().Msg("Receive loop finished")
}

func (s *Sender) dispatch(frame []byte) {
	if len(bytes.TrimSpace(frame)) == 0 {
		return
	}

	msg, err := Decode(frame)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Skipping frame")
		return
	}

	s.mu.Lock()
	onInfo, onData, onStrip, onEnd := s.onInfo, s.onData, s.onStrip, s.onEnd
	s.mu.Unlock()

	switch m := msg.(type) {
	case animation.Info:
		s.logger.Trace().Str("name", m.Name).Msg("Received animation info")
		if onInfo != nil {
			onInfo(m)
		}
	case animation.Data:
		s.logger.Trace().Str("id", m.ID).Msg("Received animation data")
		if onData != nil {
			onData(m)
		}
	case animation.StripInfo:
		s.logger.Trace().Int("numLEDs", m.NumLEDs).Msg("Received strip info")
		if onStrip != nil {
			onStrip(m)
		}
	case animation.EndAnimation:
		s.logger.Trace().Str("id", m.ID).Msg("Received end animation")
		if onEnd != nil {
			onEnd(m)
		}
	}
}

// isExpectedCloseError reports whether err is a normal connection
// termination: EOF, closed connection, broken pipe, or connection reset.
func isExpectedCloseError(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, net.ErrClosed) {
		return true
	}
	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		return errno == syscall.EPIPE || errno == syscall.ECONNRESET
	}
	return false
}

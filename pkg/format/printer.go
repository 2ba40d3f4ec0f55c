package format

import (
	"fmt"
	"io"

	"github.com/arthur-debert/ledctl/pkg/animation"
	"github.com/arthur-debert/ledctl/pkg/logging"
)

// Default format strings, used when neither a flag nor the configuration
// sets one.
const (
	DefaultAnimationsFormat = "%n"
	DefaultRunningFormat    = `%i\t%a`
	DefaultInfoFormat       = `%n\t%p`
)

// Formats holds the active format string for each descriptor kind. It is
// filled in once after flag parsing and only read afterwards.
type Formats struct {
	Animations string `koanf:"animations" toml:"animations" yaml:"animations"`
	Running    string `koanf:"running" toml:"running" yaml:"running"`
	Info       string `koanf:"info" toml:"info" yaml:"info"`
}

// WithDefaults returns a copy where every empty format is replaced by its default.
func (f Formats) WithDefaults() Formats {
	if f.Animations == "" {
		f.Animations = DefaultAnimationsFormat
	}
	if f.Running == "" {
		f.Running = DefaultRunningFormat
	}
	if f.Info == "" {
		f.Info = DefaultInfoFormat
	}
	return f
}

// Printer writes one rendered line per descriptor. Its Print methods match
// the sender's callback signatures.
type Printer struct {
	writer  io.Writer
	formats Formats
}

// NewPrinter creates a Printer writing to w. Empty formats fall back to the
// defaults.
func NewPrinter(w io.Writer, formats Formats) *Printer {
	return &Printer{
		writer:  w,
		formats: formats.WithDefaults(),
	}
}

// Formats returns the format strings in use.
func (p *Printer) Formats() Formats {
	return p.formats
}

// PrintAnimationInfo renders a capability descriptor.
func (p *Printer) PrintAnimationInfo(info animation.Info) {
	p.print(p.formats.Animations, InfoTokens(info))
}

// PrintAnimationData renders a running animation.
func (p *Printer) PrintAnimationData(data animation.Data) {
	p.print(p.formats.Running, DataTokens(data))
}

// PrintStripInfo renders the strip descriptor.
func (p *Printer) PrintStripInfo(strip animation.StripInfo) {
	p.print(p.formats.Info, StripTokens(strip))
}

func (p *Printer) print(template string, tokens Tokens) {
	if _, err := fmt.Fprintln(p.writer, Render(template, tokens)); err != nil {
		logger := logging.GetLogger("format.Printer")
		logger.Debug().Err(err).Msg("Failed to write rendered line")
	}
}

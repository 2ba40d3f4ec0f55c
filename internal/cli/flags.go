package cli

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/arthur-debert/ledctl/pkg/animation"
	"github.com/arthur-debert/ledctl/pkg/config"
	"github.com/arthur-debert/ledctl/pkg/errors"
)

// flagValues holds every flag of the root command. All flags are
// persistent so any operation parses them; checkFlags then enforces which
// ones an operation accepts.
type flagValues struct {
	verbosity  int
	configPath string
	noColor    bool

	wait   time.Duration
	server string
	port   int
	format string

	animation  string
	colors     []string
	center     int
	continuous string
	delay      int64
	delayMod   float64
	direction  string
	distance   int
	id         string
	section    string
	spacing    int

	init bool
	yaml bool
}

func (v *flagValues) bind(fs *pflag.FlagSet) {
	defaults := animation.NewData()

	fs.CountVarP(&v.verbosity, FlagVerbose, "v", MsgFlagVerbose)
	fs.StringVar(&v.configPath, FlagConfig, "", MsgFlagConfig)
	fs.BoolVar(&v.noColor, FlagNoColor, false, MsgFlagNoColor)

	fs.DurationVar(&v.wait, FlagWait, time.Second, MsgFlagWait)
	fs.StringVar(&v.server, FlagServer, "", MsgFlagServer)
	fs.IntVar(&v.port, FlagPort, 0, MsgFlagPort)
	fs.StringVar(&v.format, FlagFormat, "", MsgFlagFormat)

	fs.StringVar(&v.animation, FlagAnimation, "", MsgFlagAnimation)
	fs.StringArrayVar(&v.colors, FlagColor, nil, MsgFlagColor)
	fs.IntVar(&v.center, FlagCenter, defaults.Center, MsgFlagCenter)
	fs.StringVar(&v.continuous, FlagContinuous, "", MsgFlagContinuous)
	fs.Int64Var(&v.delay, FlagDelay, defaults.Delay, MsgFlagDelay)
	fs.Float64Var(&v.delayMod, FlagDelayMod, defaults.DelayMod, MsgFlagDelayMod)
	fs.StringVar(&v.direction, FlagDirection, "", MsgFlagDirection)
	fs.IntVar(&v.distance, FlagDistance, defaults.Distance, MsgFlagDistance)
	fs.StringVar(&v.id, FlagID, "", MsgFlagID)
	fs.StringVar(&v.section, FlagSection, "", MsgFlagSection)
	fs.IntVar(&v.spacing, FlagSpacing, defaults.Spacing, MsgFlagSpacing)

	fs.BoolVar(&v.init, FlagInit, false, MsgFlagInit)
	fs.BoolVar(&v.yaml, FlagYAML, false, MsgFlagYAML)
}

// overrides turns the flags set on the command line into configuration
// overrides. --format targets the format of the running operation.
func (v *flagValues) overrides(op string, fs *pflag.FlagSet) map[string]interface{} {
	out := make(map[string]interface{})
	if fs.Changed(FlagServer) {
		out[config.KeyServerHost] = v.server
	}
	if fs.Changed(FlagPort) {
		out[config.KeyServerPort] = v.port
	}
	if fs.Changed(FlagWait) {
		out[config.KeyWait] = v.wait
	}
	if fs.Changed(FlagFormat) {
		switch op {
		case OpAnimations:
			out[config.KeyFormatAnimations] = v.format
		case OpRunning:
			out[config.KeyFormatRunning] = v.format
		case OpInfo:
			out[config.KeyFormatInfo] = v.format
		}
	}
	return out
}

// startRequest builds the animation a start operation sends.
func (v *flagValues) startRequest(fs *pflag.FlagSet) (animation.Data, error) {
	data := animation.NewData()
	data.Animation = v.animation
	data.Center = v.center
	data.Delay = v.delay
	data.DelayMod = v.delayMod
	data.Distance = v.distance
	data.ID = v.id
	data.Section = v.section
	data.Spacing = v.spacing

	for _, c := range v.colors {
		cc, err := animation.ParseColorContainer(c)
		if err != nil {
			return animation.Data{}, err
		}
		data.AddColor(cc)
	}

	if fs.Changed(FlagContinuous) {
		continuity, err := animation.ParseContinuity(v.continuous)
		if err != nil {
			return animation.Data{}, err
		}
		data.Continuous = continuity
	}
	if fs.Changed(FlagDirection) {
		direction, err := animation.ParseDirection(v.direction)
		if err != nil {
			return animation.Data{}, err
		}
		data.Direction = direction
	}

	return *data, nil
}

// endRequest builds the request of an end operation. The ID is required.
func (v *flagValues) endRequest() (animation.EndAnimation, error) {
	if v.id == "" {
		return animation.EndAnimation{}, errors.New(errors.ErrMissingFlag, MsgErrNoID).
			WithDetail(errors.DetailFlag, FlagID)
	}
	return animation.EndAnimation{ID: v.id}, nil
}

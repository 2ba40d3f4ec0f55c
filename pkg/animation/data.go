package animation

import (
	"encoding/json"
	"strings"

	"github.com/arthur-debert/ledctl/pkg/errors"
	"github.com/arthur-debert/ledctl/pkg/resolve"
)

// Continuity is the tri-state continuous setting of an animation. The
// default leaves the choice to the animation itself.
type Continuity int

const (
	ContinuityDefault Continuity = iota
	Continuous
	NonContinuous
)

// ContinuityCatalog lists the accepted spellings. Each value has a synonym,
// and the synonyms are separate entries.
var ContinuityCatalog = resolve.Catalog{
	Kind: "continuous",
	Options: []resolve.Option{
		{ID: int(Continuous), Name: "CONTINUOUS"},
		{ID: int(Continuous), Name: "TRUE"},
		{ID: int(NonContinuous), Name: "NONCONTINUOUS"},
		{ID: int(NonContinuous), Name: "FALSE"},
		{ID: int(ContinuityDefault), Name: "DEFAULT"},
		{ID: int(ContinuityDefault), Name: "NULL"},
	},
}

// ParseContinuity resolves a case-insensitive, possibly abbreviated value.
func ParseContinuity(s string) (Continuity, error) {
	opt, err := resolve.ResolveFold(s, ContinuityCatalog)
	if err != nil {
		return ContinuityDefault, err
	}
	return Continuity(opt.ID), nil
}

// String returns true, false or null, matching the JSON encoding.
func (c Continuity) String() string {
	switch c {
	case Continuous:
		return "true"
	case NonContinuous:
		return "false"
	default:
		return "null"
	}
}

func (c Continuity) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Continuity) UnmarshalJSON(b []byte) error {
	switch strings.TrimSpace(string(b)) {
	case "true":
		*c = Continuous
	case "false":
		*c = NonContinuous
	case "null":
		*c = ContinuityDefault
	default:
		return errors.Newf(errors.ErrProtocol, "invalid continuous value %s", b)
	}
	return nil
}

// Direction is the direction an animation runs along the strip.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// DirectionCatalog lists the accepted direction names.
var DirectionCatalog = resolve.Catalog{
	Kind: "direction",
	Options: []resolve.Option{
		{ID: int(Forward), Name: "FORWARD"},
		{ID: int(Backward), Name: "BACKWARD"},
	},
}

// ParseDirection resolves a case-insensitive, possibly abbreviated direction.
func ParseDirection(s string) (Direction, error) {
	opt, err := resolve.ResolveFold(s, DirectionCatalog)
	if err != nil {
		return Forward, err
	}
	return Direction(opt.ID), nil
}

func (d Direction) String() string {
	if d == Backward {
		return "BACKWARD"
	}
	return "FORWARD"
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Direction) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "FORWARD":
		*d = Forward
	case "BACKWARD":
		*d = Backward
	default:
		return errors.Newf(errors.ErrProtocol, "unknown direction %q", s)
	}
	return nil
}

// Data describes an animation instance: either one the server reports as
// running, or one the client asks it to start.
type Data struct {
	Animation  string           `json:"animation"`
	Colors     []ColorContainer `json:"colors"`
	Center     int              `json:"center"`
	Continuous Continuity       `json:"continuous"`
	Delay      int64            `json:"delay"`
	DelayMod   float64          `json:"delayMod"`
	Direction  Direction        `json:"direction"`
	Distance   int              `json:"distance"`
	ID         string           `json:"id"`
	Section    string           `json:"section"`
	Spacing    int              `json:"spacing"`
}

// NewData returns a start request with the server defaults: -1 asks the
// server to use the animation's own default for that parameter.
func NewData() *Data {
	return &Data{
		Colors:     []ColorContainer{},
		Center:     -1,
		Continuous: ContinuityDefault,
		Delay:      -1,
		DelayMod:   1.0,
		Direction:  Forward,
		Distance:   -1,
		Spacing:    -1,
	}
}

// AddColor appends a color container.
func (d *Data) AddColor(cc ColorContainer) {
	d.Colors = append(d.Colors, cc)
}

// ColorsString renders every container, separated by spaces.
func (d Data) ColorsString() string {
	parts := make([]string, len(d.Colors))
	for i, cc := range d.Colors {
		parts[i] = cc.String()
	}
	return strings.Join(parts, " ")
}

// EndAnimation asks the server to stop the animation with the given ID.
type EndAnimation struct {
	ID string `json:"id"`
}

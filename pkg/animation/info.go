package animation

import (
	"encoding/json"

	"github.com/arthur-debert/ledctl/pkg/errors"
)

// ParamUsage says whether an animation reads a given parameter.
type ParamUsage int

const (
	NotUsed ParamUsage = iota
	Used
)

// String returns the server's spelling, USED or NOTUSED.
func (p ParamUsage) String() string {
	if p == Used {
		return "USED"
	}
	return "NOTUSED"
}

func (p ParamUsage) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *ParamUsage) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "USED":
		*p = Used
	case "NOTUSED":
		*p = NotUsed
	default:
		return errors.Newf(errors.ErrProtocol, "unknown parameter usage %q", s)
	}
	return nil
}

// Info is the capability descriptor the server sends for every animation it
// supports.
type Info struct {
	Name            string     `json:"name"`
	Abbr            string     `json:"abbr"`
	Description     string     `json:"description"`
	SignatureFile   string     `json:"signatureFile"`
	Repetitive      bool       `json:"repetitive"`
	MinimumColors   int        `json:"minimumColors"`
	UnlimitedColors bool       `json:"unlimitedColors"`
	Center          ParamUsage `json:"center"`
	Delay           ParamUsage `json:"delay"`
	Direction       ParamUsage `json:"direction"`
	Distance        ParamUsage `json:"distance"`
	Spacing         ParamUsage `json:"spacing"`
	DelayDefault    int64      `json:"delayDefault"`
	DistanceDefault int        `json:"distanceDefault"`
	SpacingDefault  int        `json:"spacingDefault"`
}

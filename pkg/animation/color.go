package animation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/ledctl/pkg/errors"
)

// ColorContainer is one group of colors passed to an animation.
type ColorContainer struct {
	Colors []int64 `json:"colors"`
}

// ParseColorContainer parses a comma separated list of integers. Each value
// may carry a base prefix (0x for hex, leading 0 for octal).
func ParseColorContainer(s string) (ColorContainer, error) {
	var cc ColorContainer
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return ColorContainer{}, errors.Newf(errors.ErrInvalidInput, "empty color in %q", s).
				WithDetail(errors.DetailInput, s)
		}
		c, err := strconv.ParseInt(part, 0, 64)
		if err != nil {
			return ColorContainer{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid color %q", part).
				WithDetail(errors.DetailInput, s)
		}
		cc.Colors = append(cc.Colors, c)
	}
	return cc, nil
}

// String renders the colors as lower-case hex, e.g. [0xff0000, 0xff].
func (cc ColorContainer) String() string {
	parts := make([]string, len(cc.Colors))
	for i, c := range cc.Colors {
		parts[i] = fmt.Sprintf("%#x", c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

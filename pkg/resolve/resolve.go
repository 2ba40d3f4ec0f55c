package resolve

import (
	"strings"

	"github.com/arthur-debert/ledctl/pkg/errors"
)

// Option is one entry in a catalog.
type Option struct {
	ID   int
	Name string
}

// Catalog is a fixed, ordered set of options. Kind names what the catalog
// holds ("operation", "direction", ...) and only shows up in errors.
type Catalog struct {
	Kind    string
	Options []Option
}

// NewCatalog builds a catalog from names, using each name's position as its ID.
func NewCatalog(kind string, names ...string) Catalog {
	options := make([]Option, len(names))
	for i, name := range names {
		options[i] = Option{ID: i, Name: name}
	}
	return Catalog{Kind: kind, Options: options}
}

// Names returns the option names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Options))
	for i, opt := range c.Options {
		names[i] = opt.Name
	}
	return names
}

// Resolve returns the single option whose name starts with input.
// Matching is case-sensitive.
func Resolve(input string, c Catalog) (Option, error) {
	var matches []Option
	for _, opt := range c.Options {
		if matchesPrefix(input, opt.Name) {
			matches = append(matches, opt)
		}
	}

	switch len(matches) {
	case 0:
		return Option{}, errors.Newf(errors.ErrUnresolvedReference, "invalid %s: %s", c.Kind, input).
			WithDetail(errors.DetailKind, c.Kind).
			WithDetail(errors.DetailInput, input).
			WithDetail(errors.DetailOptions, c.Names())
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return Option{}, errors.Newf(errors.ErrAmbiguousReference, "ambiguous %s: %s", c.Kind, input).
			WithDetail(errors.DetailKind, c.Kind).
			WithDetail(errors.DetailInput, input).
			WithDetail(errors.DetailOptions, names)
	}
}

// ResolveFold upper-cases input before resolving it. Catalogs used with it
// hold upper-case names.
func ResolveFold(input string, c Catalog) (Option, error) {
	return Resolve(strings.ToUpper(input), c)
}

// matchesPrefix walks the prefixes of name from longest to shortest and stops
// at the first one equal to input. The empty prefix is never considered.
func matchesPrefix(input, name string) bool {
	for n := len(name); n > 0; n-- {
		if input == name[:n] {
			return true
		}
	}
	return false
}

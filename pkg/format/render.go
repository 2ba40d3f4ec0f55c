package format

import (
	"sort"
	"strings"
)

// Token maps a literal marker, such as %name, to its rendered value.
type Token struct {
	Key   string
	Value string
}

// Tokens is the replacement set for one render call. Keys are unique.
type Tokens []Token

// DecodeEscapes replaces every literal \n with a newline and every literal
// \t with a tab.
func DecodeEscapes(s string) string {
	s = replaceEach(s, `\n`, "\n")
	s = replaceEach(s, `\t`, "\t")
	return s
}

// replaceEach replaces the first remaining occurrence of old until none is
// left. The replacement never contains old, so the loop terminates.
func replaceEach(s, old, repl string) string {
	for {
		i := strings.Index(s, old)
		if i < 0 {
			return s
		}
		s = s[:i] + repl + s[i+len(old):]
	}
}

// segment is a piece of the working string. Substituted segments hold token
// values and are skipped by later searches.
type segment struct {
	text        string
	substituted bool
}

// Render decodes escapes in template and substitutes every token, longest
// key first.
func Render(template string, tokens Tokens) string {
	working := []segment{{text: DecodeEscapes(template)}}

	sorted := make(Tokens, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Key) > len(sorted[j].Key)
	})

	for _, tok := range sorted {
		if tok.Key == "" {
			continue
		}
		working = substitute(working, tok)
	}

	var b strings.Builder
	for _, seg := range working {
		b.WriteString(seg.text)
	}
	return b.String()
}

// substitute replaces every occurrence of tok.Key in the literal segments.
func substitute(working []segment, tok Token) []segment {
	out := make([]segment, 0, len(working))
	for _, seg := range working {
		if seg.substituted {
			out = append(out, seg)
			continue
		}
		rest := seg.text
		for {
			i := strings.Index(rest, tok.Key)
			if i < 0 {
				break
			}
			if i > 0 {
				out = append(out, segment{text: rest[:i]})
			}
			out = append(out, segment{text: tok.Value, substituted: true})
			rest = rest[i+len(tok.Key):]
		}
		if rest != "" {
			out = append(out, segment{text: rest})
		}
	}
	return out
}

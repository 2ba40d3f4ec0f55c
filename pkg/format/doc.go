// Package format renders server descriptors through user-supplied format
// templates.
//
// A template is plain text containing markers such as %name or %n. Rendering
// happens in three steps:
//
//  1. Escape decoding: the two-character sequences \n and \t become a
//     newline and a tab. This runs once, before any substitution, so escape
//     text inside substituted values is left alone.
//  2. Ordering: tokens are sorted by descending key length, so a longer key
//     (%direction, %dr) is consumed before a shorter key that is its prefix
//     (%d) can match inside it.
//  3. Substitution: every occurrence of each key is replaced before the next
//     key is looked at.
//
// Substituted values are never scanned again, and markers with no matching
// token stay in the output as literal text. Rendering cannot fail.
//
// The Printer type wires the token tables for the three descriptor kinds to
// an output writer and the active format strings.
package format

// Package resolve matches user-typed, possibly abbreviated names against a
// fixed catalog of options.
//
// A name matches a catalog entry when it is a prefix of the entry's name of
// length one or more (the full name included). Resolution succeeds only when
// exactly one entry matches. Zero matches and multiple matches are both
// reported as errors carrying the offending input and the alternatives, so
// the caller can show the user what they could have typed.
//
// Matching is purely textual. Two entries that mean the same thing (synonyms
// such as CONTINUOUS and TRUE) are still distinct entries, and an input
// matching both is ambiguous.
package resolve

// Package animation defines the values exchanged with an AnimatedLEDStrip
// server: the capability descriptors it advertises (Info), running or
// requested animation instances (Data), end requests (EndAnimation) and the
// strip configuration (StripInfo).
//
// Field names and JSON encodings follow the server's wire format. The small
// enumerations (Continuity, Direction) come with catalogs so user input can
// be prefix-resolved against them.
package animation

package animation

// StripInfo describes the LED strip the server drives.
type StripInfo struct {
	NumLEDs           int    `json:"numLEDs"`
	Pin               int    `json:"pin"`
	ImageDebugging    bool   `json:"imageDebugging"`
	FileName          string `json:"fileName"`
	RendersBeforeSave int    `json:"rendersBeforeSave"`
	ThreadCount       int    `json:"threadCount"`
}

package format

import (
	"strconv"

	"github.com/arthur-debert/ledctl/pkg/animation"
)

// Every field is reachable through a long and a short key. The key spellings
// are part of the user interface and must not change.

// InfoTokens builds the replacement set for a capability descriptor.
func InfoTokens(info animation.Info) Tokens {
	return Tokens{
		{"%name", info.Name},
		{"%n", info.Name},
		{"%abbr", info.Abbr},
		{"%a", info.Abbr},
		{"%description", info.Description},
		{"%d", info.Description},
		{"%signatureFile", info.SignatureFile},
		{"%f", info.SignatureFile},
		{"%repetitive", boolWord(info.Repetitive)},
		{"%r", boolWord(info.Repetitive)},
		{"%R", boolDigit(info.Repetitive)},
		{"%minimumColors", strconv.Itoa(info.MinimumColors)},
		{"%m", strconv.Itoa(info.MinimumColors)},
		{"%unlimitedColors", boolWord(info.UnlimitedColors)},
		{"%u", boolWord(info.UnlimitedColors)},
		{"%U", boolDigit(info.UnlimitedColors)},
		{"%center", info.Center.String()},
		{"%ce", info.Center.String()},
		{"%delay", info.Delay.String()},
		{"%de", info.Delay.String()},
		{"%direction", info.Direction.String()},
		{"%dr", info.Direction.String()},
		{"%distance", info.Distance.String()},
		{"%ds", info.Distance.String()},
		{"%spacing", info.Spacing.String()},
		{"%sp", info.Spacing.String()},
		{"%delayDefault", strconv.FormatInt(info.DelayDefault, 10)},
		{"%DE", strconv.FormatInt(info.DelayDefault, 10)},
		{"%distanceDefault", strconv.Itoa(info.DistanceDefault)},
		{"%DS", strconv.Itoa(info.DistanceDefault)},
		{"%spacingDefault", strconv.Itoa(info.SpacingDefault)},
		{"%SP", strconv.Itoa(info.SpacingDefault)},
	}
}

// DataTokens builds the replacement set for a running animation.
func DataTokens(data animation.Data) Tokens {
	colors := data.ColorsString()
	return Tokens{
		{"%animation", data.Animation},
		{"%a", data.Animation},
		{"%colors", colors},
		{"%c", colors},
		{"%center", strconv.Itoa(data.Center)},
		{"%ce", strconv.Itoa(data.Center)},
		{"%continuous", data.Continuous.String()},
		{"%co", data.Continuous.String()},
		{"%delay", strconv.FormatInt(data.Delay, 10)},
		{"%de", strconv.FormatInt(data.Delay, 10)},
		{"%delayMod", formatFloat(data.DelayMod)},
		{"%dm", formatFloat(data.DelayMod)},
		{"%direction", data.Direction.String()},
		{"%dr", data.Direction.String()},
		{"%distance", strconv.Itoa(data.Distance)},
		{"%ds", strconv.Itoa(data.Distance)},
		{"%id", data.ID},
		{"%i", data.ID},
		{"%section", data.Section},
		{"%se", data.Section},
		{"%spacing", strconv.Itoa(data.Spacing)},
		{"%sp", strconv.Itoa(data.Spacing)},
	}
}

// StripTokens builds the replacement set for the strip descriptor.
func StripTokens(strip animation.StripInfo) Tokens {
	return Tokens{
		{"%numLEDs", strconv.Itoa(strip.NumLEDs)},
		{"%n", strconv.Itoa(strip.NumLEDs)},
		{"%pin", strconv.Itoa(strip.Pin)},
		{"%p", strconv.Itoa(strip.Pin)},
		{"%imageDebugging", boolWord(strip.ImageDebugging)},
		{"%i", boolWord(strip.ImageDebugging)},
		{"%fileName", strip.FileName},
		{"%f", strip.FileName},
		{"%rendersBeforeSave", strconv.Itoa(strip.RendersBeforeSave)},
		{"%r", strconv.Itoa(strip.RendersBeforeSave)},
		{"%threadCount", strconv.Itoa(strip.ThreadCount)},
		{"%t", strconv.Itoa(strip.ThreadCount)},
	}
}

func boolWord(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// formatFloat prints six decimal places, the way the server's own tools do.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

package format

import (
	"testing"

	"github.com/arthur-debert/ledctl/pkg/animation"
	"github.com/stretchr/testify/assert"
)

func keys(tokens Tokens) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Key
	}
	return out
}

func TestTokenVocabulary(t *testing.T) {
	assert.Equal(t, []string{
		"%name", "%n", "%abbr", "%a", "%description", "%d", "%signatureFile", "%f",
		"%repetitive", "%r", "%R", "%minimumColors", "%m", "%unlimitedColors", "%u", "%U",
		"%center", "%ce", "%delay", "%de", "%direction", "%dr", "%distance", "%ds",
		"%spacing", "%sp", "%delayDefault", "%DE", "%distanceDefault", "%DS",
		"%spacingDefault", "%SP",
	}, keys(InfoTokens(animation.Info{})))

	assert.Equal(t, []string{
		"%animation", "%a", "%colors", "%c", "%center", "%ce", "%continuous", "%co",
		"%delay", "%de", "%delayMod", "%dm", "%direction", "%dr", "%distance", "%ds",
		"%id", "%i", "%section", "%se", "%spacing", "%sp",
	}, keys(DataTokens(animation.Data{})))

	assert.Equal(t, []string{
		"%numLEDs", "%n", "%pin", "%p", "%imageDebugging", "%i", "%fileName", "%f",
		"%rendersBeforeSave", "%r", "%threadCount", "%t",
	}, keys(StripTokens(animation.StripInfo{})))
}

func TestInfoTokens_Render(t *testing.T) {
	info := animation.Info{
		Name:            "Fade",
		Abbr:            "F",
		Description:     "Fades between colors",
		Repetitive:      true,
		MinimumColors:   1,
		UnlimitedColors: false,
		Delay:           animation.Used,
		Direction:       animation.NotUsed,
		DelayDefault:    50,
		DistanceDefault: -1,
	}
	tokens := InfoTokens(info)

	assert.Equal(t, "Fade (F)", Render("%n (%abbr)", tokens))
	assert.Equal(t, "true/1 false/0", Render("%r/%R %u/%U", tokens))
	assert.Equal(t, "USED NOTUSED NOTUSED", Render("%de %dr %d", tokensWithoutDescription(tokens)))
	assert.Equal(t, "Fades between colors|USED|NOTUSED", Render("%d|%delay|%direction", tokens))
	assert.Equal(t, "50 -1 0", Render("%DE %DS %SP", tokens))
	assert.Equal(t, "1 colors", Render("%m colors", tokens))
}

// tokensWithoutDescription swaps the description for a fixed word so the
// short %d key is easy to tell apart from %de and %dr.
func tokensWithoutDescription(tokens Tokens) Tokens {
	out := make(Tokens, len(tokens))
	copy(out, tokens)
	for i := range out {
		if out[i].Key == "%d" {
			out[i].Value = "NOTUSED"
		}
	}
	return out
}

func TestDataTokens_Render(t *testing.T) {
	data := animation.Data{
		Animation:  "Meteor",
		Colors:     []animation.ColorContainer{{Colors: []int64{0xff0000}}},
		Center:     120,
		Continuous: animation.Continuous,
		Delay:      10,
		DelayMod:   1.5,
		Direction:  animation.Backward,
		Distance:   240,
		ID:         "12345",
		Section:    "front",
		Spacing:    3,
	}
	tokens := DataTokens(data)

	assert.Equal(t, "12345\tMeteor", Render(DefaultRunningFormat, tokens))
	assert.Equal(t, "[0xff0000] 120 true 10 1.500000", Render("%c %ce %co %de %dm", tokens))
	assert.Equal(t, "BACKWARD 240 front 3", Render("%direction %ds %se %sp", tokens))
	assert.Equal(t, "Meteor/12345", Render("%animation/%id", tokens))
}

func TestStripTokens_Render(t *testing.T) {
	strip := animation.StripInfo{
		NumLEDs:           240,
		Pin:               12,
		ImageDebugging:    true,
		FileName:          "strip.csv",
		RendersBeforeSave: 1000,
		ThreadCount:       100,
	}
	tokens := StripTokens(strip)

	assert.Equal(t, "240\t12", Render(DefaultInfoFormat, tokens))
	assert.Equal(t, "true strip.csv 1000 100", Render("%i %f %r %t", tokens))
	assert.Equal(t, "240 LEDs on pin 12", Render("%numLEDs LEDs on pin %pin", tokens))
}

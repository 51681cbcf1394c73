// Package color implements the phi-ratio color algebra used to derive
// accent colors: a deterministic hue seed (Hash), an HSLA value type,
// additive steps along the golden ratio (Generate), and composable
// adjustments over those steps (Arranger, Chain).
//
// Hue is measured in turns on the ring [0, 1). Saturation, lightness and
// alpha live in [Min, Max].
package color

import "math"

const (
	// Min is the lower bound of the saturation, lightness and alpha channels.
	Min = 0.0
	// Max is the upper bound of the saturation, lightness and alpha channels.
	Max = 1.0
)

var (
	phi = (1 + math.Sqrt(5)) / 2

	// HueStep is the hue rotation of one step: the golden angle expressed
	// in turns (about 137.5 degrees).
	HueStep = 1 / (phi * phi)

	// ChannelStep is the saturation, lightness and alpha delta of one step.
	ChannelStep = 1 / math.Pow(phi, 5)
)

// HSLA is a color in hue/saturation/lightness/alpha form.
type HSLA struct {
	H float64
	S float64
	L float64
	A float64
}

// Generate moves base by the given number of phi steps on each channel.
// Hue always wraps around the ring. When clamp is true the other channels
// are clipped to [Min, Max]; otherwise values that leave the range wrap
// back into it.
//
// The lightness step is weighted by the perceptual brightness of the hue
// reached by this call, so a hue shift followed by a lightness shift is not
// the same as the reverse.
func Generate(base HSLA, hue, saturation, lightness, alpha int, clamp bool) HSLA {
	bound := wrapChannel
	if clamp {
		bound = clampChannel
	}

	h := wrapHue(base.H + float64(hue)*HueStep)
	return HSLA{
		H: h,
		S: bound(base.S + float64(saturation)*ChannelStep),
		L: bound(base.L + float64(lightness)*ChannelStep*lightnessWeight(h)),
		A: bound(base.A + float64(alpha)*ChannelStep),
	}
}

// lightnessWeight scales lightness steps by hue: warm hues (near red) move
// further per step than cool hues (near cyan).
func lightnessWeight(h float64) float64 {
	return 1 + 0.25*math.Cos(2*math.Pi*h)
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	return h
}

func clampChannel(v float64) float64 {
	return math.Max(Min, math.Min(Max, v))
}

func wrapChannel(v float64) float64 {
	if v >= Min && v <= Max {
		return v
	}
	span := Max - Min
	v = math.Mod(v-Min, span)
	if v < 0 {
		v += span
	}
	return Min + v
}

// Arranger is one additive adjustment expressed in phi steps.
type Arranger struct {
	Hue        int
	Saturation int
	Lightness  int
	Alpha      int
	Clamp      bool
}

// Apply runs the adjustment on c.
func (a Arranger) Apply(c HSLA) HSLA {
	return Generate(c, a.Hue, a.Saturation, a.Lightness, a.Alpha, a.Clamp)
}

// Chain is an ordered list of arrangers. Order matters.
type Chain []Arranger

// Apply folds the chain over c from left to right.
func (ch Chain) Apply(c HSLA) HSLA {
	for _, a := range ch {
		c = a.Apply(c)
	}
	return c
}

// Then returns a new chain with next appended; ch is left untouched.
func (ch Chain) Then(next ...Arranger) Chain {
	out := make(Chain, 0, len(ch)+len(next))
	out = append(out, ch...)
	return append(out, next...)
}

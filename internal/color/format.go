package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Format renders c as "#rrggbb", or "#rrggbbaa" when alpha does not round
// to fully opaque.
func Format(c HSLA) string {
	rgb := colorful.Hsl(wrapHue(c.H)*360, clampChannel(c.S), clampChannel(c.L)).Clamped()
	hex := rgb.Hex()
	alpha := to255(c.A)
	if alpha == 255 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, alpha)
}

// MustParse is Parse for package-level literals; it panics on bad input.
func MustParse(s string) HSLA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse reads "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)" or
// "rgba(r, g, b, a)" where a is in [0, 1].
func Parse(s string) (HSLA, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunc(s)
	}
	return HSLA{}, fmt.Errorf("unsupported color %q", s)
}

func parseHex(s string) (HSLA, error) {
	digits := s[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 && len(digits) != 8 {
		return HSLA{}, fmt.Errorf("color %q: want 3, 6 or 8 hex digits", s)
	}
	rgb, err := colorful.Hex("#" + digits[:6])
	if err != nil {
		return HSLA{}, fmt.Errorf("color %q: %w", s, err)
	}
	alpha := 1.0
	if len(digits) == 8 {
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return HSLA{}, fmt.Errorf("color %q: bad alpha: %w", s, err)
		}
		alpha = float64(a) / 255
	}
	return fromRGB(rgb, alpha), nil
}

func parseFunc(s string) (HSLA, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return HSLA{}, fmt.Errorf("color %q: missing closing parenthesis", s)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return HSLA{}, fmt.Errorf("color %q: want 3 or 4 components, got %d", s, len(parts))
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return HSLA{}, fmt.Errorf("color %q: component %d out of range", s, i)
		}
		channels[i] = float64(v) / 255
	}
	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < Min || a > Max {
			return HSLA{}, fmt.Errorf("color %q: alpha out of range", s)
		}
		alpha = a
	}
	return fromRGB(colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, alpha), nil
}

func fromRGB(rgb colorful.Color, alpha float64) HSLA {
	h, s, l := rgb.Hsl()
	return HSLA{H: wrapHue(h / 360), S: s, L: l, A: alpha}
}

func to255(v float64) uint8 {
	return uint8(math.Round(clampChannel(v) * 255))
}

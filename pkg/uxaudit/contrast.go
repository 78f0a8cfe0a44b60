// Package uxaudit generates UX-audit reports from structured findings and
// checks color contrast against the WCAG 2.1 thresholds.
package uxaudit

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Color is an opaque sRGB color.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var rgbFuncRe = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

// ParseColor accepts #rgb, #rrggbb, and rgb(r,g,b) color strings.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3:
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		case 6:
		default:
			return Color{}, errors.Errorf("invalid hex color %q: want 3 or 6 digits", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, errors.Errorf("invalid hex color %q", s)
		}
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	}

	if m := rgbFuncRe.FindStringSubmatch(s); m != nil {
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return Color{}, errors.Errorf("invalid rgb component %q in %q", m[i+1], s)
			}
			ch[i] = uint8(n)
		}
		return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
	}

	return Color{}, errors.Errorf("unrecognized color %q: want #rgb, #rrggbb, or rgb(r,g,b)", s)
}

// Luminance returns the WCAG relative luminance of the color.
func (c Color) Luminance() float64 {
	lin := func(v uint8) float64 {
		s := float64(v) / 255
		if s <= 0.03928 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in the
// range [1, 21].
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Verdict holds pass/fail against each WCAG 2.1 contrast threshold.
type Verdict struct {
	Ratio     float64 `json:"ratio"`
	AANormal  bool    `json:"aaNormal"`  // >= 4.5
	AALarge   bool    `json:"aaLarge"`   // >= 3.0
	AAANormal bool    `json:"aaaNormal"` // >= 7.0
	AAALarge  bool    `json:"aaaLarge"`  // >= 4.5
}

// Evaluate computes the contrast ratio of foreground on background and the
// resulting WCAG verdicts.
func Evaluate(fg, bg Color) Verdict {
	ratio := ContrastRatio(fg, bg)
	return Verdict{
		Ratio:     ratio,
		AANormal:  ratio >= 4.5,
		AALarge:   ratio >= 3.0,
		AAANormal: ratio >= 7.0,
		AAALarge:  ratio >= 4.5,
	}
}

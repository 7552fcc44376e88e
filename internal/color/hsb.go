package color

import "math"

// FromHSB constructs a Color from hue (degrees, wrapped into [0,360)),
// saturation, brightness and alpha (each clamped into [0,1]).
func FromHSB(h, s, b, a float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	b = clamp01(b)

	cc := b * s
	x := cc * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := b - cc

	var r, g, bl float64
	switch {
	case h < 60:
		r, g, bl = cc, x, 0
	case h < 120:
		r, g, bl = x, cc, 0
	case h < 180:
		r, g, bl = 0, cc, x
	case h < 240:
		r, g, bl = 0, x, cc
	case h < 300:
		r, g, bl = x, 0, cc
	default:
		r, g, bl = cc, 0, x
	}

	return New(r+m, g+m, bl+m, a)
}

// HSB returns hue (degrees in [0,360)), saturation, brightness and alpha.
// HSB is for editing surfaces only: converting to HSB and back is lossy
// (achromatic colors lose hue, floating-point rounding accumulates), so
// persistence always goes through Components instead.
func (c Color) HSB() (h, s, b, a float64) {
	max := math.Max(c.r, math.Max(c.g, c.b))
	min := math.Min(c.r, math.Min(c.g, c.b))
	delta := max - min

	switch {
	case delta == 0:
		h = 0
	case max == c.r:
		h = 60 * math.Mod((c.g-c.b)/delta, 6)
	case max == c.g:
		h = 60 * ((c.b-c.r)/delta + 2)
	default:
		h = 60 * ((c.r-c.g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	if max > 0 {
		s = delta / max
	}

	return h, s, max, c.a
}

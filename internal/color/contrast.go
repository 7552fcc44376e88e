package color

import "math"

// WCAG 2.x contrast thresholds for normal text.
const (
	// RatioAA is the minimum contrast ratio for WCAG AA conformance.
	RatioAA = 4.5

	// RatioAAA is the minimum contrast ratio for WCAG AAA conformance.
	RatioAAA = 7.0
)

// Grade classifies a contrast ratio against the WCAG conformance levels.
type Grade string

const (
	GradeFail Grade = "fail"
	GradeAA   Grade = "AA"
	GradeAAA  Grade = "AAA"
)

// RelativeLuminance computes the WCAG 2.x relative luminance of a color.
// Alpha is ignored: colors are treated as opaque when evaluated for
// contrast.
func RelativeLuminance(c Color) float64 {
	return 0.2126*linearize(c.r) + 0.7152*linearize(c.g) + 0.0722*linearize(c.b)
}

// ContrastRatio computes the WCAG contrast ratio between two colors.
// The result is in [1, 21] and is symmetric in its arguments.
func ContrastRatio(a, b Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// MeetsAA reports whether a contrast ratio satisfies WCAG AA for normal text.
func MeetsAA(ratio float64) bool {
	return ratio >= RatioAA
}

// MeetsAAA reports whether a contrast ratio satisfies WCAG AAA for normal text.
func MeetsAAA(ratio float64) bool {
	return ratio >= RatioAAA
}

// Level grades a contrast ratio. AAA implies AA, so the strongest
// satisfied level wins.
func Level(ratio float64) Grade {
	switch {
	case MeetsAAA(ratio):
		return GradeAAA
	case MeetsAA(ratio):
		return GradeAA
	default:
		return GradeFail
	}
}

// linearize converts an sRGB channel value to its linear-light value.
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

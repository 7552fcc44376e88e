// Package color provides the sRGB color value used by reading themes,
// plus the WCAG contrast math the accessibility checks are built on.
package color

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a hex color string cannot be parsed.
var ErrInvalidHex = errors.New("invalid hex color")

// Color is an immutable sRGB color with straight alpha. All channels are
// in [0,1]. Construction clamps out-of-range input rather than rejecting
// it, so a Color obtained from any constructor in this package is always
// valid.
type Color struct {
	r, g, b, a float64
}

// New constructs a Color, clamping each channel into [0,1].
func New(r, g, b, a float64) Color {
	return Color{
		r: clamp01(r),
		g: clamp01(g),
		b: clamp01(b),
		a: clamp01(a),
	}
}

// Opaque constructs a fully opaque Color from RGB channels.
func Opaque(r, g, b float64) Color {
	return New(r, g, b, 1)
}

// Components returns the stored channel values. Round-tripping through
// New and Components is exact for in-range input.
func (c Color) Components() (r, g, b, a float64) {
	return c.r, c.g, c.b, c.a
}

// Red returns the red channel.
func (c Color) Red() float64 { return c.r }

// Green returns the green channel.
func (c Color) Green() float64 { return c.g }

// Blue returns the blue channel.
func (c Color) Blue() float64 { return c.b }

// Alpha returns the alpha channel.
func (c Color) Alpha() float64 { return c.a }

// Hex renders the color as "#RRGGBB", or "#RRGGBBAA" when alpha is not 1.
func (c Color) Hex() string {
	if c.a < 1 {
		return fmt.Sprintf("#%02X%02X%02X%02X", toByte(c.r), toByte(c.g), toByte(c.b), toByte(c.a))
	}
	return fmt.Sprintf("#%02X%02X%02X", toByte(c.r), toByte(c.g), toByte(c.b))
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	a := 1.0
	if len(s) == 8 {
		a = float64(v&0xFF) / 255
		v >>= 8
	}
	return New(
		float64(v>>16&0xFF)/255,
		float64(v>>8&0xFF)/255,
		float64(v&0xFF)/255,
		a,
	), nil
}

// components is the persisted wire form of a Color.
type components struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// MarshalJSON encodes the color as {"red":…,"green":…,"blue":…,"alpha":…}.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(components{Red: c.r, Green: c.g, Blue: c.b, Alpha: c.a})
}

// UnmarshalJSON decodes the wire form, clamping each channel into [0,1].
func (c *Color) UnmarshalJSON(data []byte) error {
	var w components
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = New(w.Red, w.Green, w.Blue, w.Alpha)
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float64) uint8 {
	return uint8(v*255 + 0.5)
}

// Package schedule implements the policy deciding whether the light or
// dark side of a reading theme pair should be active.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vellumapp/vellum/internal/theme"
)

// ErrInvalidSettings is returned when decoded settings fail validation.
var ErrInvalidSettings = errors.New("invalid schedule settings")

// Mode is the policy governing automatic theme switching.
type Mode string

const (
	// ModeManual freezes the current selection; the engine makes no
	// decision at all.
	ModeManual Mode = "manual"

	// ModeSystem follows the host's light/dark appearance.
	ModeSystem Mode = "system"

	// ModeScheduled switches at fixed times of day.
	ModeScheduled Mode = "scheduled"

	// ModeAmbient switches on an ambient light reading supplied by the
	// caller; the engine never reads hardware itself.
	ModeAmbient Mode = "ambient"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeManual, ModeSystem, ModeScheduled, ModeAmbient:
		return true
	}
	return false
}

// TimeOfDay is a clock time with no date component.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// At extracts the time of day from a time.Time.
func At(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// Minutes returns minutes since midnight, in [0, 1439] for valid values.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Valid reports whether the time of day is within a single day.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute < 60
}

// String renders the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// wireDate pins the date component of serialized times of day. The wire
// format carries full timestamps; only the clock time is meaningful, so
// the date is fixed on encode and discarded on decode.
var wireDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// MarshalJSON encodes the time of day as an RFC 3339 timestamp on a
// fixed date.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	ts := wireDate.Add(time.Duration(t.Hour)*time.Hour + time.Duration(t.Minute)*time.Minute)
	return json.Marshal(ts.Format(time.RFC3339))
}

// UnmarshalJSON decodes an RFC 3339 timestamp, keeping only its clock time.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	*t = At(ts)
	return nil
}

// Settings holds the schedule policy and its mode-specific parameters.
// Settings are replaced wholesale, never field-patched.
type Settings struct {
	// Mode is the active switching policy.
	Mode Mode `json:"schedule"`

	// LightStart is when the light theme takes over in Scheduled mode.
	LightStart TimeOfDay `json:"lightThemeStartTime"`

	// DarkStart is when the dark theme takes over in Scheduled mode.
	DarkStart TimeOfDay `json:"darkThemeStartTime"`

	// AmbientThreshold is the light level in [0,1] below which Ambient
	// mode switches to dark.
	AmbientThreshold float64 `json:"ambientLightThreshold"`
}

// DefaultSettings returns the initial policy: follow the system, with a
// 07:00/19:00 schedule and a 0.5 ambient threshold ready if the user
// switches modes.
func DefaultSettings() Settings {
	return Settings{
		Mode:             ModeSystem,
		LightStart:       TimeOfDay{Hour: 7},
		DarkStart:        TimeOfDay{Hour: 19},
		AmbientThreshold: 0.5,
	}
}

// Validate checks decoded settings.
func (s Settings) Validate() error {
	if !s.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSettings, s.Mode)
	}
	if !s.LightStart.Valid() {
		return fmt.Errorf("%w: light start %s out of range", ErrInvalidSettings, s.LightStart)
	}
	if !s.DarkStart.Valid() {
		return fmt.Errorf("%w: dark start %s out of range", ErrInvalidSettings, s.DarkStart)
	}
	if s.AmbientThreshold < 0 || s.AmbientThreshold > 1 {
		return fmt.Errorf("%w: ambient threshold %v out of range", ErrInvalidSettings, s.AmbientThreshold)
	}
	return nil
}

// Decide evaluates the policy and returns the appearance that should be
// active. The second result is false in Manual mode, where the engine
// makes no decision and the caller must leave the current selection
// untouched. The function is pure: change detection between successive
// evaluations belongs to the caller.
func Decide(s Settings, now time.Time, systemDark bool, ambientLevel float64) (theme.Appearance, bool) {
	switch s.Mode {
	case ModeManual:
		return "", false

	case ModeSystem:
		if systemDark {
			return theme.AppearanceDark, true
		}
		return theme.AppearanceLight, true

	case ModeScheduled:
		if scheduledDark(At(now), s.LightStart, s.DarkStart) {
			return theme.AppearanceDark, true
		}
		return theme.AppearanceLight, true

	case ModeAmbient:
		// Strict comparison: a reading exactly at the threshold stays
		// light.
		if ambientLevel < s.AmbientThreshold {
			return theme.AppearanceDark, true
		}
		return theme.AppearanceLight, true

	default:
		return "", false
	}
}

// scheduledDark reports whether dark is active at cur given the two
// switch-over instants. The two regimes differ in which boundary belongs
// to which theme, and that asymmetry is deliberate: each start instant
// belongs to the theme it starts.
func scheduledDark(cur, light, dark TimeOfDay) bool {
	c, l, d := cur.Minutes(), light.Minutes(), dark.Minutes()
	if l < d {
		// Light window does not wrap midnight.
		return c >= d || c < l
	}
	// Dark window wraps midnight.
	return c >= d && c < l
}

package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vellumapp/vellum/internal/theme"
)

func clock(hour, minute int) time.Time {
	return time.Date(2024, time.March, 15, hour, minute, 0, 0, time.UTC)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.Equal(t, ModeSystem, s.Mode)
	require.Equal(t, TimeOfDay{Hour: 7}, s.LightStart)
	require.Equal(t, TimeOfDay{Hour: 19}, s.DarkStart)
	require.Equal(t, 0.5, s.AmbientThreshold)
	require.NoError(t, s.Validate())
}

func TestDecideManualMakesNoDecision(t *testing.T) {
	s := DefaultSettings()
	s.Mode = ModeManual
	_, ok := Decide(s, clock(12, 0), true, 0)
	require.False(t, ok)
}

func TestDecideFollowSystem(t *testing.T) {
	s := DefaultSettings()
	s.Mode = ModeSystem

	got, ok := Decide(s, clock(12, 0), true, 0)
	require.True(t, ok)
	require.Equal(t, theme.AppearanceDark, got)

	got, ok = Decide(s, clock(12, 0), false, 0)
	require.True(t, ok)
	require.Equal(t, theme.AppearanceLight, got)
}

func TestDecideScheduledNonWrapping(t *testing.T) {
	// Light at 07:00, dark at 19:00: light window inside one day.
	s := DefaultSettings()
	s.Mode = ModeScheduled

	tests := []struct {
		hour, minute int
		want         theme.Appearance
	}{
		{6, 59, theme.AppearanceDark},
		{7, 0, theme.AppearanceLight},
		{18, 59, theme.AppearanceLight},
		{19, 0, theme.AppearanceDark},
		{0, 0, theme.AppearanceDark},
		{23, 59, theme.AppearanceDark},
	}

	for _, tt := range tests {
		got, ok := Decide(s, clock(tt.hour, tt.minute), false, 0)
		require.True(t, ok)
		require.Equal(t, tt.want, got, "%02d:%02d", tt.hour, tt.minute)
	}
}

func TestDecideScheduledWrapping(t *testing.T) {
	// Light at 19:00, dark at 07:00: dark window spans midnight.
	s := DefaultSettings()
	s.Mode = ModeScheduled
	s.LightStart = TimeOfDay{Hour: 19}
	s.DarkStart = TimeOfDay{Hour: 7}

	tests := []struct {
		hour, minute int
		want         theme.Appearance
	}{
		{8, 0, theme.AppearanceDark},
		{6, 0, theme.AppearanceLight},
		{7, 0, theme.AppearanceDark},
		{19, 0, theme.AppearanceLight},
		{23, 30, theme.AppearanceLight},
	}

	for _, tt := range tests {
		got, ok := Decide(s, clock(tt.hour, tt.minute), false, 0)
		require.True(t, ok)
		require.Equal(t, tt.want, got, "%02d:%02d", tt.hour, tt.minute)
	}
}

func TestDecideAmbientStrictThreshold(t *testing.T) {
	s := DefaultSettings()
	s.Mode = ModeAmbient
	s.AmbientThreshold = 0.5

	tests := []struct {
		level float64
		want  theme.Appearance
	}{
		{0.3, theme.AppearanceDark},
		{0.7, theme.AppearanceLight},
		// The boundary belongs to light: the rule is a strict <.
		{0.5, theme.AppearanceLight},
	}

	for _, tt := range tests {
		got, ok := Decide(s, clock(12, 0), false, tt.level)
		require.True(t, ok)
		require.Equal(t, tt.want, got, "level %v", tt.level)
	}
}

func TestDecideIgnoresDate(t *testing.T) {
	s := DefaultSettings()
	s.Mode = ModeScheduled

	a, _ := Decide(s, time.Date(1999, 1, 1, 12, 0, 0, 0, time.UTC), false, 0)
	b, _ := Decide(s, time.Date(2030, 12, 31, 12, 0, 0, 0, time.UTC), false, 0)
	require.Equal(t, a, b)
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	orig := TimeOfDay{Hour: 19, Minute: 30}
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back TimeOfDay
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, orig, back)
}

func TestSettingsJSONWireKeys(t *testing.T) {
	data, err := json.Marshal(DefaultSettings())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"schedule", "lightThemeStartTime", "darkThemeStartTime", "ambientLightThreshold"} {
		require.Contains(t, raw, key)
	}

	var mode string
	require.NoError(t, json.Unmarshal(raw["schedule"], &mode))
	require.Equal(t, "system", mode)
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	s.Mode = "midnight"
	require.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s = DefaultSettings()
	s.AmbientThreshold = 1.5
	require.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s = DefaultSettings()
	s.LightStart = TimeOfDay{Hour: 24}
	require.ErrorIs(t, s.Validate(), ErrInvalidSettings)
}

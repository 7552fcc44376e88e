package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vellumapp/vellum/internal/color"
	"github.com/vellumapp/vellum/internal/schedule"
	"github.com/vellumapp/vellum/internal/theme"
)

func sampleState() *State {
	id := "custom-1"
	settings := schedule.DefaultSettings()
	settings.Mode = schedule.ModeScheduled

	return &State{
		CurrentThemeID: &id,
		Settings:       settings,
		CustomThemes: []theme.Theme{
			{
				ID:      "custom-1",
				Name:    "Midnight",
				Variant: theme.VariantCustom,
				Colors: theme.Palette{
					Background: color.Opaque(0.05, 0.05, 0.1),
					Text:       color.Opaque(0.9, 0.9, 0.95),
					Accent:     color.Opaque(0.4, 0.6, 1),
					Secondary:  color.Opaque(0.6, 0.6, 0.65),
					Surface:    color.Opaque(0.1, 0.1, 0.15),
				},
				Appearance: theme.AppearanceDark,
			},
		},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, err := m.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	want := sampleState()
	require.NoError(t, m.Save(ctx, want))

	got, err := m.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestMemoryStoreCorruptBlob(t *testing.T) {
	m := NewMemoryStore()
	m.Seed([]byte(`{"currentThemeId": 42`))

	_, err := m.Load(context.Background())
	require.ErrorIs(t, err, ErrDecodeFailure)
}

func TestMemoryStoreInvalidSettings(t *testing.T) {
	m := NewMemoryStore()
	m.Seed([]byte(`{"currentThemeId":null,"scheduleSettings":{"schedule":"lunar"},"customThemes":[]}`))

	_, err := m.Load(context.Background())
	require.ErrorIs(t, err, ErrDecodeFailure)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "themes.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	want := sampleState()
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSQLiteStoreOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "themes.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	first := sampleState()
	require.NoError(t, s.Save(ctx, first))

	second := DefaultState()
	require.NoError(t, s.Save(ctx, second))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, second, got)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "themes.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	want := sampleState()
	require.NoError(t, s.Save(ctx, want))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestStateWireKeys(t *testing.T) {
	data, err := json.Marshal(sampleState())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"currentThemeId", "scheduleSettings", "customThemes"} {
		require.Contains(t, raw, key)
	}
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	require.NotNil(t, s.CurrentThemeID)
	require.Equal(t, theme.IDLight, *s.CurrentThemeID)
	require.Equal(t, schedule.DefaultSettings(), s.Settings)
	require.Empty(t, s.CustomThemes)
}

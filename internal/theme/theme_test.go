package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vellumapp/vellum/internal/color"
)

func samplePalette() Palette {
	return Palette{
		Background: color.Opaque(0.05, 0.05, 0.1),
		Text:       color.Opaque(0.9, 0.9, 0.95),
		Accent:     color.Opaque(0.4, 0.6, 1),
		Secondary:  color.Opaque(0.6, 0.6, 0.65),
		Surface:    color.Opaque(0.1, 0.1, 0.15),
	}
}

func TestBuiltinsFixedIdentity(t *testing.T) {
	builtins := Builtins()
	require.Len(t, builtins, 3)
	require.Equal(t, IDLight, builtins[0].ID)
	require.Equal(t, IDDark, builtins[1].ID)
	require.Equal(t, IDSepia, builtins[2].ID)

	for _, b := range builtins {
		require.False(t, b.IsCustom(), b.ID)
	}
	require.Equal(t, AppearanceLight, Light.Appearance)
	require.Equal(t, AppearanceDark, Dark.Appearance)
	require.Equal(t, AppearanceLight, Sepia.Appearance)
}

func TestBuiltinFor(t *testing.T) {
	require.Equal(t, Dark, BuiltinFor(AppearanceDark))
	require.Equal(t, Light, BuiltinFor(AppearanceLight))
}

func TestWireFormatKeys(t *testing.T) {
	custom := Theme{
		ID:         "abc-123",
		Name:       "Midnight",
		Variant:    VariantCustom,
		Colors:     samplePalette(),
		Appearance: AppearanceDark,
	}

	data, err := Encode(custom)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"id", "name", "background", "text", "accent", "secondary", "surface", "colorScheme"} {
		require.Contains(t, raw, key)
	}

	var scheme string
	require.NoError(t, json.Unmarshal(raw["colorScheme"], &scheme))
	require.Equal(t, "dark", scheme)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	custom := Theme{
		ID:         "t1",
		Name:       "Night Owl",
		Variant:    VariantCustom,
		Colors:     samplePalette(),
		Appearance: AppearanceDark,
	}

	data, err := Encode(custom)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, custom, back)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":      `{{`,
		"missing id":    `{"name":"x","colorScheme":"light"}`,
		"missing name":  `{"id":"x","colorScheme":"light"}`,
		"bad scheme":    `{"id":"x","name":"x","colorScheme":"sepia"}`,
		"empty payload": ``,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(payload))
			require.ErrorIs(t, err, ErrDecodeFailure)
		})
	}
}

func TestRegistryInsertAndFind(t *testing.T) {
	r := NewRegistry()
	custom := Theme{ID: "c1", Name: "Mine", Variant: VariantCustom, Colors: samplePalette(), Appearance: AppearanceDark}

	require.NoError(t, r.InsertCustom(custom))

	got, ok := r.FindByID("c1")
	require.True(t, ok)
	require.Equal(t, custom, got)

	_, ok = r.FindByID("C1")
	require.False(t, ok, "lookup is case-sensitive")
}

func TestRegistryRejectsDuplicateID(t *testing.T) {
	r := NewRegistry()
	custom := Theme{ID: "c1", Name: "Mine", Variant: VariantCustom, Appearance: AppearanceDark}
	require.NoError(t, r.InsertCustom(custom))
	require.ErrorIs(t, r.InsertCustom(custom), ErrDuplicateID)

	clash := Theme{ID: IDLight, Name: "Impostor", Variant: VariantCustom, Appearance: AppearanceLight}
	require.ErrorIs(t, r.InsertCustom(clash), ErrDuplicateID)
}

func TestRegistryRemoveIdempotent(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.InsertCustom(Theme{ID: "c1", Name: "Mine", Variant: VariantCustom, Appearance: AppearanceDark}))

	r.RemoveCustom("c1")
	first := r.All()

	r.RemoveCustom("c1")
	require.Equal(t, first, r.All())
	require.Empty(t, r.Custom())
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	orig := Theme{ID: "c1", Name: "Mine", Variant: VariantCustom, Colors: samplePalette(), Appearance: AppearanceDark}
	require.NoError(t, r.InsertCustom(orig))

	updated := orig
	updated.Name = "Renamed"
	require.NoError(t, r.ReplaceCustom(updated))

	got, ok := r.FindByID("c1")
	require.True(t, ok)
	require.Equal(t, "Renamed", got.Name)

	require.ErrorIs(t, r.ReplaceCustom(Theme{ID: "missing"}), ErrNotFound)
}

func TestRegistryAllOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.InsertCustom(Theme{ID: "c1", Name: "First", Variant: VariantCustom, Appearance: AppearanceDark}))
	require.NoError(t, r.InsertCustom(Theme{ID: "c2", Name: "Second", Variant: VariantCustom, Appearance: AppearanceLight}))

	all := r.All()
	require.Len(t, all, 5)
	require.Equal(t, IDLight, all[0].ID)
	require.Equal(t, IDDark, all[1].ID)
	require.Equal(t, IDSepia, all[2].ID)
	require.Equal(t, "c1", all[3].ID)
	require.Equal(t, "c2", all[4].ID)
}

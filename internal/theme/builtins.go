package theme

import "github.com/vellumapp/vellum/internal/color"

// Built-in theme ids.
const (
	IDLight = "light"
	IDDark  = "dark"
	IDSepia = "sepia"
)

// The three built-in themes. Constructed once, never mutated.
var (
	Light = Theme{
		ID:      IDLight,
		Name:    "Light",
		Variant: VariantLight,
		Colors: Palette{
			Background: mustHex("#FFFFFF"),
			Text:       mustHex("#1C1C1E"),
			Accent:     mustHex("#3478F6"),
			Secondary:  mustHex("#6E6E73"),
			Surface:    mustHex("#F2F2F7"),
		},
		Appearance: AppearanceLight,
	}

	Dark = Theme{
		ID:      IDDark,
		Name:    "Dark",
		Variant: VariantDark,
		Colors: Palette{
			Background: mustHex("#121212"),
			Text:       mustHex("#E6E6E8"),
			Accent:     mustHex("#5B8DEF"),
			Secondary:  mustHex("#98989F"),
			Surface:    mustHex("#1E1E22"),
		},
		Appearance: AppearanceDark,
	}

	Sepia = Theme{
		ID:      IDSepia,
		Name:    "Sepia",
		Variant: VariantSepia,
		Colors: Palette{
			Background: mustHex("#FBF0D9"),
			Text:       mustHex("#4B3A2A"),
			Accent:     mustHex("#A0622D"),
			Secondary:  mustHex("#8A7A63"),
			Surface:    mustHex("#F4E4C8"),
		},
		Appearance: AppearanceLight,
	}
)

// Builtins returns the fixed built-in themes in display order.
func Builtins() []Theme {
	return []Theme{Light, Dark, Sepia}
}

// BuiltinFor returns the built-in theme matching an appearance: Dark for
// dark, Light otherwise. Used when automatic switching picks a side.
func BuiltinFor(a Appearance) Theme {
	if a == AppearanceDark {
		return Dark
	}
	return Light
}

func mustHex(s string) color.Color {
	c, err := color.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

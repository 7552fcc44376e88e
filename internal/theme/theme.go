// Package theme defines reading themes and the registry that holds them.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vellumapp/vellum/internal/color"
)

// Theme errors.
var (
	ErrNotFound      = errors.New("theme not found")
	ErrDuplicateID   = errors.New("duplicate theme id")
	ErrDecodeFailure = errors.New("theme decode failed")
)

// Variant identifies which kind of theme a value is. The set is closed:
// three fixed built-ins plus user-authored customs.
type Variant string

const (
	VariantLight  Variant = "light"
	VariantDark   Variant = "dark"
	VariantSepia  Variant = "sepia"
	VariantCustom Variant = "custom"
)

// Appearance is the light/dark rendering mode a theme prefers. Host UIs
// use it to switch system chrome alongside the reading surface.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// Palette holds the five semantic color roles every theme supplies.
type Palette struct {
	// Background is the page background behind reading content.
	Background color.Color

	// Text is the primary reading text color.
	Text color.Color

	// Accent is the highlight color for links, selection and controls.
	Accent color.Color

	// Secondary is the muted color for metadata and captions.
	Secondary color.Color

	// Surface is the fill for cards, sheets and toolbars.
	Surface color.Color
}

// Theme is an immutable theme snapshot. Updating a custom theme replaces
// the stored value wholesale; nothing mutates a Theme in place.
type Theme struct {
	// ID is the stable identity. Built-ins use fixed ids ("light",
	// "dark", "sepia"); customs carry a generated unique id.
	ID string

	// Name is the display name.
	Name string

	// Variant identifies the theme kind.
	Variant Variant

	// Colors holds the five role colors.
	Colors Palette

	// Appearance is the preferred light/dark rendering mode.
	Appearance Appearance
}

// IsCustom reports whether the theme is user-authored.
func (t Theme) IsCustom() bool {
	return t.Variant == VariantCustom
}

// wireTheme is the persisted and exported per-theme object shape.
type wireTheme struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Background  color.Color `json:"background"`
	Text        color.Color `json:"text"`
	Accent      color.Color `json:"accent"`
	Secondary   color.Color `json:"secondary"`
	Surface     color.Color `json:"surface"`
	ColorScheme string      `json:"colorScheme"`
}

// MarshalJSON encodes the theme in the wire shape shared by persistence
// and single-theme export.
func (t Theme) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireTheme{
		ID:          t.ID,
		Name:        t.Name,
		Background:  t.Colors.Background,
		Text:        t.Colors.Text,
		Accent:      t.Colors.Accent,
		Secondary:   t.Colors.Secondary,
		Surface:     t.Colors.Surface,
		ColorScheme: string(t.Appearance),
	})
}

// UnmarshalJSON decodes the wire shape. Only custom themes travel on the
// wire, so the decoded variant is always Custom. Returns ErrDecodeFailure
// on malformed input.
func (t *Theme) UnmarshalJSON(data []byte) error {
	var w wireTheme
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	if strings.TrimSpace(w.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrDecodeFailure)
	}
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrDecodeFailure)
	}

	appearance := Appearance(w.ColorScheme)
	switch appearance {
	case AppearanceLight, AppearanceDark:
	default:
		return fmt.Errorf("%w: unknown colorScheme %q", ErrDecodeFailure, w.ColorScheme)
	}

	*t = Theme{
		ID:      w.ID,
		Name:    w.Name,
		Variant: VariantCustom,
		Colors: Palette{
			Background: w.Background,
			Text:       w.Text,
			Accent:     w.Accent,
			Secondary:  w.Secondary,
			Surface:    w.Surface,
		},
		Appearance: appearance,
	}
	return nil
}

// Encode serializes a single theme to the export wire format.
func Encode(t Theme) ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}
	return data, nil
}

// Decode parses a single exported theme. The result is always a custom
// theme; callers that import it are expected to re-key it with a fresh id.
func Decode(data []byte) (Theme, error) {
	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		if errors.Is(err, ErrDecodeFailure) {
			return Theme{}, err
		}
		return Theme{}, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return t, nil
}

// Package store persists the theme engine's state snapshot.
package store

import (
	"context"
	"errors"

	"github.com/vellumapp/vellum/internal/schedule"
	"github.com/vellumapp/vellum/internal/theme"
)

// Store errors.
var (
	// ErrNotFound indicates no snapshot has been saved yet.
	ErrNotFound = errors.New("no persisted state")

	// ErrDecodeFailure indicates a saved snapshot could not be decoded.
	ErrDecodeFailure = errors.New("state decode failed")
)

// State is the single persisted snapshot: the active theme id, the
// schedule settings, and the custom themes in creation order. It is
// rewritten wholesale after every mutating operation.
type State struct {
	CurrentThemeID *string           `json:"currentThemeId"`
	Settings       schedule.Settings `json:"scheduleSettings"`
	CustomThemes   []theme.Theme     `json:"customThemes"`
}

// DefaultState returns the state of a fresh install: Light theme,
// default schedule, no custom themes.
func DefaultState() *State {
	id := theme.IDLight
	return &State{
		CurrentThemeID: &id,
		Settings:       schedule.DefaultSettings(),
		CustomThemes:   nil,
	}
}

// Store is the durable home of the state snapshot. Implementations are
// small local key-value stores; saves are cheap and synchronous.
type Store interface {
	// Load reads the snapshot. Returns ErrNotFound when nothing has
	// been saved and ErrDecodeFailure when the stored blob is corrupt.
	Load(ctx context.Context) (*State, error)

	// Save replaces the snapshot.
	Save(ctx context.Context, s *State) error

	// Close releases underlying resources.
	Close() error
}

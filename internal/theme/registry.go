package theme

import "fmt"

// Registry holds the fixed built-ins plus the mutable ordered collection
// of custom themes (insertion order is creation order). It performs no
// locking of its own; the owning manager serializes access.
type Registry struct {
	customs []Theme
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Builtins returns the fixed built-in themes.
func (r *Registry) Builtins() []Theme {
	return Builtins()
}

// Custom returns a copy of the custom themes in stored order.
func (r *Registry) Custom() []Theme {
	out := make([]Theme, len(r.customs))
	copy(out, r.customs)
	return out
}

// All returns builtins followed by custom themes in stored order.
func (r *Registry) All() []Theme {
	out := make([]Theme, 0, 3+len(r.customs))
	out = append(out, Builtins()...)
	out = append(out, r.customs...)
	return out
}

// FindByID looks up a theme by exact id match across builtins and customs.
func (r *Registry) FindByID(id string) (Theme, bool) {
	for _, t := range r.All() {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// InsertCustom appends a custom theme. Returns ErrDuplicateID if the id
// already exists anywhere in the registry. Ids are generated in normal
// operation, so a collision only happens with externally supplied data.
func (r *Registry) InsertCustom(t Theme) error {
	if _, exists := r.FindByID(t.ID); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, t.ID)
	}
	r.customs = append(r.customs, t)
	return nil
}

// RemoveCustom removes the custom theme with the given id. Removing an
// absent id is a no-op, which makes deletion idempotent.
func (r *Registry) RemoveCustom(id string) {
	for i, t := range r.customs {
		if t.ID == id {
			r.customs = append(r.customs[:i], r.customs[i+1:]...)
			return
		}
	}
}

// ReplaceCustom swaps the stored entry sharing the theme's id. Returns
// ErrNotFound if no such custom theme exists.
func (r *Registry) ReplaceCustom(t Theme) error {
	for i, existing := range r.customs {
		if existing.ID == t.ID {
			r.customs[i] = t
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, t.ID)
}

package manager

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vellumapp/vellum/internal/schedule"
	"github.com/vellumapp/vellum/internal/theme"
)

// Subscription errors.
var (
	ErrSubscriberExists   = errors.New("subscriber id already registered")
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrNilCallback        = errors.New("callback is required")
)

// ChangeKind identifies what a Change notification carries.
type ChangeKind string

const (
	// ChangeTheme means the current theme was replaced.
	ChangeTheme ChangeKind = "theme"

	// ChangeSettings means the schedule settings were replaced.
	ChangeSettings ChangeKind = "settings"
)

// Change is delivered to subscribers after a mutation. Exactly one of
// Theme or Settings is meaningful, per Kind.
type Change struct {
	Kind     ChangeKind
	Theme    theme.Theme
	Settings schedule.Settings
}

// subscriptions is the observer registry replacing the original's
// reactive property publication. Callbacks run synchronously on the
// mutating call, after the manager's lock is released.
type subscriptions struct {
	mu   sync.RWMutex
	subs map[string]func(Change)
}

func (s *subscriptions) add(id string, fn func(Change)) error {
	if fn == nil {
		return ErrNilCallback
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[string]func(Change))
	}
	if _, exists := s.subs[id]; exists {
		return fmt.Errorf("%w: %q", ErrSubscriberExists, id)
	}
	s.subs[id] = fn
	return nil
}

func (s *subscriptions) remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.subs[id]; !exists {
		return fmt.Errorf("%w: %q", ErrSubscriberNotFound, id)
	}
	delete(s.subs, id)
	return nil
}

func (s *subscriptions) notify(c Change) {
	s.mu.RLock()
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
}

// Subscribe registers a callback invoked after every current-theme or
// settings change. Ids must be unique; Unsubscribe with the same id
// removes the registration.
func (m *Manager) Subscribe(id string, fn func(Change)) error {
	return m.subsRegistry.add(id, fn)
}

// Unsubscribe removes a previously registered callback.
func (m *Manager) Unsubscribe(id string) error {
	return m.subsRegistry.remove(id)
}

func (m *Manager) notifyThemeChanged(t theme.Theme) {
	m.subsRegistry.notify(Change{Kind: ChangeTheme, Theme: t})
}

func (m *Manager) notifySettingsChanged(s schedule.Settings) {
	m.subsRegistry.notify(Change{Kind: ChangeSettings, Settings: s})
}

// Package manager wires the theme registry, schedule policy and
// persistence together behind the API the reading UI consumes.
package manager

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vellumapp/vellum/internal/logging"
	"github.com/vellumapp/vellum/internal/schedule"
	"github.com/vellumapp/vellum/internal/store"
	"github.com/vellumapp/vellum/internal/theme"
)

// Manager errors.
var (
	ErrAlreadyRunning = errors.New("manager already running")
	ErrNotRunning     = errors.New("manager not running")
)

// DefaultTickInterval is how often the schedule policy is re-evaluated
// while Scheduled mode is active. Switch-over times have minute
// granularity, so once a minute is enough.
const DefaultTickInterval = time.Minute

// Option configures a Manager.
type Option func(*Manager)

// WithClock injects the time source used for schedule evaluation.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the manager's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithTickInterval overrides the schedule re-evaluation interval.
func WithTickInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.tickInterval = d
		}
	}
}

// Manager owns the current-theme state and the custom theme collection.
// All access is serialized through one mutex: the original design relied
// on a single UI thread, a concurrent host gets explicit exclusion
// instead.
type Manager struct {
	mu       sync.RWMutex
	registry *theme.Registry
	current  theme.Theme
	settings schedule.Settings

	// Last known external signals. The engine never reads hardware;
	// hosts push these in.
	systemDark   bool
	ambientLevel float64

	st           store.Store
	logger       zerolog.Logger
	now          func() time.Time
	tickInterval time.Duration

	subsRegistry subscriptions

	// Ticker lifecycle.
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	rearm   chan struct{}
}

// New constructs a Manager and restores persisted state. A corrupt or
// missing snapshot falls back silently to defaults: the user sees an app
// that forgot its custom themes, never a load error. A nil store gets an
// in-memory one, for hosts that handle durability themselves.
func New(st store.Store, opts ...Option) *Manager {
	if st == nil {
		st = store.NewMemoryStore()
	}

	m := &Manager{
		registry:     theme.NewRegistry(),
		st:           st,
		logger:       logging.Component("theme-manager"),
		now:          time.Now,
		tickInterval: DefaultTickInterval,
		ambientLevel: 1,
		rearm:        make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.restore()
	return m
}

// restore loads the persisted snapshot into the registry and current
// selection.
func (m *Manager) restore() {
	state, err := m.st.Load(context.Background())
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			m.logger.Warn().Err(err).Msg("failed to load persisted state, using defaults")
		}
		state = store.DefaultState()
	}

	for _, t := range state.CustomThemes {
		if err := m.registry.InsertCustom(t); err != nil {
			m.logger.Warn().Err(err).Str("theme_id", t.ID).Msg("skipping persisted custom theme")
		}
	}

	m.settings = state.Settings
	m.current = theme.Light
	if state.CurrentThemeID != nil {
		if t, ok := m.registry.FindByID(*state.CurrentThemeID); ok {
			m.current = t
		}
	}
}

// CurrentTheme returns the active theme snapshot.
func (m *Manager) CurrentTheme() theme.Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// AllThemes returns builtins followed by custom themes in stored order.
func (m *Manager) AllThemes() []theme.Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.registry.All()
}

// CustomThemes returns the custom themes in creation order.
func (m *Manager) CustomThemes() []theme.Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.registry.Custom()
}

// Settings returns the current schedule settings.
func (m *Manager) Settings() schedule.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// FindTheme looks up any theme by id.
func (m *Manager) FindTheme(id string) (theme.Theme, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.registry.FindByID(id)
}

// Select makes the given theme current unconditionally, persists, and
// notifies subscribers. Works for any variant, built-in or custom.
func (m *Manager) Select(t theme.Theme) {
	m.mu.Lock()
	m.current = t
	m.persistLocked()
	m.mu.Unlock()

	m.notifyThemeChanged(t)
}

// SelectByID selects the theme with the given id. An unknown id is a
// benign no-op; selection only happens on a hit.
func (m *Manager) SelectByID(id string) {
	m.mu.RLock()
	t, ok := m.registry.FindByID(id)
	m.mu.RUnlock()

	if !ok {
		m.logger.Debug().Str("theme_id", id).Msg("select skipped, theme not found")
		return
	}
	m.Select(t)
}

// CreateCustom builds a custom theme with a freshly generated id and
// inserts it. The new theme is not selected: creation and activation are
// separate user actions, and callers compose them explicitly.
func (m *Manager) CreateCustom(name string, colors theme.Palette, appearance theme.Appearance) theme.Theme {
	t := theme.Theme{
		ID:         uuid.New().String(),
		Name:       name,
		Variant:    theme.VariantCustom,
		Colors:     colors,
		Appearance: appearance,
	}

	m.mu.Lock()
	for m.registry.InsertCustom(t) != nil {
		// Generated ids collide only in theory; re-key and retry.
		t.ID = uuid.New().String()
	}
	m.persistLocked()
	m.mu.Unlock()

	m.logger.Info().Str("theme_id", t.ID).Str("name", name).Msg("custom theme created")
	return t
}

// UpdateCustom replaces the stored custom theme sharing the given
// theme's id. Returns theme.ErrNotFound if no such custom theme exists.
// If the updated theme is current, the current reference is replaced too
// so the reading surface refreshes live.
func (m *Manager) UpdateCustom(t theme.Theme) error {
	m.mu.Lock()
	if err := m.registry.ReplaceCustom(t); err != nil {
		m.mu.Unlock()
		return err
	}

	wasCurrent := m.current.ID == t.ID
	if wasCurrent {
		m.current = t
	}
	m.persistLocked()
	m.mu.Unlock()

	if wasCurrent {
		m.notifyThemeChanged(t)
	}
	return nil
}

// DeleteCustom removes the custom theme with the given id. Deleting an
// absent id is a no-op. If the deleted theme was current, the built-in
// Light theme takes its place.
func (m *Manager) DeleteCustom(id string) {
	m.mu.Lock()
	m.registry.RemoveCustom(id)

	fellBack := m.current.ID == id
	if fellBack {
		m.current = theme.Light
	}
	m.persistLocked()
	m.mu.Unlock()

	if fellBack {
		m.notifyThemeChanged(theme.Light)
	}
}

// UpdateSettings replaces the schedule settings wholesale, persists,
// re-arms the evaluation ticker and immediately re-evaluates, so a mode
// switch takes effect without waiting for the next tick.
func (m *Manager) UpdateSettings(s schedule.Settings) {
	m.mu.Lock()
	m.settings = s
	m.persistLocked()
	m.mu.Unlock()

	m.notifySettingsChanged(s)

	select {
	case m.rearm <- struct{}{}:
	default:
	}

	m.Evaluate()
}

// SetSystemAppearance records the host's light/dark appearance. The
// signal only drives switching while the policy follows the system.
func (m *Manager) SetSystemAppearance(dark bool) {
	m.mu.Lock()
	m.systemDark = dark
	mode := m.settings.Mode
	m.mu.Unlock()

	if mode == schedule.ModeSystem {
		m.Evaluate()
	}
}

// SetAmbientLevel records an ambient light reading in [0,1]. The reading
// only drives switching while the policy is ambient.
func (m *Manager) SetAmbientLevel(level float64) {
	m.mu.Lock()
	m.ambientLevel = level
	mode := m.settings.Mode
	m.mu.Unlock()

	if mode == schedule.ModeAmbient {
		m.Evaluate()
	}
}

// ExportTheme serializes a single theme to the export wire format.
func (m *Manager) ExportTheme(t theme.Theme) ([]byte, error) {
	return theme.Encode(t)
}

// ImportTheme parses an exported theme and inserts it as a new custom
// theme under a freshly generated id. The imported id is never reused,
// so importing the same payload twice yields two distinct themes.
// Returns theme.ErrDecodeFailure if the payload does not parse.
func (m *Manager) ImportTheme(data []byte) (theme.Theme, error) {
	t, err := theme.Decode(data)
	if err != nil {
		return theme.Theme{}, err
	}

	t.ID = uuid.New().String()

	m.mu.Lock()
	for m.registry.InsertCustom(t) != nil {
		t.ID = uuid.New().String()
	}
	m.persistLocked()
	m.mu.Unlock()

	m.logger.Info().Str("theme_id", t.ID).Str("name", t.Name).Msg("theme imported")
	return t, nil
}

// Evaluate runs the schedule policy against the current signals and, if
// the decided appearance names a different theme than the current one,
// selects the corresponding built-in. Manual mode never switches.
func (m *Manager) Evaluate() {
	m.mu.RLock()
	settings := m.settings
	now := m.now()
	systemDark := m.systemDark
	ambient := m.ambientLevel
	currentID := m.current.ID
	m.mu.RUnlock()

	appearance, ok := schedule.Decide(settings, now, systemDark, ambient)
	if !ok {
		return
	}

	target := theme.BuiltinFor(appearance)
	if target.ID == currentID {
		return
	}

	m.logger.Debug().
		Str("mode", string(settings.Mode)).
		Str("theme_id", target.ID).
		Msg("schedule policy switching theme")
	m.Select(target)
}

// Start launches the periodic re-evaluation loop. The tick only acts
// while the policy is Scheduled; System and Ambient modes are driven by
// their external signals and Manual never switches.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return ErrAlreadyRunning
	}

	m.ctx, m.cancel = context.WithCancel(ctx)
	m.running = true

	m.wg.Add(1)
	go m.runLoop()

	m.logger.Info().Dur("tick_interval", m.tickInterval).Msg("schedule evaluation started")
	return nil
}

// Stop halts the re-evaluation loop and waits for it to exit.
func (m *Manager) Stop() error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return ErrNotRunning
	}
	m.cancel()
	m.running = false
	m.mu.Unlock()

	m.wg.Wait()
	m.logger.Info().Msg("schedule evaluation stopped")
	return nil
}

// runLoop drives periodic evaluation. The ticker is armed only while
// Scheduled mode is active; settings updates re-arm it via the rearm
// channel.
func (m *Manager) runLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()

	for {
		var tickC <-chan time.Time
		if m.Settings().Mode == schedule.ModeScheduled {
			tickC = ticker.C
		}

		select {
		case <-m.ctx.Done():
			return
		case <-m.rearm:
			ticker.Reset(m.tickInterval)
		case <-tickC:
			m.Evaluate()
		}
	}
}

// persistLocked writes the current snapshot. Persistence is best-effort:
// a failed save is logged and swallowed, the in-memory state stays
// authoritative for the running session.
func (m *Manager) persistLocked() {
	var currentID *string
	if m.current.ID != "" {
		id := m.current.ID
		currentID = &id
	}

	state := &store.State{
		CurrentThemeID: currentID,
		Settings:       m.settings,
		CustomThemes:   m.registry.Custom(),
	}

	if err := m.st.Save(context.Background(), state); err != nil {
		m.logger.Warn().Err(err).Msg("failed to persist theme state")
	}
}

package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/witherdream/internal/config"
	"github.com/vovakirdan/witherdream/internal/core"
	"github.com/vovakirdan/witherdream/internal/session"
	"github.com/vovakirdan/witherdream/internal/storage"
)

// configMsg carries a reloaded configuration from the watcher.
type configMsg config.Config

// configErrMsg reports a config file that failed to reload.
type configErrMsg struct{ err error }

// Model is the Bubble Tea model that hosts one dream session.
type Model struct {
	sess     *session.Session
	screen   *core.Screen
	store    *storage.Store
	runtime  core.RuntimeConfig
	keys     KeyMap
	tracker  *HoldTracker
	help     help.Model
	logger   *log.Logger
	watcher  *config.Watcher
	dreamer  string
	lastTick time.Time
	now      func() time.Time
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithStore records finished dreams in the journal.
func WithStore(store *storage.Store) ModelOption {
	return func(m *Model) { m.store = store }
}

// WithModelLogger sets the logger for journal and reload messages.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithDreamer names the player in journal entries.
func WithDreamer(name string) ModelOption {
	return func(m *Model) { m.dreamer = name }
}

// WithWatcher applies configurations the watcher reloads.
func WithWatcher(w *config.Watcher) ModelOption {
	return func(m *Model) { m.watcher = w }
}

// withClock replaces the wall clock used to timestamp key presses.
func withClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

// NewModel creates a model at the start menu.
func NewModel(cfg config.Config, rt core.RuntimeConfig, opts ...ModelOption) Model {
	def := core.DefaultConfig()
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	if rt.TickRate <= 0 {
		rt.TickRate = def.TickRate
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	m := Model{
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		runtime: rt,
		keys:    NewKeyMap(cfg.Bindings()),
		tracker: NewHoldTracker(graceDuration(cfg)),
		help:    help.New(),
		logger:  log.New(io.Discard),
		dreamer: "local",
		now:     time.Now,
	}
	m.help.Width = rt.ScreenW
	for _, opt := range opts {
		opt(&m)
	}

	m.sess = session.New(cfg, rand.New(rand.NewSource(rt.Seed)),
		session.WithLogger(m.logger.WithPrefix("session")))
	return m
}

func graceDuration(cfg config.Config) time.Duration {
	return time.Duration(cfg.Input.HoldGrace * float64(time.Second))
}

// Session returns the hosted session.
func (m Model) Session() *session.Session {
	return m.sess
}

// Init starts the tick loop and, when watching, the config listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.runtime.TickRate), waitForConfig(m.watcher))
}

// waitForConfig blocks until the watcher delivers a config or an error.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return nil
			}
			return configMsg(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configMsg:
		m.applyConfig(config.Config(msg))
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.logger.Warn("config reload failed, keeping previous", "error", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, quit := m.keys.Lookup(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.tracker.Press(action, m.now())
	}
	return m, nil
}

// handleTick advances the simulation by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDT(m.lastTick, now)
	m.lastTick = now

	res := m.sess.Advance(dt, m.tracker.Frame(now))
	for _, ev := range res.Events {
		if ended, ok := ev.(session.DreamEnded); ok {
			m.recordDream(ended.Record)
		}
	}

	return m, tickCmd(m.runtime.TickRate)
}

// recordDream saves a finished dream. The game continues if it fails.
func (m Model) recordDream(r session.DreamRecord) {
	if m.store == nil {
		return
	}
	id, err := m.store.SaveDream(storage.DreamEntry{
		Dreamer:    m.dreamer,
		Theme:      r.Theme,
		MazeWidth:  r.MazeWidth,
		MazeHeight: r.MazeHeight,
		Items:      r.Items,
		Duration:   r.Duration,
	})
	if err != nil {
		m.logger.Warn("could not save dream", "error", err)
		return
	}
	m.logger.Info("dream recorded", "id", id, "theme", r.Theme, "items", len(r.Items))
}

// applyConfig swaps in a reloaded configuration.
func (m *Model) applyConfig(cfg config.Config) {
	m.sess.Reconfigure(cfg)
	m.keys = NewKeyMap(cfg.Bindings())
	m.tracker.SetGrace(graceDuration(cfg))
	m.tracker.Reset()
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".witherdream", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.sess.Phase(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

func (m Model) render() {
	Draw(m.screen, m.sess.Snapshot(), m.keys, m.help.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local dream session.
func Run(cfg config.Config, rt core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(cfg, rt, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

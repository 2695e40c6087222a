// Package session implements the dream mode controller: one Session owns the
// whole simulation state and advances it a frame at a time.
//
// Per-frame order inside Advance:
//  1. transition timer (a finished fade is finalized here)
//  2. dust particles
//  3. phase update, skipped while a fade is in flight
//  4. dialogue navigation and confirm
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/witherdream/internal/config"
	"github.com/vovakirdan/witherdream/internal/core"
	"github.com/vovakirdan/witherdream/internal/dialogue"
	"github.com/vovakirdan/witherdream/internal/interaction"
	"github.com/vovakirdan/witherdream/internal/inventory"
	"github.com/vovakirdan/witherdream/internal/maze"
	"github.com/vovakirdan/witherdream/internal/transition"
)

// Phase is the top-level scene state.
type Phase uint8

const (
	PhaseStartMenu Phase = iota
	PhaseSettings
	PhaseCredits
	PhaseAwake
	PhaseAsleep
	PhaseDreaming
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStartMenu:
		return "start_menu"
	case PhaseSettings:
		return "settings"
	case PhaseCredits:
		return "credits"
	case PhaseAwake:
		return "awake"
	case PhaseAsleep:
		return "asleep"
	case PhaseDreaming:
		return "dreaming"
	default:
		return "unknown"
	}
}

// legalSource is the only phase each transition may start from.
var legalSource = map[transition.Kind]Phase{
	transition.ToDream: PhaseAsleep,
	transition.ToAwake: PhaseDreaming,
}

// Theme is the look of the current dream world.
type Theme struct {
	Name  string
	Color core.Color
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger phase changes and transitions are reported to.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session is the single owner of a player's simulation state.
// It is not safe for concurrent use.
type Session struct {
	cfg      config.Config
	rng      core.Rand
	log      *log.Logger
	resolver *interaction.Resolver

	phase Phase
	menu  MenuOption
	timer *transition.Timer

	player  core.Vec
	boosted bool
	items   []interaction.Item
	npcs    []interaction.NPC

	grid  *maze.Grid
	theme *Theme
	hold  *interaction.Hold

	inv       *inventory.Inventory
	dlg       *dialogue.Dialogue
	particles []Particle

	dreamItems []string
	dreamTime  float64
}

// New creates a session at the start menu. rng drives maze carving, theme
// selection and dust; pass a seeded source for reproducible runs.
func New(cfg config.Config, rng core.Rand, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		rng:      rng,
		log:      log.New(io.Discard),
		resolver: interaction.New(cfg),
		phase:    PhaseStartMenu,
		timer:    transition.NewTimer(cfg.Timing.Transition),
		player:   cfg.Player.Spawn.Vec(),
		hold:     interaction.NewHold(cfg.Timing.WakeHold),
		inv:      inventory.New(),
		dlg:      dialogue.New(),
	}
	for _, it := range cfg.Dream.Items {
		s.items = append(s.items, interaction.Item{
			Name:   it.Name,
			Box:    core.RectAt(it.Position.Vec(), it.Size.W, it.Size.H),
			Effect: it.Effect,
		})
	}
	for _, npc := range cfg.Dream.NPCs {
		s.npcs = append(s.npcs, interaction.NPC{Name: npc.Name, Pos: npc.Position.Vec()})
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reconfigure swaps in new tuning. Speeds, radii and key bindings apply from
// the next frame; maze size and themes from the next sleep. A fade in flight
// keeps its length and the next one uses the new value. The wake hold restarts.
func (s *Session) Reconfigure(cfg config.Config) {
	s.cfg = cfg
	s.resolver = interaction.New(cfg)
	s.hold = interaction.NewHold(cfg.Timing.WakeHold)
	s.timer.SetDuration(cfg.Timing.Transition)
	s.log.Info("configuration reloaded")
}

// Config returns the active configuration.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Advance simulates one frame of dt seconds. Negative or non-finite dt
// counts as zero.
func (s *Session) Advance(dt float64, in core.InputFrame) StepResult {
	dt = core.SanitizeDT(dt)
	res := StepResult{}

	if s.phase == PhaseDreaming {
		s.dreamTime += dt
	}

	if done := s.timer.Advance(dt); done != transition.None {
		s.finishTransition(done, &res)
	}

	s.updateParticles(dt)

	if !s.timer.Active() {
		switch s.phase {
		case PhaseStartMenu:
			s.updateStartMenu(in, &res)
		case PhaseSettings, PhaseCredits:
			s.updateSubMenu(in, &res)
		case PhaseAwake:
			s.updateAwake(in, dt, &res)
		case PhaseAsleep:
			if in.Pressed(core.ActionConfirm) {
				s.beginTransition(transition.ToDream, &res)
			}
		case PhaseDreaming:
			s.updateDreaming(in, dt, &res)
		}
	}

	s.updateDialogue(in, &res)

	res.Phase = s.phase
	return res
}

func (s *Session) scene() interaction.Scene {
	return interaction.Scene{
		Player:  s.player,
		Boosted: s.boosted,
		Grid:    s.grid,
		Items:   s.items,
		NPCs:    s.npcs,
	}
}

func (s *Session) updateAwake(in core.InputFrame, dt float64, res *StepResult) {
	fx := s.resolver.Awake(s.scene(), in, dt)
	s.player = fx.Player
	s.applyCommon(fx, res)
}

func (s *Session) updateDreaming(in core.InputFrame, dt float64, res *StepResult) {
	fx := s.resolver.Dream(s.scene(), s.hold, in, dt)
	s.player = fx.Player

	for _, i := range fx.Collected {
		it := &s.items[i]
		it.Collected = true
		s.inv.Add(it.Name)
		s.dreamItems = append(s.dreamItems, it.Name)
		res.emit(ItemCollected{Name: it.Name})
		s.log.Debug("item collected", "item", it.Name)
	}
	if fx.Boost {
		s.boosted = true
	}
	if s.boosted {
		size := s.cfg.Player.Size
		s.emitDust(s.player.Add(core.V(size/2, size/2)))
	}

	s.applyCommon(fx, res)

	if fx.Wake {
		s.beginTransition(transition.ToAwake, res)
	}
}

func (s *Session) applyCommon(fx interaction.Effects, res *StepResult) {
	if fx.Dialogue != nil {
		s.dlg.Open(fx.Dialogue.Speaker, fx.Dialogue.Text, fx.Dialogue.Choices...)
		res.emit(DialogueOpened{Speaker: fx.Dialogue.Speaker})
	}
	if fx.ToggleInventory {
		s.inv.Toggle()
	}
}

func (s *Session) updateDialogue(in core.InputFrame, res *StepResult) {
	if !s.dlg.Active() {
		return
	}
	if in.Pressed(core.ActionMenuUp) {
		s.dlg.Navigate(-1)
	}
	if in.Pressed(core.ActionMenuDown) {
		s.dlg.Navigate(1)
	}
	if !in.Pressed(core.ActionConfirm) {
		return
	}

	action, ok := s.dlg.Confirm()
	if !ok {
		return
	}
	res.emit(DialogueClosed{Action: action})

	switch action {
	case dialogue.ActionCommitSleep:
		s.commitSleep(res)
	case dialogue.ActionCancel, dialogue.ActionDismiss:
		// Closing is all these do.
	}
}

// commitSleep builds the dream before any fade is requested, so Dreaming is
// never entered without a maze.
func (s *Session) commitSleep(res *StepResult) {
	if s.phase != PhaseAwake || s.timer.Active() {
		return
	}

	mc := s.cfg.Maze
	s.grid = maze.Generate(mc.Width, mc.Height, mc.CellSize, s.rng)

	s.theme = &Theme{Name: "Dream", Color: core.ColorLavender}
	if themes := s.cfg.Dream.Themes; len(themes) > 0 {
		th := themes[s.rng.Intn(len(themes))]
		s.theme = &Theme{Name: th.Name, Color: th.ThemeColor()}
	}

	s.hold.Reset()
	s.setPhase(PhaseAsleep, res)
	s.log.Debug("dream prepared", "theme", s.theme.Name, "maze", s.grid.PathCount())
}

// beginTransition starts a fade. It is a no-op while another fade is in
// flight or when the current phase is not the kind's source.
func (s *Session) beginTransition(kind transition.Kind, res *StepResult) bool {
	if src, ok := legalSource[kind]; !ok || src != s.phase {
		return false
	}
	if !s.timer.Begin(kind) {
		return false
	}
	res.emit(TransitionStarted{Kind: kind})
	s.log.Debug("transition started", "kind", kind)
	return true
}

func (s *Session) finishTransition(kind transition.Kind, res *StepResult) {
	switch kind {
	case transition.ToDream:
		s.dreamItems = nil
		s.dreamTime = 0
		s.player = s.dreamSpawn()
		s.setPhase(PhaseDreaming, res)

	case transition.ToAwake:
		record := DreamRecord{
			Items:    s.dreamItems,
			Duration: s.dreamTime,
		}
		if s.theme != nil {
			record.Theme = s.theme.Name
		}
		if s.grid != nil {
			record.MazeWidth, record.MazeHeight = s.grid.Width(), s.grid.Height()
		}

		s.player = s.cfg.Player.Spawn.Vec()
		s.grid = nil
		s.theme = nil
		s.hold.Reset()
		s.particles = s.particles[:0]
		s.dreamItems = nil
		s.dreamTime = 0
		s.setPhase(PhaseAwake, res)
		res.emit(DreamEnded{Record: record})
	}
}

// dreamSpawn places the player so the wall probe sits at the centre of the
// maze start cell.
func (s *Session) dreamSpawn() core.Vec {
	if s.grid == nil {
		return s.cfg.Player.Spawn.Vec()
	}
	return s.grid.CellCenter(s.grid.Start()).Sub(s.cfg.Player.Probe.Vec())
}

func (s *Session) setPhase(p Phase, res *StepResult) {
	if p == s.phase {
		return
	}
	from := s.phase
	s.phase = p
	res.emit(PhaseChanged{From: from, To: p})
	s.log.Debug("phase changed", "from", from, "to", p)
}

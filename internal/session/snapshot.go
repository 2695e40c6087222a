package session

import (
	"github.com/vovakirdan/witherdream/internal/core"
	"github.com/vovakirdan/witherdream/internal/dialogue"
	"github.com/vovakirdan/witherdream/internal/interaction"
	"github.com/vovakirdan/witherdream/internal/maze"
	"github.com/vovakirdan/witherdream/internal/transition"
)

// ItemView is an item as the renderer sees it.
type ItemView struct {
	Name      string
	Box       core.Rect
	Collected bool
}

// Snapshot is a read-only copy of everything a renderer needs for a frame.
// Grid is shared with the session; maze.Grid exposes no mutators.
type Snapshot struct {
	Phase        Phase
	Transition   transition.Kind
	Alpha        float64
	MenuSelected MenuOption

	World      core.Vec // Width and height
	Player     core.Vec
	PlayerSize float64
	Boosted    bool
	Bed        core.Vec

	Grid      *maze.Grid
	Theme     *Theme
	Items     []ItemView
	NPCs      []interaction.NPC
	Particles []Particle

	Dialogue      *dialogue.View
	Inventory     []string
	InventoryOpen bool
	WakeProgress  float64 // Fraction of the hold threshold
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:         s.phase,
		Transition:    s.timer.Kind(),
		Alpha:         s.timer.Alpha(),
		MenuSelected:  s.menu,
		World:         core.V(s.cfg.World.Width, s.cfg.World.Height),
		Player:        s.player,
		PlayerSize:    s.cfg.Player.Size,
		Boosted:       s.boosted,
		Bed:           s.cfg.Bed.Position.Vec(),
		Grid:          s.grid,
		NPCs:          append([]interaction.NPC(nil), s.npcs...),
		Particles:     append([]Particle(nil), s.particles...),
		Inventory:     s.inv.Items(),
		InventoryOpen: s.inv.Open(),
		WakeProgress:  s.hold.Fraction(),
	}
	if s.theme != nil {
		th := *s.theme
		snap.Theme = &th
	}
	for _, it := range s.items {
		snap.Items = append(snap.Items, ItemView{Name: it.Name, Box: it.Box, Collected: it.Collected})
	}
	if v, ok := s.dlg.View(); ok {
		snap.Dialogue = &v
	}
	return snap
}

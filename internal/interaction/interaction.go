// Package interaction resolves one frame of player input against the scene:
// gated movement, item pickup, proximity dialogues and hold-to-wake.
//
// The resolver never mutates the scene. It reports what should change as
// Effects and the session applies them.
package interaction

import (
	"fmt"

	"github.com/vovakirdan/witherdream/internal/config"
	"github.com/vovakirdan/witherdream/internal/core"
	"github.com/vovakirdan/witherdream/internal/dialogue"
	"github.com/vovakirdan/witherdream/internal/maze"
)

const (
	BedSpeaker = "Bed"
	BedText    = "The bed is so comfortable, I want to sleep here forever..."
)

// BedChoices are the answers offered by the bed.
var BedChoices = []dialogue.Choice{
	{Label: "Lay down", Action: dialogue.ActionCommitSleep},
	{Label: "Cancel", Action: dialogue.ActionCancel},
}

// Greeting is what an NPC says when spoken to.
func Greeting(name string) string {
	return fmt.Sprintf("Hello, I am %s", name)
}

// Item is a collectible placed in the dream.
type Item struct {
	Name      string
	Box       core.Rect
	Effect    config.ItemEffect
	Collected bool
}

// NPC is a dream character.
type NPC struct {
	Name string
	Pos  core.Vec
}

// Scene is the geometry one frame is resolved against.
type Scene struct {
	Player  core.Vec   // Top-left of the player body
	Boosted bool       // A speed item has been collected
	Grid    *maze.Grid // nil outside the dream
	Items   []Item
	NPCs    []NPC
}

// DialogueRequest asks the caller to open a dialogue.
type DialogueRequest struct {
	Speaker string
	Text    string
	Choices []dialogue.Choice
}

// Effects are the changes a frame produced.
type Effects struct {
	Player          core.Vec // Position after movement
	Blocked         bool     // Movement was rolled back by a wall
	Collected       []int    // Indices into Scene.Items, in scene order
	Boost           bool     // A collected item grants the speed boost
	Dialogue        *DialogueRequest
	ToggleInventory bool
	Wake            bool // Hold-to-wake reached its threshold
}

// Resolver applies the configured rules to scenes.
type Resolver struct {
	cfg config.Config
}

// New creates a resolver for cfg.
func New(cfg config.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Awake resolves a frame in the waking room: free movement, the bed and the
// inventory toggle.
func (r *Resolver) Awake(s Scene, in core.InputFrame, dt float64) Effects {
	fx := Effects{}
	fx.Player, fx.Blocked = r.Move(s.Player, in, dt, s.Boosted, nil)

	if in.Pressed(core.ActionInteract) && r.NearBed(fx.Player) {
		fx.Dialogue = &DialogueRequest{
			Speaker: BedSpeaker,
			Text:    BedText,
			Choices: BedChoices,
		}
	}
	fx.ToggleInventory = in.Pressed(core.ActionInventory)
	return fx
}

// Dream resolves a frame inside the maze. hold is the wake accumulator owned
// by the caller.
func (r *Resolver) Dream(s Scene, hold *Hold, in core.InputFrame, dt float64) Effects {
	fx := Effects{}
	fx.Player, fx.Blocked = r.Move(s.Player, in, dt, s.Boosted, s.Grid)

	fx.Collected = r.Pickups(fx.Player, s.Items)
	for _, i := range fx.Collected {
		if s.Items[i].Effect == config.EffectSpeedBoost {
			fx.Boost = true
		}
	}

	if in.Pressed(core.ActionInteract) {
		if npc, ok := r.NearestNPC(fx.Player, s.NPCs); ok {
			fx.Dialogue = &DialogueRequest{Speaker: npc.Name, Text: Greeting(npc.Name)}
		}
	}

	if hold != nil {
		fx.Wake = hold.Update(in.Held(core.ActionInteract), dt)
	}
	fx.ToggleInventory = in.Pressed(core.ActionInventory)
	return fx
}

// Move integrates held directions and clamps to the world. With a grid, the
// move is committed only when the probe point lands on a path; otherwise the
// original position is returned with blocked set.
func (r *Resolver) Move(pos core.Vec, in core.InputFrame, dt float64, boosted bool, grid *maze.Grid) (next core.Vec, blocked bool) {
	dt = core.SanitizeDT(dt)
	speed := r.cfg.Player.Speed
	if boosted {
		speed *= r.cfg.Player.BoostMultiplier
	}

	var dir core.Vec
	if in.Held(core.ActionUp) {
		dir.Y--
	}
	if in.Held(core.ActionDown) {
		dir.Y++
	}
	if in.Held(core.ActionLeft) {
		dir.X--
	}
	if in.Held(core.ActionRight) {
		dir.X++
	}
	if dir == (core.Vec{}) {
		return pos, false
	}

	next = pos.Add(dir.Scale(speed * dt))
	size := r.cfg.Player.Size
	next.X = core.ClampF(next.X, 0, max(r.cfg.World.Width-size, 0))
	next.Y = core.ClampF(next.Y, 0, max(r.cfg.World.Height-size, 0))

	if grid != nil {
		probe := next.Add(r.cfg.Player.Probe.Vec())
		if grid.IsWall(probe.X, probe.Y) {
			return pos, true
		}
	}
	return next, false
}

// PlayerBox returns the body box used for pickups.
func (r *Resolver) PlayerBox(pos core.Vec) core.Rect {
	return core.RectAt(pos, r.cfg.Player.Size, r.cfg.Player.Size)
}

// Pickups returns the indices of uncollected items the player overlaps.
// Collected items are skipped without testing.
func (r *Resolver) Pickups(pos core.Vec, items []Item) []int {
	box := r.PlayerBox(pos)
	var out []int
	for i, it := range items {
		if it.Collected {
			continue
		}
		if box.Intersects(it.Box) {
			out = append(out, i)
		}
	}
	return out
}

// NearBed reports whether the player is within reach of the bed.
func (r *Resolver) NearBed(pos core.Vec) bool {
	return core.Dist(pos, r.cfg.Bed.Position.Vec()) < r.cfg.Bed.Radius
}

// NearestNPC returns the closest NPC within reach. Ties go to the first listed.
func (r *Resolver) NearestNPC(pos core.Vec, npcs []NPC) (NPC, bool) {
	best, found := NPC{}, false
	bestDist := r.cfg.Dream.NPCRadius
	for _, npc := range npcs {
		if d := core.Dist(pos, npc.Pos); d < bestDist {
			best, bestDist, found = npc, d, true
		}
	}
	return best, found
}

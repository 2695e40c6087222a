package interaction

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/witherdream/internal/config"
	"github.com/vovakirdan/witherdream/internal/core"
	"github.com/vovakirdan/witherdream/internal/dialogue"
	"github.com/vovakirdan/witherdream/internal/maze"
)

func frame(held []core.Action, pressed ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range held {
		in.Hold(a)
	}
	for _, a := range pressed {
		in.Press(a)
	}
	return in
}

func testItems() []Item {
	return []Item{
		{Name: "Bicycle", Box: core.NewRect(125, 130, 30, 20), Effect: config.EffectSpeedBoost},
		{Name: "Knife", Box: core.NewRect(210, 210, 20, 20)},
	}
}

func TestMoveFreeAwake(t *testing.T) {
	r := New(config.Default())

	tests := []struct {
		name    string
		pos     core.Vec
		held    []core.Action
		dt      float64
		boosted bool
		want    core.Vec
	}{
		{"idle", core.V(100, 100), nil, 1, false, core.V(100, 100)},
		{"right", core.V(100, 100), []core.Action{core.ActionRight}, 0.5, false, core.V(175, 100)},
		{"up boosted", core.V(100, 300), []core.Action{core.ActionUp}, 1, true, core.V(100, 75)},
		{"opposite cancel", core.V(100, 100), []core.Action{core.ActionLeft, core.ActionRight}, 1, false, core.V(100, 100)},
		{"clamp low", core.V(10, 10), []core.Action{core.ActionLeft, core.ActionUp}, 1, false, core.V(0, 0)},
		{"clamp high", core.V(700, 500), []core.Action{core.ActionRight, core.ActionDown}, 1, false, core.V(720, 520)},
		{"negative dt", core.V(100, 100), []core.Action{core.ActionRight}, -1, false, core.V(100, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, blocked := r.Move(tt.pos, frame(tt.held), tt.dt, tt.boosted, nil)
			if got != tt.want || blocked {
				t.Errorf("Move() = %v, %v, expected %v, false", got, blocked, tt.want)
			}
		})
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	cfg := config.Default()
	r := New(cfg)
	g := maze.Generate(19, 15, 40, rand.New(rand.NewSource(1)))

	// Probe sits in the start cell (1,1); a diagonal step puts it in (2,2),
	// which is never carved.
	start := core.V(20, 20)
	got, blocked := r.Move(start, frame([]core.Action{core.ActionRight, core.ActionDown}), 0.2, false, g)
	if !blocked || got != start {
		t.Errorf("Move() into wall = %v, %v, expected %v, true", got, blocked, start)
	}

	// A tiny step stays inside the start cell.
	got, blocked = r.Move(start, frame([]core.Action{core.ActionDown}), 0.01, false, g)
	if blocked || got.Y <= start.Y {
		t.Errorf("Move() inside path = %v, %v, expected to advance", got, blocked)
	}
}

func TestPickupsSkipCollected(t *testing.T) {
	r := New(config.Default())
	items := testItems()

	// Player box (100..180, 100..180) covers the bicycle only.
	pos := core.V(100, 100)
	if got := r.Pickups(pos, items); len(got) != 1 || got[0] != 0 {
		t.Fatalf("Pickups() = %v, expected [0]", got)
	}

	items[0].Collected = true
	for i := 0; i < 3; i++ {
		if got := r.Pickups(pos, items); len(got) != 0 {
			t.Fatalf("Pickups() after collection = %v, expected none", got)
		}
	}
}

func TestPickupsTouchingEdgeDoesNotCount(t *testing.T) {
	r := New(config.Default())
	items := testItems()

	// Right edge of the body exactly at the bicycle's left edge.
	if got := r.Pickups(core.V(45, 130), items); len(got) != 0 {
		t.Errorf("Pickups() = %v, expected none for touching boxes", got)
	}
}

func TestDreamCollectsBoost(t *testing.T) {
	r := New(config.Default())
	scene := Scene{
		Player: core.V(100, 100),
		Grid:   maze.Generate(19, 15, 40, rand.New(rand.NewSource(2))),
		Items:  testItems(),
	}

	fx := r.Dream(scene, NewHold(2), frame(nil), 0.016)
	if len(fx.Collected) != 1 || !fx.Boost {
		t.Errorf("Dream() collected=%v boost=%v, expected [0] and boost", fx.Collected, fx.Boost)
	}
}

func TestAwakeBedDialogue(t *testing.T) {
	r := New(config.Default())

	near := Scene{Player: core.V(360, 260)} // 22 units from the bed
	fx := r.Awake(near, frame(nil, core.ActionInteract), 0)
	if fx.Dialogue == nil {
		t.Fatal("Awake() near the bed opened no dialogue")
	}
	if fx.Dialogue.Speaker != BedSpeaker || len(fx.Dialogue.Choices) != 2 {
		t.Errorf("bed dialogue = %+v", fx.Dialogue)
	}
	if fx.Dialogue.Choices[0].Action != dialogue.ActionCommitSleep || fx.Dialogue.Choices[1].Action != dialogue.ActionCancel {
		t.Error("bed choices should be commit then cancel")
	}

	far := Scene{Player: core.V(0, 0)}
	if fx := r.Awake(far, frame(nil, core.ActionInteract), 0); fx.Dialogue != nil {
		t.Error("Awake() far from the bed opened a dialogue")
	}

	held := r.Awake(near, frame([]core.Action{core.ActionInteract}), 0)
	if held.Dialogue != nil {
		t.Error("holding interact without a fresh press opened a dialogue")
	}
}

func TestNearestNPC(t *testing.T) {
	r := New(config.Default())
	npcs := []NPC{
		{Name: "Mysterious Figure", Pos: core.V(380, 300)},
		{Name: "Dream Guardian", Pos: core.V(440, 300)},
	}

	tests := []struct {
		pos  core.Vec
		want string
		ok   bool
	}{
		{core.V(340, 260), "Mysterious Figure", true},
		{core.V(440, 280), "Dream Guardian", true},
		{core.V(0, 0), "", false},
	}
	for _, tt := range tests {
		npc, ok := r.NearestNPC(tt.pos, npcs)
		if ok != tt.ok || npc.Name != tt.want {
			t.Errorf("NearestNPC(%v) = %q, %v, expected %q, %v", tt.pos, npc.Name, ok, tt.want, tt.ok)
		}
	}
}

func TestDreamNPCGreeting(t *testing.T) {
	r := New(config.Default())
	scene := Scene{
		Player: core.V(340, 260),
		Grid:   maze.Generate(19, 15, 40, rand.New(rand.NewSource(3))),
		NPCs:   []NPC{{Name: "Mysterious Figure", Pos: core.V(380, 300)}},
	}

	fx := r.Dream(scene, NewHold(2), frame(nil, core.ActionInteract), 0)
	if fx.Dialogue == nil || fx.Dialogue.Text != "Hello, I am Mysterious Figure" {
		t.Fatalf("Dream() dialogue = %+v, expected the greeting", fx.Dialogue)
	}
	if len(fx.Dialogue.Choices) != 0 {
		t.Error("NPC dialogue should have no choices")
	}
}

func TestToggleInventory(t *testing.T) {
	r := New(config.Default())
	if fx := r.Awake(Scene{}, frame(nil, core.ActionInventory), 0); !fx.ToggleInventory {
		t.Error("inventory press not reported")
	}
	if fx := r.Awake(Scene{}, frame([]core.Action{core.ActionInventory}), 0); fx.ToggleInventory {
		t.Error("held inventory key toggled again")
	}
}

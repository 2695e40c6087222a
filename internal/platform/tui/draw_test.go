package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/witherdream/internal/config"
	"github.com/vovakirdan/witherdream/internal/core"
	"github.com/vovakirdan/witherdream/internal/dialogue"
	"github.com/vovakirdan/witherdream/internal/interaction"
	"github.com/vovakirdan/witherdream/internal/maze"
	"github.com/vovakirdan/witherdream/internal/session"
	"github.com/vovakirdan/witherdream/internal/transition"
)

func defaultKeys() KeyMap {
	return NewKeyMap(config.Default().Bindings())
}

func drawn(snap session.Snapshot) *core.Screen {
	s := core.NewScreen(80, 24)
	Draw(s, snap, defaultKeys(), "help footer")
	return s
}

func countRune(s *core.Screen, r rune) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func TestViewportMapping(t *testing.T) {
	vp := newViewport(core.NewScreen(80, 24), core.V(800, 600))

	if x, y := vp.toScreen(core.V(0, 0)); x != 0 || y != 1 {
		t.Errorf("toScreen(0,0) = (%d,%d), expected (0,1)", x, y)
	}
	if x, y := vp.toScreen(core.V(799, 599)); x != 79 || y != 22 {
		t.Errorf("toScreen(799,599) = (%d,%d), expected (79,22)", x, y)
	}
	if p := vp.toWorld(0, 1); p.X != 5 || p.Y <= 0 || p.Y >= 600.0/22 {
		t.Errorf("toWorld(0,1) = %v, expected the centre of the first cell", p)
	}
}

func TestDrawStartMenu(t *testing.T) {
	s := drawn(session.Snapshot{Phase: session.PhaseStartMenu, MenuSelected: session.MenuSettings})
	out := s.String()

	for _, want := range []string{"W I T H E R D R E A M", "Start", "> Settings <", "Credits", "help footer"} {
		if !strings.Contains(out, want) {
			t.Errorf("start menu missing %q", want)
		}
	}
	if strings.Contains(out, "> Start <") {
		t.Error("Start marked as selected")
	}
}

func TestDrawSettingsListsBindings(t *testing.T) {
	out := drawn(session.Snapshot{Phase: session.PhaseSettings}).String()

	for _, want := range []string{"SETTINGS", "interact", "enter/space", "press esc to return"} {
		if !strings.Contains(out, want) {
			t.Errorf("settings missing %q", want)
		}
	}
}

func TestDrawRoom(t *testing.T) {
	snap := session.Snapshot{
		Phase:      session.PhaseAwake,
		World:      core.V(800, 600),
		Player:     core.V(360, 260),
		PlayerSize: 80,
		Bed:        core.V(370, 280),
	}
	s := drawn(snap)

	if countRune(s, glyphPlayer) == 0 {
		t.Error("player not drawn")
	}
	if s.Get(0, 1) != '┌' {
		t.Errorf("room corner = %q, expected %q", s.Get(0, 1), '┌')
	}
	if !strings.Contains(s.Row(0), "awake") {
		t.Errorf("HUD = %q, expected the phase", s.Row(0))
	}
}

func TestDrawAsleepPrompt(t *testing.T) {
	snap := session.Snapshot{Phase: session.PhaseAsleep, World: core.V(800, 600), PlayerSize: 80}
	if out := drawn(snap).String(); !strings.Contains(out, "press enter to dream") {
		t.Error("asleep prompt missing")
	}

	snap.Transition = transition.ToDream
	if out := drawn(snap).String(); strings.Contains(out, "press enter to dream") {
		t.Error("asleep prompt shown during the fade")
	}
}

func TestDrawDream(t *testing.T) {
	grid := maze.Generate(19, 15, 40, rand.New(rand.NewSource(3)))
	snap := session.Snapshot{
		Phase:      session.PhaseDreaming,
		World:      core.V(800, 600),
		Player:     core.V(20, 20),
		PlayerSize: 80,
		Grid:       grid,
		Theme:      &session.Theme{Name: "Blue Ocean", Color: core.ColorBlue},
		Items: []session.ItemView{
			{Name: "Bicycle", Box: core.NewRect(125, 130, 30, 20)},
			{Name: "Knife", Box: core.NewRect(210, 210, 20, 20), Collected: true},
		},
		NPCs:         []interaction.NPC{{Name: "Dream Guardian", Pos: core.V(620, 140)}},
		Particles:    []session.Particle{{Pos: core.V(600, 500), Life: 1}},
		WakeProgress: 0.5,
	}
	s := drawn(snap)

	if countRune(s, glyphWall) == 0 {
		t.Error("no walls drawn")
	}
	if s.GetCell(0, 1).Color != core.ColorBlue {
		t.Errorf("wall color = %v, expected theme color", s.GetCell(0, 1).Color)
	}
	if s.Get(12, 5) != 'B' {
		t.Errorf("item cell = %q, expected %q", s.Get(12, 5), 'B')
	}
	if countRune(s, 'K') != 0 {
		t.Error("collected item drawn")
	}
	if countRune(s, glyphNPC) != 1 {
		t.Error("NPC not drawn")
	}
	if !strings.Contains(s.String(), "Dream Guardian") {
		t.Error("NPC name missing")
	}
	if countRune(s, glyphDust) != 1 {
		t.Error("dust not drawn")
	}

	hud := s.Row(0)
	for _, want := range []string{"Blue Ocean", "[#####-----]"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD = %q, missing %q", hud, want)
		}
	}
}

func TestDrawDialogueAndInventory(t *testing.T) {
	snap := session.Snapshot{
		Phase:      session.PhaseAwake,
		World:      core.V(800, 600),
		PlayerSize: 80,
		Dialogue: &dialogue.View{
			Speaker:  interaction.BedSpeaker,
			Text:     interaction.BedText,
			Choices:  interaction.BedChoices,
			Selected: 1,
		},
		InventoryOpen: true,
	}
	out := drawn(snap).String()

	for _, want := range []string{interaction.BedText, "  Lay down", "> Cancel", "Inventory", "(empty)"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestDrawCurtainFollowsAlpha(t *testing.T) {
	snap := session.Snapshot{
		Phase:      session.PhaseAsleep,
		Transition: transition.ToDream,
		Alpha:      0.5,
		World:      core.V(800, 600),
		PlayerSize: 80,
	}
	s := drawn(snap)

	// 22 scene rows, half covered.
	for y := 1; y <= 11; y++ {
		if s.Get(0, y) != glyphCurtain {
			t.Fatalf("row %d not covered at alpha 0.5", y)
		}
	}
	if s.Get(0, 12) == glyphCurtain {
		t.Error("row 12 covered at alpha 0.5")
	}
}

func TestWakeBar(t *testing.T) {
	tests := []struct {
		fraction float64
		expected string
	}{
		{0, "[----------]"},
		{0.5, "[#####-----]"},
		{1, "[##########]"},
		{2, "[##########]"},
	}
	for _, tt := range tests {
		if got := wakeBar(tt.fraction); got != tt.expected {
			t.Errorf("wakeBar(%v) = %q, expected %q", tt.fraction, got, tt.expected)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "hello", core.ColorRed)
	s.DrawText(6, 0, "world", core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Errorf("RenderScreen() = %q, text lost", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", n)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("abc", 9); got != "   abc" {
		t.Errorf("centerText() = %q, expected %q", got, "   abc")
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText() = %q, expected the text unchanged", got)
	}
}

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/witherdream/internal/core"
	"github.com/vovakirdan/witherdream/internal/session"
	"github.com/vovakirdan/witherdream/internal/transition"
)

const (
	glyphWall     = '█'
	glyphPlayer   = '▓'
	glyphBed      = '▒'
	glyphNPC      = '☺'
	glyphDust     = '·'
	glyphCurtain  = '░'
	inventoryW    = 26
	wakeBarWidth  = 10
	bedHalfWidth  = 40
	bedHalfHeight = 25
)

var credits = []string{
	"WITHERDREAM",
	"",
	"A small game about falling asleep",
	"and finding your way back.",
	"",
	"Built with Bubble Tea and Lip Gloss",
}

// viewport maps world coordinates onto the scene rows of a screen.
// Row 0 holds the HUD and the last row the help footer.
type viewport struct {
	top, w, h int
	world     core.Vec
}

func newViewport(s *core.Screen, world core.Vec) viewport {
	return viewport{top: 1, w: s.Width(), h: max(s.Height()-2, 0), world: world}
}

func (v viewport) valid() bool {
	return v.w > 0 && v.h > 0 && v.world.X > 0 && v.world.Y > 0
}

// toScreen returns the cell containing world point p.
func (v viewport) toScreen(p core.Vec) (int, int) {
	x := int(math.Floor(p.X * float64(v.w) / v.world.X))
	y := int(math.Floor(p.Y * float64(v.h) / v.world.Y))
	return x, v.top + y
}

// toWorld returns the world point at the centre of scene cell (x, y).
func (v viewport) toWorld(x, y int) core.Vec {
	return core.V(
		(float64(x)+0.5)*v.world.X/float64(v.w),
		(float64(y-v.top)+0.5)*v.world.Y/float64(v.h),
	)
}

// fillRect covers a world rectangle, always at least one cell.
func (v viewport) fillRect(s *core.Screen, r core.Rect, glyph rune, c core.Color) {
	x0, y0 := v.toScreen(core.V(r.X, r.Y))
	x1, y1 := v.toScreen(core.V(r.Right(), r.Bottom()))
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	for y := max(y0, v.top); y < min(y1, v.top+v.h); y++ {
		for x := max(x0, 0); x < min(x1, v.w); x++ {
			s.SetColored(x, y, glyph, c)
		}
	}
}

// Draw renders a snapshot into the screen buffer.
func Draw(s *core.Screen, snap session.Snapshot, km KeyMap, footer string) {
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 {
		return
	}

	switch snap.Phase {
	case session.PhaseStartMenu:
		drawStartMenu(s, snap)
	case session.PhaseSettings:
		drawSettings(s, km)
	case session.PhaseCredits:
		drawCredits(s, km)
	case session.PhaseAwake, session.PhaseAsleep:
		drawRoom(s, snap)
		if snap.Phase == session.PhaseAsleep && snap.Transition == transition.None {
			drawPrompt(s, fmt.Sprintf("You drift off... press %s to dream", km.KeyName(core.ActionConfirm)))
		}
	case session.PhaseDreaming:
		drawDream(s, snap)
	}

	if snap.Dialogue != nil {
		drawDialogue(s, snap)
	}
	if snap.InventoryOpen {
		drawInventory(s, snap.Inventory)
	}
	if snap.Transition != transition.None {
		drawCurtain(s, snap.Alpha)
	}

	drawHUD(s, snap)
	s.DrawText(0, s.Height()-1, footer, core.ColorGray)
}

func drawStartMenu(s *core.Screen, snap session.Snapshot) {
	top := max(s.Height()/2-4, 1)
	s.DrawTextCentered(top, "W I T H E R D R E A M", core.ColorLavender)
	s.DrawTextCentered(top+1, "~ a dream of mazes ~", core.ColorGray)

	for i, label := range session.MenuLabels() {
		color := core.ColorWhite
		if session.MenuOption(i) == snap.MenuSelected {
			label = "> " + label + " <"
			color = core.ColorYellow
		}
		s.DrawTextCentered(top+3+i, label, color)
	}
}

func drawSettings(s *core.Screen, km KeyMap) {
	s.DrawTextCentered(1, "SETTINGS", core.ColorCyan)
	s.DrawTextCentered(2, "Key bindings are read from the configuration file", core.ColorGray)

	y := 4
	for _, a := range core.Actions {
		b, ok := km.Binding(a)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%-10s %s", a, b.Help().Key)
		s.DrawText(max((s.Width()-30)/2, 0), y, line, core.ColorWhite)
		y++
	}
	s.DrawTextCentered(y+1, fmt.Sprintf("press %s to return", km.KeyName(core.ActionCancel)), core.ColorGray)
}

func drawCredits(s *core.Screen, km KeyMap) {
	top := max(s.Height()/2-len(credits)/2-1, 1)
	for i, line := range credits {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorLavender
		}
		s.DrawTextCentered(top+i, line, color)
	}
	s.DrawTextCentered(top+len(credits)+1, fmt.Sprintf("press %s to return", km.KeyName(core.ActionCancel)), core.ColorGray)
}

func drawRoom(s *core.Screen, snap session.Snapshot) {
	vp := newViewport(s, snap.World)
	if !vp.valid() {
		return
	}
	s.DrawBox(0, vp.top, vp.w, vp.h, core.ColorBrown)

	bed := core.NewRect(snap.Bed.X-bedHalfWidth, snap.Bed.Y-bedHalfHeight, 2*bedHalfWidth, 2*bedHalfHeight)
	vp.fillRect(s, bed, glyphBed, core.ColorBrown)

	drawPlayer(s, vp, snap)
}

func drawDream(s *core.Screen, snap session.Snapshot) {
	vp := newViewport(s, snap.World)
	if !vp.valid() {
		return
	}

	wallColor := core.ColorLavender
	if snap.Theme != nil {
		wallColor = snap.Theme.Color
	}
	if snap.Grid != nil {
		for y := vp.top; y < vp.top+vp.h; y++ {
			for x := 0; x < vp.w; x++ {
				p := vp.toWorld(x, y)
				if snap.Grid.IsWall(p.X, p.Y) {
					s.SetColored(x, y, glyphWall, wallColor)
				}
			}
		}
	}

	for _, it := range snap.Items {
		if it.Collected {
			continue
		}
		glyph := '*'
		if it.Name != "" {
			glyph = []rune(it.Name)[0]
		}
		vp.fillRect(s, it.Box, glyph, core.ColorGold)
	}

	for _, npc := range snap.NPCs {
		x, y := vp.toScreen(npc.Pos)
		s.SetColored(x, y, glyphNPC, core.ColorCyan)
		s.DrawText(x-len([]rune(npc.Name))/2, y-1, npc.Name, core.ColorCyan)
	}

	for _, p := range snap.Particles {
		x, y := vp.toScreen(p.Pos)
		if y >= vp.top && y < vp.top+vp.h {
			s.SetColored(x, y, glyphDust, core.ColorGray)
		}
	}

	drawPlayer(s, vp, snap)
}

func drawPlayer(s *core.Screen, vp viewport, snap session.Snapshot) {
	color := core.ColorWhite
	if snap.Boosted {
		color = core.ColorYellow
	}
	vp.fillRect(s, core.RectAt(snap.Player, snap.PlayerSize, snap.PlayerSize), glyphPlayer, color)
}

func drawPrompt(s *core.Screen, text string) {
	s.DrawTextCentered(max(s.Height()-3, 1), text, core.ColorLavender)
}

// wrap breaks text into lines no wider than width.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	rendered := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func drawDialogue(s *core.Screen, snap session.Snapshot) {
	d := snap.Dialogue
	w := s.Width() - 4
	if w < 10 {
		return
	}
	text := wrap(d.Text, w-4)
	h := 2 + 1 + len(text) + len(d.Choices)
	if len(d.Choices) > 0 {
		h++
	}
	y0 := max(s.Height()-1-h, 1)

	s.FillRect(2, y0, w, h, ' ', core.ColorDefault)
	s.DrawBox(2, y0, w, h, core.ColorWhite)
	s.DrawText(4, y0+1, d.Speaker, core.ColorYellow)
	for i, line := range text {
		s.DrawText(4, y0+2+i, line, core.ColorWhite)
	}

	y := y0 + 3 + len(text)
	for i, c := range d.Choices {
		label, color := "  "+c.Label, core.ColorGray
		if i == d.Selected {
			label, color = "> "+c.Label, core.ColorYellow
		}
		s.DrawText(4, y+i, label, color)
	}
}

func drawInventory(s *core.Screen, items []string) {
	w := min(inventoryW, s.Width())
	lines := items
	if len(lines) == 0 {
		lines = []string{"(empty)"}
	}
	h := len(lines) + 3
	x0 := s.Width() - w

	s.FillRect(x0, 1, w, h, ' ', core.ColorDefault)
	s.DrawBox(x0, 1, w, h, core.ColorGold)
	s.DrawText(x0+2, 2, "Inventory", core.ColorGold)
	for i, name := range lines {
		s.DrawText(x0+2, 3+i, name, core.ColorWhite)
	}
}

// drawCurtain lowers a curtain over the scene as the fade progresses.
func drawCurtain(s *core.Screen, alpha float64) {
	sceneH := max(s.Height()-2, 0)
	rows := int(math.Round(core.ClampF(alpha, 0, 1) * float64(sceneH)))
	s.FillRect(0, 1, s.Width(), rows, glyphCurtain, core.ColorGray)
}

func drawHUD(s *core.Screen, snap session.Snapshot) {
	s.FillRect(0, 0, s.Width(), 1, ' ', core.ColorDefault)

	left := "witherdream | " + snap.Phase.String()
	s.DrawText(0, 0, left, core.ColorLavender)

	if snap.Phase != session.PhaseDreaming {
		return
	}

	var right strings.Builder
	if snap.Theme != nil {
		right.WriteString(snap.Theme.Name)
	}
	if snap.Boosted {
		right.WriteString(" | boosted")
	}
	if snap.WakeProgress > 0 {
		right.WriteString(" | wake " + wakeBar(snap.WakeProgress))
	}
	text := right.String()
	s.DrawText(s.Width()-len([]rune(text)), 0, text, core.ColorWhite)
}

func wakeBar(fraction float64) string {
	filled := int(math.Round(core.ClampF(fraction, 0, 1) * wakeBarWidth))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", wakeBarWidth-filled) + "]"
}

package config

import (
	_ "embed"
)

//go:embed defaults/witherdream.yaml
var defaultYAML []byte

// Default returns the built-in configuration: an 800x600 room, a 19x15 maze
// of 40-unit cells, and the default dream cast.
func Default() Config {
	return Config{
		World: WorldConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Size:            80,
			Speed:           150,
			BoostMultiplier: 1.5,
			Probe:           Point{X: 40, Y: 40},
			Spawn:           Point{X: 360, Y: 260},
		},
		Maze: MazeConfig{Width: 19, Height: 15, CellSize: 40},
		Bed: BedConfig{
			Position: Point{X: 370, Y: 280},
			Radius:   50,
		},
		Dream: DreamConfig{
			NPCRadius: 100,
			Items: []ItemConfig{
				{Name: "Bicycle", Position: Point{X: 125, Y: 130}, Size: Size{W: 30, H: 20}, Effect: EffectSpeedBoost},
				{Name: "Knife", Position: Point{X: 210, Y: 210}, Size: Size{W: 20, H: 20}},
			},
			NPCs: []NPCConfig{
				{Name: "Mysterious Figure", Position: Point{X: 380, Y: 300}},
				{Name: "Dream Guardian", Position: Point{X: 620, Y: 140}},
			},
			Themes: []ThemeConfig{
				{Name: "Purple Forest", Color: "purple"},
				{Name: "Orange Desert", Color: "orange"},
				{Name: "Blue Ocean", Color: "blue"},
				{Name: "Pink Mountains", Color: "pink"},
				{Name: "Green Fields", Color: "green"},
				{Name: "Golden Plains", Color: "gold"},
			},
		},
		Timing: TimingConfig{Transition: 1.0, WakeHold: 2.0},
		Dust:   DustConfig{Speed: 50, Life: 1.0},
		Input:  InputConfig{HoldGrace: 0.7},
		Keys: map[string][]string{
			"up":        {"w"},
			"down":      {"s"},
			"left":      {"a"},
			"right":     {"d"},
			"interact":  {"z"},
			"inventory": {"i"},
			"confirm":   {"enter", " "},
			"menu_up":   {"up"},
			"menu_down": {"down"},
			"cancel":    {"esc"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Package config provides YAML-based configuration for the dream simulation:
// world extents, maze size, tuning constants, scene layout and key bindings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/witherdream/internal/core"
)

// Config contains all configuration for a dream session.
type Config struct {
	World  WorldConfig         `yaml:"world"`
	Player PlayerConfig        `yaml:"player"`
	Maze   MazeConfig          `yaml:"maze"`
	Bed    BedConfig           `yaml:"bed"`
	Dream  DreamConfig         `yaml:"dream"`
	Timing TimingConfig        `yaml:"timing"`
	Dust   DustConfig          `yaml:"dust"`
	Input  InputConfig         `yaml:"input"`
	Keys   map[string][]string `yaml:"keys"` // action name -> bubbletea key names
}

// Point is a world-space position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts the point to a core vector.
func (p Point) Vec() core.Vec {
	return core.V(p.X, p.Y)
}

// Size is a world-space box extent.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// WorldConfig defines the extents the player is clamped to.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's body and movement.
type PlayerConfig struct {
	Size            float64 `yaml:"size"`             // Square body, also the pickup box
	Speed           float64 `yaml:"speed"`            // World units per second
	BoostMultiplier float64 `yaml:"boost_multiplier"` // Applied while a speed item is held
	Probe           Point   `yaml:"probe"`            // Wall probe offset from the top-left
	Spawn           Point   `yaml:"spawn"`            // Waking spawn position
}

// MazeConfig defines the dream maze grid.
type MazeConfig struct {
	Width    int     `yaml:"width"`     // Cells, odd
	Height   int     `yaml:"height"`    // Cells, odd
	CellSize float64 `yaml:"cell_size"` // World units per cell
}

// BedConfig places the bed in the waking room.
type BedConfig struct {
	Position Point   `yaml:"position"`
	Radius   float64 `yaml:"radius"`
}

// ItemEffect names what an item does once collected.
type ItemEffect string

const (
	EffectNone       ItemEffect = ""
	EffectSpeedBoost ItemEffect = "speed_boost"
)

// ItemConfig places a collectible in the dream.
type ItemConfig struct {
	Name     string     `yaml:"name"`
	Position Point      `yaml:"position"`
	Size     Size       `yaml:"size"`
	Effect   ItemEffect `yaml:"effect"`
}

// NPCConfig places a dream character.
type NPCConfig struct {
	Name     string `yaml:"name"`
	Position Point  `yaml:"position"`
}

// ThemeConfig is one entry of the dream world catalog.
type ThemeConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// DreamConfig defines the contents of every dream.
type DreamConfig struct {
	NPCRadius float64       `yaml:"npc_radius"`
	Items     []ItemConfig  `yaml:"items"`
	NPCs      []NPCConfig   `yaml:"npcs"`
	Themes    []ThemeConfig `yaml:"themes"`
}

// TimingConfig defines the timed mechanics, in seconds.
type TimingConfig struct {
	Transition float64 `yaml:"transition"`
	WakeHold   float64 `yaml:"wake_hold"`
}

// DustConfig defines the particles trailing a boosted player.
type DustConfig struct {
	Speed float64 `yaml:"speed"` // Max velocity per axis
	Life  float64 `yaml:"life"`  // Seconds
}

// InputConfig tunes how the terminal front-end derives held keys.
type InputConfig struct {
	HoldGrace float64 `yaml:"hold_grace"` // Seconds a key stays held after its last repeat
}

// Validate checks the configuration for values the simulation cannot use.
func (c Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c Config) validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world: extents must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player: size must be positive, got %g", c.Player.Size))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player: speed must not be negative, got %g", c.Player.Speed))
	}
	if c.Player.BoostMultiplier < 1 {
		errs = append(errs, fmt.Errorf("player: boost_multiplier must be at least 1, got %g", c.Player.BoostMultiplier))
	}
	if c.Maze.Width < 3 || c.Maze.Height < 3 {
		errs = append(errs, fmt.Errorf("maze: dimensions must be at least 3x3, got %dx%d", c.Maze.Width, c.Maze.Height))
	}
	if c.Maze.Width%2 == 0 || c.Maze.Height%2 == 0 {
		errs = append(errs, fmt.Errorf("maze: dimensions must be odd, got %dx%d", c.Maze.Width, c.Maze.Height))
	}
	if c.Maze.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("maze: cell_size must be positive, got %g", c.Maze.CellSize))
	}
	if c.Bed.Radius <= 0 || c.Dream.NPCRadius <= 0 {
		errs = append(errs, errors.New("interaction radii must be positive"))
	}
	if c.Timing.Transition <= 0 || c.Timing.WakeHold <= 0 {
		errs = append(errs, fmt.Errorf("timing: durations must be positive, got transition=%g wake_hold=%g", c.Timing.Transition, c.Timing.WakeHold))
	}
	if c.Input.HoldGrace < 0 {
		errs = append(errs, fmt.Errorf("input: hold_grace must not be negative, got %g", c.Input.HoldGrace))
	}
	if len(c.Dream.Themes) == 0 {
		errs = append(errs, errors.New("dream: at least one theme is required"))
	}
	for _, th := range c.Dream.Themes {
		if _, ok := core.ParseColor(th.Color); !ok {
			errs = append(errs, fmt.Errorf("dream: theme %q has unknown color %q", th.Name, th.Color))
		}
	}
	for i, it := range c.Dream.Items {
		if it.Name == "" {
			errs = append(errs, fmt.Errorf("dream: item %d has no name", i))
		}
		if it.Size.W <= 0 || it.Size.H <= 0 {
			errs = append(errs, fmt.Errorf("dream: item %q must have a positive size", it.Name))
		}
		if it.Effect != EffectNone && it.Effect != EffectSpeedBoost {
			errs = append(errs, fmt.Errorf("dream: item %q has unknown effect %q", it.Name, it.Effect))
		}
	}
	for name := range c.Keys {
		if _, ok := core.ParseAction(name); !ok {
			errs = append(errs, fmt.Errorf("keys: unknown action %q", name))
		}
	}

	return errors.Join(errs...)
}

// Bindings resolves the key table into actions. Unknown names are skipped;
// Validate reports them.
func (c Config) Bindings() map[core.Action][]string {
	out := make(map[core.Action][]string, len(c.Keys))
	for name, keys := range c.Keys {
		if a, ok := core.ParseAction(name); ok {
			out[a] = append([]string(nil), keys...)
		}
	}
	return out
}

// ThemeColor resolves a theme's color name, falling back to the default.
func (t ThemeConfig) ThemeColor() core.Color {
	c, _ := core.ParseColor(t.Color)
	return c
}

// Package config holds the immutable game configuration: window geometry,
// actor tuning, projectile bounds and the collision matrix. A Config is
// built from Default, optionally overlaid from a YAML file, validated once
// and then passed by value to the world.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/faction"
	"github.com/plus3/astro/geom"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// AimMode selects how the player aims.
type AimMode string

const (
	// AimPointer fires toward the mouse pointer projected into the world.
	AimPointer AimMode = "pointer"
	// AimFacing fires along the player's facing.
	AimFacing AimMode = "facing"
)

// DeathPolicy selects what happens when the player is hit.
type DeathPolicy string

const (
	// DeathRespawn teleports the player back to its origin on the next tick.
	DeathRespawn DeathPolicy = "respawn"
	// DeathDespawn removes the player entity.
	DeathDespawn DeathPolicy = "despawn"
)

// FireMode selects how enemies reschedule their fire timer.
type FireMode string

const (
	FireRandom FireMode = "random"
	FireFixed  FireMode = "fixed"
)

type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	Player     Player     `yaml:"player"`
	Enemy      Enemy      `yaml:"enemy"`
	Projectile Projectile `yaml:"projectile"`
	Collision  Collision  `yaml:"collision"`
	Physics    Physics    `yaml:"physics"`
	Level      Level      `yaml:"level"`

	// Seed drives enemy fire jitter. Zero lets the binary pick one.
	Seed uint64 `yaml:"seed"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type Camera struct {
	// Zoom is the number of screen pixels per world unit.
	Zoom  float64 `yaml:"zoom"`
	Clamp bool    `yaml:"clamp"`
}

// Collider is a box collider relative to the body origin.
type Collider struct {
	Size   cp.Vector `yaml:"size"`
	Offset cp.Vector `yaml:"offset"`
}

type Player struct {
	Speed        float64       `yaml:"speed"`
	DashDuration time.Duration `yaml:"dashDuration"`
	DashCooldown time.Duration `yaml:"dashCooldown"`
	DashImpulse  float64       `yaml:"dashImpulse"`

	// DashCollidesWith is what the player still touches while dashing.
	DashCollidesWith []faction.Faction `yaml:"dashCollidesWith"`

	Muzzle       cp.Vector   `yaml:"muzzle"`
	Aim          AimMode     `yaml:"aim"`
	Death        DeathPolicy `yaml:"death"`
	Invulnerable bool        `yaml:"invulnerable"`
	Collider     Collider    `yaml:"collider"`
}

type Enemy struct {
	Fire          FireMode      `yaml:"fire"`
	CooldownMin   time.Duration `yaml:"cooldownMin"`
	CooldownMax   time.Duration `yaml:"cooldownMax"`
	FixedInterval time.Duration `yaml:"fixedInterval"`
	Muzzle        cp.Vector     `yaml:"muzzle"`
	Collider      Collider      `yaml:"collider"`
	Mass          float64       `yaml:"mass"`
}

type Projectile struct {
	Speed    float64  `yaml:"speed"`
	Collider Collider `yaml:"collider"`

	// BoundsScale multiplies the window size to get the half extents of the
	// rectangle, centered on the world origin, outside which projectiles
	// are removed.
	BoundsScale cp.Vector `yaml:"boundsScale"`
}

type Collision struct {
	BulletsCollide bool          `yaml:"bulletsCollide"`
	Allow          []FactionPair `yaml:"allow,omitempty"`
	Deny           []FactionPair `yaml:"deny,omitempty"`
}

// FactionPair is written as a two element YAML sequence: [Player, Enemy].
type FactionPair [2]faction.Faction

type Physics struct {
	// Substeps splits each tick so fast bodies cannot pass through walls.
	Substeps int `yaml:"substeps"`
}

type Level struct {
	// Path of a level file; empty selects the embedded world.
	Path  string `yaml:"path"`
	Index int    `yaml:"index"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window: Window{Width: 640, Height: 512, Title: "Astro", TPS: 60},
		Camera: Camera{Zoom: 1.5, Clamp: true},
		Player: Player{
			Speed:            300,
			DashDuration:     300 * time.Millisecond,
			DashCooldown:     300 * time.Millisecond,
			DashImpulse:      900,
			DashCollidesWith: []faction.Faction{faction.Wall},
			Muzzle:           cp.Vector{X: 0, Y: -7},
			Aim:              AimPointer,
			Death:            DeathRespawn,
			Collider: Collider{
				Size:   cp.Vector{X: 14, Y: 28},
				Offset: cp.Vector{X: 0, Y: -2},
			},
		},
		Enemy: Enemy{
			Fire:          FireRandom,
			CooldownMin:   200 * time.Millisecond,
			CooldownMax:   2 * time.Second,
			FixedInterval: time.Second,
			Muzzle:        cp.Vector{X: 0, Y: -4},
			Collider: Collider{
				Size:   cp.Vector{X: 22, Y: 26},
				Offset: cp.Vector{X: -2, Y: -2.5},
			},
			Mass: 1,
		},
		Projectile: Projectile{
			Speed:       1300,
			Collider:    Collider{Size: cp.Vector{X: 15, Y: 4}},
			BoundsScale: cp.Vector{X: 2, Y: 1},
		},
		Physics: Physics{Substeps: 4},
	}
}

// Parse overlays YAML data on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML config file. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes the config as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// Table builds the faction compatibility matrix.
func (c Config) Table() faction.Table {
	table := faction.DefaultTable(c.Collision.BulletsCollide)
	for _, p := range c.Collision.Allow {
		table.Allow(p[0], p[1])
	}
	for _, p := range c.Collision.Deny {
		table.Deny(p[0], p[1])
	}
	return table
}

// Screen is the window rectangle in pixels.
func (c Config) Screen() geom.Rect {
	return geom.RectFromSize(float64(c.Window.Width), float64(c.Window.Height))
}

// ViewportHalf is half the visible area in world units.
func (c Config) ViewportHalf() cp.Vector {
	return cp.Vector{
		X: float64(c.Window.Width) / c.Camera.Zoom / 2,
		Y: float64(c.Window.Height) / c.Camera.Zoom / 2,
	}
}

// ProjectileBounds is the rectangle outside which projectiles are removed.
func (c Config) ProjectileBounds() geom.Rect {
	unit := geom.Rect{Min: cp.Vector{X: -1, Y: -1}, Max: cp.Vector{X: 1, Y: 1}}
	return unit.Scale(
		float64(c.Window.Width)*c.Projectile.BoundsScale.X,
		float64(c.Window.Height)*c.Projectile.BoundsScale.Y,
	)
}

// Validate reports the first problem found, wrapped in ErrInvalid.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return invalid("window tps %d", c.Window.TPS)
	}
	if c.Camera.Zoom <= 0 {
		return invalid("camera zoom %g", c.Camera.Zoom)
	}

	if c.Player.Speed <= 0 {
		return invalid("player speed %g", c.Player.Speed)
	}
	if c.Player.DashDuration <= 0 || c.Player.DashCooldown < 0 {
		return invalid("player dash %s/%s", c.Player.DashDuration, c.Player.DashCooldown)
	}
	if c.Player.DashImpulse < 0 {
		return invalid("player dash impulse %g", c.Player.DashImpulse)
	}
	switch c.Player.Aim {
	case AimPointer, AimFacing:
	default:
		return invalid("player aim %q", c.Player.Aim)
	}
	switch c.Player.Death {
	case DeathRespawn, DeathDespawn:
	default:
		return invalid("player death policy %q", c.Player.Death)
	}
	if err := c.Player.Collider.validate("player"); err != nil {
		return invalid("%v", err)
	}

	switch c.Enemy.Fire {
	case FireRandom:
		if c.Enemy.CooldownMin <= 0 || c.Enemy.CooldownMax <= c.Enemy.CooldownMin {
			return invalid("enemy cooldown range [%s, %s)", c.Enemy.CooldownMin, c.Enemy.CooldownMax)
		}
	case FireFixed:
		if c.Enemy.FixedInterval <= 0 {
			return invalid("enemy fixed interval %s", c.Enemy.FixedInterval)
		}
	default:
		return invalid("enemy fire mode %q", c.Enemy.Fire)
	}
	if c.Enemy.Mass <= 0 {
		return invalid("enemy mass %g", c.Enemy.Mass)
	}
	if err := c.Enemy.Collider.validate("enemy"); err != nil {
		return invalid("%v", err)
	}

	if c.Projectile.Speed <= 0 {
		return invalid("projectile speed %g", c.Projectile.Speed)
	}
	if c.Projectile.BoundsScale.X <= 0 || c.Projectile.BoundsScale.Y <= 0 {
		return invalid("projectile bounds scale %v", c.Projectile.BoundsScale)
	}
	if err := c.Projectile.Collider.validate("projectile"); err != nil {
		return invalid("%v", err)
	}

	if c.Physics.Substeps < 1 {
		return invalid("physics substeps %d", c.Physics.Substeps)
	}
	if c.Level.Index < 0 {
		return invalid("level index %d", c.Level.Index)
	}

	for _, p := range append(append([]FactionPair{}, c.Collision.Allow...), c.Collision.Deny...) {
		if !p[0].Valid() || !p[1].Valid() {
			return invalid("collision pair %v", p)
		}
	}
	if err := c.Table().Validate(); err != nil {
		return invalid("%v", err)
	}
	return nil
}

func (c Collider) validate(name string) error {
	if c.Size.X <= 0 || c.Size.Y <= 0 {
		return fmt.Errorf("%s collider size %gx%g", name, c.Size.X, c.Size.Y)
	}
	return nil
}

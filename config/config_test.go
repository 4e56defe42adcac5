package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/faction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 512, cfg.Window.Height)
	assert.Equal(t, 1.5, cfg.Camera.Zoom)
	assert.Equal(t, 1300.0, cfg.Projectile.Speed)
	assert.Equal(t, config.DeathRespawn, cfg.Player.Death)
	assert.False(t, cfg.Collision.BulletsCollide)

	// a dash moves less than half the player's width per substep
	step := (cfg.Player.Speed + cfg.Player.DashImpulse) / float64(cfg.Window.TPS) / float64(cfg.Physics.Substeps)
	assert.Less(t, step, cfg.Player.Collider.Size.X/2)
}

func TestProjectileBounds(t *testing.T) {
	bounds := config.Default().ProjectileBounds()
	assert.Equal(t, cp.Vector{X: -1280, Y: -512}, bounds.Min)
	assert.Equal(t, cp.Vector{X: 1280, Y: 512}, bounds.Max)
}

func TestViewportHalf(t *testing.T) {
	half := config.Default().ViewportHalf()
	assert.InDelta(t, 640/3.0, half.X, 1e-9)
	assert.InDelta(t, 512/3.0, half.Y, 1e-9)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
player:
  speed: 450
  dashDuration: 150ms
  death: despawn
enemy:
  fire: fixed
  fixedInterval: 2s
collision:
  bulletsCollide: true
`))
	require.NoError(t, err)

	assert.Equal(t, 450.0, cfg.Player.Speed)
	assert.Equal(t, 150*time.Millisecond, cfg.Player.DashDuration)
	assert.Equal(t, 300*time.Millisecond, cfg.Player.DashCooldown)
	assert.Equal(t, config.DeathDespawn, cfg.Player.Death)
	assert.Equal(t, config.FireFixed, cfg.Enemy.Fire)
	assert.Equal(t, 2*time.Second, cfg.Enemy.FixedInterval)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.True(t, cfg.Table().Interacts(faction.PlayerBullet, faction.EnemyBullet))
}

func TestParseCollisionPairs(t *testing.T) {
	cfg, err := config.Parse([]byte(`
collision:
  deny:
    - [Player, Enemy]
player:
  dashCollidesWith: [Wall, Enemy]
`))
	require.NoError(t, err)
	assert.False(t, cfg.Table().Interacts(faction.Player, faction.Enemy))
	assert.False(t, cfg.Table().Interacts(faction.Enemy, faction.Player))
	assert.Equal(t, []faction.Faction{faction.Wall, faction.Enemy}, cfg.Player.DashCollidesWith)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero window", "window: {width: 0}"},
		{"negative speed", "player: {speed: -1}"},
		{"unknown aim", "player: {aim: sideways}"},
		{"unknown death policy", "player: {death: sulk}"},
		{"inverted cooldown", "enemy: {cooldownMin: 2s, cooldownMax: 1s}"},
		{"zero cooldown min", "enemy: {cooldownMin: 0s}"},
		{"unknown fire mode", "enemy: {fire: burst}"},
		{"empty collider", "projectile: {collider: {size: {x: 0, y: 4}}}"},
		{"owner hit", "collision: {allow: [[Enemy, EnemyBullet]]}"},
		{"no substeps", "physics: {substeps: 0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParseRejectsUnknownFaction(t *testing.T) {
	_, err := config.Parse([]byte("collision: {allow: [[Player, Ghost]]}"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "astro.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: {title: Test}\n"), 0o644))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", cfg.Window.Title)
}

func TestWriteProducesLoadableConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, config.Default().Write(&buf))
	assert.Contains(t, buf.String(), "dashDuration: 300ms")

	cfg, err := config.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

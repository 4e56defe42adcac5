package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/faction"
	"github.com/plus3/astro/geom"
	"github.com/plus3/astro/input"
	"github.com/plus3/astro/physics"
	"github.com/plus3/astro/shooter"
)

var (
	background   = color.RGBA{24, 20, 37, 255}
	wallColor    = color.RGBA{90, 105, 136, 255}
	playerColor  = color.RGBA{99, 199, 77, 255}
	dashColor    = color.RGBA{190, 250, 170, 255}
	enemyColor   = color.RGBA{228, 59, 68, 255}
	facingColor  = color.RGBA{254, 231, 97, 255}
	aimColor     = color.RGBA{192, 203, 220, 255}
	bulletColors = map[faction.Faction]color.Color{
		faction.PlayerBullet: color.RGBA{44, 232, 245, 255},
		faction.EnemyBullet:  color.RGBA{247, 118, 34, 255},
	}
)

type drawable struct {
	*shooter.Transform
	*physics.Body
	Player     *shooter.Player      `ecs:"optional"`
	Enemy      *shooter.Enemy       `ecs:"optional"`
	Projectile *shooter.Projectile  `ecs:"optional"`
	Wall       *shooter.Wall        `ecs:"optional"`
	Frame      *shooter.SpriteFrame `ecs:"optional"`
}

// spriteFacing undoes the sprite sheet order of the player frames.
var spriteFacing = [...]geom.Facing{geom.Right, geom.Left, geom.Up, geom.Down}

func drawWorld(screen *ebiten.Image, w *shooter.World) {
	screen.Fill(background)

	cam := w.Camera()
	if cam == nil {
		return
	}
	view := cam.View()

	for _, d := range ecs.NewView[drawable](w.Storage).Iter() {
		half := cp.Vector{X: d.Body.Size.X / 2, Y: d.Body.Size.Y / 2}
		box := geom.RectFromCenter(d.Transform.Position.Add(d.Body.Offset), half)

		switch {
		case d.Wall != nil:
			fillRect(screen, view, box, wallColor)
		case d.Player != nil:
			c := playerColor
			if d.Player.State == shooter.Dashing {
				c = dashColor
			}
			fillRect(screen, view, box, c)
			if d.Frame != nil && d.Frame.Index < len(spriteFacing) {
				marker(screen, view, d.Transform.Position, spriteFacing[d.Frame.Index], half)
			}
		case d.Enemy != nil:
			fillRect(screen, view, box, enemyColor)
			f := geom.Right
			if d.Frame != nil && d.Frame.FlipX {
				f = geom.Left
			}
			marker(screen, view, d.Transform.Position, f, half)
		case d.Projectile != nil:
			c, ok := bulletColors[d.Projectile.Faction]
			if !ok {
				c = color.White
			}
			// drawn axis aligned, long side along the travel axis
			if math.Abs(math.Sin(d.Transform.Rotation)) > math.Abs(math.Cos(d.Transform.Rotation)) {
				box = geom.RectFromCenter(box.Center(), cp.Vector{X: half.Y, Y: half.X})
			}
			fillRect(screen, view, box, c)
		}
	}
}

func fillRect(screen *ebiten.Image, view input.View, r geom.Rect, c color.Color) {
	a := view.Project(r.Min)
	b := view.Project(r.Max)
	x, y := min(a.X, b.X), min(a.Y, b.Y)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(max(a.X, b.X)-x), float32(max(a.Y, b.Y)-y), c, false)
}

// marker draws a small square on the side of the body an actor faces.
func marker(screen *ebiten.Image, view input.View, center cp.Vector, f geom.Facing, half cp.Vector) {
	dir := f.Vector()
	at := center.Add(cp.Vector{X: dir.X * half.X, Y: dir.Y * half.Y})
	fillRect(screen, view, geom.RectFromCenter(at, cp.Vector{X: 2, Y: 2}), facingColor)
}

const gunLength = 12

// aimLine returns the muzzle of a live player and the world point under the
// cursor when the player aims with the pointer.
func aimLine(w *shooter.World) (muzzle, target cp.Vector, ok bool) {
	in, cam := w.Input(), w.Camera()
	if w.Config.Player.Aim != config.AimPointer || in == nil || cam == nil || !in.CursorInside || in.Captured {
		return cp.Vector{}, cp.Vector{}, false
	}
	id, alive := w.Player()
	if !alive {
		return cp.Vector{}, cp.Vector{}, false
	}
	p := ecs.ReadComponent[shooter.Player](w.Storage, id)
	tr := ecs.ReadComponent[shooter.Transform](w.Storage, id)
	if p == nil || tr == nil || p.Dead {
		return cp.Vector{}, cp.Vector{}, false
	}
	muzzle = tr.Position.Add(w.Config.Player.Muzzle)
	return muzzle, input.Unproject(in.Cursor, cam.View()), true
}

// drawAim draws the gun barrel toward the cursor and a crosshair on it.
func drawAim(screen *ebiten.Image, w *shooter.World) {
	muzzle, target, ok := aimLine(w)
	if !ok {
		return
	}
	view := w.Camera().View()
	dir := geom.Normalize(target.Sub(muzzle))
	if dir == (cp.Vector{}) {
		return
	}

	from := view.Project(muzzle)
	to := view.Project(muzzle.Add(dir.Mult(gunLength)))
	vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 3, facingColor, true)

	c := w.Input().Cursor
	x, y := float32(c.X), float32(c.Y)
	vector.StrokeLine(screen, x-6, y, x+6, y, 1, aimColor, false)
	vector.StrokeLine(screen, x, y-6, x, y+6, 1, aimColor, false)
}

func drawHUD(screen *ebiten.Image, w *shooter.World) {
	s := w.Scoreboard()
	if s == nil {
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"kills %d  deaths %d  streak %d (best %d)  bullets %d  %.0f TPS",
		s.Kills, s.Deaths, s.Streak, s.BestStreak, w.ProjectileCount(), ebiten.ActualTPS(),
	))
}

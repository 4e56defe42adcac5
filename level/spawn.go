package level

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/geom"
)

const (
	PlayerIdentifier = "Player"
	EnemyIdentifier  = "Snake_Enemy"
	RotationField    = "Rotation"
)

type Kind uint8

const (
	PlayerSpawn Kind = iota
	EnemySpawn
)

func (k Kind) String() string {
	switch k {
	case PlayerSpawn:
		return "player"
	case EnemySpawn:
		return "enemy"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Spawn is a typed spawn descriptor in world coordinates (y up).
type Spawn struct {
	Kind     Kind
	Position cp.Vector
	Facing   geom.Facing
}

// Describe maps an editor record to a spawn descriptor. Unknown identifiers
// report false. An enemy's Rotation field picks its facing; values other than
// Left and Right leave the default (Right).
func Describe(record EntityInstance, levelHeight float64) (Spawn, bool) {
	pos := cp.Vector{X: float64(record.Px[0]), Y: levelHeight - float64(record.Px[1])}

	switch record.Identifier {
	case PlayerIdentifier:
		return Spawn{Kind: PlayerSpawn, Position: pos, Facing: geom.Left}, true
	case EnemyIdentifier:
		s := Spawn{Kind: EnemySpawn, Position: pos, Facing: geom.Right}
		if value, ok := record.Field(RotationField); ok {
			if f, ok := geom.ParseFacing(value); ok && f.Horizontal() {
				s.Facing = f
			}
		}
		return s, true
	}
	return Spawn{}, false
}

// Spawns describes every known record of the level. Unknown records are
// skipped. It fails with ErrNoPlayer if no player record exists.
func (l *Level) Spawns() ([]Spawn, error) {
	var out []Spawn
	players := 0
	for _, record := range l.Entities {
		s, ok := Describe(record, float64(l.PxHei))
		if !ok {
			slog.Debug("skipping unknown level record", "level", l.Identifier, "identifier", record.Identifier)
			continue
		}
		if s.Kind == PlayerSpawn {
			players++
		}
		out = append(out, s)
	}
	if players == 0 {
		return nil, fmt.Errorf("%s: %w", l.Identifier, ErrNoPlayer)
	}
	return out, nil
}

// Bounds is the level rectangle in world coordinates.
func (l *Level) Bounds() geom.Rect {
	return geom.RectFromSize(float64(l.PxWid), float64(l.PxHei))
}

// Walls merges each vertical run of wall cells into one rectangle, column by
// column, left to right.
func (l *Level) Walls() []geom.Rect {
	g := float64(l.GridSize)
	h := float64(l.PxHei)

	var out []geom.Rect
	for x := 0; x < l.Columns(); x++ {
		for y := 0; y < l.Rows(); {
			if l.Cell(x, y) != WallCell {
				y++
				continue
			}
			top := y
			for y < l.Rows() && l.Cell(x, y) == WallCell {
				y++
			}
			out = append(out, geom.Rect{
				Min: cp.Vector{X: float64(x) * g, Y: h - float64(y)*g},
				Max: cp.Vector{X: float64(x+1) * g, Y: h - float64(top)*g},
			})
		}
	}
	return out
}

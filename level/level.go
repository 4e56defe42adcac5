// Package level reads worlds authored in the level editor's layout (levels
// of int-grid cells plus entity instances with typed fields) and maps them to
// plain spawn descriptors and wall rectangles.
package level

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoLevel is returned for a missing level index or an empty world.
	ErrNoLevel = errors.New("no such level")
	// ErrNoPlayer is returned when a level has no player record.
	ErrNoPlayer = errors.New("level has no player spawn")
)

//go:embed world.yaml
var defaultWorld []byte

// WallCell is the int-grid value that marks a wall.
const WallCell = 1

type World struct {
	Levels []Level `yaml:"levels"`
}

type Level struct {
	Identifier string `yaml:"identifier"`
	PxWid      int    `yaml:"pxWid"`
	PxHei      int    `yaml:"pxHei"`
	GridSize   int    `yaml:"gridSize"`

	// IntGrid holds one string per cell row, top row first, one digit per cell.
	IntGrid  []string         `yaml:"intGrid"`
	Entities []EntityInstance `yaml:"entityInstances"`
}

type EntityInstance struct {
	Identifier string          `yaml:"__identifier"`
	Px         [2]int          `yaml:"px"`
	Fields     []FieldInstance `yaml:"fieldInstances,omitempty"`
}

type FieldInstance struct {
	Identifier string `yaml:"__identifier"`
	Value      string `yaml:"__value"`
}

// Field returns the value of the named field instance.
func (e EntityInstance) Field(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Identifier == name {
			return f.Value, true
		}
	}
	return "", false
}

// Parse decodes and validates a world.
func Parse(data []byte) (*World, error) {
	var w World
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse world: %w", err)
	}
	for i := range w.Levels {
		if err := w.Levels[i].validate(); err != nil {
			return nil, fmt.Errorf("level %d (%s): %w", i, w.Levels[i].Identifier, err)
		}
	}
	return &w, nil
}

// Load reads a world file.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world: %w", err)
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("world loaded", "path", path, "levels", len(w.Levels))
	return w, nil
}

// Default returns the world shipped with the game.
func Default() (*World, error) {
	return Parse(defaultWorld)
}

// Level returns the level at index.
func (w *World) Level(index int) (*Level, error) {
	if index < 0 || index >= len(w.Levels) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNoLevel, index, len(w.Levels))
	}
	return &w.Levels[index], nil
}

// Columns and Rows are the int-grid dimensions.
func (l *Level) Columns() int { return l.PxWid / l.GridSize }
func (l *Level) Rows() int    { return l.PxHei / l.GridSize }

// Cell returns the int-grid value at column x, row y (row 0 on top).
// Cells outside the grid are empty.
func (l *Level) Cell(x, y int) int {
	if y < 0 || y >= len(l.IntGrid) || x < 0 || x >= len(l.IntGrid[y]) {
		return 0
	}
	c := l.IntGrid[y][x]
	if c < '0' || c > '9' {
		return 0
	}
	return int(c - '0')
}

func (l *Level) validate() error {
	if l.PxWid <= 0 || l.PxHei <= 0 {
		return fmt.Errorf("invalid size %dx%d", l.PxWid, l.PxHei)
	}
	if l.GridSize <= 0 || l.PxWid%l.GridSize != 0 || l.PxHei%l.GridSize != 0 {
		return fmt.Errorf("grid size %d does not divide %dx%d", l.GridSize, l.PxWid, l.PxHei)
	}
	if len(l.IntGrid) > l.Rows() {
		return fmt.Errorf("int grid has %d rows, level fits %d", len(l.IntGrid), l.Rows())
	}
	for i, row := range l.IntGrid {
		if len(row) > l.Columns() {
			return fmt.Errorf("int grid row %d has %d cells, level fits %d", i, len(row), l.Columns())
		}
	}
	return nil
}

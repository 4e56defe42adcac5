// Package faction describes which kinds of bodies in the game may touch each
// other. The compatibility matrix is explicit and symmetric; collision
// membership and filter masks are derived from it instead of being written
// as bit literals.
package faction

import (
	"fmt"
	"math/bits"
)

//go:generate go tool stringer -type=Faction

// Faction is the logical category of a collidable body.
type Faction uint8

const (
	Player Faction = iota
	PlayerBullet
	EnemyBullet
	Enemy
	Wall

	// Count is the number of factions.
	Count = int(Wall) + 1
)

// All lists every faction in declaration order.
var All = [Count]Faction{Player, PlayerBullet, EnemyBullet, Enemy, Wall}

// Bit is the faction's membership bit.
func (f Faction) Bit() uint32 {
	return 1 << uint32(f)
}

// IsProjectile reports whether bodies of this faction are bullets.
func (f Faction) IsProjectile() bool {
	return f == PlayerBullet || f == EnemyBullet
}

// Valid reports whether f is one of the declared factions.
func (f Faction) Valid() bool {
	return int(f) < Count
}

// ParseFaction maps a faction name as printed by String back to its value.
func ParseFaction(name string) (Faction, bool) {
	for _, f := range All {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

func (f Faction) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid faction %d", uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *Faction) UnmarshalText(text []byte) error {
	parsed, ok := ParseFaction(string(text))
	if !ok {
		return fmt.Errorf("unknown faction %q", text)
	}
	*f = parsed
	return nil
}

// Groups is a membership/filter bitmask pair. Two bodies interact when each
// one's membership intersects the other's filter.
type Groups struct {
	Membership uint32
	Filter     uint32
}

// Interacts applies the two-sided membership/filter test.
func (g Groups) Interacts(other Groups) bool {
	return g.Membership&other.Filter != 0 && other.Membership&g.Filter != 0
}

// Only narrows the filter to the given factions, keeping membership as is.
func (g Groups) Only(factions ...Faction) Groups {
	var mask uint32
	for _, f := range factions {
		mask |= f.Bit()
	}
	return Groups{Membership: g.Membership, Filter: g.Filter & mask}
}

// Factions lists the factions present in the filter mask.
func (g Groups) Factions() []Faction {
	var out []Faction
	for mask := g.Filter; mask != 0; mask &= mask - 1 {
		f := Faction(bits.TrailingZeros32(mask))
		if f.Valid() {
			out = append(out, f)
		}
	}
	return out
}

// Table is a symmetric compatibility matrix over factions.
type Table struct {
	matrix [Count][Count]bool
}

// DefaultTable returns the game's standard matrix: the player touches enemy
// bullets, enemies and walls; player bullets touch enemies and walls; enemy
// bullets touch the player and walls; enemies touch walls. With
// bulletsCollide the two bullet factions also cancel each other out.
func DefaultTable(bulletsCollide bool) Table {
	var t Table
	t.Allow(Player, EnemyBullet)
	t.Allow(Player, Enemy)
	t.Allow(Player, Wall)
	t.Allow(PlayerBullet, Enemy)
	t.Allow(PlayerBullet, Wall)
	t.Allow(EnemyBullet, Wall)
	t.Allow(Enemy, Wall)
	if bulletsCollide {
		t.Allow(PlayerBullet, EnemyBullet)
	}
	return t
}

// Allow marks a and b as interacting, in both directions.
func (t *Table) Allow(a, b Faction) {
	t.matrix[a][b] = true
	t.matrix[b][a] = true
}

// Deny removes the interaction between a and b, in both directions.
func (t *Table) Deny(a, b Faction) {
	t.matrix[a][b] = false
	t.matrix[b][a] = false
}

// Interacts reports whether bodies of factions a and b generate contacts.
func (t Table) Interacts(a, b Faction) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return t.matrix[a][b]
}

// Groups derives the collision bitmasks of a faction from the matrix.
func (t Table) Groups(f Faction) Groups {
	g := Groups{Membership: f.Bit()}
	for _, other := range All {
		if t.Interacts(f, other) {
			g.Filter |= other.Bit()
		}
	}
	return g
}

// Validate checks the matrix is symmetric and that no projectile can hit
// the actor faction that fired it.
func (t Table) Validate() error {
	for _, a := range All {
		for _, b := range All {
			if t.matrix[a][b] != t.matrix[b][a] {
				return fmt.Errorf("faction table is not symmetric for %s/%s", a, b)
			}
		}
	}
	if t.matrix[PlayerBullet][Player] {
		return fmt.Errorf("faction table lets %s hit %s", PlayerBullet, Player)
	}
	if t.matrix[EnemyBullet][Enemy] {
		return fmt.Errorf("faction table lets %s hit %s", EnemyBullet, Enemy)
	}
	return nil
}

// Pairs lists every interacting unordered pair once.
func (t Table) Pairs() [][2]Faction {
	var out [][2]Faction
	for i, a := range All {
		for _, b := range All[i:] {
			if t.matrix[a][b] {
				out = append(out, [2]Faction{a, b})
			}
		}
	}
	return out
}

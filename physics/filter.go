package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/faction"
)

// filterOf converts faction groups to a Chipmunk shape filter. Chipmunk
// rejects a pair unless each side's categories intersect the other's mask,
// the same rule faction.Groups.Interacts applies.
func filterOf(g faction.Groups) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(g.Membership), uint(g.Filter))
}

// Rejects reports whether Chipmunk would drop contacts between a and b.
func Rejects(a, b faction.Groups) bool {
	return filterOf(a).Reject(filterOf(b))
}

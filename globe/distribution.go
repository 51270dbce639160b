package globe

import (
	"math"

	"github.com/lixenwraith/lucky-globe/vmath"
)

// SpherePosition returns the unit-sphere position of index i out of n
// Golden-angle spiral from pole to pole, n==1 sits on the equator
func SpherePosition(i, n int) vmath.Vec3F {
	y := 0.0
	if n > 1 {
		y = 1 - (float64(i)/float64(n-1))*2
	}
	radius := math.Sqrt(1 - y*y)
	theta := float64(i) * vmath.GoldenAngle

	return vmath.Vec3F{
		X: math.Cos(theta) * radius,
		Y: y,
		Z: math.Sin(theta) * radius,
	}
}

// FibonacciSphere distributes entities over a sphere of the given radius
// Pure function of list length and order, the returned points reference entities in place
func FibonacciSphere(entities []Entity, radius float64) []SpherePoint {
	n := len(entities)
	points := make([]SpherePoint, n)
	for i := range entities {
		p := vmath.V3FScale(SpherePosition(i, n), radius)
		points[i] = SpherePoint{
			BaseX:  p.X,
			BaseY:  p.Y,
			BaseZ:  p.Z,
			Entity: &entities[i],
		}
	}
	return points
}

// Distribution memoizes FibonacciSphere on entity list identity and membership
// Sync is cheap when the host keeps passing the same slice
type Distribution struct {
	radius float64

	source     *Entity // First element of the last synced slice, identity fast path
	sourceLen  int
	entities   []Entity // Owned copy, SpherePoint.Entity points here
	points     []SpherePoint
	generation uint64
	labels     uint64 // Bumped on regeneration and on any label change
}

// NewDistribution creates an empty distribution at the given base radius
func NewDistribution(radius float64) *Distribution {
	return &Distribution{radius: radius}
}

// Sync adopts a new entity list, returns true if points were regenerated
// Same ids in the same order keep positions and only refresh labels
func (d *Distribution) Sync(entities []Entity) bool {
	if d.sameSource(entities) {
		return false
	}

	d.sourceLen = len(entities)
	d.source = nil
	if len(entities) > 0 {
		d.source = &entities[0]
	}

	if d.sameMembership(entities) {
		// Labels may differ, positions depend only on index and count
		if !sameLabels(d.entities, entities) {
			copy(d.entities, entities)
			d.labels++
		}
		return false
	}

	d.entities = make([]Entity, len(entities))
	copy(d.entities, entities)
	d.points = FibonacciSphere(d.entities, d.radius)
	d.generation++
	d.labels++
	return true
}

func sameLabels(a, b []Entity) bool {
	for i := range a {
		if a[i].DisplayName != b[i].DisplayName || a[i].GroupLabel != b[i].GroupLabel {
			return false
		}
	}
	return true
}

func (d *Distribution) sameSource(entities []Entity) bool {
	if len(entities) != d.sourceLen || d.generation == 0 {
		return false
	}
	if len(entities) == 0 {
		return true
	}
	return &entities[0] == d.source
}

func (d *Distribution) sameMembership(entities []Entity) bool {
	if d.generation == 0 || len(entities) != len(d.entities) {
		return false
	}
	for i := range entities {
		if entities[i].ID != d.entities[i].ID {
			return false
		}
	}
	return true
}

// Points returns the current sphere points, valid until the next regenerating Sync
func (d *Distribution) Points() []SpherePoint {
	return d.points
}

// Len returns the number of live points
func (d *Distribution) Len() int {
	return len(d.points)
}

// Generation increments each time points are regenerated
// Painters rebuild per-entity visual handles when it changes
func (d *Distribution) Generation() uint64 {
	return d.generation
}

// LabelRevision changes whenever Generation does and when a same-membership
// list renames or regroups an entity
func (d *Distribution) LabelRevision() uint64 {
	return d.labels
}

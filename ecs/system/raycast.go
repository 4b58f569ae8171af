package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/deadzone/common"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

// RayHit is the nearest hit region along a ray.
type RayHit struct {
	Region   ecs.Entity
	Owner    ecs.Entity
	Kind     component.RegionKind
	Distance float64
	Point    mgl64.Vec3
}

// Raycast tests every live hit region against the ray origin+t*dir, t >= 0,
// and returns the nearest. Only boxes the ray enters from outside count; an
// origin inside a box does not hit it. On equal distance the region visited
// first wins.
func Raycast(w *ecs.World, origin, dir mgl64.Vec3) (RayHit, bool) {
	var best RayHit
	found := false
	if w == nil {
		return best, false
	}
	dir = common.Normalize(dir)
	if dir == (mgl64.Vec3{}) {
		return best, false
	}

	ecs.ForEach(w, component.HitRegionComponent.Kind(), func(e ecs.Entity, r *component.HitRegion) {
		owner := ecs.Entity(r.Owner)
		if !ecs.IsAlive(w, owner) {
			return
		}
		t, ok := ecs.Get(w, owner, component.TransformComponent.Kind())
		if !ok {
			return
		}

		// Move the ray into the owner's local frame.
		toLocal := mgl64.Rotate3DY(-t.Yaw)
		localOrigin := toLocal.Mul3x1(origin.Sub(t.Position))
		localDir := toLocal.Mul3x1(dir)

		lo := r.Center.Sub(r.HalfExtents)
		hi := r.Center.Add(r.HalfExtents)
		hit, dist := rayAABBEntry(localOrigin, localDir, lo, hi)
		if !hit {
			return
		}
		if found && dist >= best.Distance {
			return
		}
		found = true
		best = RayHit{
			Region:   e,
			Owner:    owner,
			Kind:     r.Kind,
			Distance: dist,
			Point:    origin.Add(dir.Mul(dist)),
		}
	})

	return best, found
}

// RegionWorldCenter returns the centre of a hit region in world space.
func RegionWorldCenter(w *ecs.World, r *component.HitRegion) (mgl64.Vec3, bool) {
	if r == nil {
		return mgl64.Vec3{}, false
	}
	t, ok := ecs.Get(w, ecs.Entity(r.Owner), component.TransformComponent.Kind())
	if !ok {
		return mgl64.Vec3{}, false
	}
	return t.Position.Add(common.RotateY(r.Center, t.Yaw)), true
}

// rayAABBEntry runs the slab test and returns the entry distance. A ray that
// starts inside the box reports no hit.
func rayAABBEntry(o, d, lo, hi mgl64.Vec3) (bool, float64) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o0, d0, lo0, hi0 := o[axis], d[axis], lo[axis], hi[axis]
		if d0 == 0 {
			if o0 < lo0 || o0 > hi0 {
				return false, 0
			}
			continue
		}
		inv := 1.0 / d0
		t1 := (lo0 - o0) * inv
		t2 := (hi0 - o0) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmax < tmin || tmin < 0 {
		return false, 0
	}
	return true, tmin
}

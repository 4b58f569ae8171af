package component

import "github.com/go-gl/mathgl/mgl64"

// RegionKind selects the damage class of a hit region.
type RegionKind int

const (
	RegionBody RegionKind = iota
	RegionHead
)

func (k RegionKind) String() string {
	if k == RegionHead {
		return "head"
	}
	return "body"
}

// HitRegion is an invisible box in its owner's local frame. Owner is the raw
// handle of the owning enemy entity; the region is destroyed with it.
type HitRegion struct {
	Owner       uint64
	Kind        RegionKind
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
}

var HitRegionComponent = NewComponent[HitRegion]()

package component

import "github.com/go-gl/mathgl/mgl64"

// Transform places an entity in the world. Yaw rotates the entity's local
// frame about +Y; local +Z faces along (sin Yaw, 0, cos Yaw).
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
}

var TransformComponent = NewComponent[Transform]()

package component

import "github.com/go-gl/mathgl/mgl64"

// Projectile is the visible tracer spawned by a shot. It carries no damage;
// hits are resolved by the ray test at fire time.
type Projectile struct {
	Velocity mgl64.Vec3
}

var ProjectileComponent = NewComponent[Projectile]()

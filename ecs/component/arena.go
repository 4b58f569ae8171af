package component

import "github.com/go-gl/mathgl/mgl64"

// RegionTemplate describes one hit box in the enemy's local frame.
type RegionTemplate struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
}

// EnemyTemplate holds the tuning every spawned enemy starts from.
type EnemyTemplate struct {
	Health        float64
	SpeedMin      float64
	SpeedJitter   float64
	BobStep       float64
	BobHeight     float64
	ContactRange  float64
	ContactDamage float64
	Body          RegionTemplate
	Head          RegionTemplate
	BarWidth      float64
	BarHeight     float64
}

// Arena is the registry singleton: the enemy count kept alive and the square
// spawn region centred on the origin.
type Arena struct {
	EnemyCount int
	HalfExtent float64
	Enemy      EnemyTemplate

	ArmSwingRate float64
	ArmSwingAmp  float64
}

var ArenaComponent = NewComponent[Arena]()

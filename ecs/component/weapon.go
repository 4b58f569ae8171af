package component

import "time"

// Weapon is the player's gun. Fire requests before ReadyAt are dropped.
type Weapon struct {
	Cooldown time.Duration
	ReadyAt  time.Duration

	HeadDamage float64
	BodyDamage float64

	MuzzleOffset       float64
	ProjectileSpeed    float64
	ProjectileLifetime int

	FlashDuration  time.Duration
	RecoilDuration time.Duration
	RecoilKick     float64
}

var WeaponComponent = NewComponent[Weapon]()

package common

import "time"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TicksPerSecond matches ebiten's default TPS.
	TicksPerSecond = 60
	TickDuration   = time.Second / TicksPerSecond
)

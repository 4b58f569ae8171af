package component

import "time"

// HitFlash tints an enemy's body while Remaining is positive. A new hit
// restarts the timer.
type HitFlash struct {
	Remaining time.Duration
}

var HitFlashComponent = NewComponent[HitFlash]()

// Recoil kicks the gun model back while Remaining is positive.
type Recoil struct {
	Remaining time.Duration
	Kick      float64
}

var RecoilComponent = NewComponent[Recoil]()

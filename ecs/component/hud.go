package component

// HUD is the read-only projection drawn over the scene each frame.
type HUD struct {
	Status     string
	HealthFill float64
	GameOver   bool
	Crosshair  bool
}

var HUDComponent = NewComponent[HUD]()

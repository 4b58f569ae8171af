package component

// Player is the first-person controller state. Speeds are per tick.
type Player struct {
	Yaw      float64
	Pitch    float64
	VelY     float64
	Grounded bool

	MoveSpeed   float64
	JumpSpeed   float64
	Gravity     float64
	EyeHeight   float64
	Sensitivity float64
}

var PlayerComponent = NewComponent[Player]()

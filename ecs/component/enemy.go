package component

// Enemy is a pursuing zombie. Regions holds the raw handles of its body and
// head hit-region entities.
type Enemy struct {
	Speed    float64
	Phase    float64
	ArmSwing float64
	Regions  [2]uint64

	ContactRange  float64
	ContactDamage float64
	BobStep       float64
	BobHeight     float64
}

var EnemyComponent = NewComponent[Enemy]()

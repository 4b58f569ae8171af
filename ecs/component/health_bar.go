package component

// HealthBar is the floating bar above an enemy. Scale is the fill fraction
// and OffsetX shifts the fill so it shrinks toward the left edge.
type HealthBar struct {
	Width   float64
	Height  float64
	Scale   float64
	OffsetX float64
}

var HealthBarComponent = NewComponent[HealthBar]()

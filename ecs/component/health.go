package component

// Health is shared by the player and enemies. Current stays in [0, Max].
type Health struct {
	Current float64
	Max     float64
}

// Damage subtracts amount, clamping at zero, and returns the new value.
func (h *Health) Damage(amount float64) float64 {
	if h == nil {
		return 0
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

// Fraction returns Current/Max clamped to [0, 1].
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	f := h.Current / h.Max
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func (h *Health) Dead() bool {
	return h == nil || h.Current <= 0
}

var HealthComponent = NewComponent[Health]()

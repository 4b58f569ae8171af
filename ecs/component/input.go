package component

// Key is a symbolic key name as delivered by the platform layer.
type Key string

const (
	KeyForward Key = "w"
	KeyBack    Key = "s"
	KeyLeft    Key = "a"
	KeyRight   Key = "d"
	KeyJump    Key = "space"
	KeyReset   Key = "r"
	KeyRelease Key = "escape"
)

// BoundKeys lists the key names the game tracks; anything else is ignored.
var BoundKeys = []Key{KeyForward, KeyBack, KeyLeft, KeyRight, KeyJump, KeyReset, KeyRelease}

// Input stores per-tick input state for the player entity. Held persists
// across ticks; the remaining fields describe only the current tick.
type Input struct {
	Held map[Key]bool

	LookDX float64
	LookDY float64

	PrimaryPresses int
	ResetPressed   bool
	ReleasePressed bool
}

// IsHeld reports whether a bound key is currently down.
func (in *Input) IsHeld(k Key) bool {
	return in != nil && in.Held[k]
}

// BeginTick clears the per-tick fields, keeping held keys.
func (in *Input) BeginTick() {
	if in == nil {
		return
	}
	in.LookDX, in.LookDY = 0, 0
	in.PrimaryPresses = 0
	in.ResetPressed = false
	in.ReleasePressed = false
}

var InputComponent = NewComponent[Input]()

func IsBoundKey(k Key) bool {
	for _, b := range BoundKeys {
		if b == k {
			return true
		}
	}
	return false
}

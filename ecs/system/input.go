package system

import (
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

type InputEventKind int

const (
	InputKeyDown InputEventKind = iota
	InputKeyUp
	InputMotion
	InputPrimaryPress
)

// InputEvent is one platform input event. Key is set for key events, DX/DY
// for relative pointer motion.
type InputEvent struct {
	Kind InputEventKind
	Key  component.Key
	DX   float64
	DY   float64
}

// InputSource yields the events that arrived since the previous poll.
type InputSource interface {
	Poll() []InputEvent
}

// InputSystem folds the tick's events into the player's Input component.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	var events []InputEvent
	if i.source != nil {
		events = i.source.Poll()
	}

	captured := false
	if _, gs, ok := ecs.Singleton(w, component.GameStateComponent.Kind()); ok {
		captured = gs.PointerCaptured
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.BeginTick()
		if input.Held == nil {
			input.Held = map[component.Key]bool{}
		}
		for _, evt := range events {
			ApplyInputEvent(input, evt, captured)
		}
	})
}

// ApplyInputEvent records one event. Motion only counts while the pointer is
// captured; keys outside BoundKeys are ignored.
func ApplyInputEvent(input *component.Input, evt InputEvent, captured bool) {
	switch evt.Kind {
	case InputKeyDown:
		if !component.IsBoundKey(evt.Key) {
			return
		}
		input.Held[evt.Key] = true
		switch evt.Key {
		case component.KeyReset:
			input.ResetPressed = true
		case component.KeyRelease:
			input.ReleasePressed = true
		}
	case InputKeyUp:
		if !component.IsBoundKey(evt.Key) {
			return
		}
		input.Held[evt.Key] = false
	case InputMotion:
		if !captured {
			return
		}
		input.LookDX += evt.DX
		input.LookDY += evt.DY
	case InputPrimaryPress:
		input.PrimaryPresses++
	}
}

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/ecs/system"
)

var keyBindings = map[component.Key]ebiten.Key{
	component.KeyForward: ebiten.KeyW,
	component.KeyBack:    ebiten.KeyS,
	component.KeyLeft:    ebiten.KeyA,
	component.KeyRight:   ebiten.KeyD,
	component.KeyJump:    ebiten.KeySpace,
	component.KeyReset:   ebiten.KeyR,
	component.KeyRelease: ebiten.KeyEscape,
}

// ebitenInput turns Ebitengine's polled input into the game's event stream.
// Pointer deltas come from the virtual cursor Ebitengine keeps while the
// cursor is captured.
type ebitenInput struct {
	lastX, lastY int
	tracking     bool
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{}
}

func (in *ebitenInput) Poll() []system.InputEvent {
	var events []system.InputEvent

	for _, k := range component.BoundKeys {
		key, ok := keyBindings[k]
		if !ok {
			continue
		}
		if inpututil.IsKeyJustPressed(key) {
			events = append(events, system.InputEvent{Kind: system.InputKeyDown, Key: k})
		}
		if inpututil.IsKeyJustReleased(key) {
			events = append(events, system.InputEvent{Kind: system.InputKeyUp, Key: k})
		}
	}

	if ebiten.CursorMode() == ebiten.CursorModeCaptured {
		x, y := ebiten.CursorPosition()
		if in.tracking && (x != in.lastX || y != in.lastY) {
			events = append(events, system.InputEvent{
				Kind: system.InputMotion,
				DX:   float64(x - in.lastX),
				DY:   float64(y - in.lastY),
			})
		}
		in.lastX, in.lastY = x, y
		in.tracking = true
	} else {
		in.tracking = false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, system.InputEvent{Kind: system.InputPrimaryPress})
	}

	return events
}

// heldKeys reports which bound keys isDown sees pressed.
func heldKeys(isDown func(ebiten.Key) bool) map[component.Key]bool {
	held := make(map[component.Key]bool, len(keyBindings))
	for k, key := range keyBindings {
		if isDown(key) {
			held[k] = true
		}
	}
	return held
}

// seedHeld copies held into every input component so keys kept down across
// a world rebuild still count, since no new key-down edge will arrive.
func seedHeld(w *ecs.World, held map[component.Key]bool) {
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		if in.Held == nil {
			in.Held = make(map[component.Key]bool, len(held))
		}
		for k, down := range held {
			in.Held[k] = down
		}
	})
}

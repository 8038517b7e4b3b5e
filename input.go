package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bombsim/sim"
)

// stickDeadZone is how far the left stick must lean to count as a press.
const stickDeadZone = 0.3

type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

var bindings = map[sim.Key]binding{
	sim.KeyConfirm: {keys: []ebiten.Key{ebiten.KeyEnter}, buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight}},
	sim.KeyUp:      {keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}, buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}},
	sim.KeyDown:    {keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
	sim.KeyLeft:    {keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
	sim.KeyRight:   {keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
	sim.KeyJump:    {keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}, buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
	sim.KeyItem:    {keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyShiftLeft}, buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
}

// Input polls keyboard and the first gamepad once per frame. It implements
// sim.Input.
type Input struct {
	down    map[sim.Key]bool
	pressed map[sim.Key]bool
}

var _ sim.Input = (*Input)(nil)

func NewInput() *Input {
	return &Input{down: map[sim.Key]bool{}, pressed: map[sim.Key]bool{}}
}

func (i *Input) Pressed(k sim.Key) bool { return i.pressed[k] }
func (i *Input) Down(k sim.Key) bool    { return i.down[k] }

// Update samples the devices. A key is pressed on the frame it went down
// on any device bound to it.
func (i *Input) Update() {
	ids := ebiten.GamepadIDs()
	var stickX, stickY float64
	if len(ids) > 0 {
		stickX = ebiten.StandardGamepadAxisValue(ids[0], ebiten.StandardGamepadAxisLeftStickHorizontal)
		stickY = ebiten.StandardGamepadAxisValue(ids[0], ebiten.StandardGamepadAxisLeftStickVertical)
	}

	for k, b := range bindings {
		down, just := false, false
		for _, key := range b.keys {
			down = down || ebiten.IsKeyPressed(key)
			just = just || inpututil.IsKeyJustPressed(key)
		}
		if len(ids) > 0 {
			for _, btn := range b.buttons {
				down = down || ebiten.IsStandardGamepadButtonPressed(ids[0], btn)
				just = just || inpututil.IsStandardGamepadButtonJustPressed(ids[0], btn)
			}
		}
		switch k {
		case sim.KeyLeft:
			down = down || stickX < -stickDeadZone
		case sim.KeyRight:
			down = down || stickX > stickDeadZone
		case sim.KeyUp:
			down = down || stickY < -stickDeadZone
		case sim.KeyDown:
			down = down || stickY > stickDeadZone
		}
		// stick leans count as presses on their first frame
		i.pressed[k] = just || (down && !i.down[k])
		i.down[k] = down
	}
}

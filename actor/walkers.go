package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/sim"
)

func vec(x, y float64) common.Vector { return common.Vector{X: x, Y: y} }

func walkerDontFall(kind Kind, args Args) (bool, error) {
	var a WalkerArgs
	if err := decodeArgs(kind, args, &a); err != nil {
		return false, err
	}
	return !a.Falls, nil
}

// Wheeliam patrols back and forth.
type Wheeliam struct {
	Enemy
}

func NewWheeliam(ctx *sim.Context, x, y float64, args Args) (*Wheeliam, error) {
	dontFall, err := walkerDontFall(KindWheeliam, args)
	if err != nil {
		return nil, err
	}
	return newWheeliam(x, y, dontFall), nil
}

func newWheeliam(x, y float64, dontFall bool) *Wheeliam {
	w := &Wheeliam{Enemy: newEnemy(KindWheeliam, x, y, 32, 32, vec(-4, -2), 3, 1, []int{0, 1}, 8, 100, 1)}
	w.attachWalker(1.6, dontFall)
	w.MaxSpeed.Y = 10
	w.bind(w)
	return w
}

func (w *Wheeliam) Update(ctx *sim.Context) { w.walk(ctx, 0, nil) }

// Fureel is a two-hit walker that curls up while invulnerable.
type Fureel struct {
	Enemy
}

func NewFureel(ctx *sim.Context, x, y float64, args Args) (*Fureel, error) {
	dontFall, err := walkerDontFall(KindFureel, args)
	if err != nil {
		return nil, err
	}
	f := &Fureel{Enemy: newEnemy(KindFureel, x-4, y-7, 40, 39, vec(-10, 0), 3, 1, []int{0, 1}, 8, 250, 2)}
	f.attachWalker(2.3, dontFall)
	f.Health.OnIFrameStart = func(*component.Health) { f.animate([]int{2}, 0) }
	f.Health.OnIFrameEnd = func(*component.Health) { f.animate([]int{0, 1}, 0) }
	f.bind(f)
	return f, nil
}

func (f *Fureel) Update(ctx *sim.Context) { f.walk(ctx, 0, nil) }

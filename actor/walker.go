package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

// Walker is the patrol component of enemies that walk along the floor and
// turn around at walls and, unless they are allowed to fall, at ledges.
type Walker struct {
	DontFall       bool
	SpeedM         float64
	Forces         common.Vector
	Turning        bool
	FloorTolerance int

	nextRight bool
	// OnTurn runs when a turn is prepared, before it is committed.
	OnTurn func(right bool)
}

// WalkerArgs is the section configuration shared by walkers.
type WalkerArgs struct {
	// Falls lets the walker step off ledges and follow ramps.
	Falls bool `yaml:"falls"`
}

func (e *Enemy) attachWalker(speed float64, dontFall bool) {
	e.Walker = &Walker{
		DontFall: dontFall,
		SpeedM:   speed,
		Forces:   common.Vector{X: -speed},
	}
	e.FacingRight = false
}

// walk is the update of a walking enemy. block replaces the default turn
// commit while turning.
func (e *Enemy) walk(ctx *sim.Context, tolerance float64, block func()) {
	w := e.Walker
	switch {
	case e.Health.Invulnerable:
		e.update(ctx, 0, nil)
	case w.Turning:
		if block != nil {
			e.update(ctx, tolerance, block)
			return
		}
		e.SetDirection()
		e.update(ctx, tolerance, nil)
	default:
		e.update(ctx, 0, func() { e.patrol(ctx) })
	}
}

func (e *Enemy) patrol(ctx *sim.Context) {
	w := e.Walker
	ramps := ctx.Section.Ramps()
	if w.DontFall {
		ramps = nil
	}
	e.Move(w.Forces, e.obstacles(ctx), ramps)
	w.Forces.X = 0
	switch {
	case e.Left != nil:
		e.PrepareTurn(true)
	case e.Right != nil:
		e.PrepareTurn(false)
	case w.DontFall:
		if e.FacingRight {
			if !e.Floor(ctx, false) {
				e.PrepareTurn(false)
			}
		} else if !e.Floor(ctx, true) {
			e.PrepareTurn(true)
		}
	case e.FacingRight:
		if e.Speed.X == 0 {
			w.Forces.X = w.SpeedM
		}
		if e.Speed.X < 0 {
			e.PrepareTurn(false)
		}
	default:
		if e.Speed.X == 0 {
			w.Forces.X = -w.SpeedM
		}
		if e.Speed.X > 0 {
			e.PrepareTurn(true)
		}
	}
}

// Floor reports whether there is ground just past the left or right foot.
func (e *Enemy) Floor(ctx *sim.Context, left bool) bool {
	for i := 0; i <= e.Walker.FloorTolerance; i++ {
		x := e.X + e.W + float64(i)
		if left {
			x = e.X - 1 - float64(i)
		}
		if ctx.Section.ObstacleAt(x, e.Y+e.H) {
			return true
		}
	}
	return false
}

// PrepareTurn stops the walker and records the direction it will face once
// the turn is committed.
func (e *Enemy) PrepareTurn(right bool) {
	w := e.Walker
	w.Turning = true
	e.Speed.X = 0
	w.nextRight = right
	if w.OnTurn != nil {
		w.OnTurn(right)
	}
}

// SetDirection commits a prepared turn.
func (e *Enemy) SetDirection() {
	w := e.Walker
	w.Turning = false
	if w.nextRight {
		w.Forces.X = w.SpeedM
		e.FacingRight = true
	} else {
		w.Forces.X = -w.SpeedM
		e.FacingRight = false
	}
}

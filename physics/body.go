package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bombsim/common"
)

const minSpeed = 0.01

// Body is a moving rectangle with contact tracking. It is embedded by every
// actor that moves through a section.
type Body struct {
	X, Y, W, H float64

	Speed        common.Vector
	StoredForces common.Vector
	MaxSpeed     common.Vector
	Mass         float64

	// Contacts from the last Move. Bottom holds what the body stands on.
	Bottom Obstacle
	Top    Obstacle
	Left   Obstacle
	Right  Obstacle

	Solid bool

	curPoint int
}

func NewBody(x, y, w, h float64) Body {
	return Body{
		X:        x,
		Y:        y,
		W:        w,
		H:        h,
		MaxSpeed: common.Vector{X: common.DefaultMaxSpeed, Y: common.DefaultMaxSpeed},
		Mass:     1,
	}
}

func (b *Body) Bounds() common.Rect { return common.NewRect(b.X, b.Y, b.W, b.H) }

// Passable reports false for bodies that other bodies may stand on.
func (b *Body) Passable() bool { return !b.Solid }

func (b *Body) Position() common.Vector { return common.Vector{X: b.X, Y: b.Y} }

func (b *Body) Center() common.Vector {
	return common.Vector{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Move applies gravity, stored forces and forces, then moves the body
// against obstacles and ramps one axis at a time.
func (b *Body) Move(forces common.Vector, obst []Obstacle, ramps []*Ramp) {
	b.MoveWithGravity(forces, obst, ramps, common.Gravity)
}

// MoveWithGravity is Move with a custom vertical gravity.
func (b *Body) MoveWithGravity(forces common.Vector, obst []Obstacle, ramps []*Ramp, gravity float64) {
	forces.Y += gravity
	forces = forces.Add(b.StoredForces)
	b.StoredForces = common.Vector{}

	if (forces.X < 0 && b.Left != nil) || (forces.X > 0 && b.Right != nil) {
		forces.X = 0
	}
	if (forces.Y < 0 && b.Top != nil) || (forces.Y > 0 && b.Bottom != nil) {
		forces.Y = 0
	}

	mass := b.Mass
	if mass <= 0 {
		mass = 1
	}
	b.Speed = b.Speed.Add(forces.Mult(1 / mass))
	b.step(obst, ramps)
}

// MoveSetSpeed moves the body with the given speed, ignoring gravity and
// stored forces.
func (b *Body) MoveSetSpeed(speed common.Vector, obst []Obstacle, ramps []*Ramp) {
	b.Speed = speed
	b.step(obst, ramps)
}

func (b *Body) step(obst []Obstacle, ramps []*Ramp) {
	if math.Abs(b.Speed.X) < minSpeed {
		b.Speed.X = 0
	}
	if math.Abs(b.Speed.Y) < minSpeed {
		b.Speed.Y = 0
	}
	if b.MaxSpeed.X > 0 && math.Abs(b.Speed.X) > b.MaxSpeed.X {
		b.Speed.X = common.Sign(b.Speed.X) * b.MaxSpeed.X
	}
	if b.MaxSpeed.Y > 0 && math.Abs(b.Speed.Y) > b.MaxSpeed.Y {
		b.Speed.Y = common.Sign(b.Speed.Y) * b.MaxSpeed.Y
	}

	wasOnRamp := false
	if _, ok := b.Bottom.(*Ramp); ok {
		wasOnRamp = true
	}
	b.Bottom, b.Top, b.Left, b.Right = nil, nil, nil, nil

	prev := b.Bounds()
	b.X += b.Speed.X
	for _, o := range obst {
		if o == nil || o == Obstacle(b) || o.Passable() {
			continue
		}
		r := o.Bounds()
		if !b.Bounds().Intersects(r) {
			continue
		}
		if b.Speed.X > 0 && r.X >= prev.Right()-minSpeed {
			b.X = r.X - b.W
			b.Right = o
			b.Speed.X = 0
		} else if b.Speed.X < 0 && r.Right() <= prev.X+minSpeed {
			b.X = r.Right()
			b.Left = o
			b.Speed.X = 0
		}
	}

	b.Y += b.Speed.Y
	for _, o := range obst {
		if o == nil || o == Obstacle(b) {
			continue
		}
		r := o.Bounds()
		if !b.Bounds().Intersects(r) {
			continue
		}
		if b.Speed.Y > 0 && r.Y >= prev.Bottom()-minSpeed {
			b.Y = r.Y - b.H
			b.Bottom = o
			b.Speed.Y = 0
		} else if b.Speed.Y < 0 && !o.Passable() && r.Bottom() <= prev.Y+minSpeed {
			b.Y = r.Bottom()
			b.Top = o
			b.Speed.Y = 0
		}
	}

	if b.Bottom == nil {
		b.landOnRamp(ramps, prev, wasOnRamp)
	}
	b.touch(obst)
}

func (b *Body) landOnRamp(ramps []*Ramp, prev common.Rect, wasOnRamp bool) {
	cx := b.X + b.W/2
	for _, r := range ramps {
		if r == nil || !r.Covers(cx) {
			continue
		}
		surface := r.SurfaceY(cx)
		foot := b.Y + b.H
		if b.Speed.Y < 0 {
			continue
		}
		// sticks to the slope while walking down it
		snap := math.Abs(b.Speed.X) + 1
		if foot >= surface && prev.Bottom() <= r.SurfaceY(prev.X+prev.W/2)+snap ||
			wasOnRamp && foot < surface && surface-foot <= snap {
			b.Y = surface - b.H
			b.Speed.Y = 0
			b.Bottom = r
			return
		}
	}
}

// touch records resting contacts that produced no motion this frame.
func (b *Body) touch(obst []Obstacle) {
	bounds := b.Bounds()
	for _, o := range obst {
		if o == nil || o == Obstacle(b) {
			continue
		}
		r := o.Bounds()
		vOverlap := bounds.Y < r.Bottom() && bounds.Bottom() > r.Y
		hOverlap := bounds.X < r.Right() && bounds.Right() > r.X
		if !o.Passable() {
			if b.Left == nil && vOverlap && math.Abs(r.Right()-bounds.X) < minSpeed {
				b.Left = o
			}
			if b.Right == nil && vOverlap && math.Abs(r.X-bounds.Right()) < minSpeed {
				b.Right = o
			}
			if b.Top == nil && hOverlap && math.Abs(r.Bottom()-bounds.Y) < minSpeed {
				b.Top = o
			}
		}
		if b.Bottom == nil && hOverlap && math.Abs(r.Y-bounds.Bottom()) < minSpeed {
			b.Bottom = o
		}
	}
}

// MoveFree moves straight toward aim at the given speed without collision,
// snapping onto aim on arrival.
func (b *Body) MoveFree(aim common.Vector, speed float64) {
	dx := aim.X - b.X
	dy := aim.Y - b.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		b.Speed = common.Vector{}
		return
	}
	b.Speed.X = dx * speed / dist
	b.Speed.Y = dy * speed / dist

	if (b.Speed.X < 0 && b.X+b.Speed.X <= aim.X) || (b.Speed.X >= 0 && b.X+b.Speed.X >= aim.X) {
		b.X = aim.X
		b.Speed.X = 0
	} else {
		b.X += b.Speed.X
	}
	if (b.Speed.Y < 0 && b.Y+b.Speed.Y <= aim.Y) || (b.Speed.Y >= 0 && b.Y+b.Speed.Y >= aim.Y) {
		b.Y = aim.Y
		b.Speed.Y = 0
	} else {
		b.Y += b.Speed.Y
	}
}

// MoveAngle moves the body speed pixels along angle (degrees, screen axes).
func (b *Body) MoveAngle(angle, speed float64) {
	b.Speed = cp.ForAngle(common.DegToRad(angle)).Mult(speed)
	b.X += b.Speed.X
	b.Y += b.Speed.Y
}

// MoveCarrying moves toward aim like MoveFree and drags every carried body
// standing on top of it by the same displacement.
func (b *Body) MoveCarrying(aim common.Vector, speed float64, carried []*Body, obst []Obstacle, ramps []*Ramp) {
	dx := aim.X - b.X
	dy := aim.Y - b.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		b.Speed = common.Vector{}
		return
	}
	b.Speed.X = dx * speed / dist
	b.Speed.Y = dy * speed / dist
	xAim := b.X + b.Speed.X
	yAim := b.Y + b.Speed.Y

	var passengers []*Body
	for _, o := range carried {
		if o == nil || !(b.X+b.W > o.X && o.X+o.W > b.X) {
			continue
		}
		foot := o.Y + o.H
		if round6(foot) == round6(b.Y) || (b.Speed.Y < 0 && foot < b.Y && foot > yAim) {
			passengers = append(passengers, o)
		}
	}

	prevX, prevY := b.X, b.Y
	if (b.Speed.X > 0 && xAim >= aim.X) || (b.Speed.X < 0 && xAim <= aim.X) {
		b.X = aim.X
		b.Speed.X = 0
	} else {
		b.X = xAim
	}
	if (b.Speed.Y > 0 && yAim >= aim.Y) || (b.Speed.Y < 0 && yAim <= aim.Y) {
		b.Y = aim.Y
		b.Speed.Y = 0
	} else {
		b.Y = yAim
	}

	delta := common.Vector{X: b.X - prevX, Y: b.Y - prevY}
	for _, p := range passengers {
		speed, stored, bottom := p.Speed, p.StoredForces, p.Bottom
		p.Speed = common.Vector{}
		p.StoredForces = common.Vector{}
		p.Bottom = nil
		p.MoveWithGravity(delta.Mult(p.Mass), obst, ramps, 0)
		p.Speed, p.StoredForces, p.Bottom = speed, stored, bottom
	}
}

// Cycle walks the body through points in order at constant speed, looping
// back to the first point after the last.
func (b *Body) Cycle(points []common.Vector, speed float64) {
	b.cycle(points, speed, func(aim common.Vector) { b.MoveFree(aim, speed) })
}

// CycleCarrying is Cycle using MoveCarrying.
func (b *Body) CycleCarrying(points []common.Vector, speed float64, carried []*Body, obst []Obstacle, ramps []*Ramp) {
	b.cycle(points, speed, func(aim common.Vector) { b.MoveCarrying(aim, speed, carried, obst, ramps) })
}

func (b *Body) cycle(points []common.Vector, speed float64, mover func(common.Vector)) {
	if len(points) == 0 {
		return
	}
	if b.curPoint >= len(points) {
		b.curPoint = 0
	}
	mover(points[b.curPoint])
	if b.Speed.X == 0 && b.Speed.Y == 0 {
		if b.curPoint == len(points)-1 {
			b.curPoint = 0
		} else {
			b.curPoint++
		}
	}
}

// CurrentPoint is the index of the point Cycle is heading to.
func (b *Body) CurrentPoint() int { return b.curPoint }

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

package actor

import (
	"strconv"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

// Effect is a purely visual actor that plays an animation and then
// disappears. A zero lifetime lasts one pass of the animation.
type Effect struct {
	object
	lifetime int
	timer    int
}

func NewEffect(x, y float64, name string, cols, rows, interval int, indices []int, lifetime int) *Effect {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	if indices == nil {
		indices = make([]int, cols*rows)
		for i := range indices {
			indices[i] = i
		}
	}
	if interval <= 0 {
		interval = 1
	}
	if lifetime <= 0 {
		lifetime = len(indices) * interval
	}
	e := &Effect{
		object:   newObject(name, x, y, 0, 0, common.Vector{}, cols, rows),
		lifetime: lifetime,
	}
	e.Anim = newLoop(indices, interval)
	return e
}

func (e *Effect) Update(ctx *sim.Context) {
	e.Anim.Update()
	e.timer++
	if e.timer >= e.lifetime {
		e.dead = true
	}
}

// ScoreEffect floats a score value upward and fades it out.
type ScoreEffect struct {
	object
	Text  string
	timer int
}

const scoreEffectTime = 60

func NewScoreEffect(x, y float64, score int) *ScoreEffect {
	return &ScoreEffect{
		object: newObject("score", x, y, 0, 0, common.Vector{}, 1, 1),
		Text:   strconv.Itoa(score),
	}
}

func (e *ScoreEffect) Update(ctx *sim.Context) {
	e.timer++
	e.Y -= 0.5
	e.Alpha = uint8(255 * (scoreEffectTime - e.timer) / scoreEffectTime)
	if e.timer >= scoreEffectTime {
		e.dead = true
	}
}

// Explosion is a blast of a given radius. While it lasts it hurts the bomb
// and destroys enemies it covers, except the one that caused it.
type Explosion struct {
	object
	Radius float64
	Owner  any
	center common.Vector
	timer  int
}

const explosionTime = 36

func NewExplosion(x, y, radius float64, owner any) *Explosion {
	e := &Explosion{
		object: newObject("Explosion", x-radius, y-radius, 2*radius, 2*radius, common.Vector{}, 2, 2),
		Radius: radius,
		Owner:  owner,
		center: vec(x, y),
	}
	e.Anim = newLoop([]int{0, 1, 2, 3}, 5)
	return e
}

func (e *Explosion) Update(ctx *sim.Context) {
	e.Anim.Update()
	e.timer++
	if b := ctx.Bomb(); b != nil && !ctx.PlayerDead() && e.Covers(b.Bounds()) {
		b.Hit(1)
	}
	if e.timer >= explosionTime {
		e.dead = true
	}
}

// Covers reports whether any point of r lies within the blast radius.
func (e *Explosion) Covers(r common.Rect) bool {
	if e.dead {
		return false
	}
	dx := e.center.X - cp.Clamp(e.center.X, r.X, r.Right())
	dy := e.center.Y - cp.Clamp(e.center.Y, r.Y, r.Bottom())
	return dx*dx+dy*dy <= e.Radius*e.Radius
}

// Fire is a burning tile that hurts the bomb for its lifetime.
type Fire struct {
	object
	lifetime int
	timer    int
}

func NewFire(x, y float64, lifetime int) *Fire {
	if lifetime <= 0 {
		lifetime = 120
	}
	f := &Fire{
		object:   newObject("Fire", x-14, y-28, 28, 28, vec(-2, -4), 3, 1),
		lifetime: lifetime,
	}
	f.Anim = newLoop([]int{0, 1, 2, 1}, 5)
	return f
}

func (f *Fire) Update(ctx *sim.Context) {
	f.Anim.Update()
	f.timer++
	if b := ctx.Bomb(); b != nil && !ctx.PlayerDead() && b.Collide(f.Bounds()) {
		b.Hit(1)
	}
	if f.timer >= f.lifetime {
		f.dead = true
	}
}

// Ice is a freezing orb that hurts the bomb while its owner keeps it alive.
// The owner moves it with MoveTo.
type Ice struct {
	object
}

func NewIce(x, y float64) *Ice {
	i := &Ice{object: newObject("Ice", x-12, y-12, 24, 24, common.Vector{}, 2, 1)}
	i.Anim = newLoop([]int{0, 1}, 6)
	return i
}

func (i *Ice) MoveTo(x, y float64) {
	i.X = x - i.W/2
	i.Y = y - i.H/2
}

func (i *Ice) Update(ctx *sim.Context) {
	i.Anim.Update()
	if b := ctx.Bomb(); b != nil && !ctx.PlayerDead() && b.Collide(i.Bounds()) {
		b.Hit(1)
	}
}

// orbit returns the point at angle degrees around center.
func orbit(center common.Vector, radius, angle float64) common.Vector {
	return cp.ForAngle(common.DegToRad(angle)).Mult(radius).Add(center)
}

package actor

import (
	"github.com/milk9111/bombsim/sim"
)

// Robort charges at the bomb after every turn and can't be stomped while
// doing so.
type Robort struct {
	Enemy
	timer int
}

func NewRobort(ctx *sim.Context, x, y float64, args Args) (*Robort, error) {
	dontFall, err := walkerDontFall(KindRobort, args)
	if err != nil {
		return nil, err
	}
	r := &Robort{Enemy: newEnemy(KindRobort, x-12, y-31, 56, 63, vec(-14, -9), 3, 2, []int{0, 1, 2, 1}, 6, 450, 3)}
	r.attachWalker(2.2, dontFall)
	r.Walker.OnTurn = func(bool) {
		r.animate([]int{3, 4, 5, 4}, 4)
		r.timer = 0
	}
	r.bind(r)
	return r, nil
}

func (r *Robort) Update(ctx *sim.Context) {
	r.walk(ctx, 0, func() {
		r.timer++
		if r.timer == 90 {
			r.Anim.Indices = []int{0, 1, 2, 1}
			r.Anim.Interval = 7
			r.SetDirection()
		}
	})
}

func (r *Robort) HitByBomb(ctx *sim.Context) {
	if r.Walker.Turning {
		ctx.Bomb().Hit(1)
		return
	}
	r.Enemy.HitByBomb(ctx)
}

// Shep spits at whatever it bumps into before turning around.
type Shep struct {
	Enemy
	timer int
}

func NewShep(ctx *sim.Context, x, y float64, args Args) (*Shep, error) {
	dontFall, err := walkerDontFall(KindShep, args)
	if err != nil {
		return nil, err
	}
	s := &Shep{Enemy: newEnemy(KindShep, x, y, 42, 32, vec(-5, -2), 3, 2, []int{0, 1, 0, 2}, 7, 160, 1)}
	s.attachWalker(2, dontFall)
	s.Walker.OnTurn = func(bool) {
		s.timer = 0
		s.animate([]int{0, 3, 4, 5, 5}, 0)
	}
	s.bind(s)
	return s, nil
}

func (s *Shep) Update(ctx *sim.Context) {
	s.walk(ctx, 0, func() {
		s.timer++
		if s.timer == 35 {
			x, angle := s.X-4, 180.0
			if s.FacingRight {
				x, angle = s.X+s.W-4, 0
			}
			ctx.Section.Add(NewProjectile(x, s.Y+10, ProjectileSpit, angle, s))
			s.animate([]int{0, 1, 0, 2}, 0)
			s.SetDirection()
		}
	})
}

// Armep is an armored crawler. Shots bounce off it.
type Armep struct {
	Enemy
}

func NewArmep(ctx *sim.Context, x, y float64, args Args) (*Armep, error) {
	dontFall, err := walkerDontFall(KindArmep, args)
	if err != nil {
		return nil, err
	}
	a := &Armep{Enemy: newEnemy(KindArmep, x, y+12, 41, 20, vec(-21, -3), 1, 4, []int{0, 1, 0, 2}, 8, 300, 1)}
	a.attachWalker(1.3, dontFall)
	a.bind(a)
	return a, nil
}

func (a *Armep) Update(ctx *sim.Context) { a.walk(ctx, 0, nil) }

func (a *Armep) HitByBomb(ctx *sim.Context) { a.stompIfStrong(ctx) }

func (a *Armep) HitByProjectile(ctx *sim.Context) {}

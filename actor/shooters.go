package actor

import (
	"github.com/milk9111/bombsim/sim"
)

type ForsbyArgs struct {
	FacingRight bool `yaml:"right"`
}

// Forsby stands still and fires sparks on a fixed cadence. Morsby is the
// faster variant firing leaves.
type Forsby struct {
	Enemy
	intervals [3]int
	projType  int
	state     int
	timer     int
}

func NewForsby(ctx *sim.Context, x, y float64, args Args) (*Forsby, error) {
	return newForsby(KindForsby, x, y, args)
}

func NewMorsby(ctx *sim.Context, x, y float64, args Args) (*Forsby, error) {
	return newForsby(KindMorsby, x, y, args)
}

func newForsby(kind Kind, x, y float64, args Args) (*Forsby, error) {
	var a ForsbyArgs
	if err := decodeArgs(kind, args, &a); err != nil {
		return nil, err
	}
	f := &Forsby{
		Enemy:     newEnemy(kind, x-8, y-22, 48, 54, vec(-11, -6), 2, 3, []int{0, 1, 0, 2}, 15, 250, 2),
		intervals: [3]int{120, 180, 210},
		projType:  ProjectileSpark,
	}
	if kind == KindMorsby {
		f.ImgGap.Y = -10
		f.ScoreValue = 320
		f.intervals = [3]int{45, 60, 75}
		f.projType = ProjectileLeaf
	}
	f.FacingRight = a.FacingRight
	f.bind(f)
	return f, nil
}

func (f *Forsby) Update(ctx *sim.Context) {
	f.update(ctx, 0, func() {
		f.timer++
		switch {
		case f.state == 0 && f.timer > f.intervals[0]:
			f.animate([]int{3}, 0)
			f.state = 1
		case f.state == 1 && f.timer > f.intervals[1]:
			f.animate([]int{4}, 0)
			x, angle := f.X-5, 180.0
			if f.FacingRight {
				x, angle = f.X+f.W-16, 0
			}
			ctx.Section.Add(NewProjectile(x, f.Y+14, f.projType, angle, f))
			f.state = 2
		case f.state == 2 && f.timer > f.intervals[2]:
			f.animate([]int{0, 1, 0, 2}, 0)
			f.state = 0
			f.timer = 0
		}
	})
}

func (f *Forsby) View(st *sim.Stage) sim.View {
	v := f.Enemy.View(st)
	v.FlipX = !f.FacingRight
	return v
}

// Mantul spits in four directions every few seconds while walking.
type Mantul struct {
	Enemy
	timer int
}

func NewMantul(ctx *sim.Context, x, y float64, args Args) (*Mantul, error) {
	dontFall, err := walkerDontFall(KindMantul, args)
	if err != nil {
		return nil, err
	}
	m := &Mantul{Enemy: newEnemy(KindMantul, x-10, y-24, 52, 56, vec(-6, -8), 2, 2, []int{0, 1, 0, 2}, 7, 300, 2)}
	m.attachWalker(1.5, dontFall)
	m.bind(m)
	return m, nil
}

func (m *Mantul) Update(ctx *sim.Context) {
	m.walk(ctx, 0, nil)
	if m.dying || m.Health.Invulnerable {
		return
	}
	m.timer++
	if m.timer == 180 {
		s := ctx.Section
		s.Add(NewProjectile(m.X+48, m.Y+30, ProjectileSpit, 0, m))
		s.Add(NewProjectile(m.X-4, m.Y+30, ProjectileSpit, 180, m))
		s.Add(NewProjectile(m.X+10, m.Y, ProjectileSpit, 240, m))
		s.Add(NewProjectile(m.X+34, m.Y, ProjectileSpit, 300, m))
		m.timer = 0
	}
}

// Necrul throws rocks while turning around, looking back over its shoulder
// halfway through.
type Necrul struct {
	Enemy
	timer int
}

func NewNecrul(ctx *sim.Context, x, y float64, args Args) (*Necrul, error) {
	n := &Necrul{Enemy: newEnemy(KindNecrul, x-20, y-32, 72, 64, vec(-34, -10), 2, 3, []int{1, 0, 1, 2}, 7, 330, 2)}
	n.attachWalker(2, true)
	n.Walker.OnTurn = func(bool) {
		n.timer = 0
		n.animate([]int{1, 3, 4, 3}, 0)
	}
	n.bind(n)
	return n, nil
}

func (n *Necrul) Update(ctx *sim.Context) {
	n.walk(ctx, 0, func() {
		n.timer++
		if n.timer%28 != 0 {
			return
		}
		x, angle := n.X-30, 180.0
		if n.FacingRight {
			x, angle = n.X+n.W+30, 0
		}
		ctx.Section.Add(NewProjectile(x, n.Y+34, ProjectileRock, angle, n))
		switch n.timer {
		case 112:
			n.animate([]int{1, 0, 1, 2}, 0)
			n.SetDirection()
		case 56:
			n.FacingRight = !n.FacingRight
		}
	})
}

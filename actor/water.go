package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

// Jellep jumps out of the bottom of the section, usually from water, up to
// a fixed height and falls back.
type Jellep struct {
	Enemy
	maxY      float64
	state     int
	timer     int
	inWater   bool
	lastWater sim.Actor
}

func NewJellep(ctx *sim.Context, x, y float64, args Args) (*Jellep, error) {
	size := ctx.Section.Size()
	j := &Jellep{
		Enemy:   newEnemy(KindJellep, x, size.Y-1, 32, 110, vec(-5, 0), 3, 1, []int{0, 1, 0, 2}, 5, 500, 1),
		maxY:    y,
		inWater: !present(args),
	}
	j.active.H = j.active.Bottom() - y
	j.active.Y = y
	j.bind(j)
	return j, nil
}

func (j *Jellep) Update(ctx *sim.Context) {
	j.update(ctx, 0, func() {
		if j.state == 0 {
			j.timer++
			if j.timer == 60 {
				j.StoredForces.Y = -14
				j.state = 1
				j.timer = 0
			}
			return
		}

		var force float64
		if j.Y-j.maxY > 100 {
			force = -common.Gravity
		}
		j.Move(vec(0, force), nil, nil)
		bottom := ctx.Section.Size().Y
		if j.state == 1 && j.Speed.Y >= 0 {
			j.state = 2
		} else if j.state == 2 && j.Y >= bottom {
			j.Speed.Y = 0
			j.Y = bottom - 1
			j.state = 0
		}
		j.splash(ctx)
	})
}

func (j *Jellep) splash(ctx *sim.Context) {
	w := ctx.Section.ElementAt(KindWater.String(), j.X, j.Y)
	in := w != nil
	if in != j.inWater {
		src := w
		if src == nil {
			src = j.lastWater
		}
		if src != nil {
			ctx.Section.AddEffect(NewEffect(j.X-16, src.Bounds().Y-19, "fx_water", 1, 4, 8, nil, 0))
			ctx.PlaySound("splash")
		}
	}
	j.inWater = in
	if w != nil {
		j.lastWater = w
	}
}

func (j *Jellep) HitByBomb(ctx *sim.Context) { j.stompIfStrong(ctx) }

func (j *Jellep) View(st *sim.Stage) sim.View {
	v := j.Enemy.View(st)
	v.FlipX = false
	v.FlipY = j.state == 2
	return v
}

// Snep hides in a wall and bites sideways at a bomb passing at its level.
type Snep struct {
	Enemy
	attacking bool
}

func NewSnep(ctx *sim.Context, x, y float64, args Args) (*Snep, error) {
	s := &Snep{Enemy: newEnemy(KindSnep, x, y-24, 32, 56, vec(0, 4), 5, 2, []int{0, 1, 0, 2}, 12, 200, 1)}
	s.FacingRight = !present(args)
	s.bind(s)
	return s, nil
}

func (s *Snep) Update(ctx *sim.Context) {
	s.update(ctx, 0, func() {
		b := ctx.Bomb()
		bb := b.Bounds()
		inReach := s.FacingRight && bb.X > s.X && bb.X < s.X+s.W+22 ||
			!s.FacingRight && bb.X < s.X && bb.X+bb.W > s.X-22
		if bb.Bottom() > s.Y && bb.Bottom() <= s.Y+s.H && inReach {
			if s.attacking {
				if s.Anim.Index == 8 {
					b.Hit(1)
				}
			} else {
				s.attacking = true
				s.animate([]int{6, 7, 8, 7, 6, 0}, 4)
			}
		}
		if s.attacking && s.Anim.Index == 0 {
			s.attacking = false
			s.animate([]int{0, 1, 0, 2}, 12)
		}
	})
}

func (s *Snep) HitByBomb(ctx *sim.Context) {
	ctx.Bomb().Hit(1)
	s.attacking = true
	s.animate([]int{3, 4, 5, 4, 3, 0}, 4)
}

func (s *Snep) View(st *sim.Stage) sim.View {
	v := s.Enemy.View(st)
	v.FlipX = !s.FacingRight
	return v
}

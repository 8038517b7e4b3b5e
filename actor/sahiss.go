package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/sim"
)

// Sahiss patrols its arena and, after a random wait, lunges with its tail
// toward the spot where it last turned. Only falling stalactites and
// explosions hurt it.
type Sahiss struct {
	Enemy
	attacking bool
	timer     int
	time      int
	aim       *common.Vector
}

func NewSahiss(ctx *sim.Context, x, y float64, args Args) (*Sahiss, error) {
	dontFall, err := walkerDontFall(KindSahiss, args)
	if err != nil {
		return nil, err
	}
	s := &Sahiss{Enemy: newEnemy(KindSahiss, x-54, y-148, 148, 180, vec(-139, -3), 2, 3, []int{0, 1, 0, 2}, 7, 2000, 4)}
	s.attachWalker(3, dontFall)
	s.time = s.nextWait(ctx)
	s.Health.OnIFrameEnd = func(*component.Health) { s.animate([]int{0, 1, 0, 2}, 0) }
	s.attachBoss("")
	s.bind(s)
	return s, nil
}

func (s *Sahiss) nextWait(ctx *sim.Context) int { return 180 + ctx.Intn(240) }

func (s *Sahiss) Update(ctx *sim.Context) {
	s.Boss.Update(ctx, &s.Enemy, func() { s.lunge(ctx) })
	if s.Boss.Phase != BossActing || s.attacking || s.dying {
		return
	}

	prev := s.FacingRight
	if s.timer < s.time {
		s.walk(ctx, 0, nil)
	}
	switch {
	case s.dead:
		ctx.Section.Finish()
	case s.dying:
		ctx.Section.SetFixedCamera(s.centerX(), s.centerY())
		s.Boss.Timer = 0
	case s.aim != nil:
		s.timer++
		if s.timer == s.time {
			if s.FacingRight {
				s.timer = s.time - 1
			} else {
				s.Anim.SetFrame(1)
			}
		} else if s.timer == s.time+60 {
			s.reshape(1)
			s.attacking = true
			s.Anim.SetFrame(4)
			s.timer = 0
		}
	case s.FacingRight && !prev:
		aim := vec(s.X, s.Y)
		s.aim = &aim
	}
}

func (s *Sahiss) lunge(ctx *sim.Context) {
	if obj := ctx.Section.ActiveObject(); obj != nil && !isDying(obj) && obj.Bounds().Intersects(s.Bounds()) {
		s.Hit(ctx, 1)
		return
	}
	if !s.attacking {
		return
	}

	s.MoveFree(*s.aim, 6)
	b := ctx.Bomb()
	switch {
	case b.Over(s.Bounds(), 0):
		b.Bounce(false)
	case b.Collide(s.Bounds()):
		b.Hit(1)
	case s.Anim.Index == 5:
		if b.Bounds().Intersects(common.NewRect(s.X+170, s.Y, 1, 120)) {
			b.Hit(1)
		}
	}

	if s.Speed.X == 0 {
		if s.Anim.Index == 5 {
			s.reshape(3)
			s.Anim.SetFrame(4)
		}
		s.timer++
		if s.timer == 5 {
			s.reshape(4)
			s.Anim.SetFrame(0)
		} else if s.timer == 60 {
			s.Anim.SetFrame(0)
			s.StoredForces.X = -3
			s.attacking = false
			s.timer = 0
			s.time = s.nextWait(ctx)
		}
	} else if s.Anim.Index == 4 {
		s.timer++
		if s.timer == 5 {
			s.reshape(2)
			s.Anim.SetFrame(5)
			s.timer = 0
		}
	}
}

// reshape fits the body to a lunge pose: 1 crouching, 2 stretched, 3 back
// from stretched and 4 standing.
func (s *Sahiss) reshape(step int) {
	var dx, dy float64
	switch step {
	case 1:
		dx, dy = -55, 16
		s.W, s.H, s.ImgGap = 137, 164, vec(-84, -19)
	case 2:
		dx, dy = -74, 60
		s.W, s.H, s.ImgGap = 170, 70, vec(-10, -64)
	case 3:
		dy = -60
		s.W, s.H, s.ImgGap = 137, 164, vec(-84, -19)
	default:
		dy = -16
		s.W, s.H, s.ImgGap = 148, 180, vec(-139, -3)
	}
	s.X += dx
	s.Y += dy
	if s.aim != nil {
		s.aim.Y += dy
	}
}

func (s *Sahiss) HitByBomb(ctx *sim.Context) { ctx.Bomb().Bounce(false) }

func (s *Sahiss) HitByProjectile(ctx *sim.Context) {}

func (s *Sahiss) Hit(ctx *sim.Context, amount int) {
	if s.Health.Invulnerable || s.dying || s.dead {
		return
	}
	s.Enemy.Hit(ctx, amount)
	ctx.PlaySound("stomp")
	if s.Health.HP > 0 {
		switch s.Anim.Index {
		case 5:
			s.reshape(3)
			s.reshape(4)
		case 4:
			s.reshape(4)
		}
		s.attacking = false
		s.timer = 0
		s.time = s.nextWait(ctx)
	}
	if s.Health.HP == 2 {
		ctx.Section.ActivateObject(KindStalactiteGenerator.String(), 0)
	}
	s.animate([]int{3}, 0)
}

func isDying(a sim.Actor) bool {
	d, ok := a.(interface{ Dying() bool })
	return ok && d.Dying()
}

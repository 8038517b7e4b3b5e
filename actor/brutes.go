package actor

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/sim"
)

// Stilty walks on short legs. Once hurt it rises onto long stilts and walks
// faster.
type Stilty struct {
	Enemy
	rising bool
}

func NewStilty(ctx *sim.Context, x, y float64, args Args) (*Stilty, error) {
	dontFall, err := walkerDontFall(KindStilty, args)
	if err != nil {
		return nil, err
	}
	s := &Stilty{Enemy: newEnemy(KindStilty, x+6, y-26, 20, 58, vec(-6, -42), 5, 2, []int{0, 1, 0, 2}, 7, 300, 2)}
	s.attachWalker(2, dontFall)
	s.Health.OnIFrameEnd = func(*component.Health) {
		s.rising = true
		s.animate([]int{0, 4, 0, 4, 5, 4, 5, 6}, 0)
	}
	s.bind(s)
	return s, nil
}

func (s *Stilty) Update(ctx *sim.Context) {
	if !s.rising {
		s.walk(ctx, 20, nil)
		return
	}
	s.Anim.Update()
	if s.Anim.Index != 6 {
		return
	}
	s.Y -= 40
	s.H += 40
	s.ImgGap.Y = -2
	s.Walker.SpeedM = 3
	if s.Speed.X != 0 {
		s.Speed.X = 3 * common.Sign(s.Speed.X)
	}
	s.animate([]int{6, 7, 6, 8}, 0)
	s.rising = false
}

func (s *Stilty) Hit(ctx *sim.Context, amount int) {
	if s.dying || s.dead {
		return
	}
	s.Enemy.Hit(ctx, amount)
	if !s.dying {
		s.animate([]int{3}, 0)
	}
}

// Lambul headbutts a bomb standing close in front of it. Only a powered-up
// bomb can hurt it from above.
type Lambul struct {
	Enemy
	attacking bool
	timer     int
}

func NewLambul(ctx *sim.Context, x, y float64, args Args) (*Lambul, error) {
	dontFall, err := walkerDontFall(KindLambul, args)
	if err != nil {
		return nil, err
	}
	l := &Lambul{Enemy: newEnemy(KindLambul, x-4, y-38, 30, 70, vec(-50, -10), 4, 2, []int{0, 1, 0, 2}, 7, 300, 1)}
	l.attachWalker(2, dontFall)
	l.bind(l)
	return l, nil
}

func (l *Lambul) Update(ctx *sim.Context) {
	b := ctx.Bomb()
	switch {
	case l.dying:
		l.walk(ctx, 0, nil)
	case l.attacking:
		l.timer++
		switch {
		case l.timer == 80:
			l.attacking = false
			l.animate([]int{0, 1, 0, 2}, 7)
		case l.timer >= 60:
			l.Anim.Play([]int{6, 5, 4, 3}, 5)
			l.Anim.Update()
		case l.timer >= 20:
			x := l.X - 48
			if l.FacingRight {
				x = l.X
			}
			if b.Bounds().Intersects(common.NewRect(x, l.Y+40, 88, 30)) {
				b.Hit(1)
			}
		default:
			l.Anim.Play([]int{3, 4, 5, 6}, 5)
			l.Anim.Update()
		}
	case !ctx.PlayerDead() && l.inRange(b.Bounds()):
		if l.FacingRight {
			l.X += 10
		} else {
			l.X -= 10
		}
		l.attacking = true
		l.timer = 0
		l.Anim.SetFrame(3)
	default:
		l.walk(ctx, 0, nil)
	}
}

func (l *Lambul) inRange(b common.Rect) bool {
	foot := b.Bottom()
	if foot < l.Y+l.H-10 || foot >= l.Y+l.H+10 {
		return false
	}
	if math.Abs(b.X+b.W/2-l.X-l.W/2) > 80 {
		return false
	}
	return b.X < l.X && !l.FacingRight || b.X > l.X && l.FacingRight
}

func (l *Lambul) HitByBomb(ctx *sim.Context) {
	if ctx.Bomb().Power() > 1 {
		l.Hit(ctx, 1)
	}
}

// Warclops is a giant that shuffles toward the bomb. Explosions hurt it
// twice as much.
type Warclops struct {
	Enemy
}

func NewWarclops(ctx *sim.Context, x, y float64, args Args) (*Warclops, error) {
	w := &Warclops{Enemy: newEnemy(KindWarclops, x-19, y-84, 70, 116, vec(-10, -4), 2, 2, []int{0, 1, 0, 2}, 9, 750, 3)}
	w.bind(w)
	return w, nil
}

func (w *Warclops) Update(ctx *sim.Context) {
	w.update(ctx, 0, func() {
		var forces common.Vector
		if !w.Health.Invulnerable {
			b := ctx.Bomb().Bounds()
			d := cp.Clamp(b.X+b.W/2-w.X-w.W/2, -150, 150)
			forces.X = d * 0.01666667
			if d > 0 && !w.FacingRight {
				w.FacingRight = true
			} else if d < 0 && w.FacingRight {
				w.FacingRight = false
			}
			w.Speed.X = 0
		}
		w.Move(forces, w.obstacles(ctx), ctx.Section.Ramps())
	})
}

func (w *Warclops) HitByBomb(ctx *sim.Context) {
	b := ctx.Bomb()
	strong := b.Power() > 1
	b.Bounce(strong)
	if strong {
		w.Hit(ctx, 1)
	}
}

func (w *Warclops) HitByExplosion(ctx *sim.Context) {
	if w.dying || w.dead {
		return
	}
	w.Health.HP--
	w.Hit(ctx, 1)
}

const dynamikeBlast = 90

// Dynamike blows up whenever it is hit.
type Dynamike struct {
	Enemy
}

func NewDynamike(ctx *sim.Context, x, y float64, args Args) (*Dynamike, error) {
	dontFall, err := walkerDontFall(KindDynamike, args)
	if err != nil {
		return nil, err
	}
	d := &Dynamike{Enemy: newEnemy(KindDynamike, x+2, y-28, 28, 60, vec(-6, -4), 2, 2, []int{0, 1, 2, 1}, 7, 250, 1)}
	d.attachWalker(2.5, dontFall)
	d.bind(d)
	return d, nil
}

func (d *Dynamike) Update(ctx *sim.Context) { d.walk(ctx, 0, nil) }

func (d *Dynamike) explode(ctx *sim.Context) {
	ctx.Section.AddEffect(NewExplosion(d.centerX(), d.centerY(), dynamikeBlast, d))
	ctx.PlaySound("explode")
}

func (d *Dynamike) HitByBomb(ctx *sim.Context) {
	d.explode(ctx)
	d.Enemy.HitByBomb(ctx)
}

func (d *Dynamike) HitByProjectile(ctx *sim.Context) {
	d.explode(ctx)
	d.Enemy.HitByProjectile(ctx)
}

func (d *Dynamike) HitByExplosion(ctx *sim.Context) {
	d.explode(ctx)
	d.Enemy.HitByExplosion(ctx)
}

type HoomanArgs struct {
	FacingRight bool `yaml:"right"`
}

// Hooman chases the bomb and jumps over walls in its way.
type Hooman struct {
	Enemy
}

func NewHooman(ctx *sim.Context, x, y float64, args Args) (*Hooman, error) {
	var a HoomanArgs
	if err := decodeArgs(KindHooman, args, &a); err != nil {
		return nil, err
	}
	h := &Hooman{Enemy: newEnemy(KindHooman, x+2, y-28, 28, 60, vec(-6, -4), 2, 2, []int{0, 1, 2, 1}, 7, 270, 2)}
	h.FacingRight = a.FacingRight
	h.MaxSpeed.X = 4
	h.bind(h)
	return h, nil
}

func (h *Hooman) Update(ctx *sim.Context) {
	h.update(ctx, 0, func() {
		var forces common.Vector
		if !h.Health.Invulnerable {
			d := cp.Clamp(ctx.Bomb().Body().X-h.X, -150, 150)
			if h.Bottom != nil && (d < 0 && h.Left != nil || d > 0 && h.Right != nil) {
				forces = vec(d*0.01666667, -12.5)
				h.Speed.X = 0
			} else {
				forces.X = d * 0.001
			}
			if d > 0 && !h.FacingRight {
				h.FacingRight = true
			} else if d < 0 && h.FacingRight {
				h.FacingRight = false
			}
		}
		h.Move(forces, h.obstacles(ctx), ctx.Section.Ramps())
	})
}

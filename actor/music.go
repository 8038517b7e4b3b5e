package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/sim"
)

// Xylophob gets faster every time it is hit.
type Xylophob struct {
	Enemy
}

func NewXylophob(ctx *sim.Context, x, y float64, args Args) (*Xylophob, error) {
	dontFall, err := walkerDontFall(KindXylophob, args)
	if err != nil {
		return nil, err
	}
	xy := &Xylophob{Enemy: newEnemy(KindXylophob, x-8, y-22, 48, 54, vec(-8, -10), 2, 2, []int{0, 1, 2, 1}, 7, 300, 3)}
	xy.attachWalker(2, dontFall)
	xy.Health.OnIFrameStart = func(*component.Health) { xy.animate([]int{3}, 0) }
	xy.Health.OnIFrameEnd = func(*component.Health) {
		xy.animate([]int{0, 1, 2, 1}, 0)
		xy.Walker.SpeedM++
		xy.Speed.X += common.Sign(xy.Speed.X)
	}
	xy.bind(xy)
	return xy, nil
}

func (xy *Xylophob) Update(ctx *sim.Context) { xy.walk(ctx, 0, nil) }

func (xy *Xylophob) Hit(ctx *sim.Context, amount int) {
	xy.Enemy.Hit(ctx, amount)
	if xy.Health.Invulnerable {
		ctx.PlaySound("xylo")
	}
}

// Bardin plays a note at every wall it turns at. Notes only hurt the bomb.
type Bardin struct {
	Enemy
	timer int
}

func NewBardin(ctx *sim.Context, x, y float64, args Args) (*Bardin, error) {
	dontFall, err := walkerDontFall(KindBardin, args)
	if err != nil {
		return nil, err
	}
	b := &Bardin{Enemy: newEnemy(KindBardin, x+2, y-28, 28, 60, vec(-12, -4), 4, 2, []int{0, 1, 2, 1}, 7, 200, 2)}
	b.attachWalker(2, dontFall)
	b.Walker.OnTurn = func(bool) {
		b.timer = 0
		b.animate([]int{3, 4, 5, 6, 5, 4, 3}, 5)
	}
	b.bind(b)
	return b, nil
}

func (b *Bardin) Update(ctx *sim.Context) {
	b.walk(ctx, 0, func() {
		b.timer++
		if b.timer == 35 {
			x, angle := b.X-4, 180.0
			if b.FacingRight {
				x, angle = b.X+b.W-4, 0
			}
			ctx.Section.Add(NewProjectile(x, b.Y+10, ProjectileNote, angle, b))
			b.animate([]int{0, 1, 2, 1}, 7)
			b.SetDirection()
		}
	})
}

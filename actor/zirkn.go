package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/sim"
)

type zirknState int

const (
	zirknWalking zirknState = iota
	zirknAttacking
	zirknResting
)

// Zirkn walks its cave and stops to set waves of fire along the floor. While
// resting afterward its tail is exposed, and only a bomb exploding on the
// tail hurts it.
type Zirkn struct {
	Enemy
	state      zirknState
	timer      int
	spawnPoint common.Vector
	tailArea   common.Rect
}

func NewZirkn(ctx *sim.Context, x, y float64, args Args) (*Zirkn, error) {
	dontFall, err := walkerDontFall(KindZirkn, args)
	if err != nil {
		return nil, err
	}
	z := &Zirkn{
		Enemy:      newEnemy(KindZirkn, x-28, y-84, 88, 116, vec(-6, -12), 1, 7, []int{0, 1, 0, 2}, 7, 3000, 5),
		spawnPoint: vec(x+common.TileSize/2, y+common.TileSize),
	}
	z.attachWalker(4, dontFall)
	z.Health.OnIFrameEnd = func(*component.Health) {
		z.animate([]int{0, 1, 0, 2}, 0)
		z.state = zirknWalking
	}
	z.attachBoss("")
	z.bind(z)
	return z, nil
}

func (z *Zirkn) Update(ctx *sim.Context) {
	z.Boss.Update(ctx, &z.Enemy, func() { z.fight(ctx) })
}

func (z *Zirkn) fight(ctx *sim.Context) {
	b := ctx.Bomb()
	switch {
	case z.Health.Invulnerable:
		z.walk(ctx, 0, nil)
	case z.state == zirknAttacking:
		z.touch(ctx)
		z.timer++
		if z.timer == z.fireWaves(ctx) {
			z.Anim.SetFrame(4)
			x, tx := z.X+76, z.X+66
			if z.FacingRight {
				x, tx = z.X+z.W-136, z.X+z.W-146
			}
			ctx.Section.AddEffect(NewEffect(x, z.Y+12, "fx_arrow", 3, 1, 8, []int{0, 1, 2, 1}, 150))
			z.tailArea = common.NewRect(tx, z.Y+76, 80, 40)
			z.timer = 0
			z.state = zirknResting
		}
	case z.state == zirknResting:
		z.touch(ctx)
		if b.Explode(z.tailArea) {
			z.timer = 0
			z.animate([]int{6}, 0)
			z.Hit(ctx, 1)
			return
		}
		z.Anim.Play([]int{4, 5}, 7)
		z.Anim.Update()
		z.timer++
		rest := 150
		if z.Health.HP <= 1 {
			rest = 180
		}
		if z.timer == rest {
			z.animate([]int{0, 1, 0, 2}, 7)
			z.timer = 0
			z.state = zirknWalking
		}
	default:
		z.walk(ctx, 0, nil)
		z.timer++
		if z.timer == 180 {
			z.Anim.SetFrame(3)
			z.timer = 0
			z.state = zirknAttacking
		}
	}
}

func (z *Zirkn) touch(ctx *sim.Context) {
	b := ctx.Bomb()
	if b.Over(z.Bounds(), 0) {
		b.Bounce(false)
	} else if b.Collide(z.Bounds()) {
		b.Hit(1)
	}
}

// fireWaves sets this frame's fires for the current health and returns the
// frame the attack ends on.
func (z *Zirkn) fireWaves(ctx *sim.Context) int {
	t := z.timer
	switch {
	case z.Health.HP <= 1:
		switch {
		case t <= 180 && t%15 == 0:
			z.addFires(ctx, (t/15-1)%12+1, 80)
		case t > 216 && t <= 360 && t%12 == 0:
			z.addFires(ctx, ((t-216)/12-1)%12+1, 60)
		case t > 432 && t%9 == 0:
			z.addFires(ctx, ((t-432)/9-1)%12+1, 45)
		}
		return 648
	case z.Health.HP <= 3:
		if t%15 == 0 {
			z.addFires(ctx, (t/15-1)%12+1, 80)
		}
		return 360
	default:
		if t%20 == 0 {
			z.addFires(ctx, t/20, 100)
		}
		return 240
	}
}

func (z *Zirkn) addFires(ctx *sim.Context, i, lifetime int) {
	d := float64(i * common.TileSize)
	ctx.Section.AddEffect(NewFire(z.spawnPoint.X-d, z.spawnPoint.Y, lifetime))
	ctx.Section.AddEffect(NewFire(z.spawnPoint.X+d, z.spawnPoint.Y, lifetime))
}

func (z *Zirkn) HitByBomb(ctx *sim.Context) { ctx.Bomb().Bounce(false) }

func (z *Zirkn) HitByProjectile(ctx *sim.Context) {}

func (z *Zirkn) HitByExplosion(ctx *sim.Context) {}

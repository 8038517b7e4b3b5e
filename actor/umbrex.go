package actor

import (
	"math"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

const umbrexRange = 10

var umbrexIdle = []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 1}

// Umbrex hops along and, when the bomb is below its shadow, slides over and
// slams down on it.
type Umbrex struct {
	Enemy
	attacking bool
	timer     int
	hopTimer  int
}

func NewUmbrex(ctx *sim.Context, x, y float64, args Args) (*Umbrex, error) {
	dontFall, err := walkerDontFall(KindUmbrex, args)
	if err != nil {
		return nil, err
	}
	u := &Umbrex{Enemy: newEnemy(KindUmbrex, x, y-118, 64, 150, vec(-48, -10), 4, 2, umbrexIdle, 7, 250, 1)}
	u.attachWalker(3, dontFall)
	u.bind(u)
	return u, nil
}

func (u *Umbrex) Update(ctx *sim.Context) {
	b := ctx.Bomb()
	switch {
	case u.dying:
		u.walk(ctx, 0, nil)
	case u.attacking:
		u.timer++
		switch {
		case u.timer == 80:
			u.animate(umbrexIdle, 7)
			u.attacking = false
		case u.timer < 20:
			u.Anim.Play([]int{3, 4, 5, 6}, 5)
			u.Anim.Update()
		case u.timer >= 60:
			u.Anim.Play([]int{6, 5, 4, 3}, 5)
			u.Anim.Update()
		}
		if u.timer >= 10 && u.timer < 60 && b.Collide(u.Bounds()) {
			b.Hit(1)
		}
		u.checkHit(ctx)
	default:
		area := common.NewRect(u.X+u.ImgGap.X, u.Y+u.ImgGap.Y, 160, 160)
		bb := b.Bounds()
		if !bb.Intersects(area) {
			u.walk(ctx, 0, nil)
			break
		}
		if bb.Y > area.Y && bb.X >= u.active.X-u.ImgGap.X && bb.Right() <= u.active.Right()+u.ImgGap.X {
			u.X += 0.1 * (bb.X - u.X)
			if math.Abs(bb.X-u.X) <= umbrexRange {
				u.Anim.SetFrame(3)
				u.attacking = true
				u.timer = 0
			}
		} else if b.Over(u.Bounds(), 0) {
			u.HitByBomb(ctx)
		}
		u.checkHit(ctx)
	}

	if u.attacking || u.dying {
		u.hopTimer = 0
	} else {
		u.hopTimer = (u.hopTimer + 1) % 16
	}
}

func (u *Umbrex) checkHit(ctx *sim.Context) {
	if u.dying || u.Health.Invulnerable {
		return
	}
	bounds := u.Bounds()
	if ctx.Bomb().Explode(bounds) || ctx.Section.Explode(bounds) {
		u.HitByExplosion(ctx)
	} else if damaging(ctx.Section.ProjectileHit(bounds, u)) {
		u.HitByProjectile(ctx)
	}
}

// View lifts the sprite along the hop arc.
func (u *Umbrex) View(st *sim.Stage) sim.View {
	v := u.Enemy.View(st)
	d := float64(u.hopTimer - 8)
	v.Rect.Y -= 16 - 0.25*d*d
	return v
}

package actor

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

const electongReach = 91

// Electong shoots its tongue straight up when the bomb comes near. It can
// not be stomped.
type Electong struct {
	Enemy
	timer      int
	tongueY    float64
	willAttack bool
	attacking  bool
}

func NewElectong(ctx *sim.Context, x, y float64, args Args) (*Electong, error) {
	e := &Electong{Enemy: newEnemy(KindElectong, x-12, y-11, 56, 43, vec(-4, -electongReach), 4, 2, []int{0, 1, 2, 1}, 7, 250, 1)}
	e.tongueY = e.Y
	e.bind(e)
	return e, nil
}

func (e *Electong) HitByBomb(ctx *sim.Context) { ctx.Bomb().Hit(1) }

func (e *Electong) Update(ctx *sim.Context) {
	e.update(ctx, 0, func() {
		b := ctx.Bomb()
		switch {
		case e.willAttack:
			e.tongueY -= electongReach / 14.0
			if e.Anim.Index == 5 {
				e.Anim.Indices = []int{5, 6, 7, 6}
				e.attacking = true
				e.willAttack = false
				e.tongueY = e.Y - electongReach
			}
		case e.attacking:
			e.timer++
			if e.timer == 60 {
				e.animate([]int{4, 3, 0}, 0)
				e.attacking = false
			}
		case e.timer > 0:
			e.tongueY += electongReach / 14.0
			if e.Anim.Index == 0 {
				e.Anim.Indices = []int{0, 1, 2, 1}
				e.timer = -60
				e.tongueY = e.Y
			}
		default:
			if e.timer < 0 {
				e.timer++
			}
			bb := b.Bounds()
			if e.timer == 0 && bb.X+bb.W > e.X-40 && bb.X < e.X+e.W+40 {
				e.animate([]int{3, 4, 5}, 0)
				e.willAttack = true
			}
		}
		if b.Bounds().Intersects(e.Tongue()) {
			b.Hit(1)
		}
	})
}

// Tongue is the area the tongue covers this frame.
func (e *Electong) Tongue() common.Rect {
	return common.NewRect(e.X+22, e.tongueY, 12, e.Y+e.H-e.tongueY)
}

// Chrazer chases the bomb in long hops.
type Chrazer struct {
	Enemy
}

func NewChrazer(ctx *sim.Context, x, y float64, args Args) (*Chrazer, error) {
	c := &Chrazer{Enemy: newEnemy(KindChrazer, x+1, y-11, 30, 43, vec(-21, -20), 2, 2, []int{0, 1, 0, 2}, 7, 500, 2)}
	c.bind(c)
	return c, nil
}

func (c *Chrazer) Update(ctx *sim.Context) {
	c.update(ctx, 0, func() {
		var forces common.Vector
		if !c.Health.Invulnerable {
			d := cp.Clamp(ctx.Bomb().Body().X-c.X, -150, 150)
			if c.Bottom != nil {
				forces.X = d * 0.01666667
				forces.Y = -12.5
				if d > 0 && !c.FacingRight {
					c.FacingRight = true
				} else if d < 0 && c.FacingRight {
					c.FacingRight = false
				}
				c.Speed.X = 0
			} else {
				forces.X = d * 0.001
			}
		}
		c.Move(forces, c.obstacles(ctx), ctx.Section.Ramps())
	})
}

package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

// Pikey is a spiked ball bobbing in place. It can only be blown up.
type Pikey struct {
	Enemy
	bob   int
	timer int
}

func NewPikey(ctx *sim.Context, x, y float64, args Args) (*Pikey, error) {
	p := &Pikey{Enemy: newEnemy(KindPikey, x+2, y+1, 28, 28, vec(-5, -5), 3, 2,
		[]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 1, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 2, 4}, 10, 230, 1)}
	p.bind(p)
	return p, nil
}

func (p *Pikey) Update(ctx *sim.Context) {
	p.update(ctx, 0, nil)
	p.timer++
	if p.timer == 15 {
		if p.bob < 2 {
			p.Y++
		} else {
			p.Y--
		}
		p.bob = (p.bob + 1) % 4
		p.timer = 0
	}
}

func (p *Pikey) HitByBomb(ctx *sim.Context) { ctx.Bomb().Hit(1) }

func (p *Pikey) HitByProjectile(ctx *sim.Context) {}

type GarsArgs struct {
	FacingRight bool `yaml:"right"`
}

// Gars is a tall walker that sweeps its sword low while turning. The sweep
// can be stomped from above.
type Gars struct {
	Enemy
	hitArea common.Rect
	timer   int
}

func NewGars(ctx *sim.Context, x, y float64, args Args) (*Gars, error) {
	var a GarsArgs
	if err := decodeArgs(KindGars, args, &a); err != nil {
		return nil, err
	}
	g := &Gars{Enemy: newEnemy(KindGars, x, y-64, 32, 96, vec(-54, -4), 7, 1, []int{0, 1, 2, 1}, 7, 250, 2)}
	g.attachWalker(3, true)
	if a.FacingRight {
		g.FacingRight = true
		g.Walker.Forces.X = g.Walker.SpeedM
	}
	g.Walker.OnTurn = func(bool) {
		x := g.X - 54
		if g.FacingRight {
			x = g.X - 6
		}
		g.hitArea = common.NewRect(x, g.Y+56, 92, 1)
		g.timer = 0
		g.animate([]int{3, 4, 5, 5, 5, 5, 5, 5, 5, 5, 4, 3}, 5)
	}
	g.bind(g)
	return g, nil
}

func (g *Gars) Update(ctx *sim.Context) {
	b := ctx.Bomb()
	if g.Walker.Turning && !g.dying {
		if b.Over(g.hitArea, 0) {
			if g.Health.Invulnerable {
				b.Bounce(false)
			} else {
				b.Bounce(true)
				g.Hit(ctx, b.Power())
			}
		} else if b.Bounds().Intersects(g.hitArea) {
			b.Hit(1)
		}
	}
	g.walk(ctx, 0, func() {
		g.timer++
		if g.timer == 60 {
			g.animate([]int{0, 1, 2, 1}, 7)
			g.SetDirection()
		}
	})
}

func (g *Gars) HitByBomb(ctx *sim.Context) {
	if !g.Walker.Turning {
		ctx.Bomb().Bounce(false)
	}
}

// Bounds hides the body while turning so only the sword sweep can be hit.
func (g *Gars) Bounds() common.Rect {
	if g.Walker.Turning {
		return common.NewRect(-1000, -1000, 0, 0)
	}
	return g.Enemy.Bounds()
}

const (
	zingzMaxDistance = 10 * common.TileSize
	zingzSpeed       = 2.5
	zingzAimWeight   = 0.2
)

// Zingz chases the bomb when it comes within range, smoothing its aim.
type Zingz struct {
	Enemy
	aim     *common.Vector
	removed bool
}

func NewZingz(ctx *sim.Context, x, y float64, args Args) (*Zingz, error) {
	z := &Zingz{Enemy: newEnemy(KindZingz, x-9, y+1, 50, 30, vec(-4, -22), 7, 1, []int{0, 1, 2, 1, 3, 4, 5, 4}, 5, 80, 1)}
	z.bind(z)
	ctx.Section.AddInteractingElement(z)
	return z, nil
}

func (z *Zingz) Update(ctx *sim.Context) {
	z.update(ctx, 0, func() {
		b := ctx.Bomb().Bounds()
		target := vec(b.X+b.W/2-z.W/2, b.Y+b.H/2-z.H/2)
		if target.Distance(z.Position()) > zingzMaxDistance {
			return
		}
		if z.aim == nil {
			z.aim = &target
		} else {
			next := target.Mult(zingzAimWeight).Add(z.aim.Mult(1 - zingzAimWeight))
			z.aim = &next
		}
		z.MoveFree(*z.aim, zingzSpeed)
	})
	if z.dying && !z.removed {
		ctx.Section.RemoveInteractingElement(z)
		z.removed = true
	}
}

const bombarkBlast = 90

// Bombark barks a warning when the bomb comes within blast range and blows
// up half a second later.
type Bombark struct {
	Enemy
	alert     bool
	exploding bool
	timer     int
}

func NewBombark(ctx *sim.Context, x, y float64, args Args) (*Bombark, error) {
	dontFall, err := walkerDontFall(KindBombark, args)
	if err != nil {
		return nil, err
	}
	b := &Bombark{Enemy: newEnemy(KindBombark, x+6, y+6, 20, 26, vec(-8, -6), 3, 2, []int{1, 2, 1, 0}, 7, 360, 2)}
	b.attachWalker(3, dontFall)
	b.bind(b)
	return b, nil
}

func (b *Bombark) Update(ctx *sim.Context) {
	switch {
	case b.Health.Invulnerable || b.dying:
		b.walk(ctx, 0, nil)
	case b.exploding:
		b.Anim.Play([]int{4, 5}, 7)
		b.Anim.Update()
		b.timer++
		if b.timer == 80 {
			b.animate([]int{1, 2, 1, 0}, 7)
			b.exploding = false
			b.timer = 0
		}
	case b.alert:
		b.checkHit(ctx)
		b.timer++
		if b.timer == 30 {
			ctx.Section.AddEffect(NewExplosion(b.centerX(), b.centerY(), bombarkBlast, b))
			ctx.PlaySound("explode")
			b.Anim.SetFrame(4)
			b.exploding = true
			b.alert = false
			b.timer = 0
		}
	default:
		b.walk(ctx, 0, nil)
		if b.dying || ctx.PlayerDead() {
			return
		}
		bomb := ctx.Bomb().Bounds()
		dx := b.centerX() - bomb.X - bomb.W/2
		dy := b.centerY() - bomb.Y - bomb.H/2
		if dx*dx+dy*dy <= bombarkBlast*bombarkBlast {
			ctx.Section.AddEffect(NewEffect(b.centerX()-4, b.Y-30, "fx_alert", 1, 1, 0, nil, 30))
			b.Anim.SetFrame(3)
			b.alert = true
			b.timer = 0
		}
	}
}

func (b *Bombark) checkHit(ctx *sim.Context) {
	if ctx.PlayerDead() {
		return
	}
	bomb := ctx.Bomb()
	bounds := b.Bounds()
	if bomb.Over(bounds, 0) {
		b.HitByBomb(ctx)
		return
	}
	if bomb.Collide(bounds) {
		bomb.Hit(1)
	}
	if bomb.Explode(bounds) || ctx.Section.Explode(bounds) {
		b.HitByExplosion(ctx)
	} else if damaging(ctx.Section.ProjectileHit(bounds, b)) {
		b.HitByProjectile(ctx)
	}
}

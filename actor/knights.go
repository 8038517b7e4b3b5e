package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
)

const bombinfantSpeed = 3

// Bombinfant alternates between standing still and walking for random
// stretches, swinging at whatever is in front of it.
type Bombinfant struct {
	Enemy
	idle      bool
	timer     int
	timeLimit int
	dontFall  bool
}

func NewBombinfant(ctx *sim.Context, x, y float64, args Args) (*Bombinfant, error) {
	dontFall, err := walkerDontFall(KindBombinfant, args)
	if err != nil {
		return nil, err
	}
	b := &Bombinfant{
		Enemy:    newEnemy(KindBombinfant, x+2, y-4, 28, 36, vec(-26, -16), 1, 5, []int{1, 3}, 15, 320, 2),
		idle:     true,
		dontFall: dontFall,
	}
	b.Anim.SetFrame(1)
	b.timeLimit = 30 + ctx.Intn(90)
	b.bind(b)
	return b, nil
}

func (b *Bombinfant) Update(ctx *sim.Context) {
	b.update(ctx, 0, func() {
		ax := b.X - 22
		if b.FacingRight {
			ax = b.X + b.W + 6
		}
		bomb := ctx.Bomb()
		if bomb.Bounds().Intersects(common.NewRect(ax, b.Y-10, 16, 40)) {
			bomb.Hit(1)
		}

		var forces common.Vector
		if b.idle {
			b.timer++
			if b.timer == b.timeLimit {
				forces.X = -bombinfantSpeed
				if b.FacingRight {
					forces.X = bombinfantSpeed
				}
				b.animate([]int{0, 1, 2, 1}, 8)
				b.timeLimit = 90 + ctx.Intn(90)
				b.timer = 0
				b.idle = false
			}
		} else {
			if b.FacingRight && (b.Right != nil || b.dontFall && !ctx.Section.ObstacleAt(b.X+b.W, b.Y+b.H)) {
				b.Speed.X = 0
				forces.X = -bombinfantSpeed
				b.FacingRight = false
			} else if !b.FacingRight && (b.Left != nil || b.dontFall && !ctx.Section.ObstacleAt(b.X-1, b.Y+b.H)) {
				b.Speed.X = 0
				forces.X = bombinfantSpeed
				b.FacingRight = true
			}
			b.timer++
			if b.timer == b.timeLimit {
				forces.X = 0
				b.Speed.X = 0
				b.animate([]int{1, 3}, 15)
				b.timeLimit = 30 + ctx.Intn(90)
				b.timer = 0
				b.idle = true
			}
		}
		b.Move(forces, b.obstacles(ctx), ctx.Section.Ramps())
	})
}

type BombarcherArgs struct {
	// ShootInterval is the number of frames between shots.
	ShootInterval int `yaml:"shoot_interval"`
}

// Bombarcher stands its ground, always facing the bomb, and fires an arrow
// every shoot interval.
type Bombarcher struct {
	Enemy
	shootInterval int
	timer         int
	attacking     bool
}

func NewBombarcher(ctx *sim.Context, x, y float64, args Args) (*Bombarcher, error) {
	a := BombarcherArgs{ShootInterval: 60}
	if err := decodeArgs(KindBombarcher, args, &a); err != nil {
		return nil, err
	}
	if a.ShootInterval <= 0 {
		return nil, invalid(KindBombarcher, "shoot_interval must be positive, got %d", a.ShootInterval)
	}
	b := &Bombarcher{
		Enemy:         newEnemy(KindBombarcher, x+2, y-4, 28, 36, vec(-26, -24), 3, 2, []int{0, 1}, 15, 200, 1),
		shootInterval: a.ShootInterval,
	}
	b.active.H += 3 * common.TileSize
	b.bind(b)
	return b, nil
}

// Attacking reports whether the draw-and-shoot sequence is running.
func (b *Bombarcher) Attacking() bool { return b.attacking }

func (b *Bombarcher) Update(ctx *sim.Context) {
	b.update(ctx, 0, func() {
		c := b.centerX()
		bomb := ctx.Bomb().Bounds()
		bc := bomb.X + bomb.W/2
		if bc >= c && !b.FacingRight {
			b.FacingRight = true
		} else if bc < c && b.FacingRight {
			b.FacingRight = false
		}

		b.timer++
		switch {
		case b.attacking && b.timer == 20:
			x, angle := b.X-8, 210.0
			if b.FacingRight {
				x, angle = b.X+b.W, 330
			}
			ctx.Section.Add(NewProjectile(x, b.Y+4, ProjectileArrow, angle, b))
		case b.attacking && b.timer == 30:
			b.animate([]int{0, 1}, 15)
			b.attacking = false
			b.timer = 0
		case !b.attacking && b.timer == b.shootInterval:
			b.animate([]int{2, 3, 4}, 10)
			b.attacking = true
			b.timer = 0
		}
	})
}

// knight is the shared body of Bombnight and Bombaladin: the rider sits
// above the mount and is the only part the bomb can stomp or shots can
// hit.
type knight struct {
	Enemy
}

func (k *knight) guard(ctx *sim.Context, area common.Rect) {
	b := ctx.Bomb()
	if b.Over(area, 0) {
		k.hooks().HitByBomb(ctx)
	} else if b.Bounds().Intersects(area) {
		b.Hit(1)
	}
	if damaging(ctx.Section.ProjectileHit(area, k.hooks())) && !k.Health.Invulnerable {
		k.hooks().Hit(ctx, 1)
	}
}

func (k *knight) HitByProjectile(ctx *sim.Context) {}

func (k *knight) HitByExplosion(ctx *sim.Context) { k.hooks().Hit(ctx, 2) }

const bombnightSpeed = 4.5

// Bombnight rides back and forth without ever leaving its platform.
type Bombnight struct {
	knight
}

func NewBombnight(ctx *sim.Context, x, y float64, args Args) (*Bombnight, error) {
	n := &Bombnight{knight{newEnemy(KindBombnight, x, y-18, 60, 50, vec(-38, -34), 2, 3, []int{0, 1, 2, 3, 4, 5}, 5, 480, 3)}}
	n.StoredForces.X = -bombnightSpeed
	n.bind(n)
	return n, nil
}

func (n *Bombnight) Update(ctx *sim.Context) {
	n.update(ctx, 0, func() {
		ax := n.X + 18
		if n.FacingRight {
			ax = n.X + 14
		}
		n.guard(ctx, common.NewRect(ax, n.Y-24, 28, 28))

		var forces common.Vector
		if n.FacingRight && (n.Right != nil || !ctx.Section.ObstacleAt(n.X+n.W, n.Y+n.H)) {
			n.Speed.X = 0
			forces.X = -bombnightSpeed
			n.FacingRight = false
		} else if !n.FacingRight && (n.Left != nil || !ctx.Section.ObstacleAt(n.X-1, n.Y+n.H)) {
			n.Speed.X = 0
			forces.X = bombnightSpeed
			n.FacingRight = true
		}
		n.Move(forces, n.obstacles(ctx), ctx.Section.Ramps())
	})
}

const bombaladinForce = 0.1

// Bombaladin charges toward the bomb with a lance held out in front.
type Bombaladin struct {
	knight
}

func NewBombaladin(ctx *sim.Context, x, y float64, args Args) (*Bombaladin, error) {
	p := &Bombaladin{knight{newEnemy(KindBombaladin, x, y-18, 60, 50, vec(-38, -48), 2, 3, []int{0, 1, 2, 3, 4, 5}, 5, 750, 3)}}
	p.MaxSpeed.X = 4.5
	p.bind(p)
	return p, nil
}

func (p *Bombaladin) Update(ctx *sim.Context) {
	p.update(ctx, 0, func() {
		ax, lx := p.X+12, p.X-6
		if p.FacingRight {
			ax, lx = p.X+8, p.X+50
		}
		p.guard(ctx, common.NewRect(ax, p.Y-24, 40, 28))

		b := ctx.Bomb()
		if b.Bounds().Intersects(common.NewRect(lx, p.Y-46, 16, 30)) {
			b.Hit(1)
		}

		var forces common.Vector
		if p.Health.Invulnerable {
			p.Speed.X = 0
		} else {
			bb := b.Bounds()
			d := bb.X + bb.W/2 - p.centerX()
			forces.X = common.Sign(d) * bombaladinForce
			if _, ok := p.Bottom.(*physics.Ramp); ok {
				forces.X *= 2
			}
		}
		p.Move(forces, p.obstacles(ctx), ctx.Section.Ramps())
		if p.Speed.X > 0 && !p.FacingRight {
			p.FacingRight = true
		} else if p.Speed.X < 0 && p.FacingRight {
			p.FacingRight = false
		}
	})
}

type lancerAttack int

const (
	lancerNone lancerAttack = iota
	lancerSide
	lancerUp
)

const (
	bomblancerSpeed = 3
	bomblancerRange = 40
)

// Bomblancer patrols and thrusts its lance at a bomb that comes in range,
// sideways after a short alert or straight up. It can only be stomped
// while thrusting sideways.
type Bomblancer struct {
	Enemy
	attack lancerAttack
	timer  int
}

func NewBomblancer(ctx *sim.Context, x, y float64, args Args) (*Bomblancer, error) {
	l := &Bomblancer{Enemy: newEnemy(KindBomblancer, x+2, y-4, 28, 36, vec(-58, -44), 2, 3, []int{0, 1, 2, 1}, 7, 300, 2)}
	l.StoredForces.X = -bomblancerSpeed
	l.bind(l)
	return l, nil
}

func (l *Bomblancer) Update(ctx *sim.Context) {
	l.update(ctx, 0, func() {
		if l.Health.Invulnerable {
			return
		}
		b := ctx.Bomb()
		bb := b.Bounds()
		switch {
		case l.attack == lancerUp:
			ax := l.X - 12
			if l.FacingRight {
				ax = l.X + 26
			}
			if bb.Intersects(common.NewRect(ax, l.Y-44, 14, 80)) {
				b.Hit(1)
			}
			l.timer++
			if l.timer == 120 {
				l.finishAttack()
			}
		case l.attack == lancerSide:
			l.timer++
			if l.timer >= 30 {
				ax := l.X - 60
				if l.FacingRight {
					ax = l.X + 28
				}
				if bb.Intersects(common.NewRect(ax, l.Y+14, 60, 14)) {
					b.Hit(1)
				}
			}
			if l.timer == 30 {
				l.animate([]int{4}, 0)
			} else if l.timer == 90 {
				l.finishAttack()
			}
		case bb.Bottom() > l.Y && l.Y+l.H > bb.Y &&
			(l.FacingRight && bb.X > l.X && bb.X < l.X+l.W+bomblancerRange ||
				!l.FacingRight && bb.X < l.X && bb.Right() > l.X-bomblancerRange):
			l.attack = lancerSide
			l.timer = 0
			l.animate([]int{1}, 0)
			ctx.Section.AddEffect(NewEffect(l.centerX()-4, l.Y-30, "fx_alert", 1, 1, 0, nil, 30))
		case bb.Right() > l.X && l.X+l.W > bb.X && bb.Y < l.Y && bb.Bottom() > l.Y-bomblancerRange:
			l.attack = lancerUp
			l.animate([]int{3}, 0)
			l.timer = 0
		default:
			var forces common.Vector
			if l.FacingRight && (l.Right != nil || !ctx.Section.ObstacleAt(l.X+l.W, l.Y+l.H)) {
				l.Speed.X = 0
				forces.X = -bomblancerSpeed
				l.FacingRight = false
			} else if !l.FacingRight && (l.Left != nil || !ctx.Section.ObstacleAt(l.X-1, l.Y+l.H)) {
				l.Speed.X = 0
				forces.X = bomblancerSpeed
				l.FacingRight = true
			}
			l.Move(forces, l.obstacles(ctx), ctx.Section.Ramps())
		}
	})
}

func (l *Bomblancer) finishAttack() {
	l.animate([]int{0, 1, 2, 1}, 0)
	l.attack = lancerNone
}

func (l *Bomblancer) HitByBomb(ctx *sim.Context) {
	hit := l.attack == lancerSide && !l.Health.Invulnerable
	if hit {
		l.finishAttack()
		l.Hit(ctx, 1)
	}
	ctx.Bomb().Bounce(hit)
}

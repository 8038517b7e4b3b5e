package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

type FrockArgs struct {
	// Leaps is how many leaps are made before turning around.
	Leaps       int  `yaml:"leaps"`
	FacingRight bool `yaml:"right"`
}

// Frock leaps at random moments, turning around after a set number of
// leaps.
type Frock struct {
	Enemy
	leaps    int
	maxLeaps int
}

func NewFrock(ctx *sim.Context, x, y float64, args Args) (*Frock, error) {
	a := FrockArgs{Leaps: 1}
	if err := decodeArgs(KindFrock, args, &a); err != nil {
		return nil, err
	}
	if a.Leaps < 0 {
		return nil, invalid(KindFrock, "leaps must not be negative, got %d", a.Leaps)
	}
	f := &Frock{
		Enemy:    newEnemy(KindFrock, x-10, y-4, 52, 36, vec(-8, -24), 1, 5, []int{0, 1}, 8, 250, 1),
		maxLeaps: a.Leaps,
	}
	f.FacingRight = a.FacingRight
	f.bind(f)
	return f, nil
}

func (f *Frock) Update(ctx *sim.Context) {
	f.update(ctx, 0, func() {
		var forces common.Vector
		if f.Bottom != nil {
			f.Speed.X = 0
			if f.Anim.Indices[0] != 0 {
				f.animate([]int{0, 1}, 8)
			}
			if ctx.Float() < 0.0333 {
				f.leaps++
				if f.leaps > f.maxLeaps {
					f.leaps = 1
					f.FacingRight = !f.FacingRight
				}
				forces.X = -4.5
				if f.FacingRight {
					forces.X = 4.5
				}
				forces.Y = -8.5
				f.animate([]int{2, 3}, 5)
			}
		} else if f.Anim.Index == 3 {
			f.Anim.Indices = []int{3}
		}
		f.MoveWithGravity(forces, f.obstacles(ctx), ctx.Section.Ramps(), common.Gravity*0.75)
	})
}

func (f *Frock) HitByBomb(ctx *sim.Context) { f.stompIfStrong(ctx) }

// Pantan is a carnivorous plant. Its leaves can be bounced on, and once both
// are bruised even a weak bomb can stomp it.
type Pantan struct {
	Enemy
	leaf1, leaf2       common.Rect
	roots              common.Rect
	leaf1Hit, leaf2Hit bool
	bandages           [2]common.Vector
	attacking          bool
	timer              int
}

func NewPantan(ctx *sim.Context, x, y float64, args Args) (*Pantan, error) {
	p := &Pantan{
		Enemy:    newEnemy(KindPantan, x, y-72, 32, 104, vec(-44, -16), 3, 2, []int{0, 1, 2}, 15, 350, 1),
		leaf1:    common.NewRect(x-37, y-36, 32, 10),
		leaf2:    common.NewRect(x+28, y-40, 42, 10),
		roots:    common.NewRect(x-29, y+20, 92, 12),
		bandages: [2]common.Vector{vec(x-30, y-36), vec(x+40, y-40)},
	}
	p.bind(p)
	return p, nil
}

func (p *Pantan) Update(ctx *sim.Context) {
	p.update(ctx, 0, func() {
		b := ctx.Bomb()
		if p.attacking {
			p.timer++
			if p.timer == 30 {
				p.animate([]int{0, 1, 2}, 10)
				p.attacking = false
			}
		}
		switch {
		case b.Over(p.leaf1, 0):
			b.Bounce(!p.leaf1Hit)
			p.leaf1Hit = true
		case b.Over(p.leaf2, 0):
			b.Bounce(!p.leaf2Hit)
			p.leaf2Hit = true
		case b.Bounds().Intersects(p.roots):
			b.Hit(1)
		}
	})
}

func (p *Pantan) HitByBomb(ctx *sim.Context) {
	if p.attacking {
		return
	}
	b := ctx.Bomb()
	if b.Power() > 1 || p.leaf1Hit && p.leaf2Hit {
		b.Bounce(true)
		p.Hit(ctx, 1)
		return
	}
	b.Hit(1)
	p.animate([]int{3, 4, 4, 4, 4, 3}, 5)
	p.timer = 0
	p.attacking = true
}

func (p *Pantan) HitByProjectile(ctx *sim.Context) {}

// Decorations draws bandages on bruised leaves.
func (p *Pantan) Decorations(st *sim.Stage) []sim.View {
	var views []sim.View
	for i, hit := range []bool{p.leaf1Hit, p.leaf2Hit} {
		if hit {
			views = append(views, sim.View{
				Name:  "fx_bandage",
				Rect:  common.NewRect(p.bandages[i].X, p.bandages[i].Y, 20, 12),
				Color: 0xffffff,
				Alpha: 0xff,
			})
		}
	}
	return views
}

const krakletScore = 320

// Kraklet lurks under a ceiling and snaps down at a bomb walking below. Only
// explosions and shots destroy it.
type Kraklet struct {
	object
	attackArea common.Rect
	attacking  bool
	dying      bool
	timer      int
}

func NewKraklet(ctx *sim.Context, x, y float64, args Args) (*Kraklet, error) {
	k := &Kraklet{object: newObject(KindKraklet.String(), x-2, y-24, 36, 40, vec(-12, -56), 3, 2)}
	k.attackArea = common.NewRect(k.X, k.Y-50, k.W, k.H+50)
	k.Anim = newLoop([]int{0, 1}, 15)
	k.tinted = true
	return k, nil
}

func (k *Kraklet) Dying() bool { return k.dying }

func (k *Kraklet) Update(ctx *sim.Context) {
	if k.dying {
		k.timer++
		if k.timer == dyingTime {
			k.dead = true
		}
		return
	}

	b := ctx.Bomb()
	if k.attacking {
		if k.timer > 15 && b.Bounds().Intersects(k.attackArea) {
			b.Hit(1)
		}
		k.timer++
		switch {
		case k.timer <= 20:
			k.Anim.PlayOnce([]int{2, 3, 4}, 7)
		case k.timer == 21:
			k.Anim.SetFrame(4)
		case k.timer > 60:
			if k.Anim.PlayOnce([]int{4, 3, 2, 0}, 7) {
				k.attacking = false
			}
		}
	} else {
		k.Anim.Play([]int{0, 1}, 15)
		k.Anim.Update()
		bb := b.Bounds()
		if bb.Right() > k.X-20 && k.X+k.W+20 > bb.X && bb.Bottom() > k.Y-50 && bb.Bottom() <= k.Y {
			k.Anim.SetFrame(2)
			k.attacking = true
			k.timer = 0
		}
	}

	bounds := k.Bounds()
	if b.Explode(bounds) || ctx.Section.Explode(bounds) || ctx.Section.ProjectileHit(bounds, k) != 0 {
		award(ctx, k.X+k.W/2, k.Y, krakletScore)
		k.Anim.SetFrame(5)
		k.dying = true
		k.timer = 0
	}
}

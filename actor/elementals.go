package actor

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

type RadiusArgs struct {
	// Radius in tiles.
	Radius int `yaml:"radius"`
}

func radiusArgs(kind Kind, args Args, def int) (int, error) {
	a := RadiusArgs{Radius: def}
	if err := decodeArgs(kind, args, &a); err != nil {
		return 0, err
	}
	if a.Radius < 0 {
		return 0, invalid(kind, "radius must not be negative, got %d", a.Radius)
	}
	return a.Radius, nil
}

// Icel bobs in the air and periodically sends two ice orbs around itself.
type Icel struct {
	Enemy
	radius     float64
	timer      int
	angle      float64
	bob        int
	center     common.Vector
	orb1, orb2 *Ice
}

func NewIcel(ctx *sim.Context, x, y float64, args Args) (*Icel, error) {
	r, err := radiusArgs(KindIcel, args, 2)
	if err != nil {
		return nil, err
	}
	i := &Icel{
		Enemy:  newEnemy(KindIcel, x-4, y+2, 40, 28, vec(-4, -4), 2, 3, []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5}, 7, 250, 1),
		radius: float64(r * common.TileSize),
		bob:    3,
	}
	i.center = i.Center()
	i.bind(i)
	return i, nil
}

func (i *Icel) Update(ctx *sim.Context) {
	i.update(ctx, 0, func() {
		i.timer++
		switch {
		case i.timer == 120:
			i.orb1 = NewIce(i.center.X+i.radius, i.center.Y)
			i.orb2 = NewIce(i.center.X-i.radius, i.center.Y)
			ctx.Section.AddEffect(i.orb1)
			ctx.Section.AddEffect(i.orb2)
		case i.timer == 240:
			i.dropOrbs()
			i.timer = 0
			i.angle = 0
		case i.timer > 120:
			i.angle += math.Pi / 60
			off := cp.ForAngle(i.angle).Mult(i.radius)
			i.orb1.MoveTo(i.center.X+off.X, i.center.Y-off.Y)
			i.orb2.MoveTo(i.center.X-off.X, i.center.Y+off.Y)
		}

		if i.timer%10 == 0 {
			if i.bob < 2 {
				i.Y--
			} else {
				i.Y++
			}
			i.bob = (i.bob + 1) % 4
		}
	})
	if i.dying {
		i.dropOrbs()
	}
}

func (i *Icel) dropOrbs() {
	if i.orb1 != nil {
		i.orb1.Kill()
		i.orb2.Kill()
		i.orb1, i.orb2 = nil, nil
	}
}

func (i *Icel) HitByBomb(ctx *sim.Context) {}

// Ignel sets the ground on both sides of it on fire every few seconds. It
// can't be stomped or blown up.
type Ignel struct {
	Enemy
	radius int
	timer  int
	center common.Vector
}

func NewIgnel(ctx *sim.Context, x, y float64, args Args) (*Ignel, error) {
	r, err := radiusArgs(KindIgnel, args, 4)
	if err != nil {
		return nil, err
	}
	i := &Ignel{
		Enemy:  newEnemy(KindIgnel, x+4, y-16, 24, 48, vec(-2, -12), 3, 1, []int{0, 1, 2}, 5, 250, 1),
		radius: r,
	}
	i.center = vec(i.X+i.W/2, i.Y+i.H)
	i.bind(i)
	return i, nil
}

func (i *Ignel) Update(ctx *sim.Context) {
	i.update(ctx, 0, func() {
		i.timer++
		switch i.timer {
		case 120:
			for n := 1; n <= i.radius; n++ {
				d := float64(n * common.TileSize)
				ctx.Section.AddEffect(NewFire(i.center.X+d, i.center.Y, 0))
				ctx.Section.AddEffect(NewFire(i.center.X-d, i.center.Y, 0))
			}
		case 240:
			i.timer = 0
		}
	})
}

func (i *Ignel) HitByBomb(ctx *sim.Context) { ctx.Bomb().Hit(1) }

func (i *Ignel) HitByExplosion(ctx *sim.Context) {}

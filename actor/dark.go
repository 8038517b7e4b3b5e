package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

const (
	vamdarkRangeH    = 80
	vamdarkRangeHExt = 120
	vamdarkRangeV    = 270
)

type vamdarkState int

const (
	vamdarkWaiting vamdarkState = iota
	vamdarkGoingDown
	vamdarkAttacking
	vamdarkReturning
)

// Vamdark hangs from the ceiling, swoops down ahead of a bomb passing below,
// flaps its wings in place and flies back.
type Vamdark struct {
	Enemy
	start      common.Vector
	state      vamdarkState
	aim        common.Vector
	attackArea common.Rect
	angle      float64
	timer      int
}

func NewVamdark(ctx *sim.Context, x, y float64, args Args) (*Vamdark, error) {
	v := &Vamdark{Enemy: newEnemy(KindVamdark, x+4, y-4, 24, 66, vec(-48, 0), 2, 4, []int{0}, 7, 250, 2)}
	v.start = v.Position()
	v.bind(v)
	return v, nil
}

func (v *Vamdark) Update(ctx *sim.Context) {
	v.update(ctx, 0, func() {
		b := ctx.Bomb()
		bb := b.Bounds()
		switch v.state {
		case vamdarkGoingDown:
			v.MoveFree(v.aim, 5)
			v.turn(180)
			v.timer++
			if v.Speed.X == 0 && v.Speed.Y == 0 {
				v.animate([]int{4, 5, 6, 5}, 0)
				v.attackArea = common.NewRect(v.X-46, v.Y+20, 116, 36)
				v.state = vamdarkAttacking
				v.timer = 0
			}
		case vamdarkAttacking:
			if bb.Intersects(v.attackArea) {
				b.Hit(1)
			}
			v.turn(180)
			v.timer++
			if v.timer == 90 {
				v.animate([]int{3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 0)
				v.state = vamdarkReturning
				v.timer = 0
			}
		case vamdarkReturning:
			v.MoveFree(v.start, 5)
			v.turn(360)
			v.timer++
			if v.Speed.X == 0 && v.Speed.Y == 0 {
				v.animate([]int{0}, 0)
				v.angle = 0
				v.state = vamdarkWaiting
			}
		default:
			if bb.Y <= v.Y || bb.Y >= v.Y+vamdarkRangeV {
				return
			}
			switch {
			case bb.Right() >= v.X-vamdarkRangeH && bb.X < v.X+v.W+vamdarkRangeH:
				v.aim = vec(bb.X+bb.W/2+30*b.Body().Speed.X-v.W/2, bb.Y+bb.H/2-v.H+20)
				v.animate([]int{2, 3, 4, 5, 6, 5, 4, 5, 6, 5, 4, 5, 6, 5, 4, 5, 6}, 0)
				v.state = vamdarkGoingDown
				v.timer = 0
			case bb.Right() >= v.X-vamdarkRangeHExt && bb.X < v.X+v.W+vamdarkRangeHExt:
				v.animate([]int{1}, 0)
			default:
				v.animate([]int{0}, 0)
			}
		}
	})
}

func (v *Vamdark) turn(limit float64) {
	if v.angle < limit {
		v.angle += 6
	}
}

func (v *Vamdark) View(st *sim.Stage) sim.View {
	view := v.Enemy.View(st)
	view.FlipX = false
	view.Angle = v.angle
	return view
}

// luminarkLight is the light pattern around a Luminark.
var luminarkLight = []sim.LightTile{
	{DX: 0, DY: 0, Alpha: 0},
	{DX: -1, DY: 0, Alpha: 40}, {DX: 0, DY: -1, Alpha: 40}, {DX: 1, DY: 0, Alpha: 40}, {DX: 0, DY: 1, Alpha: 40},
	{DX: -1, DY: -1, Alpha: 80}, {DX: 1, DY: -1, Alpha: 80}, {DX: -1, DY: 1, Alpha: 80}, {DX: 1, DY: 1, Alpha: 80},
	{DX: -2, DY: 0, Alpha: 120}, {DX: 0, DY: -2, Alpha: 120}, {DX: 2, DY: 0, Alpha: 120}, {DX: 0, DY: 2, Alpha: 120},
	{DX: -1, DY: -2, Alpha: 150}, {DX: 1, DY: -2, Alpha: 150}, {DX: 2, DY: -1, Alpha: 150}, {DX: 2, DY: 1, Alpha: 150},
	{DX: 1, DY: 2, Alpha: 150}, {DX: -1, DY: 2, Alpha: 150}, {DX: -2, DY: 1, Alpha: 150}, {DX: -2, DY: -1, Alpha: 150},
}

// Luminark is a glowing hopper that lights up dark sections. It burns on
// contact and shrugs off explosions.
type Luminark struct {
	Enemy
	leaps     int
	maxLeaps  int
	idleTimer int
}

func NewLuminark(ctx *sim.Context, x, y float64, args Args) (*Luminark, error) {
	var a LeapArgs
	if err := decodeArgs(KindLuminark, args, &a); err != nil {
		return nil, err
	}
	if a.Leaps < 0 {
		return nil, invalid(KindLuminark, "leaps must not be negative, got %d", a.Leaps)
	}
	l := &Luminark{
		Enemy:    newEnemy(KindLuminark, x-10, y-18, 52, 46, vec(-4, -10), 4, 2, []int{0, 1, 2, 3, 4, 5}, 7, 300, 2),
		leaps:    1000,
		maxLeaps: a.Leaps,
	}
	l.FacingRight = true
	l.bind(l)
	return l, nil
}

func (l *Luminark) Update(ctx *sim.Context) {
	l.update(ctx, 0, func() {
		if l.Health.Invulnerable {
			return
		}
		var forces common.Vector
		if l.Bottom != nil {
			l.Speed.X = 0
			l.idleTimer++
			if l.idleTimer > 60 {
				l.leaps++
				if l.leaps > l.maxLeaps {
					l.leaps = 1
					l.FacingRight = !l.FacingRight
				}
				forces.X = -3
				if l.FacingRight {
					forces.X = 3
				}
				forces.Y = -6
				l.idleTimer = 0
			}
		}
		l.MoveWithGravity(forces, l.obstacles(ctx), ctx.Section.Ramps(), common.Gravity*0.5)
	})
	if !l.dead {
		ctx.Section.AddLightTiles(luminarkLight, l.X, l.Y, l.W, l.H)
	}
}

func (l *Luminark) HitByBomb(ctx *sim.Context) { ctx.Bomb().Hit(1) }

func (l *Luminark) HitByExplosion(ctx *sim.Context) {}

package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

const gargoilRange = 320

// Gargoil glides back and forth and dives onto a bomb passing below it.
type Gargoil struct {
	Enemy
	movement  float64
	aim       common.Vector
	prevAim   common.Vector
	aim2      *common.Vector
	attacking bool
}

func NewGargoil(ctx *sim.Context, x, y float64, args Args) (*Gargoil, error) {
	var a PathArgs
	if err := decodeArgs(KindGargoil, args, &a); err != nil {
		return nil, err
	}
	if a.Tiles < 0 {
		return nil, invalid(KindGargoil, "tiles must not be negative, got %d", a.Tiles)
	}
	g := &Gargoil{
		Enemy:    newEnemy(KindGargoil, x-18, y, 68, 34, vec(-6, -20), 1, 5, []int{0, 1, 2, 1}, 6, 400, 2),
		movement: float64(a.Tiles * common.TileSize),
	}
	g.FacingRight = !a.Left
	g.aim = g.nextAim()
	g.bind(g)
	return g, nil
}

func (g *Gargoil) nextAim() common.Vector {
	if g.FacingRight {
		return vec(g.X+g.movement, g.Y)
	}
	return vec(g.X-g.movement, g.Y)
}

func (g *Gargoil) stopped() bool { return g.Speed.X == 0 && g.Speed.Y == 0 }

func (g *Gargoil) Update(ctx *sim.Context) {
	g.update(ctx, 0, func() {
		b := ctx.Bomb().Bounds()
		switch {
		case g.attacking:
			g.MoveFree(g.aim, 7)
			if g.stopped() {
				g.animate([]int{0, 1, 2, 1}, 3)
				g.attacking = false
			}
		case g.aim2 != nil:
			g.MoveFree(*g.aim2, 2.5)
			if g.stopped() {
				g.aim2 = nil
				g.aim = g.prevAim
				g.Anim.Interval = 6
			}
		case b.X > g.X && b.Right() < g.X+g.W && b.Y > g.Y && b.Y < g.Y+gargoilRange:
			g.prevAim = g.aim
			g.aim = vec(b.X+b.W/2-g.W/2, b.Bottom()-g.H)
			back := vec(g.aim.X, g.Y)
			g.aim2 = &back
			g.Speed = common.Vector{}
			g.animate([]int{3}, 0)
			g.attacking = true
		default:
			g.MoveFree(g.aim, 3)
			if g.stopped() {
				g.FacingRight = !g.FacingRight
				g.aim = g.nextAim()
			}
		}
	})
}

package actor

import (
	"math"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

// Yaw circles a closed track forever. It cannot be stomped or shot, only
// blown up. Yawnster is the larger, faster variant on a wider track.
type Yaw struct {
	Enemy
	points []common.Vector
	speedM float64
	track  []common.Vector
}

func NewYaw(ctx *sim.Context, x, y float64, args Args) (*Yaw, error) {
	e := &Yaw{Enemy: newEnemy(KindYaw, x, y, 32, 32, vec(-4, -4), 3, 2,
		[]int{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 2, 3, 4, 5}, 7, 400, 1)}
	e.points = []common.Vector{
		vec(e.X+64, e.Y),
		vec(e.X+96, e.Y+32),
		vec(e.X+96, e.Y+96),
		vec(e.X+64, e.Y+128),
		vec(e.X, e.Y+128),
		vec(e.X-32, e.Y+96),
		vec(e.X-32, e.Y+32),
		vec(e.X, e.Y),
	}
	e.speedM = 3
	e.buildTrack(10.66)
	e.bind(e)
	return e, nil
}

func NewYawnster(ctx *sim.Context, x, y float64, args Args) (*Yaw, error) {
	x -= 6
	y -= 6
	e := &Yaw{Enemy: newEnemy(KindYawnster, x, y, 44, 44, vec(-6, -6), 3, 2,
		[]int{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 2, 3, 4, 5}, 7, 440, 1)}
	e.points = []common.Vector{
		vec(e.X+128, e.Y+128),
		vec(e.X+192, e.Y+64),
		vec(e.X+128, e.Y),
		vec(e.X, e.Y+128),
		vec(e.X-64, e.Y+64),
		vec(e.X, e.Y),
	}
	e.speedM = 4
	e.buildTrack(10)
	e.bind(e)
	return e, nil
}

// buildTrack lays trail dots every spacing pixels along the closed path and
// sets the active bounds to cover the whole path.
func (e *Yaw) buildTrack(spacing float64) {
	minX, maxX, minY, maxY := e.X, e.X, e.Y, e.Y
	for i, p := range e.points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)

		next := e.points[(i+1)%len(e.points)]
		d := next.Sub(p)
		length := d.Length()
		if length == 0 {
			continue
		}
		amount := int(length / spacing)
		ratio := spacing / length
		for j := 0; j < amount; j++ {
			dot := p.Add(d.Mult(float64(j) * ratio))
			e.track = append(e.track, vec(dot.X+e.W/2, dot.Y+e.H/2))
		}
	}
	e.active = common.NewRect(minX, minY, maxX-minX+e.W, maxY-minY+e.H)
}

func (e *Yaw) Update(ctx *sim.Context) {
	e.update(ctx, 0, func() {
		e.Cycle(e.points, e.speedM)
	})
}

func (e *Yaw) HitByBomb(ctx *sim.Context) { ctx.Bomb().Hit(1) }

func (e *Yaw) HitByProjectile(ctx *sim.Context) {}

// Track returns the centers of the trail dots.
func (e *Yaw) Track() []common.Vector { return e.track }

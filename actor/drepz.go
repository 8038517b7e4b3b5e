package actor

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

type drepzState int

const (
	drepzActing drepzState = iota
	drepzJumping
	drepzAttacking
	drepzReturning
)

type DrepzArgs struct {
	// Points are the tiles Drepz jumps to, in order.
	Points [][2]int `yaml:"points"`
}

// Drepz runs its hall carrying a lantern, then leaps onto a ledge and calls
// lightning down around the bomb before dropping back.
type Drepz struct {
	Enemy
	state      drepzState
	timer      int
	points     []common.Vector
	pointIndex int
	areaLeft   float64
	areaRight  float64
}

func NewDrepz(ctx *sim.Context, x, y float64, args Args) (*Drepz, error) {
	var a DrepzArgs
	if err := decodeArgs(KindDrepz, args, &a); err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, invalid(KindDrepz, "at least one jump point is required")
	}
	d := &Drepz{
		Enemy:     newEnemy(KindDrepz, x-5, y-44, 42, 76, vec(-10, -20), 3, 2, []int{1, 2, 1, 0}, 7, 7000, 7),
		areaLeft:  x - 13*common.TileSize,
		areaRight: x + 14*common.TileSize - 1,
	}
	for _, p := range a.Points {
		d.points = append(d.points, vec(float64(p[0]*common.TileSize), float64(p[1]*common.TileSize)))
	}
	d.Anim.SetFrame(1)
	d.MaxSpeed = vec(100, 100)
	d.attachBoss("")
	d.bind(d)
	return d, nil
}

func (d *Drepz) runSpeed() float64 {
	switch {
	case d.Health.HP <= 1:
		return 6
	case d.Health.HP <= 4:
		return 5
	}
	return 4.5
}

func (d *Drepz) Update(ctx *sim.Context) {
	d.Boss.Update(ctx, &d.Enemy, func() { d.update(ctx, 0, func() { d.fight(ctx) }) })
	if !d.dead {
		ctx.Section.AddLightTiles(drepzLight, d.X, d.Y, d.W, d.H)
	}
}

func (d *Drepz) fight(ctx *sim.Context) {
	var forces common.Vector
	obst := d.obstacles(ctx)
	setSpeed := false
	switch d.state {
	case drepzActing:
		d.timer++
		switch {
		case d.Left != nil || d.Speed.X < 0 && !ctx.Section.ObstacleAt(d.X-1, d.Y+d.H):
			forces.X = d.runSpeed()
			setSpeed = true
			d.FacingRight = true
		case d.Speed.X == 0 || d.Right != nil || d.Speed.X > 0 && !ctx.Section.ObstacleAt(d.X+d.W, d.Y+d.H):
			forces.X = -d.runSpeed()
			setSpeed = true
			d.FacingRight = false
		}
		if d.timer >= 300-(7-d.Health.HP)*15 {
			forces = d.jumpTo(d.points[d.pointIndex])
			setSpeed = true
			d.pointIndex = (d.pointIndex + 1) % len(d.points)
			d.timer = 0
			d.animate([]int{3}, 0)
			d.state = drepzJumping
		}
	case drepzJumping:
		if d.Bottom != nil {
			d.Speed.X = 0
			d.animate([]int{1}, 0)
			d.timer++
			if d.timer == 60 {
				d.animate([]int{4, 5}, 0)
				d.timer = 0
				d.state = drepzAttacking
			}
		}
	case drepzAttacking:
		d.timer++
		if d.timer%30 == 0 {
			bx := ctx.Bomb().Body().X
			pos := cp.Clamp(bx-4*common.TileSize+float64(ctx.Intn(9*common.TileSize)), d.areaLeft, d.areaRight)
			ctx.Section.Add(NewLightning(pos, d.Y+d.H))
		}
		end := 180
		switch {
		case d.Health.HP <= 1:
			end = 300
		case d.Health.HP <= 4:
			end = 240
		}
		if d.timer == end {
			forces.Y = -5
			d.animate([]int{3}, 0)
			d.state = drepzReturning
		}
	case drepzReturning:
		solid := obst[:0:0]
		for _, o := range obst {
			if !o.Passable() {
				solid = append(solid, o)
			}
		}
		obst = solid
		if d.Bottom != nil {
			d.animate([]int{1, 2, 1, 0}, 0)
			d.timer = 0
			d.state = drepzActing
		}
	}
	if setSpeed {
		d.MoveSetSpeed(forces, obst, ctx.Section.Ramps())
	} else {
		d.Move(forces, obst, ctx.Section.Ramps())
	}
}

// jumpTo solves the launch speed that lands Drepz on the tile at p, peaking
// one tile above it.
func (d *Drepz) jumpTo(p common.Vector) common.Vector {
	dx := p.X - 5 - d.X
	dy := p.Y - 44 - d.Y
	vy := -math.Sqrt(math.Max(-2*common.Gravity*(dy-common.TileSize), 0))
	vx := dx / (-vy/common.Gravity + math.Sqrt(2*common.TileSize/common.Gravity))
	return vec(vx, vy)
}

func (d *Drepz) HitByExplosion(ctx *sim.Context) { d.Hit(ctx, 1) }

var drepzLight = []sim.LightTile{
	{DX: 0, DY: 0, Alpha: 0},
	{DX: -1, DY: 0, Alpha: 25}, {DX: 0, DY: -1, Alpha: 25}, {DX: 1, DY: 0, Alpha: 25}, {DX: 0, DY: 1, Alpha: 25},
	{DX: -1, DY: -1, Alpha: 50}, {DX: 1, DY: -1, Alpha: 50}, {DX: -1, DY: 1, Alpha: 50}, {DX: 1, DY: 1, Alpha: 50},
	{DX: -2, DY: 0, Alpha: 75}, {DX: 0, DY: -2, Alpha: 75}, {DX: 2, DY: 0, Alpha: 75}, {DX: 0, DY: 2, Alpha: 75},
	{DX: -1, DY: -2, Alpha: 100}, {DX: 1, DY: -2, Alpha: 100}, {DX: 2, DY: -1, Alpha: 100}, {DX: 2, DY: 1, Alpha: 100},
	{DX: 1, DY: 2, Alpha: 100}, {DX: -1, DY: 2, Alpha: 100}, {DX: -2, DY: 1, Alpha: 100}, {DX: -2, DY: -1, Alpha: 100},
	{DX: -3, DY: 0, Alpha: 125}, {DX: 0, DY: -3, Alpha: 125}, {DX: 3, DY: 0, Alpha: 125}, {DX: 0, DY: 3, Alpha: 125},
	{DX: -3, DY: -1, Alpha: 150}, {DX: -2, DY: -2, Alpha: 150}, {DX: -1, DY: -3, Alpha: 150}, {DX: 1, DY: -3, Alpha: 150},
	{DX: 2, DY: -2, Alpha: 150}, {DX: 3, DY: -1, Alpha: 150}, {DX: 3, DY: 1, Alpha: 150}, {DX: 2, DY: 2, Alpha: 150},
	{DX: 1, DY: 3, Alpha: 150}, {DX: -1, DY: 3, Alpha: 150}, {DX: -2, DY: 2, Alpha: 150}, {DX: -3, DY: 1, Alpha: 150},
	{DX: 0, DY: -4, Alpha: 175}, {DX: 2, DY: -3, Alpha: 175}, {DX: 3, DY: -2, Alpha: 175}, {DX: 4, DY: 0, Alpha: 175},
	{DX: 3, DY: 2, Alpha: 175}, {DX: 2, DY: 3, Alpha: 175}, {DX: 0, DY: 4, Alpha: 175}, {DX: -2, DY: 3, Alpha: 175},
	{DX: -3, DY: 2, Alpha: 175}, {DX: -4, DY: 0, Alpha: 175}, {DX: -3, DY: -2, Alpha: 175}, {DX: -2, DY: -3, Alpha: 175},
}

package actor

import (
	"math"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/sim"
)

type gaxlonState int

const (
	gaxlonActing gaxlonState = iota
	gaxlonWillJump
	gaxlonJumping
)

const gaxlonMargin = 2 * common.TileSize

// GaxlonArgs holds the tile points of the final fight. Jumps and Spawns are
// indexed by phase: Jumps[0] are the jumps between phases, Spawns[0] the
// orb origins of the first phase, Spawns[1] its item slots, Spawns[2] the
// six heart slots, Spawns[3] the orb origins of the third phase, Spawns[4]
// the gun powder slots and Spawns[5] the hourglass trigger and slot.
type GaxlonArgs struct {
	Jumps  [][][2]int `yaml:"jumps"`
	Spawns [][][2]int `yaml:"spawns"`
}

func (a GaxlonArgs) validate() error {
	if len(a.Jumps) < 6 {
		return invalid(KindGaxlon, "6 jump groups are required, got %d", len(a.Jumps))
	}
	for i, g := range a.Jumps {
		if len(g) == 0 {
			return invalid(KindGaxlon, "jump group %d is empty", i)
		}
	}
	if len(a.Spawns) < 6 {
		return invalid(KindGaxlon, "6 spawn groups are required, got %d", len(a.Spawns))
	}
	need := [6]int{1, 1, 6, 1, 1, 2}
	for i, n := range need {
		if len(a.Spawns[i]) < n {
			return invalid(KindGaxlon, "spawn group %d needs %d points, got %d", i, n, len(a.Spawns[i]))
		}
	}
	return nil
}

// Gaxlon is the final boss. Each pair of hit points is a phase with its own
// jumps, orb volleys and helper items. Every stomp sends the bomb away
// through a vortex, and every second hit opens a wall of the arena.
type Gaxlon struct {
	Enemy
	state    gaxlonState
	timer    int
	jumps    [][]common.Vector
	spawnAt  [][]common.Vector
	point    int
	subpoint int
	spawns   map[int]sim.Actor
	trigger  common.Rect
}

func NewGaxlon(ctx *sim.Context, x, y float64, args Args) (*Gaxlon, error) {
	var a GaxlonArgs
	if err := decodeArgs(KindGaxlon, args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	g := &Gaxlon{
		Enemy:   newEnemy(KindGaxlon, x-14, y-86, 60, 118, vec(-26, -42), 3, 2, []int{0, 1}, 10, 10000, 10),
		jumps:   tileGroups(a.Jumps),
		spawnAt: tileGroups(a.Spawns),
		spawns:  map[int]sim.Actor{},
	}
	g.MaxSpeed = vec(100, 100)
	t := g.spawnAt[5][0]
	g.trigger = common.NewRect(t.X, t.Y, common.TileSize, common.TileSize)
	g.Health.OnIFrameStart = func(*component.Health) {
		g.Speed.X = 0
		last := g.Sprite.Frames() - 1
		g.animate([]int{last}, 0)
	}
	g.Health.OnIFrameEnd = func(h *component.Health) {
		g.animate([]int{0, 1}, 0)
		if h.HP%2 == 0 {
			g.subpoint = 0
			g.timer = 0
			clear(g.spawns)
			g.state = gaxlonWillJump
		}
	}
	g.attachBoss("finalBoss")
	g.bind(g)
	return g, nil
}

func tileGroups(groups [][][2]int) [][]common.Vector {
	out := make([][]common.Vector, len(groups))
	for i, g := range groups {
		for _, p := range g {
			out[i] = append(out[i], vec(float64(p[0]*common.TileSize), float64(p[1]*common.TileSize)))
		}
	}
	return out
}

func (g *Gaxlon) Update(ctx *sim.Context) {
	g.Boss.Update(ctx, &g.Enemy, func() { g.fight(ctx) })
}

func (g *Gaxlon) fight(ctx *sim.Context) {
	obst := g.obstacles(ctx)
	if g.Health.Invulnerable {
		g.update(ctx, 0, nil)
		g.Move(common.Vector{}, obst, ctx.Section.Ramps())
		return
	}

	b := ctx.Bomb()
	if !ctx.PlayerDead() {
		bounds := g.Bounds()
		if b.Over(bounds, 0) {
			g.HitByBomb(ctx)
		} else {
			if b.Collide(bounds) {
				b.Hit(1)
			}
			if b.Explode(bounds) || damaging(ctx.Section.ProjectileHit(bounds, g)) {
				g.Hit(ctx, 1)
			}
		}
	}
	if g.dying {
		return
	}

	var forces common.Vector
	setSpeed := false
	jump := func(p common.Vector) {
		forces = g.jumpTo(p)
		setSpeed = true
	}
	hp := g.Health.HP
	switch {
	case g.state == gaxlonWillJump:
		g.timer++
		if g.timer == 30 {
			jump(g.jumps[0][g.point%len(g.jumps[0])])
			g.point++
			g.timer = 0
		}
	case g.state == gaxlonJumping:
		if g.Bottom != nil {
			g.Speed.X = 0
			g.animate([]int{0, 1}, 0)
			g.state = gaxlonActing
		}
	case hp >= 9:
		g.timer++
		if g.timer%60 == 0 && g.timer <= 120 {
			jump(g.jumps[1][g.subpoint])
			g.subpoint = (g.subpoint + 1) % len(g.jumps[1])
		}
		if g.timer == 150 {
			g.animate([]int{3, 4}, 0)
			times := 1
			if hp <= 9 {
				times = 2
			}
			for range times {
				g.volley(ctx, g.spawnAt[0], 64, func(i int) float64 { return float64(i * 90) })
			}
			if len(g.spawns) < len(g.spawnAt[1]) {
				for i, p := range g.spawnAt[1] {
					if g.spawns[i] == nil {
						g.spawnItem(ctx, "Attack5", p, i, true)
						break
					}
				}
			}
		} else if g.timer == 210 {
			g.animate([]int{0, 1}, 0)
			g.timer = 30
		}
	case hp >= 7:
		if g.timer == 0 {
			for k, s := range g.spawns {
				r := s.Bounds()
				g.spawnEffect(ctx, r.X, r.Y)
				if killer, ok := s.(interface{ Kill() }); ok {
					killer.Kill()
				}
				ctx.Stage.DeleteSwitch(s)
				delete(g.spawns, k)
			}
			hearts := g.spawnAt[2][:3]
			if g.subpoint != 0 {
				hearts = g.spawnAt[2][3:6]
			}
			for i, p := range hearts {
				g.spawnItem(ctx, "Heart", p, i, false)
			}
			g.subpoint = 1 - g.subpoint
		}
		g.timer++
		if g.timer == 300 {
			jump(g.jumps[2][g.subpoint%len(g.jumps[2])])
			g.timer = 0
		}
	case hp >= 5:
		g.timer++
		switch g.timer {
		case 60:
			jump(g.jumps[3][g.subpoint%len(g.jumps[3])])
			g.subpoint = (g.subpoint + 1) % len(g.jumps[3])
		case 90:
			g.animate([]int{3, 4}, 0)
			g.volley(ctx, g.spawnAt[3], 96, func(i int) float64 { return float64(i / 2 * 90) })
		case 150:
			g.animate([]int{0, 1}, 0)
		case 330:
			g.timer = 0
		}
	case hp >= 3:
		g.timer++
		if g.timer%60 == 0 {
			jump(g.jumps[4][g.subpoint%len(g.jumps[4])])
			g.subpoint = (g.subpoint + 1) % len(g.jumps[4])
		}
		if g.timer == 180 {
			if len(g.spawns) == 0 {
				i := ctx.Intn(len(g.spawnAt[4]))
				p := g.spawnAt[4][i]
				gp := newGunPowder(p.X, p.Y, 3*60)
				g.spawnEffect(ctx, p.X, p.Y)
				ctx.Section.Add(gp)
				g.spawns[i] = gp
				g.timer = 0
			} else {
				g.timer -= 60
			}
		}
	default:
		spawn := false
		if hp == 1 && g.subpoint == 0 {
			jump(g.jumps[5][0])
			spawn = true
			g.subpoint = 1
		}
		if len(g.spawns) == 0 && (spawn || g.trigger.Intersects(b.Bounds())) {
			g.spawnItem(ctx, "Hourglass", g.spawnAt[5][1], 0, false)
		}
	}

	for k, s := range g.spawns {
		if s.Dead() {
			delete(g.spawns, k)
			ctx.Stage.DeleteSwitch(s)
		}
	}

	g.Anim.Update()
	if setSpeed {
		g.MoveSetSpeed(forces, obst, ctx.Section.Ramps())
	} else {
		g.Move(forces, obst, ctx.Section.Ramps())
	}
	g.SetActiveBounds(ctx)
	g.FacingRight = g.Speed.X > 0
}

// volley fires one orb from around each origin, scattered within spread.
func (g *Gaxlon) volley(ctx *sim.Context, origins []common.Vector, spread int, angle func(i int) float64) {
	for i, p := range origins {
		x := p.X - float64(spread) + float64(ctx.Intn(2*spread))
		y := p.Y - float64(spread) + float64(ctx.Intn(2*spread))
		ctx.Section.Add(NewProjectile(x, y, ProjectileOrb, angle(i), g))
	}
}

// spawnItem places an item built by the section at p. Tracked items get a
// switch so that taking them is remembered like any placed item.
func (g *Gaxlon) spawnItem(ctx *sim.Context, kind string, p common.Vector, slot int, tracked bool) {
	a, err := ctx.Section.Spawn(kind, p.X, p.Y)
	if err != nil {
		return
	}
	g.spawnEffect(ctx, p.X, p.Y)
	ctx.Section.Add(a)
	if tracked {
		sw := &sim.Switch{Type: kind, ID: -1, State: sim.NotTaken, Obj: a}
		ctx.Stage.AddSwitch(sw)
	}
	g.spawns[slot] = a
}

func (g *Gaxlon) spawnEffect(ctx *sim.Context, x, y float64) {
	ctx.Section.AddEffect(NewEffect(x-16, y-16, "fx_spawn", 2, 2, 6, nil, 0))
}

// jumpTo solves the launch speed that lands Gaxlon's feet on p, clearing
// the highest of both ends by two tiles.
func (g *Gaxlon) jumpTo(p common.Vector) common.Vector {
	dx := p.X - 14 - g.X
	dy := p.Y - 86 - g.Y
	up, down := dy-gaxlonMargin, float64(gaxlonMargin)
	if dy > 0 {
		up, down = -gaxlonMargin, dy+gaxlonMargin
	}
	vy := -math.Sqrt(-2 * common.Gravity * up)
	vx := dx / (-vy/common.Gravity + math.Sqrt(2*down/common.Gravity))
	g.animate([]int{2}, 0)
	g.state = gaxlonJumping
	return vec(vx, vy)
}

func (g *Gaxlon) HitByBomb(ctx *sim.Context) {
	if g.Health.Invulnerable {
		return
	}
	g.Enemy.HitByBomb(ctx)
	hp := g.Health.HP
	if hp <= 0 || g.dying {
		return
	}
	entrance := 25
	switch {
	case hp >= 8:
		entrance = 21
	case hp >= 6:
		entrance = 22
	case hp >= 4:
		entrance = 23
	}
	c := ctx.Bomb().Body().Center()
	ctx.Section.Add(newVortex(c.X-27, c.Y-27, entrance))
}

func (g *Gaxlon) Hit(ctx *sim.Context, amount int) {
	before := g.Health.HP
	g.Enemy.Hit(ctx, amount)
	hp := g.Health.HP
	if hp == before || hp%2 != 0 {
		return
	}
	wall := 7
	switch hp {
	case 8:
		wall = 4
	case 6:
		wall = 5
	case 4:
		wall = 6
	}
	ctx.Section.ActivateObject(KindMovingWall.String(), wall)
}

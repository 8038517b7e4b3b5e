package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

// Globb crawls its swamp leaving clouds of poison gas behind every third
// turn. It can only be hurt by landing on the spikes it keeps around the
// arena, which throws it back and rebuilds the boxes and spikes.
type Globb struct {
	Enemy
	start       common.Vector
	turnCounter int
	timer       int
	boxes       []*Box
	spikes      []*FixedSpikes
}

func NewGlobb(ctx *sim.Context, x, y float64, args Args) (*Globb, error) {
	dontFall, err := walkerDontFall(KindGlobb, args)
	if err != nil {
		return nil, err
	}
	g := &Globb{
		Enemy: newEnemy(KindGlobb, x-26, y-82, 84, 114, vec(-28, -8), 2, 3, []int{0, 1, 2, 1}, 10, 3700, 5),
		start: vec(x, y),
	}
	g.attachWalker(2.5, dontFall)
	g.Walker.FloorTolerance = 16
	g.Walker.OnTurn = func(bool) {
		g.turnCounter++
		if g.turnCounter%3 == 0 {
			g.animate([]int{3, 4}, 7)
		}
	}
	g.replaceBoxes(ctx, [][2]int{{-11, 0}, {-9, -3}})
	g.replaceSpikes(ctx, [][2]int{{-15, 1}, {-14, 1}, {-13, 1}})
	g.attachBoss("")
	g.bind(g)
	return g, nil
}

func (g *Globb) replaceBoxes(ctx *sim.Context, tiles [][2]int) {
	for _, b := range g.boxes {
		b.Remove(ctx)
	}
	g.boxes = g.boxes[:0]
	for i, t := range tiles {
		b := newBox(ctx, g.start.X+float64(t[0]*common.TileSize), g.start.Y+float64(t[1]*common.TileSize), i)
		g.boxes = append(g.boxes, b)
		ctx.Section.Add(b)
	}
}

func (g *Globb) replaceSpikes(ctx *sim.Context, tiles [][2]int) {
	for _, s := range g.spikes {
		s.Remove(ctx)
	}
	g.spikes = g.spikes[:0]
	for _, t := range tiles {
		s := newFixedSpikes(ctx, g.start.X+float64(t[0]*common.TileSize), g.start.Y+float64(t[1]*common.TileSize), 0)
		g.spikes = append(g.spikes, s)
		ctx.Section.Add(s)
	}
}

func (g *Globb) Update(ctx *sim.Context) {
	g.Boss.Update(ctx, &g.Enemy, func() { g.fight(ctx) })
}

func (g *Globb) fight(ctx *sim.Context) {
	if g.Health.Invulnerable {
		g.recover(ctx)
		return
	}
	if _, ok := g.Bottom.(*FixedSpikes); ok {
		g.Hit(ctx, 1)
		g.Anim.SetFrame(5)
		push := -10.0
		if g.X < g.start.X {
			push = 10
		}
		g.StoredForces = vec(push, -35)
		g.Health.Timer = 0
		return
	}
	g.walk(ctx, 16, func() {
		if g.turnCounter%3 != 0 {
			g.SetDirection()
			return
		}
		if g.timer%15 == 0 {
			g.releaseGas(ctx)
		}
		g.timer++
		if g.timer == 60 {
			g.animate([]int{0, 1, 2, 1}, 10)
			g.SetDirection()
			g.timer = 0
			if g.turnCounter == 9 {
				g.turnCounter = 0
			}
		}
	})
}

// recover runs the knock-back after landing on spikes. Health.Timer counts
// the frames of it, and the window ends after 120 of them rather than
// the usual invulnerable time.
func (g *Globb) recover(ctx *sim.Context) {
	g.Move(common.Vector{}, g.obstacles(ctx), nil)
	g.Health.Timer++
	if g.Bottom != nil {
		g.Speed.X = 0
	}
	if g.Health.Timer < 120 {
		return
	}
	g.Anim.SetFrame(0)
	g.Health.Invulnerable = false
	g.Health.Timer = 0
	if g.FacingRight {
		g.Speed.X = g.Walker.SpeedM
	} else {
		g.Speed.X = -g.Walker.SpeedM
	}
	switch g.Health.HP {
	case 3:
		g.replaceBoxes(ctx, [][2]int{{9, -6}, {10, -3}})
		g.replaceSpikes(ctx, [][2]int{{13, 1}, {14, 1}, {15, 1}})
	case 1:
		g.replaceBoxes(ctx, [][2]int{{-9, -3}, {9, -6}, {11, -6}, {10, -3}})
		g.replaceSpikes(ctx, [][2]int{{-15, 1}, {-14, 1}, {-13, 1}})
	}
	for _, b := range g.boxes {
		b.Activate(ctx)
	}
}

func (g *Globb) releaseGas(ctx *sim.Context) {
	x := g.start.X + g.W/2 + float64((g.timer/5+g.turnCounter/3-7)*64) + 16
	hp := g.Health.HP
	lifetime := 600
	switch {
	case hp < 2:
		lifetime = 900
	case hp < 4:
		lifetime = 840
	}
	ctx.Section.Add(NewPoisonGas(x, g.Y+64, lifetime))
	if hp < 4 {
		ctx.Section.Add(NewPoisonGas(x, g.Y-12, lifetime))
	}
}

func (g *Globb) HitByBomb(ctx *sim.Context) { ctx.Bomb().Bounce(false) }

func (g *Globb) HitByProjectile(ctx *sim.Context) {}

func (g *Globb) HitByExplosion(ctx *sim.Context) {}

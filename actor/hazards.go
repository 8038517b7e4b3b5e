package actor

import (
	"math"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
)

// Ekips sits in the ground and periodically raises a wide blade. It can only
// be stomped while the blade is up.
type Ekips struct {
	object
	actTimer     int
	preparing    bool
	attacking    bool
	attackBounds common.Rect
	score        int
}

func NewEkips(ctx *sim.Context, x, y float64, args Args) (*Ekips, error) {
	e := &Ekips{
		object:       newObject(KindEkips.String(), x+5, y-10, 22, 25, vec(-37, -8), 2, 3),
		attackBounds: common.NewRect(x-26, y+10, 84, 12),
		score:        160,
	}
	e.active = common.NewRect(x-32, y-18, 96, 50)
	e.tinted = true
	return e, nil
}

func (e *Ekips) Dying() bool { return false }

func (e *Ekips) Update(ctx *sim.Context) {
	b := ctx.Bomb()
	bounds := e.Bounds()
	if b.Explode(bounds) || ctx.Section.ProjectileHit(bounds, e) != 0 && !e.attacking {
		award(ctx, e.X+e.W/2, e.Y, e.score)
		e.dead = true
		return
	}

	switch {
	case b.Over(bounds, 0):
		if e.attacking {
			b.Bounce(true)
			award(ctx, e.X+e.W/2, e.Y, e.score)
			e.dead = true
			return
		}
		b.Hit(1)
	case e.attacking && b.Bounds().Intersects(e.attackBounds):
		b.Hit(1)
	case b.Collide(bounds):
		b.Hit(1)
	}

	e.actTimer++
	switch {
	case e.preparing && e.actTimer >= 60:
		e.Anim.Play([]int{2, 3, 4, 5}, 5)
		e.Anim.Update()
		if e.Anim.Index == 5 {
			e.attacking = true
			e.preparing = false
			e.Anim.SetFrame(5)
			e.actTimer = 0
		}
	case e.attacking && e.actTimer >= 150:
		e.Anim.Play([]int{4, 3, 2, 1, 0}, 5)
		e.Anim.Update()
		if e.Anim.Index == 0 {
			e.attacking = false
			e.Anim.SetFrame(0)
			e.actTimer = 0
		}
	case !e.attacking && !e.preparing && e.actTimer >= 150:
		e.preparing = true
		e.Anim.SetFrame(1)
		e.actTimer = 0
	}
}

type FallerArgs struct {
	// Range is how many tiles the crusher rises.
	Range int `yaml:"range"`
}

// Faller is a crusher that rises a few tiles carrying whatever stands on it
// and then drops back onto its fixed base. Only explosions destroy it.
type Faller struct {
	object
	rng      int
	start    common.Vector
	up       common.Vector
	base     *physics.Block
	step     int
	actTimer int
	score    int
}

func NewFaller(ctx *sim.Context, x, y float64, args Args) (*Faller, error) {
	var a FallerArgs
	if err := decodeArgs(KindFaller, args, &a); err != nil {
		return nil, err
	}
	if a.Range < 1 {
		return nil, invalid(KindFaller, "range must be at least 1, got %d", a.Range)
	}
	f := &Faller{
		object: newObject(KindFaller.String(), x, y, 32, 12, vec(-1, 0), 4, 1),
		rng:    a.Range,
		start:  vec(x, y),
		up:     vec(x, y-float64(a.Range*common.TileSize)),
		base:   physics.NewBlock(x, y+20, 32, 12, false),
		score:  300,
	}
	f.active = common.NewRect(x, f.up.Y, 32, float64((a.Range+1)*common.TileSize))
	f.Anim = newLoop([]int{0, 1, 2, 3, 2, 1}, 8)
	f.tinted = true
	ctx.Section.AddObstacle(f)
	ctx.Section.AddObstacle(f.base)
	return f, nil
}

func (f *Faller) Dying() bool { return false }

func (f *Faller) Update(ctx *sim.Context) {
	b := ctx.Bomb()
	switch {
	case b.Explode(f.Bounds()):
		award(ctx, f.X+f.W/2, f.Y, f.score)
		ctx.Section.RemoveObstacle(f)
		ctx.Section.RemoveObstacle(f.base)
		f.dead = true
		return
	case b.Body().Bottom == physics.Obstacle(f.base):
		b.Hit(1)
	case b.Bounds().Intersects(common.NewRect(f.X, f.Y+12, f.W, 2)):
		b.Hit(1)
	}

	f.Anim.Update()

	bb := b.Body()
	switch f.step {
	case 0, 2:
		f.actTimer++
		if f.actTimer >= 90 {
			f.step++
			f.actTimer = 0
		}
	case 1:
		f.MoveCarrying(f.up, 1, []*physics.Body{bb}, ctx.Section.Obstacles(bb.X, bb.Y, bb.W, bb.H), ctx.Section.Ramps())
		if f.Speed.Y == 0 {
			f.step++
		}
	default:
		diff := math.Ceil((f.start.Y - f.Y) / 5)
		f.MoveCarrying(f.start, diff, []*physics.Body{bb}, ctx.Section.Obstacles(bb.X, bb.Y, bb.W, bb.H), ctx.Section.Ramps())
		if f.Speed.Y == 0 {
			f.step = 0
		}
	}
}

// Decorations draws the fixed base under the crusher.
func (f *Faller) Decorations(st *sim.Stage) []sim.View {
	v := f.View(st)
	v.Name = "Faller2"
	v.Rect = common.NewRect(f.X, f.start.Y+15, 32, 16)
	v.Frame = 0
	return []sim.View{v}
}

// Turner crawls along a ledge with its spikes up, then flips over and
// crawls back as a platform carrying the bomb.
type Turner struct {
	Enemy
	harmful    bool
	speedM     float64
	aim1, aim2 common.Vector
	harmBounds common.Rect
}

func NewTurner(ctx *sim.Context, x, y float64, args Args) (*Turner, error) {
	t := &Turner{
		Enemy:   newEnemy(KindTurner, x+2, y-7, 60, 39, vec(-2, -25), 3, 2, []int{0, 1, 2, 1}, 8, 300, 1),
		harmful: true,
		speedM:  1.5,
	}
	s := ctx.Section
	t.aim1 = vec(t.X, t.Y)
	for i := 0; i < maxLedgeScan && !s.ObstacleAt(t.aim1.X-3, t.aim1.Y) &&
		!s.ObstacleAt(t.aim1.X-3, t.aim1.Y+8) && s.ObstacleAt(t.aim1.X-3, t.Y+t.H); i++ {
		t.aim1.X -= common.TileSize
	}
	t.aim2 = vec(t.X, t.Y)
	for i := 0; i < maxLedgeScan && !s.ObstacleAt(t.aim2.X+63, t.aim2.Y) &&
		!s.ObstacleAt(t.aim2.X+63, t.aim2.Y+8) && s.ObstacleAt(t.aim2.X+63, t.Y+t.H); i++ {
		t.aim2.X += common.TileSize
	}
	t.bind(t)
	return t, nil
}

// maxLedgeScan bounds the tiles scanned when measuring a ledge.
const maxLedgeScan = 1000

func (t *Turner) Update(ctx *sim.Context) {
	t.harmBounds = common.NewRect(t.X, t.Y-23, 60, 62)
	t.update(ctx, 0, func() {
		if t.harmful {
			if ctx.Bomb().Bounds().Intersects(t.harmBounds) {
				ctx.Bomb().Hit(1)
			}
			t.MoveFree(t.aim1, t.speedM)
			if t.Speed.X == 0 && t.Speed.Y == 0 {
				t.harmful = false
				t.Anim.Indices = []int{3, 4, 5, 4}
				t.Anim.SetFrame(3)
				ctx.Section.AddObstacle(t)
			}
			return
		}
		bb := ctx.Bomb().Body()
		t.MoveCarrying(t.aim2, t.speedM, []*physics.Body{bb}, ctx.Section.Obstacles(bb.X, bb.Y, bb.W, bb.H), ctx.Section.Ramps())
		if t.Speed.X == 0 && t.Speed.Y == 0 {
			t.harmful = true
			t.Anim.Indices = []int{0, 1, 2, 1}
			t.Anim.SetFrame(0)
			ctx.Section.RemoveObstacle(t)
		}
	})
}

func (t *Turner) HitByBomb(ctx *sim.Context) {}

func (t *Turner) HitByExplosion(ctx *sim.Context) {
	ctx.Player.AddStageScore(t.ScoreValue)
	if !t.harmful {
		ctx.Section.RemoveObstacle(t)
	}
	t.dead = true
}

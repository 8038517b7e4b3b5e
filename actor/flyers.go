package actor

import (
	"math"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
)

type FlepArgs struct {
	// Tiles is the length of the flight path.
	Tiles int `yaml:"tiles"`
}

// Flep flies back and forth along a horizontal line.
type Flep struct {
	Enemy
	movement float64
	aim      common.Vector
}

func NewFlep(ctx *sim.Context, x, y float64, args Args) (*Flep, error) {
	var a FlepArgs
	if err := decodeArgs(KindFlep, args, &a); err != nil {
		return nil, err
	}
	if a.Tiles < 1 {
		return nil, invalid(KindFlep, "tiles must be at least 1, got %d", a.Tiles)
	}
	f := &Flep{
		Enemy:    newEnemy(KindFlep, x, y, 64, 20, common.Vector{}, 1, 3, []int{0, 1, 2}, 6, 250, 2),
		movement: float64(a.Tiles * common.TileSize),
	}
	f.aim = vec(f.X-f.movement, f.Y)
	f.bind(f)
	return f, nil
}

func (f *Flep) Update(ctx *sim.Context) {
	if f.Health.Invulnerable {
		f.update(ctx, 0, nil)
		return
	}
	f.update(ctx, 0, func() {
		f.MoveFree(f.aim, 2.5)
		if f.Speed.X == 0 && f.Speed.Y == 0 {
			d := f.movement
			if f.FacingRight {
				d = -d
			}
			f.aim = vec(f.X+d, f.Y)
			f.FacingRight = !f.FacingRight
		}
	})
}

type VamepArgs struct {
	// Radius of the circle in tiles.
	Radius int     `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// Vamep circles a fixed point.
type Vamep struct {
	Enemy
	radius       float64
	angularSpeed float64
	angle        float64
	start        common.Vector
}

func NewVamep(ctx *sim.Context, x, y float64, args Args) (*Vamep, error) {
	a := VamepArgs{Radius: 1, Speed: 3}
	if err := decodeArgs(KindVamep, args, &a); err != nil {
		return nil, err
	}
	if a.Radius < 0 {
		return nil, invalid(KindVamep, "radius must not be negative, got %d", a.Radius)
	}
	v := &Vamep{
		Enemy:        newEnemy(KindVamep, x, y, 29, 22, vec(-24, -18), 2, 2, []int{0, 1, 2, 3, 2, 1}, 6, 150, 1),
		radius:       float64(a.Radius * common.TileSize),
		angularSpeed: a.Speed,
		start:        vec(x, y),
	}
	v.bind(v)
	return v, nil
}

func (v *Vamep) Update(ctx *sim.Context) {
	v.update(ctx, 0, func() {
		p := orbit(v.start, v.radius, v.angle)
		v.X, v.Y = p.X, p.Y
		v.angle += v.angularSpeed
		if v.angle >= 360 {
			v.angle = math.Mod(v.angle, 360)
		}
	})
}

// Owlep perches and drops two feathers on the bomb passing below.
type Owlep struct {
	Enemy
	attacking bool
	timer     int
}

var owlepIdle = []int{0, 0, 1, 0, 0, 0, 2}

func NewOwlep(ctx *sim.Context, x, y float64, args Args) (*Owlep, error) {
	if !present(args) {
		y -= 50
	}
	o := &Owlep{Enemy: newEnemy(KindOwlep, x-3, y-32, 38, 55, vec(-3, 0), 4, 1, owlepIdle, 60, 250, 2)}
	o.bind(o)
	return o, nil
}

func (o *Owlep) Update(ctx *sim.Context) {
	o.update(ctx, 0, func() {
		b := ctx.Bomb().Bounds()
		switch {
		case !o.attacking && b.X+b.W > o.X && b.X < o.X+o.W && b.Y > o.Y+o.H && b.Y < o.Y+common.ScreenHeight:
			ctx.Section.Add(NewProjectile(o.X+10, o.Y+10, ProjectileFeather, 90, o))
			ctx.Section.Add(NewProjectile(o.X+20, o.Y+10, ProjectileFeather, 90, o))
			o.animate([]int{0}, 0)
			o.attacking = true
			o.timer = 0
		case o.attacking:
			o.timer++
			if o.timer == 60 {
				o.animate(owlepIdle, 0)
				o.attacking = false
			}
		}
	})
}

// Zep is a flying platform that shuttles along a ledge carrying the bomb.
type Zep struct {
	Enemy
	aim1, aim2 common.Vector
	second     bool
}

func NewZep(ctx *sim.Context, x, y float64, args Args) (*Zep, error) {
	z := &Zep{Enemy: newEnemy(KindZep, x, y-18, 60, 50, vec(-38, -30), 3, 2, []int{0, 1, 2, 3, 4, 5}, 5, 400, 3)}
	s := ctx.Section
	clear := func(x float64) bool {
		return !s.ObstacleAt(x, z.Y) && !s.ObstacleAt(x, z.Y+18) &&
			!s.ObstacleAt(x, z.Y+17+common.TileSize) && s.ObstacleAt(x, z.Y+z.H)
	}
	z.aim1 = vec(z.X, z.Y)
	for i := 0; i < maxLedgeScan && clear(z.aim1.X-3); i++ {
		z.aim1.X -= common.TileSize
	}
	z.aim2 = vec(z.X, z.Y)
	for i := 0; i < maxLedgeScan && clear(z.aim2.X+65); i++ {
		z.aim2.X += common.TileSize
	}
	z.aim2.X += 4
	s.AddObstacle(z)
	z.bind(z)
	return z, nil
}

func (z *Zep) aim() common.Vector {
	if z.second {
		return z.aim2
	}
	return z.aim1
}

func (z *Zep) Update(ctx *sim.Context) {
	z.update(ctx, 0, func() {
		bb := ctx.Bomb().Body()
		z.MoveCarrying(z.aim(), 4, []*physics.Body{bb}, ctx.Section.Obstacles(bb.X, bb.Y, bb.W, bb.H), ctx.Section.Ramps())
		if z.Speed.X == 0 && z.Speed.Y == 0 {
			z.second = !z.second
			z.ImgGap.X = -24
			if z.second {
				z.ImgGap.X = -16
			}
		}
	})
}

func (z *Zep) HitByBomb(ctx *sim.Context) {}

func (z *Zep) Hit(ctx *sim.Context, amount int) {
	z.Enemy.Hit(ctx, amount)
	if z.dying {
		ctx.Section.RemoveObstacle(z)
	}
}

func (z *Zep) View(st *sim.Stage) sim.View {
	v := z.Enemy.View(st)
	v.FlipX = z.second
	return v
}

type ButterflepArgs struct {
	// Points are tile coordinates visited in order before returning home.
	Points [][2]int `yaml:"points"`
}

// Butterflep flutters through a list of points, resting a second at each.
type Butterflep struct {
	Enemy
	points []common.Vector
	moving bool
	timer  int
}

func NewButterflep(ctx *sim.Context, x, y float64, args Args) (*Butterflep, error) {
	var a ButterflepArgs
	if err := decodeArgs(KindButterflep, args, &a); err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, invalid(KindButterflep, "at least one point is required")
	}
	b := &Butterflep{Enemy: newEnemy(KindButterflep, x-12, y-12, 56, 54, vec(-4, -4), 2, 2, []int{0, 1, 2, 1}, 10, 250, 1)}
	for _, p := range a.Points {
		b.points = append(b.points, vec(float64(p[0]*common.TileSize-12), float64(p[1]*common.TileSize-12)))
	}
	b.points = append(b.points, vec(b.X, b.Y))
	b.bind(b)
	return b, nil
}

func (b *Butterflep) Update(ctx *sim.Context) {
	b.update(ctx, 0, func() {
		if b.moving {
			b.Cycle(b.points, 5)
			if b.Speed.X == 0 && b.Speed.Y == 0 {
				b.moving = false
				b.timer = 0
			}
			return
		}
		b.timer++
		if b.timer == 60 {
			b.moving = true
		}
	})
}

func (b *Butterflep) HitByBomb(ctx *sim.Context) { b.stompIfStrong(ctx) }

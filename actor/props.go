package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
)

// Section props. They are placed in sections like enemies or spawned by
// bosses, and are looked up by kind through sim.Kinded.

type GunPowderArgs struct {
	// Lifetime in seconds. Zero keeps the powder until it is used.
	Lifetime int `yaml:"lifetime"`
}

// GunPowder makes the bomb explode when touched.
type GunPowder struct {
	object
	lifetime int
	timer    int
}

func NewGunPowder(ctx *sim.Context, x, y float64, args Args) (*GunPowder, error) {
	var a GunPowderArgs
	if err := decodeArgs(KindGunPowder, args, &a); err != nil {
		return nil, err
	}
	if a.Lifetime < 0 {
		return nil, invalid(KindGunPowder, "lifetime must not be negative, got %d", a.Lifetime)
	}
	return newGunPowder(x, y, a.Lifetime*60), nil
}

func newGunPowder(x, y float64, lifetime int) *GunPowder {
	g := &GunPowder{
		object:   newObject(KindGunPowder.String(), x+3, y+19, 26, 13, vec(-2, -2), 1, 1),
		lifetime: lifetime,
	}
	return g
}

func (g *GunPowder) Update(ctx *sim.Context) {
	if g.lifetime > 0 {
		g.timer++
		if g.timer >= g.lifetime {
			g.dead = true
			return
		}
		// blink during the last two seconds
		if g.lifetime-g.timer < 120 {
			g.Alpha = 0xff
			if (g.timer/5)%2 == 0 {
				g.Alpha = 0x80
			}
		}
	}
	if b := ctx.Bomb(); b != nil && !ctx.PlayerDead() && b.Collide(g.Bounds()) {
		b.Detonate()
		ctx.PlaySound("explode")
		g.dead = true
	}
}

type WaterArgs struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Water is a body of water measured in tiles. Actors look it up with
// Section.ElementAt to know whether they are swimming.
type Water struct {
	object
}

func NewWater(ctx *sim.Context, x, y float64, args Args) (*Water, error) {
	a := WaterArgs{Width: 1, Height: 1}
	if err := decodeArgs(KindWater, args, &a); err != nil {
		return nil, err
	}
	if a.Width < 1 || a.Height < 1 {
		return nil, invalid(KindWater, "size must be at least 1x1, got %dx%d", a.Width, a.Height)
	}
	w := float64(a.Width * common.TileSize)
	h := float64(a.Height * common.TileSize)
	water := &Water{object: newObject(KindWater.String(), x, y+6, w, h-6, common.Vector{}, 1, 4)}
	water.Anim = newLoop([]int{0, 1, 2, 3}, 8)
	water.Alpha = 0xa0
	return water, nil
}

func (w *Water) Update(ctx *sim.Context) { w.Anim.Update() }

type StalactiteArgs struct {
	ID int `yaml:"id"`
	// Falling stalactites drop as soon as they are created.
	Falling bool `yaml:"falling"`
	// Big stalactites are larger and can hurt bosses.
	Big bool `yaml:"big"`
	// Manual stalactites ignore the bomb and only fall when activated.
	Manual bool `yaml:"manual"`
}

// Stalactite hangs from the ceiling until the bomb passes below it or it is
// activated, then falls and shatters on the ground.
type Stalactite struct {
	object
	id       int
	big      bool
	manual   bool
	falling  bool
	shaking  bool
	timer    int
	dying    bool
	dyeTimer int
}

func NewStalactite(ctx *sim.Context, x, y float64, args Args) (*Stalactite, error) {
	var a StalactiteArgs
	if err := decodeArgs(KindStalactite, args, &a); err != nil {
		return nil, err
	}
	return newStalactite(x, y, a), nil
}

func newStalactite(x, y float64, a StalactiteArgs) *Stalactite {
	w, h := 12.0, 36.0
	if a.Big {
		w, h = 24, 64
	}
	s := &Stalactite{
		object:  newObject(KindStalactite.String(), x+(32-w)/2, y, w, h, vec(-2, 0), 3, 1),
		id:      a.ID,
		big:     a.Big,
		manual:  a.Manual,
		falling: a.Falling,
	}
	s.tinted = true
	return s
}

func (s *Stalactite) ID() int       { return s.id }
func (s *Stalactite) Dying() bool   { return s.dying }
func (s *Stalactite) Falling() bool { return s.falling }

func (s *Stalactite) Activate(ctx *sim.Context) {
	if !s.falling && !s.dying {
		s.shaking = true
		s.timer = 0
	}
}

func (s *Stalactite) Update(ctx *sim.Context) {
	if s.dying {
		s.dyeTimer++
		s.Anim.Update()
		if s.dyeTimer >= 30 {
			s.dead = true
		}
		return
	}
	b := ctx.Bomb()
	switch {
	case s.falling:
		if s.big && ctx.Section.ActiveObject() == nil {
			ctx.Section.SetActiveObject(s)
		}
		s.MoveWithGravity(common.Vector{}, ctx.Section.Obstacles(s.X, s.Y, s.W, s.H), ctx.Section.Ramps(), common.Gravity)
		if s.Bottom != nil || s.Y > ctx.Section.Size().Y {
			s.shatter(ctx)
			return
		}
	case s.shaking:
		s.timer++
		s.X += []float64{1, -1}[s.timer%2]
		if s.timer >= 30 {
			s.shaking = false
			s.falling = true
			if s.big {
				ctx.Section.SetActiveObject(s)
			}
		}
	case !s.manual && b != nil && b.Bounds().X+b.Bounds().W > s.X-32 && b.Bounds().X < s.X+s.W+32 && b.Bounds().Y > s.Y:
		s.Activate(ctx)
	}
	if b != nil && !ctx.PlayerDead() && b.Collide(s.Bounds()) {
		b.Hit(1)
		if s.falling {
			s.shatter(ctx)
		}
	}
}

func (s *Stalactite) shatter(ctx *sim.Context) {
	if ctx.Section.ActiveObject() == sim.Actor(s) {
		ctx.Section.SetActiveObject(nil)
	}
	s.dying = true
	s.falling = false
	s.Anim = newLoop([]int{1, 2}, 15)
}

type StalactiteGeneratorArgs struct {
	ID int `yaml:"id"`
	// Width of the drop zone in tiles.
	Width int `yaml:"width"`
	// Count is how many stalactites drop per activation.
	Count int `yaml:"count"`
}

// StalactiteGenerator drops stalactites at random spots along its width
// once activated.
type StalactiteGenerator struct {
	object
	id        int
	width     int
	count     int
	remaining int
	timer     int
}

const stalactiteInterval = 60

func NewStalactiteGenerator(ctx *sim.Context, x, y float64, args Args) (*StalactiteGenerator, error) {
	a := StalactiteGeneratorArgs{Width: 10, Count: 8}
	if err := decodeArgs(KindStalactiteGenerator, args, &a); err != nil {
		return nil, err
	}
	if a.Width < 1 || a.Count < 1 {
		return nil, invalid(KindStalactiteGenerator, "width and count must be positive")
	}
	g := &StalactiteGenerator{
		object: newObject(KindStalactiteGenerator.String(), x, y, float64(a.Width*common.TileSize), common.TileSize, common.Vector{}, 1, 1),
		id:     a.ID,
		width:  a.Width,
		count:  a.Count,
	}
	return g, nil
}

func (g *StalactiteGenerator) ID() int { return g.id }

func (g *StalactiteGenerator) Activate(ctx *sim.Context) {
	g.remaining = g.count
	g.timer = 0
}

func (g *StalactiteGenerator) Active() bool { return g.remaining > 0 }

func (g *StalactiteGenerator) Update(ctx *sim.Context) {
	if g.remaining == 0 {
		return
	}
	g.timer++
	if g.timer < stalactiteInterval {
		return
	}
	g.timer = 0
	g.remaining--
	x := g.X + float64(ctx.Intn(g.width)*common.TileSize)
	ctx.Section.Add(newStalactite(x, g.Y, StalactiteArgs{Falling: true, Big: true, ID: -1}))
}

// PoisonGas is a cloud that grows in, lingers and fades, hurting the bomb
// while it is thick.
type PoisonGas struct {
	object
	lifetime int
	timer    int
}

func NewPoisonGas(x, y float64, lifetime int) *PoisonGas {
	if lifetime <= 0 {
		lifetime = 600
	}
	p := &PoisonGas{
		object:   newObject(KindPoisonGas.String(), x-24, y-24, 48, 48, common.Vector{}, 2, 2),
		lifetime: lifetime,
	}
	p.Anim = newLoop([]int{0, 1, 2, 3}, 10)
	p.Alpha = 0
	return p
}

const gasFade = 60

func (p *PoisonGas) Update(ctx *sim.Context) {
	p.timer++
	p.Anim.Update()
	switch {
	case p.timer < gasFade:
		p.Alpha = uint8(0xff * p.timer / gasFade)
	case p.lifetime-p.timer < gasFade:
		p.Alpha = uint8(0xff * max(p.lifetime-p.timer, 0) / gasFade)
	default:
		p.Alpha = 0xff
	}
	if p.timer >= p.lifetime {
		p.dead = true
		return
	}
	if p.Alpha == 0xff {
		if b := ctx.Bomb(); b != nil && !ctx.PlayerDead() && b.Collide(p.Bounds()) {
			b.Hit(1)
		}
	}
}

// Lightning marks a column for a short warning and then strikes it.
type Lightning struct {
	object
	timer int
}

const (
	lightningWarning = 60
	lightningStrike  = 30
)

func NewLightning(x, y float64) *Lightning {
	l := &Lightning{object: newObject(KindLightning.String(), x-16, y-common.ScreenHeight, 32, common.ScreenHeight, common.Vector{}, 1, 3)}
	l.Alpha = 0x60
	return l
}

// Striking reports whether the column hurts this frame.
func (l *Lightning) Striking() bool { return l.timer >= lightningWarning }

func (l *Lightning) Update(ctx *sim.Context) {
	l.timer++
	if l.timer == lightningWarning {
		l.Alpha = 0xff
		l.Anim = newLoop([]int{1, 2}, 3)
		ctx.PlaySound("thunder")
	}
	l.Anim.Update()
	if l.Striking() {
		if b := ctx.Bomb(); b != nil && !ctx.PlayerDead() && b.Collide(l.Bounds()) {
			b.Hit(1)
		}
	}
	if l.timer >= lightningWarning+lightningStrike {
		l.dead = true
	}
}

// Vortex pulls the bomb in and takes it to another entrance of the stage.
// A negative entrance finishes the stage.
type Vortex struct {
	object
	Entrance int
	timer    int
	pulling  bool
}

type VortexArgs struct {
	Entrance int `yaml:"entrance"`
}

func NewVortex(ctx *sim.Context, x, y float64, args Args) (*Vortex, error) {
	a := VortexArgs{Entrance: -1}
	if err := decodeArgs(KindVortex, args, &a); err != nil {
		return nil, err
	}
	return newVortex(x, y, a.Entrance), nil
}

func newVortex(x, y float64, entrance int) *Vortex {
	v := &Vortex{
		object:   newObject(KindVortex.String(), x, y, 54, 54, vec(-5, -5), 2, 2),
		Entrance: entrance,
	}
	v.Anim = newLoop([]int{0, 1, 2, 3}, 5)
	return v
}

func (v *Vortex) Update(ctx *sim.Context) {
	v.Anim.Update()
	v.Angle += 5
	b := ctx.Bomb()
	if b == nil || ctx.PlayerDead() {
		return
	}
	if !v.pulling && b.Collide(v.Bounds()) {
		v.pulling = true
		ctx.PlaySound("vortex")
	}
	if !v.pulling {
		return
	}
	body := b.Body()
	c := v.Center()
	body.MoveFree(vec(c.X-body.W/2, c.Y-body.H/2), 3)
	v.timer++
	if v.timer >= 60 {
		if v.Entrance < 0 {
			ctx.Section.Finish()
		} else {
			ctx.Section.Warp(v.Entrance)
		}
		v.dead = true
	}
}

type MovingWallArgs struct {
	ID int `yaml:"id"`
	// Height in tiles the wall rises when activated.
	Height int `yaml:"height"`
	// Closed walls start raised and sink when activated.
	Closed bool `yaml:"closed"`
}

// MovingWall is a solid wall that slides up or down by a number of tiles
// when activated.
type MovingWall struct {
	object
	id     int
	aim    common.Vector
	moving bool
}

func NewMovingWall(ctx *sim.Context, x, y float64, args Args) (*MovingWall, error) {
	a := MovingWallArgs{Height: 1}
	if err := decodeArgs(KindMovingWall, args, &a); err != nil {
		return nil, err
	}
	if a.Height < 1 {
		return nil, invalid(KindMovingWall, "height must be at least 1, got %d", a.Height)
	}
	h := float64(a.Height * common.TileSize)
	w := &MovingWall{
		object: newObject(KindMovingWall.String(), x+2, y+common.TileSize-h, 28, h, common.Vector{}, 1, 1),
		id:     a.ID,
	}
	w.Solid = true
	if a.Closed {
		w.aim = vec(w.X, w.Y+h)
	} else {
		w.aim = vec(w.X, w.Y-h)
	}
	ctx.Section.AddObstacle(w)
	return w, nil
}

func (w *MovingWall) ID() int { return w.id }

func (w *MovingWall) Activate(ctx *sim.Context) {
	w.moving = true
	ctx.PlaySound("wallMove")
}

func (w *MovingWall) Update(ctx *sim.Context) {
	if !w.moving {
		return
	}
	w.MoveFree(w.aim, 4)
	if w.Speed.X == 0 && w.Speed.Y == 0 {
		w.moving = false
	}
}

type BoxArgs struct {
	ID int `yaml:"id"`
}

// Box is a crate the bomb can stand on. Activated boxes drop to the ground.
type Box struct {
	object
	id      int
	falling bool
}

func NewBox(ctx *sim.Context, x, y float64, args Args) (*Box, error) {
	var a BoxArgs
	if err := decodeArgs(KindBox, args, &a); err != nil {
		return nil, err
	}
	return newBox(ctx, x, y, a.ID), nil
}

func newBox(ctx *sim.Context, x, y float64, id int) *Box {
	b := &Box{
		object: newObject(KindBox.String(), x, y, common.TileSize, common.TileSize, common.Vector{}, 1, 1),
		id:     id,
	}
	b.Solid = true
	ctx.Section.AddObstacle(b)
	return b
}

func (b *Box) ID() int { return b.id }

func (b *Box) Activate(ctx *sim.Context) { b.falling = true }

// Remove takes the box out of the section.
func (b *Box) Remove(ctx *sim.Context) {
	ctx.Section.RemoveObstacle(b)
	b.dead = true
}

func (b *Box) Update(ctx *sim.Context) {
	if !b.falling {
		return
	}
	var obst []physics.Obstacle
	for _, o := range ctx.Section.Obstacles(b.X, b.Y, b.W, b.H) {
		if o != physics.Obstacle(b) {
			obst = append(obst, o)
		}
	}
	b.MoveWithGravity(common.Vector{}, obst, ctx.Section.Ramps(), common.Gravity)
	if b.Bottom != nil {
		b.falling = false
	}
	if b.Y > ctx.Section.Size().Y {
		b.Remove(ctx)
	}
}

type FixedSpikesArgs struct {
	// Dir is where the spikes point: 0 up, 1 right, 2 down, 3 left.
	Dir int `yaml:"dir"`
}

// FixedSpikes is a solid tile with spikes on one face.
type FixedSpikes struct {
	object
	Dir int
}

func NewFixedSpikes(ctx *sim.Context, x, y float64, args Args) (*FixedSpikes, error) {
	var a FixedSpikesArgs
	if err := decodeArgs(KindFixedSpikes, args, &a); err != nil {
		return nil, err
	}
	if a.Dir < 0 || a.Dir > 3 {
		return nil, invalid(KindFixedSpikes, "dir must be 0 to 3, got %d", a.Dir)
	}
	return newFixedSpikes(ctx, x, y, a.Dir), nil
}

func newFixedSpikes(ctx *sim.Context, x, y float64, dir int) *FixedSpikes {
	s := &FixedSpikes{
		object: newObject(KindFixedSpikes.String(), x, y, common.TileSize, common.TileSize, common.Vector{}, 1, 1),
		Dir:    dir,
	}
	s.Angle = float64(dir) * 90
	s.Solid = true
	ctx.Section.AddObstacle(s)
	return s
}

// Remove takes the spikes out of the section.
func (s *FixedSpikes) Remove(ctx *sim.Context) {
	ctx.Section.RemoveObstacle(s)
	s.dead = true
}

func (s *FixedSpikes) Update(ctx *sim.Context) {
	b := ctx.Bomb()
	if b == nil || ctx.PlayerDead() {
		return
	}
	body := b.Body()
	var touching bool
	switch s.Dir {
	case 0:
		touching = body.Bottom == physics.Obstacle(s)
	case 1:
		touching = body.Left == physics.Obstacle(s)
	case 2:
		touching = body.Top == physics.Obstacle(s)
	default:
		touching = body.Right == physics.Obstacle(s)
	}
	if touching {
		b.Hit(1)
	}
}

// Package simtest provides in-memory collaborators for stepping actors in
// tests without a real section or player.
package simtest

import (
	"math/rand"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
	"gopkg.in/yaml.v3"
)

// Args is element configuration parsed from YAML text.
type Args struct {
	node yaml.Node
}

// YAML parses src as the args node of an element. It panics on malformed
// input, which is a bug in the test.
func YAML(src string) *Args {
	a := &Args{}
	if err := yaml.Unmarshal([]byte(src), &a.node); err != nil {
		panic(err)
	}
	return a
}

func (a *Args) Present() bool { return a != nil && len(a.node.Content) > 0 }

func (a *Args) Decode(v any) error { return a.node.Decode(v) }

// Section records everything actors ask of it.
type Section struct {
	SizeV       common.Vector
	Blocks      []physics.Obstacle
	RampList    []*physics.Ramp
	Added       []sim.Actor
	Effects     []sim.Actor
	Scores      []int
	Explosions  []common.Rect
	Activated   []string
	Lights      int
	Finished    bool
	WarpedTo    []int
	Active      sim.Actor
	Interacting []sim.Actor
	Fixed       *common.Vector
	Cam         common.Vector
	SpawnFunc   func(kind string, x, y float64) (sim.Actor, error)
	Elements    []sim.Actor
}

func NewSection() *Section {
	return &Section{SizeV: common.Vector{X: 2000, Y: 1000}}
}

func (s *Section) Size() common.Vector { return s.SizeV }

func (s *Section) Obstacles(x, y, w, h float64) []physics.Obstacle {
	return append([]physics.Obstacle(nil), s.Blocks...)
}

func (s *Section) AddObstacle(o physics.Obstacle) { s.Blocks = append(s.Blocks, o) }

func (s *Section) RemoveObstacle(o physics.Obstacle) {
	for i, b := range s.Blocks {
		if b == o {
			s.Blocks = append(s.Blocks[:i], s.Blocks[i+1:]...)
			return
		}
	}
}

func (s *Section) Ramps() []*physics.Ramp { return s.RampList }

func (s *Section) ObstacleAt(x, y float64) bool {
	for _, b := range s.Blocks {
		if !b.Passable() && b.Bounds().Contains(x, y) {
			return true
		}
	}
	return false
}

func (s *Section) Add(a sim.Actor)       { s.Added = append(s.Added, a) }
func (s *Section) AddEffect(a sim.Actor) { s.Effects = append(s.Effects, a) }

func (s *Section) AddScoreEffect(x, y float64, score int) { s.Scores = append(s.Scores, score) }

func (s *Section) Explode(r common.Rect) bool {
	for _, e := range s.Explosions {
		if e.Intersects(r) {
			return true
		}
	}
	return false
}

func (s *Section) ProjectileHit(r common.Rect, target any) int {
	for _, a := range s.Added {
		shot, ok := a.(sim.Shot)
		if !ok || shot.Dead() || shot.ShotOwner() == target || !shot.Bounds().Intersects(r) {
			continue
		}
		return shot.Strike()
	}
	return 0
}

func (s *Section) Camera() common.Vector { return s.Cam }

func (s *Section) SetFixedCamera(x, y float64) { s.Fixed = &common.Vector{X: x, Y: y} }
func (s *Section) UnsetFixedCamera()           { s.Fixed = nil }
func (s *Section) Finish()                     { s.Finished = true }
func (s *Section) Warp(entrance int)           { s.WarpedTo = append(s.WarpedTo, entrance) }

func (s *Section) Spawn(kind string, x, y float64) (sim.Actor, error) {
	if s.SpawnFunc == nil {
		return nil, nil
	}
	return s.SpawnFunc(kind, x, y)
}

func (s *Section) ActivateObject(kind string, id int) {
	s.Activated = append(s.Activated, kind)
	for _, e := range s.Elements {
		if a, ok := e.(sim.Activatable); ok && a.KindName() == kind && a.ID() == id {
			s.Active = e
		}
	}
}

func (s *Section) ActiveObject() sim.Actor     { return s.Active }
func (s *Section) SetActiveObject(a sim.Actor) { s.Active = a }

func (s *Section) ElementAt(kind string, x, y float64) sim.Actor {
	for _, e := range s.Elements {
		k, ok := e.(sim.Kinded)
		if ok && k.KindName() == kind && e.Bounds().Contains(x, y) {
			return e
		}
	}
	return nil
}

func (s *Section) AddLightTiles(tiles []sim.LightTile, x, y, w, h float64) { s.Lights++ }

func (s *Section) AddInteractingElement(a sim.Actor) {
	s.Interacting = append(s.Interacting, a)
}

func (s *Section) RemoveInteractingElement(a sim.Actor) {
	for i, e := range s.Interacting {
		if e == a {
			s.Interacting = append(s.Interacting[:i], s.Interacting[i+1:]...)
			return
		}
	}
}

// Bomb is a controllable stand-in for the player's bomb.
type Bomb struct {
	B        physics.Body
	Right    bool
	Kind     sim.BombType
	PowerV   int
	Life     int
	Shield   bool
	Aura     int
	AuraTime int
	Hits     int
	Bounces  []bool
	Reset    int
	Exploded bool
	// Exploding makes Explode report true for anything touching the bomb.
	Exploding bool
}

func NewBomb(x, y float64) *Bomb {
	return &Bomb{B: physics.NewBody(x, y, 20, 27), Right: true, Kind: sim.BombBlue, PowerV: 1, Life: 1}
}

func (b *Bomb) Body() *physics.Body { return &b.B }
func (b *Bomb) Bounds() common.Rect { return b.B.Bounds() }
func (b *Bomb) FacingRight() bool   { return b.Right }
func (b *Bomb) Type() sim.BombType  { return b.Kind }
func (b *Bomb) Power() int          { return b.PowerV }
func (b *Bomb) HP() int             { return b.Life }
func (b *Bomb) SetHP(hp int)        { b.Life = hp }
func (b *Bomb) Dead() bool          { return b.Life <= 0 }
func (b *Bomb) Shielded() bool      { return b.Shield }
func (b *Bomb) SetShielded(v bool)  { b.Shield = v }
func (b *Bomb) ResetCooldown()      { b.Reset++ }
func (b *Bomb) Detonate()           { b.Exploded = true }
func (b *Bomb) Bounce(hit bool)     { b.Bounces = append(b.Bounces, hit) }
func (b *Bomb) Collide(r common.Rect) bool {
	return b.Bounds().Intersects(r)
}

func (b *Bomb) SetAura(kind, duration int) {
	b.Aura = kind
	b.AuraTime = duration
}

func (b *Bomb) Over(r common.Rect, tolerance float64) bool {
	if tolerance <= 0 {
		tolerance = common.OverTolerance
	}
	bottom := b.B.Y + b.B.H
	return b.B.X+b.B.W > r.X && b.B.X < r.X+r.W && bottom >= r.Y && bottom <= r.Y+tolerance && b.B.Speed.Y >= 0
}

func (b *Bomb) Explode(r common.Rect) bool {
	return b.Exploding && b.Bounds().Intersects(r)
}

func (b *Bomb) Hit(damage int) {
	b.Hits += damage
}

// Player owns a Bomb and keeps its tallies in memory.
type Player struct {
	B      *Bomb
	IsDead bool
	Score  int
	Items  []*sim.Switch
	Specs  map[string]bool
}

func NewPlayer(b *Bomb) *Player {
	return &Player{B: b, Specs: map[string]bool{}}
}

func (p *Player) Bomb() sim.Bomb              { return p.B }
func (p *Player) Dead() bool                  { return p.IsDead }
func (p *Player) StageScore() int             { return p.Score }
func (p *Player) AddStageScore(n int)         { p.Score += n }
func (p *Player) AddItem(sw *sim.Switch)      { p.Items = append(p.Items, sw) }
func (p *Player) HasSpec(stageID string) bool { return p.Specs[stageID] }

// Input holds the keys pressed and held this frame.
type Input struct {
	PressedKeys map[sim.Key]bool
	DownKeys    map[sim.Key]bool
}

func (in *Input) Pressed(k sim.Key) bool { return in.PressedKeys[k] }
func (in *Input) Down(k sim.Key) bool    { return in.DownKeys[k] }

// Press marks k as pressed for the next frames until Release.
func (in *Input) Press(k sim.Key) {
	if in.PressedKeys == nil {
		in.PressedKeys = map[sim.Key]bool{}
	}
	in.PressedKeys[k] = true
}

func (in *Input) Release(k sim.Key) { delete(in.PressedKeys, k) }

// Audio records what was played.
type Audio struct {
	Sounds []string
	Songs  []string
}

func (a *Audio) PlaySound(id string) { a.Sounds = append(a.Sounds, id) }
func (a *Audio) PlaySong(id string)  { a.Songs = append(a.Songs, id) }

// Played reports whether id was played as a sound.
func (a *Audio) Played(id string) bool {
	for _, s := range a.Sounds {
		if s == id {
			return true
		}
	}
	return false
}

// World bundles a context with its fakes.
type World struct {
	Ctx     *sim.Context
	Section *Section
	Player  *Player
	Bomb    *Bomb
	Input   *Input
	Audio   *Audio
}

// NewWorld builds a context with the bomb at (bx, by), far from anything
// unless placed otherwise, and a seeded random source.
func NewWorld(bx, by float64) *World {
	w := &World{
		Section: NewSection(),
		Bomb:    NewBomb(bx, by),
		Input:   &Input{},
		Audio:   &Audio{},
	}
	w.Player = NewPlayer(w.Bomb)
	w.Ctx = &sim.Context{
		Section: w.Section,
		Player:  w.Player,
		Stage:   sim.NewStage("test"),
		Input:   w.Input,
		Audio:   w.Audio,
		Rand:    rand.New(rand.NewSource(1)),
	}
	return w
}

// Step updates a n times, advancing the frame counter.
func (w *World) Step(a sim.Actor, n int) {
	for range n {
		w.Ctx.Frame++
		a.Update(w.Ctx)
	}
}

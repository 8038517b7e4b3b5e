// Package sim holds the contracts shared by everything stepped inside a
// section: the actor interface, the collaborators actors call into and the
// per-frame context passed to every update.
package sim

import (
	"math/rand"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/physics"
)

// Actor is anything owned and stepped by a section.
type Actor interface {
	Update(ctx *Context)
	Dead() bool
	Bounds() common.Rect
}

// StopTimeImmune is implemented by actors that keep running while time is
// stopped.
type StopTimeImmune interface {
	StopTimeImmune() bool
}

// LightTile is one cell of a light pattern, offset in tiles from the
// emitting actor, with the darkness it leaves (0 is fully lit).
type LightTile struct {
	DX, DY int
	Alpha  int
}

// Section is the level area an actor lives in.
type Section interface {
	Size() common.Vector
	Obstacles(x, y, w, h float64) []physics.Obstacle
	AddObstacle(o physics.Obstacle)
	RemoveObstacle(o physics.Obstacle)
	Ramps() []*physics.Ramp
	ObstacleAt(x, y float64) bool

	Add(a Actor)
	AddEffect(a Actor)
	AddScoreEffect(x, y float64, score int)

	// Explode reports whether a section-level explosion covers r.
	Explode(r common.Rect) bool
	// ProjectileHit returns the type of a projectile not owned by target
	// that overlaps r, or 0.
	ProjectileHit(r common.Rect, target any) int

	Camera() common.Vector
	SetFixedCamera(x, y float64)
	UnsetFixedCamera()
	Finish()
	// Warp sends the bomb to another entrance of the stage.
	Warp(entrance int)
	// Spawn builds the element registered under kind without adding it to
	// the section.
	Spawn(kind string, x, y float64) (Actor, error)

	// ActivateObject triggers the element of kind with the given id and
	// makes it the active object.
	ActivateObject(kind string, id int)
	// ActiveObject is the element the bomb can currently interact with,
	// such as a door it stands in front of, or nil.
	ActiveObject() Actor
	SetActiveObject(a Actor)
	ElementAt(kind string, x, y float64) Actor
	AddLightTiles(tiles []LightTile, x, y, w, h float64)
	AddInteractingElement(a Actor)
	RemoveInteractingElement(a Actor)
}

// BombType is the elemental class of the bomb.
type BombType int

const (
	BombAny BombType = iota
	BombBlue
	BombRed
	BombYellow
	BombGreen
	BombWhite
)

var bombTypeNames = map[BombType]string{
	BombAny:    "any",
	BombBlue:   "blue",
	BombRed:    "red",
	BombYellow: "yellow",
	BombGreen:  "green",
	BombWhite:  "white",
}

func (t BombType) String() string {
	if s, ok := bombTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// ParseBombType maps a name to a BombType.
func ParseBombType(s string) (BombType, bool) {
	for t, name := range bombTypeNames {
		if name == s {
			return t, true
		}
	}
	return BombAny, false
}

// Bomb is the player's avatar as seen by actors.
type Bomb interface {
	Body() *physics.Body
	Bounds() common.Rect
	FacingRight() bool
	Type() BombType
	Power() int
	HP() int
	SetHP(hp int)
	Dead() bool

	// Over reports whether the bomb is landing on r. A tolerance <= 0 uses
	// common.OverTolerance.
	Over(r common.Rect, tolerance float64) bool
	Collide(r common.Rect) bool
	Explode(r common.Rect) bool

	Bounce(hit bool)
	Hit(damage int)
	// Detonate makes the bomb explode where it stands.
	Detonate()
	Shielded() bool
	SetShielded(v bool)
	SetAura(kind, duration int)
	ResetCooldown()
}

// Player owns the bomb and the per-stage tallies.
type Player interface {
	Bomb() Bomb
	Dead() bool
	StageScore() int
	AddStageScore(n int)
	AddItem(sw *Switch)
	HasSpec(stageID string) bool
}

// Key is a logical input.
type Key int

const (
	KeyConfirm Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyJump
	KeyItem
)

type Input interface {
	// Pressed reports a key that went down this frame.
	Pressed(k Key) bool
	Down(k Key) bool
}

type Audio interface {
	PlaySound(id string)
	PlaySong(id string)
}

// Context is passed to every update call.
type Context struct {
	Section Section
	Player  Player
	Stage   *Stage
	Input   Input
	Audio   Audio
	Rand    *rand.Rand
	Frame   int
}

func (c *Context) Bomb() Bomb {
	if c == nil || c.Player == nil {
		return nil
	}
	return c.Player.Bomb()
}

func (c *Context) PlayerDead() bool {
	return c == nil || c.Player == nil || c.Player.Dead()
}

func (c *Context) Pressed(k Key) bool {
	return c != nil && c.Input != nil && c.Input.Pressed(k)
}

func (c *Context) Down(k Key) bool {
	return c != nil && c.Input != nil && c.Input.Down(k)
}

func (c *Context) PlaySound(id string) {
	if c != nil && c.Audio != nil {
		c.Audio.PlaySound(id)
	}
}

func (c *Context) PlaySong(id string) {
	if c != nil && c.Audio != nil {
		c.Audio.PlaySong(id)
	}
}

// Intn returns a random int in [0, n), or 0 when n <= 0.
func (c *Context) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if c == nil || c.Rand == nil {
		return rand.Intn(n)
	}
	return c.Rand.Intn(n)
}

// Float returns a random float in [0, 1).
func (c *Context) Float() float64 {
	if c == nil || c.Rand == nil {
		return rand.Float64()
	}
	return c.Rand.Float64()
}

// Stopped reports whether time is stopped for a, honoring immunity.
func (c *Context) Stopped(a Actor) bool {
	if c == nil || c.Stage == nil || c.Stage.Stopped == StopNone {
		return false
	}
	if im, ok := a.(StopTimeImmune); ok && im.StopTimeImmune() {
		return false
	}
	return true
}

// Kinded is implemented by section elements that can be looked up by kind
// name, such as with Section.ElementAt.
type Kinded interface {
	KindName() string
}

// Activatable elements are triggered by other elements through
// Section.ActivateObject. ID is the element's index among those of its kind.
type Activatable interface {
	Kinded
	ID() int
	Activate(ctx *Context)
}

// Blast is an effect that destroys what it covers.
type Blast interface {
	Covers(r common.Rect) bool
}

// Shot is a projectile as seen by the section when resolving hits.
type Shot interface {
	Bounds() common.Rect
	Dead() bool
	ShotOwner() any
	// Strike consumes the shot, unless it passes through targets, and
	// returns its type.
	Strike() int
}

// Package player implements the bomb the player controls and the player
// record that survives across sections: lives, score and inventory.
package player

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
)

const (
	bombWidth  = 20
	bombHeight = 27

	walkForce    = 0.5
	brakeFactor  = 0.3
	jumpCutSpeed = 4.0
	bounceSpeed  = 10.0
	// bounceBoost is added to a bounce while jump is held.
	bounceBoost = 4.0

	explosionRadius = 90
	explosionFrames = 36
	dashForce       = 12
	stopTimeFrames  = 300
)

var (
	animIdle = []int{0, 1, 0, 2}
	animRun  = []int{3, 4, 5, 4}
	animJump = []int{6}
	animFall = []int{7}
	animDead = []int{8}
)

type ability int

const (
	abilityNone ability = iota
	abilityDetonate
	abilityDash
	abilityStopTime
)

type stats struct {
	name     string
	hp       int
	power    int
	speed    float64
	jump     float64
	ability  ability
	cooldown int
	// radius of the bomb's own explosion.
	radius float64
}

var bombStats = map[sim.BombType]stats{
	sim.BombBlue:   {name: "Bomba Azul", hp: 1, power: 1, speed: 4, jump: 13.7},
	sim.BombRed:    {name: "Bomba Vermelha", hp: 2, power: 2, speed: 4, jump: 13.7, ability: abilityDetonate, cooldown: 300, radius: explosionRadius},
	sim.BombYellow: {name: "Bomba Amarela", hp: 1, power: 1, speed: 6, jump: 13.7, ability: abilityDash, cooldown: 120},
	sim.BombGreen:  {name: "Bomba Verde", hp: 2, power: 1, speed: 4, jump: 16, ability: abilityDetonate, cooldown: 600, radius: explosionRadius * 4 / 3},
	sim.BombWhite:  {name: "Bomba Branca", hp: 2, power: 1, speed: 4.5, jump: 14, ability: abilityStopTime, cooldown: 1200},
}

// body is embedded under a lower-case name so Bomb can expose Body().
type body = physics.Body

// Bomb is the avatar moved by input. It implements sim.Bomb.
type Bomb struct {
	body
	Health component.Health

	kind        sim.BombType
	stats       stats
	facingRight bool
	shielded    bool
	aura        int
	auraTimer   int
	cooldown    int

	exploding int
	blastAt   common.Vector
	blastSize float64

	bounced   bool
	bounceHit bool

	state      bombState
	forces     common.Vector
	jumpBuffer int
	coyote     int
	anim       component.Animation
	sounds     []string
}

var _ sim.Bomb = (*Bomb)(nil)

// NewBomb creates a bomb of kind with full health at (x, y). Unknown kinds
// fall back to blue.
func NewBomb(kind sim.BombType, x, y float64) *Bomb {
	st, ok := bombStats[kind]
	if !ok {
		kind, st = sim.BombBlue, bombStats[sim.BombBlue]
	}
	b := &Bomb{
		body:        physics.NewBody(x, y, bombWidth, bombHeight),
		Health:      component.NewHealth(st.hp),
		kind:        kind,
		stats:       st,
		facingRight: true,
		anim:        component.NewAnimation(animIdle, 10),
	}
	b.MaxSpeed = common.Vector{X: st.speed, Y: 15}
	b.state = stateFalling
	return b
}

func (b *Bomb) Body() *physics.Body { return &b.body }
func (b *Bomb) FacingRight() bool   { return b.facingRight }
func (b *Bomb) Type() sim.BombType  { return b.kind }
func (b *Bomb) Name() string        { return b.stats.name }
func (b *Bomb) Power() int          { return b.stats.power }
func (b *Bomb) HP() int             { return b.Health.HP }
func (b *Bomb) MaxHP() int          { return b.stats.hp }
func (b *Bomb) Dead() bool          { return b.Health.HP <= 0 }
func (b *Bomb) Shielded() bool      { return b.shielded }
func (b *Bomb) SetShielded(v bool)  { b.shielded = v }
func (b *Bomb) Cooldown() int       { return b.cooldown }
func (b *Bomb) ResetCooldown()      { b.cooldown = 0 }
func (b *Bomb) StateName() string   { return b.state.Name() }

// SetHP sets the health, capped at twice the kind's maximum.
func (b *Bomb) SetHP(hp int) {
	b.Health.HP = min(hp, 2*b.stats.hp)
}

// SetAura surrounds the bomb with a damaging aura for duration frames.
func (b *Bomb) SetAura(kind, duration int) {
	b.aura = kind
	b.auraTimer = duration
}

func (b *Bomb) Aura() int {
	if b.auraTimer <= 0 {
		return 0
	}
	return b.aura
}

// Over reports whether the bomb is falling onto r, its feet no deeper
// than tolerance below r's top.
func (b *Bomb) Over(r common.Rect, tolerance float64) bool {
	if tolerance <= 0 {
		tolerance = common.OverTolerance
	}
	bottom := b.Y + b.H
	return b.Speed.Y >= 0 &&
		b.X+b.W > r.X && b.X < r.Right() &&
		bottom >= r.Y && bottom <= r.Y+tolerance
}

func (b *Bomb) Collide(r common.Rect) bool {
	return !b.Dead() && b.Bounds().Intersects(r)
}

// Explode reports whether the bomb's explosion or aura reaches r.
func (b *Bomb) Explode(r common.Rect) bool {
	if b.Aura() > 0 && b.Bounds().Intersects(r) {
		return true
	}
	if b.exploding <= 0 {
		return false
	}
	dx := b.blastAt.X - cp.Clamp(b.blastAt.X, r.X, r.Right())
	dy := b.blastAt.Y - cp.Clamp(b.blastAt.Y, r.Y, r.Bottom())
	return dx*dx+dy*dy <= b.blastSize*b.blastSize
}

// Blast returns the center and radius of the current explosion.
func (b *Bomb) Blast() (common.Vector, float64, bool) {
	return b.blastAt, b.blastSize, b.exploding > 0
}

// Bounce makes the bomb spring off something it landed on. hit tells
// whether the landing did damage.
func (b *Bomb) Bounce(hit bool) {
	b.bounced = true
	b.bounceHit = b.bounceHit || hit
}

// Hit takes damage unless the bomb is invulnerable or has an aura. A
// shield absorbs one hit.
func (b *Bomb) Hit(damage int) {
	if b.Dead() || b.Health.Invulnerable || b.Aura() > 0 || damage <= 0 {
		return
	}
	if b.shielded {
		b.shielded = false
		b.Health.StartIFrames()
		b.queueSound("shieldBreak")
		return
	}
	if b.Health.Damage(damage) {
		b.Health.HP = 0
		b.die()
		return
	}
	b.Health.StartIFrames()
	b.queueSound("hurt")
}

// Detonate makes the bomb explode where it stands. The blast hurts
// everything around except the bomb.
func (b *Bomb) Detonate() {
	b.detonate(max(b.stats.radius, explosionRadius))
}

func (b *Bomb) detonate(radius float64) {
	b.exploding = explosionFrames
	b.blastAt = b.Center()
	b.blastSize = radius
	b.queueSound("explode")
}

func (b *Bomb) die() {
	b.Speed = common.Vector{}
	b.StoredForces = common.Vector{}
	b.anim.Play(animDead, 1)
	b.anim.SetFrame(animDead[0])
	b.queueSound("die")
}

func (b *Bomb) queueSound(id string) { b.sounds = append(b.sounds, id) }

// Update moves the bomb by one frame according to input.
func (b *Bomb) Update(ctx *sim.Context) {
	b.flushSounds(ctx)
	if b.Dead() {
		return
	}
	b.tick()

	if b.bounced {
		b.applyBounce(ctx)
	}
	b.state.HandleInput(b, ctx)
	b.useAbility(ctx)

	sec := ctx.Section
	b.Move(b.forces, sec.Obstacles(b.X, b.Y, b.W, b.H), sec.Ramps())
	b.forces = common.Vector{}
	b.state.OnPhysics(b, ctx)

	if b.exploding > 0 {
		b.blastAt = b.Center()
	}
	if b.Y > sec.Size().Y {
		b.Health.HP = 0
		b.die()
	}
	b.anim.Update()
	b.flushSounds(ctx)
}

func (b *Bomb) tick() {
	b.Health.Tick()
	if b.auraTimer > 0 {
		b.auraTimer--
	}
	if b.cooldown > 0 {
		b.cooldown--
	}
	if b.exploding > 0 {
		b.exploding--
	}
	if b.jumpBuffer > 0 {
		b.jumpBuffer--
	}
	if b.coyote > 0 {
		b.coyote--
	}
}

func (b *Bomb) applyBounce(ctx *sim.Context) {
	speed := bounceSpeed
	if ctx.Down(sim.KeyJump) {
		speed += bounceBoost
	}
	b.Speed.Y = -speed
	b.setState(stateJumpingNoImpulse)
	if b.bounceHit {
		b.queueSound("stomp")
	} else {
		b.queueSound("bounce")
	}
	b.bounced, b.bounceHit = false, false
}

// stateJumpingNoImpulse rises with whatever speed the bomb already has.
var stateJumpingNoImpulse bombState = bounceState{}

type bounceState struct{ jumpingState }

func (bounceState) Enter(b *Bomb) { b.anim.Play(animJump, 5) }

func (bounceState) HandleInput(b *Bomb, ctx *sim.Context) {
	if ctx.Pressed(sim.KeyJump) {
		b.jumpBuffer = jumpBufferFrames
	}
}

// useAbility triggers the kind's special move with Down while on the
// ground.
func (b *Bomb) useAbility(ctx *sim.Context) {
	if b.stats.ability == abilityNone || b.cooldown > 0 || !ctx.Pressed(sim.KeyDown) {
		return
	}
	switch b.stats.ability {
	case abilityDetonate:
		b.detonate(b.stats.radius)
	case abilityDash:
		dir := 1.0
		if !b.facingRight {
			dir = -1
		}
		b.StoredForces.X += dir * dashForce
		b.queueSound("dash")
	case abilityStopTime:
		ctx.Stage.StopTime(stopTimeFrames, sim.StopEnemies)
		b.queueSound("stopTime")
	}
	b.cooldown = b.stats.cooldown
}

func (b *Bomb) flushSounds(ctx *sim.Context) {
	for _, s := range b.sounds {
		ctx.PlaySound(s)
	}
	b.sounds = b.sounds[:0]
}

func (b *Bomb) moveX(ctx *sim.Context) float64 {
	var x float64
	if ctx.Down(sim.KeyLeft) {
		x--
	}
	if ctx.Down(sim.KeyRight) {
		x++
	}
	return x
}

func (b *Bomb) wantsJump(ctx *sim.Context) bool {
	return ctx.Pressed(sim.KeyJump) || b.jumpBuffer > 0
}

func (b *Bomb) walk(ctx *sim.Context) {
	x := b.moveX(ctx)
	if x == 0 {
		b.brake()
		return
	}
	b.facingRight = x > 0
	b.forces.X += x * walkForce
}

func (b *Bomb) brake() {
	if b.Speed.X == 0 {
		return
	}
	if math.Abs(b.Speed.X) <= walkForce {
		b.Speed.X = 0
		return
	}
	b.forces.X -= b.Speed.X * brakeFactor
}

// View draws the bomb blinking while invulnerable.
func (b *Bomb) View(st *sim.Stage) sim.View {
	return sim.View{
		Name:   "Bomb_" + b.kind.String(),
		Rect:   b.Bounds(),
		Frame:  b.anim.Index,
		FlipX:  !b.facingRight,
		Hidden: b.Health.Blinking(),
		Color:  0xffffff,
		Alpha:  0xff,
	}
}

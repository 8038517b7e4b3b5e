// Package actor implements the enemies of a section and the objects they
// spawn: projectiles, effects and section props.
package actor

import (
	"math"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
)

// dyingTime is how many frames a dying enemy lingers before it is removed.
const dyingTime = 150

// Sprite is the sheet layout of an enemy. W and H are the on-screen size of
// one frame.
type Sprite struct {
	Cols, Rows int
	W, H       float64
}

func (s Sprite) Frames() int {
	if s.Cols*s.Rows <= 0 {
		return 1
	}
	return s.Cols * s.Rows
}

// hooks are the responses a kind may override by declaring a method with
// the same name on its own type.
type hooks interface {
	Bounds() common.Rect
	HitByBomb(ctx *sim.Context)
	HitByExplosion(ctx *sim.Context)
	HitByProjectile(ctx *sim.Context)
	Hit(ctx *sim.Context, amount int)
}

// Enemy is the state and protocol shared by every enemy kind.
type Enemy struct {
	physics.Body

	Kind        Kind
	Sprite      Sprite
	ImgGap      common.Vector
	Anim        component.Animation
	Health      component.Health
	ScoreValue  int
	FacingRight bool

	Walker *Walker
	Boss   *BossState

	active common.Rect
	dying  bool
	dead   bool

	self hooks
}

func newEnemy(kind Kind, x, y, w, h float64, gap common.Vector, cols, rows int, indices []int, interval, score, hp int) Enemy {
	sw := w - 2*gap.X
	sh := h - gap.Y
	e := Enemy{
		Body:       physics.NewBody(x, y, w, h),
		Kind:       kind,
		Sprite:     Sprite{Cols: cols, Rows: rows, W: math.Max(sw, 1), H: math.Max(sh, 1)},
		ImgGap:     gap,
		Anim:       component.NewAnimation(indices, interval),
		Health:     component.NewHealth(hp),
		ScoreValue: score,
	}
	e.active = common.NewRect(x+gap.X, y+gap.Y, e.Sprite.W, e.Sprite.H)
	return e
}

// bind points the base protocol at the concrete kind so its overrides are
// used. Every constructor calls it on the value it returns.
func (e *Enemy) bind(self hooks) {
	e.self = self
}

func (e *Enemy) hooks() hooks {
	if e.self != nil {
		return e.self
	}
	return e
}

func (e *Enemy) Dead() bool                { return e.dead }
func (e *Enemy) Dying() bool               { return e.dying }
func (e *Enemy) HP() int                   { return e.Health.HP }
func (e *Enemy) Invulnerable() bool        { return e.Health.Invulnerable }
func (e *Enemy) Score() int                { return e.ScoreValue }
func (e *Enemy) ActiveBounds() common.Rect { return e.active }
func (e *Enemy) Kill()                     { e.dead = true }
func (e *Enemy) KindName() string          { return e.Kind.String() }

// SetActiveBounds grows the active rectangle over the current sprite
// rectangle, or marks the enemy dead once the sprite leaves the section.
func (e *Enemy) SetActiveBounds(ctx *sim.Context) {
	t := math.Floor(e.Y + e.ImgGap.Y)
	r := math.Ceil(e.X + e.ImgGap.X + e.Sprite.W)
	b := math.Ceil(e.Y + e.ImgGap.Y + e.Sprite.H)
	l := math.Floor(e.X + e.ImgGap.X)

	size := ctx.Section.Size()
	if t > size.Y || r < 0 || b < common.TopMargin || l > size.X {
		e.dead = true
		return
	}
	e.active = e.active.Union(common.NewRect(l, t, r-l, b-t))
}

// update runs the shared per-frame protocol around block, the kind's own
// movement and attack logic.
func (e *Enemy) update(ctx *sim.Context, tolerance float64, block func()) {
	if e.dying {
		e.Health.Timer++
		if e.Health.Timer == dyingTime {
			e.dead = true
		}
		if e.Anim.AtLast() {
			return
		}
		e.Anim.Update()
		return
	}

	h := e.hooks()
	if !ctx.PlayerDead() {
		b := ctx.Bomb()
		bounds := h.Bounds()
		if b.Over(bounds, tolerance) {
			h.HitByBomb(ctx)
		} else if b.Collide(bounds) {
			b.Hit(1)
		}
		if !e.dying && !e.Health.Invulnerable {
			if b.Explode(bounds) || ctx.Section.Explode(bounds) {
				h.HitByExplosion(ctx)
			} else if p := ctx.Section.ProjectileHit(bounds, e.hooks()); damaging(p) {
				h.HitByProjectile(ctx)
			}
		}
	}

	if e.dying {
		return
	}

	e.Health.Tick()

	if block != nil {
		block()
	}

	e.SetActiveBounds(ctx)
	e.Anim.Update()
}

// Update is the behavior of an enemy with no logic of its own.
func (e *Enemy) Update(ctx *sim.Context) {
	e.update(ctx, 0, nil)
}

func (e *Enemy) HitByBomb(ctx *sim.Context) {
	b := ctx.Bomb()
	b.Bounce(!e.Health.Invulnerable)
	if !e.Health.Invulnerable {
		e.hooks().Hit(ctx, b.Power())
	}
}

// HitByExplosion always finishes off an enemy with one point left.
func (e *Enemy) HitByExplosion(ctx *sim.Context) {
	if e.dying || e.dead {
		return
	}
	e.Health.HP = 1
	e.hooks().Hit(ctx, 1)
}

func (e *Enemy) HitByProjectile(ctx *sim.Context) {
	e.hooks().Hit(ctx, 1)
}

func (e *Enemy) Hit(ctx *sim.Context, amount int) {
	if e.dying || e.dead {
		return
	}
	if e.Health.Damage(amount) {
		ctx.Player.AddStageScore(e.ScoreValue)
		ctx.Section.AddScoreEffect(e.X+e.W/2, e.Y, e.ScoreValue)
		e.die()
		return
	}
	e.Health.StartIFrames()
}

func (e *Enemy) die() {
	e.dying = true
	e.Health.Invulnerable = false
	e.Health.Timer = 0
	last := e.Sprite.Frames() - 1
	e.Anim.Indices = []int{last}
	e.Anim.SetFrame(last)
}

// View draws the enemy blinking while invulnerable and tinted while time is
// stopped.
func (e *Enemy) View(st *sim.Stage) sim.View {
	v := sim.View{
		Name:   e.Kind.String(),
		Rect:   common.NewRect(e.X+e.ImgGap.X, e.Y+e.ImgGap.Y, e.Sprite.W, e.Sprite.H),
		Frame:  e.Anim.Index,
		FlipX:  e.FacingRight,
		Hidden: e.Health.Blinking(),
		Color:  0xffffff,
		Alpha:  0xff,
	}
	if st.StopTint() {
		v.Color = sim.StopTintColor
	}
	return v
}

// centerX and friends are shorthands used by many kinds.
func (e *Enemy) centerX() float64 { return e.X + e.W/2 }
func (e *Enemy) centerY() float64 { return e.Y + e.H/2 }

func (e *Enemy) obstacles(ctx *sim.Context) []physics.Obstacle {
	return ctx.Section.Obstacles(e.X, e.Y, e.W, e.H)
}

func damaging(projectileType int) bool {
	return projectileType != 0 && projectileType != ProjectileNote
}

// animate switches to a new sequence and shows its first index. A zero
// interval keeps the current one.
func (e *Enemy) animate(indices []int, interval int) {
	e.Anim.Indices = indices
	if interval > 0 {
		e.Anim.Interval = interval
	}
	e.Anim.SetFrame(indices[0])
}

// stompIfStrong is the bomb response of armored kinds: only a bomb with
// more than one point of power can stomp them.
func (e *Enemy) stompIfStrong(ctx *sim.Context) {
	b := ctx.Bomb()
	if b.Power() > 1 {
		b.Bounce(true)
		e.hooks().Hit(ctx, 1)
		return
	}
	b.Hit(1)
}

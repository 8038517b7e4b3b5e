package actor

import (
	"strconv"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

// Projectile types. The bomb's own shots use the low numbers.
const (
	ProjectileBlue    = 1
	ProjectileSpit    = 2
	ProjectileFeather = 3
	ProjectileRed     = 4
	ProjectileSpark   = 5
	ProjectileRock    = 6
	ProjectileFlame   = 7
	// ProjectileNote is a sound wave: it hurts the bomb but passes through
	// everything else.
	ProjectileNote  = 8
	ProjectileFrost = 9
	ProjectileLeaf  = 10
	ProjectileStar  = 11
	ProjectileArrow = 12
	ProjectileOrb   = 13
)

type projectileSpec struct {
	w, h    float64
	speed   float64
	cols    int
	rows    int
	indices []int
	// ghost projectiles fly through walls.
	ghost bool
}

var projectileSpecs = map[int]projectileSpec{
	ProjectileBlue:    {w: 20, h: 12, speed: 6, cols: 2, rows: 1, indices: []int{0, 1}},
	ProjectileSpit:    {w: 8, h: 8, speed: 4, cols: 3, rows: 1, indices: []int{0, 1, 2, 1}},
	ProjectileFeather: {w: 6, h: 16, speed: 5, cols: 1, rows: 1, indices: []int{0}},
	ProjectileRed:     {w: 16, h: 24, speed: 7, cols: 2, rows: 1, indices: []int{0, 1}},
	ProjectileSpark:   {w: 10, h: 10, speed: 5, cols: 2, rows: 1, indices: []int{0, 1}},
	ProjectileRock:    {w: 16, h: 16, speed: 4, cols: 1, rows: 1, indices: []int{0}},
	ProjectileFlame:   {w: 14, h: 14, speed: 4, cols: 3, rows: 1, indices: []int{0, 1, 2}},
	ProjectileNote:    {w: 16, h: 16, speed: 3, cols: 2, rows: 1, indices: []int{0, 1}, ghost: true},
	ProjectileFrost:   {w: 8, h: 8, speed: 8, cols: 2, rows: 1, indices: []int{0, 1}},
	ProjectileLeaf:    {w: 12, h: 8, speed: 4, cols: 2, rows: 1, indices: []int{0, 1}},
	ProjectileStar:    {w: 20, h: 10, speed: 6, cols: 2, rows: 1, indices: []int{0, 1}},
	ProjectileArrow:   {w: 16, h: 6, speed: 7, cols: 1, rows: 1, indices: []int{0}},
	ProjectileOrb:     {w: 16, h: 16, speed: 3.5, cols: 2, rows: 2, indices: []int{0, 1, 2, 3}, ghost: true},
}

// Projectile flies in a straight line at a fixed angle until it hits a wall,
// a target or leaves the section.
type Projectile struct {
	object
	Type  int
	Owner any
	speed float64
	ghost bool
}

// NewProjectile spawns a projectile of typ flying at angle degrees, where 0
// points right and 90 points down.
func NewProjectile(x, y float64, typ int, angle float64, owner any) *Projectile {
	spec, ok := projectileSpecs[typ]
	if !ok {
		spec = projectileSpecs[ProjectileSpit]
	}
	p := &Projectile{
		object: newObject(projectileName(typ), x, y, spec.w, spec.h, common.Vector{}, spec.cols, spec.rows),
		Type:   typ,
		Owner:  owner,
		speed:  spec.speed,
		ghost:  spec.ghost,
	}
	p.Angle = angle
	p.Anim = newLoop(spec.indices, 5)
	return p
}

func projectileName(typ int) string {
	return "Projectile" + strconv.Itoa(typ)
}

func (p *Projectile) Update(ctx *sim.Context) {
	p.MoveAngle(p.Angle, p.speed)
	p.Anim.Update()

	size := ctx.Section.Size()
	if p.X+p.W < 0 || p.X > size.X || p.Y+p.H < common.TopMargin || p.Y > size.Y {
		p.dead = true
		return
	}
	if !p.ghost && ctx.Section.ObstacleAt(p.X+p.W/2, p.Y+p.H/2) {
		p.dead = true
		return
	}
	if b := ctx.Bomb(); b != nil && p.Owner != any(b) && !ctx.PlayerDead() && b.Collide(p.Bounds()) {
		b.Hit(1)
		p.dead = true
	}
}

// Strike is called by the section when the projectile reaches a target. It
// reports the projectile type and removes the projectile unless it passes
// through targets.
func (p *Projectile) Strike() int {
	if p.Type != ProjectileNote {
		p.dead = true
	}
	return p.Type
}

func (p *Projectile) ShotOwner() any { return p.Owner }

package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/sim"
)

const (
	chamalXOffset    = 224
	chamalWalkAmount = 96
)

// Chamal paces between two limits, calls in falling Wheeliams every third
// pace and drops gun powder once they are all gone. Only explosions hurt it.
type Chamal struct {
	Enemy
	leftLimit, rightLimit float64
	spawnPoints           []common.Vector
	spawns                []*Wheeliam
	respawned             bool
	gunPowder             *GunPowder
	turn                  int
	speedM                float64
	moving                bool
	aim                   common.Vector
	timer                 int
}

func NewChamal(ctx *sim.Context, x, y float64, args Args) (*Chamal, error) {
	c := &Chamal{
		Enemy:  newEnemy(KindChamal, x-25, y-74, 82, 106, vec(-16, -8), 3, 1, []int{0, 1, 0, 2}, 7, 1000, 3),
		turn:   2,
		speedM: 3,
	}
	c.leftLimit = c.X - chamalXOffset
	c.rightLimit = c.X + chamalXOffset
	mid := c.X + c.W/2
	c.spawnPoints = []common.Vector{
		vec(mid-40, c.Y-400),
		vec(mid+80, c.Y-400),
		vec(mid+200, c.Y-400),
	}
	c.Health.OnIFrameStart = func(*component.Health) { c.animate([]int{0}, 0) }
	c.Health.OnIFrameEnd = func(*component.Health) { c.animate([]int{0, 1, 0, 2}, 0) }
	c.attachBoss("")
	c.bind(c)
	return c, nil
}

func (c *Chamal) Update(ctx *sim.Context) {
	c.Boss.Update(ctx, &c.Enemy, func() {
		c.update(ctx, 0, func() { c.fight(ctx) })
	})
}

func (c *Chamal) fight(ctx *sim.Context) {
	if c.moving {
		c.MoveFree(c.aim, c.speedM)
		if c.Speed.X == 0 && c.Speed.Y == 0 {
			c.moving = false
			c.timer = 0
		}
	} else {
		c.timer++
		if c.timer == 120 {
			c.pace()
			if len(c.spawns) == 0 {
				c.turn++
				if c.turn == 3 {
					for _, p := range c.spawnPoints {
						w := newWheeliam(p.X, p.Y, false)
						c.spawns = append(c.spawns, w)
						ctx.Section.Add(w)
					}
					c.respawned = true
				}
			}
		}
	}

	if c.respawned && c.gunPowder == nil && c.spawnsDead() {
		c.spawns = nil
		c.respawned = false
		c.gunPowder = newGunPowder(c.X, c.Y+74, 0)
		ctx.Section.Add(c.gunPowder)
		ctx.Section.AddEffect(NewEffect(c.X-14, c.Y+10, "fx_arrow", 3, 1, 8, []int{0, 1, 2, 1}, 300))
		c.turn = 0
	}
	if c.gunPowder != nil && c.gunPowder.Dead() {
		c.gunPowder = nil
	}
}

func (c *Chamal) pace() {
	x := c.X - chamalWalkAmount
	switch {
	case c.FacingRight && c.X >= c.rightLimit:
		c.FacingRight = false
	case c.FacingRight:
		x = c.X + chamalWalkAmount
	case c.X <= c.leftLimit:
		x = c.X + chamalWalkAmount
		c.FacingRight = true
	}
	c.aim = vec(x, c.Y)
	c.moving = true
}

func (c *Chamal) spawnsDead() bool {
	for _, s := range c.spawns {
		if !s.Dead() {
			return false
		}
	}
	return true
}

func (c *Chamal) HitByBomb(ctx *sim.Context) { ctx.Bomb().Bounce(false) }

func (c *Chamal) HitByExplosion(ctx *sim.Context) {
	if c.dying {
		return
	}
	c.Hit(ctx, 1)
	if c.Health.HP == 1 {
		c.speedM = 4
	}
	c.moving = false
	c.timer = -common.InvulnerableTime
}

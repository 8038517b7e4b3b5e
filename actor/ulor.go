package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

type ulorState int

const (
	ulorWalking ulorState = iota
	ulorPreparing
	ulorAttacking
)

const ulorStalactites = 25

// Ulor walks its frozen arena under a row of stalactites. After a random
// time it stomps, bringing the whole row down, and only then can it be
// stomped back.
type Ulor struct {
	Enemy
	state      ulorState
	timer      int
	attackTime int
	spawned    bool
	spawnPoint common.Vector
}

func NewUlor(ctx *sim.Context, x, y float64, args Args) (*Ulor, error) {
	dontFall, err := walkerDontFall(KindUlor, args)
	if err != nil {
		return nil, err
	}
	u := &Ulor{
		Enemy:      newEnemy(KindUlor, x-34, y-88, 100, 120, vec(-20, -8), 2, 2, []int{0, 1, 0, 2}, 7, 2400, 5),
		spawnPoint: vec(x-12*common.TileSize, y-9*common.TileSize),
	}
	u.attachWalker(3, dontFall)
	u.attachBoss("")
	u.bind(u)
	return u, nil
}

func (u *Ulor) Update(ctx *sim.Context) {
	u.Boss.Update(ctx, &u.Enemy, func() { u.fight(ctx) })
}

func (u *Ulor) fight(ctx *sim.Context) {
	if u.attackTime == 0 {
		u.attackTime = 180 + ctx.Intn(120)
	}
	u.timer++
	switch u.state {
	case ulorPreparing:
		if u.timer == 90 {
			u.Anim.SetFrame(3)
			for i := 1; i <= ulorStalactites; i++ {
				ctx.Section.ActivateObject(KindStalactite.String(), i)
			}
			u.spawned = false
			u.timer = 0
			u.state = ulorAttacking
		}
		if u.timer%10 == 0 {
			u.X += 5
		} else if u.timer%5 == 0 {
			u.X -= 5
		}
	case ulorAttacking:
		limit := 120
		if u.Health.HP < 3 {
			limit = 60
		}
		if u.timer == limit {
			u.Anim.SetFrame(0)
			u.timer = 0
			u.state = ulorWalking
		}
	default:
		u.walk(ctx, 0, nil)
		if !u.spawned {
			for i := 0; i < ulorStalactites; i++ {
				ctx.Section.Add(newStalactite(u.spawnPoint.X+float64(i*common.TileSize), u.spawnPoint.Y,
					StalactiteArgs{ID: i + 1, Big: true, Manual: true}))
			}
			u.spawned = true
		}
		if u.timer == u.attackTime {
			u.Anim.SetFrame(0)
			u.timer = 0
			u.attackTime = 0
			u.state = ulorPreparing
		}
	}

	if u.state != ulorWalking && !ctx.PlayerDead() {
		b := ctx.Bomb()
		if b.Over(u.Bounds(), 0) {
			u.HitByBomb(ctx)
		} else if b.Collide(u.Bounds()) {
			b.Hit(1)
		}
	}
}

func (u *Ulor) HitByBomb(ctx *sim.Context) {
	canHit := u.state == ulorAttacking && !u.Health.Invulnerable
	ctx.Bomb().Bounce(canHit)
	if !canHit {
		return
	}
	u.Hit(ctx, 1)
	if u.Health.HP < 3 {
		u.Walker.SpeedM = 4
		u.Speed.X = common.Sign(u.Speed.X) * 4
	}
	u.state = ulorWalking
}

func (u *Ulor) HitByProjectile(ctx *sim.Context) {}

// View reddens Ulor once it is badly hurt.
func (u *Ulor) View(st *sim.Stage) sim.View {
	v := u.Enemy.View(st)
	if u.Health.HP < 3 && v.Color == 0xffffff {
		v.Color = 0xff9999
	}
	return v
}

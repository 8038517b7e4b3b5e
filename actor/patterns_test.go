package actor

import (
	"strconv"
	"testing"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/internal/simtest"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floorWorld is a world with a solid floor whose top is at y 320.
func floorWorld(width float64) *simtest.World {
	w := simtest.NewWorld(far, far)
	w.Section.Blocks = append(w.Section.Blocks, physics.NewBlock(0, 320, width, 32, false))
	return w
}

func TestSprinnyTurnsAfterLeaps(t *testing.T) {
	tests := []struct {
		leaps int
		want  []bool
	}{
		{1, []bool{false, true, false, true, false, true}},
		{2, []bool{false, false, true, true, false, false}},
		{3, []bool{false, false, false, true, true, true}},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.leaps), func(t *testing.T) {
			w := floorWorld(2000)
			s, err := NewSprinny(w.Ctx, 1000, 288, simtest.YAML("leaps: "+strconv.Itoa(tt.leaps)))
			require.NoError(t, err)

			var dirs []bool
			var speeds []float64
			for i := 0; i < 1000 && len(dirs) < len(tt.want); i++ {
				grounded := s.Bottom != nil
				w.Step(s, 1)
				speeds = append(speeds, s.Speed.Y)
				if grounded && s.Speed.Y < 0 {
					dirs = append(dirs, s.FacingRight)
				}
			}
			require.False(t, s.Dead())
			assert.Equal(t, tt.want, dirs)

			first := -1
			for i, v := range speeds {
				if v < 0 {
					first = i
					break
				}
			}
			require.GreaterOrEqual(t, first, 0)
			gravity := 0.75 * common.Gravity
			assert.InDelta(t, -8.5+gravity, speeds[first], 1e-9)
			assert.InDelta(t, gravity, speeds[first+1]-speeds[first], 1e-9, "leaps under reduced gravity")
		})
	}
}

func TestQuartinDiesWithLastShield(t *testing.T) {
	w := simtest.NewWorld(far, far)
	q, err := NewQuartin(w.Ctx, 500, 500, nil)
	require.NoError(t, err)
	require.Len(t, q.Shields(), 4)

	for broken := 1; broken <= 4; broken++ {
		target := q.Shields()[0]
		w.Section.Explosions = []common.Rect{target.Bounds()}
		w.Step(q, 1)
		require.True(t, target.Dying(), "shield %d", broken)
		w.Section.Explosions = nil

		w.Step(q, 15)
		assert.Len(t, q.Shields(), 4-broken)
		if broken < 4 {
			assert.False(t, q.Dying(), "alive with %d shields", 4-broken)
			assert.Empty(t, w.Section.Scores)
		}
	}

	assert.True(t, q.Dying())
	assert.Equal(t, []int{360}, w.Section.Scores)
}

func TestShieldsOrbitTheirCenter(t *testing.T) {
	w := simtest.NewWorld(far, far)
	q, err := NewQuartin(w.Ctx, 500, 500, nil)
	require.NoError(t, err)

	w.Step(q, 45)
	c := q.Center()
	for i, s := range q.Shields() {
		sc := s.Center()
		assert.InDelta(t, float64(quartinShieldRadius), sc.Sub(c).Length(), 1e-9, "shield %d", i)
	}
}

const gaxlonArgs = `
jumps:
  - [[10, 9]]
  - [[16, 9], [6, 9]]
  - [[10, 9]]
  - [[10, 9]]
  - [[10, 9]]
  - [[10, 9]]
spawns:
  - [[5, 3], [15, 3]]
  - [[6, 8]]
  - [[1, 1], [2, 1], [3, 1], [4, 1], [5, 1], [6, 1]]
  - [[5, 3], [9, 3], [13, 3]]
  - [[4, 9], [16, 9]]
  - [[30, 5], [11, 9]]
`

// newFightingGaxlon stands Gaxlon on tile (10, 9) of a floor world with its
// opening speech skipped.
func newFightingGaxlon(t *testing.T) (*simtest.World, *Gaxlon) {
	t.Helper()
	w := floorWorld(2000)
	w.Section.SpawnFunc = func(kind string, x, y float64) (sim.Actor, error) {
		return NewExplosion(x, y, 10, nil), nil
	}
	g, err := NewGaxlon(w.Ctx, 320, 288, simtest.YAML(gaxlonArgs))
	require.NoError(t, err)
	g.Boss.Phase = BossActing
	return w, g
}

func orbs(added []sim.Actor) int {
	n := 0
	for _, a := range added {
		if p, ok := a.(*Projectile); ok && p.Type == ProjectileOrb {
			n++
		}
	}
	return n
}

func TestGaxlonPhaseByHP(t *testing.T) {
	tests := []struct {
		name   string
		hp     int
		timer  int
		orbs   int
		powder bool
	}{
		{"first phase volley", 10, 149, 2, false},
		{"first phase doubled at nine", 9, 149, 4, false},
		{"third phase volley", 6, 89, 3, false},
		{"fourth phase gun powder", 4, 179, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, g := newFightingGaxlon(t)
			g.Health.HP = tt.hp
			g.timer = tt.timer

			w.Step(g, 1)

			assert.Equal(t, tt.orbs, orbs(w.Section.Added))
			powder := false
			for _, a := range w.Section.Added {
				if _, ok := a.(*GunPowder); ok {
					powder = true
				}
			}
			assert.Equal(t, tt.powder, powder)
		})
	}
}

func TestGaxlonEvenHitResetsPhase(t *testing.T) {
	tests := []struct {
		name  string
		hp    int
		reset bool
	}{
		{"even hp", 8, true},
		{"odd hp", 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, g := newFightingGaxlon(t)
			g.Health.HP = tt.hp + 1
			g.timer = 77
			g.subpoint = 1
			g.spawns[0] = NewExplosion(0, 0, 10, nil)

			g.Hit(w.Ctx, 1)
			require.True(t, g.Health.Invulnerable)
			for range common.InvulnerableTime {
				g.Health.Tick()
			}
			require.False(t, g.Health.Invulnerable)

			if tt.reset {
				assert.Equal(t, gaxlonWillJump, g.state)
				assert.Zero(t, g.timer)
				assert.Zero(t, g.subpoint)
				assert.Empty(t, g.spawns)
				assert.Equal(t, []string{KindMovingWall.String()}, w.Section.Activated)
			} else {
				assert.Equal(t, gaxlonActing, g.state)
				assert.Equal(t, 77, g.timer)
				assert.Len(t, g.spawns, 1)
				assert.Empty(t, w.Section.Activated)
			}
		})
	}
}

func TestGaxlonJumpLandsOnTargetTile(t *testing.T) {
	tests := []struct {
		name     string
		subpoint int
		tile     int
	}{
		{"right", 0, 16},
		{"left", 1, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, g := newFightingGaxlon(t)
			g.subpoint = tt.subpoint
			g.timer = 59

			w.Step(g, 1)
			require.Equal(t, gaxlonJumping, g.state)
			for i := 0; i < 100 && g.state == gaxlonJumping; i++ {
				w.Step(g, 1)
			}

			require.Equal(t, gaxlonActing, g.state, "landed")
			assert.NotNil(t, g.Bottom)
			assert.Equal(t, 320.0, g.Y+g.H)
			target := float64(tt.tile*common.TileSize) + common.TileSize/2
			assert.InDelta(t, target, g.centerX(), common.TileSize/2)
		})
	}
}

func TestPlatformsCarryBomb(t *testing.T) {
	tests := []struct {
		name string
		make func(t *testing.T, w *simtest.World) (sim.Actor, *Enemy)
		dir  float64
	}{
		{"zep", func(t *testing.T, w *simtest.World) (sim.Actor, *Enemy) {
			z, err := NewZep(w.Ctx, 320, 288, nil)
			require.NoError(t, err)
			return z, &z.Enemy
		}, -1},
		{"turner", func(t *testing.T, w *simtest.World) (sim.Actor, *Enemy) {
			tr, err := NewTurner(w.Ctx, 320, 288, nil)
			require.NoError(t, err)
			for i := 0; i < 300 && tr.harmful; i++ {
				w.Step(tr, 1)
			}
			require.False(t, tr.harmful, "flipped into a platform")
			return tr, &tr.Enemy
		}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := floorWorld(640)
			a, e := tt.make(t, w)
			w.Bomb.B.X = e.X + 20
			w.Bomb.B.Y = e.Y - w.Bomb.B.H
			offset := w.Bomb.B.X - e.X
			startX := e.X

			w.Step(a, 10)

			assert.Equal(t, tt.dir, common.Sign(e.X-startX))
			assert.InDelta(t, offset, w.Bomb.B.X-e.X, 1e-9, "bomb rides along")
			assert.InDelta(t, e.Y, w.Bomb.B.Y+w.Bomb.B.H, 1e-9)
			assert.Zero(t, w.Bomb.Hits)
		})
	}
}

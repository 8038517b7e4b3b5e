package player

import (
	"testing"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/internal/simtest"
	"github.com/milk9111/bombsim/item"
	"github.com/milk9111/bombsim/levels"
	"github.com/milk9111/bombsim/section"
	"github.com/milk9111/bombsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flat = `
name: flat
tiles: |
  ....................
  ....................
  ....................
  ####################
entrances: [[2, 2]]
`

type rig struct {
	sec   *section.Section
	ctx   *sim.Context
	p     *Player
	input *simtest.Input
	audio *simtest.Audio
}

func newRig(t *testing.T, kind sim.BombType) *rig {
	t.Helper()
	f, err := levels.Parse([]byte(flat))
	require.NoError(t, err)
	r := &rig{
		p:     New(kind, DefaultLives),
		input: &simtest.Input{DownKeys: map[sim.Key]bool{}},
		audio: &simtest.Audio{},
	}
	r.sec, _, err = section.Load(f, section.Config{Player: r.p, Input: r.input, Audio: r.audio})
	require.NoError(t, err)
	r.ctx = r.sec.Context()
	return r
}

func (r *rig) step(n int) {
	for range n {
		r.ctx.Frame++
		r.p.Update(r.ctx)
	}
}

func TestBombLandsOnFloor(t *testing.T) {
	r := newRig(t, sim.BombBlue)
	b := r.p.Avatar()

	r.step(5)

	assert.Equal(t, 96.0-bombHeight, b.Y)
	assert.NotNil(t, b.Bottom)
	assert.Equal(t, "idle", b.StateName())
}

func TestBombWalksAndTurns(t *testing.T) {
	r := newRig(t, sim.BombBlue)
	b := r.p.Avatar()
	r.step(2)
	x0 := b.X

	r.input.DownKeys[sim.KeyRight] = true
	r.step(20)
	assert.Greater(t, b.X, x0)
	assert.True(t, b.FacingRight())
	assert.LessOrEqual(t, b.Speed.X, b.stats.speed)
	assert.Equal(t, "running", b.StateName())

	delete(r.input.DownKeys, sim.KeyRight)
	r.input.DownKeys[sim.KeyLeft] = true
	r.step(1)
	assert.False(t, b.FacingRight())
}

func TestBombJumps(t *testing.T) {
	r := newRig(t, sim.BombBlue)
	b := r.p.Avatar()
	r.step(3)
	floor := b.Y

	r.input.Press(sim.KeyJump)
	r.input.DownKeys[sim.KeyJump] = true
	r.step(1)
	r.input.Release(sim.KeyJump)

	assert.Less(t, b.Y, floor)
	assert.Less(t, b.Speed.Y, 0.0)
	assert.True(t, r.audio.Played("jump"))

	r.step(60)
	assert.Equal(t, floor, b.Y)
	assert.Equal(t, "idle", b.StateName())
}

func TestBombHit(t *testing.T) {
	tests := []struct {
		name     string
		kind     sim.BombType
		shielded bool
		aura     bool
		hits     int
		wantHP   int
		wantDead bool
	}{
		{name: "blue dies", kind: sim.BombBlue, hits: 1, wantHP: 0, wantDead: true},
		{name: "red survives", kind: sim.BombRed, hits: 1, wantHP: 1},
		{name: "invulnerable after hit", kind: sim.BombRed, hits: 2, wantHP: 1},
		{name: "shield absorbs", kind: sim.BombBlue, shielded: true, hits: 1, wantHP: 1},
		{name: "aura protects", kind: sim.BombBlue, aura: true, hits: 3, wantHP: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBomb(tt.kind, 0, 0)
			b.SetShielded(tt.shielded)
			if tt.aura {
				b.SetAura(2, 100)
			}
			for range tt.hits {
				b.Hit(1)
			}
			assert.Equal(t, tt.wantHP, b.HP())
			assert.Equal(t, tt.wantDead, b.Dead())
			assert.False(t, b.Shielded())
		})
	}
}

func TestInvulnerabilityEnds(t *testing.T) {
	r := newRig(t, sim.BombRed)
	b := r.p.Avatar()
	b.Hit(1)
	require.True(t, b.Health.Invulnerable)

	r.step(common.InvulnerableTime - 1)
	assert.True(t, b.Health.Invulnerable)
	r.step(1)
	assert.False(t, b.Health.Invulnerable)

	b.Hit(1)
	assert.True(t, b.Dead())
}

func TestDetonateReachesAround(t *testing.T) {
	r := newRig(t, sim.BombBlue)
	b := r.p.Avatar()
	r.step(2)
	c := b.Center()
	near := common.NewRect(c.X+60, c.Y, 10, 10)
	far := common.NewRect(c.X+200, c.Y, 10, 10)

	assert.False(t, b.Explode(near))
	b.Detonate()
	assert.True(t, b.Explode(near))
	assert.False(t, b.Explode(far))

	r.step(explosionFrames)
	assert.False(t, b.Explode(near))
	assert.False(t, b.Dead())
}

func TestAuraExplodesOnContact(t *testing.T) {
	b := NewBomb(sim.BombYellow, 0, 0)
	touching := common.NewRect(10, 10, 20, 20)

	assert.False(t, b.Explode(touching))
	b.SetAura(2, 900)
	assert.True(t, b.Explode(touching))
	assert.Equal(t, 2, b.Aura())
}

func TestBounce(t *testing.T) {
	r := newRig(t, sim.BombBlue)
	b := r.p.Avatar()
	r.step(3)

	b.Bounce(true)
	r.step(1)
	low := b.Speed.Y
	assert.Less(t, low, 0.0)
	assert.True(t, r.audio.Played("stomp"))

	r.step(60)
	r.input.DownKeys[sim.KeyJump] = true
	b.Bounce(false)
	r.step(1)
	assert.Less(t, b.Speed.Y, low)
	assert.True(t, r.audio.Played("bounce"))
}

func TestAbilities(t *testing.T) {
	r := newRig(t, sim.BombWhite)
	b := r.p.Avatar()
	r.step(2)

	r.input.Press(sim.KeyDown)
	r.step(1)
	r.input.Release(sim.KeyDown)
	assert.Equal(t, sim.StopEnemies, r.ctx.Stage.Stopped)
	assert.Equal(t, b.stats.cooldown, b.Cooldown())

	r.ctx.Stage.StopTime(0, sim.StopNone)
	r.input.Press(sim.KeyDown)
	r.step(1)
	assert.Equal(t, sim.StopNone, r.ctx.Stage.Stopped, "ability is cooling down")

	b.ResetCooldown()
	r.step(1)
	assert.Equal(t, sim.StopEnemies, r.ctx.Stage.Stopped)
}

func TestUseStoredItem(t *testing.T) {
	r := newRig(t, sim.BombBlue)
	shield, err := item.NewShield(r.ctx, 0, 0, nil, nil)
	require.NoError(t, err)
	sw := &sim.Switch{Type: "Shield", State: sim.TempTaken, Obj: shield}

	r.p.AddItem(sw)
	r.p.AddItem(sw)
	require.Len(t, r.p.Items(), 1)

	r.input.Press(sim.KeyItem)
	r.step(1)

	assert.True(t, r.p.Avatar().Shielded())
	assert.Equal(t, sim.TempTakenUsed, sw.State)
	assert.Empty(t, r.p.Items())
	assert.False(t, r.p.UseItem(r.ctx))
}

func TestFailedItemStaysInInventory(t *testing.T) {
	r := newRig(t, sim.BombBlue)
	r.p.Avatar().SetShielded(true)
	shield, err := item.NewShield(r.ctx, 0, 0, nil, nil)
	require.NoError(t, err)
	sw := &sim.Switch{Type: "Shield", State: sim.Taken, Obj: shield}
	r.p.AddItem(sw)

	assert.False(t, r.p.UseItem(r.ctx))
	assert.Len(t, r.p.Items(), 1)
	assert.True(t, r.audio.Played("cantUse"))
}

func TestDeathRollsBack(t *testing.T) {
	r := newRig(t, sim.BombBlue)
	kept := &sim.Switch{Type: "Key", ID: 1, State: sim.Taken}
	lost := &sim.Switch{Type: "Key", ID: 2, State: sim.TempTaken}
	r.ctx.Stage.AddSwitch(kept)
	r.ctx.Stage.AddSwitch(lost)
	r.p.AddItem(kept)
	r.p.AddItem(lost)
	r.p.AddStageScore(500)

	r.p.Avatar().Hit(1)
	require.True(t, r.p.Dead())
	r.step(deathFrames - 1)
	assert.Equal(t, DefaultLives, r.p.Lives)

	r.step(1)
	assert.Equal(t, DefaultLives-1, r.p.Lives)
	assert.Zero(t, r.p.StageScore())
	assert.Equal(t, sim.NotTaken, lost.State)
	assert.Equal(t, []*sim.Switch{kept}, r.p.Items())
	assert.True(t, r.p.Restart())
	assert.False(t, r.p.Restart())

	r.p.Revive()
	assert.False(t, r.p.Dead())
}

func TestFinishBanksTallies(t *testing.T) {
	p := New(sim.BombBlue, 2)
	st := sim.NewStage("1-1")
	st.LifeCount = 1
	st.SpecTaken = true
	p.AddStageScore(300)

	p.Finish(st)

	assert.Equal(t, 300, p.Score)
	assert.Zero(t, p.StageScore())
	assert.Equal(t, 3, p.Lives)
	assert.True(t, p.HasSpec("1-1"))
	assert.False(t, p.GameOver())
}

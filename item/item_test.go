package item

import (
	"testing"

	"github.com/milk9111/bombsim/actor"
	"github.com/milk9111/bombsim/internal/simtest"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// far keeps the bomb away from anything placed near the origin.
const far = 5000

func TestCheckDecidesPlacement(t *testing.T) {
	tests := []struct {
		state     sim.SwitchState
		placed    bool
		inventory int
	}{
		{sim.NotTaken, true, 0},
		{sim.Taken, false, 1},
		{sim.Used, false, 0},
		{sim.Normal, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			w := simtest.NewWorld(far, far)
			sw := &sim.Switch{Type: "Key", ID: 0, State: tt.state}

			k, err := NewKey(w.Ctx, 0, 0, nil, sw)
			require.NoError(t, err)

			assert.Equal(t, tt.placed, k != nil)
			assert.Len(t, w.Player.Items, tt.inventory)
			if tt.state == sim.Taken {
				assert.NotNil(t, sw.Obj)
			}
		})
	}
}

func TestSetSwitch(t *testing.T) {
	tests := []struct {
		from, to sim.SwitchState
	}{
		{sim.Taken, sim.TakenTempUsed},
		{sim.TempTaken, sim.TempTakenUsed},
		{sim.NotTaken, sim.TempUsed},
		{sim.Normal, sim.TempUsed},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			sw := &sim.Switch{State: tt.from}
			SetSwitch(sw)
			assert.Equal(t, tt.to, sw.State)
		})
	}
}

func TestTakeStoresKey(t *testing.T) {
	w := simtest.NewWorld(0, 0)
	sw := &sim.Switch{Type: "Key", ID: 3}
	k, err := NewKey(w.Ctx, 0, 0, simtest.YAML("type: 2"), sw)
	require.NoError(t, err)
	require.NotNil(t, k)

	k.Update(w.Ctx)

	assert.True(t, k.Dead())
	assert.Equal(t, sim.TempTaken, sw.State)
	assert.Equal(t, "2", sw.Extra)
	require.Len(t, w.Player.Items, 1)
	assert.Same(t, sw, w.Player.Items[0])
	assert.Equal(t, k, sw.Obj)
	assert.True(t, w.Audio.Played("getItem"))
}

func TestTakeUsesLifeImmediately(t *testing.T) {
	w := simtest.NewWorld(0, 0)
	sw := &sim.Switch{Type: "Life", ID: 0}
	l, err := NewLife(w.Ctx, 0, 0, simtest.YAML("mega: true"), sw)
	require.NoError(t, err)

	l.Update(w.Ctx)

	assert.True(t, l.Dead())
	assert.Equal(t, 5, w.Ctx.Stage.LifeCount)
	assert.Equal(t, sim.TempTakenUsed, sw.State)
	assert.Empty(t, w.Player.Items)

	sw.Commit()
	assert.Equal(t, sim.Used, sw.State)
	again, err := NewLife(w.Ctx, 0, 0, nil, sw)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestFloatingItemBobs(t *testing.T) {
	w := simtest.NewWorld(far, far)
	h, err := NewHeart(w.Ctx, 100, 100, nil, nil)
	require.NoError(t, err)
	y0 := h.Y

	var ys []float64
	for range 4 {
		w.Step(h, bobInterval)
		ys = append(ys, h.Y)
	}

	assert.Equal(t, []float64{y0 + 1, y0, y0 - 1, y0}, ys)
}

func TestFloatingItemFrozenWhenAllStopped(t *testing.T) {
	w := simtest.NewWorld(far, far)
	h, err := NewHeart(w.Ctx, 100, 100, nil, nil)
	require.NoError(t, err)
	y0 := h.Y

	w.Ctx.Stage.StopTime(600, sim.StopAll)
	w.Step(h, 3*bobInterval)
	assert.Equal(t, y0, h.Y)

	w.Ctx.Stage.StopTime(600, sim.StopEnemies)
	w.Step(h, bobInterval)
	assert.Equal(t, y0+1, h.Y)
}

func TestHeartRequiresBombType(t *testing.T) {
	w := simtest.NewWorld(100, 100)
	h, err := NewHeart(w.Ctx, 100, 100, nil, nil)
	require.NoError(t, err)

	w.Bomb.Kind = sim.BombBlue
	h.Update(w.Ctx)
	assert.False(t, h.Dead())
	assert.Equal(t, 1, w.Bomb.Life)

	w.Bomb.Kind = sim.BombRed
	h.Update(w.Ctx)
	assert.True(t, h.Dead())
	assert.Equal(t, 2, w.Bomb.Life)
}

func TestHeartRejectsUnknownType(t *testing.T) {
	w := simtest.NewWorld(far, far)
	_, err := NewHeart(w.Ctx, 0, 0, simtest.YAML("type: 9"), nil)
	assert.ErrorIs(t, err, actor.ErrInvalidArgs)
}

func TestKeyUnlocksMatchingDoor(t *testing.T) {
	tests := []struct {
		name     string
		keyType  int
		unlocked bool
	}{
		{"same type", 2, true},
		{"other type", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := simtest.NewWorld(far, far)
			door, err := NewDoor(w.Ctx, 0, 0, simtest.YAML("{type: 2, locked: true, entrance: 3}"), nil)
			require.NoError(t, err)
			w.Section.Active = door

			sw := &sim.Switch{Type: "Key", State: sim.TempTaken}
			k, err := NewKey(w.Ctx, far, far, nil, nil)
			require.NoError(t, err)
			k.Type = tt.keyType

			assert.Equal(t, tt.unlocked, k.Use(w.Ctx, sw))
			assert.Equal(t, !tt.unlocked, door.Locked)
			if tt.unlocked {
				assert.Equal(t, sim.TempTakenUsed, sw.State)
			} else {
				assert.Equal(t, sim.TempTaken, sw.State)
			}
		})
	}
}

func TestDoorWarpsOnUp(t *testing.T) {
	w := simtest.NewWorld(0, 0)
	door, err := NewDoor(w.Ctx, 0, 0, simtest.YAML("entrance: 4"), nil)
	require.NoError(t, err)

	door.Update(w.Ctx)
	require.Equal(t, sim.Actor(door), w.Section.Active)

	w.Input.Press(sim.KeyUp)
	w.Step(door, doorOpenFrames)

	assert.Equal(t, []int{4}, w.Section.WarpedTo)
}

func TestAttackItemsFire(t *testing.T) {
	tests := []struct {
		name  string
		build func(*sim.Context, float64, float64, actor.Args, *sim.Switch) (*Attack, error)
		bomb  sim.BombType
		shots int
	}{
		{"Attack1", NewAttack1, sim.BombBlue, 1},
		{"Attack2", NewAttack2, sim.BombRed, 1},
		{"Attack4", NewAttack4, sim.BombBlue, 1},
		{"Attack5", NewAttack5, sim.BombBlue, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := simtest.NewWorld(far, far)
			a, err := tt.build(w.Ctx, 0, 0, nil, nil)
			require.NoError(t, err)
			sw := &sim.Switch{State: sim.TempTaken}

			w.Bomb.Kind = sim.BombWhite
			assert.False(t, a.Use(w.Ctx, sw))
			assert.Empty(t, w.Section.Added)
			assert.Equal(t, sim.TempTaken, sw.State)

			w.Bomb.Kind = tt.bomb
			assert.True(t, a.Use(w.Ctx, sw))
			assert.Len(t, w.Section.Added, tt.shots)
			for _, s := range w.Section.Added {
				p, ok := s.(*actor.Projectile)
				require.True(t, ok)
				assert.Equal(t, sim.Bomb(w.Bomb), p.ShotOwner())
			}
			assert.Equal(t, sim.TempTakenUsed, sw.State)
		})
	}
}

func TestAttack3GivesAura(t *testing.T) {
	w := simtest.NewWorld(far, far)
	a, err := NewAttack3(w.Ctx, 0, 0, nil, nil)
	require.NoError(t, err)
	w.Bomb.Kind = sim.BombYellow

	assert.True(t, a.Use(w.Ctx, &sim.Switch{}))
	assert.Equal(t, 2, w.Bomb.Aura)
	assert.Equal(t, 900, w.Bomb.AuraTime)
}

func TestShield(t *testing.T) {
	w := simtest.NewWorld(far, far)
	s, err := NewShield(w.Ctx, 0, 0, nil, &sim.Switch{})
	require.NoError(t, err)
	sw := &sim.Switch{State: sim.TempTaken}

	w.Bomb.Shield = true
	assert.False(t, s.Use(w.Ctx, sw))

	w.Bomb.Shield = false
	assert.True(t, s.Use(w.Ctx, sw))
	assert.True(t, w.Bomb.Shield)
	assert.Equal(t, sim.TempTakenUsed, sw.State)
}

func TestShieldStoredWhenAlreadyShielded(t *testing.T) {
	w := simtest.NewWorld(0, 0)
	w.Bomb.Shield = true
	sw := &sim.Switch{Type: "Shield"}
	s, err := NewShield(w.Ctx, 0, 0, nil, sw)
	require.NoError(t, err)

	s.Update(w.Ctx)

	assert.Equal(t, sim.TempTaken, sw.State)
	assert.Len(t, w.Player.Items, 1)
}

func TestBoardAndHammer(t *testing.T) {
	w := simtest.NewWorld(100, 100)
	w.Bomb.B.Bottom = physics.NewBlock(0, 127, 400, 32, false)
	sw := &sim.Switch{Type: "BoardItem", State: sim.TempTaken}
	bi, err := NewBoardItem(w.Ctx, far, far, nil, nil)
	require.NoError(t, err)

	require.True(t, bi.Use(w.Ctx, sw))
	require.Len(t, w.Section.Added, 1)
	board, ok := w.Section.Added[0].(*Board)
	require.True(t, ok)
	assert.Equal(t, sim.TempTakenUsed, sw.State)
	assert.Equal(t, 100.0, board.X)

	board.Update(w.Ctx)
	assert.Contains(t, w.Section.Blocks, physics.Obstacle(board))
	require.Equal(t, sim.Actor(board), w.Section.Active)

	hammerSw := &sim.Switch{Type: "Hammer", State: sim.TempTaken}
	h, err := NewHammer(w.Ctx, far, far, nil, nil)
	require.NoError(t, err)
	require.True(t, h.Use(w.Ctx, hammerSw))

	assert.True(t, board.Dead())
	assert.Equal(t, sim.TempTaken, sw.State)
	assert.Contains(t, w.Player.Items, sw)
	assert.NotContains(t, w.Section.Blocks, physics.Obstacle(board))
	assert.Equal(t, sim.TempTakenUsed, hammerSw.State)
}

func TestBoardItemNeedsGround(t *testing.T) {
	w := simtest.NewWorld(100, 100)
	bi, err := NewBoardItem(w.Ctx, far, far, nil, nil)
	require.NoError(t, err)
	sw := &sim.Switch{State: sim.TempTaken}

	assert.False(t, bi.Use(w.Ctx, sw))
	assert.Equal(t, sim.TempTaken, sw.State)
}

func TestSpringLaunchesBomb(t *testing.T) {
	w := simtest.NewWorld(0, -27)
	s, err := NewSpring(w.Ctx, 0, 0, nil, &sim.Switch{Type: "Spring"})
	require.NoError(t, err)
	start := s.Y

	for range 40 {
		w.Bomb.B.Bottom = s
		s.Update(w.Ctx)
	}
	assert.Contains(t, w.Section.Blocks, physics.Obstacle(s))
	assert.Equal(t, start+18, s.Y)
	assert.Equal(t, -9.0, w.Bomb.B.Y)
	assert.Equal(t, -18.0, w.Bomb.B.StoredForces.Y)

	w.Bomb.B.Bottom = nil
	w.Step(s, 6)
	assert.Equal(t, start, s.Y)
}

func TestSpringTakenWithUp(t *testing.T) {
	w := simtest.NewWorld(0, 0)
	sw := &sim.Switch{Type: "Spring"}
	s, err := NewSpring(w.Ctx, 0, 0, nil, sw)
	require.NoError(t, err)
	w.Input.Press(sim.KeyUp)

	s.Update(w.Ctx)

	assert.True(t, s.Dead())
	assert.Equal(t, sim.TempTaken, sw.State)
	assert.NotContains(t, w.Section.Blocks, physics.Obstacle(s))
}

func TestPuzzleOpensWallWhenComplete(t *testing.T) {
	w := simtest.NewWorld(0, 0)
	p, err := NewPuzzle(w.Ctx, 0, 0, simtest.YAML("wall: 2"), nil)
	require.NoError(t, err)
	p.Update(w.Ctx)
	require.Equal(t, sim.Actor(p), w.Section.Active)

	for n := 1; n <= puzzlePieces; n++ {
		piece, err := NewPuzzlePiece(w.Ctx, far, far, simtest.YAML("number: "+string(rune('0'+n))), nil)
		require.NoError(t, err)
		assert.True(t, piece.Use(w.Ctx, &sim.Switch{State: sim.TempTaken}))
		assert.False(t, piece.Use(w.Ctx, &sim.Switch{State: sim.TempTaken}), "piece %d fits twice", n)
	}
	assert.True(t, p.Complete())

	p.Update(w.Ctx)
	assert.Equal(t, []string{actor.KindMovingWall.String()}, w.Section.Activated)
}

func TestPuzzleRestoresUsedPieces(t *testing.T) {
	w := simtest.NewWorld(far, far)
	for _, n := range []string{"1", "3"} {
		w.Ctx.Stage.AddSwitch(&sim.Switch{Type: "PuzzlePiece", State: sim.Used, Extra: n})
	}
	w.Ctx.Stage.AddSwitch(&sim.Switch{Type: "PuzzlePiece", State: sim.Taken, Extra: "2"})

	p, err := NewPuzzle(w.Ctx, 0, 0, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, [puzzlePieces]bool{true, false, true, false}, p.Pieces())
}

func TestHerbHelpsMonep(t *testing.T) {
	w := simtest.NewWorld(far, far)
	monepSw := &sim.Switch{Type: "Monep"}
	monep, err := NewHelper("Monep")(w.Ctx, 0, 0, nil, monepSw)
	require.NoError(t, err)
	herb, err := NewHerb(w.Ctx, far, far, nil, nil)
	require.NoError(t, err)
	sw := &sim.Switch{State: sim.TempTaken}

	assert.False(t, herb.Use(w.Ctx, sw), "no active object")

	w.Section.Active = monep
	assert.True(t, herb.Use(w.Ctx, sw))
	assert.True(t, monep.Helped())
	assert.Equal(t, sim.TempUsed, monepSw.State)
	assert.Equal(t, sim.TempTakenUsed, sw.State)

	stone, err := NewJillisStone(w.Ctx, far, far, nil, nil)
	require.NoError(t, err)
	assert.False(t, stone.Use(w.Ctx, &sim.Switch{}), "jillis stone is for the mountain bombie")
}

func TestStarAndSpec(t *testing.T) {
	w := simtest.NewWorld(far, far)

	star, err := NewStar(w.Ctx, 0, 0, nil, &sim.Switch{State: sim.Used})
	require.NoError(t, err)
	assert.Nil(t, star)
	assert.Equal(t, 1, w.Ctx.Stage.StarCount)

	w.Player.Specs["test"] = true
	spec, err := NewSpec(w.Ctx, 0, 0, nil, &sim.Switch{})
	require.NoError(t, err)
	assert.Nil(t, spec)
}

func TestStarTouched(t *testing.T) {
	w := simtest.NewWorld(0, 0)
	sw := &sim.Switch{Type: "Star"}
	star, err := NewStar(w.Ctx, 0, 0, nil, sw)
	require.NoError(t, err)

	star.Update(w.Ctx)

	assert.True(t, star.Dead())
	assert.Equal(t, 1, w.Ctx.Stage.StarCount)
	assert.Equal(t, sim.TempUsed, sw.State)
}

func TestFireRockScores(t *testing.T) {
	w := simtest.NewWorld(far, far)
	r, err := NewFireRock(w.Ctx, 0, 0, simtest.YAML("kind: 3"), nil)
	require.NoError(t, err)

	r.Update(w.Ctx)
	assert.Equal(t, 1, w.Section.Lights)

	w.Bomb.B.X, w.Bomb.B.Y = r.X, r.Y
	r.Update(w.Ctx)
	assert.True(t, r.Dead())
	assert.Equal(t, 50, w.Player.Score)

	_, err = NewFireRock(w.Ctx, 0, 0, simtest.YAML("kind: 7"), nil)
	assert.ErrorIs(t, err, actor.ErrInvalidArgs)
}

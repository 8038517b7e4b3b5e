package actor

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/internal/simtest"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// far keeps the bomb away from anything placed near the origin.
const far = 5000

func newStilty() *Enemy {
	e := newEnemy(KindStilty, 100, 100, 20, 58, vec(-6, -42), 5, 2, []int{0, 1, 0, 2}, 7, 300, 2)
	return &e
}

func TestHitThenInvulnerableThenKilled(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := newStilty()

	w.Section.Added = append(w.Section.Added, NewProjectile(e.X, e.Y, ProjectileArrow, 0, nil))
	w.Step(e, 1)

	assert.Equal(t, 1, e.HP())
	assert.True(t, e.Invulnerable())
	assert.False(t, e.Dying())
	assert.Zero(t, w.Player.Score)

	// the hit frame counts as the first of the window
	w.Step(e, common.InvulnerableTime-2)
	assert.True(t, e.Invulnerable())
	w.Step(e, 1)
	assert.False(t, e.Invulnerable())

	w.Section.Added = append(w.Section.Added, NewProjectile(e.X, e.Y, ProjectileArrow, 0, nil))
	w.Step(e, 1)

	assert.LessOrEqual(t, e.HP(), 0)
	assert.True(t, e.Dying())
	assert.Equal(t, 300, w.Player.Score)
	assert.Equal(t, []int{300}, w.Section.Scores)
}

func TestInvulnerableIgnoresShots(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := newStilty()
	e.Hit(w.Ctx, 1)
	require.True(t, e.Invulnerable())

	arrow := NewProjectile(e.X, e.Y, ProjectileArrow, 0, nil)
	w.Section.Added = append(w.Section.Added, arrow)
	w.Step(e, 1)

	assert.Equal(t, 1, e.HP())
	assert.False(t, arrow.Dead(), "shot was not consumed")
}

func TestExplosionFinishesOff(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := newStilty()
	w.Section.Explosions = []common.Rect{e.Bounds()}

	w.Step(e, 1)

	assert.True(t, e.Dying())
	assert.Equal(t, 300, w.Player.Score)
}

func TestStompBouncesAndDamages(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := newStilty()
	w.Bomb.B.X = e.X
	w.Bomb.B.Y = e.Y - w.Bomb.B.H + 2
	w.Bomb.PowerV = 1

	w.Step(e, 1)

	assert.Equal(t, []bool{true}, w.Bomb.Bounces)
	assert.Equal(t, 1, e.HP())
	assert.Zero(t, w.Bomb.Hits)
}

func TestSideContactHurtsBomb(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := newStilty()
	w.Bomb.B.X = e.X + 5
	w.Bomb.B.Y = e.Y + 20

	w.Step(e, 1)

	assert.Equal(t, 1, w.Bomb.Hits)
	assert.Equal(t, 2, e.HP())
}

func TestDyingEnemyIsInert(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := newStilty()
	w.Section.Explosions = []common.Rect{e.Bounds()}
	w.Step(e, 1)
	require.True(t, e.Dying())
	w.Section.Explosions = nil

	w.Bomb.B.X = e.X + 5
	w.Bomb.B.Y = e.Y + 20
	w.Step(e, dyingTime-1)
	assert.Zero(t, w.Bomb.Hits)
	assert.False(t, e.Dead())
	assert.Equal(t, e.Sprite.Frames()-1, e.Anim.Index)

	w.Step(e, 1)
	assert.True(t, e.Dead())
}

func TestStompKillIgnoresSameFrameExplosion(t *testing.T) {
	tests := []struct {
		name string
		make func(w *simtest.World) (sim.Actor, *Enemy)
	}{
		{"base", func(w *simtest.World) (sim.Actor, *Enemy) {
			e := newStilty()
			return e, e
		}},
		{"warclops", func(w *simtest.World) (sim.Actor, *Enemy) {
			wc, err := NewWarclops(w.Ctx, 100, 200, nil)
			require.NoError(t, err)
			wc.Health.HP = 1
			return wc, &wc.Enemy
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := simtest.NewWorld(far, far)
			a, e := tt.make(w)
			w.Bomb.B.X = e.X
			w.Bomb.B.Y = e.Y - w.Bomb.B.H + 2
			w.Bomb.PowerV = 3
			w.Bomb.Exploding = true
			w.Section.Explosions = []common.Rect{e.Bounds()}

			w.Step(a, 1)

			require.True(t, e.Dying())
			assert.LessOrEqual(t, e.HP(), 0)
			assert.Len(t, w.Section.Scores, 1, "scored once")

			w.Step(a, 10)
			assert.LessOrEqual(t, e.HP(), 0)
		})
	}
}

func TestNotesPassThroughEnemies(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := newStilty()
	note := NewProjectile(e.X, e.Y, ProjectileNote, 0, nil)
	w.Section.Added = append(w.Section.Added, note)

	w.Step(e, 1)

	assert.Equal(t, 2, e.HP())
	assert.False(t, e.Invulnerable())
	assert.False(t, note.Dead())
}

func TestNoteHurtsBomb(t *testing.T) {
	w := simtest.NewWorld(100, 100)
	note := NewProjectile(100, 105, ProjectileNote, 0, nil)

	note.Update(w.Ctx)

	assert.Equal(t, 1, w.Bomb.Hits)
	assert.True(t, note.Dead())
}

func TestCulledAboveTopMargin(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := newStilty()

	for y := 0.0; y > -400; y-- {
		e.Y = y
		e.SetActiveBounds(w.Ctx)
		bottom := math.Ceil(e.Y + e.ImgGap.Y + e.Sprite.H)
		require.Equal(t, bottom < common.TopMargin, e.Dead(), "y=%v bottom=%v", y, bottom)
		if e.Dead() {
			return
		}
	}
	t.Fatal("never culled")
}

func TestCulledPastSides(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		dead bool
	}{
		{"inside", 100, 100, false},
		{"left", -200, 100, true},
		{"right", 2100, 100, true},
		{"below", 100, 1100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := simtest.NewWorld(far, far)
			e := newStilty()
			e.X, e.Y = tt.x, tt.y
			e.SetActiveBounds(w.Ctx)
			assert.Equal(t, tt.dead, e.Dead())
		})
	}
}

func TestActiveBoundsOnlyGrow(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := newStilty()
	start := e.ActiveBounds()

	e.X += 50
	e.SetActiveBounds(w.Ctx)
	grown := e.ActiveBounds()
	assert.Equal(t, start.X, grown.X)
	assert.Equal(t, start.W+50, grown.W)

	e.X -= 50
	e.SetActiveBounds(w.Ctx)
	assert.Equal(t, grown, e.ActiveBounds())
}

func TestBombarcherShootsOnInterval(t *testing.T) {
	w := simtest.NewWorld(far, 100)
	b, err := NewBombarcher(w.Ctx, 100, 100, simtest.YAML("shoot_interval: 60"))
	require.NoError(t, err)

	w.Step(b, 59)
	assert.False(t, b.Attacking())
	w.Step(b, 1)
	assert.True(t, b.Attacking(), "draws at frame 60")
	assert.Empty(t, w.Section.Added)

	w.Step(b, 19)
	assert.Empty(t, w.Section.Added)
	w.Step(b, 1)
	require.Len(t, w.Section.Added, 1)
	arrow, ok := w.Section.Added[0].(*Projectile)
	require.True(t, ok)
	assert.Equal(t, ProjectileArrow, arrow.Type)
	assert.Equal(t, 330.0, arrow.Angle, "faces the bomb on the right")
	assert.Same(t, b, arrow.Owner)

	// the next arrow comes one full idle interval after the draw ends
	w.Step(b, 69)
	assert.Len(t, w.Section.Added, 1)
	w.Step(b, 21)
	assert.Len(t, w.Section.Added, 2)
}

func TestBombarcherRejectsBadInterval(t *testing.T) {
	w := simtest.NewWorld(far, far)
	_, err := NewBombarcher(w.Ctx, 100, 100, simtest.YAML("shoot_interval: 0"))
	assert.True(t, errors.Is(err, ErrInvalidArgs))

	_, err = NewBombarcher(w.Ctx, 100, 100, simtest.YAML("shoot_interval: [1]"))
	assert.True(t, errors.Is(err, ErrInvalidArgs))
}

func TestWalkerTurnsAtLedges(t *testing.T) {
	w := simtest.NewWorld(far, far)
	w.Section.Blocks = []physics.Obstacle{physics.NewBlock(100, 200, 256, 32, false)}
	wh := newWheeliam(200, 168, true)

	minX, maxRight := wh.X, wh.X+wh.W
	sawLeft, sawRight := false, false
	for range 600 {
		w.Step(wh, 1)
		minX = math.Min(minX, wh.X)
		maxRight = math.Max(maxRight, wh.X+wh.W)
		if wh.FacingRight {
			sawRight = true
		} else {
			sawLeft = true
		}
	}

	assert.True(t, sawLeft)
	assert.True(t, sawRight)
	assert.GreaterOrEqual(t, minX, 98.0)
	assert.LessOrEqual(t, maxRight, 358.0)
	assert.Equal(t, 168.0, wh.Y, "never fell")
}

func TestWalkerHoldsTurnForOneFrame(t *testing.T) {
	w := simtest.NewWorld(far, far)
	w.Section.Blocks = []physics.Obstacle{
		physics.NewBlock(0, 200, 1000, 32, false),
		physics.NewBlock(100, 100, 32, 100, false),
	}
	wh := newWheeliam(140, 168, true)

	for range 100 {
		w.Step(wh, 1)
		if wh.Walker.Turning {
			break
		}
	}
	require.True(t, wh.Walker.Turning)
	assert.Equal(t, 132.0, wh.X)
	assert.Zero(t, wh.Speed.X)

	w.Step(wh, 1)
	assert.False(t, wh.Walker.Turning)
	assert.True(t, wh.FacingRight)
	assert.Equal(t, 132.0, wh.X, "the committing frame does not move")

	w.Step(wh, 1)
	assert.Greater(t, wh.X, 132.0)
}

func TestFallerReturnsToExactStart(t *testing.T) {
	w := simtest.NewWorld(far, far)
	f, err := NewFaller(w.Ctx, 100, 300, simtest.YAML("range: 2"))
	require.NoError(t, err)
	require.Len(t, w.Section.Blocks, 2)

	descended := false
	for frame := 0; frame < 1000; frame++ {
		before := f.step
		w.Step(f, 1)
		require.LessOrEqual(t, f.Y, 300.0, "frame %d", frame)
		if before == 1 && f.step == 2 {
			assert.Equal(t, 300.0-2*common.TileSize, f.Y)
		}
		if before == 3 && f.step == 0 {
			assert.Equal(t, 300.0, f.Y)
			descended = true
			break
		}
	}
	assert.True(t, descended)
}

func TestFallerOnlyExplodes(t *testing.T) {
	w := simtest.NewWorld(100, 290)
	f, err := NewFaller(w.Ctx, 100, 300, simtest.YAML("range: 1"))
	require.NoError(t, err)

	w.Bomb.Exploding = true
	w.Step(f, 1)

	assert.True(t, f.Dead())
	assert.Equal(t, 300, w.Player.Score)
	assert.Empty(t, w.Section.Blocks)
}

func TestFallerRejectsBadRange(t *testing.T) {
	w := simtest.NewWorld(far, far)
	_, err := NewFaller(w.Ctx, 100, 300, nil)
	assert.True(t, errors.Is(err, ErrInvalidArgs))
}

func TestYawLoopsWithoutDrift(t *testing.T) {
	w := simtest.NewWorld(far, far)
	y, err := NewYaw(w.Ctx, 300, 300, nil)
	require.NoError(t, err)
	start := y.Position()
	require.NotEmpty(t, y.Track())

	loops := 0
	for frame := 0; frame < 5000 && loops < 3; frame++ {
		before := y.CurrentPoint()
		w.Step(y, 1)
		if before == len(y.points)-1 && y.CurrentPoint() == 0 {
			loops++
			assert.Equal(t, start, y.Position(), "loop %d", loops)
		}
	}
	assert.Equal(t, 3, loops)
}

func TestYawCannotBeStomped(t *testing.T) {
	w := simtest.NewWorld(far, far)
	y, err := NewYaw(w.Ctx, 300, 300, nil)
	require.NoError(t, err)
	w.Bomb.B.X = y.X + 6
	w.Bomb.B.Y = y.Y - w.Bomb.B.H + 2
	w.Section.Added = append(w.Section.Added, NewProjectile(y.X, y.Y, ProjectileBlue, 0, w.Bomb))

	y.Update(w.Ctx)

	assert.Equal(t, 1, w.Bomb.Hits)
	assert.Empty(t, w.Bomb.Bounces)
	assert.Equal(t, 1, y.HP())
	assert.False(t, y.Dying())
}

func TestBossPhases(t *testing.T) {
	w := simtest.NewWorld(0, 100)
	e := newEnemy(KindGaxlon, 1000, 100, 32, 32, vec(0, 0), 1, 1, []int{0}, 7, 1000, 1)
	boss := e.attachBoss("")
	fights := 0
	step := func(n int) {
		for range n {
			boss.Update(w.Ctx, &e, func() { fights++ })
		}
	}

	step(10)
	assert.Equal(t, BossWaiting, boss.Phase)
	_, ok := e.Panel()
	assert.False(t, ok)

	w.Bomb.B.X = boss.ActivationX
	step(1)
	assert.Equal(t, BossSpeaking, boss.Phase)
	require.NotNil(t, w.Section.Fixed)
	assert.True(t, e.StopTimeImmune())
	text, ok := e.Panel()
	assert.True(t, ok)
	assert.Equal(t, boss.Speech, text)

	w.Input.Press(sim.KeyConfirm)
	step(1)
	w.Input.Release(sim.KeyConfirm)
	assert.Equal(t, BossActing, boss.Phase)
	assert.Nil(t, w.Section.Fixed)
	assert.Equal(t, []string{"boss"}, w.Audio.Songs)
	assert.False(t, e.StopTimeImmune())

	step(5)
	assert.Equal(t, 5, fights)

	boss.Update(w.Ctx, &e, func() { e.die() })
	require.NotNil(t, w.Section.Fixed, "camera fixed on the dying boss")
	text, _ = e.Panel()
	assert.Equal(t, boss.DeathSpeech, text)

	step(deathSpeechTime - 1)
	assert.False(t, w.Section.Finished)
	step(1)
	assert.True(t, w.Section.Finished)
	assert.True(t, e.Dead())
	assert.Equal(t, 5, fights, "no fighting while dying")
}

func TestSpeechTimesOut(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := newEnemy(KindChamal, 1000, 100, 32, 32, vec(0, 0), 1, 1, []int{0}, 7, 1000, 1)
	boss := e.attachBoss("forestBoss")
	boss.Phase = BossSpeaking

	for range speechTime - 1 {
		boss.Update(w.Ctx, &e, nil)
	}
	assert.Equal(t, BossSpeaking, boss.Phase)
	boss.Update(w.Ctx, &e, nil)
	assert.Equal(t, BossActing, boss.Phase)
	assert.Equal(t, []string{"forestBoss"}, w.Audio.Songs)
}

func TestViewTintsWhileTimeStopped(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := newStilty()

	v := e.View(w.Ctx.Stage)
	assert.Equal(t, uint32(0xffffff), v.Color)
	assert.Equal(t, "Stilty", v.Name)

	w.Ctx.Stage.StopTime(600, sim.StopEnemies)
	v = e.View(w.Ctx.Stage)
	assert.Equal(t, uint32(sim.StopTintColor), v.Color)
}

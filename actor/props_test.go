package actor

import (
	"testing"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/internal/simtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplosionCoversCircle(t *testing.T) {
	e := NewExplosion(100, 100, 50, nil)
	tests := []struct {
		name string
		r    common.Rect
		want bool
	}{
		{"center", common.NewRect(95, 95, 10, 10), true},
		{"edge", common.NewRect(149, 95, 10, 10), true},
		{"outside", common.NewRect(151, 95, 10, 10), false},
		{"corner of box only", common.NewRect(140, 140, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Covers(tt.r))
		})
	}
}

func TestOrbit(t *testing.T) {
	c := vec(100, 50)
	tests := []struct {
		angle float64
		want  common.Vector
	}{
		{0, vec(120, 50)},
		{90, vec(100, 70)},
		{180, vec(80, 50)},
		{270, vec(100, 30)},
	}
	for _, tt := range tests {
		got := orbit(c, 20, tt.angle)
		assert.InDelta(t, tt.want.X, got.X, 1e-9, "angle %v", tt.angle)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-9, "angle %v", tt.angle)
	}
}

func TestExplosionExpires(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := NewExplosion(100, 100, 50, nil)

	w.Step(e, explosionTime-1)
	assert.False(t, e.Dead())
	w.Step(e, 1)
	assert.True(t, e.Dead())
	assert.False(t, e.Covers(common.NewRect(95, 95, 10, 10)))
}

func TestScoreEffectFades(t *testing.T) {
	w := simtest.NewWorld(far, far)
	e := NewScoreEffect(10, 100, 250)
	assert.Equal(t, "250", e.Text)

	w.Step(e, scoreEffectTime/2)
	assert.Equal(t, 100-0.5*scoreEffectTime/2, e.Y)
	assert.Equal(t, uint8(127), e.Alpha)

	w.Step(e, scoreEffectTime/2)
	assert.True(t, e.Dead())
}

func TestGunPowderDetonatesBomb(t *testing.T) {
	w := simtest.NewWorld(100, 100)
	g, err := NewGunPowder(w.Ctx, 96, 80, nil)
	require.NoError(t, err)

	g.Update(w.Ctx)

	assert.True(t, w.Bomb.Exploded)
	assert.True(t, g.Dead())
	assert.True(t, w.Audio.Played("explode"))
}

func TestGunPowderLifetime(t *testing.T) {
	w := simtest.NewWorld(far, far)
	g, err := NewGunPowder(w.Ctx, 96, 80, simtest.YAML("lifetime: 1"))
	require.NoError(t, err)

	w.Step(g, 59)
	assert.False(t, g.Dead())
	w.Step(g, 1)
	assert.True(t, g.Dead())
}

func TestVortexPullsThenWarps(t *testing.T) {
	tests := []struct {
		name     string
		args     string
		finished bool
		warped   []int
	}{
		{"finishes the section", "", true, nil},
		{"warps to an entrance", "entrance: 2", false, []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := simtest.NewWorld(100, 100)
			var args Args
			if tt.args != "" {
				args = simtest.YAML(tt.args)
			}
			v, err := NewVortex(w.Ctx, 90, 90, args)
			require.NoError(t, err)

			w.Step(v, 59)
			assert.False(t, v.Dead())
			c := v.Center()
			assert.Equal(t, c.X-w.Bomb.B.W/2, w.Bomb.B.X, "bomb pulled to the center")

			w.Step(v, 1)
			assert.True(t, v.Dead())
			assert.Equal(t, tt.finished, w.Section.Finished)
			assert.Equal(t, tt.warped, w.Section.WarpedTo)
		})
	}
}

func TestMovingWallRisesWhenActivated(t *testing.T) {
	w := simtest.NewWorld(far, far)
	wall, err := NewMovingWall(w.Ctx, 64, 64, simtest.YAML("height: 2"))
	require.NoError(t, err)
	require.Len(t, w.Section.Blocks, 1)
	startY := wall.Y

	w.Step(wall, 10)
	assert.Equal(t, startY, wall.Y, "idle until activated")

	wall.Activate(w.Ctx)
	w.Step(wall, 100)
	assert.Equal(t, startY-2*common.TileSize, wall.Y)
	assert.True(t, w.Audio.Played("wallMove"))
}

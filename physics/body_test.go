package physics

import (
	"testing"

	"github.com/milk9111/bombsim/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveLandsOnBlock(t *testing.T) {
	floor := NewBlock(-100, 20, 300, 32, false)
	b := NewBody(0, 0, 10, 10)

	for i := 0; i < 20; i++ {
		b.Move(common.Vector{}, []Obstacle{floor}, nil)
	}

	assert.Equal(t, 10.0, b.Y)
	assert.Equal(t, Obstacle(floor), b.Bottom)
	assert.Zero(t, b.Speed.Y)
}

func TestMoveStopsAtWall(t *testing.T) {
	floor := NewBlock(-100, 20, 300, 32, false)
	wall := NewBlock(30, -100, 32, 120, false)
	b := NewBody(0, 10, 10, 10)

	for i := 0; i < 30; i++ {
		b.Move(common.Vector{X: 1}, []Obstacle{floor, wall}, nil)
	}

	assert.Equal(t, 20.0, b.X)
	assert.Equal(t, Obstacle(wall), b.Right)
	assert.Nil(t, b.Left)
}

func TestOneWayBlockOnlyStopsFromAbove(t *testing.T) {
	platform := NewBlock(-100, 50, 300, 8, true)
	b := NewBody(0, 60, 10, 10)
	b.Speed.Y = -10

	b.Move(common.Vector{}, []Obstacle{platform}, nil)
	assert.Less(t, b.Y, 60.0, "rising through a one-way platform")
	assert.Nil(t, b.Top)
}

func TestMoveFreeSnapsToAim(t *testing.T) {
	b := NewBody(0, 0, 4, 4)
	aim := common.Vector{X: 10, Y: 0}

	b.MoveFree(aim, 4)
	assert.Equal(t, 4.0, b.X)
	b.MoveFree(aim, 4)
	b.MoveFree(aim, 4)
	assert.Equal(t, 10.0, b.X)
	assert.Zero(t, b.Speed.X)
	assert.Zero(t, b.Speed.Y)
}

func TestCycleReturnsToFirstPointWithoutDrift(t *testing.T) {
	points := []common.Vector{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 70}, {X: 13, Y: 41}}
	b := NewBody(0, 0, 8, 8)

	loops := 0
	prev := b.CurrentPoint()
	for i := 0; i < 2000; i++ {
		b.Cycle(points, 3.3)
		cur := b.CurrentPoint()
		if prev == 0 && cur == 1 {
			loops++
			require.Equal(t, 0.0, b.X, "loop %d", loops)
			require.Equal(t, 0.0, b.Y, "loop %d", loops)
		}
		prev = cur
	}
	assert.Greater(t, loops, 3)
}

func TestMoveCarryingDragsPassenger(t *testing.T) {
	platform := NewBody(0, 100, 50, 10)
	passenger := NewBody(10, 90, 10, 10)
	bystander := NewBody(200, 90, 10, 10)

	platform.MoveCarrying(common.Vector{X: 0, Y: 50}, 2, []*Body{&passenger, &bystander}, nil, nil)

	assert.InDelta(t, 98.0, platform.Y, 1e-9)
	assert.InDelta(t, 88.0, passenger.Y, 1e-9)
	assert.Equal(t, 90.0, bystander.Y)
	assert.Zero(t, passenger.Speed.Y, "passenger speed is restored")
}

func TestRampSurface(t *testing.T) {
	tests := []struct {
		name string
		ramp *Ramp
		x    float64
		want float64
	}{
		{"rising right, left edge", NewRamp(0, 0, 64, 32, false), 0, 32},
		{"rising right, right edge", NewRamp(0, 0, 64, 32, false), 64, 0},
		{"rising left, middle", NewRamp(0, 0, 64, 32, true), 32, 16},
		{"clamped", NewRamp(0, 0, 64, 32, true), 100, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.ramp.SurfaceY(tt.x), 1e-9)
		})
	}
}

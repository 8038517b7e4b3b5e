package component

import (
	"testing"

	"github.com/milk9111/bombsim/common"
	"github.com/stretchr/testify/assert"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation([]int{0, 1, 2}, 2)
	seen := []int{}
	for i := 0; i < 8; i++ {
		a.Update()
		seen = append(seen, a.Index)
	}
	assert.Equal(t, []int{0, 1, 1, 2, 2, 0, 0, 1}, seen)
}

func TestAnimationPlayOnceHoldsLast(t *testing.T) {
	a := NewAnimation([]int{0}, 5)
	finished := 0
	for i := 0; i < 20; i++ {
		if a.PlayOnce([]int{3, 4, 5}, 2) {
			finished++
		}
	}
	assert.Equal(t, 1, finished)
	assert.Equal(t, 5, a.Index)
}

func TestHealthWindowLastsInvulnerableTime(t *testing.T) {
	ended := 0
	h := NewHealth(2)
	h.OnIFrameEnd = func(*Health) { ended++ }

	h.StartIFrames()
	for i := 0; i < common.InvulnerableTime-1; i++ {
		h.Tick()
		assert.True(t, h.Invulnerable, "frame %d", i+1)
	}
	h.Tick()
	assert.False(t, h.Invulnerable)
	assert.Zero(t, h.Timer)
	assert.Equal(t, 1, ended)
}

func TestHealthDamage(t *testing.T) {
	h := NewHealth(0)
	assert.Equal(t, 1, h.HP)
	assert.True(t, h.Damage(1))
	assert.Equal(t, 0, h.HP)
}

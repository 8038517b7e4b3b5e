package sim

import (
	"testing"

	"github.com/milk9111/bombsim/common"
	"github.com/stretchr/testify/assert"
)

func TestSwitchCommitAndRollback(t *testing.T) {
	tests := []struct {
		state    SwitchState
		commit   SwitchState
		rollback SwitchState
	}{
		{NotTaken, NotTaken, NotTaken},
		{TempTaken, Taken, NotTaken},
		{TempUsed, Used, NotTaken},
		{TempTakenUsed, Used, NotTaken},
		{TakenTempUsed, Used, Taken},
		{Taken, Taken, Taken},
		{Normal, Normal, Normal},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			a := &Switch{State: tt.state}
			a.Commit()
			assert.Equal(t, tt.commit, a.State)

			b := &Switch{State: tt.state}
			b.Rollback()
			assert.Equal(t, tt.rollback, b.State)
		})
	}
}

func TestStopTimeExpiresAndTints(t *testing.T) {
	s := NewStage("1-1")
	s.StopTime(130, StopEnemies)

	assert.True(t, s.StopTint(), "far from expiry")
	for i := 0; i < 11; i++ {
		s.Update()
	}
	assert.False(t, s.StopTint(), "remaining 119 blinks off")
	for i := 0; i < 6; i++ {
		s.Update()
	}
	assert.True(t, s.StopTint(), "remaining 113 blinks on")

	frames := 17
	for s.Stopped != StopNone {
		s.Update()
		frames++
	}
	assert.Equal(t, 130, frames)
	assert.Zero(t, s.StoppedTimer)
}

func TestInfiniteStopTimeNeverTints(t *testing.T) {
	s := NewStage("1-1")
	s.StopTime(common.InfiniteStopTime, StopAll)
	for i := 0; i < 500; i++ {
		s.Update()
	}
	assert.Equal(t, StopAll, s.Stopped)
	assert.False(t, s.StopTint())
}

func TestStageSwitchRegistry(t *testing.T) {
	s := NewStage("1-1")
	a := s.Switch("Key", 3)
	assert.Same(t, a, s.Switch("Key", 3))

	obj := new(int)
	a.Obj = obj
	assert.Same(t, a, s.FindSwitch(obj))

	s.DeleteSwitch(obj)
	assert.Nil(t, s.FindSwitch(obj))
}

func TestParseNames(t *testing.T) {
	st, ok := ParseSwitchState("temp_taken_used")
	assert.True(t, ok)
	assert.Equal(t, TempTakenUsed, st)

	bt, ok := ParseBombType("yellow")
	assert.True(t, ok)
	assert.Equal(t, BombYellow, bt)

	_, ok = ParseBombType("purple")
	assert.False(t, ok)
}

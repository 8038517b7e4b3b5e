package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counter = `
update := func(engine, state) {
	if is_undefined(state.t) { state.t = 0 }
	state.t += 1
	if state.t % 3 == 0 {
		engine.shoot(state.t, 90.5)
	}
}

on_hit := func(engine, state) {
	state.hits = engine.hp()
}
`

func TestCompileRequiresUpdate(t *testing.T) {
	_, err := Compile("idle", []byte(`on_hit := func(e, s) {}`))
	require.ErrorIs(t, err, ErrNoUpdate)

	_, err = Compile("broken", []byte(`update := func(e, s) {`))
	require.Error(t, err)
}

func TestRunKeepsStateAndCallsEngine(t *testing.T) {
	rt, err := Compile("counter", []byte(counter))
	require.NoError(t, err)
	assert.True(t, rt.Handles(PhaseUpdate))
	assert.True(t, rt.Handles(PhaseHit))

	var shots [][]any
	engine := Engine{
		"shoot": func(args ...any) any {
			shots = append(shots, args)
			return true
		},
		"hp": func(args ...any) any { return 4 },
	}
	for range 6 {
		require.NoError(t, rt.Run(PhaseUpdate, engine))
	}
	require.Len(t, shots, 2)
	assert.Equal(t, 3, Int(shots[0][0]))
	assert.Equal(t, 90.5, Float(shots[1][1]))
	assert.Equal(t, 6, rt.State()["t"])

	require.NoError(t, rt.Run(PhaseHit, engine))
	assert.Equal(t, 4, rt.State()["hits"])
}

func TestUnhandledPhaseIsNoop(t *testing.T) {
	rt, err := Compile("plain", []byte(`update := func(e, s) { s.ran = true }`))
	require.NoError(t, err)
	require.NoError(t, rt.Run(PhaseHit, nil))
	assert.Empty(t, rt.State())
}

func TestRuntimeErrorStopsProgram(t *testing.T) {
	rt, err := Compile("bad", []byte(`update := func(e, s) { e.missing() }`))
	require.NoError(t, err)

	first := rt.Run(PhaseUpdate, Engine{})
	require.Error(t, first)
	assert.Equal(t, first, rt.Run(PhaseUpdate, Engine{}))
	assert.Equal(t, first, rt.Err())
}

func TestConversions(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Ints([]any{1, 2.9, 3}))
	assert.Nil(t, Ints("nope"))
	assert.True(t, Bool(1))
	assert.False(t, Bool("true"))
	assert.Equal(t, 2.0, Float(2))
	assert.Nil(t, Arg([]any{1}, 1))
}

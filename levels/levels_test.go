package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/bombsim/actor"
	"github.com/milk9111/bombsim/internal/simtest"
	"github.com/milk9111/bombsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSectionsParse(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			f, err := LoadFile(name)
			require.NoError(t, err)
			assert.Equal(t, name, f.Name)
			assert.Positive(t, f.Width())
			assert.Positive(t, f.Height())
		})
	}
}

func TestParseTiles(t *testing.T) {
	f, err := Parse([]byte(`
name: t
tiles: |
  ..=
  /#\
entrances: [[0, 0]]
`))
	require.NoError(t, err)

	assert.Equal(t, 3, f.Width())
	assert.Equal(t, 2, f.Height())
	assert.Equal(t, TileOneWay, f.TileAt(2, 0))
	assert.Equal(t, TileRampR, f.TileAt(0, 1))
	assert.Equal(t, TileSolid, f.TileAt(1, 1))
	assert.Equal(t, TileRampL, f.TileAt(2, 1))
	assert.Equal(t, TileEmpty, f.TileAt(9, 9))
	assert.Equal(t, 96.0, f.Size().X)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		index   int
	}{
		{
			name:    "no entrances",
			src:     "tiles: |\n  ...\n",
			wantErr: ErrBadSection,
			index:   -1,
		},
		{
			name:    "unknown kind",
			src:     "tiles: |\n  ...\nentrances: [[0, 0]]\nelements:\n  - kind: Nobody\n    at: [1, 0]\n",
			wantErr: ErrUnknownKind,
			index:   0,
		},
		{
			name:    "outside",
			src:     "tiles: |\n  ...\nentrances: [[0, 0]]\nelements:\n  - kind: Key\n    at: [1, 0]\n  - kind: Wheeliam\n    at: [7, 0]\n",
			wantErr: ErrBadSection,
			index:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var ee *ElementError
			if tt.index < 0 {
				assert.False(t, errors.As(err, &ee))
				return
			}
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, tt.index, ee.Index)
		})
	}
}

func TestElementArgs(t *testing.T) {
	f, err := Parse([]byte(`
tiles: |
  ....
entrances: [[0, 0]]
elements:
  - kind: Bombarcher
    at: [2, 0]
    args: {shoot_interval: 30}
  - kind: Wheeliam
    at: [3, 0]
`))
	require.NoError(t, err)

	args := f.Elements[0].ArgsOf()
	require.NotNil(t, args)
	assert.True(t, args.Present())
	var a actor.BombarcherArgs
	require.NoError(t, args.Decode(&a))
	assert.Equal(t, 30, a.ShootInterval)

	assert.Nil(t, f.Elements[1].ArgsOf())
	assert.Equal(t, 96.0, f.Elements[1].Position().X)
}

func TestRegistry(t *testing.T) {
	kinds := Kinds()
	assert.Contains(t, kinds, "Gaxlon")
	assert.Contains(t, kinds, "Spec")
	assert.Contains(t, kinds, "Monep")
	assert.IsIncreasing(t, kinds)

	e, ok := Lookup("Key")
	require.True(t, ok)
	assert.True(t, e.Switched)
	e, ok = Lookup("Wheeliam")
	require.True(t, ok)
	assert.False(t, e.Switched)
}

func TestBuild(t *testing.T) {
	w := simtest.NewWorld(5000, 5000)

	a, err := Build(w.Ctx, "Wheeliam", 64, 64, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &actor.Wheeliam{}, a)

	_, err = Build(w.Ctx, "Nobody", 0, 0, nil, nil)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Build(w.Ctx, "Bombarcher", 0, 0, simtest.YAML("shoot_interval: 0"), nil)
	assert.ErrorIs(t, err, actor.ErrInvalidArgs)
}

func TestBuildSkipsUsedItem(t *testing.T) {
	w := simtest.NewWorld(5000, 5000)

	a, err := Build(w.Ctx, "Key", 0, 0, nil, &sim.Switch{Type: "Key", State: sim.Used})

	require.NoError(t, err)
	assert.Nil(t, a, "a skipped item must be a nil interface")
}

func TestReport(t *testing.T) {
	r := &Report{Section: "demo", Elements: 3, Placed: 1}
	assert.NoError(t, r.Err())

	r.Add(2, "Bombarcher", actor.ErrInvalidArgs)
	err := r.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, actor.ErrInvalidArgs)
	assert.Contains(t, err.Error(), "element 2 (Bombarcher)")
	r.Log()
}

func nextChange(t *testing.T, w *Watcher) Change {
	t.Helper()
	select {
	case c := <-w.Changes:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
	return Change{}
}

func TestWatcherRereadsSections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ok      bool
	}{
		{"valid", walled, true},
		{"broken", "tiles: [", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			w, err := NewWatcher(dir)
			require.NoError(t, err)
			defer w.Close()

			path := filepath.Join(dir, "walled.yaml")
			require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			c := nextChange(t, w)
			assert.Equal(t, "walled", c.Name)
			assert.Equal(t, path, c.Path)
			if tt.ok {
				require.NoError(t, c.Err)
				assert.Equal(t, "walled", c.File.Name)
			} else {
				assert.Error(t, c.Err)
				assert.Nil(t, c.File)
			}
		})
	}
}

func TestWatcherFoldsBurstOfWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "walled.yaml")
	for range 5 {
		require.NoError(t, os.WriteFile(path, []byte(walled), 0o644))
	}
	c := nextChange(t, w)
	require.NoError(t, c.Err)

	select {
	case extra := <-w.Changes:
		t.Fatalf("burst reported twice: %+v", extra)
	case <-time.After(3 * settle):
	}
}

func TestWatcherCloseEndsChanges(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, ok := <-w.Changes
	assert.False(t, ok)
	assert.NoError(t, w.Close())
}

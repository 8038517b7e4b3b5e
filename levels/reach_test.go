package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walled = `
name: walled
tiles: |
  .....#...
  ..#..#...
  ..#......
  #########
entrances: [[0, 2]]
elements:
  - kind: Wheeliam
    at: [7, 2]
  - kind: Wheeliam
    at: [2, 1]
`

func TestPathGoesAroundWalls(t *testing.T) {
	f, err := Parse([]byte(walled))
	require.NoError(t, err)

	path := f.Path([2]int{0, 2}, [2]int{7, 0})
	require.NotEmpty(t, path)
	assert.Equal(t, [2]int{0, 2}, path[0])
	assert.Equal(t, [2]int{7, 0}, path[len(path)-1])
	for i, p := range path {
		assert.NotEqual(t, TileSolid, f.TileAt(p[0], p[1]), "step %d", i)
		if i > 0 {
			assert.Equal(t, 1.0, manhattan(path[i-1], p), "step %d", i)
		}
	}
	// around the wall at column 2 and under the one at column 5
	assert.Len(t, path, 14)
}

func TestPathRejects(t *testing.T) {
	f, err := Parse([]byte(walled))
	require.NoError(t, err)

	assert.Nil(t, f.Path([2]int{0, 2}, [2]int{2, 1}), "solid goal")
	assert.Nil(t, f.Path([2]int{0, 2}, [2]int{20, 0}), "outside")
	assert.Equal(t, [][2]int{{3, 2}}, f.Path([2]int{3, 2}, [2]int{3, 2}))
}

func TestUnreachable(t *testing.T) {
	f, err := Parse([]byte(walled))
	require.NoError(t, err)

	assert.Equal(t, []int{1}, f.Unreachable())
}

func TestPathFindsNothingInSealedRoom(t *testing.T) {
	f, err := Parse([]byte(`
name: sealed
tiles: |
  .#...
  ##...
entrances: [[0, 0]]
`))
	require.NoError(t, err)

	assert.Nil(t, f.Path([2]int{0, 0}, [2]int{4, 1}))
}

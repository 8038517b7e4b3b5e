package section

import (
	"testing"

	"github.com/milk9111/bombsim/actor"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/internal/simtest"
	"github.com/milk9111/bombsim/levels"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wide = `
name: wide
id: 3
tiles: |
  ........................................
  ........................................
  ...........................=====........
  ##=#........................./#\........
  ########################################
entrances: [[1, 2], [30, 1]]
`

type probe struct {
	rect    common.Rect
	updates int
	dead    bool
}

func (p *probe) Update(*sim.Context) { p.updates++ }
func (p *probe) Dead() bool          { return p.dead }
func (p *probe) Bounds() common.Rect { return p.rect }

type enemyProbe struct{ probe }

func (e *enemyProbe) Dying() bool { return false }
func (e *enemyProbe) HP() int     { return 1 }

type culledProbe struct{ probe }

func (c *culledProbe) ActiveBounds() common.Rect { return c.rect }

type switchProbe struct {
	probe
	id        int
	activated int
}

func (s *switchProbe) KindName() string          { return "Lever" }
func (s *switchProbe) ID() int                   { return s.id }
func (s *switchProbe) Activate(ctx *sim.Context) { s.activated++ }

type blastProbe struct{ probe }

func (b *blastProbe) Covers(r common.Rect) bool { return b.rect.Intersects(r) }

func load(t *testing.T, src string, stage *sim.Stage) (*Section, *simtest.Bomb, *levels.Report) {
	t.Helper()
	f, err := levels.Parse([]byte(src))
	require.NoError(t, err)
	bomb := simtest.NewBomb(0, 0)
	s, report, err := Load(f, Config{
		Stage:  stage,
		Player: simtest.NewPlayer(bomb),
		Input:  &simtest.Input{},
		Audio:  &simtest.Audio{},
		Seed:   1,
	})
	require.NoError(t, err)
	return s, bomb, report
}

func TestTilesMergeIntoBlocks(t *testing.T) {
	s, _, _ := load(t, wide, nil)

	var oneWay, solid []common.Rect
	for _, o := range s.Blocks() {
		if o.Passable() {
			oneWay = append(oneWay, o.Bounds())
		} else {
			solid = append(solid, o.Bounds())
		}
	}
	assert.Contains(t, solid, common.NewRect(0, 96, 64, 32))
	assert.Contains(t, solid, common.NewRect(96, 96, 32, 32))
	assert.Contains(t, solid, common.NewRect(0, 128, 1280, 32))
	assert.Contains(t, solid, common.NewRect(960, 96, 32, 32))
	assert.Contains(t, oneWay, common.NewRect(64, 96, 32, 32))
	assert.Contains(t, oneWay, common.NewRect(864, 64, 160, 32))

	require.Len(t, s.Ramps(), 2)
	assert.False(t, s.Ramps()[0].Left)
	assert.True(t, s.Ramps()[1].Left)

	assert.True(t, s.ObstacleAt(10, 100))
	assert.False(t, s.ObstacleAt(70, 100), "one-way blocks are passable")
	assert.False(t, s.ObstacleAt(200, 10))
}

func TestBombStartsOnEntrance(t *testing.T) {
	s, bomb, _ := load(t, wide, nil)

	assert.Equal(t, 32+(32-bomb.B.W)/2, bomb.B.X)
	assert.Equal(t, 96-bomb.B.H, bomb.B.Y)
	assert.Equal(t, common.Vector{}, s.Camera())
}

func TestLoadSkipsUsedItems(t *testing.T) {
	src := `
name: items
id: 4
tiles: |
  ......
  ######
entrances: [[0, 0]]
elements:
  - kind: Key
    at: [2, 0]
  - kind: Life
    at: [3, 0]
  - kind: Wheeliam
    at: [4, 0]
`
	stage := sim.NewStage("s")
	stage.Switch("Key", levels.SwitchID(4, 0)).State = sim.Used

	s, _, report := load(t, src, stage)

	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 2, report.Placed)
	require.Len(t, s.Elements(), 2)
	for _, e := range s.Elements() {
		k, ok := e.(sim.Kinded)
		if ok {
			assert.NotEqual(t, "Key", k.KindName())
		}
	}
	life := stage.Switch("Life", levels.SwitchID(4, 1))
	assert.Equal(t, s.Elements()[0], life.Obj)
}

func TestLoadRejectsBadArgs(t *testing.T) {
	f, err := levels.Parse([]byte(`
name: bad
tiles: |
  ....
  ####
entrances: [[0, 0]]
elements:
  - kind: Bombarcher
    at: [2, 0]
    args: {shoot_interval: 0}
`))
	require.NoError(t, err)

	s, report, err := Load(f, Config{})
	require.Error(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, actor.ErrInvalidArgs)
	require.Len(t, report.Errors(), 1)
}

func TestUpdateAddsAndRemoves(t *testing.T) {
	s, _, _ := load(t, wide, nil)
	p := &probe{rect: common.NewRect(10, 10, 4, 4)}

	s.Add(p)
	assert.NotContains(t, s.Elements(), sim.Actor(p))

	s.Update()
	assert.Contains(t, s.Elements(), sim.Actor(p))
	assert.Zero(t, p.updates, "elements added during a frame start next frame")

	s.Update()
	assert.Equal(t, 1, p.updates)

	s.SetActiveObject(p)
	p.dead = true
	s.Update()
	assert.NotContains(t, s.Elements(), sim.Actor(p))
	assert.Nil(t, s.ActiveObject())
	assert.Equal(t, 1, p.updates)
}

func TestStoppedTimeFreezesOnlyEnemies(t *testing.T) {
	s, _, _ := load(t, wide, nil)
	e := &enemyProbe{probe{rect: common.NewRect(10, 10, 4, 4)}}
	p := &probe{rect: common.NewRect(10, 10, 4, 4)}
	s.Add(e)
	s.Add(p)
	s.Update()

	s.Context().Stage.StopTime(3, sim.StopEnemies)
	s.Update()
	s.Update()
	assert.Zero(t, e.updates)
	assert.Equal(t, 2, p.updates)

	s.Update()
	s.Update()
	assert.Equal(t, 1, e.updates, "enemies resume once stop time expires")
}

func TestOffscreenElementsAreNotUpdated(t *testing.T) {
	s, _, _ := load(t, wide, nil)
	near := &culledProbe{probe{rect: common.NewRect(100, 50, 32, 32)}}
	far := &culledProbe{probe{rect: common.NewRect(1200, 50, 32, 32)}}
	s.Add(near)
	s.Add(far)
	s.Update()
	s.Update()

	assert.Equal(t, 1, near.updates)
	assert.Zero(t, far.updates)
}

func TestDyingEnemyFinishesOffscreen(t *testing.T) {
	s, bomb, _ := load(t, wide, nil)
	w, err := actor.NewWheeliam(s.Context(), 64, 64, nil)
	require.NoError(t, err)
	s.Add(w)
	s.Update()

	w.Hit(s.Context(), 1)
	require.True(t, w.Dying())
	bomb.B.X = 1200
	for range 200 {
		s.Update()
	}

	assert.True(t, w.Dead())
	assert.NotContains(t, s.Elements(), sim.Actor(w))
}

func TestCameraFollowsBomb(t *testing.T) {
	s, bomb, _ := load(t, wide, nil)

	bomb.B.X = 1200
	s.Update()
	assert.Equal(t, 480.0, s.Camera().X)
	assert.Zero(t, s.Camera().Y)

	s.SetFixedCamera(600, 0)
	s.Update()
	assert.Equal(t, 200.0, s.Camera().X)

	s.UnsetFixedCamera()
	bomb.B.X = 0
	s.Update()
	assert.Zero(t, s.Camera().X)
}

func TestObstacles(t *testing.T) {
	s, _, _ := load(t, wide, nil)
	moving := physics.NewBlock(1100, 0, 32, 32, false)

	s.AddObstacle(moving)
	s.AddObstacle(moving)
	got := s.Obstacles(0, 0, 32, 32)
	assert.Contains(t, got, physics.Obstacle(moving))
	for _, o := range got {
		if o != physics.Obstacle(moving) {
			assert.Less(t, o.Bounds().X, 200.0)
		}
	}
	assert.True(t, s.ObstacleAt(1110, 10))

	s.RemoveObstacle(moving)
	assert.False(t, s.ObstacleAt(1110, 10))
}

func TestExplodeAndProjectiles(t *testing.T) {
	s, _, _ := load(t, wide, nil)
	owner := &probe{}
	s.AddEffect(&blastProbe{probe{rect: common.NewRect(0, 0, 50, 50)}})
	s.Add(actor.NewProjectile(100, 10, 1, 0, owner))
	s.Update()

	assert.True(t, s.Explode(common.NewRect(40, 40, 20, 20)))
	assert.False(t, s.Explode(common.NewRect(300, 300, 20, 20)))

	r := common.NewRect(95, 5, 30, 30)
	assert.Zero(t, s.ProjectileHit(r, owner), "a shot never hits its owner")
	assert.Equal(t, 1, s.ProjectileHit(r, &probe{}))
}

func TestActivateObject(t *testing.T) {
	s, _, _ := load(t, wide, nil)
	a := &switchProbe{id: 0}
	b := &switchProbe{id: 1}
	s.Add(a)
	s.Add(b)
	s.Update()

	s.ActivateObject("Lever", 1)
	assert.Zero(t, a.activated)
	assert.Equal(t, 1, b.activated)
	assert.Equal(t, sim.Actor(b), s.ActiveObject())

	b.rect = common.NewRect(0, 0, 10, 10)
	assert.Equal(t, sim.Actor(b), s.ElementAt("Lever", 5, 5))
	assert.Nil(t, s.ElementAt("Door", 5, 5))
}

func TestLightOnlyInDarkSections(t *testing.T) {
	tiles := []sim.LightTile{{DX: 0, DY: 0, Alpha: 0}, {DX: 1, DY: 0, Alpha: 100}}

	s, _, _ := load(t, wide, nil)
	s.AddLightTiles(tiles, 32, 32, 32, 32)
	assert.Zero(t, s.Darkness(5, 1))

	s, _, _ = load(t, "dark: true\n"+wide, nil)
	s.AddLightTiles(tiles, 32, 32, 32, 32)
	assert.Equal(t, 0, s.Darkness(1, 1))
	assert.Equal(t, 100, s.Darkness(2, 1))
	assert.Equal(t, darkness, s.Darkness(5, 1))

	s.Update()
	assert.Equal(t, darkness, s.Darkness(1, 1), "light lasts one frame")
}

func TestFinishCommitsSwitches(t *testing.T) {
	stage := sim.NewStage("s")
	sw := stage.Switch("Key", 1)
	sw.State = sim.TempTaken
	s, _, _ := load(t, wide, stage)

	s.Finish()
	assert.True(t, s.Finished())
	assert.Equal(t, sim.Taken, sw.State)
}

func TestWarp(t *testing.T) {
	s, bomb, _ := load(t, wide, nil)

	s.Warp(1)
	assert.Equal(t, 64-bomb.B.H, bomb.B.Y)
	_, ok := s.Warped()
	assert.False(t, ok)

	s.Warp(7)
	to, ok := s.Warped()
	assert.True(t, ok)
	assert.Equal(t, 7, to)
	_, ok = s.Warped()
	assert.False(t, ok)
}

func TestSpawn(t *testing.T) {
	s, _, _ := load(t, wide, nil)

	a, err := s.Spawn("Wheeliam", 64, 0)
	require.NoError(t, err)
	assert.IsType(t, &actor.Wheeliam{}, a)
	assert.NotContains(t, s.Elements(), a)

	_, err = s.Spawn("Nobody", 0, 0)
	assert.ErrorIs(t, err, levels.ErrUnknownKind)
}

func TestInteractingElements(t *testing.T) {
	s, _, _ := load(t, wide, nil)
	p := &probe{}

	s.AddInteractingElement(p)
	s.AddInteractingElement(p)
	assert.Len(t, s.Interacting(), 1)

	s.RemoveInteractingElement(p)
	assert.Empty(t, s.Interacting())
}

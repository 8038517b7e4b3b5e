// Package section runs one section of a stage: the tile map, the elements
// built from a section file, the effects they spawn and the camera.
package section

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bombsim/actor"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/levels"
	"github.com/milk9111/bombsim/logger"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
	"github.com/sirupsen/logrus"
)

// obstacleMargin is how far around a body static tiles are considered for
// collision.
const obstacleMargin = 2 * common.TileSize

// darkness is the alpha of an unlit tile in a dark section.
const darkness = 255

// Config holds the collaborators a section runs against.
type Config struct {
	Stage  *sim.Stage
	Player sim.Player
	Input  sim.Input
	Audio  sim.Audio
	// Entrance is the index of the entrance the bomb starts at.
	Entrance int
	Seed     int64
}

type lightKey struct{ i, j int }

// Section is the live state of a loaded section file.
type Section struct {
	file *levels.File
	size common.Vector

	static  []physics.Obstacle
	dynamic []physics.Obstacle
	ramps   []*physics.Ramp

	elements    []sim.Actor
	pending     []sim.Actor
	effects     []sim.Actor
	interacting []sim.Actor
	active      sim.Actor

	lights map[lightKey]int

	cam      common.Vector
	fixedCam *common.Vector

	finished bool
	warp     int
	warped   bool

	ctx *sim.Context
	log *logrus.Entry
}

var _ sim.Section = (*Section)(nil)

// Load builds a section from f. Elements whose arguments are rejected are
// collected in the report, and a section with any rejected element fails
// to load.
func Load(f *levels.File, cfg Config) (*Section, *levels.Report, error) {
	s := &Section{
		file:   f,
		size:   f.Size(),
		lights: map[lightKey]int{},
		log:    logger.Log.WithField("section", f.Name),
	}
	stage := cfg.Stage
	if stage == nil {
		stage = sim.NewStage(f.Name)
	}
	s.ctx = &sim.Context{
		Section: s,
		Player:  cfg.Player,
		Stage:   stage,
		Input:   cfg.Input,
		Audio:   cfg.Audio,
		Rand:    rand.New(rand.NewSource(cfg.Seed)),
	}
	s.buildTiles()

	report := &levels.Report{Section: f.Name, Elements: len(f.Elements)}
	for i := range f.Elements {
		e := &f.Elements[i]
		entry, ok := levels.Lookup(e.Kind)
		if !ok {
			report.Add(i, e.Kind, levels.ErrUnknownKind)
			continue
		}
		var sw *sim.Switch
		if entry.Switched {
			sw = stage.Switch(e.Kind, levels.SwitchID(f.ID, i))
		}
		p := e.Position()
		a, err := entry.Build(s.ctx, p.X, p.Y, e.ArgsOf(), sw)
		if err != nil {
			report.Add(i, e.Kind, err)
			continue
		}
		if a == nil {
			report.Skipped++
			continue
		}
		if sw != nil && sw.Obj == nil {
			sw.Obj = a
		}
		s.elements = append(s.elements, a)
		report.Placed++
	}
	if err := report.Err(); err != nil {
		return nil, report, err
	}

	s.PlaceBomb(cfg.Entrance)
	if f.Song != "" {
		s.ctx.PlaySong(f.Song)
	}
	s.log.WithFields(logrus.Fields{
		"placed":  report.Placed,
		"skipped": report.Skipped,
	}).Debug("section built")
	return s, report, nil
}

// buildTiles merges horizontal runs of solid and one-way tiles into blocks
// and turns ramp tiles into ramps.
func (s *Section) buildTiles() {
	w, h := s.file.Width(), s.file.Height()
	for j := 0; j < h; j++ {
		runStart, runTile := -1, levels.TileEmpty
		flush := func(end int) {
			if runStart < 0 {
				return
			}
			x := float64(runStart * common.TileSize)
			y := float64(j * common.TileSize)
			width := float64((end - runStart) * common.TileSize)
			s.static = append(s.static, physics.NewBlock(x, y, width, common.TileSize, runTile == levels.TileOneWay))
			runStart = -1
		}
		for i := 0; i <= w; i++ {
			t := s.file.TileAt(i, j)
			if i == w {
				t = levels.TileEmpty
			}
			switch t {
			case levels.TileSolid, levels.TileOneWay:
				if runStart >= 0 && t != runTile {
					flush(i)
				}
				if runStart < 0 {
					runStart, runTile = i, t
				}
			case levels.TileRampR, levels.TileRampL:
				flush(i)
				x, y := float64(i*common.TileSize), float64(j*common.TileSize)
				s.ramps = append(s.ramps, physics.NewRamp(x, y, common.TileSize, common.TileSize, t == levels.TileRampL))
			default:
				flush(i)
			}
		}
	}
}

// Context is the context elements of this section are updated with.
func (s *Section) Context() *sim.Context { return s.ctx }

func (s *Section) File() *levels.File { return s.file }

// PlaceBomb puts the bomb on entrance i, standing on the tile below it.
func (s *Section) PlaceBomb(i int) {
	b := s.ctx.Bomb()
	if b == nil || len(s.file.Entrances) == 0 {
		return
	}
	if i < 0 || i >= len(s.file.Entrances) {
		i = 0
	}
	e := s.file.Entrances[i]
	body := b.Body()
	body.X = float64(e[0]*common.TileSize) + (common.TileSize-body.W)/2
	body.Y = float64((e[1]+1)*common.TileSize) - body.H
	body.Speed = common.Vector{}
	s.followBomb()
}

// Update steps every element and effect once, then removes what died and
// appends what was added during the frame.
func (s *Section) Update() {
	ctx := s.ctx
	ctx.Frame++
	clear(s.lights)

	view := s.ViewRect()
	for _, a := range s.elements {
		if a.Dead() || s.frozen(a) || !inView(a, view) {
			continue
		}
		a.Update(ctx)
	}
	for _, e := range s.effects {
		if !e.Dead() {
			e.Update(ctx)
		}
	}

	s.elements = slices.DeleteFunc(s.elements, s.remove)
	s.effects = slices.DeleteFunc(s.effects, func(a sim.Actor) bool { return a.Dead() })
	s.interacting = slices.DeleteFunc(s.interacting, func(a sim.Actor) bool { return a.Dead() })
	s.elements = append(s.elements, s.pending...)
	s.pending = s.pending[:0]

	ctx.Stage.Update()
	s.followBomb()
}

func (s *Section) remove(a sim.Actor) bool {
	if !a.Dead() {
		return false
	}
	if s.active == a {
		s.active = nil
	}
	return true
}

// enemy is what the section needs to know of an element to freeze it while
// time is stopped. Props and items keep running.
type enemy interface {
	Dying() bool
	HP() int
}

func (s *Section) frozen(a sim.Actor) bool {
	_, isEnemy := a.(enemy)
	return isEnemy && s.ctx.Stopped(a)
}

// inView reports whether a is close enough to the camera to be updated.
// Elements without active bounds always are, and so are dying enemies so
// they get removed wherever the camera went.
func inView(a sim.Actor, view common.Rect) bool {
	if e, ok := a.(enemy); ok && e.Dying() {
		return true
	}
	ab, ok := a.(interface{ ActiveBounds() common.Rect })
	if !ok {
		return true
	}
	return ab.ActiveBounds().Intersects(view)
}

// ViewRect is the part of the section on screen.
func (s *Section) ViewRect() common.Rect {
	return common.NewRect(s.cam.X, s.cam.Y, common.ScreenWidth, common.ScreenHeight)
}

func (s *Section) followBomb() {
	target := s.fixedCam
	if target == nil {
		b := s.ctx.Bomb()
		if b == nil {
			return
		}
		c := b.Body().Center()
		target = &c
	}
	x := target.X - common.ScreenWidth/2
	y := target.Y - common.ScreenHeight/2
	s.cam.X = cp.Clamp(x, 0, math.Max(0, s.size.X-common.ScreenWidth))
	s.cam.Y = cp.Clamp(y, 0, math.Max(0, s.size.Y-common.ScreenHeight))
}

func (s *Section) Size() common.Vector { return s.size }

func (s *Section) Obstacles(x, y, w, h float64) []physics.Obstacle {
	area := common.NewRect(x-obstacleMargin, y-obstacleMargin, w+2*obstacleMargin, h+2*obstacleMargin)
	out := make([]physics.Obstacle, 0, len(s.dynamic)+8)
	for _, o := range s.static {
		if o.Bounds().Intersects(area) {
			out = append(out, o)
		}
	}
	return append(out, s.dynamic...)
}

func (s *Section) AddObstacle(o physics.Obstacle) {
	if !slices.Contains(s.dynamic, o) {
		s.dynamic = append(s.dynamic, o)
	}
}

func (s *Section) RemoveObstacle(o physics.Obstacle) {
	if i := slices.Index(s.dynamic, o); i >= 0 {
		s.dynamic = slices.Delete(s.dynamic, i, i+1)
	}
}

func (s *Section) Ramps() []*physics.Ramp { return s.ramps }

// Blocks returns the static tile blocks.
func (s *Section) Blocks() []physics.Obstacle { return s.static }

// ObstacleAt reports whether a solid obstacle covers the point.
func (s *Section) ObstacleAt(x, y float64) bool {
	for _, list := range [][]physics.Obstacle{s.static, s.dynamic} {
		for _, o := range list {
			if !o.Passable() && o.Bounds().Contains(x, y) {
				return true
			}
		}
	}
	return false
}

// Add queues a for the end of the frame.
func (s *Section) Add(a sim.Actor) {
	if a != nil {
		s.pending = append(s.pending, a)
	}
}

func (s *Section) AddEffect(a sim.Actor) {
	if a != nil {
		s.effects = append(s.effects, a)
	}
}

func (s *Section) AddScoreEffect(x, y float64, score int) {
	s.effects = append(s.effects, actor.NewScoreEffect(x, y, score))
}

func (s *Section) Explode(r common.Rect) bool {
	for _, list := range [][]sim.Actor{s.elements, s.effects} {
		for _, a := range list {
			if b, ok := a.(sim.Blast); ok && !a.Dead() && b.Covers(r) {
				return true
			}
		}
	}
	return false
}

func (s *Section) ProjectileHit(r common.Rect, target any) int {
	for _, a := range s.elements {
		shot, ok := a.(sim.Shot)
		if !ok || shot.Dead() || shot.ShotOwner() == target {
			continue
		}
		if shot.Bounds().Intersects(r) {
			return shot.Strike()
		}
	}
	return 0
}

func (s *Section) Camera() common.Vector { return s.cam }

func (s *Section) SetFixedCamera(x, y float64) {
	s.fixedCam = &common.Vector{X: x, Y: y}
}

func (s *Section) UnsetFixedCamera() { s.fixedCam = nil }

// Finish ends the section and commits every temporary switch.
func (s *Section) Finish() {
	if s.finished {
		return
	}
	s.finished = true
	s.ctx.Stage.Commit()
	s.log.Info("section finished")
}

func (s *Section) Finished() bool { return s.finished }

// Warp records a request to move the bomb to another entrance. Entrances
// of this section are served right away; others are left to the caller
// through Warped.
func (s *Section) Warp(entrance int) {
	s.log.WithField("entrance", entrance).Debug("warp")
	if entrance >= 0 && entrance < len(s.file.Entrances) {
		s.PlaceBomb(entrance)
		return
	}
	s.warp, s.warped = entrance, true
}

// Warped returns a pending warp to an entrance outside this section.
func (s *Section) Warped() (int, bool) {
	w, ok := s.warp, s.warped
	s.warped = false
	return w, ok
}

// Spawn builds a registered element with no args nor switch.
func (s *Section) Spawn(kind string, x, y float64) (sim.Actor, error) {
	a, err := levels.Build(s.ctx, kind, x, y, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("section: spawn %s: %w", kind, err)
	}
	if a == nil {
		return nil, fmt.Errorf("section: spawn %s: nothing built", kind)
	}
	return a, nil
}

func (s *Section) ActivateObject(kind string, id int) {
	for _, a := range s.elements {
		act, ok := a.(sim.Activatable)
		if !ok || a.Dead() || act.KindName() != kind || act.ID() != id {
			continue
		}
		act.Activate(s.ctx)
		s.active = a
		return
	}
	s.log.WithFields(logrus.Fields{"kind": kind, "id": id}).Debug("nothing to activate")
}

func (s *Section) ActiveObject() sim.Actor { return s.active }

func (s *Section) SetActiveObject(a sim.Actor) { s.active = a }

func (s *Section) ElementAt(kind string, x, y float64) sim.Actor {
	for _, a := range s.elements {
		k, ok := a.(sim.Kinded)
		if ok && !a.Dead() && k.KindName() == kind && a.Bounds().Contains(x, y) {
			return a
		}
	}
	return nil
}

// AddLightTiles lights the tiles around the center of the given rectangle
// for this frame. Only dark sections keep track of light.
func (s *Section) AddLightTiles(tiles []sim.LightTile, x, y, w, h float64) {
	if !s.file.Dark {
		return
	}
	ci := int(math.Floor((x + w/2) / common.TileSize))
	cj := int(math.Floor((y + h/2) / common.TileSize))
	for _, t := range tiles {
		k := lightKey{ci + t.DX, cj + t.DY}
		if cur, ok := s.lights[k]; !ok || t.Alpha < cur {
			s.lights[k] = t.Alpha
		}
	}
}

// Darkness returns the alpha of the shadow over tile (i, j).
func (s *Section) Darkness(i, j int) int {
	if !s.file.Dark {
		return 0
	}
	if a, ok := s.lights[lightKey{i, j}]; ok {
		return a
	}
	return darkness
}

func (s *Section) Dark() bool { return s.file.Dark }

func (s *Section) AddInteractingElement(a sim.Actor) {
	if !slices.Contains(s.interacting, a) {
		s.interacting = append(s.interacting, a)
	}
}

func (s *Section) RemoveInteractingElement(a sim.Actor) {
	if i := slices.Index(s.interacting, a); i >= 0 {
		s.interacting = slices.Delete(s.interacting, i, i+1)
	}
}

// Interacting returns the elements drawn in front of the bomb.
func (s *Section) Interacting() []sim.Actor { return s.interacting }

// Elements returns the live elements in update order.
func (s *Section) Elements() []sim.Actor { return s.elements }

func (s *Section) Effects() []sim.Actor { return s.effects }

package item

import (
	"strconv"

	"github.com/milk9111/bombsim/actor"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
)

// Spring is a trampoline the bomb can carry around. Standing on it
// compresses it in three steps before it launches the bomb upward.
type Spring struct {
	FloatingItem
	startY float64
	state  int
	timer  int
	ready  bool
}

var springLaunch = []int{0, 4, 4, 5, 0, 5, 0, 5, 0, 5}

func NewSpring(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Spring, error) {
	s := newSpring(x, y)
	if Check(ctx, sw, s) {
		return nil, nil
	}
	return s, nil
}

func newSpring(x, y float64) *Spring {
	s := &Spring{
		FloatingItem: newFloating("Spring", x, y, common.TileSize, common.TileSize, vec(-2, -16), 3, 2, nil, 0, sim.BombAny),
		startY:       y,
	}
	s.IconName = "spring"
	s.active = common.NewRect(x, y-16, common.TileSize, 48)
	return s
}

func (s *Spring) Update(ctx *sim.Context) {
	if !s.ready {
		ctx.Section.AddObstacle(s)
		s.ready = true
	}
	b := ctx.Bomb()
	if b == nil {
		return
	}
	body := b.Body()

	if ctx.Stage == nil || ctx.Stage.Stopped != sim.StopAll {
		if body.Bottom == physics.Obstacle(s) {
			if s.state == 4 {
				s.reset()
			}
			s.timer++
			if s.timer == 10 && s.state < 3 {
				step := [3]float64{8, 6, 4}[s.state]
				s.Y += step
				s.ImgGap.Y -= step
				body.Y += step
				s.state++
				s.Anim.SetFrame(s.state)
				s.timer = 0
			} else if s.timer == 10 {
				s.state = 4
				s.timer = 0
			}
		} else if s.state > 0 && s.state < 4 {
			s.reset()
		}

		if s.state == 4 {
			s.Anim.Play(springLaunch, 7)
			s.Anim.Update()
			s.timer++
			if s.timer <= 6 {
				body.StoredForces.Y = -18
			}
			switch s.timer {
			case 7:
				s.Y = s.startY
				s.ImgGap.Y = -16
			case 70:
				s.reset()
			}
		}
	}

	if b.Collide(s.Bounds()) && ctx.Pressed(sim.KeyUp) {
		Take(ctx, s, true, "")
		s.dead = true
		ctx.Section.RemoveObstacle(s)
	}
}

func (s *Spring) reset() {
	s.Anim = component.NewAnimation([]int{0}, 1)
	s.state = 0
	s.timer = 0
	s.Y = s.startY
	s.ImgGap.Y = -16
}

// Use sets a spring down next to the bomb, on the side it is facing.
func (s *Spring) Use(ctx *sim.Context, sw *sim.Switch) bool {
	b := ctx.Bomb()
	body := b.Body()
	if body.Bottom == nil {
		return false
	}
	x := body.X - common.TileSize
	if b.FacingRight() {
		x = body.X + body.W + common.TileSize
	}
	if ctx.Section.ObstacleAt(x, body.Y) {
		return false
	}
	if b.FacingRight() {
		x -= common.TileSize
	}
	spring := newSpring(x, float64(int(body.Y/common.TileSize)*common.TileSize))
	spring.track(sw)
	sw.State = sim.Normal
	sw.Obj = spring
	ctx.Section.Add(spring)
	return true
}

type DoorArgs struct {
	// Type is matched against the key that unlocks the door.
	Type   int  `yaml:"type"`
	Locked bool `yaml:"locked"`
	// Entrance is where the door leads. A negative entrance finishes the
	// section.
	Entrance int `yaml:"entrance"`
}

const doorOpenFrames = 15

// Door leads to another entrance of the stage when the bomb presses up in
// front of it.
type Door struct {
	FloatingItem
	Type     int
	Locked   bool
	Entrance int
	opening  int
}

func NewDoor(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Door, error) {
	a := DoorArgs{Entrance: -1}
	if err := decode("Door", args, &a); err != nil {
		return nil, err
	}
	d := &Door{
		FloatingItem: newFloating("Door", x, y-common.TileSize, common.TileSize, 2*common.TileSize, common.Vector{}, 5, 1, nil, 0, sim.BombAny),
		Type:         a.Type,
		Locked:       a.Locked,
		Entrance:     a.Entrance,
	}
	d.track(sw)
	if sw != nil {
		sw.Obj = d
		if sw.State == sim.Used || sw.State == sim.TempUsed {
			d.Locked = false
		}
	}
	if d.Locked {
		d.Anim.SetFrame(4)
	}
	return d, nil
}

// Unlock opens the lock for good once the section is finished.
func (d *Door) Unlock(ctx *sim.Context) {
	d.Locked = false
	d.Anim.SetFrame(0)
	if d.sw != nil {
		d.sw.State = sim.TempUsed
	}
	ctx.PlaySound("unlock")
}

func (d *Door) Update(ctx *sim.Context) {
	if d.opening > 0 {
		d.opening++
		d.Anim.SetFrame(min(3, d.opening/4))
		if d.opening >= doorOpenFrames {
			d.opening = 0
			d.Anim.SetFrame(0)
			if d.Entrance < 0 {
				ctx.Section.Finish()
			} else {
				ctx.Section.Warp(d.Entrance)
			}
		}
		return
	}
	interact(ctx, d)
	if ctx.Section.ActiveObject() == sim.Actor(d) && !d.Locked && ctx.Pressed(sim.KeyUp) {
		d.opening = 1
		ctx.PlaySound("door")
	}
}

// interact makes a the active object while the bomb touches it.
func interact(ctx *sim.Context, a sim.Actor) {
	b := ctx.Bomb()
	touching := b != nil && !ctx.PlayerDead() && b.Collide(a.Bounds())
	active := ctx.Section.ActiveObject() == a
	switch {
	case touching && !active:
		ctx.Section.SetActiveObject(a)
	case !touching && active:
		ctx.Section.SetActiveObject(nil)
	}
}

const boardWidth = 50

// Board is a plank laid by the bomb. It can be stood on from above and
// pulled back up with a hammer.
type Board struct {
	FloatingItem
	right bool
	ready bool
}

// NewBoard places a board whose switch belongs to the board item that laid
// it.
func NewBoard(ctx *sim.Context, x, y float64, facingRight bool, sw *sim.Switch) *Board {
	b := &Board{
		FloatingItem: newFloating("Board", x, y, boardWidth, 6, common.Vector{}, 1, 1, nil, 0, sim.BombAny),
		right:        facingRight,
	}
	b.active = common.NewRect(x-common.TileSize, y-common.TileSize, boardWidth+2*common.TileSize, 6+2*common.TileSize)
	b.track(sw)
	return b
}

func (b *Board) Update(ctx *sim.Context) {
	if !b.ready {
		ctx.Section.AddObstacle(b)
		b.ready = true
	}
	bomb := ctx.Bomb()
	near := bomb != nil && !ctx.PlayerDead() && bomb.Collide(b.ActiveBounds())
	active := ctx.Section.ActiveObject() == sim.Actor(b)
	switch {
	case near && !active:
		ctx.Section.SetActiveObject(b)
	case !near && active:
		ctx.Section.SetActiveObject(nil)
	}
}

// Take removes the board and returns the board item to the inventory.
func (b *Board) Take(ctx *sim.Context) {
	ctx.Section.RemoveObstacle(b)
	if ctx.Section.ActiveObject() == sim.Actor(b) {
		ctx.Section.SetActiveObject(nil)
	}
	b.dead = true
	if b.sw != nil {
		if b.sw.State == sim.TakenTempUsed {
			b.sw.State = sim.Taken
		} else {
			b.sw.State = sim.TempTaken
		}
		if ctx.Player != nil {
			ctx.Player.AddItem(b.sw)
		}
	}
	ctx.PlaySound("getItem")
}

func (b *Board) View(st *sim.Stage) sim.View {
	v := b.FloatingItem.View(st)
	v.FlipX = !b.right
	return v
}

type PuzzleArgs struct {
	// Wall is the id of the moving wall opened once the puzzle is
	// complete, or -1.
	Wall int `yaml:"wall"`
}

const puzzlePieces = 4

// Puzzle is a frame that takes the four puzzle pieces. The pieces already
// placed are read back from the used piece switches of the stage.
type Puzzle struct {
	FloatingItem
	wall     int
	pieces   [puzzlePieces]bool
	complete bool
	opened   bool
}

func NewPuzzle(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Puzzle, error) {
	a := PuzzleArgs{Wall: -1}
	if err := decode("Puzzle", args, &a); err != nil {
		return nil, err
	}
	p := &Puzzle{
		FloatingItem: newFloating("Puzzle", x, y, 2*common.TileSize, 2*common.TileSize, common.Vector{}, 1, 1, nil, 0, sim.BombAny),
		wall:         a.Wall,
	}
	if ctx.Stage != nil {
		for _, s := range ctx.Stage.Switches() {
			if s.Type != "PuzzlePiece" || (s.State != sim.Used && s.State != sim.TakenTempUsed && s.State != sim.TempTakenUsed) {
				continue
			}
			if n, err := strconv.Atoi(s.Extra); err == nil && n >= 1 && n <= puzzlePieces {
				p.pieces[n-1] = true
			}
		}
	}
	p.complete = p.full()
	// a puzzle completed in an earlier visit leaves its wall open
	p.opened = p.complete
	return p, nil
}

func (p *Puzzle) full() bool {
	for _, ok := range p.pieces {
		if !ok {
			return false
		}
	}
	return true
}

// Pieces reports which pieces are in place.
func (p *Puzzle) Pieces() [puzzlePieces]bool { return p.pieces }

func (p *Puzzle) Complete() bool { return p.complete }

// AddPiece places piece n and reports whether it fit.
func (p *Puzzle) AddPiece(ctx *sim.Context, n int) bool {
	if p.complete || n < 1 || n > puzzlePieces || p.pieces[n-1] {
		return false
	}
	p.pieces[n-1] = true
	ctx.PlaySound("puzzlePiece")
	if p.full() {
		p.complete = true
		ctx.PlaySound("puzzleComplete")
	}
	return true
}

func (p *Puzzle) Update(ctx *sim.Context) {
	interact(ctx, p)
	if p.complete && !p.opened {
		p.opened = true
		if p.wall >= 0 {
			ctx.Section.ActivateObject(actor.KindMovingWall.String(), p.wall)
		}
	}
}

type HelperArgs struct {
	ID int `yaml:"id"`
	// Text is shown while the helper waits, Thanks once it was helped.
	Text   string `yaml:"text"`
	Thanks string `yaml:"thanks"`
}

// Helper is a character waiting for an item. It is registered under its own
// name, such as Monep or MountainBombie, which items look for when used.
type Helper struct {
	FloatingItem
	id      int
	text    string
	thanks  string
	helped  bool
	talking bool
}

// NewHelper returns the builder of the helper named name.
func NewHelper(name string) func(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Helper, error) {
	return func(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Helper, error) {
		var a HelperArgs
		if err := decode(name, args, &a); err != nil {
			return nil, err
		}
		h := &Helper{
			FloatingItem: newFloating(name, x, y-common.TileSize, common.TileSize, 2*common.TileSize, common.Vector{}, 2, 2, []int{0, 1}, 15, sim.BombAny),
			id:           a.ID,
			text:         a.Text,
			thanks:       a.Thanks,
		}
		h.track(sw)
		if sw != nil {
			sw.Obj = h
			h.helped = sw.State == sim.Used
		}
		return h, nil
	}
}

func (h *Helper) ID() int      { return h.id }
func (h *Helper) Helped() bool { return h.helped }

// Activate marks the helper as helped. The change is committed with the
// section.
func (h *Helper) Activate(ctx *sim.Context) {
	if h.helped {
		return
	}
	h.helped = true
	if h.sw != nil {
		h.sw.State = sim.TempUsed
	}
	h.Anim.Play([]int{2, 3}, 15)
	ctx.PlaySound("helped")
}

func (h *Helper) Update(ctx *sim.Context) {
	interact(ctx, h)
	h.talking = ctx.Section.ActiveObject() == sim.Actor(h)
	h.Anim.Update()
}

func (h *Helper) Panel() (string, bool) {
	if !h.talking {
		return "", false
	}
	if h.helped {
		return h.thanks, h.thanks != ""
	}
	return h.text, h.text != ""
}

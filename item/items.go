package item

import (
	"strconv"

	"github.com/milk9111/bombsim/actor"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

type FireRockArgs struct {
	// Kind picks the score and color: 1 to 3, or 0 for the plain rock.
	Kind int `yaml:"kind"`
}

// FireRock is a score pickup glowing in the dark.
type FireRock struct {
	FloatingItem
	score int
}

var fireRockLight = []sim.LightTile{
	{DX: 0, DY: 0, Alpha: 0},
	{DX: -1, DY: 0, Alpha: 50}, {DX: 0, DY: -1, Alpha: 50}, {DX: 1, DY: 0, Alpha: 50}, {DX: 0, DY: 1, Alpha: 50},
	{DX: -1, DY: -1, Alpha: 125}, {DX: 1, DY: -1, Alpha: 125}, {DX: -1, DY: 1, Alpha: 125}, {DX: 1, DY: 1, Alpha: 125},
}

func NewFireRock(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*FireRock, error) {
	var a FireRockArgs
	if err := decode("FireRock", args, &a); err != nil {
		return nil, err
	}
	if a.Kind < 0 || a.Kind > 3 {
		return nil, invalid("FireRock", "kind must be 0 to 3, got %d", a.Kind)
	}
	r := &FireRock{
		FloatingItem: newFloating("FireRock", x+6, y+7, 20, 20, vec(-2, -17), 4, 1, []int{0, 1, 2, 3}, 5, sim.BombAny),
		score:        [4]int{10, 10, 20, 50}[a.Kind],
	}
	r.Color = [4]uint32{0xff9933, 0xff6600, 0x33ff33, 0x3399ff}[a.Kind]
	r.active = common.NewRect(r.active.X-common.TileSize, r.active.Y-common.TileSize, r.active.W+2*common.TileSize, r.active.H+2*common.TileSize)
	return r, nil
}

func (r *FireRock) Update(ctx *sim.Context) {
	r.float(ctx, func() {
		ctx.Player.AddStageScore(r.score)
		ctx.PlaySound("getFire")
	})
	if !r.dead {
		ctx.Section.AddLightTiles(fireRockLight, r.X, r.Y, r.W, r.H)
	}
}

type LifeArgs struct {
	// Mega is worth five lives.
	Mega bool `yaml:"mega"`
}

// Life gives extra lives as soon as it is touched.
type Life struct {
	FloatingItem
	lives int
}

func NewLife(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Life, error) {
	var a LifeArgs
	if err := decode("Life", args, &a); err != nil {
		return nil, err
	}
	l := &Life{lives: 1}
	if a.Mega {
		l.FloatingItem = newFloating("Life", x, y, 32, 32, common.Vector{}, 8, 1, pulse, 6, sim.BombAny)
		l.lives = 5
	} else {
		l.FloatingItem = newFloating("Life", x+2, y+2, 28, 28, common.Vector{}, 8, 1, pulse, 6, sim.BombAny)
	}
	if Check(ctx, sw, l) {
		return nil, nil
	}
	return l, nil
}

func (l *Life) Update(ctx *sim.Context) {
	l.float(ctx, func() {
		Take(ctx, l, false, "")
		c := l.Center()
		getItemEffect(ctx, c.X, c.Y)
		ctx.Section.AddScoreEffect(c.X, l.Y, l.lives)
	})
}

func (l *Life) Use(ctx *sim.Context, sw *sim.Switch) bool {
	ctx.Stage.LifeCount += l.lives
	SetSwitch(sw)
	return true
}

type KeyArgs struct {
	Type int `yaml:"type"`
}

// Key opens the locked door of the same type the bomb stands in front of.
type Key struct {
	FloatingItem
	Type int
}

func NewKey(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Key, error) {
	var a KeyArgs
	if err := decode("Key", args, &a); err != nil {
		return nil, err
	}
	k := &Key{
		FloatingItem: newFloating("Key", x+3, y+3, 26, 26, vec(-3, -3), 1, 1, nil, 0, sim.BombAny),
		Type:         a.Type,
	}
	k.IconName = "Key" + strconv.Itoa(a.Type)
	if sw != nil {
		sw.Extra = strconv.Itoa(a.Type)
	}
	if Check(ctx, sw, k) {
		return nil, nil
	}
	return k, nil
}

func (k *Key) Update(ctx *sim.Context) {
	k.float(ctx, func() { Take(ctx, k, true, "") })
}

func (k *Key) Use(ctx *sim.Context, sw *sim.Switch) bool {
	d, ok := ctx.Section.ActiveObject().(*Door)
	if !ok || !d.Locked || d.Type != k.Type {
		return false
	}
	d.Unlock(ctx)
	SetSwitch(sw)
	return true
}

// Attack is a pickup reserved for one bomb type that unleashes an attack
// when used. Attack1 to Attack5 differ in the bomb type and the attack.
type Attack struct {
	FloatingItem
	fire func(ctx *sim.Context, b sim.Bomb)
}

func newAttack(ctx *sim.Context, name string, x, y float64, cols, rows int, bombType sim.BombType, sw *sim.Switch, fire func(*sim.Context, sim.Bomb)) *Attack {
	s := &Attack{
		FloatingItem: newFloating(name, x+2, y+2, 28, 28, common.Vector{}, cols, rows, pulse, 6, bombType),
		fire:         fire,
	}
	if Check(ctx, sw, s) {
		return nil
	}
	return s
}

func (s *Attack) Update(ctx *sim.Context) {
	s.float(ctx, func() { Take(ctx, s, true, "") })
}

func (s *Attack) Use(ctx *sim.Context, sw *sim.Switch) bool {
	b := ctx.Bomb()
	if b.Type() != s.BombType {
		return false
	}
	s.fire(ctx, b)
	SetSwitch(sw)
	return true
}

func facingAngle(b sim.Bomb) float64 {
	if b.FacingRight() {
		return 0
	}
	return 180
}

// Attack1 fires a blue shot forward.
func NewAttack1(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Attack, error) {
	s := newAttack(ctx, "Attack1", x, y, 8, 1, sim.BombBlue, sw, func(ctx *sim.Context, b sim.Bomb) {
		c := b.Body().Center()
		ctx.Section.Add(actor.NewProjectile(c.X-10, c.Y-6, actor.ProjectileBlue, facingAngle(b), b))
	})
	if s == nil {
		return nil, nil
	}
	return s, nil
}

// Attack2 fires a red shot straight up.
func NewAttack2(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Attack, error) {
	s := newAttack(ctx, "Attack2", x, y, 8, 1, sim.BombRed, sw, func(ctx *sim.Context, b sim.Bomb) {
		body := b.Body()
		ctx.Section.Add(actor.NewProjectile(body.X, body.Y, actor.ProjectileRed, 270, b))
	})
	if s == nil {
		return nil, nil
	}
	return s, nil
}

// Attack3 wraps a yellow bomb in an aura for 15 seconds.
func NewAttack3(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Attack, error) {
	s := newAttack(ctx, "Attack3", x, y, 8, 1, sim.BombYellow, sw, func(ctx *sim.Context, b sim.Bomb) {
		b.SetAura(2, 900)
	})
	if s == nil {
		return nil, nil
	}
	return s, nil
}

// Attack4 fires a frost shot forward.
func NewAttack4(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Attack, error) {
	s := newAttack(ctx, "Attack4", x, y, 4, 2, sim.BombBlue, sw, func(ctx *sim.Context, b sim.Bomb) {
		c := b.Body().Center()
		ctx.Section.Add(actor.NewProjectile(c.X-4, c.Y-4, actor.ProjectileFrost, facingAngle(b), b))
	})
	if s == nil {
		return nil, nil
	}
	return s, nil
}

// Attack5 fires a ring of eight stars.
func NewAttack5(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Attack, error) {
	s := newAttack(ctx, "Attack5", x, y, 4, 2, sim.BombBlue, sw, func(ctx *sim.Context, b sim.Bomb) {
		c := b.Body().Center()
		for i := range 8 {
			ctx.Section.Add(actor.NewProjectile(c.X-10, c.Y-5, actor.ProjectileStar, float64(i*45), b))
		}
	})
	if s == nil {
		return nil, nil
	}
	return s, nil
}

type ShieldArgs struct {
	// Type 2 is the yellow shield; anything else is blue.
	Type int `yaml:"type"`
}

// Shield protects the bomb from one hit. It is used on the spot unless the
// bomb is already shielded.
type Shield struct {
	FloatingItem
}

func NewShield(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Shield, error) {
	a := ShieldArgs{Type: 1}
	if err := decode("Shield", args, &a); err != nil {
		return nil, err
	}
	bt := sim.BombBlue
	if a.Type == 2 {
		bt = sim.BombYellow
	}
	s := &Shield{newFloating("Shield", x+2, y+2, 28, 28, common.Vector{}, 4, 2, pulse, 6, bt)}
	s.IconName = "shield" + strconv.Itoa(a.Type)
	if sw != nil {
		sw.Extra = strconv.Itoa(a.Type)
	}
	if Check(ctx, sw, s) {
		return nil, nil
	}
	return s, nil
}

func (s *Shield) Update(ctx *sim.Context) {
	s.float(ctx, func() { Take(ctx, s, ctx.Bomb().Shielded(), "") })
}

func (s *Shield) Use(ctx *sim.Context, sw *sim.Switch) bool {
	b := ctx.Bomb()
	if b.Type() != s.BombType || b.Shielded() {
		return false
	}
	b.SetShielded(true)
	SetSwitch(sw)
	return true
}

type HeartArgs struct {
	// Type picks the bomb that can take it: 1 red, 2 green, 3 white.
	Type int `yaml:"type"`
}

// Heart restores one hit point of the bomb it is meant for.
type Heart struct {
	FloatingItem
}

func NewHeart(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Heart, error) {
	a := HeartArgs{Type: 1}
	if err := decode("Heart", args, &a); err != nil {
		return nil, err
	}
	var bt sim.BombType
	switch a.Type {
	case 1:
		bt = sim.BombRed
	case 2:
		bt = sim.BombGreen
	case 3:
		bt = sim.BombWhite
	default:
		return nil, invalid("Heart", "type must be 1 to 3, got %d", a.Type)
	}
	return &Heart{newFloating("Heart", x+2, y+2, 28, 28, common.Vector{}, 8, 1, pulse, 6, bt)}, nil
}

func (h *Heart) Update(ctx *sim.Context) {
	h.float(ctx, func() {
		b := ctx.Bomb()
		b.SetHP(b.HP() + 1)
		ctx.PlaySound("getItem")
		c := h.Center()
		getItemEffect(ctx, c.X, c.Y)
	})
}

// Hourglass resets the white bomb's ability cooldown.
type Hourglass struct {
	FloatingItem
}

func NewHourglass(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Hourglass, error) {
	return &Hourglass{newFloating("Hourglass", x+2, y+2, 28, 28, common.Vector{}, 8, 1, pulse, 6, sim.BombWhite)}, nil
}

func (h *Hourglass) Update(ctx *sim.Context) {
	h.float(ctx, func() {
		ctx.Bomb().ResetCooldown()
		ctx.PlaySound("getItem")
	})
}

// BoardItem is a plank the bomb can lay down where it stands.
type BoardItem struct {
	FloatingItem
}

func NewBoardItem(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*BoardItem, error) {
	b := &BoardItem{newFloating("BoardItem", x+6, y+3, 20, 26, vec(-6, -3), 1, 1, nil, 0, sim.BombAny)}
	b.IconName = "board"
	if Check(ctx, sw, b) {
		return nil, nil
	}
	return b, nil
}

func (b *BoardItem) Update(ctx *sim.Context) {
	b.float(ctx, func() { Take(ctx, b, true, "") })
}

func (b *BoardItem) Use(ctx *sim.Context, sw *sim.Switch) bool {
	bomb := ctx.Bomb()
	body := bomb.Body()
	if body.Bottom == nil {
		return false
	}
	x := body.X + body.W - boardWidth
	if bomb.FacingRight() {
		x = body.X
	}
	ctx.Section.Add(NewBoard(ctx, x, body.Y+body.H-2, bomb.FacingRight(), sw))
	SetSwitch(sw)
	return true
}

// Hammer pulls up a board the bomb stands next to.
type Hammer struct {
	FloatingItem
}

func NewHammer(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Hammer, error) {
	h := &Hammer{newFloating("Hammer", x+7, y+1, 18, 30, vec(-7, -1), 1, 1, nil, 0, sim.BombAny)}
	h.IconName = "hammer"
	if Check(ctx, sw, h) {
		return nil, nil
	}
	return h, nil
}

func (h *Hammer) Update(ctx *sim.Context) {
	h.float(ctx, func() { Take(ctx, h, true, "") })
}

func (h *Hammer) Use(ctx *sim.Context, sw *sim.Switch) bool {
	board, ok := ctx.Section.ActiveObject().(*Board)
	if !ok {
		return false
	}
	board.Take(ctx)
	SetSwitch(sw)
	return true
}

// activator is the body of the items used on a section element of a given
// kind, such as a puzzle or a character waiting for something.
type activator struct {
	FloatingItem
	target string
	apply  func(ctx *sim.Context, obj sim.Actor) bool
}

func (a *activator) Update(ctx *sim.Context) {
	a.float(ctx, func() { Take(ctx, a, true, "") })
}

func (a *activator) Use(ctx *sim.Context, sw *sim.Switch) bool {
	obj := ctx.Section.ActiveObject()
	k, ok := obj.(sim.Kinded)
	if !ok || k.KindName() != a.target || !a.apply(ctx, obj) {
		return false
	}
	SetSwitch(sw)
	return true
}

func activate(ctx *sim.Context, obj sim.Actor) bool {
	act, ok := obj.(interface{ Activate(ctx *sim.Context) })
	if !ok {
		return false
	}
	act.Activate(ctx)
	return true
}

// Herb heals the Monep that asks for it. It lies on the ground instead of
// floating.
type Herb struct {
	*activator
}

func NewHerb(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Herb, error) {
	h := &Herb{&activator{
		FloatingItem: newFloating("Herb", x, y-4, 30, 36, vec(-3, -4), 1, 1, nil, 0, sim.BombAny),
		target:       "Monep",
		apply:        activate,
	}}
	h.IconName = "herb"
	h.active = common.NewRect(x-3, y-8, 36, 40)
	if Check(ctx, sw, h) {
		return nil, nil
	}
	return h, nil
}

func (h *Herb) Update(ctx *sim.Context) {
	if b := ctx.Bomb(); b != nil && !ctx.PlayerDead() && b.Collide(h.Bounds()) {
		Take(ctx, h, true, "")
		h.dead = true
	}
}

// JillisStone wakes the MountainBombie.
type JillisStone struct {
	*activator
}

func NewJillisStone(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*JillisStone, error) {
	j := &JillisStone{&activator{
		FloatingItem: newFloating("JillisStone", x+6, y+6, 20, 20, vec(0, -2), 3, 2, []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5}, 7, sim.BombAny),
		target:       "MountainBombie",
		apply:        activate,
	}}
	j.IconName = "jillisStone"
	if Check(ctx, sw, j) {
		return nil, nil
	}
	return j, nil
}

type PuzzlePieceArgs struct {
	Number int `yaml:"number"`
}

// PuzzlePiece is one of the four pieces of a Puzzle.
type PuzzlePiece struct {
	*activator
	Number int
}

func NewPuzzlePiece(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*PuzzlePiece, error) {
	var a PuzzlePieceArgs
	if err := decode("PuzzlePiece", args, &a); err != nil {
		return nil, err
	}
	if a.Number < 1 || a.Number > puzzlePieces {
		return nil, invalid("PuzzlePiece", "number must be 1 to %d, got %d", puzzlePieces, a.Number)
	}
	var dx, dy float64
	switch a.Number {
	case 2:
		dx = -8
	case 4:
		dy = -8
	}
	p := &PuzzlePiece{Number: a.Number}
	p.activator = &activator{
		FloatingItem: newFloating("PuzzlePiece", x+dx, y+dy, 32, 32, common.Vector{}, 1, 1, nil, 0, sim.BombAny),
		target:       "Puzzle",
		apply: func(ctx *sim.Context, obj sim.Actor) bool {
			pz, ok := obj.(*Puzzle)
			return ok && pz.AddPiece(ctx, p.Number)
		},
	}
	p.IconName = "puzzlePiece"
	if sw != nil {
		sw.Extra = strconv.Itoa(a.Number)
	}
	if Check(ctx, sw, p) {
		return nil, nil
	}
	return p, nil
}

// Star counts toward the stage's star total.
type Star struct {
	FloatingItem
}

func NewStar(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Star, error) {
	if sw != nil && sw.State == sim.Used {
		ctx.Stage.GetStar()
		return nil, nil
	}
	s := &Star{newFloating("Star", x+4, y+4, 24, 24, vec(-8, -8), 3, 1, []int{0, 1, 2, 1}, 10, sim.BombAny)}
	s.track(sw)
	return s, nil
}

func (s *Star) Update(ctx *sim.Context) {
	s.float(ctx, func() {
		sw := s.sw
		if sw == nil {
			sw = &sim.Switch{Type: "Star", ID: -1, Obj: s}
			ctx.Stage.AddSwitch(sw)
		}
		s.Use(ctx, sw)
		c := s.Center()
		getItemEffect(ctx, c.X, c.Y)
		ctx.PlaySound("getItem")
	})
}

func (s *Star) Use(ctx *sim.Context, sw *sim.Switch) bool {
	ctx.Stage.GetStar()
	sw.State = sim.TempUsed
	return true
}

const specScore = 1000

// Spec is the hidden collectible of a stage. It only appears until the
// player has found it once.
type Spec struct {
	FloatingItem
}

func NewSpec(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (*Spec, error) {
	if ctx.Player != nil && ctx.Stage != nil && ctx.Player.HasSpec(ctx.Stage.ID) {
		return nil, nil
	}
	s := &Spec{newFloating("Spec", x-1, y-1, 34, 34, vec(-12, -12), 2, 2, []int{0, 1, 2, 3}, 5, sim.BombAny)}
	if Check(ctx, sw, s) {
		ctx.Stage.SetSpecTaken()
		return nil, nil
	}
	return s, nil
}

func (s *Spec) Update(ctx *sim.Context) {
	s.float(ctx, func() { Take(ctx, s, false, "") })
	if !s.dead && ctx.Float() < 0.05 {
		x := s.X + float64(ctx.Intn(int(s.W))) - 7
		y := s.Y + float64(ctx.Intn(int(s.H))) - 7
		ctx.Section.AddEffect(actor.NewEffect(x, y, "fx_Glow1", 3, 2, 6, []int{0, 1, 2, 3, 4, 5, 4, 3, 2, 1, 0}, 66))
	}
}

func (s *Spec) Use(ctx *sim.Context, sw *sim.Switch) bool {
	ctx.Player.AddStageScore(specScore)
	ctx.Stage.SetSpecTaken()
	return true
}

func vec(x, y float64) common.Vector { return common.Vector{X: x, Y: y} }

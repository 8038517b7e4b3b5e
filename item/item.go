// Package item implements the pickups of a section and the props they are
// used on.
//
// Every item placed in a section owns a sim.Switch. Its state at load time
// decides whether the item is placed at all:
//
//	taken   -> registered into the inventory, not placed
//	used    -> not placed
//	other   -> placed as a live element
//
// Taking an item stores it (temp_taken) or uses it on the spot
// (temp_taken_used). The temporary states are committed when the section is
// finished and rolled back when the bomb dies.
package item

import (
	"fmt"

	"github.com/milk9111/bombsim/actor"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
)

// Item is what the inventory sees of a stored pickup.
type Item interface {
	// Use applies the item and reports whether it worked. A failed use
	// leaves sw untouched.
	Use(ctx *sim.Context, sw *sim.Switch) bool
	Icon() string
}

// Check applies the persisted state of sw to it at section load and reports
// whether the item must not be placed.
func Check(ctx *sim.Context, sw *sim.Switch, it Item) bool {
	if sw == nil {
		return false
	}
	if t, ok := it.(tracker); ok {
		t.track(sw)
	}
	switch sw.State {
	case sim.Taken:
		if ctx.Player != nil {
			ctx.Player.AddItem(sw)
		}
		sw.Obj = it
		return true
	case sim.Used:
		return true
	}
	return false
}

// Take collects it. A stored item goes to the inventory; otherwise it is used
// immediately.
func Take(ctx *sim.Context, it Item, store bool, sound string) {
	var sw *sim.Switch
	if t, ok := it.(tracker); ok {
		sw = t.tracked()
	}
	if sw == nil {
		sw = ctx.Stage.FindSwitch(it)
	}
	if sw == nil {
		typ := fmt.Sprintf("%T", it)
		if k, ok := it.(sim.Kinded); ok {
			typ = k.KindName()
		}
		sw = &sim.Switch{Type: typ, ID: -1, Obj: it}
		ctx.Stage.AddSwitch(sw)
	}
	sw.Obj = it
	if store {
		if ctx.Player != nil {
			ctx.Player.AddItem(sw)
		}
		sw.State = sim.TempTaken
	} else {
		it.Use(ctx, sw)
		sw.State = sim.TempTakenUsed
	}
	if sound == "" {
		sound = "getItem"
	}
	ctx.PlaySound(sound)
}

// SetSwitch records a successful use in sw.
func SetSwitch(sw *sim.Switch) {
	switch sw.State {
	case sim.Taken:
		sw.State = sim.TakenTempUsed
	case sim.TempTaken:
		sw.State = sim.TempTakenUsed
	default:
		sw.State = sim.TempUsed
	}
}

// tracker is implemented by items that remember the switch they were
// placed with.
type tracker interface {
	track(sw *sim.Switch)
	tracked() *sim.Switch
}

// pulse is the idle sequence shared by most pickups: a long rest on the
// first frame followed by a quick shine.
var pulse = []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7}

const bobInterval = 10

// FloatingItem is a pickup hovering in place. It bobs one pixel up and down
// in a four step cycle and is collected when the bomb touches it, if the
// bomb is of the required type.
type FloatingItem struct {
	physics.Body

	Name     string
	IconName string
	Sheet    actor.Sprite
	ImgGap   common.Vector
	Anim     component.Animation
	BombType sim.BombType
	Color    uint32

	animated bool
	bob      int
	counter  int
	active   common.Rect
	dead     bool
	sw       *sim.Switch
}

func newFloating(name string, x, y, w, h float64, gap common.Vector, cols, rows int, indices []int, interval int, bombType sim.BombType) FloatingItem {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	f := FloatingItem{
		Body:     physics.NewBody(x, y, w, h),
		Name:     name,
		IconName: name,
		Sheet:    actor.Sprite{Cols: cols, Rows: rows, W: w - 2*gap.X, H: h - 2*gap.Y},
		ImgGap:   gap,
		Anim:     component.NewAnimation([]int{0}, 1),
		BombType: bombType,
		Color:    0xffffff,
		bob:      3,
	}
	if len(indices) > 0 {
		f.Anim = component.NewAnimation(indices, interval)
		f.animated = true
	}
	f.active = common.NewRect(x+gap.X, y+gap.Y, f.Sheet.W, f.Sheet.H)
	return f
}

func (f *FloatingItem) Dead() bool                { return f.dead }
func (f *FloatingItem) Kill()                     { f.dead = true }
func (f *FloatingItem) Icon() string              { return f.IconName }
func (f *FloatingItem) KindName() string          { return f.Name }
func (f *FloatingItem) ActiveBounds() common.Rect { return f.active }

func (f *FloatingItem) track(sw *sim.Switch) { f.sw = sw }
func (f *FloatingItem) tracked() *sim.Switch { return f.sw }

// StopTimeImmune keeps pickups bobbing unless time is stopped for
// everything.
func (f *FloatingItem) StopTimeImmune() bool { return true }

// float runs the shared update. onTouch runs once when the bomb collects
// the item, which then disappears.
func (f *FloatingItem) float(ctx *sim.Context, onTouch func()) {
	if b := ctx.Bomb(); b != nil && !ctx.PlayerDead() && b.Collide(f.Bounds()) &&
		(f.BombType == sim.BombAny || b.Type() == f.BombType) {
		onTouch()
		f.dead = true
		return
	}
	if ctx.Stage != nil && ctx.Stage.Stopped == sim.StopAll {
		return
	}
	f.counter++
	if f.counter == bobInterval {
		if f.bob == 0 || f.bob == 1 {
			f.Y--
		} else {
			f.Y++
		}
		f.bob = (f.bob + 1) % 4
		f.counter = 0
	}
	if f.animated {
		f.Anim.Update()
	}
}

// Update is the behavior of a pickup that only disappears when touched.
func (f *FloatingItem) Update(ctx *sim.Context) { f.float(ctx, func() {}) }

func (f *FloatingItem) View(st *sim.Stage) sim.View {
	return sim.View{
		Name:  f.Name,
		Rect:  common.NewRect(f.X+f.ImgGap.X, f.Y+f.ImgGap.Y, f.Sheet.W, f.Sheet.H),
		Frame: f.Anim.Index,
		Color: f.Color,
		Alpha: 0xff,
	}
}

// getItemEffect is the sparkle shown where an item is collected.
func getItemEffect(ctx *sim.Context, x, y float64) {
	ctx.Section.AddEffect(actor.NewEffect(x-16, y-16, "fx_getItem", 2, 2, 4, nil, 0))
}

func decode(name string, args actor.Args, v any) error {
	if args == nil || !args.Present() {
		return nil
	}
	if err := args.Decode(v); err != nil {
		return fmt.Errorf("item: %s args: %w: %w", name, actor.ErrInvalidArgs, err)
	}
	return nil
}

func invalid(name, format string, a ...any) error {
	return fmt.Errorf("item: %s: %w: %s", name, actor.ErrInvalidArgs, fmt.Sprintf(format, a...))
}

package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/component"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/sim"
)

// object is the base of actors that do not follow the enemy protocol:
// hazards that cannot be hurt normally, projectiles, effects and props.
type object struct {
	physics.Body

	name   string
	Sprite Sprite
	ImgGap common.Vector
	Anim   component.Animation
	Angle  float64
	Color  uint32
	Alpha  uint8
	// tinted objects take the stop-time color like enemies do.
	tinted bool

	active common.Rect
	dead   bool
}

func newObject(name string, x, y, w, h float64, gap common.Vector, cols, rows int) object {
	o := object{
		Body:   physics.NewBody(x, y, w, h),
		name:   name,
		Sprite: Sprite{Cols: cols, Rows: rows, W: w - 2*gap.X, H: h - gap.Y},
		ImgGap: gap,
		Anim:   component.NewAnimation([]int{0}, 1),
		Color:  0xffffff,
		Alpha:  0xff,
	}
	o.active = common.NewRect(x+gap.X, y+gap.Y, o.Sprite.W, o.Sprite.H)
	return o
}

func (o *object) Dead() bool                { return o.dead }
func (o *object) Kill()                     { o.dead = true }
func (o *object) ActiveBounds() common.Rect { return o.active }

func (o *object) View(st *sim.Stage) sim.View {
	v := sim.View{
		Name:  o.name,
		Rect:  common.NewRect(o.X+o.ImgGap.X, o.Y+o.ImgGap.Y, o.Sprite.W, o.Sprite.H),
		Frame: o.Anim.Index,
		Color: o.Color,
		Alpha: o.Alpha,
		Angle: o.Angle,
	}
	if o.tinted && st.StopTint() {
		v.Color = sim.StopTintColor
	}
	return v
}

// award gives the player score for destroying something that is not an
// enemy and shows the score effect.
func award(ctx *sim.Context, x, y float64, score int) {
	ctx.Player.AddStageScore(score)
	ctx.Section.AddScoreEffect(x, y, score)
}

func newLoop(indices []int, interval int) component.Animation {
	return component.NewAnimation(indices, interval)
}

func (o *object) KindName() string { return o.name }

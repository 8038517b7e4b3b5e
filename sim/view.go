package sim

import "github.com/milk9111/bombsim/common"

// StopTintColor is the color stopped actors are tinted with.
const StopTintColor = 0xff6666

// View is what a front end needs to draw one actor.
type View struct {
	Name  string
	Rect  common.Rect
	Frame int
	FlipX bool
	FlipY bool
	// Hidden is set while the actor blinks.
	Hidden bool
	Color  uint32
	Alpha  uint8
	Angle  float64
}

// Viewable actors can be drawn.
type Viewable interface {
	View(st *Stage) View
}

// Paneled actors may show a dialogue panel over the scene.
type Paneled interface {
	Panel() (text string, ok bool)
}

// Tracked actors draw a trail along their path.
type Tracked interface {
	Track() []common.Vector
}

// Decorated actors draw extra sprites besides their own.
type Decorated interface {
	Decorations(st *Stage) []View
}

package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bombsim/common"
)

// Obstacle is anything a body can collide with. Passable obstacles only
// stop bodies falling onto them from above.
type Obstacle interface {
	Bounds() common.Rect
	Passable() bool
}

// Block is a static solid rectangle, usually a map tile.
type Block struct {
	common.Rect
	OneWay bool
}

func NewBlock(x, y, w, h float64, oneWay bool) *Block {
	return &Block{Rect: common.NewRect(x, y, w, h), OneWay: oneWay}
}

func (b *Block) Bounds() common.Rect { return b.Rect }
func (b *Block) Passable() bool      { return b.OneWay }

// Ramp is a right-triangle slope. When Left is set the slope rises toward
// the left edge.
type Ramp struct {
	X, Y, W, H float64
	Left       bool
}

func NewRamp(x, y, w, h float64, left bool) *Ramp {
	return &Ramp{X: x, Y: y, W: w, H: h, Left: left}
}

func (r *Ramp) Bounds() common.Rect { return common.NewRect(r.X, r.Y, r.W, r.H) }
func (r *Ramp) Passable() bool      { return true }

// SurfaceY returns the height of the slope at world x, clamped to the ramp's
// horizontal extent.
func (r *Ramp) SurfaceY(x float64) float64 {
	t := cp.Clamp((x-r.X)/r.W, 0, 1)
	if r.Left {
		return r.Y + t*r.H
	}
	return r.Y + (1-t)*r.H
}

// Covers reports whether x lies over the ramp.
func (r *Ramp) Covers(x float64) bool {
	return x >= r.X && x <= r.X+r.W
}

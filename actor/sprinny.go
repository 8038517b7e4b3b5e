package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

type LeapArgs struct {
	// Leaps is how many leaps are made before turning around.
	Leaps int `yaml:"leaps"`
}

// Sprinny idles on the ground and periodically leaps under reduced gravity,
// turning around after a set number of leaps.
type Sprinny struct {
	Enemy
	leaps     int
	maxLeaps  int
	idleTimer int
}

func NewSprinny(ctx *sim.Context, x, y float64, args Args) (*Sprinny, error) {
	var a LeapArgs
	if err := decodeArgs(KindSprinny, args, &a); err != nil {
		return nil, err
	}
	if a.Leaps < 0 {
		return nil, invalid(KindSprinny, "leaps must not be negative, got %d", a.Leaps)
	}
	s := &Sprinny{
		Enemy:    newEnemy(KindSprinny, x+3, y, 26, 32, vec(-2, -5), 3, 1, []int{0}, 7, 200, 1),
		leaps:    1000,
		maxLeaps: a.Leaps,
	}
	s.FacingRight = true
	s.bind(s)
	return s, nil
}

func (s *Sprinny) Update(ctx *sim.Context) {
	s.update(ctx, 24, func() {
		var forces common.Vector
		if s.Bottom != nil {
			s.Speed.X = 0
			s.Anim.Indices = []int{0, 1}
			s.idleTimer++
			if s.idleTimer > 30 {
				s.leaps++
				if s.leaps > s.maxLeaps {
					s.leaps = 1
					s.FacingRight = !s.FacingRight
				}
				forces.X = -3
				if s.FacingRight {
					forces.X = 3
				}
				forces.Y = -8.5
				s.idleTimer = 0
				s.Anim.Indices = []int{0}
			}
		}
		s.MoveWithGravity(forces, s.obstacles(ctx), ctx.Section.Ramps(), common.Gravity*0.75)
	})
}

package actor

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

const quartinShieldRadius = 36

// QuartinShield is one of the crystals orbiting a Quartin. It breaks when
// stomped, shot or blown up. The Quartin owns and steps its shields.
type QuartinShield struct {
	object
	center common.Vector
	angle  float64
	dying  bool
	timer  int
}

func newQuartinShield(x, y float64, center common.Vector, angle float64) *QuartinShield {
	return &QuartinShield{
		object: newObject(KindQuartinShield.String(), x, y, 24, 24, vec(-4, -4), 2, 2),
		center: center,
		angle:  angle,
	}
}

func (s *QuartinShield) Dying() bool { return s.dying }

func (s *QuartinShield) Update(ctx *sim.Context) {
	if s.dying {
		s.Anim.Play([]int{1, 2, 3}, 5)
		s.Anim.Update()
		s.timer++
		if s.timer == 15 {
			s.dead = true
		}
		return
	}
	b := ctx.Bomb()
	if b.Over(s.Bounds(), 0) {
		b.Bounce(true)
		s.Anim.SetFrame(1)
		s.dying = true
	} else {
		if b.Collide(s.Bounds()) {
			b.Hit(1)
		}
		s.angle += 2
		if s.angle == 360 {
			s.angle = 0
		}
		p := cp.ForAngle(common.DegToRad(s.angle)).Mult(quartinShieldRadius).Add(s.center)
		s.X = p.X - s.W/2
		s.Y = p.Y - s.H/2
	}
	if b.Explode(s.Bounds()) || ctx.Section.Explode(s.Bounds()) || damaging(ctx.Section.ProjectileHit(s.Bounds(), s)) {
		s.dying = true
	}
}

// PathArgs configures kinds that fly back and forth along a straight path.
type PathArgs struct {
	// Tiles is the length of the path.
	Tiles int  `yaml:"tiles"`
	Left  bool `yaml:"left"`
}

// Quartin floats back and forth behind four orbiting shields. It dies when
// the last shield breaks.
type Quartin struct {
	Enemy
	shields  []*QuartinShield
	movement float64
	aim      common.Vector
}

func NewQuartin(ctx *sim.Context, x, y float64, args Args) (*Quartin, error) {
	var a PathArgs
	if err := decodeArgs(KindQuartin, args, &a); err != nil {
		return nil, err
	}
	if a.Tiles < 0 {
		return nil, invalid(KindQuartin, "tiles must not be negative, got %d", a.Tiles)
	}
	q := &Quartin{
		Enemy:    newEnemy(KindQuartin, x+2, y+2, 28, 28, vec(-4, -4), 2, 2, []int{0, 1, 2, 1}, 10, 360, 1),
		movement: float64(a.Tiles * common.TileSize),
	}
	c := q.Center()
	q.shields = []*QuartinShield{
		newQuartinShield(q.X+38, q.Y+2, c, 0),
		newQuartinShield(q.X+2, q.Y-34, c, 90),
		newQuartinShield(q.X-34, q.Y+2, c, 180),
		newQuartinShield(q.X+2, q.Y+38, c, 270),
	}
	q.FacingRight = !a.Left
	q.aim = q.nextAim()
	q.bind(q)
	return q, nil
}

func (q *Quartin) nextAim() common.Vector {
	if q.FacingRight {
		return vec(q.X+q.movement, q.Y)
	}
	return vec(q.X-q.movement, q.Y)
}

func (q *Quartin) Update(ctx *sim.Context) {
	q.update(ctx, 0, func() {
		q.MoveFree(q.aim, 2)
		if q.Speed.X == 0 && q.Speed.Y == 0 {
			q.FacingRight = !q.FacingRight
			q.aim = q.nextAim()
		}
		c := q.Center()
		for i := len(q.shields) - 1; i >= 0; i-- {
			s := q.shields[i]
			s.center = c
			s.Update(ctx)
			if s.Dead() {
				q.shields = append(q.shields[:i], q.shields[i+1:]...)
			}
		}
		if len(q.shields) == 0 && q.Health.HP > 0 {
			q.Hit(ctx, 1)
		}
	})
}

// Shields returns the shields still orbiting.
func (q *Quartin) Shields() []*QuartinShield { return q.shields }

func (q *Quartin) HitByBomb(ctx *sim.Context) { ctx.Bomb().Hit(1) }

func (q *Quartin) HitByProjectile(ctx *sim.Context) {}

func (q *Quartin) Decorations(st *sim.Stage) []sim.View {
	views := make([]sim.View, 0, len(q.shields))
	for _, s := range q.shields {
		views = append(views, s.View(st))
	}
	return views
}

package actor

import (
	"fmt"

	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/script"
	"github.com/milk9111/bombsim/sim"
)

type ScriptedArgs struct {
	Name   string  `yaml:"name"`
	Source string  `yaml:"source"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Cols   int     `yaml:"cols"`
	Rows   int     `yaml:"rows"`
	HP     int     `yaml:"hp"`
	Score  int     `yaml:"score"`
	Boss   bool    `yaml:"boss"`
	Song   string  `yaml:"song"`
	// Float turns gravity off.
	Float bool `yaml:"float"`
}

// Scripted is an enemy whose behavior is a tengo program. The base protocol
// still applies; the program only replaces the kind's own block.
type Scripted struct {
	Enemy
	rt     *script.Runtime
	forces common.Vector
	float  bool
}

func NewScripted(ctx *sim.Context, x, y float64, args Args) (*Scripted, error) {
	a := ScriptedArgs{Name: "scripted", Width: 32, Height: 32, Cols: 1, Rows: 1, HP: 1, Score: 100}
	if err := decodeArgs(KindScripted, args, &a); err != nil {
		return nil, err
	}
	if a.Width <= 0 || a.Height <= 0 {
		return nil, invalid(KindScripted, "size must be positive, got %gx%g", a.Width, a.Height)
	}
	if a.Cols <= 0 || a.Rows <= 0 {
		return nil, invalid(KindScripted, "sheet must have at least one frame")
	}
	rt, err := script.Compile(a.Name, []byte(a.Source))
	if err != nil {
		return nil, fmt.Errorf("actor: %s: %w: %w", KindScripted, ErrInvalidArgs, err)
	}
	s := &Scripted{
		Enemy: newEnemy(KindScripted, x, y+common.TileSize-a.Height, a.Width, a.Height, common.Vector{}, a.Cols, a.Rows, []int{0}, 1, a.Score, a.HP),
		rt:    rt,
		float: a.Float,
	}
	if a.Boss {
		s.attachBoss(a.Song)
	}
	s.bind(s)
	return s, nil
}

// Err is the error that stopped the program, if any.
func (s *Scripted) Err() error { return s.rt.Err() }

func (s *Scripted) Update(ctx *sim.Context) {
	if s.Boss != nil {
		s.Boss.Update(ctx, &s.Enemy, func() { s.update(ctx, 0, func() { s.step(ctx) }) })
		return
	}
	s.update(ctx, 0, func() { s.step(ctx) })
}

func (s *Scripted) step(ctx *sim.Context) {
	s.forces = common.Vector{}
	// a failed program leaves the body to physics
	_ = s.rt.Run(script.PhaseUpdate, s.engine(ctx))
	if s.float {
		s.MoveWithGravity(s.forces, s.obstacles(ctx), ctx.Section.Ramps(), 0)
		return
	}
	s.Move(s.forces, s.obstacles(ctx), ctx.Section.Ramps())
}

func (s *Scripted) Hit(ctx *sim.Context, amount int) {
	if s.dying || s.dead {
		return
	}
	s.Enemy.Hit(ctx, amount)
	_ = s.rt.Run(script.PhaseHit, s.engine(ctx))
}

func (s *Scripted) engine(ctx *sim.Context) script.Engine {
	pair := func(v common.Vector) any { return []any{v.X, v.Y} }
	return script.Engine{
		"position":      func(...any) any { return pair(s.Position()) },
		"size":          func(...any) any { return []any{s.W, s.H} },
		"bomb_position": func(...any) any { return pair(ctx.Bomb().Body().Center()) },
		"facing_right":  func(...any) any { return s.FacingRight },
		"face": func(args ...any) any {
			s.FacingRight = script.Bool(script.Arg(args, 0))
			return nil
		},
		"hp":        func(...any) any { return s.Health.HP },
		"frame":     func(...any) any { return ctx.Frame },
		"on_ground": func(...any) any { return s.Bottom != nil },
		"blocked": func(...any) any {
			return []any{s.Left != nil, s.Right != nil}
		},
		"move": func(args ...any) any {
			s.forces = s.forces.Add(vec(script.Float(script.Arg(args, 0)), script.Float(script.Arg(args, 1))))
			return nil
		},
		"set_speed": func(args ...any) any {
			s.Speed = vec(script.Float(script.Arg(args, 0)), script.Float(script.Arg(args, 1)))
			return nil
		},
		"shoot": func(args ...any) any {
			typ := script.Int(script.Arg(args, 0))
			if _, ok := projectileSpecs[typ]; !ok {
				return false
			}
			c := s.Center()
			ctx.Section.Add(NewProjectile(c.X, c.Y, typ, script.Float(script.Arg(args, 1)), s))
			return true
		},
		"animate": func(args ...any) any {
			indices := script.Ints(script.Arg(args, 0))
			if len(indices) == 0 {
				return false
			}
			interval := script.Int(script.Arg(args, 1))
			if interval <= 0 {
				interval = s.Anim.Interval
			}
			s.Anim.Play(indices, interval)
			return true
		},
		"sound": func(args ...any) any {
			if id, ok := script.Arg(args, 0).(string); ok {
				ctx.PlaySound(id)
			}
			return nil
		},
		"rand": func(args ...any) any { return ctx.Intn(script.Int(script.Arg(args, 0))) },
		"obstacle_at": func(args ...any) any {
			return ctx.Section.ObstacleAt(script.Float(script.Arg(args, 0)), script.Float(script.Arg(args, 1)))
		},
		"hurt_bomb": func(...any) any {
			ctx.Bomb().Hit(1)
			return nil
		},
		"activate": func(args ...any) any {
			kind, _ := script.Arg(args, 0).(string)
			ctx.Section.ActivateObject(kind, script.Int(script.Arg(args, 1)))
			return nil
		},
	}
}

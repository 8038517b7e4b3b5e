package player

import "github.com/milk9111/bombsim/sim"

// bombState is the interface each concrete movement state implements.
type bombState interface {
	Enter(b *Bomb)
	HandleInput(b *Bomb, ctx *sim.Context)
	OnPhysics(b *Bomb, ctx *sim.Context)
	Name() string
}

const (
	jumpBufferFrames = 10
	coyoteTimeFrames = 6
)

var (
	stateIdle    bombState = idleState{}
	stateRunning bombState = runningState{}
	stateJumping bombState = jumpingState{}
	stateFalling bombState = fallingState{}
)

func (b *Bomb) setState(s bombState) {
	b.state = s
	s.Enter(b)
}

type idleState struct{}

func (idleState) Name() string { return "idle" }
func (idleState) Enter(b *Bomb) {
	b.anim.Play(animIdle, 10)
}
func (idleState) HandleInput(b *Bomb, ctx *sim.Context) {
	if b.wantsJump(ctx) {
		b.setState(stateJumping)
		return
	}
	if b.moveX(ctx) != 0 {
		b.setState(stateRunning)
	}
}
func (idleState) OnPhysics(b *Bomb, ctx *sim.Context) {
	b.brake()
	if b.Bottom == nil {
		b.coyote = coyoteTimeFrames
		b.setState(stateFalling)
	}
}

type runningState struct{}

func (runningState) Name() string { return "running" }
func (runningState) Enter(b *Bomb) {
	b.anim.Play(animRun, 5)
}
func (runningState) HandleInput(b *Bomb, ctx *sim.Context) {
	if b.wantsJump(ctx) {
		b.setState(stateJumping)
		return
	}
	if b.moveX(ctx) == 0 {
		b.setState(stateIdle)
	}
}
func (runningState) OnPhysics(b *Bomb, ctx *sim.Context) {
	b.walk(ctx)
	if b.Bottom == nil {
		b.coyote = coyoteTimeFrames
		b.setState(stateFalling)
	}
}

type jumpingState struct{}

func (jumpingState) Name() string { return "jumping" }
func (jumpingState) Enter(b *Bomb) {
	b.anim.Play(animJump, 5)
	b.forces.Y -= b.stats.jump + b.Speed.Y
	b.jumpBuffer = 0
	b.coyote = 0
	b.queueSound("jump")
}
func (jumpingState) HandleInput(b *Bomb, ctx *sim.Context) {
	if ctx.Pressed(sim.KeyJump) {
		b.jumpBuffer = jumpBufferFrames
	}
	// releasing jump cuts the rise short
	if !ctx.Down(sim.KeyJump) && b.Speed.Y < -jumpCutSpeed {
		b.Speed.Y = -jumpCutSpeed
	}
}
func (jumpingState) OnPhysics(b *Bomb, ctx *sim.Context) {
	b.walk(ctx)
	if b.Speed.Y >= 0 {
		b.setState(stateFalling)
	}
}

type fallingState struct{}

func (fallingState) Name() string { return "falling" }
func (fallingState) Enter(b *Bomb) {
	b.anim.Play(animFall, 5)
}
func (fallingState) HandleInput(b *Bomb, ctx *sim.Context) {
	if ctx.Pressed(sim.KeyJump) {
		if b.coyote > 0 {
			b.setState(stateJumping)
			return
		}
		b.jumpBuffer = jumpBufferFrames
	}
}
func (fallingState) OnPhysics(b *Bomb, ctx *sim.Context) {
	b.walk(ctx)
	if b.Bottom == nil {
		return
	}
	if b.jumpBuffer > 0 {
		b.setState(stateJumping)
		return
	}
	if b.moveX(ctx) != 0 {
		b.setState(stateRunning)
		return
	}
	b.setState(stateIdle)
}

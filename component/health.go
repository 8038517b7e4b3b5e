package component

import "github.com/milk9111/bombsim/common"

// Health is the hit point pool and invulnerability window of an actor.
type Health struct {
	HP           int
	Invulnerable bool
	// Timer counts frames of the current invulnerable window, or of the
	// death sequence once the owner is dying.
	Timer int

	OnIFrameStart func(h *Health)
	OnIFrameEnd   func(h *Health)
}

// NewHealth creates a Health with hp points, at least one.
func NewHealth(hp int) Health {
	if hp <= 0 {
		hp = 1
	}
	return Health{HP: hp}
}

// Damage removes amount points and reports whether the pool is empty.
func (h *Health) Damage(amount int) bool {
	if h == nil {
		return false
	}
	h.HP -= amount
	return h.HP <= 0
}

// StartIFrames opens the invulnerable window.
func (h *Health) StartIFrames() {
	if h == nil {
		return
	}
	h.Invulnerable = true
	if h.OnIFrameStart != nil {
		h.OnIFrameStart(h)
	}
}

// EndIFrames closes the invulnerable window and resets the timer.
func (h *Health) EndIFrames() {
	if h == nil {
		return
	}
	h.Invulnerable = false
	h.Timer = 0
	if h.OnIFrameEnd != nil {
		h.OnIFrameEnd(h)
	}
}

// Tick advances the invulnerable window by one frame and closes it after
// common.InvulnerableTime frames.
func (h *Health) Tick() {
	if h == nil || !h.Invulnerable {
		return
	}
	h.Timer++
	if h.Timer == common.InvulnerableTime {
		h.EndIFrames()
	}
}

// Blinking reports whether the owner should be hidden this frame.
func (h *Health) Blinking() bool {
	return h != nil && h.Invulnerable && (h.Timer/3)%2 == 0
}

package common

const (
	TileSize     = 32
	ScreenWidth  = 800
	ScreenHeight = 600

	// TopMargin is how far above a section an actor may travel before it is
	// culled.
	TopMargin = -200

	// InvulnerableTime is the number of frames an enemy stays invulnerable
	// after a non-lethal hit.
	InvulnerableTime = 40

	Gravity = 0.9

	// DefaultMaxSpeed caps both axes of a body unless overridden.
	DefaultMaxSpeed = 15

	// OverTolerance is how deep into an actor's top the bomb's feet may sink
	// and still count as landing on it.
	OverTolerance = 10

	// StopTimeTintThreshold is the remaining stop-time below which the tint
	// starts blinking.
	StopTimeTintThreshold = 120

	// InfiniteStopTime marks a stop-time effect with no expiry.
	InfiniteStopTime = 1_000_000_000
)

package component

// Animation steps through a sequence of sprite sheet indices, advancing one
// entry every Interval frames. Frames are laid out left-to-right,
// top-to-bottom on the sheet.
type Animation struct {
	Indices  []int
	Interval int
	// Index is the sheet index currently shown.
	Index int

	counter int
	pos     int

	once         onceState
	onceIndices  []int
	onceInterval int
}

type onceState int

const (
	onceIdle onceState = iota
	oncePlaying
	onceDone
)

func NewAnimation(indices []int, interval int) Animation {
	a := Animation{Indices: indices, Interval: interval}
	if len(indices) > 0 {
		a.Index = indices[0]
	}
	return a
}

// Update advances the looping sequence. Call once per frame.
func (a *Animation) Update() {
	if a == nil || len(a.Indices) == 0 {
		return
	}
	a.once = onceIdle
	a.counter++
	if a.counter >= a.Interval {
		a.pos++
		if a.pos >= len(a.Indices) {
			a.pos = 0
		}
		a.Index = a.Indices[a.pos]
		a.counter = 0
	}
}

// Play switches the looping sequence without resetting the frame counter.
func (a *Animation) Play(indices []int, interval int) {
	if a == nil {
		return
	}
	a.Indices = indices
	a.Interval = interval
}

// SetFrame jumps to a sheet index and restarts the sequence position.
func (a *Animation) SetFrame(index int) {
	if a == nil {
		return
	}
	a.counter = 0
	a.Index = index
	a.pos = 0
	a.once = onceIdle
}

// PlayOnce runs indices a single time and then holds the last one. It returns
// true on the frame the sequence finishes. Calling it again with the same
// sequence after it finished does nothing.
func (a *Animation) PlayOnce(indices []int, interval int) bool {
	if a == nil || len(indices) == 0 {
		return false
	}
	if a.once == onceDone {
		if sameIndices(indices, a.onceIndices) && interval == a.onceInterval {
			return false
		}
		a.once = onceIdle
	}
	if a.once != oncePlaying {
		a.counter = 0
		a.Index = indices[0]
		a.pos = 0
		a.onceIndices = indices
		a.onceInterval = interval
		a.once = oncePlaying
		return false
	}
	a.counter++
	if a.counter < interval {
		return false
	}
	if a.pos == len(indices)-1 {
		a.once = onceDone
		return true
	}
	a.pos++
	a.Index = indices[a.pos]
	a.counter = 0
	return false
}

// AtLast reports whether the last index of the sequence is shown.
func (a *Animation) AtLast() bool {
	if a == nil || len(a.Indices) == 0 {
		return true
	}
	return a.Index == a.Indices[len(a.Indices)-1]
}

func sameIndices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

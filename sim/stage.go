package sim

import "github.com/milk9111/bombsim/common"

// StopMode is how far a stop-time effect reaches.
type StopMode int

const (
	StopNone StopMode = iota
	// StopEnemies freezes enemies only.
	StopEnemies
	// StopAll also freezes floating items.
	StopAll
)

// Stage is the state shared by every section of the level being played.
type Stage struct {
	ID string

	Stopped          StopMode
	StoppedTimer     int
	StopTimeDuration int

	LifeCount int
	StarCount int
	SpecTaken bool

	switches []*Switch
}

func NewStage(id string) *Stage {
	return &Stage{ID: id}
}

// StopTime freezes time for duration frames. A duration of
// common.InfiniteStopTime or more never expires.
func (s *Stage) StopTime(duration int, mode StopMode) {
	if s == nil {
		return
	}
	s.Stopped = mode
	s.StoppedTimer = 0
	s.StopTimeDuration = duration
}

// Update advances the stop-time effect. Call once per frame.
func (s *Stage) Update() {
	if s == nil || s.Stopped == StopNone {
		return
	}
	s.StoppedTimer++
	if s.StopTimeDuration < common.InfiniteStopTime && s.StoppedTimer >= s.StopTimeDuration {
		s.Stopped = StopNone
		s.StoppedTimer = 0
	}
}

// StopTint reports whether stopped actors should be drawn with the
// stop-time color this frame.
func (s *Stage) StopTint() bool {
	if s == nil || s.Stopped == StopNone || s.StopTimeDuration >= common.InfiniteStopTime {
		return false
	}
	remaining := s.StopTimeDuration - s.StoppedTimer
	return remaining >= common.StopTimeTintThreshold || (remaining/5)%2 == 0
}

func (s *Stage) AddSwitch(sw *Switch) {
	if s == nil || sw == nil {
		return
	}
	s.switches = append(s.switches, sw)
}

func (s *Stage) DeleteSwitch(obj any) {
	if s == nil {
		return
	}
	for i, sw := range s.switches {
		if sw.Obj == obj {
			s.switches = append(s.switches[:i], s.switches[i+1:]...)
			return
		}
	}
}

// FindSwitch returns the switch whose object is obj.
func (s *Stage) FindSwitch(obj any) *Switch {
	if s == nil {
		return nil
	}
	for _, sw := range s.switches {
		if sw.Obj == obj {
			return sw
		}
	}
	return nil
}

// Switch returns the switch registered for an element, creating it when
// missing.
func (s *Stage) Switch(typ string, id int) *Switch {
	for _, sw := range s.switches {
		if sw.Type == typ && sw.ID == id {
			return sw
		}
	}
	sw := &Switch{Type: typ, ID: id}
	s.switches = append(s.switches, sw)
	return sw
}

func (s *Stage) Switches() []*Switch {
	if s == nil {
		return nil
	}
	return s.switches
}

// Commit makes every temporary switch permanent, as when a section is
// finished or a checkpoint is reached.
func (s *Stage) Commit() {
	for _, sw := range s.Switches() {
		sw.Commit()
	}
}

// Rollback undoes every temporary switch, as when the player dies.
func (s *Stage) Rollback() {
	for _, sw := range s.Switches() {
		sw.Rollback()
		sw.Obj = nil
	}
}

func (s *Stage) GetStar() {
	if s != nil {
		s.StarCount++
	}
}

func (s *Stage) SetSpecTaken() {
	if s != nil {
		s.SpecTaken = true
	}
}

package sim

// SwitchState is the persisted state of an item or other switchable element.
type SwitchState int

const (
	NotTaken SwitchState = iota
	Taken
	Used
	TempTaken
	TempUsed
	TempTakenUsed
	TakenTempUsed
	Normal
)

var switchStateNames = [...]string{
	NotTaken:      "not_taken",
	Taken:         "taken",
	Used:          "used",
	TempTaken:     "temp_taken",
	TempUsed:      "temp_used",
	TempTakenUsed: "temp_taken_used",
	TakenTempUsed: "taken_temp_used",
	Normal:        "normal",
}

func (s SwitchState) String() string {
	if int(s) >= 0 && int(s) < len(switchStateNames) {
		return switchStateNames[s]
	}
	return "unknown"
}

func ParseSwitchState(s string) (SwitchState, bool) {
	for i, name := range switchStateNames {
		if name == s {
			return SwitchState(i), true
		}
	}
	return NotTaken, false
}

// Switch is the record that survives section reloads for one element.
type Switch struct {
	Type  string
	ID    int
	State SwitchState
	Extra string
	// Obj is the live object the switch currently belongs to, if any.
	Obj any
}

// Temporary reports whether the state is waiting for a commit or rollback.
func (s *Switch) Temporary() bool {
	switch s.State {
	case TempTaken, TempUsed, TempTakenUsed, TakenTempUsed:
		return true
	}
	return false
}

// Commit makes a temporary state permanent.
func (s *Switch) Commit() {
	switch s.State {
	case TempTaken:
		s.State = Taken
	case TempUsed, TempTakenUsed, TakenTempUsed:
		s.State = Used
	}
}

// Rollback undoes a temporary state.
func (s *Switch) Rollback() {
	switch s.State {
	case TempTaken, TempUsed, TempTakenUsed:
		s.State = NotTaken
	case TakenTempUsed:
		s.State = Taken
	}
}

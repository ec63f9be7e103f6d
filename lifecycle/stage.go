package lifecycle

// Stage is the phase an application is in. Exactly one stage is active.
type Stage int

const (
	Idle Stage = iota
	Started
	Registering
	Registered
	Booting
	Booted
	Subtask
	Terminating
	Terminated
)

var stageNames = [...]string{
	Idle:        "idle",
	Started:     "started",
	Registering: "registering",
	Registered:  "registered",
	Booting:     "booting",
	Booted:      "booted",
	Subtask:     "subtask",
	Terminating: "terminating",
	Terminated:  "terminated",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

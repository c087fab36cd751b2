package pipeline

import "strconv"

// State is a position in the conversion state machine.
type State int

const (
	StateInit State = iota
	StateSubtitles
	StatePalette
	StateCreate
	StateSubtitleCleanup
	StateOptimize
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateInit:            "init",
	StateSubtitles:       "subtitles",
	StatePalette:         "palette",
	StateCreate:          "create",
	StateSubtitleCleanup: "subtitle-cleanup",
	StateOptimize:        "optimize",
	StateDone:            "done",
	StateFailed:          "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}

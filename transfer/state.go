package transfer

// State is the lifecycle stage of a transfer.
type State int

const (
	Pending State = iota
	Resolving
	Skipped
	Streaming
	Completed
	Failed
)

var stateNames = map[State]string{
	Pending:   "pending",
	Resolving: "resolving",
	Skipped:   "skipped",
	Streaming: "streaming",
	Completed: "completed",
	Failed:    "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition can follow s.
func (s State) Terminal() bool {
	return s == Skipped || s == Completed || s == Failed
}

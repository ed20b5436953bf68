package nav

// State is the open/closed state of one bar instance.
type State struct {
	Open bool
}

// Action is a state transition request.
type Action string

// ActionToggle flips the menu between open and closed.
const ActionToggle Action = "toggle"

// Reduce applies action to s. Unknown actions leave the state unchanged.
func Reduce(s State, action Action) State {
	switch action {
	case ActionToggle:
		return State{Open: !s.Open}
	default:
		return s
	}
}

package pursuit

// Kind decides which collision and consumption rules an agent follows.
type Kind uint8

const (
	// KindPursuer agents chase the seeker and can be made vulnerable.
	KindPursuer Kind = iota
	// KindSeeker is the controlled agent that eats resources.
	KindSeeker
)

// String returns the kind tag used in generated agent names.
func (k Kind) String() string {
	switch k {
	case KindPursuer:
		return "PURSUER"
	case KindSeeker:
		return "SEEKER"
	default:
		return "UNKNOWN"
	}
}

// State is the life-cycle state of an agent.
type State uint8

const (
	StateInactive State = iota
	StateAlert
	StateMoving
	StateVulnerable
	StateDead
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "INACTIVE"
	case StateAlert:
		return "ALERT"
	case StateMoving:
		return "MOVING"
	case StateVulnerable:
		return "VULNERABLE"
	case StateDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// MarshalYAML encodes the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// MarshalYAML encodes the state by name.
func (s State) MarshalYAML() (any, error) {
	return s.String(), nil
}

package breathing

// Phase is a stage of a breathing cycle.
type Phase int

const (
	Inhale Phase = iota
	Hold
	Exhale
)

var phaseNames = map[Phase]string{
	Inhale: "inhale",
	Hold:   "hold",
	Exhale: "exhale",
}

var phaseText = map[Phase]string{
	Inhale: "Breathe In",
	Hold:   "Hold",
	Exhale: "Breathe Out",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// Text returns the instruction displayed to the user for the phase.
func (p Phase) Text() string {
	return phaseText[p]
}

// Next returns the phase that follows p in the cycle.
func (p Phase) Next() Phase {
	switch p {
	case Inhale:
		return Hold
	case Hold:
		return Exhale
	default:
		return Inhale
	}
}

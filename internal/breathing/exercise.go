package breathing

import "time"

// Kind distinguishes paced breathing from unpaced meditation.
type Kind string

const (
	KindBreathing  Kind = "breathing"
	KindMeditation Kind = "meditation"
)

// Exercise is an immutable template for a session.
type Exercise struct {
	Name        string        `json:"name"        mapstructure:"name"`
	Description string        `json:"description" mapstructure:"description"`
	Kind        Kind          `json:"kind"        mapstructure:"kind"`
	Color       string        `json:"color"       mapstructure:"color"`
	Inhale      time.Duration `json:"inhale"      mapstructure:"inhale"`
	Hold        time.Duration `json:"hold"        mapstructure:"hold"`
	Exhale      time.Duration `json:"exhale"      mapstructure:"exhale"`
	// Target is the suggested length of a session. It does not end the
	// session.
	Target time.Duration `json:"target" mapstructure:"target"`
}

// Duration returns how long the exercise stays in phase p.
func (e Exercise) Duration(p Phase) time.Duration {
	switch p {
	case Inhale:
		return e.Inhale
	case Hold:
		return e.Hold
	case Exhale:
		return e.Exhale
	}

	return 0
}

// CycleLength is the time taken by one Inhale, Hold, Exhale cycle. A zero
// value means the exercise has no phase cycle.
func (e Exercise) CycleLength() time.Duration {
	return e.Inhale + e.Hold + e.Exhale
}

// Paced reports whether the exercise drives a phase cycle.
func (e Exercise) Paced() bool {
	return e.CycleLength() > 0
}

// Defaults returns the built-in exercises.
func Defaults() []Exercise {
	return []Exercise{
		{
			Name:        "4-7-8 Breathing",
			Description: "Inhale for 4, hold for 7, exhale for 8",
			Kind:        KindBreathing,
			Color:       "#10B981",
			Inhale:      4 * time.Second,
			Hold:        7 * time.Second,
			Exhale:      8 * time.Second,
			Target:      5 * time.Minute,
		},
		{
			Name:        "Box Breathing",
			Description: "Equal counts for inhale, hold, and exhale",
			Kind:        KindBreathing,
			Color:       "#6366F1",
			Inhale:      4 * time.Second,
			Hold:        4 * time.Second,
			Exhale:      4 * time.Second,
			Target:      10 * time.Minute,
		},
		{
			Name:        "Calm Meditation",
			Description: "Guided mindfulness session",
			Kind:        KindMeditation,
			Color:       "#8B5CF6",
			Target:      15 * time.Minute,
		},
		{
			Name:        "Body Scan",
			Description: "Progressive relaxation technique",
			Kind:        KindMeditation,
			Color:       "#F59E0B",
			Target:      20 * time.Minute,
		},
	}
}

// DefaultExercise returns the 4-7-8 breathing exercise.
func DefaultExercise() Exercise {
	return Defaults()[0]
}

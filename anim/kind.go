package anim

import "fmt"

// Kind selects which sink an animator writes to.
type Kind uint8

const (
	KindFloat Kind = iota
	KindPosition
	KindRotation
	KindScale
)

var kindNames = [...]string{
	KindFloat:    "float",
	KindPosition: "position",
	KindRotation: "rotation",
	KindScale:    "scale",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) valid() bool {
	return int(k) < len(kindNames)
}

// ParseKind parses the lowercase name of a kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// RepeatMode decides what an animator does once its progress leaves [0,1].
type RepeatMode uint8

const (
	// Destroy applies the target value, fires end actions and removes the animator.
	Destroy RepeatMode = iota
	// Loop restarts the cycle from the source value.
	Loop
	// PingPong reverses direction at every boundary.
	PingPong
)

var repeatNames = [...]string{
	Destroy:  "destroy",
	Loop:     "loop",
	PingPong: "ping-pong",
}

func (m RepeatMode) String() string {
	if int(m) < len(repeatNames) {
		return repeatNames[m]
	}
	return fmt.Sprintf("RepeatMode(%d)", m)
}

// ParseRepeatMode parses destroy, loop or ping-pong.
func ParseRepeatMode(s string) (RepeatMode, error) {
	for m, name := range repeatNames {
		if name == s {
			return RepeatMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRepeatMode, s)
}

func (m RepeatMode) MarshalText() ([]byte, error) {
	if int(m) >= len(repeatNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRepeatMode, m)
	}
	return []byte(m.String()), nil
}

func (m *RepeatMode) UnmarshalText(text []byte) error {
	parsed, err := ParseRepeatMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// State is the lifecycle phase of an animator.
type State uint8

const (
	Idle State = iota
	Active
	Finished
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Finished:
		return "finished"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("State(%d)", s)
}

// Step reports what a single tick did.
type Step uint8

const (
	StepNone Step = iota
	StepDelayed
	StepApplied
	StepLooped
	StepFlipped
	StepFinished
)

func (s Step) String() string {
	switch s {
	case StepNone:
		return "none"
	case StepDelayed:
		return "delayed"
	case StepApplied:
		return "applied"
	case StepLooped:
		return "looped"
	case StepFlipped:
		return "flipped"
	case StepFinished:
		return "finished"
	}
	return fmt.Sprintf("Step(%d)", s)
}

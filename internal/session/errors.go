package session

import "errors"

// Kind classifies a session failure.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindProvider
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindProvider:
		return "provider error"
	case KindIO:
		return "io error"
	default:
		return "unknown"
	}
}

// InvalidInputMessage is what the user is shown for a KindInvalidInput failure.
const InvalidInputMessage = "Invalid input. Please check the word and languages."

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrProvider     = errors.New("provider error")
	ErrIO           = errors.New("io error")
)

// Error is returned by every failing controller operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error returns the underlying message unchanged, so a provider's own
// message reaches the user verbatim.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	case ErrProvider:
		return e.Kind == KindProvider
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}

// KindOf returns the kind of err, or 0 when err is not a session error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

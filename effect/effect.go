// Package effect tracks how values are produced. Constructors tag the values
// they build with an Effect; effectful values are wrapped in an explicit
// Annotated envelope rather than mutated in place.
package effect

import "github.com/google/uuid"

// Effect labels how a value is produced.
type Effect string

const (
	Pure    Effect = "Pure"
	IO      Effect = "IO"
	Async   Effect = "Async"
	State   Effect = "State"
	Unknown Effect = "Unknown"
)

// Of normalizes a string into an Effect, defaulting to Unknown.
func Of(s string) Effect {
	switch Effect(s) {
	case Pure, IO, Async, State:
		return Effect(s)
	case "":
		return Pure
	}
	return Unknown
}

// Pure reports whether the effect is Pure.
func (e Effect) Pure() bool { return e == Pure }

// Annotated pairs a value with its effect marker and a process-unique
// identity handle. The envelope travels alongside the value; the value itself
// is never touched.
type Annotated[T any] struct {
	Value  T
	Effect Effect
	ID     uuid.UUID
}

// Annotate wraps v with an effect marker and a fresh identity handle.
func Annotate[T any](v T, e Effect) Annotated[T] {
	return Annotated[T]{Value: v, Effect: e, ID: uuid.New()}
}

// Identity returns the annotation's identity handle as a string, usable as an
// ordering key for values whose structure carries no meaning.
func (a Annotated[T]) Identity() string { return a.ID.String() }

package cove

///////////////////////////////////////////////////////////////////////////////
// Value Envelope
///////////////////////////////////////////////////////////////////////////////

// Raw is the value shape produced by a reader lookup. A nil Raw means the
// key was absent from the source; a non-nil Raw holds the raw string form.
type Raw = *string

// Value is the envelope threaded through a transformation pipeline.
//
// Name is the logical key the value was read under and is preserved
// unchanged by every built-in transformer. Secret starts false when a
// reader constructs the envelope; once a transformer sets it, downstream
// transformers must never clear it.
//
// Envelopes are immutable by convention: transformers return a fresh
// envelope rather than mutating their input.
type Value[T any] struct {
	Val    T      // The value at this pipeline stage
	Name   string // The key the value was read under
	Secret bool   // Sensitivity flag, sticky once set
}

// Transformer maps one envelope to another, narrowing or validating the
// contained value. Transformers are pure and synchronous: the output is a
// function of the input envelope alone, and failure is reported by error.
type Transformer[In, Out any] func(Value[In]) (Value[Out], error)

// derive builds the output envelope for a transformer, carrying Name and
// Secret over from the input unchanged.
func derive[In, Out any](in Value[In], out Out) Value[Out] {
	return Value[Out]{Val: out, Name: in.Name, Secret: in.Secret}
}

// defined converts a raw lookup value into its string form plus a presence
// flag. Both string and Raw inputs are accepted so that absence-tolerant
// coercions can run directly on a reader's output or after Must.
func defined[S OptString](v S) (string, bool) {
	switch s := any(v).(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	}
	return "", false
}

// OptString constrains a coercion's input to the two value shapes that occur
// in a pipeline: the raw string-or-absent form produced by readers, and the
// defined string form produced by Must.
type OptString interface {
	string | *string
}

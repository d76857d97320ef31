package cove

///////////////////////////////////////////////////////////////////////////////
// Pipeline Composition
///////////////////////////////////////////////////////////////////////////////

// Identity is the zero-stage pipeline: it returns the input envelope
// unchanged and never fails.
func Identity[T any](in Value[T]) (Value[T], error) {
	return in, nil
}

// Pipe composes two transformers into one. The envelope is threaded
// left-to-right; if the first stage fails, the second never runs.
func Pipe[A, B, C any](first Transformer[A, B], second Transformer[B, C]) Transformer[A, C] {
	return func(in Value[A]) (Value[C], error) {
		mid, err := first(in)
		if err != nil {
			return Value[C]{}, err
		}
		return second(mid)
	}
}

// Pipe3 composes three transformers into one.
func Pipe3[A, B, C, D any](
	first Transformer[A, B],
	second Transformer[B, C],
	third Transformer[C, D],
) Transformer[A, D] {
	return Pipe(Pipe(first, second), third)
}

// Pipe4 composes four transformers into one.
func Pipe4[A, B, C, D, E any](
	first Transformer[A, B],
	second Transformer[B, C],
	third Transformer[C, D],
	fourth Transformer[D, E],
) Transformer[A, E] {
	return Pipe(Pipe3(first, second, third), fourth)
}

// Seq composes any number of same-typed transformers into one. Stages run
// left-to-right and the first error aborts the chain. With zero stages Seq
// behaves as Identity.
func Seq[T any](stages ...Transformer[T, T]) Transformer[T, T] {
	return func(in Value[T]) (Value[T], error) {
		cur := in
		for _, stage := range stages {
			next, err := stage(cur)
			if err != nil {
				return Value[T]{}, err
			}
			cur = next
		}
		return cur, nil
	}
}

package cove

///////////////////////////////////////////////////////////////////////////////
// Evaluator
///////////////////////////////////////////////////////////////////////////////

// Eval reads the raw envelope for name from src, applies transform, and
// returns the resulting value. Any error raised by the transform propagates
// unmodified; nothing is retried and no default is substituted on failure.
func Eval[T any](src Reader, name string, transform Transformer[Raw, T]) (T, error) {
	out, err := transform(src.Read(name))
	if err != nil {
		var zero T
		return zero, err
	}
	return out.Val, nil
}

// Lookup reads the raw string-or-absent value for name from src without
// applying any transform.
func Lookup(src Reader, name string) Raw {
	return src.Read(name).Val
}

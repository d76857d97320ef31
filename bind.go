package cove

///////////////////////////////////////////////////////////////////////////////
// Binder & Interception
///////////////////////////////////////////////////////////////////////////////

// RawTransform is a transformer over the raw lookup envelope with the result
// type erased. It is the shape an Interceptor wraps: every bound lookup runs
// one composite RawTransform from raw input to final value, regardless of how
// many stages the underlying pipeline contains.
type RawTransform func(Value[Raw]) (Value[any], error)

// Interceptor wraps a transform with another of the same shape. It may
// observe the envelope and perform side effects keyed on Name and Secret,
// but it must propagate the success value and re-raise failures; swallowing
// an error breaks the evaluator's contract that failure reaches the caller.
type Interceptor func(next RawTransform) RawTransform

// BindOpts configures a Binder.
type BindOpts struct {
	// Interceptor, when set, wraps the transform of every Get exactly once.
	Interceptor Interceptor
}

// Binder curries a Reader, and optionally an Interceptor, into a
// call-by-name lookup surface. A Binder holds no per-lookup state and is
// safe for concurrent use.
type Binder struct {
	reader      Reader
	interceptor Interceptor
}

// Bind builds a Binder over reader with the given options.
func Bind(reader Reader, opts BindOpts) *Binder {
	return &Binder{
		reader:      reader,
		interceptor: opts.Interceptor,
	}
}

// Lookup reads the raw string-or-absent value for name. No transform runs,
// so the interceptor does not fire.
func (b *Binder) Lookup(name string) Raw {
	return Lookup(b.reader, name)
}

// Get reads name through the bound reader and applies transform. With an
// interceptor configured, the full transform is erased, wrapped once, and
// the result re-asserted to T after it returns.
func Get[T any](b *Binder, name string, transform Transformer[Raw, T]) (T, error) {
	if b.interceptor == nil {
		return Eval(b.reader, name, transform)
	}

	wrapped := b.interceptor(erase(transform))
	out, err := wrapped(b.reader.Read(name))
	if err != nil {
		var zero T
		return zero, err
	}
	return out.Val.(T), nil
}

// erase drops a transform's result type so an Interceptor can wrap it.
func erase[T any](transform Transformer[Raw, T]) RawTransform {
	return func(in Value[Raw]) (Value[any], error) {
		out, err := transform(in)
		if err != nil {
			return Value[any]{}, err
		}
		return derive(out, any(out.Val)), nil
	}
}

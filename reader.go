package cove

import "os"

///////////////////////////////////////////////////////////////////////////////
// Reader Abstraction
///////////////////////////////////////////////////////////////////////////////

// Reader is the abstraction over the external key-value source. A Read must
// return a fresh envelope for the given name with Secret unset; a nil Raw
// value means the key is absent. Readers never cache and never fail: a
// source that can error should surface that at construction time.
type Reader interface {
	Read(name string) Value[Raw]
}

// ReaderFunc adapts a plain lookup function to the Reader interface.
type ReaderFunc func(name string) Value[Raw]

// Read implements Reader.
func (f ReaderFunc) Read(name string) Value[Raw] {
	return f(name)
}

// Map adapts a plain string mapping to the Reader interface. A key missing
// from the map reads as absent.
type Map map[string]string

// Read implements Reader.
func (m Map) Read(name string) Value[Raw] {
	if v, ok := m[name]; ok {
		return Value[Raw]{Val: &v, Name: name}
	}
	return Value[Raw]{Name: name}
}

// Env returns a Reader over the process environment. An unset variable
// reads as absent; a variable set to the empty string reads as defined.
func Env() Reader {
	return ReaderFunc(func(name string) Value[Raw] {
		if v, ok := os.LookupEnv(name); ok {
			return Value[Raw]{Val: &v, Name: name}
		}
		return Value[Raw]{Name: name}
	})
}

// Prefix namespaces every lookup on r by prepending prefix to the key. The
// returned envelope keeps the caller's unprefixed name so that errors and
// logs report the key the caller asked for.
func Prefix(prefix string, r Reader) Reader {
	return ReaderFunc(func(name string) Value[Raw] {
		v := r.Read(prefix + name)
		v.Name = name
		return v
	})
}

// Multi tries each reader in order and returns the first defined value.
// When no reader defines the key, the result is an absent envelope.
func Multi(readers ...Reader) Reader {
	return ReaderFunc(func(name string) Value[Raw] {
		for _, r := range readers {
			if v := r.Read(name); v.Val != nil {
				return v
			}
		}
		return Value[Raw]{Name: name}
	})
}

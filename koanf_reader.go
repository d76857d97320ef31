package cove

import "github.com/knadh/koanf/v2"

// Koanf returns a Reader over a caller-supplied koanf instance. Lookup
// names are koanf paths ("server.port"), and any scalar the instance holds
// reads back in its string form. The instance stays owned by the caller:
// this adapter never loads providers into it.
func Koanf(k *koanf.Koanf) Reader {
	return ReaderFunc(func(name string) Value[Raw] {
		if !k.Exists(name) {
			return Value[Raw]{Name: name}
		}
		s := k.String(name)
		return Value[Raw]{Val: &s, Name: name}
	})
}

package cove

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Built-in Coercions
///////////////////////////////////////////////////////////////////////////////

// Must requires a defined, non-empty value and passes it through typed as a
// plain string. It is the canonical first stage for required keys.
func Must[S OptString](in Value[S]) (Value[string], error) {
	s, ok := defined(in.Val)
	if !ok || s == "" {
		return Value[string]{}, coerceErr(in, ErrNotDefined)
	}
	return derive(in, s), nil
}

// AsInt parses the value as a base-10 integer. An absent value yields def.
//
// An empty string coerces to 0, not def: emptiness is a defined value, and
// the numeric reading of "" is zero. See AsFloat for the same rule.
func AsInt[S OptString](def int) Transformer[S, int] {
	return func(in Value[S]) (Value[int], error) {
		s, ok := defined(in.Val)
		if !ok {
			return derive(in, def), nil
		}
		if s == "" {
			return derive(in, 0), nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return Value[int]{}, coerceErr(in, ErrNotNumber)
		}
		return derive(in, n), nil
	}
}

// AsFloat parses the value as a float64. An absent value yields def; an
// empty string coerces to 0 under the same rule as AsInt.
func AsFloat[S OptString](def float64) Transformer[S, float64] {
	return func(in Value[S]) (Value[float64], error) {
		s, ok := defined(in.Val)
		if !ok {
			return derive(in, def), nil
		}
		if s == "" {
			return derive(in, 0.0), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value[float64]{}, coerceErr(in, ErrNotNumber)
		}
		return derive(in, f), nil
	}
}

// AsBool parses the value as a boolean. An absent value yields def. Matching
// is case-insensitive over two fixed sets:
//
//	true:  yes, true, on, 1
//	false: no, false, off, 0
//
// Any other value, including the empty string, fails.
func AsBool[S OptString](def bool) Transformer[S, bool] {
	return func(in Value[S]) (Value[bool], error) {
		s, ok := defined(in.Val)
		if !ok {
			return derive(in, def), nil
		}
		switch strings.ToLower(s) {
		case "yes", "true", "on", "1":
			return derive(in, true), nil
		case "no", "false", "off", "0":
			return derive(in, false), nil
		default:
			return Value[bool]{}, coerceErr(in, ErrNotBool)
		}
	}
}

var (
	durationPattern = regexp.MustCompile(`^(\d+[smhDMY])+$`)
	durationToken   = regexp.MustCompile(`(\d+)([smhDMY])`)
)

// AsDuration parses the value as a sequence of <integer><unit> tokens and
// sums them. Units are s, m, h for seconds, minutes, hours and D, M, Y for
// days, 30-day months, 365-day years, so "90s" is 90 seconds and "1h30m"
// is ninety minutes. An absent value yields def.
func AsDuration[S OptString](def time.Duration) Transformer[S, time.Duration] {
	return func(in Value[S]) (Value[time.Duration], error) {
		s, ok := defined(in.Val)
		if !ok {
			return derive(in, def), nil
		}
		if !durationPattern.MatchString(s) {
			return Value[time.Duration]{}, coerceErr(in, ErrNotDuration)
		}
		var total time.Duration
		for _, tok := range durationToken.FindAllStringSubmatch(s, -1) {
			n, err := strconv.Atoi(tok[1])
			if err != nil {
				return Value[time.Duration]{}, coerceErr(in, ErrNotDuration)
			}
			var unit time.Duration
			switch tok[2] {
			case "s":
				unit = time.Second
			case "m":
				unit = time.Minute
			case "h":
				unit = time.Hour
			case "D":
				unit = 24 * time.Hour
			case "M":
				unit = 30 * 24 * time.Hour
			case "Y":
				unit = 365 * 24 * time.Hour
			default:
				// The token pattern only admits the units above; reaching
				// this branch is a parser defect, not bad input.
				return Value[time.Duration]{}, coerceErr(in, ErrDurationUnit)
			}
			total += time.Duration(n) * unit
		}
		return derive(in, total), nil
	}
}

// AsISODate parses the value as an RFC 3339 timestamp and requires that
// formatting the result reproduces the input byte-for-byte. Anything looser,
// like a bare date or a non-canonical fraction, fails.
func AsISODate(in Value[string]) (Value[time.Time], error) {
	t, err := time.Parse(time.RFC3339Nano, in.Val)
	if err != nil || t.Format(time.RFC3339Nano) != in.Val {
		return Value[time.Time]{}, coerceErr(in, ErrNotDate)
	}
	return derive(in, t), nil
}

// AsUUID parses the value as an RFC 4122 UUID.
func AsUUID(in Value[string]) (Value[uuid.UUID], error) {
	id, err := uuid.Parse(in.Val)
	if err != nil {
		return Value[uuid.UUID]{}, coerceErr(in, ErrNotUUID)
	}
	return derive(in, id), nil
}

// Secret marks the envelope as sensitive. Value and name pass through
// unchanged, the flag is sticky for the rest of the pipeline, and applying
// Secret twice is the same as applying it once. It never fails.
func Secret[T any](in Value[T]) (Value[T], error) {
	out := in
	out.Secret = true
	return out, nil
}

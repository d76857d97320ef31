// Package cove (Coerce and Validate Env) provides a small, composable
// pipeline for reading configuration values from any key-value source and
// coercing them into typed, validated Go values.
//
// Every lookup produces a Value envelope carrying the raw value, the key it
// was read under, and a sensitivity flag. Transformers are pure functions
// from one envelope to another; they narrow or validate the contained value
// and fail with an error that always names the offending key.
//
// The package provides built-in coercions for common configuration types:
//   - Must: require a defined, non-empty value
//   - AsInt, AsFloat: numeric parsing with a default for absent values
//   - AsBool: yes/true/on/1 and no/false/off/0, case-insensitive
//   - AsDuration: token sums like "1h30m" or "2D" with a default
//   - AsISODate: strict round-trip RFC 3339 timestamps
//   - AsUUID: RFC 4122 identifiers
//   - Secret: tag the envelope as sensitive so observers redact it
//
// Transformers compose with Pipe (and Pipe3, Pipe4, Seq); execution is
// fail-fast, aborting the chain at the first error.
//
// Sources are abstracted behind the Reader interface. A ReaderFunc wraps any
// callable, and a plain Map works directly. Adapters are included for the
// process environment (Env), dotenv files (DotEnv), JSON documents addressed
// by gjson paths (JSONDoc), and koanf instances (Koanf). Multi tries readers
// in order and Prefix namespaces keys.
//
// Eval performs a single lookup:
//
//	port, err := cove.Eval(cove.Env(), "PORT", cove.AsInt[cove.Raw](8080))
//
// Bind curries a reader, and optionally an Interceptor, into a reusable
// binder. The interceptor wraps the full transform of every lookup exactly
// once and is the package's sole injection point for logging and metrics;
// LogInterceptor (zap) and MetricsInterceptor (prometheus) are provided.
//
//	b := cove.Bind(cove.Env(), cove.BindOpts{
//	    Interceptor: cove.LogInterceptor(logger),
//	})
//	dsn, err := cove.Get(b, "DATABASE_URL", cove.Pipe(cove.Must[cove.Raw], cove.Secret[string]))
//
// For whole configuration structs, Load populates tagged fields through the
// same reader and coercion machinery:
//
//	type Config struct {
//	    Addr    string        `cove:"ADDR" default:":8080"`
//	    Token   string        `cove:"API_TOKEN,secret"`
//	    Timeout time.Duration `cove:"TIMEOUT,optional"`
//	}
package cove

package cove

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// Built-in Interceptors
///////////////////////////////////////////////////////////////////////////////

// redacted replaces secret values in log output.
const redacted = "[REDACTED]"

// LogInterceptor returns an Interceptor that logs every bound lookup on
// logger. Successful lookups log at debug with the resolved value, rejected
// ones at warn with the error; a value whose envelope is marked secret is
// redacted. Errors are re-raised untouched.
func LogInterceptor(logger *zap.Logger) Interceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next RawTransform) RawTransform {
		return func(in Value[Raw]) (Value[any], error) {
			out, err := next(in)
			if err != nil {
				logger.Warn("config value rejected",
					zap.String("name", in.Name),
					zap.Error(err),
				)
				return out, err
			}

			val := out.Val
			if out.Secret {
				val = redacted
			}
			logger.Debug("config value resolved",
				zap.String("name", out.Name),
				zap.Any("value", val),
			)
			return out, nil
		}
	}
}

// LookupCounterOpts are the CounterOpts for a counter usable with
// MetricsInterceptor. Callers may register their own vector instead; it
// must carry exactly the labels "name" and "outcome".
var LookupCounterOpts = prometheus.CounterOpts{
	Name: "cove_lookups_total",
	Help: "Total number of configuration lookups, by key and outcome.",
}

// NewLookupCounter builds an unregistered counter vector for
// MetricsInterceptor.
func NewLookupCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(LookupCounterOpts, []string{"name", "outcome"})
}

// MetricsInterceptor returns an Interceptor that counts every bound lookup
// on lookups with labels {name, outcome}, outcome being "ok" or "error".
// The semantic result passes through untouched.
func MetricsInterceptor(lookups *prometheus.CounterVec) Interceptor {
	return func(next RawTransform) RawTransform {
		return func(in Value[Raw]) (Value[any], error) {
			out, err := next(in)
			outcome := "ok"
			if err != nil {
				outcome = "error"
			}
			lookups.WithLabelValues(in.Name, outcome).Inc()
			return out, err
		}
	}
}

// ChainInterceptors composes interceptors into one. The first listed
// interceptor is outermost: it observes the others' effects.
func ChainInterceptors(interceptors ...Interceptor) Interceptor {
	return func(next RawTransform) RawTransform {
		wrapped := next
		for i := len(interceptors) - 1; i >= 0; i-- {
			wrapped = interceptors[i](wrapped)
		}
		return wrapped
	}
}

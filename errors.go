package raptor

import (
	"log"
	"os"

	"github.com/pkg/errors"
)

/* Logger receives one line per invariant violation detected during a search
   (§7.2) -- dirty data is noted and the search keeps going, it never panics.
   Callers may swap this out, the same way jwmdev-brt08's simulator takes a
   *log.Logger rather than calling the stdlib package functions directly. */
var Logger = log.New(os.Stderr, "raptor: ", log.LstdFlags)

/* ConfigError wraps an invalid Request field so callers can fail fast before
   any search work begins (§7.1). */
type ConfigError struct {
	Field string
	Value any
	cause error
}

func (e *ConfigError) Error() string {
	return errors.Wrapf(e.cause, "invalid %s (%v)", e.Field, e.Value).Error()
}

func (e *ConfigError) Unwrap() error {
	return e.cause
}

func configErrorf(field string, value any, format string, args ...any) *ConfigError {
	return &ConfigError{
		Field: field,
		Value: value,
		cause: errors.Errorf(format, args...),
	}
}

/* logInvariantViolation records a detected invariant breach (§7.2) without
   aborting the search -- the round state is left as computed. */
func logInvariantViolation(format string, args ...any) {
	Logger.Printf(format, args...)
}

// internal/errs/errors.go
package errs

import "fmt"

// ConfigurationError reports generation parameters that cannot produce a
// valid dataset (e.g. a product count that does not split evenly across
// categories).
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func Configurationf(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// MissingInputError reports an input file the loader expected but did not
// find, typically because the generator has not run yet.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return "missing input file: " + e.Path
}

// IntegrityError wraps a constraint violation surfaced by the storage
// layer. Rows that violate a foreign key are never dropped silently.
type IntegrityError struct {
	Table string
	Err   error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation loading %s: %v", e.Table, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// QueryError wraps a failed aggregation query. An empty result set is not
// a QueryError.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

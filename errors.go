package klhyph

import "fmt"

// ErrorKind classifies failures of the offline dictionary build.
type ErrorKind int

const (
	// KindIndex reports that the pattern index backend rejected its input.
	KindIndex ErrorKind = iota + 1
	// KindEnv reports missing or unusable build configuration.
	KindEnv
	// KindIO reports a failure reading pattern sources or writing artifacts.
	KindIO
	// KindSerialization reports a failure encoding or decoding an artifact.
	KindSerialization
	// KindResource reports that a compiled dictionary is unavailable.
	KindResource
)

func (k ErrorKind) String() string {
	switch k {
	case KindIndex:
		return "index construction"
	case KindEnv:
		return "environment"
	case KindIO:
		return "I/O"
	case KindSerialization:
		return "serialization"
	case KindResource:
		return "resource"
	}
	return "unknown"
}

// BuildError is the tagged error surfaced by dictionary compilation and
// loading. Builds are not retried; the caller is expected to fix the
// underlying data or configuration and re-run.
type BuildError struct {
	Kind ErrorKind
	Err  error
}

func (e *BuildError) Error() string {
	if e.Err == nil {
		if e.Kind == KindResource {
			return "dictionary could not be located"
		}
		return fmt.Sprintf("%s failure", e.Kind)
	}
	return fmt.Sprintf("%s failure: %v", e.Kind, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

func buildError(kind ErrorKind, err error) *BuildError {
	return &BuildError{Kind: kind, Err: err}
}

func buildErrorf(kind ErrorKind, format string, args ...interface{}) *BuildError {
	return &BuildError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

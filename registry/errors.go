package registry

import "errors"

// Every failure below rejects the whole operation with zero persisted side
// effects; callers may retry with corrected input. Store failures pass
// through unwrapped and are not part of this taxonomy.
var (
	ErrAlreadyRegistered       = errors.New("registry: provider already registered")
	ErrNotRegistered           = errors.New("registry: provider not registered")
	ErrCurveAlreadySet         = errors.New("registry: curve already set for endpoint")
	ErrCurveNotSet             = errors.New("registry: no curve set for endpoint")
	ErrParameterNotInitialized = errors.New("registry: parameter not initialized")
	ErrIndexOutOfRange         = errors.New("registry: provider index out of range")
	ErrNoResolver              = errors.New("registry: no resolver configured")
)

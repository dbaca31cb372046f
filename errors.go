package reveal

import "errors"

var (
	// ErrNotReady is returned by the probe while the readiness gate is closed.
	ErrNotReady = errors.New("reveal: fonts not ready")
	// ErrNoSurface is returned by the probe when no measurement surface is attached.
	ErrNoSurface = errors.New("reveal: no measurement surface")
	// ErrUnknownTarget reports a targeted element other than "line" or "word".
	ErrUnknownTarget = errors.New("reveal: unknown targeted element")
	// ErrInvalidOptions wraps every Options validation failure.
	ErrInvalidOptions = errors.New("reveal: invalid options")
)

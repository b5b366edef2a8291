package obj

import "errors"

var (
	ErrMissingAnimation = errors.New("obj: missing animation")
	ErrInvalidPosition  = errors.New("obj: invalid position")
	ErrInvalidSize      = errors.New("obj: invalid size")
	ErrInvalidPatrol    = errors.New("obj: invalid patrol bounds")
	ErrInvalidScale     = errors.New("obj: invalid scale")
	ErrUnknownKind      = errors.New("obj: unknown kind")
)

package curve

import "errors"

var (
	ErrHandleCount   = errors.New("curve requires exactly four handle values")
	ErrUnknownPreset = errors.New("unknown curve preset")
)

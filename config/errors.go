package config

import "errors"

var (
	ErrUnknownCurve     = errors.New("unknown curve")
	ErrUnknownAnimation = errors.New("unknown animation")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidValue     = errors.New("invalid animation value")
	ErrDuplicateName    = errors.New("duplicate animation name")
)

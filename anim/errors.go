package anim

import "errors"

var (
	ErrUnknownKind       = errors.New("unknown animation kind")
	ErrUnknownRepeatMode = errors.New("unknown repeat mode")
)

package world

import "errors"

var (
	ErrEmptySource     = errors.New("no item to take from the source inventory")
	ErrIndexOutOfRange = errors.New("item index out of range")
)

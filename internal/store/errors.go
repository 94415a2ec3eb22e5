package store

import "errors"

var (
	ErrIndexOutOfRange = errors.New("index out of bounds")
	ErrRecordNotFound  = errors.New("no such person")
	ErrDuplicateID     = errors.New("duplicate person id")
)

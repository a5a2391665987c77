package storage

import "errors"

var (
	ErrOutOfRange     = errors.New("storage: array index out of range")
	ErrNegativeNumber = errors.New("storage: negative number")
	ErrCorruptValue   = errors.New("storage: corrupt stored value")
)

func IsOutOfRange(err error) bool { return errors.Is(err, ErrOutOfRange) }

func IsNegative(err error) bool { return errors.Is(err, ErrNegativeNumber) }

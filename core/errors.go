package core

import (
	"errors"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrShapeMismatch        = errors.New("shape mismatch")
	ErrKeyNotFound          = errors.New("key not found")
)

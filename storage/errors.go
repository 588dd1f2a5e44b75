package storage

import "errors"

var (
	ErrNotFound    = errors.New("storage: not found")
	ErrInvalidNode = errors.New("storage: invalid node")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

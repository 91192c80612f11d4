package game

import "github.com/pkg/errors"

var (
	ErrInvalidSize      = errors.New("invalid board size")
	ErrInvalidBombCount = errors.New("invalid bomb count")
)

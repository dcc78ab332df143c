package core

import "errors"

var (
	ErrIllegalMove = errors.New("not a legal move")
)

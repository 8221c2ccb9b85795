package path

import "errors"

var (
	ErrNotACommand        = errors.New("not a command")
	ErrNotEnoughArguments = errors.New("not enough arguments")
	ErrNotATuple          = errors.New("not a tuple")
	ErrNotPathData        = errors.New(`not a path data ("d") attribute`)
)

package svgpath

import "errors"

// ErrBadPath is returned when path data cannot be parsed into commands.
var ErrBadPath = errors.New("bad path")

// ErrUnsupportedCommand is the panic value, wrapped, when a Flattener receives a command that is not one of the ten path data commands. This can only happen for a nil Command.
var ErrUnsupportedCommand = errors.New("unsupported path command")

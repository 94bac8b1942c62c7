package domain

import "errors"

var ErrPositionNotFound = errors.New("position not found")

package core

import (
	"errors"
)

var (
	ErrViewpointNotFound = errors.New("viewpoint not found")
	ErrGestureActive     = errors.New("navigation gesture in progress")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

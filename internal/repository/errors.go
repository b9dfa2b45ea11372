package repository

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is returned for a course or ordinal the catalogue does not list.
var ErrNotRegistered = errors.New("not registered in catalogue")

// LoadError reports a registered document that could not be read, validated
// or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

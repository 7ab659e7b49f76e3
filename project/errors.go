package project

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned when two entities of one kind share a name.
var ErrDuplicateName = errors.New("project: duplicate name")

// ErrNullEntry is returned when a style or page list holds a null entry.
var ErrNullEntry = errors.New("project: null entry")

// AssetError reports a font or bitmap that could not be loaded.
type AssetError struct {
	Kind string // "font" or "bitmap"
	Name string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("project: %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

package aggregate

import (
	"errors"
	"fmt"
)

// ErrDuplicateExport matches any *DuplicateExportError.
var ErrDuplicateExport = errors.New("duplicate export")

// DuplicateExportError is returned when two packages export the same symbol.
type DuplicateExportError struct {
	Symbol string
	First  string // package that exported the symbol first
	Second string // package whose export collided
}

func (e *DuplicateExportError) Error() string {
	return fmt.Sprintf("symbol %q exported by both %s and %s", e.Symbol, e.First, e.Second)
}

func (e *DuplicateExportError) Is(target error) bool { return target == ErrDuplicateExport }

// DuplicatePackageError is returned when a package id is composed twice.
type DuplicatePackageError struct {
	ID string
}

func (e *DuplicatePackageError) Error() string {
	return fmt.Sprintf("package %q composed more than once", e.ID)
}

// IncompatiblePackageError is returned when a sibling package is missing a
// usable version or its version does not satisfy the constraint.
type IncompatiblePackageError struct {
	ID         string
	Version    string
	Constraint string
	Err        error
}

func (e *IncompatiblePackageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("package %s version %q: %v", e.ID, e.Version, e.Err)
	}
	return fmt.Sprintf("package %s version %s does not satisfy %s", e.ID, e.Version, e.Constraint)
}

func (e *IncompatiblePackageError) Unwrap() error { return e.Err }

package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies a generation failure.
type Kind string

const (
	KindAlreadyExists Kind = "ALREADY_EXISTS"
	KindMissingParent Kind = "MISSING_PARENT"
	KindPermission    Kind = "PERMISSION_DENIED"
	KindIO            Kind = "IO"
)

// Sentinels for errors.Is checks against an *Error of the matching kind.
var (
	ErrAlreadyExists = errors.New("component already exists")
	ErrMissingParent = errors.New("parent directory does not exist")
	ErrPermission    = errors.New("permission denied")
	ErrIO            = errors.New("i/o failure")
)

// Error is returned by Generator.Component. Path is the file or directory the
// failing operation touched.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.sentinel())
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for e's kind, so callers can write
// errors.Is(err, scaffold.ErrAlreadyExists).
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindAlreadyExists:
		return ErrAlreadyExists
	case KindMissingParent:
		return ErrMissingParent
	case KindPermission:
		return ErrPermission
	default:
		return ErrIO
	}
}

// KindOf returns the Kind carried by err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// classify wraps a filesystem error with the kind that best describes it.
func classify(op, path string, err error) *Error {
	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	case errors.Is(err, fs.ErrExist):
		kind = KindAlreadyExists
	case errors.Is(err, fs.ErrNotExist):
		kind = KindMissingParent
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

package recordstore

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound Matches, via [errors.Is], every [Error] of kind [KindNotFound]
	ErrFileNotFound = errors.New("backing file not found")

	// ErrFileCorrupted Matches, via [errors.Is], every [Error] of kind [KindCorrupted]
	ErrFileCorrupted = errors.New("backing file corrupted")
)

// Error A failure of a [RecordStore] operation. It always carries the backing file path
// and, except for [KindNotFound], the underlying cause
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == KindNotFound {
		return fmt.Sprintf("File '%s' not found", e.Path)
	}

	var verb string
	switch e.Op {
	case OpWrite:
		verb = "write to"
	case OpAppend:
		verb = "append to"
	case OpNew:
		verb = "create"
	default:
		verb = "read"
	}

	if e.Err == nil {
		return fmt.Sprintf("Cannot %s file '%s'", verb, e.Path)
	}

	return fmt.Sprintf("Cannot %s file '%s': %v", verb, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrFileNotFound:
		return e.Kind == KindNotFound
	case ErrFileCorrupted:
		return e.Kind == KindCorrupted
	}

	return false
}

func notFound(op, path string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Path: path}
}

func corrupted(op, path string, err error) *Error {
	return &Error{Kind: KindCorrupted, Op: op, Path: path, Err: err}
}

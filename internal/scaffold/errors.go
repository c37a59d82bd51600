package scaffold

import (
	"fmt"

	oerrors "github.com/marcospaterson/structure-me/internal/errors"
)

// Kind classifies a materialization failure.
type Kind int

const (
	// KindAlreadyExists means the project root was present before any mutation.
	KindAlreadyExists Kind = iota + 1

	// KindDirectoryCreation means a planned directory could not be created.
	KindDirectoryCreation

	// KindFileCreation means a planned file could not be created or written.
	KindFileCreation

	// KindTemplateRead means a sample could not be read in verbose mode.
	KindTemplateRead
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindDirectoryCreation:
		return "DirectoryCreationFailed"
	case KindFileCreation:
		return "FileCreationFailed"
	case KindTemplateRead:
		return "TemplateReadFailed"
	default:
		return "Unknown"
	}
}

// sentinel maps a kind to its package-level sentinel error.
func (k Kind) sentinel() error {
	switch k {
	case KindAlreadyExists:
		return oerrors.ErrAlreadyExists
	case KindDirectoryCreation:
		return oerrors.ErrDirectoryCreation
	case KindFileCreation:
		return oerrors.ErrFileCreation
	case KindTemplateRead:
		return oerrors.ErrTemplateRead
	default:
		return nil
	}
}

// Error reports a failed materialization step.
//
// It unwraps to both the sentinel for its Kind and the underlying cause, so
// errors.Is works against either.
type Error struct {
	Kind Kind

	// Path is the absolute path of the entry that failed.
	Path string

	// Err is the underlying cause. It is nil for KindAlreadyExists.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind.sentinel(), e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind.sentinel(), e.Path, e.Err)
}

// Unwrap returns the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	var errs []error
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

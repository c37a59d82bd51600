package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input, such as a missing project name.
	ErrValidation = errors.New("validation error")

	// ErrAlreadyExists indicates the project root is already present on disk.
	ErrAlreadyExists = errors.New("already exists")

	// ErrDirectoryCreation indicates a planned directory could not be created.
	ErrDirectoryCreation = errors.New("directory creation failed")

	// ErrFileCreation indicates a planned file could not be created or written.
	ErrFileCreation = errors.New("file creation failed")

	// ErrTemplateRead indicates a bundled sample could not be read.
	ErrTemplateRead = errors.New("template read failed")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")
)

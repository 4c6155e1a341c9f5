package site

import "errors"

// Sentinel errors for the site package
var (
	// ErrConfigNotFound indicates the site configuration file does not exist
	ErrConfigNotFound = errors.New("site configuration file not found")

	// ErrInvalidFormat indicates the configuration file is not valid JSON or YAML
	ErrInvalidFormat = errors.New("site configuration must be valid JSON or YAML")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, or .yml)")

	// ErrEmptyChildID indicates a child is missing the required id field
	ErrEmptyChildID = errors.New("child id cannot be empty")

	// ErrEmptyDirectory indicates a child is missing the required directory field
	ErrEmptyDirectory = errors.New("child directory cannot be empty")

	// ErrDuplicateChildID indicates two children share the same id
	ErrDuplicateChildID = errors.New("duplicate child id")
)

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrDirectoryNotFound indicates a configured directory does not exist
	ErrDirectoryNotFound = errors.New("directory does not exist")

	// ErrNotADirectory indicates a configured path is not a directory
	ErrNotADirectory = errors.New("not a directory")

	// ErrReadFailed indicates reading a content file failed
	ErrReadFailed = errors.New("read failed")

	// ErrWriteFailed indicates writing the manifest failed
	ErrWriteFailed = errors.New("write failed")
)

// DirectoryError represents a misconfigured or unreadable content directory.
// A missing directory is a build error, never a silent skip.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("directory error for %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// NewDirectoryError creates a new DirectoryError
func NewDirectoryError(path string, err error) *DirectoryError {
	return &DirectoryError{Path: path, Err: err}
}

// ReadError represents a failure reading one content file
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error for %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError
func NewReadError(path string, err error) *ReadError {
	return &ReadError{Path: path, Err: err}
}

// WriteError represents a failure writing the output manifest
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error for %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}

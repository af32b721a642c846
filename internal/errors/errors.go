// Package errors provides centralized error definitions for dockergen.
package errors

import "errors"

// Framework errors
var (
	ErrUnknownFramework = errors.New("unknown framework")
	ErrNoFramework      = errors.New("no framework selected")
)

// Template errors
var (
	ErrTemplateNotFound = errors.New("template file not found")
	ErrTemplateInvalid  = errors.New("template contains syntax errors")
)

// Config errors
var (
	ErrConfigInvalid  = errors.New("configuration file is invalid")
	ErrConfigNotFound = errors.New("configuration file not found")
)

// Scanner errors
var (
	ErrPathNotFound  = errors.New("specified path does not exist")
	ErrNotADirectory = errors.New("specified path is not a directory")
	ErrScanCancelled = errors.New("scan was cancelled")
)

// Output errors
var (
	ErrFileExists  = errors.New("output file already exists")
	ErrWriteFailed = errors.New("failed to write output file")
)

// Clipboard errors
var (
	ErrClipboardUnavailable = errors.New("clipboard is not available on this system")
)

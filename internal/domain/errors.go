package domain

import "errors"

var (
	// ErrChatNotFound is returned when an export holds no chat document.
	ErrChatNotFound = errors.New("required file not found")
	// ErrNotText is returned when the chat document is not plain text.
	ErrNotText = errors.New("chat document is not plain text")
	// ErrChatTooLarge is returned when the chat document exceeds the read limit.
	ErrChatTooLarge = errors.New("chat document too large")
	// ErrUnsupportedExport is returned for paths that are neither a
	// directory nor a zip archive.
	ErrUnsupportedExport = errors.New("unsupported export: expected a directory or .zip file")
)

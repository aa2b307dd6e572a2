package i18n

import "errors"

// Package-specific errors.
var (
	// ErrNilSource is returned when a nil reader is passed to New.
	ErrNilSource = errors.New("catalog source is nil")

	// ErrFailedToParseCatalog is returned when the YAML catalog cannot be read or parsed.
	ErrFailedToParseCatalog = errors.New("failed to parse message catalog")

	// ErrEmptyCatalog is returned when the catalog contains no languages.
	ErrEmptyCatalog = errors.New("message catalog is empty")

	// ErrInvalidCatalog is returned when the catalog structure is malformed.
	ErrInvalidCatalog = errors.New("invalid message catalog")
)

package typeface

import "errors"

var (
	// ErrUnknownTypeface is returned for IDs the registry never issued.
	ErrUnknownTypeface = errors.New("typeface: unknown typeface")

	// ErrUnknownBuiltin is returned by RegisterBuiltin for unknown names.
	ErrUnknownBuiltin = errors.New("typeface: unknown builtin font")

	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("typeface: invalid font data")

	// ErrNoOutline is returned when a glyph outline cannot be loaded.
	ErrNoOutline = errors.New("typeface: glyph outline unavailable")
)

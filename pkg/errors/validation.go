package errors

import (
	"strings"
	"unicode"
)

// ValidFormats is the set of output formats treelay can produce.
var ValidFormats = map[string]bool{
	"svg":  true,
	"png":  true,
	"dot":  true,
	"json": true,
}

// ValidViews is the set of supported visualization views.
var ValidViews = map[string]bool{
	"layered":  true,
	"graphviz": true,
}

// ValidateFormat checks that a requested output format is supported.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	if !ValidFormats[format] {
		return New(ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', 'dot', or 'json')", format)
	}
	return nil
}

// ValidateView checks that a requested visualization view is supported.
func ValidateView(view string) error {
	if view == "" {
		return New(ErrCodeInvalidView, "view cannot be empty")
	}
	if !ValidViews[view] {
		return New(ErrCodeInvalidView, "invalid view: %s (must be 'layered' or 'graphviz')", view)
	}
	return nil
}

// ValidateNodeID validates a node identifier from a tree document.
// Identifiers are used as map keys and in diagnostics, so they must be
// non-empty, printable, and of reasonable length.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDocument, "node id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidDocument, "node id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDocument, "node id %q contains control characters", id)
		}
	}
	return nil
}

// ValidateOutputPath validates an output file path for safety.
// It rejects empty paths and embedded null bytes; everything else is left
// to the operating system.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains a null byte")
	}
	return nil
}

// ValidateGeometry checks that layout geometry parameters are positive.
func ValidateGeometry(unit, levelHeight float64) error {
	if unit <= 0 {
		return New(ErrCodeInvalidGeometry, "unit width must be positive, got %g", unit)
	}
	if levelHeight <= 0 {
		return New(ErrCodeInvalidGeometry, "level height must be positive, got %g", levelHeight)
	}
	return nil
}

package domain

import "context"

// TextExtractor turns an uploaded document into raw text.
type TextExtractor interface {
	// Extract reads the file at path. mimeType is the type declared by the uploader;
	// the file extension is used when it is not conclusive.
	Extract(ctx context.Context, path string, mimeType string) (string, error)

	// Validate rejects missing, empty and oversized files before extraction.
	// A non-positive maxBytes disables the size check.
	Validate(path string, maxBytes int64) error
}

package core

import "errors"

// Error kinds reported by the editing session and the image sources.
// Callers classify wrapped errors with errors.Is.
var (
	// ErrInvalidInputFormat: rectangle text is not four comma separated
	// non-negative decimal integers.
	ErrInvalidInputFormat = errors.New("invalid input format")
	// ErrOutOfBounds: a rectangle coordinate lies outside the original image.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrInvalidRectangle: x1 >= x2 or y1 >= y2.
	ErrInvalidRectangle = errors.New("invalid rectangle")
	// ErrInvalidRadius: box blur radius outside [MinRadius, MaxRadius].
	ErrInvalidRadius = errors.New("invalid blur radius")
	// ErrUnreadableFile: the selected file could not be decoded.
	ErrUnreadableFile = errors.New("unreadable image file")
	// ErrNoCameraAvailable: no camera device could be opened.
	ErrNoCameraAvailable = errors.New("no camera available")
)

package core

import (
	"errors"
	"fmt"
	"image"
	"math"
	"regexp"
	"strconv"
)

var rectPattern = regexp.MustCompile(`^(\d+),(\d+),(\d+),(\d+)$`)

// Rect is a rectangle given by two corners, both inclusive.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// ParseRect reads "x1,y1,x2,y2" where every value is a non-negative decimal
// integer without sign or whitespace. Values too large for int saturate to
// math.MaxInt, so Validate reports them as out of bounds.
func ParseRect(text string) (Rect, error) {
	m := rectPattern.FindStringSubmatch(text)
	if m == nil {
		return Rect{}, fmt.Errorf("%w: %q, expected x1,y1,x2,y2", ErrInvalidInputFormat, text)
	}

	var vals [4]int
	for i := range vals {
		v, err := strconv.Atoi(m[i+1])
		if errors.Is(err, strconv.ErrRange) {
			v, err = math.MaxInt, nil
		}
		if err != nil {
			return Rect{}, fmt.Errorf("%w: %q: %v", ErrInvalidInputFormat, m[i+1], err)
		}
		vals[i] = v
	}

	return Rect{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}, nil
}

// Validate checks r against an image of the given size. X values must be in
// [0, width], Y values in [0, height], and the rectangle must not be empty or
// inverted.
func (r Rect) Validate(width, height int) error {
	if !inRange(r.X1, width) || !inRange(r.X2, width) ||
		!inRange(r.Y1, height) || !inRange(r.Y2, height) {
		return fmt.Errorf("%w: %s not within x [0; %d], y [0; %d]", ErrOutOfBounds, r, width, height)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("%w: %s", ErrInvalidRectangle, r)
	}
	return nil
}

// Bounds returns the half-open image.Rectangle covering every pixel from
// (X1,Y1) to (X2,Y2) inclusive.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2+1, r.Y2+1)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

func inRange(v, max int) bool {
	return v >= 0 && v <= max
}

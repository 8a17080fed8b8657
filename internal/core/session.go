// Editing session: the original image and the currently displayed edit
package core

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"simple-image-editor/internal/algorithms"
)

// Channel selects one of the RGB channels.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return algorithms.ChannelRed
	case Green:
		return algorithms.ChannelGreen
	case Blue:
		return algorithms.ChannelBlue
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// ParseChannel maps "R", "G" or "B" to a Channel.
func ParseChannel(name string) (Channel, error) {
	for _, c := range []Channel{Red, Green, Blue} {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown channel %q", name)
}

// DefaultRectangleColor is the fill used by DrawRectangle unless the session
// was created with another one.
var DefaultRectangleColor color.Color = color.NRGBA{B: 0xff, A: 0xff}

// Session holds the original image and the current edit. Every operation
// derives the current image from the original only, so edits never stack.
// The original is never modified after NewSession returns.
type Session struct {
	mu       sync.RWMutex
	original *image.NRGBA
	current  image.Image
	fill     color.Color
	logger   logrus.FieldLogger
}

// NewSession starts a session from src. The source is copied and converted
// to opaque RGB; src itself is not retained. A nil fill selects
// DefaultRectangleColor and a nil logger discards output.
func NewSession(src image.Image, fill color.Color, logger logrus.FieldLogger) (*Session, error) {
	if src == nil {
		return nil, fmt.Errorf("cannot start session without an image")
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", src.Bounds().Dx(), src.Bounds().Dy())
	}
	if fill == nil {
		fill = DefaultRectangleColor
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	original := toRGB(src)
	s := &Session{
		original: original,
		current:  original,
		fill:     fill,
		logger:   logger,
	}

	logger.WithFields(logrus.Fields{
		"width":  original.Rect.Dx(),
		"height": original.Rect.Dy(),
	}).Debug("Editing session started")

	return s, nil
}

// Width returns the width of the original image.
func (s *Session) Width() int {
	return s.original.Rect.Dx()
}

// Height returns the height of the original image.
func (s *Session) Height() int {
	return s.original.Rect.Dy()
}

// Original returns a copy of the original image.
func (s *Session) Original() image.Image {
	return cloneImage(s.original)
}

// Current returns a copy of the current image. It is either an
// *image.NRGBA, an *image.RGBA or, after Grayscale, an *image.Gray.
func (s *Session) Current() image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneImage(s.current)
}

// Revert makes the original image current again.
func (s *Session) Revert() {
	s.set(s.original, "revert")
}

// Channel shows only the given channel of the original.
func (s *Session) Channel(c Channel) error {
	out, err := algorithms.Apply(algorithms.NameChannel, s.original, map[string]interface{}{
		"channel": c.String(),
	})
	if err != nil {
		return fmt.Errorf("channel %s: %w", c, err)
	}
	s.set(out, "channel "+c.String())
	return nil
}

// Grayscale shows the luma of the original as a single channel image.
func (s *Session) Grayscale() error {
	out, err := algorithms.Apply(algorithms.NameGrayscale, s.original, nil)
	if err != nil {
		return fmt.Errorf("grayscale: %w", err)
	}
	s.set(out, "grayscale")
	return nil
}

// Average shows the original blurred with a box of the given radius.
// Radii outside [algorithms.MinRadius, algorithms.MaxRadius] fail with
// ErrInvalidRadius and leave the current image alone.
func (s *Session) Average(radius int) error {
	if radius < algorithms.MinRadius || radius > algorithms.MaxRadius {
		return fmt.Errorf("%w: %d not in [%d; %d]", ErrInvalidRadius, radius, algorithms.MinRadius, algorithms.MaxRadius)
	}

	out, err := algorithms.Apply(algorithms.NameBoxBlur, s.original, map[string]interface{}{
		"radius": radius,
	})
	if err != nil {
		return fmt.Errorf("average: %w", err)
	}
	s.set(out, fmt.Sprintf("average r=%d", radius))
	return nil
}

// DrawRectangle shows the original with r filled in the session color.
// On a validation error the current image is left unchanged.
func (s *Session) DrawRectangle(r Rect) error {
	if err := r.Validate(s.Width(), s.Height()); err != nil {
		return err
	}

	out, err := algorithms.Apply(algorithms.NameFillRectangle, s.original, map[string]interface{}{
		"rect":  r.Bounds(),
		"color": s.fill,
	})
	if err != nil {
		return fmt.Errorf("draw rectangle: %w", err)
	}
	s.set(out, "rectangle "+r.String())
	return nil
}

// DrawRectangleText parses "x1,y1,x2,y2" and calls DrawRectangle.
func (s *Session) DrawRectangleText(text string) error {
	r, err := ParseRect(text)
	if err != nil {
		return err
	}
	return s.DrawRectangle(r)
}

func (s *Session) set(img image.Image, op string) {
	s.mu.Lock()
	s.current = img
	s.mu.Unlock()

	s.logger.WithField("operation", op).Debug("Current image replaced")
}

// toRGB copies src into a zero-based NRGBA with every alpha set to opaque.
// Color values are kept as-is, so transparent pixels keep their RGB.
func toRGB(src image.Image) *image.NRGBA {
	dst := imaging.Clone(src)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

func cloneImage(img image.Image) image.Image {
	switch v := img.(type) {
	case *image.Gray:
		out := *v
		out.Pix = append([]uint8(nil), v.Pix...)
		return &out
	case *image.RGBA:
		out := *v
		out.Pix = append([]uint8(nil), v.Pix...)
		return &out
	case *image.NRGBA:
		out := *v
		out.Pix = append([]uint8(nil), v.Pix...)
		return &out
	}
	return imaging.Clone(img)
}

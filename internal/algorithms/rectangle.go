package algorithms

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

var defaultFill = color.NRGBA{B: 0xff, A: 0xff}

// FillRectangle paints an opaque rectangle onto a copy of the input.
// The "rect" parameter is a half-open image.Rectangle and is clipped to the
// image bounds.
type FillRectangle struct{}

func NewFillRectangle() *FillRectangle {
	return &FillRectangle{}
}

func (f *FillRectangle) Apply(input image.Image, params map[string]interface{}) (image.Image, error) {
	rect, fill, err := rectangleParams(params)
	if err != nil {
		return nil, err
	}

	dst := imaging.Clone(input)
	draw.Draw(dst, rect.Intersect(dst.Rect), image.NewUniform(fill), image.Point{}, draw.Src)
	return dst, nil
}

func (f *FillRectangle) GetName() string {
	return "Draw"
}

func (f *FillRectangle) Validate(params map[string]interface{}) error {
	_, _, err := rectangleParams(params)
	return err
}

func (f *FillRectangle) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "rect",
			Description: "Top-left and bottom-right corners of the rectangle: x1,y1,x2,y2",
		},
		{
			Name:        "color",
			Default:     defaultFill,
			Description: "Fill color",
		},
	}
}

func rectangleParams(params map[string]interface{}) (image.Rectangle, color.Color, error) {
	rect, ok := params["rect"].(image.Rectangle)
	if !ok {
		return image.Rectangle{}, nil, fmt.Errorf("rect is required")
	}
	if rect.Empty() {
		return image.Rectangle{}, nil, fmt.Errorf("rect %v is empty", rect)
	}

	fill, ok := params["color"].(color.Color)
	if !ok || fill == nil {
		fill = defaultFill
	}
	return rect, fill, nil
}

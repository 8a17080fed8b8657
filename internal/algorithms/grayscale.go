package algorithms

import (
	"image"
	"image/draw"
)

// Grayscale converts to a single channel luma image (ITU-R BT.601 weights).
type Grayscale struct{}

func NewGrayscale() *Grayscale {
	return &Grayscale{}
}

func (g *Grayscale) Apply(input image.Image, params map[string]interface{}) (image.Image, error) {
	bounds := input.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, input, bounds.Min, draw.Src)
	return gray, nil
}

func (g *Grayscale) GetName() string {
	return "Grayscale"
}

func (g *Grayscale) Validate(params map[string]interface{}) error {
	return nil
}

func (g *Grayscale) GetParameterInfo() []ParameterInfo {
	return nil
}

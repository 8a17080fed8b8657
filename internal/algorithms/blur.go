// Averaging filter
package algorithms

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// Radius limits for BoxBlur.
const (
	MinRadius = 1
	MaxRadius = 10
)

// BoxBlur implements an unweighted box blur
type BoxBlur struct{}

func NewBoxBlur() *BoxBlur {
	return &BoxBlur{}
}

func (b *BoxBlur) Apply(input image.Image, params map[string]interface{}) (image.Image, error) {
	radius, err := radiusParam(params)
	if err != nil {
		return nil, err
	}

	return blur.Box(input, float64(radius)), nil
}

func (b *BoxBlur) GetName() string {
	return "Average"
}

func (b *BoxBlur) Validate(params map[string]interface{}) error {
	_, err := radiusParam(params)
	return err
}

func (b *BoxBlur) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "radius",
			Min:         MinRadius,
			Max:         MaxRadius,
			Default:     MinRadius,
			Description: "Averaging size",
		},
	}
}

func radiusParam(params map[string]interface{}) (int, error) {
	var radius int
	switch v := params["radius"].(type) {
	case int:
		radius = v
	case float64:
		radius = int(v)
		if float64(radius) != v {
			return 0, fmt.Errorf("radius must be a whole number, got %v", v)
		}
	default:
		return 0, fmt.Errorf("radius is required")
	}

	if radius < MinRadius || radius > MaxRadius {
		return 0, fmt.Errorf("radius must be between %d and %d, got %d", MinRadius, MaxRadius, radius)
	}
	return radius, nil
}

// Image tool registry. Every tool is a pure function of its input image and
// parameters; none of them mutates the input.
package algorithms

import (
	"fmt"
	"image"
)

// Algorithm defines the interface for image editing tools
type Algorithm interface {
	Apply(input image.Image, params map[string]interface{}) (image.Image, error)
	GetName() string
	Validate(params map[string]interface{}) error
	GetParameterInfo() []ParameterInfo
}

// ParameterInfo describes a parameter for UI generation
type ParameterInfo struct {
	Name        string      `json:"name"`
	Min         interface{} `json:"min,omitempty"`
	Max         interface{} `json:"max,omitempty"`
	Default     interface{} `json:"default"`
	Description string      `json:"description"`
	Options     []string    `json:"options,omitempty"` // For enum type
}

// Param returns the named parameter of the tool registered under name.
func Param(name, param string) (ParameterInfo, error) {
	algorithm, exists := algorithms[name]
	if !exists {
		return ParameterInfo{}, fmt.Errorf("algorithm not found: %s", name)
	}
	for _, info := range algorithm.GetParameterInfo() {
		if info.Name == param {
			return info, nil
		}
	}
	return ParameterInfo{}, fmt.Errorf("%s has no parameter %q", name, param)
}

// Registered tool names.
const (
	NameChannel       = "channel"
	NameGrayscale     = "grayscale"
	NameBoxBlur       = "box_blur"
	NameFillRectangle = "fill_rectangle"
)

var algorithms = make(map[string]Algorithm)

func Register(name string, algorithm Algorithm) {
	algorithms[name] = algorithm
}

func Get(name string) (Algorithm, bool) {
	algorithm, exists := algorithms[name]
	return algorithm, exists
}

// Apply validates params against the named tool and runs it.
func Apply(name string, input image.Image, params map[string]interface{}) (image.Image, error) {
	algorithm, exists := algorithms[name]
	if !exists {
		return nil, fmt.Errorf("algorithm not found: %s", name)
	}
	if input == nil || input.Bounds().Empty() {
		return nil, fmt.Errorf("%s: input image is empty", name)
	}
	if err := algorithm.Validate(params); err != nil {
		return nil, err
	}

	return algorithm.Apply(input, params)
}

func init() {
	Register(NameChannel, NewChannelIsolation())
	Register(NameGrayscale, NewGrayscale())
	Register(NameBoxBlur, NewBoxBlur())
	Register(NameFillRectangle, NewFillRectangle())
}

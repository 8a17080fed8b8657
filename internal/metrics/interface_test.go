package metrics

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestMSE(t *testing.T) {
	a := solid(4, 4, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	b := solid(4, 4, color.NRGBA{R: 20, G: 10, B: 10, A: 255})

	v, err := NewMSE().Calculate(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 100.0/3, v, 1e-9)

	v, err = NewMSE().Calculate(a, a)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestMSE_GrayAgainstRGB(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	for i := range gray.Pix {
		gray.Pix[i] = 50
	}
	rgb := solid(2, 2, color.NRGBA{R: 50, G: 50, B: 50, A: 255})

	v, err := NewMSE().Calculate(rgb, gray)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestMSE_SizeMismatch(t *testing.T) {
	_, err := NewMSE().Calculate(solid(2, 2, color.Black), solid(3, 2, color.Black))
	assert.Error(t, err)
}

func TestPSNR(t *testing.T) {
	a := solid(3, 3, color.NRGBA{A: 255})

	v, err := NewPSNR().Calculate(a, a)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
	assert.Equal(t, "identical", NewPSNR().Format(v))

	b := solid(3, 3, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	v, err = NewPSNR().Calculate(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-9)
	assert.Equal(t, "0.00 dB", NewPSNR().Format(v))
}

func TestEvaluator(t *testing.T) {
	e := NewEvaluator()
	assert.Equal(t, []string{"mse", "psnr"}, e.Names())

	a := solid(2, 2, color.NRGBA{A: 255})
	all := e.CalculateAll(a, a)
	assert.Zero(t, all["mse"])
	assert.True(t, math.IsInf(all["psnr"], 1))

	assert.Empty(t, e.CalculateAll(a, solid(1, 1, color.Black)))
}

func TestEvaluator_Summary(t *testing.T) {
	e := NewEvaluator()
	a := solid(4, 4, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	b := solid(4, 4, color.NRGBA{R: 20, G: 10, B: 10, A: 255})

	assert.Equal(t, "MSE: 0.00, PSNR: identical", e.Summary(a, a))
	assert.Equal(t, "MSE: 33.33, PSNR: 32.90 dB", e.Summary(a, b))
	assert.Empty(t, e.Summary(a, solid(1, 1, color.Black)))
}

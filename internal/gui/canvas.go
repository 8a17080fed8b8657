// Presentation of the current image
package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/disintegration/imaging"

	"simple-image-editor/internal/config"
)

// fitForDisplay scales img down to fit the display box, keeping the aspect
// ratio. Images that already fit are returned unchanged; img is never
// modified.
func fitForDisplay(img image.Image, display config.DisplayConfig) image.Image {
	b := img.Bounds()
	if b.Dx() <= display.MaxWidth && b.Dy() <= display.MaxHeight {
		return img
	}
	return imaging.Fit(img, display.MaxWidth, display.MaxHeight, imaging.Lanczos)
}

// newImageView creates a canvas image sized to its content.
func newImageView(img image.Image) *canvas.Image {
	view := canvas.NewImageFromImage(img)
	view.FillMode = canvas.ImageFillOriginal
	view.ScaleMode = canvas.ImageScalePixels
	return view
}

// setImage swaps the image shown by view.
func setImage(view *canvas.Image, img image.Image) {
	view.Image = img
	b := img.Bounds()
	view.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	view.Refresh()
}

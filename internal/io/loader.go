// Image sources: decoding a picked file
package io

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"simple-image-editor/internal/core"
)

// ImageLoader decodes image files into RGB images
type ImageLoader struct {
	logger logrus.FieldLogger
}

func NewImageLoader(logger logrus.FieldLogger) *ImageLoader {
	return &ImageLoader{
		logger: logger,
	}
}

// SupportedExtensions lists the extensions offered by the file picker. It is a
// filter hint only; LoadImage tries to decode any path.
func SupportedExtensions() []string {
	return []string{".png", ".jpg", ".jpeg"}
}

// LoadImage decodes the file at path. Any failure to read or decode is
// reported as core.ErrUnreadableFile.
func (il *ImageLoader) LoadImage(path string) (image.Image, error) {
	il.logger.WithField("filepath", path).Debug("Loading image")

	if !IsSupportedImageFormat(path) {
		il.logger.WithField("filepath", path).Warn("File extension is not PNG or JPEG, trying to decode anyway")
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("%w: %s", core.ErrUnreadableFile, path)
	}

	img, err := matToImage(mat)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrUnreadableFile, path, err)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	}).Info("Image loaded successfully")

	return img, nil
}

// IsSupportedImageFormat reports whether path has a PNG or JPEG extension.
func IsSupportedImageFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedExtensions() {
		if ext == format {
			return true
		}
	}
	return false
}

// matToImage converts a BGR Mat into an image.Image.
func matToImage(mat gocv.Mat) (image.Image, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("empty frame")
	}
	if mat.Cols() <= 0 || mat.Rows() <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", mat.Cols(), mat.Rows())
	}
	return mat.ToImage()
}

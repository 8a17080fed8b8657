// Image sources: camera capture
package io

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"simple-image-editor/internal/core"
)

// CaptureDevice is the part of gocv.VideoCapture used here.
type CaptureDevice interface {
	IsOpened() bool
	Read(m *gocv.Mat) bool
	Close() error
}

// OpenFunc opens the capture device with the given index.
type OpenFunc func(index int) (CaptureDevice, error)

// OpenVideoDevice opens a camera through OpenCV.
func OpenVideoDevice(index int) (CaptureDevice, error) {
	vc, err := gocv.OpenVideoCapture(index)
	if vc == nil {
		return nil, err
	}
	return releaseOnError(vc, err)
}

// releaseOnError closes dev when opening it failed. gocv allocates the
// capture even when the device does not open.
func releaseOnError(dev CaptureDevice, err error) (CaptureDevice, error) {
	if err != nil {
		dev.Close()
		return nil, err
	}
	return dev, nil
}

// Camera owns an opened capture device. It is safe to grab frames from the
// preview goroutine and the UI goroutine at the same time.
type Camera struct {
	mu     sync.Mutex
	device CaptureDevice
	index  int
	frame  gocv.Mat
	closed bool
	logger logrus.FieldLogger
}

// OpenCamera tries the devices in order and keeps the first one that opens.
// It fails with core.ErrNoCameraAvailable when none does.
func OpenCamera(order []int, open OpenFunc, logger logrus.FieldLogger) (*Camera, error) {
	for _, idx := range order {
		dev, err := open(idx)
		if err != nil {
			logger.WithFields(logrus.Fields{"device": idx, "error": err}).Debug("Camera probe failed")
			continue
		}
		if dev == nil {
			continue
		}
		if !dev.IsOpened() {
			dev.Close()
			logger.WithField("device", idx).Debug("Camera not opened")
			continue
		}

		logger.WithField("device", idx).Info("Camera opened")
		return &Camera{
			device: dev,
			index:  idx,
			frame:  gocv.NewMat(),
			logger: logger,
		}, nil
	}

	return nil, fmt.Errorf("%w: probed devices %v", core.ErrNoCameraAvailable, order)
}

// Index returns the device index that was opened.
func (c *Camera) Index() int {
	return c.index
}

// Grab reads one frame and returns it as an RGB image.
func (c *Camera) Grab() (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("camera %d is closed", c.index)
	}
	if ok := c.device.Read(&c.frame); !ok || c.frame.Empty() {
		return nil, fmt.Errorf("%w: device %d returned no frame", core.ErrNoCameraAvailable, c.index)
	}
	return matToImage(c.frame)
}

// Stream grabs a frame every interval and hands it to onFrame until ctx is
// done. Failed reads are logged and skipped.
func (c *Camera) Stream(ctx context.Context, interval time.Duration, onFrame func(image.Image)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			img, err := c.Grab()
			if err != nil {
				c.logger.WithError(err).Debug("Preview frame skipped")
				continue
			}
			onFrame(img)
		}
	}
}

// Close releases the device. It is safe to call more than once.
func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.frame.Close()
	c.logger.WithField("device", c.index).Info("Camera released")
	return c.device.Close()
}

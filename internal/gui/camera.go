// Live camera preview screen
package gui

import (
	"context"
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// FrameSource is what the camera screen needs from a camera.
type FrameSource interface {
	Grab() (image.Image, error)
	Stream(ctx context.Context, interval time.Duration, onFrame func(image.Image))
	Close() error
}

// CameraScreen shows a live preview and takes a single snapshot
type CameraScreen struct {
	camera FrameSource
	nav    Navigator
	window fyne.Window
	logger logrus.FieldLogger

	preview     *canvas.Image
	snapshotBtn *widget.Button
	backBtn     *widget.Button
	closeBtn    *widget.Button
	content     fyne.CanvasObject

	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// NewCameraScreen takes ownership of cam and starts the preview loop.
func NewCameraScreen(cam FrameSource, nav Navigator, window fyne.Window, interval time.Duration, logger logrus.FieldLogger) *CameraScreen {
	cs := &CameraScreen{
		camera: cam,
		nav:    nav,
		window: window,
		logger: logger,
	}

	cs.preview = newImageView(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	cs.snapshotBtn = widget.NewButton("Take snapshot", cs.takeSnapshot)
	cs.backBtn = widget.NewButton("Back", nav.ShowMenu)
	cs.closeBtn = widget.NewButton("Close window", nav.Quit)
	cs.content = container.NewVBox(
		container.NewCenter(cs.preview),
		container.NewCenter(container.NewHBox(cs.backBtn, cs.snapshotBtn)),
		container.NewCenter(cs.closeBtn),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cs.cancel = cancel
	cs.wg.Add(1)
	go func() {
		defer cs.wg.Done()
		cam.Stream(ctx, interval, func(frame image.Image) {
			fyne.Do(func() {
				setImage(cs.preview, frame)
			})
		})
	}()

	return cs
}

func (cs *CameraScreen) Content() fyne.CanvasObject {
	return cs.content
}

// Dispose stops the preview and releases the camera.
func (cs *CameraScreen) Dispose() {
	cs.once.Do(func() {
		cs.cancel()
		cs.wg.Wait()
		if err := cs.camera.Close(); err != nil {
			cs.logger.WithError(err).Warn("Failed to release camera")
		}
	})
}

func (cs *CameraScreen) takeSnapshot() {
	frame, err := cs.camera.Grab()
	if err != nil {
		cs.logger.WithError(err).Error("Snapshot failed")
		dialog.ShowError(err, cs.window)
		return
	}

	cs.logger.WithFields(logrus.Fields{
		"width":  frame.Bounds().Dx(),
		"height": frame.Bounds().Dy(),
	}).Info("Snapshot taken")
	cs.nav.ShowEditor(frame)
}

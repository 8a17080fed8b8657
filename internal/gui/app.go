// Main application window and navigation between screens
package gui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/sirupsen/logrus"

	"simple-image-editor/internal/config"
	"simple-image-editor/internal/core"
	"simple-image-editor/internal/io"
)

// Navigator switches the window between screens. Screens receive it instead
// of a reference to the window that owns them.
type Navigator interface {
	ShowMenu()
	ShowCamera()
	ShowEditor(img image.Image)
	Quit()
}

// screen is one page of the window. Dispose releases whatever the screen
// holds (camera device, preview goroutine) and is called exactly once.
type screen interface {
	Content() fyne.CanvasObject
	Dispose()
}

// Application owns the window and the active screen
type Application struct {
	app    fyne.App
	window fyne.Window
	logger *logrus.Logger
	cfg    *config.Config

	loader     *io.ImageLoader
	openCamera io.OpenFunc

	current screen
}

func NewApplication(app fyne.App, cfg *config.Config, logger *logrus.Logger) *Application {
	window := app.NewWindow(cfg.Window.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	a := &Application{
		app:        app,
		window:     window,
		logger:     logger,
		cfg:        cfg,
		loader:     io.NewImageLoader(logger),
		openCamera: io.OpenVideoDevice,
	}

	window.SetCloseIntercept(func() {
		a.cleanup()
		window.Close()
	})

	a.ShowMenu()
	return a
}

func (a *Application) ShowMenu() {
	a.show(NewMenuScreen(a, a.window, a.loader, a.logger))
}

// ShowCamera opens the first available camera. Without one the user stays
// on the menu screen.
func (a *Application) ShowCamera() {
	cam, err := io.OpenCamera(a.cfg.Camera.ProbeOrder, a.openCamera, a.logger)
	if err != nil {
		a.showError("Camera unavailable", err)
		a.ShowMenu()
		return
	}

	a.show(NewCameraScreen(cam, a, a.window, a.cfg.PreviewInterval(), a.logger))
}

// ShowEditor starts an editing session on img.
func (a *Application) ShowEditor(img image.Image) {
	session, err := core.NewSession(img, a.cfg.RectangleColor(), a.logger)
	if err != nil {
		a.showError("Cannot edit image", fmt.Errorf("%w: %v", core.ErrUnreadableFile, err))
		a.ShowMenu()
		return
	}

	a.show(NewEditorScreen(session, a, a.window, a.cfg.Display, a.logger))
}

// Quit closes the window, which ends ShowAndRun.
func (a *Application) Quit() {
	a.cleanup()
	a.window.Close()
}

func (a *Application) show(s screen) {
	if a.current != nil {
		a.current.Dispose()
	}
	a.current = s
	a.window.SetContent(s.Content())
}

func (a *Application) ShowAndRun() {
	a.logger.Info("Showing main application window")
	a.window.ShowAndRun()
}

func (a *Application) cleanup() {
	if a.current != nil {
		a.logger.Info("Cleaning up application resources")
		a.current.Dispose()
		a.current = nil
	}
}

func (a *Application) showError(title string, err error) {
	a.logger.WithError(err).Error(title)
	dialog.ShowError(err, a.window)
}

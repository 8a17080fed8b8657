// Source selection screen
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"simple-image-editor/internal/io"
)

// MenuScreen lets the user pick an image file or switch to the camera
type MenuScreen struct {
	nav    Navigator
	window fyne.Window
	loader *io.ImageLoader
	logger logrus.FieldLogger

	fileBtn   *widget.Button
	cameraBtn *widget.Button
	closeBtn  *widget.Button
	content   fyne.CanvasObject
}

func NewMenuScreen(nav Navigator, window fyne.Window, loader *io.ImageLoader, logger logrus.FieldLogger) *MenuScreen {
	ms := &MenuScreen{
		nav:    nav,
		window: window,
		loader: loader,
		logger: logger,
	}

	ms.fileBtn = widget.NewButton("Choose image file", ms.pickFile)
	ms.cameraBtn = widget.NewButton("Use camera", nav.ShowCamera)
	ms.closeBtn = widget.NewButton("Close window", nav.Quit)
	ms.content = container.NewCenter(container.NewVBox(ms.fileBtn, ms.cameraBtn, ms.closeBtn))

	return ms
}

func (ms *MenuScreen) Content() fyne.CanvasObject {
	return ms.content
}

func (ms *MenuScreen) Dispose() {}

func (ms *MenuScreen) pickFile() {
	ms.logger.Info("Opening file dialog for image selection")

	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ms.showError("File Dialog Error", err)
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()

		ms.openPath(path)
	}, ms.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(io.SupportedExtensions()))
	fileDialog.Show()
}

// openPath decodes path and opens the editor, or reports the failure and
// stays on the menu.
func (ms *MenuScreen) openPath(path string) {
	img, err := ms.loader.LoadImage(path)
	if err != nil {
		ms.showError("Failed to Load Image", err)
		return
	}
	ms.nav.ShowEditor(img)
}

func (ms *MenuScreen) showError(title string, err error) {
	ms.logger.WithError(err).Error(title)
	dialog.ShowError(err, ms.window)
}

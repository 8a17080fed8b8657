package gui

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple-image-editor/internal/algorithms"
	"simple-image-editor/internal/config"
	"simple-image-editor/internal/core"
	"simple-image-editor/internal/io"
)

type fakeNavigator struct {
	menus   int
	cameras int
	quits   int
	edited  []image.Image
}

func (n *fakeNavigator) ShowMenu()                  { n.menus++ }
func (n *fakeNavigator) ShowCamera()                { n.cameras++ }
func (n *fakeNavigator) ShowEditor(img image.Image) { n.edited = append(n.edited, img) }
func (n *fakeNavigator) Quit()                      { n.quits++ }

type fakeCamera struct {
	mu     sync.Mutex
	frame  image.Image
	err    error
	closes int
}

func (c *fakeCamera) Grab() (image.Image, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.frame, nil
}

func (c *fakeCamera) Stream(ctx context.Context, interval time.Duration, onFrame func(image.Image)) {
	<-ctx.Done()
}

func (c *fakeCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closes++
	return nil
}

func newTestLogger() *logrus.Logger {
	logger, _ := logtest.NewNullLogger()
	return logger
}

func createTestImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func newTestEditor(t *testing.T, w, h int) (*EditorScreen, *fakeNavigator) {
	t.Helper()
	test.NewApp()
	win := test.NewWindow(nil)
	t.Cleanup(win.Close)

	session, err := core.NewSession(createTestImage(w, h), nil, newTestLogger())
	require.NoError(t, err)

	nav := &fakeNavigator{}
	es := NewEditorScreen(session, nav, win, config.Default().Display, newTestLogger())
	win.SetContent(es.Content())
	return es, nav
}

func TestEditorScreen_Tools(t *testing.T) {
	es, _ := newTestEditor(t, 40, 30)
	assert.Contains(t, es.status.Text, "identical")

	test.Tap(es.grayBtn)
	_, isGray := es.session.Current().(*image.Gray)
	assert.True(t, isGray)
	assert.Contains(t, es.status.Text, "dB")

	test.Tap(es.revertBtn)
	assert.Contains(t, es.status.Text, "identical")

	test.Tap(es.channelBtns[algorithms.ChannelRed])
	c := color.NRGBAModel.Convert(es.session.Current().At(5, 5)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 5, A: 255}, c)

	test.Tap(es.channelBtns[algorithms.ChannelBlue])
	c = color.NRGBAModel.Convert(es.session.Current().At(5, 5)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{B: 200, A: 255}, c)
}

func TestEditorScreen_ControlsFollowTools(t *testing.T) {
	es, _ := newTestEditor(t, 10, 10)

	assert.Equal(t, float64(algorithms.MinRadius), es.radius.Min)
	assert.Equal(t, float64(algorithms.MaxRadius), es.radius.Max)
	assert.Equal(t, float64(algorithms.MinRadius), es.radius.Value)

	require.Len(t, es.channelBtns, 3)
	assert.Equal(t, "Red channel", es.channelBtns[algorithms.ChannelRed].Text)
	assert.Equal(t, "Grayscale", es.grayBtn.Text)
	assert.Equal(t, "Average", es.averageBtn.Text)

	assert.Equal(t, "10x10, vs original: MSE: 0.00, PSNR: identical", es.status.Text)
}

func TestEditorScreen_Average(t *testing.T) {
	es, _ := newTestEditor(t, 20, 20)

	es.radius.SetValue(3)
	test.Tap(es.averageBtn)

	assert.NotContains(t, es.status.Text, "Error")
	assert.NotContains(t, es.status.Text, "identical")
}

func TestEditorScreen_DrawRectangle(t *testing.T) {
	es, _ := newTestEditor(t, 20, 20)

	test.Type(es.rectEntry, "0,0,10,10")
	test.Tap(es.drawBtn)

	c := color.NRGBAModel.Convert(es.session.Current().At(10, 10)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, c)
}

func TestEditorScreen_InvalidRectangleKeepsImage(t *testing.T) {
	es, _ := newTestEditor(t, 20, 20)
	test.Tap(es.channelBtns[algorithms.ChannelGreen])
	before := es.session.Current()

	test.Type(es.rectEntry, "10,10,5,20")
	test.Tap(es.drawBtn)

	assert.Contains(t, es.status.Text, "Error")
	assert.Equal(t, before, es.session.Current())
}

func TestEditorScreen_Navigation(t *testing.T) {
	es, nav := newTestEditor(t, 5, 5)

	test.Tap(es.backBtn)
	test.Tap(es.closeBtn)
	assert.Equal(t, 1, nav.menus)
	assert.Equal(t, 1, nav.quits)
}

func TestFitForDisplay(t *testing.T) {
	display := config.DisplayConfig{MaxWidth: 100, MaxHeight: 50}

	small := createTestImage(80, 40)
	assert.Same(t, small, fitForDisplay(small, display).(*image.NRGBA))

	wide := fitForDisplay(createTestImage(400, 100), display)
	assert.Equal(t, 100, wide.Bounds().Dx())
	assert.Equal(t, 25, wide.Bounds().Dy())

	tall := fitForDisplay(createTestImage(50, 500), display)
	assert.Equal(t, 5, tall.Bounds().Dx())
	assert.Equal(t, 50, tall.Bounds().Dy())
}

func TestEditorScreen_DisplayDoesNotTouchSession(t *testing.T) {
	es, _ := newTestEditor(t, 2000, 100)

	assert.Equal(t, 2000, es.session.Current().Bounds().Dx())
	assert.LessOrEqual(t, es.image.Image.Bounds().Dx(), config.Default().Display.MaxWidth)
}

func TestCameraScreen_Snapshot(t *testing.T) {
	test.NewApp()
	win := test.NewWindow(nil)
	defer win.Close()

	frame := createTestImage(8, 6)
	cam := &fakeCamera{frame: frame}
	nav := &fakeNavigator{}

	cs := NewCameraScreen(cam, nav, win, time.Millisecond, newTestLogger())
	win.SetContent(cs.Content())

	test.Tap(cs.snapshotBtn)
	require.Len(t, nav.edited, 1)
	assert.Same(t, frame, nav.edited[0].(*image.NRGBA))

	cs.Dispose()
	cs.Dispose()
	assert.Equal(t, 1, cam.closes)
}

func TestCameraScreen_SnapshotFailure(t *testing.T) {
	test.NewApp()
	win := test.NewWindow(nil)
	defer win.Close()

	cam := &fakeCamera{err: core.ErrNoCameraAvailable}
	nav := &fakeNavigator{}
	cs := NewCameraScreen(cam, nav, win, time.Millisecond, newTestLogger())
	defer cs.Dispose()

	test.Tap(cs.snapshotBtn)
	assert.Empty(t, nav.edited)

	test.Tap(cs.backBtn)
	assert.Equal(t, 1, nav.menus)
}

func TestMenuScreen_UnreadableFileStaysOnMenu(t *testing.T) {
	test.NewApp()
	win := test.NewWindow(nil)
	defer win.Close()

	nav := &fakeNavigator{}
	ms := NewMenuScreen(nav, win, io.NewImageLoader(newTestLogger()), newTestLogger())

	ms.openPath("/nonexistent/picture.png")
	assert.Empty(t, nav.edited)

	test.Tap(ms.cameraBtn)
	assert.Equal(t, 1, nav.cameras)
}

func newTestApplication(t *testing.T, open io.OpenFunc) *Application {
	t.Helper()
	a := NewApplication(test.NewApp(), config.Default(), newTestLogger())
	a.openCamera = open
	t.Cleanup(a.cleanup)
	return a
}

func TestApplication_Navigation(t *testing.T) {
	a := newTestApplication(t, nil)
	assert.IsType(t, &MenuScreen{}, a.current)

	a.ShowEditor(createTestImage(10, 10))
	assert.IsType(t, &EditorScreen{}, a.current)

	a.ShowMenu()
	assert.IsType(t, &MenuScreen{}, a.current)
}

func TestApplication_EmptyImageReturnsToMenu(t *testing.T) {
	a := newTestApplication(t, nil)

	a.ShowEditor(image.NewNRGBA(image.Rectangle{}))
	assert.IsType(t, &MenuScreen{}, a.current)
}

func TestApplication_NoCameraReturnsToMenu(t *testing.T) {
	var probed []int
	a := newTestApplication(t, func(idx int) (io.CaptureDevice, error) {
		probed = append(probed, idx)
		return nil, errors.New("no device")
	})

	a.ShowCamera()
	assert.IsType(t, &MenuScreen{}, a.current)
	assert.Equal(t, []int{2, 1, 0}, probed)
}

// Editing screen: tools over a single session
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"simple-image-editor/internal/algorithms"
	"simple-image-editor/internal/config"
	"simple-image-editor/internal/core"
	"simple-image-editor/internal/metrics"
)

var channelLabels = map[string]string{
	algorithms.ChannelRed:   "Red channel",
	algorithms.ChannelGreen: "Green channel",
	algorithms.ChannelBlue:  "Blue channel",
}

// EditorScreen shows the current image of a session and the editing tools
type EditorScreen struct {
	session   *core.Session
	nav       Navigator
	window    fyne.Window
	display   config.DisplayConfig
	evaluator *metrics.Evaluator
	logger    logrus.FieldLogger

	image       *canvas.Image
	status      *widget.Label
	revertBtn   *widget.Button
	channelBtns map[string]*widget.Button
	grayBtn     *widget.Button
	radius      *widget.Slider
	averageBtn  *widget.Button
	rectEntry   *widget.Entry
	drawBtn     *widget.Button
	backBtn     *widget.Button
	closeBtn    *widget.Button
	content     fyne.CanvasObject
}

func NewEditorScreen(session *core.Session, nav Navigator, window fyne.Window, display config.DisplayConfig, logger logrus.FieldLogger) *EditorScreen {
	es := &EditorScreen{
		session:   session,
		nav:       nav,
		window:    window,
		display:   display,
		evaluator: metrics.NewEvaluator(),
		logger:    logger,
	}

	es.buildUI()
	es.redraw()
	return es
}

func (es *EditorScreen) buildUI() {
	es.image = newImageView(es.session.Current())
	es.status = widget.NewLabel("")

	es.revertBtn = widget.NewButton("Original", func() {
		es.session.Revert()
		es.redraw()
	})

	tools := container.NewVBox(
		es.revertBtn,
		es.channelRow(),
		es.grayscaleRow(),
		es.averageRow(),
	)
	for _, obj := range es.rectangleRows() {
		tools.Add(obj)
	}

	es.backBtn = widget.NewButton("Back", es.nav.ShowMenu)
	es.closeBtn = widget.NewButton("Close window", es.nav.Quit)
	tools.Add(container.NewHBox(es.backBtn, es.closeBtn))

	es.content = container.NewBorder(nil, es.status, nil, tools, container.NewCenter(es.image))
}

// channelRow has one button per channel the channel tool offers.
func (es *EditorScreen) channelRow() fyne.CanvasObject {
	row := container.NewHBox()
	es.channelBtns = make(map[string]*widget.Button)

	info, err := algorithms.Param(algorithms.NameChannel, "channel")
	if err != nil {
		es.logger.WithError(err).Error("Channel tool unavailable")
		return row
	}

	for _, name := range info.Options {
		ch, err := core.ParseChannel(name)
		if err != nil {
			es.logger.WithError(err).Warn("Skipping channel")
			continue
		}
		label, ok := channelLabels[name]
		if !ok {
			label = name + " channel"
		}
		btn := widget.NewButton(label, func() {
			es.apply("channel", func() error { return es.session.Channel(ch) })
		})
		es.channelBtns[name] = btn
		row.Add(btn)
	}
	return row
}

func (es *EditorScreen) grayscaleRow() fyne.CanvasObject {
	es.grayBtn = widget.NewButton(toolName(algorithms.NameGrayscale), func() {
		es.apply("grayscale", es.session.Grayscale)
	})
	return es.grayBtn
}

// averageRow builds the radius slider from the blur tool's parameter range.
func (es *EditorScreen) averageRow() fyne.CanvasObject {
	minR, maxR, def := algorithms.MinRadius, algorithms.MaxRadius, algorithms.MinRadius
	desc := "Radius"
	if info, err := algorithms.Param(algorithms.NameBoxBlur, "radius"); err == nil {
		minR = intOr(info.Min, minR)
		maxR = intOr(info.Max, maxR)
		def = intOr(info.Default, def)
		desc = info.Description
	}

	es.radius = widget.NewSlider(float64(minR), float64(maxR))
	es.radius.Step = 1
	es.radius.SetValue(float64(def))
	radiusLabel := widget.NewLabel(fmt.Sprintf("%s: %d", desc, def))
	es.radius.OnChanged = func(v float64) {
		radiusLabel.SetText(fmt.Sprintf("%s: %d", desc, int(v)))
	}

	es.averageBtn = widget.NewButton(toolName(algorithms.NameBoxBlur), func() {
		es.apply("average", func() error { return es.session.Average(int(es.radius.Value)) })
	})
	return container.NewBorder(nil, nil, radiusLabel, es.averageBtn, es.radius)
}

func (es *EditorScreen) rectangleRows() []fyne.CanvasObject {
	hint := "x1,y1,x2,y2"
	if info, err := algorithms.Param(algorithms.NameFillRectangle, "rect"); err == nil {
		hint = info.Description
	}

	es.rectEntry = widget.NewEntry()
	es.rectEntry.SetPlaceHolder("x1,y1,x2,y2")
	es.drawBtn = widget.NewButton(toolName(algorithms.NameFillRectangle), func() {
		es.apply("rectangle", func() error { return es.session.DrawRectangleText(es.rectEntry.Text) })
	})

	return []fyne.CanvasObject{
		widget.NewLabel(hint),
		widget.NewLabel(fmt.Sprintf("x - [0; %d], y - [0; %d]", es.session.Width(), es.session.Height())),
		container.NewBorder(nil, nil, nil, es.drawBtn, es.rectEntry),
	}
}

func (es *EditorScreen) Content() fyne.CanvasObject {
	return es.content
}

func (es *EditorScreen) Dispose() {}

// apply runs one tool. A failing tool leaves the image as it was and the
// error is shown to the user.
func (es *EditorScreen) apply(op string, fn func() error) {
	if err := fn(); err != nil {
		es.logger.WithFields(logrus.Fields{"operation": op, "error": err}).Warn("Editing operation rejected")
		es.status.SetText("Error: " + err.Error())
		dialog.ShowError(err, es.window)
		return
	}
	es.redraw()
}

func (es *EditorScreen) redraw() {
	current := es.session.Current()
	setImage(es.image, fitForDisplay(current, es.display))

	size := fmt.Sprintf("%dx%d", es.session.Width(), es.session.Height())
	if summary := es.evaluator.Summary(es.session.Original(), current); summary != "" {
		size += ", vs original: " + summary
	}
	es.status.SetText(size)
}

func toolName(name string) string {
	if alg, ok := algorithms.Get(name); ok {
		return alg.GetName()
	}
	return name
}

func intOr(v interface{}, fallback int) int {
	if i, ok := v.(int); ok {
		return i
	}
	return fallback
}

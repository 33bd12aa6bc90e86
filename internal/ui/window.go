// Package ui is the desktop front end: a single window with a text entry,
// source and target language dropdowns, Translate / Copy / Save buttons, a
// result line and the session history.
package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/valpere/lingobuddy/internal/language"
	"github.com/valpere/lingobuddy/internal/session"
)

const (
	AppID        = "io.github.valpere.lingobuddy"
	AppTitle     = "Translator App"
	WindowWidth  = 500
	WindowHeight = 400
)

var (
	colorSuccess = color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	colorError   = color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}
)

// Window binds one session controller to a fyne window.
type Window struct {
	window  fyne.Window
	ctrl    *session.Controller
	catalog *language.Catalog
	log     zerolog.Logger

	// run executes the blocking translate call off the UI goroutine.
	run func(func())

	input        *widget.Entry
	source       *widget.Select
	target       *widget.Select
	translateBtn *widget.Button
	copyBtn      *widget.Button
	saveBtn      *widget.Button
	result       *canvas.Text
	history      *widget.Entry
}

// NewWindow builds the translator form in w. src and dst are the initially
// selected languages.
func NewWindow(w fyne.Window, ctrl *session.Controller, src, dst language.Code, log zerolog.Logger) *Window {
	ui := &Window{
		window:  w,
		ctrl:    ctrl,
		catalog: ctrl.Catalog(),
		log:     log.With().Str("component", "ui").Logger(),
		run:     func(f func()) { go f() },
	}
	ui.setupUI(src, dst)
	return ui
}

func (ui *Window) setupUI(src, dst language.Code) {
	labels := ui.catalog.Labels()

	ui.input = widget.NewEntry()
	ui.input.SetPlaceHolder("Word or phrase")
	ui.input.OnSubmitted = func(string) { ui.onTranslate() }

	ui.source = widget.NewSelect(labels, nil)
	ui.source.SetSelected(ui.catalog.Label(src))
	ui.target = widget.NewSelect(labels, nil)
	ui.target.SetSelected(ui.catalog.Label(dst))

	ui.translateBtn = widget.NewButton("Translate", ui.onTranslate)
	ui.translateBtn.Importance = widget.HighImportance
	ui.copyBtn = widget.NewButton("Copy to Clipboard", ui.onCopy)
	ui.saveBtn = widget.NewButton("Save Translation", ui.onSave)

	ui.result = canvas.NewText("", colorSuccess)
	ui.result.Alignment = fyne.TextAlignCenter

	ui.history = widget.NewMultiLineEntry()
	ui.history.Wrapping = fyne.TextWrapWord
	ui.history.Disable()

	form := container.NewVBox(
		widget.NewLabel("Enter the text to translate:"),
		ui.input,
		widget.NewLabel("Select the source language:"),
		ui.source,
		widget.NewLabel("Select the target language:"),
		ui.target,
		container.NewGridWithColumns(3, ui.translateBtn, ui.copyBtn, ui.saveBtn),
		ui.result,
		widget.NewLabelWithStyle("Translation History:", fyne.TextAlignCenter, fyne.TextStyle{}),
	)

	ui.window.SetContent(container.NewBorder(form, nil, nil, nil, ui.history))
}

// selectedLanguages maps the dropdown labels back to catalog codes.
func (ui *Window) selectedLanguages() (language.Code, language.Code, bool) {
	src, err := ui.catalog.Resolve(ui.source.Selected)
	if err != nil {
		return "", "", false
	}
	dst, err := ui.catalog.Resolve(ui.target.Selected)
	if err != nil {
		return "", "", false
	}
	return src, dst, true
}

func (ui *Window) onTranslate() {
	src, dst, ok := ui.selectedLanguages()
	if !ok {
		ui.showError(session.InvalidInputMessage)
		return
	}
	text := ui.input.Text

	ui.translateBtn.Disable()
	ui.run(func() {
		res, err := ui.ctrl.RequestTranslation(context.Background(), text, src, dst)
		fyne.Do(func() {
			ui.translateBtn.Enable()
			ui.showResult(res, err)
		})
	})
}

func (ui *Window) showResult(res *session.Result, err error) {
	switch {
	case errors.Is(err, session.ErrInvalidInput):
		ui.showError(session.InvalidInputMessage)
	case err != nil:
		ui.log.Debug().Err(err).Msg("translation failed")
		ui.showError(err.Error())
	default:
		ui.setResult(session.DisplayText(res), colorSuccess)
		ui.history.SetText(ui.ctrl.HistoryText())
	}
}

func (ui *Window) showError(msg string) {
	ui.setResult(msg, colorError)
}

func (ui *Window) setResult(msg string, c color.Color) {
	ui.result.Text = msg
	ui.result.Color = c
	ui.result.Refresh()
}

func (ui *Window) onCopy() {
	res, ok := ui.ctrl.Current()
	if !ok {
		return
	}
	fyne.CurrentApp().Clipboard().SetContent(ui.ctrl.CopyResultText(res))
}

func (ui *Window) onSave() {
	res, ok := ui.ctrl.Current()
	if !ok {
		dialog.ShowInformation("Save Translation", "Nothing to save yet.", ui.window)
		return
	}

	save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		ui.saveTo(res, w, err)
	}, ui.window)
	save.SetFileName("translation.txt")
	save.Show()
}

// saveTo handles the save dialog's answer. The dialog opens the file; it is
// closed here and rewritten by path through the controller.
func (ui *Window) saveTo(res *session.Result, w fyne.URIWriteCloser, err error) {
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	if w == nil {
		return
	}

	path := w.URI().Path()
	if err := w.Close(); err != nil {
		ui.log.Debug().Err(err).Str("path", path).Msg("closing save target failed")
		dialog.ShowError(fmt.Errorf("failed to save translation: %w", err), ui.window)
		return
	}

	ui.export(res, path)
}

func (ui *Window) export(res *session.Result, path string) {
	if err := ui.ctrl.ExportResult(res, path); err != nil {
		ui.log.Debug().Err(err).Str("path", path).Msg("export failed")
		dialog.ShowError(err, ui.window)
		return
	}
	dialog.ShowInformation("Success", "Translation saved successfully.", ui.window)
}

// Run opens the translator window and blocks until it is closed.
func Run(ctrl *session.Controller, src, dst language.Code, log zerolog.Logger) {
	a := app.NewWithID(AppID)
	w := a.NewWindow(AppTitle)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	NewWindow(w, ctrl, src, dst, log)

	w.ShowAndRun()
}

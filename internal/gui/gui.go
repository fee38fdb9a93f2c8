// Package gui is the fyne desktop front-end of the mosaic builder.
//
// The window offers a folder picker, entries for the grid dimension and
// tile size, a Generate button, a preview of the last mosaic and a Save
// button. Builds run off the UI goroutine; Generate stays disabled until
// the build returns.
package gui

import (
	"errors"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ironsheep/image-mosaic/internal/config"
	"github.com/ironsheep/image-mosaic/internal/mosaic"
	"github.com/ironsheep/image-mosaic/internal/session"
)

// App is the mosaic window and the session behind it.
type App struct {
	app     fyne.App
	window  fyne.Window
	session *session.Session
	logger  *log.Logger

	// cfg holds everything the form does not edit (background, seed,
	// output name, JPEG quality) plus the chosen folder.
	cfg config.Config

	folderLabel *widget.Label
	gridEntry   *widget.Entry
	widthEntry  *widget.Entry
	heightEntry *widget.Entry
	generateBtn *widget.Button
	saveBtn     *widget.Button
	statusLabel *widget.Label
	preview     *canvas.Image
}

// New creates the main window of a and fills the form from cfg.
func New(a fyne.App, sess *session.Session, cfg config.Config, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	g := &App{
		app:     a,
		session: sess,
		logger:  logger,
		cfg:     cfg,
	}
	g.createUI()
	return g
}

// Window returns the main window.
func (g *App) Window() fyne.Window {
	return g.window
}

// ShowAndRun shows the window and runs the fyne event loop until it closes.
func (g *App) ShowAndRun() {
	g.window.ShowAndRun()
}

func (g *App) createUI() {
	g.window = g.app.NewWindow("Image Mosaic")
	g.window.Resize(fyne.NewSize(900, 700))

	g.folderLabel = widget.NewLabel(g.cfg.Folder)
	chooseBtn := widget.NewButton("Choose folder...", g.chooseFolder)
	folderRow := container.NewBorder(nil, nil, widget.NewLabel("Folder:"), chooseBtn, g.folderLabel)

	g.gridEntry = newNumberEntry(g.cfg.Grid)
	g.widthEntry = newNumberEntry(g.cfg.TileWidth)
	g.heightEntry = newNumberEntry(g.cfg.TileHeight)
	form := widget.NewForm(
		widget.NewFormItem("Grid (n x n)", g.gridEntry),
		widget.NewFormItem("Tile width", g.widthEntry),
		widget.NewFormItem("Tile height", g.heightEntry),
	)

	g.generateBtn = widget.NewButton("Generate", g.onGenerate)
	g.generateBtn.Importance = widget.HighImportance
	g.saveBtn = widget.NewButton("Save...", g.onSave)
	g.saveBtn.Disable()
	g.statusLabel = widget.NewLabel("No mosaic yet")

	g.preview = canvas.NewImageFromImage(nil)
	g.preview.FillMode = canvas.ImageFillContain
	g.preview.ScaleMode = canvas.ImageScaleSmooth

	controls := container.NewVBox(
		folderRow,
		form,
		container.NewHBox(g.generateBtn, g.saveBtn),
		g.statusLabel,
	)
	g.window.SetContent(container.NewBorder(controls, nil, nil, nil, g.preview))
}

func newNumberEntry(value int) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(fmt.Sprint(value))
	return e
}

func (g *App) chooseFolder() {
	dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		if list == nil {
			return
		}
		g.setFolder(list.Path())
	}, g.window)
}

func (g *App) setFolder(folder string) {
	g.cfg.Folder = folder
	g.folderLabel.SetText(folder)
}

// formConfig returns the build parameters with the form values applied.
func (g *App) formConfig() (config.Config, error) {
	cfg := g.cfg
	fields := []struct {
		name  string
		entry *widget.Entry
		dst   *int
	}{
		{"grid", g.gridEntry, &cfg.Grid},
		{"tile width", g.widthEntry, &cfg.TileWidth},
		{"tile height", g.heightEntry, &cfg.TileHeight},
	}
	for _, f := range fields {
		n, err := config.ParsePositiveInt(f.entry.Text)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}
	return cfg, nil
}

func (g *App) onGenerate() {
	cfg, err := g.formConfig()
	if err != nil {
		dialog.ShowError(err, g.window)
		return
	}

	g.setBusy(true)
	go func() {
		defer g.setBusy(false)
		if err := g.build(cfg); err != nil {
			dialog.ShowError(err, g.window)
		}
	}()
}

// build runs one generation synchronously and shows its result.
func (g *App) build(cfg config.Config) error {
	opts, err := cfg.BuildOptions()
	if err != nil {
		return err
	}
	opts.Logger = g.logger

	result, err := g.session.Generate(cfg.Folder, opts)
	if err != nil {
		return err
	}
	g.showResult(result)
	return nil
}

func (g *App) setBusy(busy bool) {
	if busy {
		g.generateBtn.Disable()
		g.statusLabel.SetText("Generating...")
		return
	}
	g.generateBtn.Enable()
	if last := g.session.Last(); last != nil {
		g.statusLabel.SetText(resultSummary(last))
	} else {
		g.statusLabel.SetText("No mosaic yet")
	}
}

func (g *App) showResult(result *mosaic.Result) {
	g.preview.Image = result.Canvas
	g.preview.Refresh()
	g.statusLabel.SetText(resultSummary(result))
	g.saveBtn.Enable()
}

func resultSummary(result *mosaic.Result) string {
	status := fmt.Sprintf("%dx%d mosaic, %d of %d cells filled",
		result.Grid, result.Grid, result.Filled(), len(result.Cells))
	if skipped := result.Skipped(); skipped > 0 {
		status += fmt.Sprintf(", %d skipped", skipped)
	}
	return status
}

func (g *App) onSave() {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		if w == nil {
			return
		}
		path := w.URI().Path()
		w.Close()

		if err := g.saveCreated(path); err != nil {
			dialog.ShowError(err, g.window)
		}
	}, g.window)
	d.SetFileName(g.cfg.Output)
	d.Show()
}

func (g *App) save(path string) error {
	written, err := g.session.Save(path, g.cfg.SaveOptions()...)
	if err != nil {
		return err
	}
	g.statusLabel.SetText("Saved to " + written)
	return nil
}

// saveCreated saves to a path the save dialog has already created as an
// empty file. The file is removed again when nothing could be written to it.
func (g *App) saveCreated(path string) error {
	err := g.save(path)
	if err != nil && errors.Is(err, mosaic.ErrSave) {
		if info, statErr := os.Stat(path); statErr == nil && info.Size() == 0 {
			os.Remove(path)
		}
	}
	return err
}

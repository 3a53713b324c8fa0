package app

import (
	"fmt"
	"image"
	"strconv"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"hamview/internal/config"
	"hamview/internal/geo"
	"hamview/internal/logger"
	"hamview/internal/maptiles"
	"hamview/internal/mapwidget"
	"hamview/internal/menus"
)

const (
	AppName = "Hamview"
	AppID   = "org.hamview.mapdisplay"
)

// Application wires the map widget, menus and status bar into the
// main window.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     *config.Config
	log     logger.Logger

	mapWidget *mapwidget.Map
	status    *StatusBar
	builder   *menus.Builder
}

func New(cfg *config.Config, log logger.Logger) *Application {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	vp := mapwidget.NewViewport(cfg.Window.Width, cfg.Window.Height, cfg.Window.TileSize, cfg.Map.Zoom)
	source := maptiles.NewLocalSource(cfg.Map.TileDir, log)
	mapWidget := mapwidget.New(vp, source, log)

	a := &Application{
		fyneApp:   fyneApp,
		window:    window,
		cfg:       cfg,
		log:       log,
		mapWidget: mapWidget,
		status:    NewStatusBar(),
		builder:   menus.NewBuilder(cfg.Translator()),
	}

	mapWidget.OnCursorMoved = a.status.SetCursor
	mapWidget.OnContextMenu = a.showContextMenu

	a.setupMenus()
	a.setupLayout()
	a.window.SetCloseIntercept(a.Shutdown)

	mapWidget.SetCenter(cfg.Center())
	a.refreshScale()

	log.Info("Application", "initialized", map[string]interface{}{
		"window_tiles": fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"zoom":         cfg.Map.Zoom,
		"tile_dir":     cfg.Map.TileDir,
	})
	return a
}

// Run shows the window and enters the event loop. Blocks until the
// window closes.
func (a *Application) Run() {
	a.window.ShowAndRun()
}

func (a *Application) Shutdown() {
	a.log.Info("Application", "shutting down", nil)
	a.window.Close()
}

// Window exposes the main window, used by the entry point for signal
// handling.
func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) setupLayout() {
	content := container.NewBorder(
		nil,
		a.status.GetContainer(),
		nil, nil,
		container.NewScroll(a.mapWidget),
	)
	a.window.SetContent(content)

	w, h := a.mapWidget.Viewport().PixelSize()
	a.window.Resize(fyne.NewSize(float32(w), float32(h)+40))
}

func (a *Application) setupMenus() {
	b := a.builder
	canvas := a.window.Canvas()

	exportItem := b.ThemeIconItem("Export Map...", theme.IconNameDocumentSave,
		'E', fyne.KeyModifierControl, a.handleExport)
	quitItem := b.ThemeIconItem("Quit", theme.IconNameCancel,
		'Q', fyne.KeyModifierControl, a.fyneApp.Quit)
	fileMenu := fyne.NewMenu(b.T("File"),
		exportItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	recenterItem := b.ThemeIconItem("Recenter...", theme.IconNameHome,
		'R', fyne.KeyModifierControl, a.handleRecenter)
	zoomInItem := b.ThemeIconItem("Zoom In", theme.IconNameViewZoomIn,
		'I', fyne.KeyModifierControl, func() { a.changeZoom(1) })
	zoomOutItem := b.ThemeIconItem("Zoom Out", theme.IconNameViewZoomOut,
		'U', fyne.KeyModifierControl, func() { a.changeZoom(-1) })
	mapMenu := fyne.NewMenu(b.T("Map"),
		recenterItem,
		fyne.NewMenuItemSeparator(),
		zoomInItem,
		zoomOutItem,
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, mapMenu))

	for _, item := range []*fyne.MenuItem{exportItem, quitItem, recenterItem, zoomInItem, zoomOutItem} {
		b.BindShortcut(canvas, item)
	}
}

func (a *Application) handleExport() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := a.mapWidget.ExportTo(path, image.Rectangle{}); err != nil {
			a.log.Error("Application", err, map[string]interface{}{"path": path})
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}

func (a *Application) handleRecenter() {
	latEntry := widget.NewEntry()
	lonEntry := widget.NewEntry()
	items := []*widget.FormItem{
		widget.NewFormItem(a.builder.T("Latitude"), latEntry),
		widget.NewFormItem(a.builder.T("Longitude"), lonEntry),
	}

	dialog.ShowForm(a.builder.T("Recenter Map"), a.builder.T("Go"), a.builder.T("Cancel"),
		items, func(confirmed bool) {
			if !confirmed {
				return
			}
			lat, latErr := strconv.ParseFloat(latEntry.Text, 64)
			lon, lonErr := strconv.ParseFloat(lonEntry.Text, 64)
			if latErr != nil || lonErr != nil {
				dialog.ShowError(fmt.Errorf("coordinates must be decimal degrees"), a.window)
				return
			}
			pos, err := geo.NewPosition(lat, lon)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.mapWidget.SetCenter(pos)
			a.refreshScale()
		}, a.window)
}

func (a *Application) changeZoom(delta int) {
	zoom := a.mapWidget.Viewport().Zoom() + delta
	if zoom < 0 || zoom > 19 {
		return
	}
	a.mapWidget.SetZoom(zoom)
	a.refreshScale()
}

func (a *Application) showContextMenu(ev *fyne.PointEvent, pos geo.Position) {
	entries := []menus.PopupEntry{
		{
			Icon:  theme.Icon(theme.IconNameHome),
			Label: "Center Here",
			Action: func() {
				a.mapWidget.SetCenter(pos)
				a.refreshScale()
			},
		},
		{
			Icon:  theme.Icon(theme.IconNameContentCopy),
			Label: "Copy Position",
			Action: func() {
				a.window.Clipboard().SetContent(pos.String())
			},
		},
	}
	a.builder.ShowPopup(a.window.Canvas(), ev.AbsolutePosition, entries)
}

func (a *Application) refreshScale() {
	text, err := a.mapWidget.Viewport().ScaleText(a.cfg.Units)
	if err != nil {
		a.log.Error("Application", err, nil)
		return
	}
	a.status.SetScale(text)
}

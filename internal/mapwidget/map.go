package mapwidget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"hamview/internal/geo"
	"hamview/internal/logger"
	"hamview/internal/maptiles"
)

// Map is the tile map widget. The geographic transform lives in the
// embedded Viewport; the widget only wires it to Fyne's draw and
// event dispatch.
type Map struct {
	widget.BaseWidget

	vp     *Viewport
	source maptiles.ImageSource
	log    logger.Logger

	// OnCursorMoved is called with the geographic position under the
	// pointer as it moves across the map.
	OnCursorMoved func(geo.Position)

	// OnContextMenu is called on secondary click with the screen
	// event and the geographic position under the pointer.
	OnContextMenu func(ev *fyne.PointEvent, pos geo.Position)
}

var (
	_ fyne.Widget            = (*Map)(nil)
	_ desktop.Hoverable      = (*Map)(nil)
	_ fyne.SecondaryTappable = (*Map)(nil)
)

func New(vp *Viewport, source maptiles.ImageSource, log logger.Logger) *Map {
	m := &Map{
		vp:     vp,
		source: source,
		log:    log,
	}
	m.ExtendBaseWidget(m)
	return m
}

// Viewport exposes the transform state for coordinate queries.
func (m *Map) Viewport() *Viewport {
	return m.vp
}

// SetCenter recenters the map and recalculates bounds and fudge
// offsets before the next draw.
func (m *Map) SetCenter(pos geo.Position) {
	m.vp.SetCenter(pos)
	if err := m.vp.CalculateBounds(); err != nil {
		m.log.Error("MapWidget", err, map[string]interface{}{"center": pos.String()})
		return
	}
	m.log.Debug("MapWidget", "center changed", map[string]interface{}{
		"center": pos.String(),
		"zoom":   m.vp.Zoom(),
	})
	m.Refresh()
}

// SetZoom changes the zoom level and recalculates bounds.
func (m *Map) SetZoom(zoom int) {
	m.vp.SetZoom(zoom)
	if err := m.vp.CalculateBounds(); err != nil {
		m.log.Error("MapWidget", err, map[string]interface{}{"zoom": zoom})
		return
	}
	m.Refresh()
}

func (m *Map) MouseIn(ev *desktop.MouseEvent) {
	m.MouseMoved(ev)
}

func (m *Map) MouseMoved(ev *desktop.MouseEvent) {
	if m.OnCursorMoved == nil {
		return
	}
	pos, err := m.vp.XY2LatLon(float64(ev.Position.X), float64(ev.Position.Y))
	if err != nil {
		return
	}
	m.OnCursorMoved(pos)
}

func (m *Map) MouseOut() {}

func (m *Map) TappedSecondary(ev *fyne.PointEvent) {
	if m.OnContextMenu == nil {
		return
	}
	pos, err := m.vp.XY2LatLon(float64(ev.Position.X), float64(ev.Position.Y))
	if err != nil {
		m.log.Error("MapWidget", err, nil)
		return
	}
	m.OnContextMenu(ev, pos)
}

func (m *Map) CreateRenderer() fyne.WidgetRenderer {
	r := &mapRenderer{m: m}
	r.rebuild()
	return r
}

// mapRenderer lays the visible tiles out as a grid of images around
// the center tile. Columns run east to west to match the direction of
// the pixel transform.
type mapRenderer struct {
	m      *Map
	images []*canvas.Image
}

func (r *mapRenderer) MinSize() fyne.Size {
	w, h := r.m.vp.PixelSize()
	return fyne.NewSize(float32(w), float32(h))
}

func (r *mapRenderer) Layout(fyne.Size) {
	r.place()
}

func (r *mapRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.m)
}

func (r *mapRenderer) rebuild() {
	slots := r.m.vp.VisibleTiles()
	r.images = r.images[:0]
	for _, slot := range slots {
		img, err := r.m.source.Image(slot.Tile)
		if err != nil {
			r.m.log.Error("MapWidget", err, map[string]interface{}{
				"tile": slot.Tile.String(),
			})
			img = maptiles.Placeholder(slot.Tile)
		}
		tile := canvas.NewImageFromImage(img)
		tile.FillMode = canvas.ImageFillOriginal
		r.images = append(r.images, tile)
	}
	r.place()
}

func (r *mapRenderer) place() {
	slots := r.m.vp.VisibleTiles()
	if len(slots) != len(r.images) {
		return
	}
	size := float32(r.m.vp.TileSize())
	w, h := r.m.vp.TileSpan()
	deltaW, deltaH := w/2, h/2
	for i, slot := range slots {
		x := float32(deltaW-slot.DX) * size
		y := float32(deltaH+slot.DY) * size
		r.images[i].Resize(fyne.NewSize(size, size))
		r.images[i].Move(fyne.NewPos(x, y))
	}
}

func (r *mapRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, len(r.images))
	for i, img := range r.images {
		objects[i] = img
	}
	return objects
}

func (r *mapRenderer) Destroy() {}

// Package menus builds accelerator-equipped, icon-decorated menu
// items. Construction only; no state beyond the translation function.
package menus

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Translator renders a label in the configured language. The identity
// function is used when no translation is configured; nothing reads a
// process-wide default.
type Translator func(string) string

// Builder assembles menu items with a fixed translation function.
type Builder struct {
	translate Translator
}

func NewBuilder(translate Translator) *Builder {
	if translate == nil {
		translate = func(s string) string { return s }
	}
	return &Builder{translate: translate}
}

// T translates a label through the builder's translation function.
func (b *Builder) T(label string) string {
	return b.translate(label)
}

// ThemeIconItem builds a menu item decorated with a named theme icon.
// A non-zero accel attaches a keyboard shortcut for that character
// with the given modifiers; bind it to a canvas with BindShortcut.
func (b *Builder) ThemeIconItem(label string, icon fyne.ThemeIconName, accel rune, mods fyne.KeyModifier, action func()) *fyne.MenuItem {
	item := fyne.NewMenuItem(b.translate(label), action)
	item.Icon = theme.Icon(icon)
	if accel != 0 {
		item.Shortcut = shortcutFor(accel, mods)
	}
	return item
}

// FileIconItem builds a menu item decorated with an icon loaded from
// a file. Load failures are returned to the caller.
func (b *Builder) FileIconItem(label, iconPath string, accel rune, mods fyne.KeyModifier, action func()) (*fyne.MenuItem, error) {
	res, err := fyne.LoadResourceFromPath(iconPath)
	if err != nil {
		return nil, fmt.Errorf("load menu icon %s: %w", iconPath, err)
	}

	item := fyne.NewMenuItem(b.translate(label), action)
	item.Icon = res
	if accel != 0 {
		item.Shortcut = shortcutFor(accel, mods)
	}
	return item, nil
}

// BindShortcut registers the item's shortcut on a canvas so the key
// combination activates the item's action while the window has focus.
func (b *Builder) BindShortcut(canvas fyne.Canvas, item *fyne.MenuItem) {
	if item.Shortcut == nil || item.Action == nil {
		return
	}
	action := item.Action
	canvas.AddShortcut(item.Shortcut, func(fyne.Shortcut) {
		action()
	})
}

// ItemContent composes the visual body of a popup menu entry: one
// icon followed by one left-aligned label.
func (b *Builder) ItemContent(icon fyne.Resource, label string) fyne.CanvasObject {
	text := widget.NewLabel(b.translate(label))
	text.Alignment = fyne.TextAlignLeading
	return container.NewHBox(widget.NewIcon(icon), text)
}

func shortcutFor(accel rune, mods fyne.KeyModifier) fyne.Shortcut {
	key := fyne.KeyName(strings.ToUpper(string(accel)))
	return &desktop.CustomShortcut{KeyName: key, Modifier: mods}
}

// PopupEntry describes one row of a transient popup menu.
type PopupEntry struct {
	Icon   fyne.Resource
	Label  string
	Action func()
}

// ShowPopup displays a popup menu at a canvas position. Each row is
// an ItemContent composite; tapping a row runs its action and hides
// the popup.
func (b *Builder) ShowPopup(canvas fyne.Canvas, pos fyne.Position, entries []PopupEntry) {
	box := container.NewVBox()
	popup := widget.NewPopUp(box, canvas)

	for _, entry := range entries {
		action := entry.Action
		row := newPopupRow(b.ItemContent(entry.Icon, entry.Label), func() {
			popup.Hide()
			if action != nil {
				action()
			}
		})
		box.Add(row)
	}

	popup.ShowAtPosition(pos)
}

type popupRow struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	onTapped func()
}

func newPopupRow(content fyne.CanvasObject, onTapped func()) *popupRow {
	r := &popupRow{content: content, onTapped: onTapped}
	r.ExtendBaseWidget(r)
	return r
}

func (r *popupRow) Tapped(*fyne.PointEvent) {
	r.onTapped()
}

func (r *popupRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

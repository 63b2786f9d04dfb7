package component

import (
	"github.com/jwijenbergh/puregotk/v4/gtk"
)

// AddressBarController is what the address row drives. Submit logs its
// own failures.
type AddressBarController interface {
	SetText(s string)
	Submit() error
}

// AddressBar is the row with the URL entry and the "Go!" button.
type AddressBar struct {
	box   *gtk.Box
	entry *gtk.SearchEntry
	goBtn *gtk.Button

	controller AddressBarController

	retainedCallbacks []interface{}
}

// NewAddressBar builds the row and wires it to controller.
func NewAddressBar(controller AddressBarController) (*AddressBar, error) {
	ab := &AddressBar{controller: controller}

	ab.box = gtk.NewBox(gtk.OrientationHorizontalValue, buttonSpacing)
	if ab.box == nil {
		return nil, errNilWidget("addressBarBox")
	}
	ab.box.AddCssClass("address-bar")

	ab.entry = gtk.NewSearchEntry()
	if ab.entry == nil {
		return nil, errNilWidget("addressBarEntry")
	}
	ab.entry.AddCssClass("address-bar-entry")
	ab.entry.SetHexpand(true)
	placeholder := "Enter URL..."
	ab.entry.SetPlaceholderText(&placeholder)

	ab.goBtn = gtk.NewButtonWithLabel("Go!")
	if ab.goBtn == nil {
		return nil, errNilWidget("addressBarGo")
	}
	ab.goBtn.AddCssClass("address-bar-go")

	ab.box.Append(&ab.entry.Widget)
	ab.box.Append(&ab.goBtn.Widget)

	ab.connectHandlers()
	return ab, nil
}

// Widget returns the row for packing into the window.
func (ab *AddressBar) Widget() *gtk.Widget {
	if ab.box == nil {
		return nil
	}
	return &ab.box.Widget
}

// SetText replaces the entry text, e.g. with the committed URI.
func (ab *AddressBar) SetText(s string) {
	if ab.entry != nil {
		ab.entry.SetText(s)
	}
}

// GrabFocus focuses the entry.
func (ab *AddressBar) GrabFocus() {
	if ab.entry != nil {
		ab.entry.GrabFocus()
	}
}

func (ab *AddressBar) connectHandlers() {
	changedCb := func(_ gtk.SearchEntry) {
		ab.controller.SetText(ab.entry.GetText())
	}
	ab.retainedCallbacks = append(ab.retainedCallbacks, changedCb)
	ab.entry.ConnectSearchChanged(&changedCb)

	activateCb := func(_ gtk.SearchEntry) {
		ab.submit()
	}
	ab.retainedCallbacks = append(ab.retainedCallbacks, activateCb)
	ab.entry.ConnectActivate(&activateCb)

	clickedCb := func(_ gtk.Button) {
		ab.submit()
	}
	ab.retainedCallbacks = append(ab.retainedCallbacks, clickedCb)
	ab.goBtn.ConnectClicked(&clickedCb)
}

// submit syncs the entry first: search-changed is debounced by GTK.
func (ab *AddressBar) submit() {
	ab.controller.SetText(ab.entry.GetText())
	_ = ab.controller.Submit()
}

package component

import (
	"sync"

	"github.com/bnema/dumbshell/internal/domain/entity"
	"github.com/bnema/dumbshell/internal/ui/dialog"
	"github.com/jwijenbergh/puregotk/v4/gdk"
	"github.com/jwijenbergh/puregotk/v4/gtk"
)

// buttonSpacing is the spacing between buttons in the popup.
const buttonSpacing = 6

// ScriptDialogPopup is the overlay that renders one dialog kind: a scrim
// over the whole window holding a card with a heading, a wrapped body and an
// Ok button, plus Cancel for confirms. A click on the scrim outside the card,
// or Escape anywhere in the window, dismisses it.
type ScriptDialogPopup struct {
	scrim   *gtk.Box
	mainBox *gtk.Box

	headingLabel *gtk.Label
	bodyLabel    *gtk.Label

	btnOk     *gtk.Button
	btnCancel *gtk.Button

	parent Allocation

	mu      sync.Mutex
	cardTop int
	visible bool
	shownID string
	resolve func(entity.Resolution)

	retainedCallbacks []interface{}
}

var _ dialog.Renderer = (*ScriptDialogPopup)(nil)

// NewScriptDialogPopup creates a hidden popup sized against parent.
func NewScriptDialogPopup(parent Allocation) (*ScriptDialogPopup, error) {
	sp := &ScriptDialogPopup{parent: parent}
	if err := sp.createWidgets(); err != nil {
		return nil, err
	}
	sp.attachScrimGesture()
	return sp, nil
}

// Widget returns the scrim for overlay registration.
func (sp *ScriptDialogPopup) Widget() *gtk.Widget {
	if sp.scrim == nil {
		return nil
	}
	return &sp.scrim.Widget
}

// Show implements dialog.Renderer. It replaces any interaction on screen.
func (sp *ScriptDialogPopup) Show(p entity.PendingInteraction, resolve func(entity.Resolution)) {
	sp.mu.Lock()
	sp.visible = true
	sp.shownID = p.ID
	sp.resolve = resolve
	sp.mu.Unlock()

	if sp.headingLabel != nil {
		sp.headingLabel.SetText(p.Title)
	}
	if sp.bodyLabel != nil {
		sp.bodyLabel.SetText(p.Message)
	}

	hasCancel := false
	for _, b := range p.Buttons() {
		switch b.Resolution {
		case entity.ResolutionOk:
			if sp.btnOk != nil {
				sp.btnOk.SetLabel(b.Label)
			}
		case entity.ResolutionCancel:
			hasCancel = true
			if sp.btnCancel != nil {
				sp.btnCancel.SetLabel(b.Label)
			}
		}
	}
	if sp.btnCancel != nil {
		sp.btnCancel.SetVisible(hasCancel)
	}

	sp.resizeAndCenter()
	if sp.scrim != nil {
		sp.scrim.SetVisible(true)
	}
	if sp.btnOk != nil {
		sp.btnOk.GrabFocus()
	}
}

// Hide implements dialog.Renderer. It never reports a resolution.
func (sp *ScriptDialogPopup) Hide() {
	sp.mu.Lock()
	sp.visible = false
	sp.shownID = ""
	sp.resolve = nil
	sp.mu.Unlock()

	if sp.scrim != nil {
		sp.scrim.SetVisible(false)
	}
}

// IsVisible returns whether the popup is currently displayed.
func (sp *ScriptDialogPopup) IsVisible() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.visible
}

// ShownID returns the id of the interaction on screen, or "".
func (sp *ScriptDialogPopup) ShownID() string {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.shownID
}

// respond forwards a user action. The machine hides the popup in return.
func (sp *ScriptDialogPopup) respond(action entity.Resolution) {
	sp.mu.Lock()
	if !sp.visible {
		sp.mu.Unlock()
		return
	}
	resolve := sp.resolve
	sp.mu.Unlock()

	if resolve != nil {
		resolve(action)
	}
}

// handleKey dismisses the dialog on Escape. It reports whether the key
// was consumed.
func (sp *ScriptDialogPopup) handleKey(keyval uint) bool {
	if keyval != uint(gdk.KEY_Escape) || !sp.IsVisible() {
		return false
	}
	sp.respond(entity.ResolutionDismiss)
	return true
}

// handleScrimPress dismisses the dialog when (x, y) lies outside the card.
func (sp *ScriptDialogPopup) handleScrimPress(x, y float64, card cardBounds) {
	if card.contains(x, y) {
		return
	}
	sp.respond(entity.ResolutionDismiss)
}

// cardBounds is the card rectangle in scrim coordinates.
type cardBounds struct {
	left, top, width, height float64
}

func (b cardBounds) contains(x, y float64) bool {
	return x >= b.left && x < b.left+b.width && y >= b.top && y < b.top+b.height
}

// currentCardBounds places the horizontally centered card inside the scrim.
func (sp *ScriptDialogPopup) currentCardBounds() cardBounds {
	if sp.scrim == nil || sp.mainBox == nil {
		return cardBounds{}
	}
	sp.mu.Lock()
	top := sp.cardTop
	sp.mu.Unlock()

	scrimWidth := sp.scrim.GetAllocatedWidth()
	width := sp.mainBox.GetAllocatedWidth()
	return cardBounds{
		left:   float64(scrimWidth-width) / 2,
		top:    float64(top),
		width:  float64(width),
		height: float64(sp.mainBox.GetAllocatedHeight()),
	}
}

func (sp *ScriptDialogPopup) createWidgets() error {
	sp.scrim = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if sp.scrim == nil {
		return errNilWidget("scriptDialogScrim")
	}
	sp.scrim.AddCssClass("script-dialog-scrim")
	sp.scrim.SetHalign(gtk.AlignFillValue)
	sp.scrim.SetValign(gtk.AlignFillValue)
	sp.scrim.SetHexpand(true)
	sp.scrim.SetVexpand(true)
	sp.scrim.SetVisible(false)

	sp.mainBox = gtk.NewBox(gtk.OrientationVerticalValue, buttonSpacing)
	if sp.mainBox == nil {
		return errNilWidget("scriptDialogMainBox")
	}
	sp.mainBox.AddCssClass("script-dialog-container")
	sp.mainBox.SetHalign(gtk.AlignCenterValue)
	sp.mainBox.SetValign(gtk.AlignStartValue)

	emptyText := ""
	sp.headingLabel = gtk.NewLabel(&emptyText)
	if sp.headingLabel == nil {
		return errNilWidget("scriptDialogHeading")
	}
	sp.headingLabel.AddCssClass("script-dialog-heading")
	sp.headingLabel.SetHalign(gtk.AlignStartValue)

	sp.bodyLabel = gtk.NewLabel(&emptyText)
	if sp.bodyLabel == nil {
		return errNilWidget("scriptDialogBody")
	}
	sp.bodyLabel.AddCssClass("script-dialog-body")
	sp.bodyLabel.SetHalign(gtk.AlignStartValue)
	sp.bodyLabel.SetWrap(true)
	sp.bodyLabel.SetSelectable(true)

	btnRow := gtk.NewBox(gtk.OrientationHorizontalValue, buttonSpacing)
	if btnRow == nil {
		return errNilWidget("scriptDialogBtnRow")
	}
	btnRow.SetHalign(gtk.AlignEndValue)

	sp.btnCancel = gtk.NewButtonWithLabel("Cancel")
	if sp.btnCancel == nil {
		return errNilWidget("scriptDialogCancel")
	}
	sp.btnCancel.AddCssClass("script-dialog-btn")

	sp.btnOk = gtk.NewButtonWithLabel("Ok")
	if sp.btnOk == nil {
		return errNilWidget("scriptDialogOk")
	}
	sp.btnOk.AddCssClass("script-dialog-btn")
	sp.btnOk.AddCssClass("suggested-action")

	sp.wireButton(sp.btnOk, entity.ResolutionOk)
	sp.wireButton(sp.btnCancel, entity.ResolutionCancel)

	btnRow.Append(&sp.btnCancel.Widget)
	btnRow.Append(&sp.btnOk.Widget)

	sp.mainBox.Append(&sp.headingLabel.Widget)
	sp.mainBox.Append(&sp.bodyLabel.Widget)
	sp.mainBox.Append(&btnRow.Widget)
	sp.scrim.Append(&sp.mainBox.Widget)

	return nil
}

// wireButton connects a button click to respond.
func (sp *ScriptDialogPopup) wireButton(btn *gtk.Button, action entity.Resolution) {
	cb := func(_ gtk.Button) { sp.respond(action) }
	sp.retainedCallbacks = append(sp.retainedCallbacks, cb)
	btn.ConnectClicked(&cb)
}

// AttachEscape routes Escape pressed anywhere under target to the popup.
// Pass the window so focus inside the page does not swallow the key.
func (sp *ScriptDialogPopup) AttachEscape(target *gtk.Widget) {
	if target == nil {
		return
	}
	controller := gtk.NewEventControllerKey()
	if controller == nil {
		return
	}
	controller.SetPropagationPhase(gtk.PhaseCaptureValue)

	keyPressedCb := func(_ gtk.EventControllerKey, keyval uint, _ uint, _ gdk.ModifierType) bool {
		return sp.handleKey(keyval)
	}
	sp.retainedCallbacks = append(sp.retainedCallbacks, keyPressedCb)
	controller.ConnectKeyPressed(&keyPressedCb)
	target.AddController(&controller.EventController)
}

// attachScrimGesture turns a click beside the card into a dismissal.
func (sp *ScriptDialogPopup) attachScrimGesture() {
	if sp.scrim == nil {
		return
	}
	click := gtk.NewGestureClick()
	if click == nil {
		return
	}
	pressedCb := func(_ gtk.GestureClick, _ int, x float64, y float64) {
		sp.handleScrimPress(x, y, sp.currentCardBounds())
	}
	sp.retainedCallbacks = append(sp.retainedCallbacks, pressedCb)
	click.ConnectPressed(&pressedCb)
	sp.scrim.AddController(&click.EventController)
}

func (sp *ScriptDialogPopup) resizeAndCenter() {
	if sp.scrim == nil || sp.mainBox == nil {
		return
	}
	width, marginTop := CalculateModalDimensions(sp.parent, ScriptDialogSizeDefaults)
	sp.mainBox.SetSizeRequest(width, -1)
	sp.mainBox.SetMarginTop(marginTop)

	sp.mu.Lock()
	sp.cardTop = marginTop
	sp.mu.Unlock()
}

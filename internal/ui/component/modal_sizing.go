// Package component holds the GTK widgets of the shell window.
package component

// minUsableDimension is the smallest allocation a modal is sized against.
const minUsableDimension = 100

// Allocation is the part of a parent widget modal sizing depends on.
// *gtk.Overlay satisfies it.
type Allocation interface {
	GetAllocatedWidth() int
	GetAllocatedHeight() int
}

// ModalSizeConfig holds configuration for modal sizing calculations.
type ModalSizeConfig struct {
	WidthPct       float64 // Percentage of parent width (e.g., 0.6)
	MaxWidth       int     // Maximum width in pixels
	TopMarginPct   float64 // Top margin as percentage of parent height
	FallbackWidth  int     // Fallback when parent not allocated
	FallbackHeight int     // Fallback height
}

// ScriptDialogSizeDefaults sizes alert and confirm popups.
var ScriptDialogSizeDefaults = ModalSizeConfig{
	WidthPct:       0.4,
	MaxWidth:       440,
	TopMarginPct:   0.25,
	FallbackWidth:  440,
	FallbackHeight: 300,
}

// CalculateModalDimensions computes width and top margin based on the parent.
func CalculateModalDimensions(parent Allocation, cfg ModalSizeConfig) (width, marginTop int) {
	var parentWidth, parentHeight int

	if parent != nil {
		parentWidth = parent.GetAllocatedWidth()
		parentHeight = parent.GetAllocatedHeight()
	}

	// Unallocated or tiny parents fall back to fixed dimensions.
	if parentWidth < minUsableDimension {
		parentWidth = cfg.FallbackWidth
	}
	if parentHeight < minUsableDimension {
		parentHeight = cfg.FallbackHeight
	}

	width = int(float64(parentWidth) * cfg.WidthPct)
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}

	marginTop = int(float64(parentHeight) * cfg.TopMarginPct)
	return width, marginTop
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// AdaptiveLayout arranges the transfer sections for the current device:
// side by side on desktop, stacked with larger touch targets on mobile
type AdaptiveLayout struct {
	mobile bool
}

// NewAdaptiveLayout creates a layout helper for device. A nil device is
// treated as desktop.
func NewAdaptiveLayout(device fyne.Device) *AdaptiveLayout {
	return &AdaptiveLayout{mobile: device != nil && device.IsMobile()}
}

// IsMobile reports whether the layout targets a touch device
func (l *AdaptiveLayout) IsMobile() bool {
	return l.mobile
}

// Sections places the upload and download sections
func (l *AdaptiveLayout) Sections(upload, download fyne.CanvasObject) *fyne.Container {
	if l.mobile {
		return container.NewVBox(upload, download)
	}
	return container.NewAdaptiveGrid(2, upload, download)
}

// TouchTarget pads obj up to the minimum touch height on mobile
func (l *AdaptiveLayout) TouchTarget(obj fyne.CanvasObject) fyne.CanvasObject {
	if !l.mobile {
		return obj
	}
	height := MobileButtonHeight
	if obj.MinSize().Height > height {
		height = obj.MinSize().Height
	}
	return container.New(layout.NewGridWrapLayout(fyne.NewSize(fyne.Max(obj.MinSize().Width, MinTouchTargetSize), height)), obj)
}

package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestTransferTheme(t *testing.T) {
	th := NewTransferTheme()

	assert.NotEqual(t, th.Color(theme.ColorNameSuccess, theme.VariantLight), th.Color(theme.ColorNameError, theme.VariantLight))
	assert.NotEqual(t, th.Color(theme.ColorNameBackground, theme.VariantLight), th.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, float32(4), th.Size(theme.SizeNamePadding))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameText), th.Size(theme.SizeNameText))
	assert.NotNil(t, th.Icon(theme.IconNameUpload))
}

func TestAdaptiveLayout_Desktop(t *testing.T) {
	l := NewAdaptiveLayout(nil)
	assert.False(t, l.IsMobile())

	btn := widget.NewButton("Upload", nil)
	assert.Same(t, btn, l.TouchTarget(btn))

	sections := l.Sections(widget.NewLabel("up"), widget.NewLabel("down"))
	assert.Len(t, sections.Objects, 2)
}

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Preview row colours. PreviewList styles its rich-text rows with these
// names, so they only resolve under CompactTheme.
const (
	ColorNameRenamed   fyne.ThemeColorName = "chapterRenamed"
	ColorNameUnchanged fyne.ThemeColorName = "chapterUnchanged"
	ColorNameOriginal  fyne.ThemeColorName = "chapterOriginal"
)

var (
	renamedLight   = color.NRGBA{R: 0x1b, G: 0x7f, B: 0x3b, A: 0xff}
	renamedDark    = color.NRGBA{R: 0x6f, G: 0xcf, B: 0x86, A: 0xff}
	unchangedLight = color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
	unchangedDark  = color.NRGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xff}
	// destructive confirm buttons use the error colour
	destructive = color.NRGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}
)

// CompactTheme packs long chapter lists into the preview while keeping CJK
// names at full text size
type CompactTheme struct {
	fyne.Theme
}

// NewCompactTheme wraps the default theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{Theme: theme.DefaultTheme()}
}

// Color resolves the preview colours and the destructive red, deferring
// everything else to the default theme
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark
	switch name {
	case ColorNameRenamed:
		if dark {
			return renamedDark
		}
		return renamedLight
	case ColorNameUnchanged:
		if dark {
			return unchangedDark
		}
		return unchangedLight
	case ColorNameOriginal:
		return t.Theme.Color(theme.ColorNameForeground, variant)
	case theme.ColorNameError:
		return destructive
	}
	return t.Theme.Color(name, variant)
}

// Size trims list padding; text sizes stay at the defaults
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	}
	return t.Theme.Size(name)
}

package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "chapter-renamer.png"
)

// LoadLogoResource loads the logo shipped next to the binary
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

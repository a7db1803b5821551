package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/chapter-renamer/internal/config"
	"github.com/ytget/chapter-renamer/internal/rename"
)

// modeTextKeys names the localized label of each rename mode
var modeTextKeys = map[rename.Mode]string{
	rename.ModeExtract:   KeyExtract,
	rename.ModeNormalize: KeyNormalize,
}

// SettingsDialog edits the persisted preferences
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	modeSelect        *widget.RadioGroup
	writeArtistCheck  *widget.Check
	autoRevealCheck   *widget.Check
	modeLabelsToValue map[string]rename.Mode
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after a save
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.modeLabelsToValue = make(map[string]rename.Mode, len(rename.Modes))
	labels := make([]string, 0, len(rename.Modes))
	for _, mode := range rename.Modes {
		label := t(modeTextKeys[mode])
		sd.modeLabelsToValue[label] = mode
		labels = append(labels, label)
	}
	sd.modeSelect = widget.NewRadioGroup(labels, nil)
	sd.modeSelect.Horizontal = true

	sd.writeArtistCheck = widget.NewCheck(t(KeyWriteArtist), nil)
	sd.autoRevealCheck = widget.NewCheck(t(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyDefaultMode)),
		sd.modeSelect,
		widget.NewSeparator(),
		sd.writeArtistCheck,
		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	for label, mode := range sd.modeLabelsToValue {
		if mode == sd.settings.GetMode() {
			sd.modeSelect.SetSelected(label)
		}
	}
	sd.writeArtistCheck.SetChecked(sd.settings.GetWriteArtist())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if mode, ok := sd.modeLabelsToValue[sd.modeSelect.Selected]; ok {
		sd.settings.SetMode(mode)
	}
	sd.settings.SetWriteArtist(sd.writeArtistCheck.Checked)
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

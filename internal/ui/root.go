package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/chapter-renamer/internal/chapter"
	"github.com/ytget/chapter-renamer/internal/config"
	"github.com/ytget/chapter-renamer/internal/model"
	"github.com/ytget/chapter-renamer/internal/platform"
	"github.com/ytget/chapter-renamer/internal/rename"
	"github.com/ytget/chapter-renamer/internal/report"
	"github.com/ytget/chapter-renamer/internal/tags"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	renameSvc    rename.Renamer
	tagSvc       tags.Syncer

	dir   string
	files []string
	mode  rename.Mode
	busy  bool

	// confirm asks before a destructive batch and runs onConfirm on yes
	confirm func(title, message string, onConfirm func())

	folderLabel   *widget.Label
	statusLabel   *widget.Label
	progressBar   *widget.ProgressBar
	preview       *PreviewList
	chooseBtn     *widget.Button
	openBtn       *widget.Button
	extractBtn    *widget.Button
	normalizeBtn  *widget.Button
	gapsBtn       *widget.Button
	syncBtn       *widget.Button
	executeBtn    *widget.Button
	headerOrig    *widget.Label
	headerNew     *widget.Label
	actionButtons []*widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, renameSvc rename.Renamer, tagSvc tags.Syncer) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		renameSvc:    renameSvc,
		tagSvc:       tagSvc,
		mode:         settings.GetMode(),
	}
	ui.confirm = ui.showDestructiveConfirm

	window.SetTitle(localization.GetText(KeyAppTitle))

	renameSvc.SetUpdateCallback(ui.onTaskUpdate)
	tagSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	t := ui.localization.GetText

	ui.createMenu()

	ui.folderLabel = widget.NewLabel(t(KeyNoFolder))
	ui.folderLabel.Truncation = fyne.TextTruncateEllipsis
	ui.chooseBtn = widget.NewButton(IconFolder+" "+t(KeyChooseFolder), ui.onChooseFolder)
	ui.openBtn = widget.NewButton(t(KeyOpenFolder), ui.onOpenFolder)
	ui.openBtn.Importance = widget.LowImportance
	ui.openBtn.Disable()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var left fyne.CanvasObject = container.NewHBox(settingsBtn, ui.chooseBtn)
	if logo, err := LoadLogoResource(); err == nil {
		img := canvas.NewImageFromResource(logo)
		img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		img.FillMode = canvas.ImageFillContain
		left = container.NewHBox(img, settingsBtn, ui.chooseBtn)
	}
	folderRow := container.NewBorder(nil, nil, left, ui.openBtn, ui.folderLabel)

	ui.extractBtn = widget.NewButton(t(KeyExtract), func() { ui.showPreview(rename.ModeExtract) })
	ui.normalizeBtn = widget.NewButton(t(KeyNormalize), func() { ui.showPreview(rename.ModeNormalize) })
	ui.gapsBtn = widget.NewButton(t(KeyCheckGaps), ui.onCheckGaps)
	ui.syncBtn = widget.NewButton(t(KeySyncTags), ui.onSyncTags)
	ui.executeBtn = widget.NewButton(t(KeyExecuteRename), ui.onExecuteRename)
	ui.executeBtn.Importance = widget.HighImportance
	ui.actionButtons = []*widget.Button{ui.extractBtn, ui.normalizeBtn, ui.gapsBtn, ui.syncBtn, ui.executeBtn}

	actionRow := container.NewBorder(nil, nil,
		container.NewHBox(ui.extractBtn, ui.normalizeBtn, ui.gapsBtn, ui.syncBtn),
		ui.executeBtn,
	)

	ui.headerOrig = widget.NewLabelWithStyle(t(KeyOriginalName), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.headerNew = widget.NewLabelWithStyle(t(KeyProposedName), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	header := container.NewGridWithColumns(2, ui.headerOrig, ui.headerNew)

	ui.preview = NewPreviewList()
	previewArea := container.NewBorder(header, nil, nil, nil, ui.preview.Widget())

	ui.statusLabel = widget.NewLabel("")
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()
	statusRow := container.NewVBox(ui.progressBar, ui.statusLabel)

	top := container.NewVBox(folderRow, widget.NewSeparator(), actionRow)
	ui.window.SetContent(container.NewBorder(top, statusRow, nil, nil, previewArea))

	ui.updateButtons()
}

func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	settingsItem := fyne.NewMenuItem(t(KeySettings), ui.onShowSettings)
	helpItem := fyne.NewMenuItem(t(KeyHelp), ui.onShowHelp)

	languageMenu := fyne.NewMenu(t(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(t(KeyFile), settingsItem),
		languageMenu,
		fyne.NewMenu(t(KeyHelp), helpItem),
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(KeyAppTitle))
	if ui.dir == "" {
		ui.folderLabel.SetText(t(KeyNoFolder))
	}
	ui.chooseBtn.SetText(IconFolder + " " + t(KeyChooseFolder))
	ui.openBtn.SetText(t(KeyOpenFolder))
	ui.extractBtn.SetText(t(KeyExtract))
	ui.normalizeBtn.SetText(t(KeyNormalize))
	ui.gapsBtn.SetText(t(KeyCheckGaps))
	ui.syncBtn.SetText(t(KeySyncTags))
	ui.executeBtn.SetText(t(KeyExecuteRename))
	ui.headerOrig.SetText(t(KeyOriginalName))
	ui.headerNew.SetText(t(KeyProposedName))
	ui.updateStatus()
}

func (ui *RootUI) onChooseFolder() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.loadFolder(uri.Path())
	}, ui.window)

	if lister, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetLastFolder())); err == nil {
		d.SetLocation(lister)
	}
	d.Show()
}

// loadFolder lists dir and previews it in the current mode
func (ui *RootUI) loadFolder(dir string) {
	files, err := platform.ListFiles(dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("Failed to list folder")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorListFolder), err), ui.window)
		return
	}

	ui.dir = dir
	ui.files = files
	ui.settings.SetLastFolder(dir)
	ui.folderLabel.SetText(dir)
	ui.openBtn.Enable()

	log.Info().Str("dir", dir).Int("files", len(files)).Msg("Folder loaded")
	ui.showPreview(ui.mode)
}

// reloadFolder re-lists the current folder after a batch changed it
func (ui *RootUI) reloadFolder() {
	if ui.dir != "" {
		ui.loadFolder(ui.dir)
	}
}

func (ui *RootUI) showPreview(mode rename.Mode) {
	ui.mode = mode
	ui.preview.SetProposals(rename.Plan(ui.files, mode))
	ui.updateStatus()
	ui.updateButtons()
}

func (ui *RootUI) updateStatus() {
	if ui.busy {
		ui.statusLabel.SetText(ui.localization.GetText(KeyWorking))
		return
	}
	if ui.dir == "" {
		ui.statusLabel.SetText("")
		return
	}

	t := ui.localization.GetText
	pending := len(model.Pending(ui.preview.Proposals()))
	ui.statusLabel.SetText(fmt.Sprintf(t(KeyFilesInFolder), len(ui.files)) + "  ·  " + fmt.Sprintf(t(KeyPendingCount), pending))
}

func (ui *RootUI) updateButtons() {
	for _, btn := range ui.actionButtons {
		if ui.busy || ui.dir == "" {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
	if ui.busy {
		ui.chooseBtn.Disable()
	} else {
		ui.chooseBtn.Enable()
	}
}

func (ui *RootUI) onCheckGaps() {
	ui.showScrollableInfo(ui.localization.GetText(KeyGapsTitle), ui.gapsMessage())
}

func (ui *RootUI) gapsMessage() string {
	r, ok := chapter.DetectGaps(ui.files)
	return report.Gaps(ui.localization.GetCurrentLanguage(), r, ok)
}

func (ui *RootUI) onExecuteRename() {
	t := ui.localization.GetText
	proposals := ui.preview.Proposals()
	pending := model.Pending(proposals)
	if len(pending) == 0 {
		dialog.ShowInformation(t(KeyExecuteRename), t(KeyNothingToRename), ui.window)
		return
	}

	dir := ui.dir
	ui.confirm(t(KeyConfirmTitle), report.ConfirmRename(ui.localization.GetCurrentLanguage(), len(pending)), func() {
		ui.setBusy(true)
		if _, err := ui.renameSvc.Start(dir, pending); err != nil {
			ui.showStartError(err)
		}
	})
}

func (ui *RootUI) onSyncTags() {
	t := ui.localization.GetText
	candidates := ui.tagSvc.Candidates(ui.files)
	if len(candidates) == 0 {
		dialog.ShowInformation(t(KeySyncTags), report.NoAudio(ui.localization.GetCurrentLanguage()), ui.window)
		return
	}

	dir := ui.dir
	writeArtist := ui.settings.GetWriteArtist()
	ui.confirm(t(KeyConfirmTitle), report.ConfirmSyncTags(ui.localization.GetCurrentLanguage(), len(candidates)), func() {
		ui.setBusy(true)
		if _, err := ui.tagSvc.Start(dir, candidates, writeArtist); err != nil {
			ui.showStartError(err)
		}
	})
}

// showDestructiveConfirm is the default confirm: a dialog whose yes button
// is drawn in the theme's error colour
func (ui *RootUI) showDestructiveConfirm(title, message string, onConfirm func()) {
	d := dialog.NewConfirm(title, message, func(confirmed bool) {
		if confirmed {
			onConfirm()
		}
	}, ui.window)
	d.SetConfirmImportance(widget.DangerImportance)
	d.Show()
}

// showStartError reports a batch that never started. The busy state set
// before Start is dropped again.
func (ui *RootUI) showStartError(err error) {
	ui.setBusy(false)
	log.Error().Err(err).Msg("Failed to start batch")
	dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorStartBatch), err), ui.window)
}

func (ui *RootUI) setBusy(busy bool) {
	ui.busy = busy
	if busy {
		ui.progressBar.SetValue(0)
		ui.progressBar.Show()
	} else {
		ui.progressBar.Hide()
	}
	ui.updateStatus()
	ui.updateButtons()
}

// onTaskUpdate receives batch snapshots from the service goroutines
func (ui *RootUI) onTaskUpdate(task model.BatchTask) {
	log.Debug().
		Str("task", task.ID).
		Str("status", task.Status.String()).
		Int("done", task.Done).
		Int("total", task.Total).
		Msg("Batch update")

	fyne.Do(func() {
		if task.Status.IsActive() {
			ui.progressBar.SetValue(task.Progress())
			ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyWorkingOn), task.GetDisplayTitle(), task.Done, task.Total))
		}
		if task.Status.IsFinished() {
			ui.onTaskFinished(task)
		}
	})
}

func (ui *RootUI) onTaskFinished(task model.BatchTask) {
	t := ui.localization.GetText
	ui.setBusy(false)

	if task.Status == model.TaskStatusError {
		dialog.ShowError(fmt.Errorf("%s: %s", t(KeyBatchFailed), task.LastError), ui.window)
	} else {
		title := t(KeyRenameDone)
		if task.Kind == model.TaskKindTagSync {
			title = t(KeySyncDone)
		}
		body := report.Result(ui.localization.GetCurrentLanguage(), task.Result) +
			"\n\n" + fmt.Sprintf(t(KeyElapsed), task.Elapsed().Round(time.Millisecond))
		ui.showScrollableInfo(title+" · "+task.GetDisplayTitle(), body)
	}

	ui.reloadFolder()

	if ui.settings.GetAutoRevealOnComplete() {
		ui.onOpenFolder()
	}
}

func (ui *RootUI) onOpenFolder() {
	if ui.dir == "" {
		return
	}
	if err := platform.OpenFolderInManager(ui.dir); err != nil {
		log.Warn().Err(err).Str("dir", ui.dir).Msg("Failed to open folder")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningDir), err), ui.window)
	}
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.mode = ui.settings.GetMode()
		if ui.dir != "" {
			ui.showPreview(ui.mode)
		}
		ui.statusLabel.SetText(ui.localization.GetText(KeySettingsSaved))
	}).Show()
}

func (ui *RootUI) onShowHelp() {
	t := ui.localization.GetText
	ui.showScrollableInfo(t(KeyHelp), t(KeyUsageInstructions))
}

// showScrollableInfo shows text that may be too long for a plain information dialog
func (ui *RootUI) showScrollableInfo(title, text string) {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	scroll := container.NewVScroll(label)
	scroll.SetMinSize(fyne.NewSize(HelpDialogWidth-40, HelpDialogHeight-100))

	d := dialog.NewCustom(title, ui.localization.GetText(KeyClose), scroll, ui.window)
	d.Resize(fyne.NewSize(HelpDialogWidth, HelpDialogHeight))
	d.Show()
}

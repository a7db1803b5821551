package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Language codes
const (
	LangZH = "zh"
	LangEN = "en"
)

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyChooseFolder      = "choose_folder"
	KeyOpenFolder        = "open_folder"
	KeyNoFolder          = "no_folder"
	KeyExtract           = "extract"
	KeyNormalize         = "normalize"
	KeyCheckGaps         = "check_gaps"
	KeySyncTags          = "sync_tags"
	KeyExecuteRename     = "execute_rename"
	KeyRefresh           = "refresh"
	KeySettings          = "settings"
	KeyHelp              = "help"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDefaultMode       = "default_mode"
	KeyWriteArtist       = "write_artist"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyClose             = "close"
	KeySettingsSaved     = "settings_saved"
	KeyOriginalName      = "original_name"
	KeyProposedName      = "proposed_name"
	KeyFilesInFolder     = "files_in_folder"
	KeyPendingCount      = "pending_count"
	KeyNothingToRename   = "nothing_to_rename"
	KeyConfirmTitle      = "confirm_title"
	KeyGapsTitle         = "gaps_title"
	KeyRenameDone        = "rename_done"
	KeySyncDone          = "sync_done"
	KeyBatchFailed       = "batch_failed"
	KeyWorking           = "working"
	KeyWorkingOn         = "working_on"
	KeyElapsed           = "elapsed"
	KeyErrorListFolder   = "error_list_folder"
	KeyErrorOpeningDir   = "error_opening_dir"
	KeyErrorStartBatch   = "error_start_batch"
	KeyUsageInstructions = "usage_instructions"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangZH,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Chinese
	if text, found := l.texts[LangZH][key]; found {
		return text
	}

	return key
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangZH: "中文",
		LangEN: "English",
	}
}

func (l *Localization) initializeTexts() {
	l.texts[LangZH] = map[string]string{
		KeyAppTitle:        "章节文件重命名",
		KeyChooseFolder:    "选择文件夹",
		KeyOpenFolder:      "打开文件夹",
		KeyNoFolder:        "尚未选择文件夹",
		KeyExtract:         "提取章节",
		KeyNormalize:       "规范编号",
		KeyCheckGaps:       "检查缺失",
		KeySyncTags:        "同步标题",
		KeyExecuteRename:   "执行重命名",
		KeyRefresh:         "刷新",
		KeySettings:        "设置",
		KeyHelp:            "使用说明",
		KeyFile:            "文件",
		KeyLanguage:        "语言",
		KeyDefaultMode:     "默认模式",
		KeyWriteArtist:     "同时写入艺术家 (MP3/M4A)",
		KeyAutoReveal:      "完成后打开文件夹",
		KeySave:            "保存",
		KeyCancel:          "取消",
		KeyClose:           "关闭",
		KeySettingsSaved:   "设置已保存",
		KeyOriginalName:    "原文件名",
		KeyProposedName:    "新文件名",
		KeyFilesInFolder:   "共 %d 个文件",
		KeyPendingCount:    "%d 个文件将被重命名",
		KeyNothingToRename: "没有需要重命名的文件",
		KeyConfirmTitle:    "确认",
		KeyGapsTitle:       "缺失检查",
		KeyRenameDone:      "重命名完成",
		KeySyncDone:        "标签同步完成",
		KeyBatchFailed:     "操作失败",
		KeyWorking:         "处理中…",
		KeyWorkingOn:       "正在处理 %s：%d/%d",
		KeyElapsed:         "耗时 %s",
		KeyErrorListFolder: "无法读取文件夹",
		KeyErrorOpeningDir: "无法打开文件夹",
		KeyErrorStartBatch: "无法开始操作",
		KeyUsageInstructions: `功能
• 提取章节：把文件名缩短为其中的"第…章/节/集"部分，保留扩展名。
• 规范编号：把"第3集"这类数字编号补零到四位，例如"第0003集"。
• 检查缺失：列出最小和最大编号之间缺少的集数。
• 同步标题：把 MP3、M4A、FLAC 文件的标题标签改成文件名。

步骤
1. 选择包含文件的文件夹（不会进入子文件夹）。
2. 点击"提取章节"或"规范编号"查看预览。
3. 确认预览无误后点击"执行重命名"。

注意
• 重命名无法撤销，请先备份重要文件。
• 目标文件已存在时会跳过该文件。
• 中文数字（如"第三章"）只会被提取，不会补零或参与缺失检查。`,
	}

	l.texts[LangEN] = map[string]string{
		KeyAppTitle:        "Chapter Renamer",
		KeyChooseFolder:    "Choose Folder",
		KeyOpenFolder:      "Open Folder",
		KeyNoFolder:        "No folder selected",
		KeyExtract:         "Extract Chapter",
		KeyNormalize:       "Normalize Numbers",
		KeyCheckGaps:       "Check Gaps",
		KeySyncTags:        "Sync Titles",
		KeyExecuteRename:   "Rename",
		KeyRefresh:         "Refresh",
		KeySettings:        "Settings",
		KeyHelp:            "Usage",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyDefaultMode:     "Default mode",
		KeyWriteArtist:     "Also write artist (MP3/M4A)",
		KeyAutoReveal:      "Open folder when done",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyClose:           "Close",
		KeySettingsSaved:   "Settings saved",
		KeyOriginalName:    "Original",
		KeyProposedName:    "New name",
		KeyFilesInFolder:   "%d files",
		KeyPendingCount:    "%d files will be renamed",
		KeyNothingToRename: "Nothing to rename",
		KeyConfirmTitle:    "Confirm",
		KeyGapsTitle:       "Gap Check",
		KeyRenameDone:      "Rename finished",
		KeySyncDone:        "Tag sync finished",
		KeyBatchFailed:     "Operation failed",
		KeyWorking:         "Working…",
		KeyWorkingOn:       "Working on %s: %d/%d",
		KeyElapsed:         "Took %s",
		KeyErrorListFolder: "Cannot read folder",
		KeyErrorOpeningDir: "Cannot open folder",
		KeyErrorStartBatch: "Cannot start operation",
		KeyUsageInstructions: `Functions
• Extract Chapter: shorten each name to its "第…章/节/集" marker, keeping the extension.
• Normalize Numbers: zero-pad digit markers such as "第3集" to four digits ("第0003集").
• Check Gaps: list the numbers missing between the smallest and largest episode.
• Sync Titles: set the title tag of MP3, M4A and FLAC files to the file name.

Steps
1. Choose the folder holding the files (subfolders are not visited).
2. Click "Extract Chapter" or "Normalize Numbers" to preview.
3. When the preview looks right, click "Rename".

Cautions
• Renames cannot be undone; back up important files first.
• A file is skipped when its new name is already taken.
• Ideographic numerals (e.g. "第三章") are extracted but never padded or gap-checked.`,
	}
}

package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconArrow    = "→"
)

// Layout sizing
const (
	HelpDialogWidth      float32 = 520
	HelpDialogHeight     float32 = 420
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 300
	LogoSize             float32 = 32
)

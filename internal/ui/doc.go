package ui

// Package ui contains the Fyne desktop interface: folder selection, rename
// previews, gap checks and tag sync, with every destructive batch confirmed
// first and run off the UI thread. All UI strings are localized via
// Localization.

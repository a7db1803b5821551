package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/ytget/chapter-renamer/internal/batch"
	"github.com/ytget/chapter-renamer/internal/logging"
	"github.com/ytget/chapter-renamer/internal/rename"
	"github.com/ytget/chapter-renamer/internal/tags"
	"github.com/ytget/chapter-renamer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.chapter-renamer"
	AppName = "Chapter Renamer"

	WindowWidth  = 860
	WindowHeight = 600

	// EnvLogLevel overrides the log level, e.g. CHAPTER_RENAMER_LOG=debug
	EnvLogLevel = "CHAPTER_RENAMER_LOG"
)

func main() {
	logging.Setup(logging.ParseLevel(os.Getenv(EnvLogLevel)), os.Stderr)
	log.Info().Str("version", version).Msg("Chapter Renamer starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// one tracker so a rename and a tag sync never overlap in a folder
	tracker := batch.NewTracker()
	renameSvc := rename.NewService(tracker)
	tagSvc := tags.NewService(tracker, tags.DefaultRegistry())

	ui.NewRootUI(myWindow, myApp, renameSvc, tagSvc)

	myWindow.ShowAndRun()
}

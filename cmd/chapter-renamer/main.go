// Command chapter-renamer is the headless front end: it previews and applies
// chapter renames, checks numbering gaps and syncs audio titles in one folder.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		log.Error().Err(err).Msg("chapter-renamer failed")
		os.Exit(1)
	}
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/ytget/chapter-renamer/internal/chapter"
	"github.com/ytget/chapter-renamer/internal/logging"
	"github.com/ytget/chapter-renamer/internal/model"
	"github.com/ytget/chapter-renamer/internal/platform"
	"github.com/ytget/chapter-renamer/internal/rename"
	"github.com/ytget/chapter-renamer/internal/report"
	"github.com/ytget/chapter-renamer/internal/tags"
)

// Flag names
const (
	FlagMode     = "mode"
	FlagYes      = "yes"
	FlagVerbose  = "verbose"
	FlagNoArtist = "no-artist"
	FlagLang     = "lang"
)

// ErrAborted is returned when the user declines a confirmation prompt.
var ErrAborted = errors.New("aborted")

// ErrPartialFailure is returned when a batch finished with failed items.
var ErrPartialFailure = errors.New("some items failed")

func newApp(in io.Reader, out io.Writer) *cli.App {
	modeFlag := &cli.StringFlag{
		Name:    FlagMode,
		Aliases: []string{"m"},
		Value:   string(rename.ModeExtract),
		Usage:   "rename rule: extract or normalize",
	}
	yesFlag := &cli.BoolFlag{
		Name:    FlagYes,
		Aliases: []string{"y"},
		Usage:   "skip the confirmation prompt",
	}

	return &cli.App{
		Name:      "chapter-renamer",
		Usage:     "rename files by their 第…章/节/集 marker",
		Version:   version,
		Reader:    in,
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: FlagVerbose, Aliases: []string{"v"}, Usage: "log every file"},
			&cli.StringFlag{Name: FlagLang, Value: report.LangZH, Usage: "report language: zh or en"},
		},
		Before: func(c *cli.Context) error {
			logging.Setup(logging.LevelFor(c.Bool(FlagVerbose)), c.App.ErrWriter)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "preview",
				Usage:     "show the proposed names without renaming",
				ArgsUsage: "<folder>",
				Flags:     []cli.Flag{modeFlag},
				Action:    previewAction,
			},
			{
				Name:      "rename",
				Usage:     "rename the files of a folder",
				ArgsUsage: "<folder>",
				Flags:     []cli.Flag{modeFlag, yesFlag},
				Action:    renameAction,
			},
			{
				Name:      "gaps",
				Usage:     "list missing episode numbers",
				ArgsUsage: "<folder>",
				Action:    gapsAction,
			},
			{
				Name:      "sync-tags",
				Usage:     "set the title tag of MP3/M4A/FLAC files to the file name",
				ArgsUsage: "<folder>",
				Flags: []cli.Flag{
					yesFlag,
					&cli.BoolFlag{Name: FlagNoArtist, Usage: "leave the artist tag alone"},
				},
				Action: syncTagsAction,
			},
		},
	}
}

// folderArg lists the folder named by the first argument
func folderArg(c *cli.Context) (string, []string, error) {
	if c.NArg() != 1 {
		return "", nil, fmt.Errorf("expected exactly one folder argument, got %d", c.NArg())
	}
	dir := c.Args().First()
	files, err := platform.ListFiles(dir)
	if err != nil {
		return "", nil, err
	}
	return dir, files, nil
}

func previewAction(c *cli.Context) error {
	mode, err := rename.ParseMode(c.String(FlagMode))
	if err != nil {
		return err
	}
	_, files, err := folderArg(c)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, report.Preview(c.String(FlagLang), rename.Plan(files, mode)))
	return nil
}

func renameAction(c *cli.Context) error {
	mode, err := rename.ParseMode(c.String(FlagMode))
	if err != nil {
		return err
	}
	dir, files, err := folderArg(c)
	if err != nil {
		return err
	}

	lang := c.String(FlagLang)
	pending := model.Pending(rename.Plan(files, mode))
	fmt.Fprintln(c.App.Writer, report.Preview(lang, pending))
	if len(pending) == 0 {
		return nil
	}

	if !c.Bool(FlagYes) {
		ok, err := confirm(c.App.Reader, c.App.Writer, report.ConfirmRename(lang, len(pending)))
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	result := rename.Execute(dir, pending)
	fmt.Fprintln(c.App.Writer, report.Result(lang, result))
	if len(result.Failures) > 0 {
		return ErrPartialFailure
	}
	return nil
}

func gapsAction(c *cli.Context) error {
	_, files, err := folderArg(c)
	if err != nil {
		return err
	}

	r, ok := chapter.DetectGaps(files)
	fmt.Fprintln(c.App.Writer, report.Gaps(c.String(FlagLang), r, ok))
	return nil
}

func syncTagsAction(c *cli.Context) error {
	dir, files, err := folderArg(c)
	if err != nil {
		return err
	}

	lang := c.String(FlagLang)
	registry := tags.DefaultRegistry()
	candidates := registry.Candidates(files)
	if len(candidates) == 0 {
		fmt.Fprintln(c.App.Writer, report.NoAudio(lang))
		return nil
	}

	if !c.Bool(FlagYes) {
		ok, err := confirm(c.App.Reader, c.App.Writer, report.ConfirmSyncTags(lang, len(candidates)))
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	result, err := registry.Sync(dir, candidates, !c.Bool(FlagNoArtist))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, report.Result(lang, result))
	log.Info().Str("dir", dir).Int("succeeded", result.Succeeded).Int("failed", len(result.Failures)).Msg("Tag sync finished")
	if len(result.Failures) > 0 {
		return ErrPartialFailure
	}
	return nil
}

// confirm asks a y/N question; anything but y or yes declines
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N] ", question)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

package tags

import (
	"errors"
	"fmt"

	mp4tag "github.com/Sorrow446/go-mp4tag"
)

// MP4Writer writes the ©nam and ©ART atoms of M4A files.
type MP4Writer struct{}

// Write sets the title and artist of the M4A at path. Files that carry no
// metadata yet get an empty udta/meta/ilst tree first.
func (MP4Writer) Write(path, title, artist string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCorruptContainer, r)
		}
	}()

	// Open rejects unknown ftyp brands before anything is rewritten.
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return classifyMP4(err)
	}
	_ = mp4.Close()

	if err := ensureIlst(path); err != nil {
		return classifyMP4(err)
	}

	mp4, err = mp4tag.Open(path)
	if err != nil {
		return classifyMP4(err)
	}
	defer mp4.Close()

	tags := &mp4tag.MP4Tags{Title: title}
	if artist != "" {
		tags.Artist = artist
	}
	return classifyMP4(mp4.Write(tags, []string{}))
}

// classifyMP4 maps go-mp4tag's error types before the generic classify.
func classifyMP4(err error) error {
	var (
		ftyp    *mp4tag.ErrUnsupportedFtyp
		missing *mp4tag.ErrBoxNotPresent
		magic   *mp4tag.ErrInvalidMagic
		stco    *mp4tag.ErrInvalidStcoSize
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ftyp), errors.As(err, &missing):
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	case errors.As(err, &magic), errors.As(err, &stco):
		return fmt.Errorf("%w: %v", ErrCorruptContainer, err)
	default:
		return classify(err)
	}
}

package tags

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// FLACWriter replaces the TITLE vorbis comments of FLAC files. Artist is not
// written for FLAC.
type FLACWriter struct{}

// Write sets the title of the FLAC at path
func (FLACWriter) Write(path, title, _ string) (err error) {
	// go-flac indexes into the frame data without a length check.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCorruptContainer, r)
		}
	}()

	f, err := flac.ParseFile(path)
	if err != nil {
		return classify(err)
	}

	cmtIdx := -1
	cmt := flacvorbis.New()
	for i, block := range f.Meta {
		if block.Type == flac.VorbisComment {
			cmtIdx = i
			cmt, err = flacvorbis.ParseFromMetaDataBlock(*block)
			if err != nil {
				return fmt.Errorf("%w: failed to parse vorbis comments: %v", ErrCorruptContainer, err)
			}
			break
		}
	}

	kept := cmt.Comments[:0]
	for _, c := range cmt.Comments {
		if !isField(c, flacvorbis.FIELD_TITLE) {
			kept = append(kept, c)
		}
	}
	cmt.Comments = kept
	if err := cmt.Add(flacvorbis.FIELD_TITLE, title); err != nil {
		return err
	}

	block := cmt.Marshal()
	if cmtIdx < 0 {
		f.Meta = append(f.Meta, &block)
	} else {
		f.Meta[cmtIdx] = &block
	}

	return classify(f.Save(path))
}

// isField reports whether comment is a "KEY=value" entry for key, ignoring case.
func isField(comment, key string) bool {
	name, _, ok := strings.Cut(comment, "=")
	return ok && strings.EqualFold(name, key)
}

package tags

import (
	"github.com/bogem/id3v2/v2"
)

// ID3Writer writes ID3v2.4 TIT2/TPE1 frames in UTF-8, replacing any
// existing ones.
type ID3Writer struct{}

// Write sets the title and artist of the MP3 at path
func (ID3Writer) Write(path, title, artist string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return classify(err)
	}
	defer tag.Close()

	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(title)
	if artist != "" {
		tag.SetArtist(artist)
	}

	return classify(tag.Save())
}

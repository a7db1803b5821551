// Package tags rewrites the title (and, where the container supports it, the
// artist) of audio files so it matches the file name.
package tags

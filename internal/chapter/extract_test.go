package chapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitExt(t *testing.T) {
	type testCase struct {
		input string
		base  string
		ext   string
	}

	testCases := []testCase{
		{"第3章.txt", "第3章", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"noext", "noext", ""},
		{".profile", ".profile", ""},
		{"..hidden", "..hidden", ""},
		{".hidden.mp3", ".hidden", ".mp3"},
		{"trailing.", "trailing", "."},
		{"dir.d/file", "dir.d/file", ""},
	}

	for _, tc := range testCases {
		base, ext := SplitExt(tc.input)
		assert.Equal(t, tc.base, base, "base of %q", tc.input)
		assert.Equal(t, tc.ext, ext, "ext of %q", tc.input)
	}
}

func TestExtract(t *testing.T) {
	type testCase struct {
		input  string
		output string
	}

	testCases := []testCase{
		{"我的第3章笔记.txt", "第3章.txt"},
		{"有声书-第12集-精彩片段.mp3", "第12集.mp3"},
		{"第一百二十节.m4a", "第一百二十节.m4a"},
		{"前言第零集后记.flac", "第零集.flac"},
		{"第三章与第4集.mp3", "第三章.mp3"},
		{"卷一第一万章终.txt", "第一万章.txt"},
		{"第0007集.mp3", "第0007集.mp3"},
		{"没有标记.mp3", "没有标记.mp3"},
		{"第章.mp3", "第章.mp3"},
		{"第3回.mp3", "第3回.mp3"},
		{"第٣章.txt", "第٣章.txt"},
		{"第３章.txt", "第３章.txt"},
		{"plain.txt", "plain.txt"},
		{"第5集", "第5集"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.output, Extract(tc.input), "Extract(%q)", tc.input)
	}
}

func TestExtract_MarkerInExtensionIgnored(t *testing.T) {
	assert.Equal(t, "notes.第3章", Extract("notes.第3章"))
}

func TestExtract_Idempotent(t *testing.T) {
	inputs := []string{
		"我的第3章笔记.txt",
		"序-第十二节-上.mp3",
		"第0001集.m4a",
		"nothing here.flac",
		".第1集",
	}
	for _, in := range inputs {
		once := Extract(in)
		assert.Equal(t, once, Extract(once), "Extract not idempotent for %q", in)
	}
}

func TestNormalize(t *testing.T) {
	type testCase struct {
		input  string
		output string
	}

	testCases := []testCase{
		{"第3章.txt", "第0003章.txt"},
		{"第1集.mp3", "第0001集.mp3"},
		{"第100集.mp3", "第0100集.mp3"},
		{"第0042节.flac", "第0042节.flac"},
		{"第12345集.mp3", "第12345集.mp3"},
		{"我的第3章笔记.txt", "第0003章.txt"},
		{"第三章第5集.mp3", "第0005集.mp3"},
		{"第三章.mp3", "第三章.mp3"},
		{"random.mp3", "random.mp3"},
		{"第07集", "第0007集"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.output, Normalize(tc.input), "Normalize(%q)", tc.input)
	}
}

func TestNormalize_Properties(t *testing.T) {
	inputs := []string{
		"第3章.txt",
		"书名第27集完.mp3",
		"第000001节.flac",
		"第九集.m4a",
		"archive.tar.gz",
		".第2集",
		"第99999集",
	}
	for _, in := range inputs {
		out := Normalize(in)

		_, inExt := SplitExt(in)
		_, outExt := SplitExt(out)
		assert.Equal(t, inExt, outExt, "extension changed for %q", in)

		assert.Equal(t, out, Normalize(out), "Normalize not idempotent for %q", in)
	}
}

func TestNormalize_LongRunKeepsDigitCount(t *testing.T) {
	for _, digits := range []string{"0001", "1234", "98765", "000000012"} {
		in := "第" + digits + "集.mp3"
		assert.Equal(t, in, Normalize(in))
	}
}

func TestNumber(t *testing.T) {
	type testCase struct {
		input string
		n     int
		ok    bool
	}

	testCases := []testCase{
		{"第0007集.mp3", 7, true},
		{"第7集.mp3", 7, true},
		{"abc第12章xyz.txt", 12, true},
		{"第七集.mp3", 0, false},
		{"track.mp3", 0, false},
		{"第99999999999999999999999集.mp3", 0, false},
	}

	for _, tc := range testCases {
		n, ok := Number(tc.input)
		assert.Equal(t, tc.ok, ok, "ok for %q", tc.input)
		assert.Equal(t, tc.n, n, "n for %q", tc.input)
	}
}

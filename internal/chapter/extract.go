package chapter

import "strings"

// Extract reduces name to its first chapter marker plus the original
// extension, e.g. "我的第3章笔记.txt" becomes "第3章.txt". Names without a
// marker are returned unchanged.
func Extract(name string) string {
	base, ext := SplitExt(name)
	marker := reMarker.FindString(base)
	if marker == "" {
		return name
	}
	return marker + ext
}

// Normalize rewrites name to its first digit marker with the digit run
// left-padded to PadWidth, e.g. "第3章.txt" becomes "第0003章.txt". Runs that
// already have PadWidth or more digits keep their length. Names without a
// digit marker (including ideographic-only markers) are returned unchanged.
func Normalize(name string) string {
	base, ext := SplitExt(name)
	m := reDigitMarker.FindStringSubmatch(base)
	if m == nil {
		return name
	}
	return m[1] + padDigits(m[2]) + m[3] + ext
}

// Number returns the integer value of the first digit marker in name's base.
// ok is false when there is no digit marker or the run overflows an int.
func Number(name string) (n int, ok bool) {
	base, _ := SplitExt(name)
	m := reDigitMarker.FindStringSubmatch(base)
	if m == nil {
		return 0, false
	}
	return parseDigits(m[2])
}

func padDigits(digits string) string {
	if len(digits) >= PadWidth {
		return digits
	}
	return strings.Repeat("0", PadWidth-len(digits)) + digits
}

// Package chapter recognizes "第…章/节/集" chapter markers in filenames. It
// extracts the marker, pads numeric markers to a fixed width, and reports
// gaps in a numbered sequence. All functions are pure and never fail: a
// name without a marker passes through unchanged.
package chapter

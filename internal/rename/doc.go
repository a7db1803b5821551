// Package rename builds rename proposals for a folder and applies them,
// skipping any pair whose destination is already taken.
package rename

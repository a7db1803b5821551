package model

import "fmt"

// RenameProposal pairs a file's current name with the name a rule proposes
// for it. Both are base names inside the same directory.
type RenameProposal struct {
	Original string
	Proposed string
}

// Changed reports whether applying the proposal would change anything.
func (p RenameProposal) Changed() bool {
	return p.Original != p.Proposed
}

// String renders the proposal as "original → proposed".
func (p RenameProposal) String() string {
	return p.Original + " → " + p.Proposed
}

// Pending returns the proposals that would actually rename a file.
func Pending(proposals []RenameProposal) []RenameProposal {
	out := make([]RenameProposal, 0, len(proposals))
	for _, p := range proposals {
		if p.Changed() {
			out = append(out, p)
		}
	}
	return out
}

// Failure records why one item of a batch was not applied.
type Failure struct {
	Proposal RenameProposal
	Reason   string
}

// String renders the failure as "original → proposed (reason)".
func (f Failure) String() string {
	return fmt.Sprintf("%s (%s)", f.Proposal, f.Reason)
}

// BatchResult aggregates the per-item outcomes of a batch. Items are
// independent, so a batch can end with any mix of successes and failures.
type BatchResult struct {
	Succeeded int
	Failures  []Failure
}

// Attempted returns the number of items the batch tried to apply.
func (r BatchResult) Attempted() int {
	return r.Succeeded + len(r.Failures)
}

// Fail appends a failure for p.
func (r *BatchResult) Fail(p RenameProposal, reason string) {
	r.Failures = append(r.Failures, Failure{Proposal: p, Reason: reason})
}

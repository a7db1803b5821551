package chapter

import (
	"math"
	"strconv"
)

// GapReport describes the numbering observed across a set of filenames.
type GapReport struct {
	Min     int
	Max     int
	Missing []int // sorted ascending
	Count   int   // distinct numbers parsed
}

// Contiguous reports whether every number in [Min, Max] was present.
func (r GapReport) Contiguous() bool {
	return len(r.Missing) == 0
}

// DetectGaps parses the digit marker of every name and reports which numbers
// between the smallest and largest are absent. Order and duplicates in names
// do not matter; "第0007集" and "第7集" are the same number. ok is false when
// no name carries a digit marker, which is distinct from a contiguous run.
func DetectGaps(names []string) (report GapReport, ok bool) {
	seen := make(map[int]struct{})
	for _, name := range names {
		if n, ok := Number(name); ok {
			seen[n] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return GapReport{}, false
	}

	report.Min, report.Max = math.MaxInt, math.MinInt
	for n := range seen {
		report.Min = min(report.Min, n)
		report.Max = max(report.Max, n)
	}
	report.Count = len(seen)

	report.Missing = []int{}
	for n := report.Min; n <= report.Max; n++ {
		if _, found := seen[n]; !found {
			report.Missing = append(report.Missing, n)
		}
		if n == report.Max {
			break
		}
	}
	return report, true
}

func parseDigits(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

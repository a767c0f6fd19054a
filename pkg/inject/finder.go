// Package inject implements the injection engine: locating positions in an
// existing text blob by pattern and deterministically inserting, replacing
// or removing content at those positions.
package inject

import "regexp"

// Selection picks which matching positions an injection acts on.
type Selection int

const (
	SelectFirst Selection = iota
	SelectLast
	SelectAll
)

// Placement picks which side of a match the payload lands on.
type Placement int

const (
	PlaceBefore Placement = iota
	PlaceAfter
)

// matchingLines returns the indices of lines matching re, filtered by the
// selection mode, in ascending order. No match yields an empty slice;
// callers treat that as a no-op edit, never a failure.
func matchingLines(lines []string, re *regexp.Regexp, sel Selection) []int {
	var matches []int
	for i, line := range lines {
		if re.MatchString(line) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return nil
	}

	switch sel {
	case SelectFirst:
		return matches[:1]
	case SelectLast:
		return matches[len(matches)-1:]
	default:
		return matches
	}
}

package inject

import (
	"regexp"
	"strings"
)

// splitLines breaks content into lines, remembering whether it ended with a
// newline so joinLines can restore it. A final unterminated line is a
// normal line; there is no special case for it anywhere in the engine.
func splitLines(content string) (lines []string, trailingNewline bool) {
	trailingNewline = strings.HasSuffix(content, "\n")
	if trailingNewline {
		content = strings.TrimSuffix(content, "\n")
	}
	return strings.Split(content, "\n"), trailingNewline
}

func joinLines(lines []string, trailingNewline bool) string {
	out := strings.Join(lines, "\n")
	if trailingNewline {
		out += "\n"
	}
	return out
}

// insertAtMatches produces the modified content for the line-addressed
// injection kinds. Target indices are computed against the original line
// list before any insertion, so earlier insertions never shift later
// reference positions; the output is materialized in a single pass.
func insertAtMatches(content, payload string, inline bool, re *regexp.Regexp, sel Selection, place Placement) string {
	lines, trailing := splitLines(content)

	targets := matchingLines(lines, re, sel)
	if len(targets) == 0 {
		return content
	}
	selected := make(map[int]bool, len(targets))
	for _, idx := range targets {
		selected[idx] = true
	}

	if inline {
		out := make([]string, len(lines))
		copy(out, lines)
		for idx := range selected {
			// First selects one occurrence on its single line; Last and
			// All splice every occurrence on each selected line.
			out[idx] = spliceLine(lines[idx], payload, re, place, sel != SelectFirst)
		}
		return joinLines(out, trailing)
	}

	out := make([]string, 0, len(lines)+len(targets))
	for i, line := range lines {
		if selected[i] && place == PlaceBefore {
			out = append(out, payload)
		}
		out = append(out, line)
		if selected[i] && place == PlaceAfter {
			out = append(out, payload)
		}
	}
	return joinLines(out, trailing)
}

// spliceLine splices payload directly adjacent to the pattern matches
// within a single line's text.
func spliceLine(line, payload string, re *regexp.Regexp, place Placement, allOccurrences bool) string {
	limit := 1
	if allOccurrences {
		limit = -1
	}
	locs := re.FindAllStringIndex(line, limit)
	if len(locs) == 0 {
		return line
	}

	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		b.WriteString(line[prev:loc[0]])
		if place == PlaceBefore {
			b.WriteString(payload)
			b.WriteString(line[loc[0]:loc[1]])
		} else {
			b.WriteString(line[loc[0]:loc[1]])
			b.WriteString(payload)
		}
		prev = loc[1]
	}
	b.WriteString(line[prev:])
	return b.String()
}

// removeLines drops every line matching re and preserves the order of the
// rest.
func removeLines(content string, re *regexp.Regexp) string {
	lines, trailing := splitLines(content)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !re.MatchString(line) {
			kept = append(kept, line)
		}
	}
	return joinLines(kept, trailing)
}

// replaceFirst substitutes only the first match of re in the whole content
// with payload. The payload is literal text, not an expansion template.
func replaceFirst(content, payload string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[0]] + payload + content[loc[1]:]
}

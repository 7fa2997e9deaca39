// Package tasklist mutates task-list checkboxes in raw markdown text.
//
// It deliberately is not a markdown parser: a task item is recognized
// purely line by line, which is all the toggle contract needs.
package tasklist

import (
	"regexp"
	"strings"
)

// taskItemRe matches a task-list line: optional indentation, a single
// "-" bullet, one space, "[c]" where c is one of space/x/X, one space,
// then the rest of the line. Bracket text without the bullet does not
// match.
var taskItemRe = regexp.MustCompile(`^([ \t]*)- \[([ xX])\] `)

// Toggle flips the checked state of the index-th (zero-based) task-list
// item in document order and returns the resulting text. Checked
// markers (x or X) become unchecked, unchecked becomes lowercase x.
// Every byte outside the single flipped marker is preserved. If index
// is negative or beyond the last task item, the text is returned
// unchanged.
func Toggle(text string, index int) string {
	if index < 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	seen := 0
	for i, line := range lines {
		m := taskItemRe.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		if seen != index {
			seen++
			continue
		}

		// m[4] is the start of the marker character group.
		pos := m[4]
		marker := byte('x')
		if line[pos] == 'x' || line[pos] == 'X' {
			marker = ' '
		}
		lines[i] = line[:pos] + string(marker) + line[pos+1:]
		return strings.Join(lines, "\n")
	}

	return text
}

// Count returns the number of task-list items in the text.
func Count(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if taskItemRe.MatchString(line) {
			n++
		}
	}
	return n
}

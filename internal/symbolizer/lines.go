package symbolizer

import (
	"bytes"
	"strings"
)

// splitLines splits captured tool output into lines without a length limit,
// dropping a trailing newline and any carriage returns.
func splitLines(out []byte) []string {
	text := strings.TrimSuffix(string(out), "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// firstLine returns the first non-blank line of b, used to keep tool diagnostics to a single line.
func firstLine(b []byte) string {
	for _, line := range bytes.Split(b, []byte("\n")) {
		if l := bytes.TrimSpace(line); len(l) > 0 {
			return string(l)
		}
	}
	return ""
}

package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText returns a line diff of from and to, each line prefixed by
// "-", "+" or " ". It returns "" when they are equal.
func DiffText(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		var mark string
		switch diff.Type {
		case diffpatch.DiffInsert:
			mark = "+"
		case diffpatch.DiffDelete:
			mark = "-"
		case diffpatch.DiffEqual:
			mark = " "
		}
		for _, ln := range splitLines(diff.Text) {
			buf.WriteString(mark + " " + ln + "\n")
		}
	}
	return buf.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

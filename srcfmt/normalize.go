package srcfmt

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	headerStart = "/*-"
	headerEnd   = "*/"
	tabWidth    = 4
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

// ReindentLine replaces the leading whitespace of line (without its "\n") by spaces.
//
// Each tab counts as 4 columns and any other whitespace character as 1. The total is rounded to the nearest
// multiple of 4, with halves rounded up. Lines with only whitespace are returned unchanged.
func ReindentLine(line string) string {
	codeStart := 0
	for codeStart < len(line) && isSpace(line[codeStart]) {
		codeStart++
	}
	if codeStart == len(line) {
		return line
	}

	width := 0
	for ii := 0; ii < codeStart; ii++ {
		if line[ii] == '\t' {
			width += tabWidth
		} else {
			width++
		}
	}
	width = (width + tabWidth/2) / tabWidth * tabWidth
	return strings.Repeat(" ", width) + line[codeStart:]
}

// Normalize returns contents with its license header replaced by n.Header and every line re-indented
// with ReindentLine. Every line of the result ends with "\n".
//
// An existing header is recognized if the first line starts with "/*-", and it extends to the first line
// holding "*/", which must end that line (a trailing "\r" is ignored). If there is no such line, there is no
// header to replace and every line is kept. Normalize is idempotent.
func (n *Normalizer) Normalize(contents string) string {
	if contents == "" {
		return ""
	}
	lines := strings.SplitAfter(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for ii := range lines {
		lines[ii] = strings.TrimSuffix(lines[ii], "\n")
	}

	var sb strings.Builder
	sb.Grow(len(contents) + len(n.Header) + 1)
	sb.WriteString(n.Header)
	sb.WriteByte('\n')
	for _, line := range lines[headerLength(lines):] {
		sb.WriteString(ReindentLine(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// headerLength returns the number of lines of the license header at the start of lines, or 0 if there is none.
func headerLength(lines []string) int {
	if !strings.HasPrefix(lines[0], headerStart) {
		return 0
	}
	for ii, line := range lines {
		idx := strings.Index(line, headerEnd)
		if idx == -1 {
			continue
		}
		if idx+len(headerEnd) == len(strings.TrimRight(line, " \t\r")) {
			return ii + 1
		}
		// The first comment ends before the end of the line: code follows it.
		return 0
	}
	return 0
}

// NormalizeFile normalizes the file in path in place, keeping its permissions.
// It returns whether the file contents changed. Unchanged files are not written.
func (n *Normalizer) NormalizeFile(path string) (changed bool, err error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %q", path)
	}
	normalized := n.Normalize(string(contents))
	if normalized == string(contents) {
		klog.V(2).Infof("%q: unchanged", path)
		return false, nil
	}
	if n.DryRun {
		return true, nil
	}

	fi, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat %q", path)
	}
	if n.Backup {
		if err = os.Rename(path, path+"~"); err != nil {
			return false, errors.Wrapf(err, "failed to backup %q", path)
		}
	}
	if err = os.WriteFile(path, []byte(normalized), fi.Mode().Perm()); err != nil {
		return false, errors.Wrapf(err, "failed to write normalized %q", path)
	}
	klog.V(1).Infof("%q: normalized", path)
	return true, nil
}

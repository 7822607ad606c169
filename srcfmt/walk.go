package srcfmt

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// reSourceFile matches C/C++ sources and headers: .c, .cpp, .h, .hpp (and .cp, .hp).
var reSourceFile = regexp.MustCompile(`\.(cp*|hp*)$`)

// IsSourceFile returns whether path is a C/C++ source or header file, judging by its extension.
func IsSourceFile(path string) bool {
	return reSourceFile.MatchString(path)
}

// EnumerateFiles calls callback for every regular file under root for which match returns true,
// in lexical order. It stops at the first error returned by callback.
//
// A missing root is not an error: there is simply nothing to enumerate.
func EnumerateFiles(root string, match func(filePath string) bool, callback func(filePath string) error) error {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			klog.V(1).Infof("%q doesn't exist, skipping", root)
			return nil
		}
		return errors.Wrapf(err, "failed to access %q", root)
	}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && match(path) {
			return callback(path)
		}
		return nil
	})
	return err
}

// Report of a NormalizeTree run.
type Report struct {
	// Visited source files.
	Visited []string

	// Changed files: the ones rewritten, or that would have been rewritten in DryRun mode.
	Changed []string
}

// NormalizeTree normalizes every source file (see IsSourceFile) under each of the dirs, given relative to root.
// If dirs is empty, DefaultDirs is used.
//
// It stops at the first error, returning the report of what was done so far.
func (n *Normalizer) NormalizeTree(root string, dirs []string) (Report, error) {
	if len(dirs) == 0 {
		dirs = DefaultDirs
	}
	var report Report
	for _, dir := range dirs {
		err := EnumerateFiles(filepath.Join(root, dir), IsSourceFile, func(filePath string) error {
			report.Visited = append(report.Visited, filePath)
			changed, err := n.NormalizeFile(filePath)
			if err != nil {
				return err
			}
			if changed {
				report.Changed = append(report.Changed, filePath)
			}
			return nil
		})
		if err != nil {
			return report, errors.WithMessagef(err, "while normalizing sources under %q", dir)
		}
	}
	return report, nil
}

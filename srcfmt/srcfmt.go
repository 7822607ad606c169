// Package srcfmt normalizes the C++ sources of the framework: it rewrites the license header at the top of each
// file and converts the indentation to spaces, in multiples of 4.
package srcfmt

// DefaultHeader is the license header written at the top of every source file.
const DefaultHeader = `/*-
Minimalistic and Modular OpenGL C++ Framework
GLFK LICENSE (BSD-based) - please see LICENSE.md
-*/`

// DefaultDirs are the directories, relative to the project root, with the sources to normalize.
var DefaultDirs = []string{"src", "examples"}

// Normalizer rewrites source files with Header and normalized indentation.
type Normalizer struct {
	// Header written at the top of every file. It should start with "/*-" and end with "*/", so it's
	// recognized and replaced the next time.
	Header string

	// DryRun reports which files would change, without writing them.
	DryRun bool

	// Backup renames the original file to "<file>~" before writing the normalized version.
	Backup bool
}

// New returns a Normalizer using DefaultHeader.
func New() *Normalizer {
	return &Normalizer{Header: DefaultHeader}
}

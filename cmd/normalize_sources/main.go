// normalize_sources rewrites the license header and the indentation (tabs to spaces, multiples of 4) of
// every C/C++ source file under the src/ and examples/ directories of the GLFK project.
//
// The **files are modified** in place.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/glfk/glfktools/srcfmt"
	"github.com/janpfeifer/gonb/common"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const projectRootEnvVar = "GLFK_ROOT"

var (
	flagProject = flag.String("project", "",
		"Root directory of the GLFK project. If empty, it uses the "+projectRootEnvVar+" environment variable, "+
			"or the current directory.")
	flagDirs = flag.String("dirs", strings.Join(srcfmt.DefaultDirs, ","),
		"Comma-separated list of directories, relative to the project root, with the sources to normalize.")
	flagDryRun = flag.Bool("dry_run", false, "Only list the files that would be changed.")
	flagYes    = flag.Bool("yes", false, "Don't ask for confirmation before changing files.")
	flagBackup = flag.Bool("backup", false, "Keep a copy of each changed file as \"<file>~\".")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `normalize_sources rewrites, in place, the license header and the indentation
of the C/C++ files of the GLFK project.

Usage:
`)
		flag.PrintDefaults()
	}
	klog.InitFlags(nil)
	flag.Parse()

	root := *flagProject
	if root == "" {
		root = os.Getenv(projectRootEnvVar)
	}
	if root == "" {
		root = "."
	}
	root = must.M1(filepath.Abs(common.ReplaceTildeInDir(root)))

	run := &runner{
		Root:   root,
		Dirs:   splitList(*flagDirs),
		DryRun: *flagDryRun,
		Backup: *flagBackup,
		Out:    os.Stdout,
		Apply:  runWithSpinner,
	}
	if !*flagYes && isInteractive() {
		run.Confirm = confirm
	}
	if err := run.Run(); err != nil {
		klog.Fatalf("Failed to normalize sources: %+v", err)
	}
}

// runner previews, confirms and applies the normalization of the sources under Root.
type runner struct {
	Root   string
	Dirs   []string
	DryRun bool
	Backup bool

	// Out is where the summary is printed.
	Out io.Writer

	// Confirm is called with the files that would change before changing them. If nil no confirmation is asked.
	// Returning ErrNotConfirmed stops without changes and without error.
	Confirm func(report srcfmt.Report) error

	// Apply runs the normalization. If nil, fn is simply called.
	Apply func(title string, fn func() (srcfmt.Report, error)) (srcfmt.Report, error)
}

// Run the normalization: files are only written if not in DryRun mode and the changes are confirmed.
func (r *runner) Run() error {
	// Find out what would change first.
	preview := srcfmt.New()
	preview.DryRun = true
	report, err := preview.NormalizeTree(r.Root, r.Dirs)
	if err != nil {
		return errors.WithMessage(err, "failed to check sources")
	}
	if len(report.Changed) == 0 {
		_, err = fmt.Fprintf(r.Out, "All %d source files in %q are already normalized.\n", len(report.Visited), r.Root)
		return err
	}
	if r.DryRun {
		fmt.Fprintf(r.Out, "%d of %d source files would be normalized:\n", len(report.Changed), len(report.Visited))
		for _, filePath := range report.Changed {
			fmt.Fprintf(r.Out, "\t%s\n", filePath)
		}
		return nil
	}

	if r.Confirm != nil {
		err = r.Confirm(report)
		if errors.Is(err, ErrNotConfirmed) {
			_, err = fmt.Fprintln(r.Out, "No files changed.")
			return err
		}
		if err != nil {
			return errors.WithMessage(err, "failed to get confirmation")
		}
	}

	n := srcfmt.New()
	n.Backup = r.Backup
	normalizeFn := func() (srcfmt.Report, error) { return n.NormalizeTree(r.Root, r.Dirs) }
	if r.Apply != nil {
		report, err = r.Apply(fmt.Sprintf("Normalizing %d files ….", len(report.Changed)), normalizeFn)
	} else {
		report, err = normalizeFn()
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.Out, "Normalized %d of %d source files in %q.\n", len(report.Changed), len(report.Visited), r.Root)
	return err
}

func splitList(list string) []string {
	var parts []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/glfk/glfktools/srcfmt"
	"github.com/pkg/errors"
)

// ErrNotConfirmed is returned by confirm when the user chooses not to change the files.
var ErrNotConfirmed = errors.New("normalization not confirmed")

// maxListedFiles in the confirmation, the rest is summarized.
const maxListedFiles = 20

var fileStyle = lipgloss.NewStyle().Faint(true)

// isInteractive returns whether both stdin and stdout are terminals, so the user can be asked questions.
func isInteractive() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

// confirm lists the files to be changed and asks the user to confirm.
func confirm(report srcfmt.Report) error {
	theme := huh.ThemeCharm()
	fmt.Println(theme.Focused.Title.Render(
		fmt.Sprintf("%d of %d source files will be rewritten in place:", len(report.Changed), len(report.Visited))))
	for ii, filePath := range report.Changed {
		if ii == maxListedFiles {
			fmt.Println(fileStyle.Render(fmt.Sprintf("  … and %d more", len(report.Changed)-maxListedFiles)))
			break
		}
		fmt.Println(fileStyle.Render("  " + filePath))
	}
	fmt.Println()

	var ok bool
	err := huh.NewConfirm().
		Title("Normalize them ?").
		Affirmative("Yes!").
		Negative("No.").
		Value(&ok).
		Run()
	if err != nil {
		return errors.Wrap(err, "confirmation prompt failed")
	}
	if !ok {
		return ErrNotConfirmed
	}
	return nil
}

// runWithSpinner runs fn while displaying a spinner with the given title, if in a terminal.
// If the spinner fails or is interrupted by the user, its error is returned.
func runWithSpinner(title string, fn func() (srcfmt.Report, error)) (srcfmt.Report, error) {
	if !isInteractive() {
		return fn()
	}
	var report srcfmt.Report
	var err error
	spinnerErr := spinner.New().
		Title(title).
		Action(func() { report, err = fn() }).
		Run()
	if spinnerErr != nil {
		return srcfmt.Report{}, errors.Wrapf(spinnerErr, "failed to run spinner for %q", title)
	}
	return report, err
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/shrun-cli/shrun/internal/compose"
	"github.com/shrun-cli/shrun/internal/issue"
	"github.com/shrun-cli/shrun/internal/runtime"

	"github.com/charmbracelet/fang"
)

// guideStyle selects glamour's dark or light theme for terminals and plain
// text otherwise.
const guideStyle = "auto"

// handleError renders err once. With --verbose or --debug the matching
// troubleshooting guide follows the message.
func (r *runner) handleError(w io.Writer, _ fang.Styles, err error) {
	verbose := r.opts.Verbose || r.opts.Debug
	fmt.Fprintln(w, formatErrorForDisplay(err, verbose))

	if !verbose {
		return
	}
	id := classifyError(err)
	if id == 0 {
		return
	}
	guide, renderErr := issue.Get(id).Render(r.program.Name, guideStyle)
	if renderErr != nil {
		return
	}
	fmt.Fprint(w, guide)
}

// formatErrorForDisplay renders exec failures the way a shell does
// ("<executable>: <reason>") and everything else behind an "Error:" label.
func formatErrorForDisplay(err error, verbose bool) string {
	var failed *runtime.ProcessReplacementFailedError
	if errors.As(err, &failed) {
		msg := ErrorStyle.Render(failed.Error())
		if verbose {
			msg += " " + SubtitleStyle.Render("("+failed.ErrnoName()+")")
		}
		return msg
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ErrorStyle.Render("Error:") + " " + ae.Format(verbose)
	}

	msg := ErrorStyle.Render("Error:") + " " + err.Error()
	if errors.Is(err, errMissingCommand) || errors.Is(err, compose.ErrCommandNotDefined) {
		msg += "\n" + SubtitleStyle.Render("Run with --list to see the defined commands.")
	}
	return msg
}

// classifyError maps err to the troubleshooting guide that covers it, or 0.
func classifyError(err error) issue.Id {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.Issue != 0 {
		return ae.Issue
	}

	switch {
	case errors.Is(err, compose.ErrCommandNotDefined):
		return issue.CommandNotDefinedId
	case errors.Is(err, compose.ErrUnknownParameter):
		return issue.UnknownParameterId
	case errors.Is(err, compose.ErrAmbiguousParameterPlacement):
		return issue.AmbiguousParameterId
	case errors.Is(err, compose.ErrValueRequired), errors.Is(err, compose.ErrValueNotAllowed):
		return issue.ParameterValueId
	case errors.Is(err, syscall.ENOENT):
		return issue.ExecutableNotFoundId
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return issue.PermissionDeniedId
	}
	return 0
}

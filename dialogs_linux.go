//go:build linux

package windlg

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Linux fallbacks using zenity (GTK) or kdialog (KDE), whichever is
// installed. The custom Win32 dialogs only exist on Windows.

func showPrompt(title, message, defaultText string) (string, bool, error) {
	if path, err := exec.LookPath("zenity"); err == nil {
		args := []string{"--entry", "--title", title, "--text", message}
		if defaultText != "" {
			args = append(args, "--entry-text", defaultText)
		}
		out, err := exec.Command(path, args...).Output()
		if err != nil {
			if userCancelled(err) {
				return "", false, nil
			}
			return "", false, fmt.Errorf("windlg: zenity failed: %w", err)
		}
		return strings.TrimSuffix(string(out), "\n"), true, nil
	}

	if path, err := exec.LookPath("kdialog"); err == nil {
		out, err := exec.Command(path, "--title", title, "--inputbox", message, defaultText).Output()
		if err != nil {
			if userCancelled(err) {
				return "", false, nil
			}
			return "", false, fmt.Errorf("windlg: kdialog failed: %w", err)
		}
		return strings.TrimSuffix(string(out), "\n"), true, nil
	}

	return "", false, fmt.Errorf("windlg: no dialog tool found (install zenity or kdialog): %w", ErrUnsupported)
}

func showMessageBox(title, message string, options []Option) (int, error) {
	if path, err := exec.LookPath("zenity"); err == nil {
		args := []string{
			"--list", "--title", title, "--text", message,
			"--column", "id", "--column", "Choice",
			"--hide-column=1", "--print-column=1",
		}
		for _, opt := range options {
			args = append(args, strconv.Itoa(opt.ID), opt.Label)
		}
		out, err := exec.Command(path, args...).Output()
		if err != nil {
			if userCancelled(err) {
				return SelectionNone, nil
			}
			return SelectionInvalid, fmt.Errorf("windlg: zenity failed: %w", err)
		}
		return parseSelectedID(string(out), options)
	}

	if path, err := exec.LookPath("kdialog"); err == nil {
		args := []string{"--title", title, "--menu", message}
		for _, opt := range options {
			args = append(args, strconv.Itoa(opt.ID), opt.Label)
		}
		out, err := exec.Command(path, args...).Output()
		if err != nil {
			if userCancelled(err) {
				return SelectionNone, nil
			}
			return SelectionInvalid, fmt.Errorf("windlg: kdialog failed: %w", err)
		}
		return parseSelectedID(string(out), options)
	}

	return SelectionInvalid, fmt.Errorf("windlg: no dialog tool found (install zenity or kdialog): %w", ErrUnsupported)
}

// userCancelled reports whether the tool exited with status 1, which both
// zenity and kdialog use for a dismissed dialog.
func userCancelled(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && exitErr.ExitCode() == 1
}

// parseSelectedID maps the tool's output back to an option id, guarding
// against output that names no configured option.
func parseSelectedID(out string, options []Option) (int, error) {
	s := strings.TrimSpace(out)
	if s == "" {
		return SelectionNone, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return SelectionInvalid, fmt.Errorf("windlg: unexpected dialog output %q", s)
	}
	for _, opt := range options {
		if opt.ID == id {
			return id, nil
		}
	}
	return SelectionInvalid, fmt.Errorf("windlg: dialog returned unknown option id %d", id)
}

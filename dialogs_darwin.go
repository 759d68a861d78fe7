//go:build darwin

package windlg

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// macOS fallbacks built on osascript. The custom Win32 dialogs only exist
// on Windows.

func showPrompt(title, message, defaultText string) (string, bool, error) {
	script := fmt.Sprintf(
		`display dialog "%s" default answer "%s" with title "%s" buttons {"Cancel", "OK"} default button "OK"`,
		escapeAppleScript(message),
		escapeAppleScript(defaultText),
		escapeAppleScript(title),
	)

	out, stderr, err := runOSAScript(script)
	if err != nil {
		if strings.Contains(stderr, "User canceled") {
			return "", false, nil
		}
		return "", false, fmt.Errorf("windlg: osascript failed: %w (%s)", err, strings.TrimSpace(stderr))
	}

	// Output looks like "button returned:OK, text returned:<input>".
	_, text, ok := strings.Cut(out, "text returned:")
	if !ok {
		return "", false, fmt.Errorf("windlg: unexpected osascript output %q", out)
	}
	return strings.TrimSuffix(text, "\n"), true, nil
}

func showMessageBox(title, message string, options []Option) (int, error) {
	// display dialog supports at most three buttons; fall back to a list
	// chooser beyond that.
	if len(options) <= 3 {
		labels := make([]string, len(options))
		for i, opt := range options {
			labels[i] = `"` + escapeAppleScript(opt.Label) + `"`
		}
		script := fmt.Sprintf(`display dialog "%s" with title "%s" buttons {%s}`,
			escapeAppleScript(message),
			escapeAppleScript(title),
			strings.Join(labels, ", "),
		)

		out, stderr, err := runOSAScript(script)
		if err != nil {
			if strings.Contains(stderr, "User canceled") {
				return SelectionNone, nil
			}
			return SelectionInvalid, fmt.Errorf("windlg: osascript failed: %w (%s)", err, strings.TrimSpace(stderr))
		}
		_, label, _ := strings.Cut(out, "button returned:")
		return optionIDByLabel(strings.TrimSpace(label), options)
	}

	items := make([]string, len(options))
	for i, opt := range options {
		items[i] = `"` + escapeAppleScript(opt.Label) + `"`
	}
	script := fmt.Sprintf(`choose from list {%s} with title "%s" with prompt "%s"`,
		strings.Join(items, ", "),
		escapeAppleScript(title),
		escapeAppleScript(message),
	)

	out, stderr, err := runOSAScript(script)
	if err != nil {
		return SelectionInvalid, fmt.Errorf("windlg: osascript failed: %w (%s)", err, strings.TrimSpace(stderr))
	}
	choice := strings.TrimSpace(out)
	if choice == "false" { // list chooser cancelled
		return SelectionNone, nil
	}
	return optionIDByLabel(choice, options)
}

func runOSAScript(script string) (string, string, error) {
	cmd := exec.Command("osascript", "-e", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func optionIDByLabel(label string, options []Option) (int, error) {
	for _, opt := range options {
		if opt.Label == label {
			return opt.ID, nil
		}
	}
	return SelectionInvalid, fmt.Errorf("windlg: dialog returned unknown option %q", label)
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

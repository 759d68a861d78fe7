//go:build darwin

package main

import "golang.design/x/hotkey"

// getPromptHotkeyModifiers returns the platform-specific modifiers for the prompt hotkey
// macOS: Command+Option+[0-9]
func getPromptHotkeyModifiers() ([]hotkey.Modifier, string) {
	return []hotkey.Modifier{hotkey.ModOption, hotkey.ModCmd}, "Cmd+Option"
}

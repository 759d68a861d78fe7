//go:build windows

package main

import "golang.design/x/hotkey"

// getPromptHotkeyModifiers returns the platform-specific modifiers for the prompt hotkey
// Windows: Ctrl+Alt+[0-9]
func getPromptHotkeyModifiers() ([]hotkey.Modifier, string) {
	return []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModAlt}, "Ctrl+Alt"
}

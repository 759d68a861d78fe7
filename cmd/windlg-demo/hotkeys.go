package main

import (
	"fmt"
	"time"

	"golang.design/x/hotkey"

	"windlg"
)

var (
	promptHotkeys [10]*hotkey.Hotkey // modifier+0 through modifier+9
)

// InitHotkeys initializes global hotkey support
// Called from onReady after systray is initialized
func InitHotkeys() {
	go initHotkeysAsync()
}

func initHotkeysAsync() {
	// Small delay to ensure systray is fully initialized
	time.Sleep(500 * time.Millisecond)

	// Get platform-specific modifiers
	mods, hotkeyDesc := getPromptHotkeyModifiers()

	keys := []hotkey.Key{
		hotkey.Key0, hotkey.Key1, hotkey.Key2, hotkey.Key3, hotkey.Key4,
		hotkey.Key5, hotkey.Key6, hotkey.Key7, hotkey.Key8, hotkey.Key9,
	}

	registeredCount := 0
	var errors []string
	for i, key := range keys {
		hk := hotkey.New(mods, key)
		if err := hk.Register(); err != nil {
			errors = append(errors, fmt.Sprintf("%d: %v", i, err))
			continue
		}
		promptHotkeys[i] = hk
		registeredCount++

		// Start listener for this hotkey
		go func(num int, h *hotkey.Hotkey) {
			for range h.Keydown() {
				showPromptByIndex(num)
			}
		}(i, hk)
	}

	// Always show registration result in status
	if registeredCount > 0 {
		mStatus.SetTitle(fmt.Sprintf("Hotkeys ready: %s+[0-9]", hotkeyDesc))
	} else if len(errors) > 0 {
		mStatus.SetTitle(fmt.Sprintf("Hotkey error: %s", errors[0]))
		windlg.LogWarn("Hotkey registration errors: %v", errors)
	}
}

func showPromptByIndex(num int) {
	// Find prompt with matching index
	cfg := currentConfig()
	if cfg == nil || len(cfg.Prompts) == 0 {
		mStatus.SetTitle("No prompts configured")
		return
	}

	for _, entry := range cfg.Prompts {
		if entry.Index == num {
			executePromptEntry(entry)
			return
		}
	}

	mStatus.SetTitle(fmt.Sprintf("No prompt with index %d", num))
}

// CleanupHotkeys unregisters all hotkeys
func CleanupHotkeys() {
	for _, hk := range promptHotkeys {
		if hk != nil {
			hk.Unregister()
		}
	}
}

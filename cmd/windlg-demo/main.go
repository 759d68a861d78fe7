package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/getlantern/systray"

	"windlg"
)

var (
	commit    string
	buildDate string
)

var (
	// Global state
	stateMutex sync.RWMutex
	appConfig  *Config
	debugMode  bool
	lastAnswer string

	// Menu items
	mStatus       *systray.MenuItem
	mPromptMenu   *systray.MenuItem
	mQuestionMenu *systray.MenuItem
	mOpenFile     *systray.MenuItem
	mOpenMulti    *systray.MenuItem
	mSaveFile     *systray.MenuItem
	mPickFolder   *systray.MenuItem
	mPickColor    *systray.MenuItem
	mPickFont     *systray.MenuItem
	mCopyAnswer   *systray.MenuItem
	mDebug        *systray.MenuItem
	mReloadCfg    *systray.MenuItem
	mAbout        *systray.MenuItem
	mQuit         *systray.MenuItem

	// Submenu items with their click handlers
	promptMenuItems   []*systray.MenuItem
	questionMenuItems []*systray.MenuItem

	// Data bound to menu items (used for click handling after reload)
	promptEntries   []PromptEntry
	questionEntries []QuestionEntry
)

func main() {
	// Try to load config early for logging settings
	// If config doesn't exist, use defaults
	var logCfg windlg.LogConfig
	if cfg, err := LoadConfig(""); err == nil {
		logCfg = cfg.GetLogConfigWithDefaults()
	} else {
		logCfg = windlg.DefaultLogConfig()
	}

	// Initialize logger with config
	if err := windlg.InitLoggerWithConfig(logCfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Failed to initialize logger: %v\n", err)
	}

	windlg.LogInfo("windlg-demo %s starting", windlg.Version)

	// Initialize Lua scripting engine
	if err := InitLuaEngine(); err != nil {
		windlg.LogWarn("Failed to initialize Lua engine: %v", err)
	}

	systray.Run(onReady, onExit)
}

func onReady() {
	systray.SetIcon(getIcon())
	systray.SetTitle("")
	systray.SetTooltip("Dialog Demo")

	// Status display as submenu (kept enabled for better contrast)
	mStatusMenu := systray.AddMenuItem("Status", "Current status")
	mStatus = mStatusMenu.AddSubMenuItem("Ready", "")

	systray.AddSeparator()

	// Prompts submenu - populated from config
	mPromptMenu = systray.AddMenuItem("Prompts", "Ask a configured question")
	loadAndBuildPromptMenu()

	// Questions submenu
	mQuestionMenu = systray.AddMenuItem("Questions", "Show a configured message box")
	loadAndBuildQuestionMenu()

	systray.AddSeparator()

	// Native picker dialogs
	mOpenFile = systray.AddMenuItem("Open File...", "Pick one file")
	mOpenMulti = systray.AddMenuItem("Open Files...", "Pick several files")
	mSaveFile = systray.AddMenuItem("Save File...", "Pick a save destination")
	mPickFolder = systray.AddMenuItem("Pick Folder...", "Pick a directory")
	mPickColor = systray.AddMenuItem("Pick Color...", "Pick a color")
	mPickFont = systray.AddMenuItem("Pick Font...", "Pick an installed font")

	systray.AddSeparator()

	mCopyAnswer = systray.AddMenuItem("Show Last Answer", "Show the last dialog result")
	mCopyAnswer.Disable()

	systray.AddSeparator()

	// Settings
	mDebug = systray.AddMenuItemCheckbox("Debug Mode", "Enable debug logging", false)
	mReloadCfg = systray.AddMenuItem("Reload Config", "Reload configuration from file")

	systray.AddSeparator()

	// Hotkeys submenu showing keyboard shortcuts (kept enabled for better contrast)
	mHotkeys := systray.AddMenuItem("Hotkeys", "Keyboard shortcuts")
	_, promptDesc := getPromptHotkeyModifiers()
	_ = mHotkeys.AddSubMenuItem(fmt.Sprintf("Prompts: %s+[0-9]", promptDesc), "Open prompt by index")

	systray.AddSeparator()

	// About submenu with version info (kept enabled for better contrast)
	mAbout = systray.AddMenuItem("About", "About windlg-demo")
	_ = mAbout.AddSubMenuItem(fmt.Sprintf("Version: %s", windlg.Version), "")
	_ = mAbout.AddSubMenuItem(fmt.Sprintf("Commit: %s", getShortCommit()), "")
	_ = mAbout.AddSubMenuItem(fmt.Sprintf("Build: %s", buildDate), "")

	systray.AddSeparator()

	// Quit
	mQuit = systray.AddMenuItem("Quit", "Quit the application")

	// Handle menu clicks
	go handleMenuClicks()

	// Show platform info in status
	updatePlatformStatus()

	// Initialize global hotkeys for prompt selection
	InitHotkeys()
}

const maxMenuItems = 50 // Maximum items per menu type

// setAppConfig and currentConfig guard the shared config pointer; hotkey
// and menu-click goroutines read it while reloads replace it.
func setAppConfig(cfg *Config) {
	stateMutex.Lock()
	appConfig = cfg
	stateMutex.Unlock()
}

func currentConfig() *Config {
	stateMutex.RLock()
	defer stateMutex.RUnlock()
	return appConfig
}

func loadAndBuildPromptMenu() {
	// Try to load config
	cfg, err := LoadConfig("")
	if err != nil {
		// Config doesn't exist, create default
		if os.IsNotExist(err) {
			if createErr := CreateDefaultConfig(); createErr == nil {
				cfg, _ = LoadConfig("")
			}
		}
	}

	setAppConfig(cfg)

	// Pre-allocate menu items pool
	promptMenuItems = make([]*systray.MenuItem, maxMenuItems)
	promptEntries = make([]PromptEntry, maxMenuItems)

	for i := 0; i < maxMenuItems; i++ {
		item := mPromptMenu.AddSubMenuItem("", "")
		item.Hide()
		promptMenuItems[i] = item
		go handlePromptClickByIndex(item, i)
	}

	// Add config path info at the end (always visible)
	mPromptMenu.AddSubMenuItem("", "")
	configInfo := mPromptMenu.AddSubMenuItem(fmt.Sprintf("Config: %s", DefaultConfigPath()), "Configuration file location")
	configInfo.Disable()

	// Now populate with actual data
	updatePromptMenu()
}

func updatePromptMenu() {
	// Hide all items first
	for i := 0; i < maxMenuItems; i++ {
		promptMenuItems[i].Hide()
	}

	cfg := currentConfig()
	if cfg == nil || len(cfg.Prompts) == 0 {
		// Show "No prompts configured" in first slot
		promptMenuItems[0].SetTitle("No prompts configured")
		promptMenuItems[0].SetTooltip("Edit config file to add prompts")
		promptMenuItems[0].Disable()
		promptMenuItems[0].Show()
		return
	}

	// Update entries under the write lock, then show items
	stateMutex.Lock()
	for i, entry := range cfg.Prompts {
		if i >= maxMenuItems {
			break
		}
		promptEntries[i] = entry
	}
	stateMutex.Unlock()

	for i, entry := range cfg.Prompts {
		if i >= maxMenuItems {
			break
		}
		promptMenuItems[i].SetTitle(fmt.Sprintf("[%d] %s", entry.Index, entry.Name))
		promptMenuItems[i].SetTooltip(entry.Message)
		promptMenuItems[i].Enable()
		promptMenuItems[i].Show()
	}
}

func handlePromptClickByIndex(item *systray.MenuItem, index int) {
	for range item.ClickedCh {
		stateMutex.RLock()
		entry := promptEntries[index]
		stateMutex.RUnlock()
		if entry.Name != "" {
			executePromptEntry(entry)
		}
	}
}

func executePromptEntry(entry PromptEntry) {
	text, confirmed, err := windlg.ShowPrompt(entry.Title, entry.Message, entry.Default)
	if err != nil {
		windlg.LogError("Prompt %s failed: %v", entry.Name, err)
		mStatus.SetTitle(fmt.Sprintf("Prompt error: %s", truncateError(err)))
		return
	}
	if !confirmed {
		mStatus.SetTitle(fmt.Sprintf("Cancelled: %s", entry.Name))
		return
	}

	setLastAnswer(text)

	// If a script is defined, run it with the answer
	if entry.Script != "" {
		engine := GetLuaEngine()
		if engine != nil {
			ctx := map[string]string{
				"answer": text,
				"name":   entry.Name,
				"index":  fmt.Sprintf("%d", entry.Index),
			}
			if _, err := engine.RunScript(entry.Script, ctx); err != nil {
				windlg.LogError("Script %s failed: %v", entry.Script, err)
				mStatus.SetTitle(fmt.Sprintf("Script error: %s", truncateError(err)))
				return
			}
			mStatus.SetTitle(fmt.Sprintf("Script: %s", entry.Name))
			return
		}
	}

	mStatus.SetTitle(fmt.Sprintf("%s: %s", entry.Name, truncate(text, 30)))
}

func loadAndBuildQuestionMenu() {
	// Pre-allocate menu items pool
	questionMenuItems = make([]*systray.MenuItem, maxMenuItems)
	questionEntries = make([]QuestionEntry, maxMenuItems)

	for i := 0; i < maxMenuItems; i++ {
		item := mQuestionMenu.AddSubMenuItem("", "")
		item.Hide()
		questionMenuItems[i] = item
		go handleQuestionClickByIndex(item, i)
	}

	// Now populate with actual data
	updateQuestionMenu()
}

func updateQuestionMenu() {
	// Hide all items first
	for i := 0; i < maxMenuItems; i++ {
		questionMenuItems[i].Hide()
	}

	cfg := currentConfig()
	if cfg == nil || len(cfg.Questions) == 0 {
		// Show "No questions configured" in first slot
		questionMenuItems[0].SetTitle("No questions configured")
		questionMenuItems[0].SetTooltip("Edit config file to add questions")
		questionMenuItems[0].Disable()
		questionMenuItems[0].Show()
		return
	}

	// Update entries under the write lock, then show items
	stateMutex.Lock()
	for i, entry := range cfg.Questions {
		if i >= maxMenuItems {
			break
		}
		questionEntries[i] = entry
	}
	stateMutex.Unlock()

	for i, entry := range cfg.Questions {
		if i >= maxMenuItems {
			break
		}
		questionMenuItems[i].SetTitle(fmt.Sprintf("[%d] %s", entry.Index, entry.Name))
		questionMenuItems[i].SetTooltip(entry.Message)
		questionMenuItems[i].Enable()
		questionMenuItems[i].Show()
	}
}

func handleQuestionClickByIndex(item *systray.MenuItem, index int) {
	for range item.ClickedCh {
		stateMutex.RLock()
		entry := questionEntries[index]
		stateMutex.RUnlock()
		if entry.Name != "" {
			executeQuestionEntry(entry)
		}
	}
}

func executeQuestionEntry(entry QuestionEntry) {
	options := make([]windlg.Option, len(entry.Options))
	for i, opt := range entry.Options {
		options[i] = windlg.Option{ID: opt.ID, Label: opt.Label}
	}

	selected, err := windlg.ShowMessageBox(entry.Title, entry.Message, options)
	if err != nil {
		windlg.LogError("Question %s failed: %v", entry.Name, err)
		mStatus.SetTitle(fmt.Sprintf("Question error: %s", truncateError(err)))
		return
	}
	if selected == windlg.SelectionNone {
		mStatus.SetTitle(fmt.Sprintf("Dismissed: %s", entry.Name))
		return
	}

	label := fmt.Sprintf("#%d", selected)
	for _, opt := range entry.Options {
		if opt.ID == selected {
			label = opt.Label
			break
		}
	}
	setLastAnswer(label)

	// If a script is defined, run it with the selection
	if entry.Script != "" {
		engine := GetLuaEngine()
		if engine != nil {
			ctx := map[string]string{
				"selected": fmt.Sprintf("%d", selected),
				"label":    label,
				"name":     entry.Name,
			}
			if _, err := engine.RunScript(entry.Script, ctx); err != nil {
				windlg.LogError("Script %s failed: %v", entry.Script, err)
				mStatus.SetTitle(fmt.Sprintf("Script error: %s", truncateError(err)))
				return
			}
			mStatus.SetTitle(fmt.Sprintf("Script: %s", entry.Name))
			return
		}
	}

	mStatus.SetTitle(fmt.Sprintf("%s: %s", entry.Name, label))
}

func onExit() {
	windlg.LogInfo("windlg-demo shutting down")

	// Cleanup hotkeys
	CleanupHotkeys()
}

func handleMenuClicks() {
	for {
		select {
		case <-mOpenFile.ClickedCh:
			pickOpenFile()

		case <-mOpenMulti.ClickedCh:
			pickOpenMulti()

		case <-mSaveFile.ClickedCh:
			pickSaveFile()

		case <-mPickFolder.ClickedCh:
			pickFolder()

		case <-mPickColor.ClickedCh:
			pickColor()

		case <-mPickFont.ClickedCh:
			pickFont()

		case <-mCopyAnswer.ClickedCh:
			showLastAnswer()

		case <-mDebug.ClickedCh:
			toggleDebug()

		case <-mReloadCfg.ClickedCh:
			reloadConfig()

		case <-mQuit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

func demoFilters() []windlg.FileFilter {
	filters, err := windlg.ParseFilters([]string{
		"Text Files(*.txt)|*.txt",
		"All Files(*.*)|*.*",
	})
	if err != nil {
		windlg.LogWarn("Bad filter spec: %v", err)
		return nil
	}
	return filters
}

func pickOpenFile() {
	path, err := windlg.ShowOpenFile(windlg.FileDialogOptions{
		Title:   "Pick a file",
		Filters: demoFilters(),
	})
	if err != nil {
		mStatus.SetTitle(fmt.Sprintf("Open failed: %s", truncateError(err)))
		return
	}
	if path == "" {
		mStatus.SetTitle("Open cancelled")
		return
	}
	setLastAnswer(path)
	mStatus.SetTitle(fmt.Sprintf("Opened: %s", filepath.Base(path)))
}

func pickOpenMulti() {
	paths, err := windlg.ShowOpenMultiFile(windlg.FileDialogOptions{
		Title:   "Pick files",
		Filters: demoFilters(),
	})
	if err != nil {
		mStatus.SetTitle(fmt.Sprintf("Open failed: %s", truncateError(err)))
		return
	}
	if len(paths) == 0 {
		mStatus.SetTitle("Open cancelled")
		return
	}
	setLastAnswer(strings.Join(paths, "\n"))
	mStatus.SetTitle(fmt.Sprintf("Opened %d files", len(paths)))
}

func pickSaveFile() {
	path, err := windlg.ShowSaveFile(windlg.FileDialogOptions{
		Title:       "Save as",
		Filters:     demoFilters(),
		DefaultName: "untitled.txt",
		DefaultExt:  "txt",
	})
	if err != nil {
		mStatus.SetTitle(fmt.Sprintf("Save failed: %s", truncateError(err)))
		return
	}
	if path == "" {
		mStatus.SetTitle("Save cancelled")
		return
	}
	setLastAnswer(path)
	mStatus.SetTitle(fmt.Sprintf("Save to: %s", filepath.Base(path)))
}

func pickFolder() {
	home, _ := os.UserHomeDir()
	path, err := windlg.ShowPickFolder("Pick a folder", home)
	if err != nil {
		mStatus.SetTitle(fmt.Sprintf("Pick failed: %s", truncateError(err)))
		return
	}
	if path == "" {
		mStatus.SetTitle("Pick cancelled")
		return
	}
	setLastAnswer(path)
	mStatus.SetTitle(fmt.Sprintf("Folder: %s", truncate(path, 30)))
}

func pickColor() {
	color, confirmed, err := windlg.ShowColorPicker(windlg.Color{R: 0x33, G: 0x66, B: 0x99, A: 0xFF})
	if err != nil {
		mStatus.SetTitle(fmt.Sprintf("Color failed: %s", truncateError(err)))
		return
	}
	if !confirmed {
		mStatus.SetTitle("Color cancelled")
		return
	}
	hex := fmt.Sprintf("#%02X%02X%02X", color.R, color.G, color.B)
	setLastAnswer(hex)
	mStatus.SetTitle(fmt.Sprintf("Color: %s", hex))
}

func pickFont() {
	choice, confirmed, err := windlg.ShowFontPicker()
	if err != nil {
		mStatus.SetTitle(fmt.Sprintf("Font failed: %s", truncateError(err)))
		return
	}
	if !confirmed {
		mStatus.SetTitle("Font cancelled")
		return
	}
	answer := fmt.Sprintf("%s %dpt", choice.FaceName, choice.PointSize)
	if choice.Path != "" {
		answer += " (" + choice.Path + ")"
	}
	setLastAnswer(answer)
	mStatus.SetTitle(fmt.Sprintf("Font: %s %dpt", choice.FaceName, choice.PointSize))
}

func setLastAnswer(answer string) {
	stateMutex.Lock()
	lastAnswer = answer
	stateMutex.Unlock()
	mCopyAnswer.Enable()
}

func showLastAnswer() {
	stateMutex.RLock()
	answer := lastAnswer
	stateMutex.RUnlock()

	if answer == "" {
		return
	}
	mStatus.SetTitle(truncate(answer, 50))
}

func toggleDebug() {
	debugMode = !debugMode
	if debugMode {
		mDebug.Check()
	} else {
		mDebug.Uncheck()
	}
	windlg.SetDebugLogging(debugMode)
}

func reloadConfig() {
	cfg, err := LoadConfig("")
	if err != nil {
		windlg.LogError("Config reload failed: %v", err)
		mStatus.SetTitle(fmt.Sprintf("Config error: %s", truncateError(err)))
		return
	}
	setAppConfig(cfg)

	// Update all menus with new config data
	updatePromptMenu()
	updateQuestionMenu()

	windlg.LogInfo("Config reloaded: %d prompts, %d questions", len(cfg.Prompts), len(cfg.Questions))
	mStatus.SetTitle(fmt.Sprintf("Config reloaded (%d prompts, %d questions)", len(cfg.Prompts), len(cfg.Questions)))
}

func updatePlatformStatus() {
	var platform string
	switch runtime.GOOS {
	case "windows":
		platform = "Windows (native dialogs)"
	case "linux":
		platform = "Linux (zenity/kdialog)"
	case "darwin":
		platform = "macOS (osascript)"
	default:
		platform = runtime.GOOS + " (unsupported)"
	}
	mStatus.SetTitle(fmt.Sprintf("Platform: %s", platform))
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

func truncateError(err error) string {
	return truncate(err.Error(), 40)
}

// getIcon returns the tray icon bytes
func getIcon() []byte {
	return defaultIcon()
}

// getShortCommit returns the first 8 characters of the commit hash
func getShortCommit() string {
	if len(commit) >= 8 {
		return commit[:8]
	}
	if commit == "" {
		return "dev"
	}
	return commit
}

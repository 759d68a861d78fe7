package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	lua "github.com/yuin/gopher-lua"

	"windlg"
)

// LuaEngine manages Lua script execution
type LuaEngine struct {
	state *lua.LState
}

// Global Lua engine instance
var luaEngine *LuaEngine

// InitLuaEngine initializes the global Lua engine
func InitLuaEngine() error {
	luaEngine = &LuaEngine{}
	return luaEngine.Init()
}

// GetLuaEngine returns the global Lua engine
func GetLuaEngine() *LuaEngine {
	return luaEngine
}

// Init initializes the Lua state with the dlg module
func (e *LuaEngine) Init() error {
	e.state = lua.NewState()

	// Create scripts directory if it doesn't exist
	if err := os.MkdirAll(ScriptsDir(), 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	e.registerDlgModule(e.state)

	return nil
}

// Close cleans up the Lua state
func (e *LuaEngine) Close() {
	if e.state != nil {
		e.state.Close()
	}
}

// registerDlgModule registers the dlg module with exposed functions
func (e *LuaEngine) registerDlgModule(L *lua.LState) {
	dlg := L.NewTable()

	// Dialog functions
	L.SetField(dlg, "prompt", L.NewFunction(luaPrompt))
	L.SetField(dlg, "message", L.NewFunction(luaMessage))
	L.SetField(dlg, "open_file", L.NewFunction(luaOpenFile))
	L.SetField(dlg, "save_file", L.NewFunction(luaSaveFile))
	L.SetField(dlg, "pick_folder", L.NewFunction(luaPickFolder))
	L.SetField(dlg, "pick_color", L.NewFunction(luaPickColor))
	L.SetField(dlg, "find_font", L.NewFunction(luaFindFont))

	// Status/UI functions
	L.SetField(dlg, "set_status", L.NewFunction(luaSetStatus))

	// Shell execution
	L.SetField(dlg, "exec", L.NewFunction(luaExec))
	L.SetField(dlg, "shell", L.NewFunction(luaShell))

	// Utility functions
	L.SetField(dlg, "sleep", L.NewFunction(luaSleep))
	L.SetField(dlg, "env", L.NewFunction(luaEnv))
	L.SetField(dlg, "log", L.NewFunction(luaLog))

	L.SetGlobal("dlg", dlg)
}

// RunScript executes a Lua script file with optional context variables
func (e *LuaEngine) RunScript(scriptName string, context map[string]string) (string, error) {
	scriptPath := ScriptPath(scriptName)

	// Check if script exists
	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return "", fmt.Errorf("script not found: %s", scriptPath)
	}

	// Create a new Lua state for this execution (isolation)
	L := lua.NewState()
	defer L.Close()

	e.registerDlgModule(L)

	// Set context variables
	ctx := L.NewTable()
	for k, v := range context {
		L.SetField(ctx, k, lua.LString(v))
	}
	L.SetGlobal("ctx", ctx)

	// Create result variable
	L.SetGlobal("result", lua.LNil)

	// Execute script
	if err := L.DoFile(scriptPath); err != nil {
		return "", fmt.Errorf("script error: %w", err)
	}

	// Get result if set
	result := L.GetGlobal("result")
	if result != lua.LNil {
		return result.String(), nil
	}

	return "", nil
}

// Lua function implementations

// luaPrompt asks for text input: dlg.prompt(title, message, default) -> text, confirmed
func luaPrompt(L *lua.LState) int {
	title := L.CheckString(1)
	message := L.CheckString(2)
	def := L.OptString(3, "")

	text, confirmed, err := windlg.ShowPrompt(title, message, def)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(text))
	L.Push(lua.LBool(confirmed))
	return 2
}

// luaMessage shows a message box: dlg.message(title, message, {labels}) -> selected label
// Buttons get IDs 1..n; a dismissed dialog returns nil
func luaMessage(L *lua.LState) int {
	title := L.CheckString(1)
	message := L.CheckString(2)
	labels := L.CheckTable(3)

	var options []windlg.Option
	labels.ForEach(func(_, v lua.LValue) {
		options = append(options, windlg.Option{ID: len(options) + 1, Label: v.String()})
	})

	selected, err := windlg.ShowMessageBox(title, message, options)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	if selected == windlg.SelectionNone {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(optionLabelByID(options, selected)))
	return 1
}

// optionLabelByID maps a selection back to its button label, whatever the
// IDs happen to be.
func optionLabelByID(options []windlg.Option, id int) string {
	for _, opt := range options {
		if opt.ID == id {
			return opt.Label
		}
	}
	return fmt.Sprintf("#%d", id)
}

// luaOpenFile shows the file open dialog: dlg.open_file(title) -> path
func luaOpenFile(L *lua.LState) int {
	title := L.OptString(1, "")

	path, err := windlg.ShowOpenFile(windlg.FileDialogOptions{Title: title})
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(path))
	return 1
}

// luaSaveFile shows the file save dialog: dlg.save_file(title, default_name) -> path
func luaSaveFile(L *lua.LState) int {
	title := L.OptString(1, "")
	name := L.OptString(2, "")

	path, err := windlg.ShowSaveFile(windlg.FileDialogOptions{Title: title, DefaultName: name})
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(path))
	return 1
}

// luaPickFolder shows the folder dialog: dlg.pick_folder(title) -> path
func luaPickFolder(L *lua.LState) int {
	title := L.OptString(1, "")

	path, err := windlg.ShowPickFolder(title, "")
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(path))
	return 1
}

// luaPickColor shows the color dialog: dlg.pick_color() -> r, g, b (nil if cancelled)
func luaPickColor(L *lua.LState) int {
	color, confirmed, err := windlg.ShowColorPicker(windlg.Color{A: 0xFF})
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	if !confirmed {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(color.R))
	L.Push(lua.LNumber(color.G))
	L.Push(lua.LNumber(color.B))
	return 3
}

// luaFindFont resolves a font file path: dlg.find_font(name) -> path
func luaFindFont(L *lua.LState) int {
	name := L.CheckString(1)

	path, err := windlg.FindFontFile(name)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(path))
	return 1
}

// luaSetStatus sets the status line: dlg.set_status(text)
func luaSetStatus(L *lua.LState) int {
	text := L.CheckString(1)
	mStatus.SetTitle(text)
	return 0
}

// luaExec executes a command and returns output: dlg.exec(cmd, args...) -> output, error
func luaExec(L *lua.LState) int {
	cmdName := L.CheckString(1)
	var args []string
	for i := 2; i <= L.GetTop(); i++ {
		args = append(args, L.CheckString(i))
	}

	cmd := exec.Command(cmdName, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		L.Push(lua.LString(string(output)))
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(string(output)))
	return 1
}

// luaShell executes a shell command: dlg.shell(command) -> output, error
func luaShell(L *lua.LState) int {
	command := L.CheckString(1)

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", command)
	} else {
		cmd = exec.Command("sh", "-c", command)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		L.Push(lua.LString(string(output)))
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(string(output)))
	return 1
}

// luaSleep pauses execution: dlg.sleep(milliseconds)
func luaSleep(L *lua.LState) int {
	ms := L.CheckInt(1)
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return 0
}

// luaEnv gets an environment variable: dlg.env(name) -> value
func luaEnv(L *lua.LState) int {
	name := L.CheckString(1)
	value := os.Getenv(name)
	L.Push(lua.LString(value))
	return 1
}

// luaLog prints to the debug log: dlg.log(message)
func luaLog(L *lua.LState) int {
	message := L.CheckString(1)
	windlg.LogDebug("[Lua] %s", message)
	return 0
}

package main

import (
	"path/filepath"
	"testing"
)

func TestLogConfigDefaults(t *testing.T) {
	var nilCfg *Config
	cfg := nilCfg.GetLogConfigWithDefaults()
	if cfg.MaxSizeMB != 10 || cfg.MaxBackups != 5 || cfg.MaxAgeDays != 7 {
		t.Errorf("nil config defaults = %+v", cfg)
	}

	withSection := &Config{Logging: &LogConfig{MaxSizeMB: 50, ToStdout: true}}
	cfg = withSection.GetLogConfigWithDefaults()
	if cfg.MaxSizeMB != 50 {
		t.Errorf("MaxSizeMB = %d, want 50", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 5 {
		t.Errorf("MaxBackups = %d, want default 5", cfg.MaxBackups)
	}
	if !cfg.ToStdout {
		t.Error("ToStdout should be true")
	}
	// An explicit logging section with compress unset means false.
	if cfg.Compress {
		t.Error("Compress should be false when the section leaves it unset")
	}
}

func TestConfigSwapConcurrent(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			setAppConfig(&Config{Prompts: []PromptEntry{{Index: i, Name: "p"}}})
		}
	}()

	// Readers race with the reload loop; the race detector flags any
	// unguarded access.
	for i := 0; i < 1000; i++ {
		if cfg := currentConfig(); cfg != nil && len(cfg.Prompts) == 1 {
			_ = cfg.Prompts[0].Index
		}
	}
	<-done

	cfg := currentConfig()
	if cfg == nil || len(cfg.Prompts) != 1 || cfg.Prompts[0].Index != 999 {
		t.Errorf("final config = %+v", cfg)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windlg.json")

	in := &Config{
		Prompts: []PromptEntry{
			{Index: 1, Name: "Name", Title: "Hello", Message: "Your name?", Default: "me"},
		},
		Questions: []QuestionEntry{
			{Index: 1, Name: "Pick", Title: "Pick", Message: "Pick one",
				Options: []OptionEntry{{ID: 1, Label: "A"}, {ID: 2, Label: "B"}}},
		},
	}
	if err := SaveConfig(in, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	out, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(out.Prompts) != 1 || out.Prompts[0].Message != "Your name?" {
		t.Errorf("prompts = %+v", out.Prompts)
	}
	if len(out.Questions) != 1 || len(out.Questions[0].Options) != 2 {
		t.Errorf("questions = %+v", out.Questions)
	}
}

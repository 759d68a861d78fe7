package windlg

import "testing"

func TestFontNameMatches(t *testing.T) {
	tests := []struct {
		valueName string
		wanted    string
		match     bool
	}{
		{"Segoe UI (TrueType)", "segoe", true},
		{"Segoe UI (TrueType)", "Segoe UI", true},
		{"Microsoft YaHei (TrueType)", "yahei", true},
		{"Arial (TrueType)", "Courier", false},
		{"Arial Black (TrueType)", "arial", true},
		// The qualifier must not take part in matching.
		{"Arial (TrueType)", "TrueType", false},
	}

	for _, tt := range tests {
		if got := fontNameMatches(tt.valueName, tt.wanted); got != tt.match {
			t.Errorf("fontNameMatches(%q, %q) = %v, want %v", tt.valueName, tt.wanted, got, tt.match)
		}
	}
}

func TestResolveFontPath(t *testing.T) {
	const windir = `C:\Windows`

	tests := []struct {
		value string
		want  string
	}{
		{"segoeui.ttf", `C:\Windows\Fonts\segoeui.ttf`},
		{`C:\Windows\Fonts\arial.ttf`, `C:\Windows\Fonts\arial.ttf`},
		{`D:\CustomFonts\custom.ttf`, `D:\CustomFonts\custom.ttf`},
	}

	for _, tt := range tests {
		if got := resolveFontPath(tt.value, windir); got != tt.want {
			t.Errorf("resolveFontPath(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFontPathCache(t *testing.T) {
	FlushFontCache()

	if _, found := cachedFontPath("segoe"); found {
		t.Fatal("cache should start empty")
	}

	storeFontPath("segoe", `C:\Windows\Fonts\segoeui.ttf`)
	path, found := cachedFontPath("segoe")
	if !found || path != `C:\Windows\Fonts\segoeui.ttf` {
		t.Errorf("cachedFontPath = %q, %v", path, found)
	}

	// A negative result (no matching font) is cached too.
	storeFontPath("nosuchfont", "")
	if path, found := cachedFontPath("nosuchfont"); !found || path != "" {
		t.Errorf("negative entry: %q, %v", path, found)
	}

	FlushFontCache()
	if _, found := cachedFontPath("segoe"); found {
		t.Error("cache should be empty after flush")
	}
}

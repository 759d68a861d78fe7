package windlg

import "testing"

func TestParseFilter(t *testing.T) {
	tests := []struct {
		spec    string
		want    FileFilter
		wantErr bool
	}{
		{"Text Files(*.txt)|*.txt", FileFilter{"Text Files(*.txt)", "*.txt"}, false},
		{"Images|*.bmp;*.jpg", FileFilter{"Images", "*.bmp;*.jpg"}, false},
		{"All Files(*.*)|*.*", FileFilter{"All Files(*.*)", "*.*"}, false},
		{"|*.txt", FileFilter{"", "*.txt"}, false},
		{"no separator here", FileFilter{}, true},
		{"", FileFilter{}, true},
	}

	for _, tt := range tests {
		got, err := ParseFilter(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFilter(%q) expected error", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFilter(%q) failed: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFilter(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestParseFiltersFailsOnFirstBadEntry(t *testing.T) {
	_, err := ParseFilters([]string{"Text|*.txt", "bad entry"})
	if err == nil {
		t.Fatal("expected error for malformed filter")
	}

	filters, err := ParseFilters([]string{"Text|*.txt", "All|*.*"})
	if err != nil {
		t.Fatalf("ParseFilters failed: %v", err)
	}
	if len(filters) != 2 {
		t.Fatalf("got %d filters, want 2", len(filters))
	}
}

package main

import (
	"testing"

	"windlg"
)

func TestOptionLabelByID(t *testing.T) {
	options := []windlg.Option{
		{ID: 10, Label: "Retry"},
		{ID: 20, Label: "Ignore"},
		{ID: 3, Label: "Abort"},
	}

	tests := []struct {
		id   int
		want string
	}{
		{10, "Retry"},
		{20, "Ignore"},
		{3, "Abort"},
		{7, "#7"}, // unknown id falls back to the numeric form
	}

	for _, tt := range tests {
		if got := optionLabelByID(options, tt.id); got != tt.want {
			t.Errorf("optionLabelByID(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

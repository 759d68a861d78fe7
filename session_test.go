package windlg

import (
	"errors"
	"testing"
)

func TestStateTransitions(t *testing.T) {
	legal := []struct{ from, to dialogState }{
		{stateCreated, stateIdle},
		{stateCreated, stateClosing},
		{stateIdle, stateClosing},
		{stateClosing, stateDestroyed},
	}
	for _, tt := range legal {
		if !tt.from.canTransition(tt.to) {
			t.Errorf("%s -> %s should be legal", tt.from, tt.to)
		}
	}

	illegal := []struct{ from, to dialogState }{
		{stateCreated, stateDestroyed},
		{stateIdle, stateCreated},
		{stateIdle, stateDestroyed},
		{stateClosing, stateIdle},
		{stateDestroyed, stateIdle},
		{stateDestroyed, stateClosing},
	}
	for _, tt := range illegal {
		if tt.from.canTransition(tt.to) {
			t.Errorf("%s -> %s should be illegal", tt.from, tt.to)
		}
	}
}

func TestIllegalTransitionIgnored(t *testing.T) {
	s := &promptSession{state: stateDestroyed}
	s.transition(stateIdle)
	if s.state != stateDestroyed {
		t.Errorf("state = %s, want destroyed", s.state)
	}
}

func TestOptionByIndex(t *testing.T) {
	s := &messageSession{options: []Option{{ID: 10, Label: "Yes"}, {ID: 20, Label: "No"}}}

	if opt, ok := s.optionByIndex(1); !ok || opt.ID != 20 {
		t.Errorf("optionByIndex(1) = %+v, %v", opt, ok)
	}
	if _, ok := s.optionByIndex(-1); ok {
		t.Error("optionByIndex(-1) should not resolve")
	}
	if _, ok := s.optionByIndex(2); ok {
		t.Error("optionByIndex(2) should not resolve")
	}
}

func TestMessageBoxRejectsEmptyOptions(t *testing.T) {
	selected, err := ShowMessageBox("T", "Pick one", nil)
	if selected != SelectionInvalid {
		t.Errorf("selected = %d, want %d", selected, SelectionInvalid)
	}
	if !errors.Is(err, ErrNoOptions) {
		t.Errorf("err = %v, want ErrNoOptions", err)
	}
}

func TestConcurrentDialogFailsFast(t *testing.T) {
	if !acquireDialogSlot() {
		t.Fatal("could not acquire free dialog slot")
	}
	defer releaseDialogSlot()

	if _, _, err := ShowPrompt("T", "Name:", ""); !errors.Is(err, ErrDialogActive) {
		t.Errorf("ShowPrompt err = %v, want ErrDialogActive", err)
	}
	if _, err := ShowMessageBox("T", "Pick", []Option{{ID: 1, Label: "OK"}}); !errors.Is(err, ErrDialogActive) {
		t.Errorf("ShowMessageBox err = %v, want ErrDialogActive", err)
	}
}

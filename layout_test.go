package windlg

import "testing"

func TestMessageWindowHeight(t *testing.T) {
	tests := []struct {
		options int
		height  int
	}{
		{1, 140},
		{2, 140},
		{3, 140},
		{4, 180},
		{6, 180},
		{7, 220},
		{9, 220},
		{10, 260},
	}

	for _, tt := range tests {
		_, h := messageWindowSize(tt.options)
		if h != tt.height {
			t.Errorf("messageWindowSize(%d) height = %d, want %d", tt.options, h, tt.height)
		}
	}
}

func TestMessageWindowWidthFitsFullRow(t *testing.T) {
	w, _ := messageWindowSize(5)
	if w != 380 {
		t.Fatalf("width = %d, want 380", w)
	}

	// The last button of a full row must end inside the window width.
	l := computeMessageLayout(w, 200, 3)
	last := l.buttons[2]
	if last.x+last.w > w {
		t.Errorf("third button ends at %d, outside window width %d", last.x+last.w, w)
	}
}

func TestMessageButtonGrid(t *testing.T) {
	const n = 8
	w, h := messageWindowSize(n)
	l := computeMessageLayout(w, h, n)

	if len(l.buttons) != n {
		t.Fatalf("got %d button rects, want %d", len(l.buttons), n)
	}

	baseY := h - msgButtonHeight - msgBottomMargin
	for i, b := range l.buttons {
		wantX := msgBaseWindowLeft + (i%3)*(msgButtonWidth+msgButtonSpacing)
		wantY := baseY - (i/3)*msgRowStride
		if b.x != wantX || b.y != wantY {
			t.Errorf("button %d at (%d,%d), want (%d,%d)", i, b.x, b.y, wantX, wantY)
		}
		if b.w != msgButtonWidth || b.h != msgButtonHeight {
			t.Errorf("button %d size (%d,%d), want (%d,%d)", i, b.w, b.h, msgButtonWidth, msgButtonHeight)
		}
	}
}

func TestPromptLayoutMargins(t *testing.T) {
	sizes := []struct{ w, h int }{
		{400, 180},
		{500, 220},
		{320, 180},
		{800, 600},
	}

	for _, size := range sizes {
		l := computePromptLayout(size.w, size.h)

		if l.label.x != sideMargin || l.label.w != size.w-2*sideMargin {
			t.Errorf("label at w=%d: x=%d w=%d, want x=%d w=%d",
				size.w, l.label.x, l.label.w, sideMargin, size.w-2*sideMargin)
		}
		if l.input.x != sideMargin || l.input.w != size.w-2*sideMargin {
			t.Errorf("input at w=%d: x=%d w=%d, want x=%d w=%d",
				size.w, l.input.x, l.input.w, sideMargin, size.w-2*sideMargin)
		}

		wantY := size.h - promptButtonHeight - promptBottomMargin
		if l.ok.y != wantY || l.cancel.y != wantY {
			t.Errorf("buttons at h=%d: y=%d/%d, want %d", size.h, l.ok.y, l.cancel.y, wantY)
		}

		// The pair is centered: equal space on both sides.
		left := l.ok.x
		right := size.w - (l.cancel.x + l.cancel.w)
		if diff := left - right; diff < -1 || diff > 1 {
			t.Errorf("button pair not centered at w=%d: left=%d right=%d", size.w, left, right)
		}
	}
}

func TestLayoutStaysInsideClientArea(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7, 9} {
		w, h := messageWindowSize(n)
		l := computeMessageLayout(w, h, n)

		for i, b := range l.buttons {
			if b.x < 0 || b.y < 0 || b.x+b.w > w || b.y+b.h > h {
				t.Errorf("n=%d: button %d rect (%d,%d,%d,%d) outside client %dx%d",
					n, i, b.x, b.y, b.w, b.h, w, h)
			}
		}
		if l.label.y+l.label.h > h {
			t.Errorf("n=%d: label overflows client height", n)
		}
	}
}

func TestCenterOnScreen(t *testing.T) {
	x, y := centerOnScreen(1920, 1080, promptWindowWidth, promptWindowHeight)
	if x != (1920-promptWindowWidth)/2 || y != (1080-promptWindowHeight)/2 {
		t.Errorf("centerOnScreen = (%d,%d)", x, y)
	}
}

package window

import (
	"errors"
	"testing"
)

// fakeHost records calls and mirrors visibility like a real window would.
type fakeHost struct {
	visible    bool
	ignore     bool
	x, y       float64
	w, h       float64
	calls      []string
	queryErr   error
	mutateErr  error
	showCount  int
	focusCount int
	hideCount  int
}

func (f *fakeHost) SetPosition(x, y float64) error {
	f.calls = append(f.calls, "position")
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.x, f.y = x, y
	return nil
}

func (f *fakeHost) SetSize(w, h float64) error {
	f.calls = append(f.calls, "size")
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.w, f.h = w, h
	return nil
}

func (f *fakeHost) SetIgnoreCursorEvents(ignore bool) error {
	f.calls = append(f.calls, "ignore")
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.ignore = ignore
	return nil
}

func (f *fakeHost) IsVisible() (bool, error) {
	if f.queryErr != nil {
		return false, f.queryErr
	}
	return f.visible, nil
}

func (f *fakeHost) Show() error {
	f.showCount++
	f.visible = true
	return nil
}

func (f *fakeHost) Hide() error {
	f.hideCount++
	f.visible = false
	return nil
}

func (f *fakeHost) Focus() error {
	f.focusCount++
	return nil
}

func TestMutationsApplyToHost(t *testing.T) {
	host := &fakeHost{}
	c := NewController(host)

	if !c.SetPosition(860, 880) {
		t.Fatal("Expected SetPosition to succeed")
	}
	if !c.SetSize(200, 200) {
		t.Fatal("Expected SetSize to succeed")
	}
	if !c.SetIgnoreCursorEvents(true) {
		t.Fatal("Expected SetIgnoreCursorEvents to succeed")
	}

	if host.x != 860 || host.y != 880 {
		t.Errorf("Expected position (860,880), got (%v,%v)", host.x, host.y)
	}
	if host.w != 200 || host.h != 200 {
		t.Errorf("Expected size 200x200, got %vx%v", host.w, host.h)
	}
	if !host.ignore {
		t.Error("Expected click-through enabled")
	}
}

func TestMutationFailuresAreAbsorbed(t *testing.T) {
	host := &fakeHost{mutateErr: errors.New("window closed")}
	c := NewController(host)

	if c.SetPosition(1, 2) {
		t.Error("Expected SetPosition to report failure")
	}
	if c.SetSize(3, 4) {
		t.Error("Expected SetSize to report failure")
	}
	if c.SetIgnoreCursorEvents(true) {
		t.Error("Expected SetIgnoreCursorEvents to report failure")
	}
	if len(host.calls) != 3 {
		t.Errorf("Expected exactly one attempt per command (no retries), got %v", host.calls)
	}
}

func TestToggleVisibilityIsInvolution(t *testing.T) {
	for _, start := range []bool{true, false} {
		host := &fakeHost{visible: start}
		c := NewController(host)

		c.ToggleVisibility()
		if host.visible == start {
			t.Fatalf("Expected first toggle to flip visibility from %v", start)
		}
		c.ToggleVisibility()
		if host.visible != start {
			t.Errorf("Expected two toggles to restore visibility %v, got %v", start, host.visible)
		}
	}
}

func TestToggleVisibilityShowsAndFocuses(t *testing.T) {
	host := &fakeHost{visible: false}
	NewController(host).ToggleVisibility()

	if host.showCount != 1 || host.focusCount != 1 {
		t.Errorf("Expected show+focus once, got show=%d focus=%d", host.showCount, host.focusCount)
	}
	if host.hideCount != 0 {
		t.Errorf("Expected no hide, got %d", host.hideCount)
	}
}

func TestToggleVisibilityQueryFailureShows(t *testing.T) {
	host := &fakeHost{visible: true, queryErr: errors.New("unsupported")}
	NewController(host).ToggleVisibility()

	if host.showCount != 1 {
		t.Errorf("Expected show branch on query failure, got show=%d", host.showCount)
	}
	if host.hideCount != 0 {
		t.Errorf("Expected no hide on query failure, got %d", host.hideCount)
	}
}

func TestNilHost(t *testing.T) {
	c := NewController(nil)
	if c.SetPosition(0, 0) || c.ToggleVisibility() || c.Reveal() {
		t.Error("Expected every operation to report failure without a host")
	}
}

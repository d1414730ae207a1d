package notify

import (
	"testing"
	"time"
)

func TestPush_AutoDismissesAfterTTL(t *testing.T) {
	n := NewNotifier(20 * time.Millisecond)

	notice := n.Push("Access denied. Admin privileges required.")
	if notice.ID == "" {
		t.Fatalf("expected a notice ID")
	}

	got := n.Current()
	if got == nil || got.ID != notice.ID {
		t.Fatalf("expected the pushed notice to be current, got %+v", got)
	}

	time.Sleep(100 * time.Millisecond)
	if got := n.Current(); got != nil {
		t.Fatalf("expected notice to be auto-dismissed, got %+v", got)
	}
}

func TestPush_ReplacesCurrentNotice(t *testing.T) {
	n := NewNotifier(time.Minute)

	first := n.Push("first")
	second := n.Push("second")
	if first.ID == second.ID {
		t.Fatalf("expected distinct notice IDs")
	}

	got := n.Current()
	if got == nil || got.ID != second.ID {
		t.Fatalf("expected the replacement to be current, got %+v", got)
	}
}

// A dismissal scheduled for a replaced notice must not fire against its
// replacement.
func TestPush_StaleTimerDoesNotClearReplacement(t *testing.T) {
	n := NewNotifier(60 * time.Millisecond)

	n.Push("first")
	time.Sleep(40 * time.Millisecond)
	second := n.Push("second")

	// Past the first notice's dismissal time, within the second's.
	time.Sleep(40 * time.Millisecond)
	got := n.Current()
	if got == nil || got.ID != second.ID {
		t.Fatalf("expected the replacement to survive the stale timer, got %+v", got)
	}

	time.Sleep(60 * time.Millisecond)
	if got := n.Current(); got != nil {
		t.Fatalf("expected the replacement to dismiss on its own schedule, got %+v", got)
	}
}

func TestClear_DropsNoticeImmediately(t *testing.T) {
	n := NewNotifier(time.Minute)

	n.Push("going away")
	n.Clear()
	if got := n.Current(); got != nil {
		t.Fatalf("expected no notice after clear, got %+v", got)
	}
}

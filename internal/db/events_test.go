package db

import (
	"testing"
)

func TestDiagnosticEventsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	events, err := ReadDiagnosticEvents(dir)
	if err != nil {
		t.Fatalf("ReadDiagnosticEvents on missing file failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Expected no events, got %d", len(events))
	}

	e1 := DiagnosticEvent{Source: "popover", EntityID: "pr-abc123", Detail: "action panic: boom"}
	if err := LogDiagnosticEvent(dir, e1); err != nil {
		t.Fatalf("LogDiagnosticEvent failed: %v", err)
	}
	e2 := DiagnosticEvent{Source: "console", Detail: "refresh failed"}
	if err := LogDiagnosticEvent(dir, e2); err != nil {
		t.Fatalf("LogDiagnosticEvent failed: %v", err)
	}

	events, err = ReadDiagnosticEvents(dir)
	if err != nil {
		t.Fatalf("ReadDiagnosticEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Source != "popover" || events[0].EntityID != "pr-abc123" {
		t.Errorf("First event mismatch: %+v", events[0])
	}
	if events[0].Timestamp.IsZero() {
		t.Error("Expected timestamp to be stamped")
	}

	if err := ClearDiagnosticEvents(dir); err != nil {
		t.Fatalf("ClearDiagnosticEvents failed: %v", err)
	}
	events, _ = ReadDiagnosticEvents(dir)
	if len(events) != 0 {
		t.Errorf("Expected events cleared, got %d", len(events))
	}

	// Clearing twice is a no-op
	if err := ClearDiagnosticEvents(dir); err != nil {
		t.Errorf("Second clear should be a no-op, got %v", err)
	}
}

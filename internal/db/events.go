package db

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const diagnosticEventsFile = ".shopdesk/diagnostic_events.jsonl"

// DiagnosticEvent records a recovered runtime failure (like a menu action
// panic) without surfacing it in the UI
type DiagnosticEvent struct {
	Timestamp time.Time `json:"ts"`
	Source    string    `json:"source"`
	EntityID  string    `json:"entity_id,omitempty"`
	Detail    string    `json:"detail"`
}

// LogDiagnosticEvent appends a diagnostic event to the jsonl file
func LogDiagnosticEvent(baseDir string, event DiagnosticEvent) error {
	eventPath := filepath.Join(baseDir, diagnosticEventsFile)

	// Ensure .shopdesk directory exists
	deskDir := filepath.Dir(eventPath)
	if _, err := os.Stat(deskDir); os.IsNotExist(err) {
		if err := os.MkdirAll(deskDir, 0755); err != nil {
			return err
		}
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(eventPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(data, '\n'))
	return err
}

// ReadDiagnosticEvents reads all diagnostic events from the file
func ReadDiagnosticEvents(baseDir string) ([]DiagnosticEvent, error) {
	eventPath := filepath.Join(baseDir, diagnosticEventsFile)

	data, err := os.ReadFile(eventPath)
	if os.IsNotExist(err) {
		return []DiagnosticEvent{}, nil
	}
	if err != nil {
		return nil, err
	}

	var events []DiagnosticEvent
	start := 0
	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			if i > start {
				line := data[start:i]
				var e DiagnosticEvent
				if err := json.Unmarshal(line, &e); err == nil {
					events = append(events, e)
				}
			}
			start = i + 1
		}
	}

	return events, nil
}

// ClearDiagnosticEvents removes the diagnostic events file
func ClearDiagnosticEvents(baseDir string) error {
	eventPath := filepath.Join(baseDir, diagnosticEventsFile)
	err := os.Remove(eventPath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestTraceRespectsToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})

	SetTraceEnabled(false)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is off, stat err=%v", err)
	}

	SetTraceEnabled(true)
	Trace("run.start", map[string]interface{}{"argv": []string{"rsync", "a", "b"}})
	Error(errors.New("boom"))

	entries := readEntries(t, path)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["msg"] != "run.start" {
		t.Fatalf("expected trace event name, got %v", entries[0]["msg"])
	}
	if _, ok := entries[0]["payload"].(map[string]interface{}); !ok {
		t.Fatalf("expected payload object, got %#v", entries[0]["payload"])
	}
	if entries[1]["level"] != "ERROR" || entries[1]["msg"] != "boom" {
		t.Fatalf("unexpected error entry %#v", entries[1])
	}
}

func TestConfigureEmptyFallsBack(t *testing.T) {
	Configure("")
	if got := Path(); got != defaultLogFile {
		t.Fatalf("expected default path, got %q", got)
	}
}

package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "roster.log")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		if i == 4 {
			content.WriteString("\n")
		}
		all = append(all, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		want     []string
	}{
		{name: "zero", maxLines: 0, want: nil},
		{name: "negative", maxLines: -1, want: nil},
		{name: "partial", maxLines: 5, want: all[5:]},
		{name: "exact", maxLines: 10, want: all},
		{name: "more than exists", maxLines: 20, want: all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Read(%d) mismatch (-want +got):\n%s", tt.maxLines, diff)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil || lines != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", lines, err)
	}
}

func TestParse_ZapJSONLine(t *testing.T) {
	line := `{"level":"warn","ts":"2024-05-01T10:20:30.123Z","caller":"x.go:1","msg":"page fetch failed","page":3,"error":"api /api/ returned status 500"}`

	entry := Parse(line)
	if entry.Level != "warn" || entry.Message != "page fetch failed" {
		t.Fatalf("entry = %+v, want warn/page fetch failed", entry)
	}
	if entry.Time.IsZero() || entry.Time.UTC().Second() != 30 {
		t.Fatalf("Time = %v, want 10:20:30 UTC", entry.Time)
	}
	want := map[string]string{"page": "3", "error": "api /api/ returned status 500"}
	if diff := cmp.Diff(want, entry.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	formatted := entry.Format()
	if !strings.Contains(formatted, "WARN  page fetch failed error=api /api/ returned status 500 page=3") {
		t.Fatalf("Format = %q", formatted)
	}
}

func TestParse_NonJSONKeepsRaw(t *testing.T) {
	entry := Parse("plain text")
	if entry.Raw != "plain text" || entry.Format() != "plain text" {
		t.Fatalf("entry = %+v, want raw passthrough", entry)
	}
}

func TestReadEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "roster.log")
	body := `{"level":"info","msg":"one"}` + "\n" + `{"level":"info","msg":"two"}` + "\n"
	if err := os.WriteFile(logPath, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := ReadEntries(logPath, 1)
	if err != nil {
		t.Fatalf("ReadEntries returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Message != "two" {
		t.Fatalf("entries = %+v, want only the last", entries)
	}
}

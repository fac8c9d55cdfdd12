package ui

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/randomuser"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{in: "  short  ", limit: 10, want: "short"},
		{in: "exactly10!", limit: 10, want: "exactly10!"},
		{in: "much longer text", limit: 8, want: "much ..."},
		{in: "abcdef", limit: 3, want: "abc"},
		{in: "unbounded", limit: 0, want: "unbounded"},
		{in: "Zoë Ångström", limit: 6, want: "Zoë..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestFit_ExactWidth(t *testing.T) {
	for _, in := range []string{"", "Amy", "Bartholomew Aardvark-Smythe"} {
		if got := lipgloss.Width(fit(in, 12)); got != 12 {
			t.Fatalf("fit(%q, 12) width = %d", in, got)
		}
	}
}

func TestClampInt(t *testing.T) {
	if got := clampInt(-1, 0, 4); got != 0 {
		t.Fatalf("clampInt below = %d", got)
	}
	if got := clampInt(9, 0, 4); got != 4 {
		t.Fatalf("clampInt above = %d", got)
	}
	if got := clampInt(3, 0, -1); got != 0 {
		t.Fatalf("clampInt empty range = %d", got)
	}
}

func TestTableColumns_Responsive(t *testing.T) {
	titles := func(width int) string {
		cols := tableColumns(width)
		out := make([]string, 0, len(cols))
		for _, c := range cols {
			out = append(out, c.title)
		}
		return strings.Join(out, ",")
	}
	if got := titles(80); got != "Name,Email,Location,Age" {
		t.Fatalf("compact columns = %s", got)
	}
	if got := titles(120); got != "Name,Email,Phone,Location,Age,Nat" {
		t.Fatalf("medium columns = %s", got)
	}
	if got := titles(160); got != "Name,Email,Phone,Location,Age,Gender,Nat" {
		t.Fatalf("wide columns = %s", got)
	}
}

func TestGridColumns(t *testing.T) {
	if got := gridColumns(10); got != 1 {
		t.Fatalf("gridColumns(10) = %d, want 1", got)
	}
	if got := gridColumns(CardWidth*3 + 5); got != 3 {
		t.Fatalf("gridColumns = %d, want 3", got)
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestPageErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "http status",
			err:  fmt.Errorf("fetch: %w", &randomuser.StatusError{URL: "/api/", StatusCode: 503}),
			want: "server returned HTTP 503",
		},
		{
			name: "schema",
			err:  fmt.Errorf("validate response: %w", &randomuser.SchemaError{Index: 2, Field: "email", Reason: "is missing"}),
			want: "unexpected response (record 2: email is missing)",
		},
		{
			name: "timeout",
			err:  &net.OpError{Op: "read", Net: "tcp", Err: timeoutErr{}},
			want: "request timed out",
		},
		{
			name: "unreachable",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			want: "directory service unreachable",
		},
		{
			name: "other",
			err:  errors.New("api error: quota"),
			want: "api error: quota",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pageErrorMessage(tt.err)
			if got != "Failed to load employees: "+tt.want {
				t.Fatalf("pageErrorMessage = %q", got)
			}
		})
	}
}

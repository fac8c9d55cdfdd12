package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/five82/roster/internal/app"
)

func TestRootCmd_PassesFlags(t *testing.T) {
	var got app.Options
	cmd := newRootCmd(func(_ context.Context, opts app.Options) error {
		got = opts
		return nil
	})
	cmd.SetArgs([]string{"--config", "/tmp/roster.toml", "--endpoint", "http://localhost:8080/api/", "--debug"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.ConfigPath != "/tmp/roster.toml" || got.Endpoint != "http://localhost:8080/api/" || !got.Debug {
		t.Fatalf("options = %+v", got)
	}
}

func TestRootCmd_ReturnsRunError(t *testing.T) {
	boom := errors.New("boom")
	cmd := newRootCmd(func(context.Context, app.Options) error { return boom })
	cmd.SetArgs([]string{})

	if err := cmd.ExecuteContext(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Execute error = %v, want boom", err)
	}
}

func TestVersionCmd(t *testing.T) {
	called := false
	cmd := newRootCmd(func(context.Context, app.Options) error {
		called = true
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if called {
		t.Fatalf("version started the UI")
	}
	if !strings.HasPrefix(out.String(), "roster ") {
		t.Fatalf("version output = %q", out.String())
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd(func(context.Context, app.Options) error { return nil })
	cmd.SetArgs([]string{"unexpected"})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected an error for positional arguments")
	}
}

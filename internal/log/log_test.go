package log

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestWithLogger_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		ctx := WithLogger(context.Background(), l)
		if got := FromContext(ctx); got != l {
			t.Error("FromContext should return the logger passed to WithLogger")
		}
	})

	t.Run("no-op fallback on empty context", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		if l == nil {
			t.Fatal("FromContext returned nil on empty context")
		}
		if l.Writer() != io.Discard {
			t.Error("fallback logger should discard output")
		}
		// Must not panic.
		l.Printf("ignored %d", 1)
		l.Command("git", "status")
	})
}

func TestLogger_Command(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    string
	}{
		{name: "verbose prints trace", verbose: true, want: "$ git status --porcelain\n"},
		{name: "non-verbose is silent", verbose: false, want: ""},
		{name: "quiet wins over verbose", verbose: true, quiet: true, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := New(&buf, tt.verbose, tt.quiet)
			l.Command("git", "status", "--porcelain")
			if got := buf.String(); got != tt.want {
				t.Errorf("Command() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogger_Quiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, true)
	l.Printf("warning: %s\n", "something")
	l.Println("more")
	if got := buf.String(); got != "" {
		t.Errorf("quiet logger wrote %q, want empty", got)
	}
}

func TestLogger_Printf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Printf("count: %d\n", 3)
	if got, want := buf.String(), "count: 3\n"; got != want {
		t.Errorf("Printf() wrote %q, want %q", got, want)
	}
}

//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/precmd/precmd/internal/config"
)

// TestConfig_Path checks the printed config location.
func TestConfig_Path(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newConfigCmd(), "path"); err != nil {
		t.Fatalf("config path failed: %v", err)
	}

	want := filepath.Join(home, ".config", "precmd", "config.toml") + "\n"
	if got := buf.String(); got != want {
		t.Errorf("config path = %q, want %q", got, want)
	}
}

// TestConfig_Init creates the default config file and checks that it loads
// back as the defaults.
func TestConfig_Init(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newConfigCmd(), "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Created config file:") {
		t.Errorf("unexpected output: %q", buf.String())
	}

	path := filepath.Join(home, ".config", "precmd", "config.toml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	loaded, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if loaded != config.Default() {
		t.Errorf("generated config = %+v, want defaults %+v", loaded, config.Default())
	}

	// Second init without -f must refuse to overwrite.
	ctx2, _ := testContext(t)
	err = executeCommand(ctx2, newConfigCmd(), "init")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected 'already exists' error, got %v", err)
	}

	// With -f it succeeds.
	ctx3, _ := testContext(t)
	if err := executeCommand(ctx3, newConfigCmd(), "init", "-f"); err != nil {
		t.Errorf("config init -f failed: %v", err)
	}
}

// TestConfig_InitStdout prints the template without touching the filesystem.
func TestConfig_InitStdout(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newConfigCmd(), "init", "-s"); err != nil {
		t.Fatalf("config init -s failed: %v", err)
	}
	if !strings.Contains(buf.String(), "[symbols]") {
		t.Errorf("template missing [symbols] section:\n%s", buf.String())
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "precmd", "config.toml")); !os.IsNotExist(err) {
		t.Error("config init -s should not create a file")
	}
}

// TestConfig_Show prints the effective config as TOML.
func TestConfig_Show(t *testing.T) {
	cfg = config.Default()

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newConfigCmd(), "show"); err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"shorten = false", `color = "auto"`, "[symbols]", "[theme]"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output missing %q:\n%s", want, out)
		}
	}
}

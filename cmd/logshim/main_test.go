package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bft-labs/logshim/internal/cliconfig"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOGSHIM_BACKEND", "")
	t.Setenv("LOGSHIM_TAG", "")

	a := newApp()
	a.diag = zerolog.Nop()

	var out bytes.Buffer
	root := newRootCommand(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestLevelCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"debug", []string{"debug", "MainActivity", "onCreate called"}, "DEBUG: MainActivity: onCreate called\n"},
		{"info empty", []string{"info", "", ""}, "INFO: : \n"},
		{"error alias joins words", []string{"e", "Net", "timeout", "after", "30s"}, "ERROR: Net: timeout after 30s\n"},
		{"warn colons", []string{"w", "Cache", "tag: with: colons"}, "WARN: Cache: tag: with: colons\n"},
		{"default tag", []string{"--tag", "MatchGame", "i", "-", "hello"}, "INFO: MatchGame: hello\n"},
		{"tag only", []string{"debug", "Deck"}, "DEBUG: Deck: \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPipeCommand(t *testing.T) {
	got, err := runCLI(t, "i - started\nw Cache low\n", "pipe", "--tag", "Game")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := "INFO: Game: started\nWARN: Cache: low\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestConfigFilePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tag = \"FromFile\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := runCLI(t, "", "--config", path, "info", "-", "a")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "INFO: FromFile: a\n" {
		t.Errorf("output = %q", got)
	}

	got, err = runCLI(t, "", "--config", path, "--tag", "FromFlag", "info", "-", "a")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "INFO: FromFlag: a\n" {
		t.Errorf("output = %q", got)
	}
}

func TestInvalidBackend(t *testing.T) {
	_, err := runCLI(t, "", "--backend", "syslog", "info", "T", "m")
	if !errors.Is(err, cliconfig.ErrInvalidConfig) {
		t.Errorf("Execute() error = %v, want ErrInvalidConfig", err)
	}
}

func TestPipeWatchNeedsConfig(t *testing.T) {
	if _, err := runCLI(t, "", "pipe", "--watch"); err == nil {
		t.Error("pipe --watch without a config file should fail")
	}
}

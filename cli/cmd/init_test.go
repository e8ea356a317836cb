package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func testKongContext(t *testing.T, confPath string, args ...string) *kong.Context {
	t.Helper()

	var cli struct {
		LogLevel string `default:"warn" name:"log-level"`
		Zone     string `default:""`
		Seconds  bool

		Init Init `cmd:""`
	}

	parser, err := kong.New(&cli,
		kong.Vars{ConfigIdentifier: confPath},
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	return ktx
}

func TestInit_Run(t *testing.T) {
	t.Parallel()

	confPath := filepath.Join(t.TempDir(), "config.yaml")

	ktx := testKongContext(t, confPath, "init")
	ctx := WithContext(context.Background(), ktx)

	var cmd Init

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	data, err := os.ReadFile(confPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	content := string(data)

	if !strings.Contains(content, "log-level: warn") {
		t.Errorf("expected defaulted flag in config, got %q", content)
	}

	// Empty string flags are omitted.
	if strings.Contains(content, "zone") {
		t.Errorf("expected empty flag omitted, got %q", content)
	}
}

func TestInit_RunExisting(t *testing.T) {
	t.Parallel()

	confPath := filepath.Join(t.TempDir(), "config.yaml")

	if err := os.WriteFile(confPath, []byte("log-level: debug\n"), 0o600); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	ktx := testKongContext(t, confPath, "init")
	ctx := WithContext(context.Background(), ktx)

	var cmd Init

	err := cmd.Run(ctx)
	if !errors.Is(err, ErrFileExists) {
		t.Fatalf("expected ErrFileExists, got %v", err)
	}

	// Force overwrites.
	cmd.Force = true

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run with force error: %v", err)
	}

	data, err := os.ReadFile(confPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	if strings.Contains(string(data), "debug") {
		t.Errorf("expected config regenerated, got %q", string(data))
	}
}

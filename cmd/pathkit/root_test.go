package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// TestRootCmdSetup tests the initialization of the root command and its
// subcommands, which happens in init().
func TestRootCmdSetup(t *testing.T) {
	var _ *cobra.Command = rootCmd

	if rootCmd == nil {
		t.Fatal("rootCmd is nil after init")
	}

	expectedUse := "pathkit"
	if rootCmd.Use != expectedUse {
		t.Errorf("expected command Use %q, got %q", expectedUse, rootCmd.Use)
	}

	for _, want := range []string{"version", "validate", "stat", "mkdir", "touch", "rm", "mv", "cp", "sniff", "unique", "tmpdir", "paths"} {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s subcommand not found", want)
		}
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := runCommand(t, "validate", "C:\\foo\\bar\\")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if out != "C:/foo/bar\n" {
		t.Errorf("output = %q, want %q", out, "C:/foo/bar\n")
	}

	if _, err := runCommand(t, "validate", "bad<path"); err == nil {
		t.Error("expected error for an invalid path")
	}
}

func TestPathsCommandBitcode(t *testing.T) {
	t.Setenv("PATHKIT_CMDTEST_LIBPATH", "/only-entry")
	out, err := runCommand(t, "paths", "--bitcode", "--env-var", "PATHKIT_CMDTEST_LIBPATH")
	if err != nil {
		t.Fatalf("paths failed: %v", err)
	}
	if out != "/only-entry\n" {
		t.Errorf("output = %q, want %q", out, "/only-entry\n")
	}
}

func TestMkdirAndRemoveCommands(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b")

	if _, err := runCommand(t, "mkdir", "-p", target); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}

	if _, err := runCommand(t, "rm", "-r", filepath.Dir(target)); err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(target)); err == nil {
		t.Error("directory still exists after rm")
	}
}

package syspath_test

import (
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
	"github.com/arthur-debert/pathkit/pkg/pathkit/syspath"
)

func testLogger() zerolog.Logger {
	return pathkit.NewLogger(os.Stderr, zerolog.Disabled)
}

func pathsToStrings(paths []pathkit.Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	return out
}

func TestBitcodeLibraryPaths(t *testing.T) {
	t.Run("env override first, invalid entries dropped", func(t *testing.T) {
		libDir := t.TempDir()
		t.Setenv("PATHKIT_TEST_LIBPATH", "/alpha:bad<entry:/beta")

		d := &syspath.Discovery{
			EnvVar:        "PATHKIT_TEST_LIBPATH",
			DefaultLibDir: libDir,
			Log:           testLogger(),
		}
		got := pathsToStrings(d.BitcodeLibraryPaths())
		want := []string{"/alpha", "/beta", libDir}
		if len(got) != len(want) {
			t.Fatalf("paths = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("paths[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("missing default lib dir is skipped", func(t *testing.T) {
		t.Setenv("PATHKIT_TEST_LIBPATH", "")
		d := &syspath.Discovery{
			EnvVar:        "PATHKIT_TEST_LIBPATH",
			DefaultLibDir: "/definitely/not/here",
			Log:           testLogger(),
		}
		if got := d.BitcodeLibraryPaths(); len(got) != 0 {
			t.Errorf("expected empty list, got %v", pathsToStrings(got))
		}
	})
}

func TestSystemLibraryPaths(t *testing.T) {
	t.Setenv("PATHKIT_TEST_LIBPATH", "/override")
	d := &syspath.Discovery{
		EnvVar: "PATHKIT_TEST_LIBPATH",
		Log:    testLogger(),
	}
	got := pathsToStrings(d.SystemLibraryPaths())
	if len(got) == 0 || got[0] != "/override" {
		t.Fatalf("expected env override first, got %v", got)
	}
	// Whatever well-known directories this host has come after the override.
	for _, entry := range got[1:] {
		if !strings.HasPrefix(entry, "/") {
			t.Errorf("well-known entry %q is not absolute", entry)
		}
	}
}

func TestDefaultEnvVarFallback(t *testing.T) {
	t.Setenv(syspath.DefaultEnvVar, "/from-default-var")
	d := &syspath.Discovery{Log: testLogger()}
	got := pathsToStrings(d.BitcodeLibraryPaths())
	if len(got) != 1 || got[0] != "/from-default-var" {
		t.Errorf("expected fallback to %s, got %v", syspath.DefaultEnvVar, got)
	}
}

func TestWellKnownQueries(t *testing.T) {
	t.Run("user home", func(t *testing.T) {
		home, err := syspath.UserHomeDirectory()
		if err != nil {
			t.Fatalf("UserHomeDirectory failed: %v", err)
		}
		if home.IsEmpty() {
			t.Error("empty home directory")
		}
	})

	t.Run("config directory is home plus fixed component", func(t *testing.T) {
		home, err := syspath.UserHomeDirectory()
		if err != nil {
			t.Fatalf("UserHomeDirectory failed: %v", err)
		}
		cfg, err := syspath.DefaultConfigDirectory()
		if err != nil {
			t.Fatalf("DefaultConfigDirectory failed: %v", err)
		}
		if !strings.HasPrefix(cfg.String(), home.String()) {
			t.Errorf("config dir %q not under home %q", cfg, home)
		}
		if cfg.Last() != ".pathkit" {
			t.Errorf("config component = %q, want %q", cfg.Last(), ".pathkit")
		}
	})

	t.Run("root directory", func(t *testing.T) {
		if got := syspath.RootDirectory().String(); got != "/" {
			t.Errorf("RootDirectory = %q, want /", got)
		}
	})

	t.Run("current directory", func(t *testing.T) {
		wd, err := syspath.CurrentDirectory()
		if err != nil {
			t.Fatalf("CurrentDirectory failed: %v", err)
		}
		if !wd.IsAbsolute() {
			t.Errorf("working directory %q not absolute", wd)
		}
	})

	t.Run("executable path", func(t *testing.T) {
		exe, err := syspath.MainExecutablePath()
		if err != nil {
			t.Fatalf("MainExecutablePath failed: %v", err)
		}
		if exe.IsEmpty() {
			t.Error("empty executable path")
		}
	})
}

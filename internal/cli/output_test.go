package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/primegen/internal/ui"
)

func withoutColors(t *testing.T) {
	t.Helper()
	original := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
}

func TestDisplayCountResult(t *testing.T) {
	withoutColors(t)

	var buf bytes.Buffer
	DisplayCountResult(&buf, "1000000", "78498", "segmented_count", 250*time.Millisecond)

	out := buf.String()
	for _, want := range []string{"π(1,000,000) = 78,498", "segmented_count", "250ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got: %s", want, out)
		}
	}
}

func TestDisplayQuietCount(t *testing.T) {
	var buf bytes.Buffer
	DisplayQuietCount(&buf, "25")

	if buf.String() != "25\n" {
		t.Errorf("quiet output = %q, want %q", buf.String(), "25\n")
	}
}

func TestDisplayPrimes(t *testing.T) {
	withoutColors(t)

	var buf bytes.Buffer
	DisplayPrimes(&buf, "10", []string{"2", "3", "5", "7"}, "segmented_sieve", time.Millisecond)

	out := buf.String()
	if !strings.Contains(out, "4 primes up to 10") {
		t.Errorf("output should contain the header, got: %s", out)
	}
	if !strings.HasSuffix(out, "2\n3\n5\n7\n") {
		t.Errorf("output should end with one prime per line, got: %s", out)
	}
}

func TestDisplayQuietPrimes(t *testing.T) {
	var buf bytes.Buffer
	DisplayQuietPrimes(&buf, []string{"2", "3", "5"})

	if buf.String() != "2\n3\n5\n" {
		t.Errorf("quiet output = %q", buf.String())
	}
}

func TestWritePrimesToFile(t *testing.T) {
	t.Run("writes header and primes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "primes.txt")
		cfg := OutputConfig{OutputFile: path}

		err := WritePrimesToFile([]string{"2", "3", "5", "7"}, "10", "segmented_sieve", time.Second, cfg)
		if err != nil {
			t.Fatalf("WritePrimesToFile: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		content := string(data)
		for _, want := range []string{"# Prime Generation Result", "# Mode: segmented_sieve", "# Bound: 10", "# Count: 4", "\n2\n3\n5\n7\n"} {
			if !strings.Contains(content, want) {
				t.Errorf("file should contain %q, got:\n%s", want, content)
			}
		}
	})

	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results", "deep", "primes.txt")
		cfg := OutputConfig{OutputFile: path}

		if err := WritePrimesToFile([]string{"2"}, "2", "sieve", time.Second, cfg); err != nil {
			t.Fatalf("WritePrimesToFile: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output file should exist: %v", err)
		}
	})

	t.Run("no-op without output file", func(t *testing.T) {
		if err := WritePrimesToFile([]string{"2"}, "2", "sieve", time.Second, OutputConfig{}); err != nil {
			t.Errorf("empty OutputFile should be a no-op, got %v", err)
		}
	})
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount("664579"); got != "664,579" {
		t.Errorf("FormatCount = %q, want 664,579", got)
	}
}

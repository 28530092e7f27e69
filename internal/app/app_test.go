package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/primegen/internal/errors"
)

func newTestApp(t *testing.T, args ...string) *Application {
	t.Helper()
	argv := append([]string{"primegen", "--no-color"}, args...)
	a, err := New(argv, io.Discard)
	if err != nil {
		t.Fatalf("New(%v): %v", args, err)
	}
	return a
}

func TestNewRejectsBadArguments(t *testing.T) {
	tests := [][]string{
		{"primegen", "-mode", "warp"},
		{"primegen", "-workers", "-1"},
		{"primegen", "-bogus"},
	}
	for _, argv := range tests {
		if _, err := New(argv, io.Discard); err == nil {
			t.Errorf("New(%v) should fail", argv)
		}
	}
}

func TestIsHelpError(t *testing.T) {
	_, err := New([]string{"primegen", "--help"}, io.Discard)
	if err == nil {
		t.Fatal("--help should surface flag.ErrHelp")
	}
	if !IsHelpError(err) {
		t.Errorf("IsHelpError(%v) should be true", err)
	}
}

func TestRunSingleCount(t *testing.T) {
	a := newTestApp(t, "-n", "100", "-mode", "segmented_count", "-quiet")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if strings.TrimSpace(out.String()) != "25" {
		t.Errorf("quiet output = %q, want 25", out.String())
	}
}

func TestRunSieveWithOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primes.txt")
	a := newTestApp(t, "-n", "30", "-mode", "segmented_sieve", "-quiet", "-o", path)

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}

	if !strings.HasPrefix(out.String(), "2\n3\n5\n") {
		t.Errorf("quiet sieve output = %q", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	if !strings.Contains(string(data), "# Count: 10") {
		t.Errorf("file header missing count 10:\n%s", data)
	}
}

func TestRunAllModes(t *testing.T) {
	a := newTestApp(t, "-n", "541", "-all", "-segment-width", "64")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	s := out.String()
	if !strings.Contains(s, "Comparison Summary") {
		t.Errorf("missing comparison table:\n%s", s)
	}
	if !strings.Contains(s, "All modes agree.") {
		t.Errorf("missing agreement line:\n%s", s)
	}
	if !strings.Contains(s, "100") {
		t.Errorf("missing count 100 for bound 541:\n%s", s)
	}
}

func TestRunInvalidBound(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"primegen", "--no-color", "-n", "12xyz", "-quiet"}, &errBuf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	code := a.Run(context.Background(), io.Discard)
	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errBuf.String(), "invalid input") {
		t.Errorf("stderr should mention invalid input:\n%s", errBuf.String())
	}
}

func TestRunCompletion(t *testing.T) {
	a := newTestApp(t, "-completion", "bash")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "_primegen") {
		t.Errorf("completion script missing:\n%s", out.String())
	}
}

func TestHandleRunErrorMapping(t *testing.T) {
	a := newTestApp(t, "-quiet")
	a.ErrWriter = io.Discard

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", apperrors.NewInvalidInputError("x", "not a digit"), apperrors.ExitErrorConfig},
		{"mismatch", apperrors.ErrResultMismatch, apperrors.ExitErrorMismatch},
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"generic", os.ErrPermission, apperrors.ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.handleRunError(tt.err); got != tt.want {
				t.Errorf("handleRunError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHasVersionFlag(t *testing.T) {
	if !HasVersionFlag([]string{"-n", "5", "--version"}) {
		t.Error("--version should be detected")
	}
	if HasVersionFlag([]string{"-n", "5"}) {
		t.Error("no version flag expected")
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.Contains(out.String(), "primegen") {
		t.Errorf("version banner = %q", out.String())
	}
}

package cli

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/agbru/primegen/internal/logging"
	"github.com/agbru/primegen/internal/primes"
)

func newTestREPL(t *testing.T, input string) (*REPL, *bytes.Buffer) {
	t.Helper()
	withoutColors(t)

	engine := primes.New(primes.Config{
		SegmentWidth: 64,
		Workers:      2,
		Logger:       logging.NewStdLoggerAdapter(log.New(io.Discard, "", 0)),
	})
	r := NewREPL(engine, REPLConfig{Timeout: 30 * time.Second})

	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	return r, &out
}

func TestREPLCount(t *testing.T) {
	r, out := newTestREPL(t, "count 100\nexit\n")
	r.Start()

	if !strings.Contains(out.String(), "\u03c0(100) = 25") {
		t.Errorf("count output missing, got:\n%s", out.String())
	}
}

func TestREPLBareNumber(t *testing.T) {
	r, out := newTestREPL(t, "30\nquit\n")
	r.Start()

	if !strings.Contains(out.String(), "\u03c0(30) = 10") {
		t.Errorf("bare number should count, got:\n%s", out.String())
	}
}

func TestREPLSieve(t *testing.T) {
	r, out := newTestREPL(t, "sieve 10\nexit\n")
	r.Start()

	s := out.String()
	if !strings.Contains(s, "4 primes up to 10") {
		t.Errorf("sieve header missing, got:\n%s", s)
	}
	for _, p := range []string{"2", "3", "5", "7"} {
		if !strings.Contains(s, p+"\n") {
			t.Errorf("sieve output missing prime %s:\n%s", p, s)
		}
	}
}

func TestREPLModeSwitch(t *testing.T) {
	r, out := newTestREPL(t, "mode count\nstatus\nmode warp\nexit\n")
	r.Start()

	s := out.String()
	if !strings.Contains(s, "Mode set to count") {
		t.Errorf("mode switch not confirmed:\n%s", s)
	}
	if !strings.Contains(s, "Mode:    count") {
		t.Errorf("status should show the new mode:\n%s", s)
	}
	if !strings.Contains(s, "Unknown mode: warp") {
		t.Errorf("invalid mode should be rejected:\n%s", s)
	}
}

func TestREPLAll(t *testing.T) {
	r, out := newTestREPL(t, "all 100\nexit\n")
	r.Start()

	s := out.String()
	if !strings.Contains(s, "Comparison Summary") {
		t.Errorf("comparison table missing:\n%s", s)
	}
	if !strings.Contains(s, "All modes agree: 25 primes.") {
		t.Errorf("agreement confirmation missing:\n%s", s)
	}
}

func TestREPLErrors(t *testing.T) {
	r, out := newTestREPL(t, "count\ncount abc\nfrobnicate\nexit\n")
	r.Start()

	s := out.String()
	if !strings.Contains(s, "Usage: count <n>") {
		t.Errorf("missing usage message:\n%s", s)
	}
	if !strings.Contains(s, "Invalid bound: abc") {
		t.Errorf("missing invalid bound message:\n%s", s)
	}
	if !strings.Contains(s, "Unknown command: frobnicate") {
		t.Errorf("missing unknown command message:\n%s", s)
	}
}

func TestREPLEOF(t *testing.T) {
	r, out := newTestREPL(t, "")
	r.Start()

	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("EOF should end the session politely:\n%s", out.String())
	}
}

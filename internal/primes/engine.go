package primes

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/primegen/internal/bignum"
	"github.com/agbru/primegen/internal/logging"
	"github.com/agbru/primegen/internal/metrics"
	"github.com/agbru/primegen/internal/sieve"
)

const tracerName = "primegen/engine"

// Mode names the four generation strategies.
const (
	ModeCount          = "count"
	ModeSegmentedCount = "segmented_count"
	ModeSieve          = "sieve"
	ModeSegmentedSieve = "segmented_sieve"
)

// AllModes lists every strategy in canonical order.
var AllModes = []string{ModeCount, ModeSegmentedCount, ModeSieve, ModeSegmentedSieve}

// Config assembles an Engine.
type Config struct {
	// SegmentWidth and Workers tune the underlying sieve; zero values
	// select the sieve defaults.
	SegmentWidth uint64
	Workers      int
	// Progress, when non-nil, receives segment completion updates.
	Progress sieve.ProgressFunc
	// Logger, when nil, is replaced by the default stderr logger.
	Logger logging.Logger
	// Metrics, when non-nil, records operation counters and durations.
	Metrics *metrics.SieveMetrics
}

// Engine runs prime generation operations over decimal string bounds.
type Engine struct {
	sieve   *sieve.Sieve
	logger  logging.Logger
	metrics *metrics.SieveMetrics
	tracer  trace.Tracer
}

// New creates an Engine from cfg.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Engine{
		sieve: sieve.New(sieve.Config{
			SegmentWidth: cfg.SegmentWidth,
			Workers:      cfg.Workers,
			Progress:     cfg.Progress,
		}),
		logger:  logger,
		metrics: cfg.Metrics,
		tracer:  otel.Tracer(tracerName),
	}
}

// Count returns the number of primes <= n by trial division.
func (e *Engine) Count(ctx context.Context, n string) (string, error) {
	return e.count(ctx, ModeCount, n, e.sieve.Count)
}

// SegmentedCount returns the number of primes <= n by segmented sieving.
func (e *Engine) SegmentedCount(ctx context.Context, n string) (string, error) {
	return e.count(ctx, ModeSegmentedCount, n, e.sieve.SegmentedCount)
}

// Sieve returns every prime <= n, ascending, by trial division.
func (e *Engine) Sieve(ctx context.Context, n string) ([]string, error) {
	return e.list(ctx, ModeSieve, n, e.sieve.Primes)
}

// SegmentedSieve returns every prime <= n, ascending, by segmented sieving.
func (e *Engine) SegmentedSieve(ctx context.Context, n string) ([]string, error) {
	return e.list(ctx, ModeSegmentedSieve, n, e.sieve.SegmentedPrimes)
}

func (e *Engine) count(ctx context.Context, mode, n string, op func(context.Context, bignum.Nat) (bignum.Nat, error)) (string, error) {
	bound, err := bignum.ParseDecimal(n)
	if err != nil {
		return "", err
	}

	ctx, span := e.startSpan(ctx, mode, n)
	defer span.End()

	start := time.Now()
	result, err := op(ctx, bound)
	e.finish(span, mode, n, start, err)
	if err != nil {
		return "", err
	}

	count := result.String()
	span.SetAttributes(attribute.String("primegen.count", count))
	if e.metrics != nil {
		if v, ok := result.Uint64(); ok {
			e.metrics.AddPrimes(v)
		}
	}
	return count, nil
}

func (e *Engine) list(ctx context.Context, mode, n string, op func(context.Context, bignum.Nat) ([]bignum.Nat, error)) ([]string, error) {
	bound, err := bignum.ParseDecimal(n)
	if err != nil {
		return nil, err
	}

	ctx, span := e.startSpan(ctx, mode, n)
	defer span.End()

	start := time.Now()
	result, err := op(ctx, bound)
	e.finish(span, mode, n, start, err)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(result))
	for i, p := range result {
		out[i] = p.String()
	}
	span.SetAttributes(attribute.Int("primegen.count", len(out)))
	if e.metrics != nil {
		e.metrics.AddPrimes(uint64(len(out)))
	}
	return out, nil
}

func (e *Engine) startSpan(ctx context.Context, mode, n string) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, "engine."+mode,
		trace.WithAttributes(
			attribute.String("primegen.mode", mode),
			attribute.String("primegen.bound", n),
		))
}

func (e *Engine) finish(span trace.Span, mode, n string, start time.Time, err error) {
	elapsed := time.Since(start)
	if e.metrics != nil {
		e.metrics.ObserveOperation(mode, elapsed, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.logger.Error("operation failed", err,
			logging.String("mode", mode),
			logging.String("bound", n))
		return
	}
	e.logger.Debug("operation complete",
		logging.String("mode", mode),
		logging.String("bound", n),
		logging.Float64("seconds", elapsed.Seconds()))
}

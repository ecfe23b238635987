package bench

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/synctbench/urwmutex"
	"github.com/synctbench/urwmutex/internal/rwlog"
)

// Result holds one Config's measured throughput.
type Result struct {
	Variant    Variant
	Readers    int
	Writers    int
	Duration   time.Duration
	ReadOps    int64
	WriteOps   int64
	ReadsPerS  float64
	WritesPerS float64
	TotalPerS  float64
}

// Run executes one warmup pass (untimed, 1/10th the configured duration,
// capped at 50ms) followed by the timed measurement described by cfg, and
// returns the observed throughput. log may be nil.
func Run(ctx context.Context, cfg Config, log *zap.Logger) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	log = rwlog.OrNop(log)

	lock, err := New(cfg.Variant)
	if err != nil {
		return Result{}, err
	}

	warmup := cfg.Duration / 10
	if warmup > 50*time.Millisecond {
		warmup = 50 * time.Millisecond
	}
	log.Debug("warmup pass", zap.String("variant", string(cfg.Variant)), zap.Duration("duration", warmup))
	drive(ctx, lock, cfg.Readers, cfg.Writers, warmup)

	log.Info("timed pass",
		zap.String("variant", string(cfg.Variant)),
		zap.Int("readers", cfg.Readers),
		zap.Int("writers", cfg.Writers),
		zap.Duration("duration", cfg.Duration),
	)
	reads, writes := drive(ctx, lock, cfg.Readers, cfg.Writers, cfg.Duration)

	seconds := cfg.Duration.Seconds()
	return Result{
		Variant:    cfg.Variant,
		Readers:    cfg.Readers,
		Writers:    cfg.Writers,
		Duration:   cfg.Duration,
		ReadOps:    reads,
		WriteOps:   writes,
		ReadsPerS:  float64(reads) / seconds,
		WritesPerS: float64(writes) / seconds,
		TotalPerS:  float64(reads+writes) / seconds,
	}, nil
}

// drive spawns readers reader goroutines and writers writer
// goroutines against lock, releases them together via a manual-reset
// Event, lets them run until d elapses, then cancels and joins.
func drive(parent context.Context, lock synx.RWLock, readers, writers int, d time.Duration) (readOps, writeOps int64) {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()

	start := synx.NewEvent(true, false)
	var reads, writes int64
	var wg sync.WaitGroup

	wg.Add(readers + writers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			start.Wait()
			for ctx.Err() == nil {
				lock.RLock()
				lock.RUnlock()
				atomic.AddInt64(&reads, 1)
			}
		}()
	}
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			start.Wait()
			for ctx.Err() == nil {
				lock.Lock()
				lock.Unlock()
				atomic.AddInt64(&writes, 1)
			}
		}()
	}

	start.Set()
	wg.Wait()
	return atomic.LoadInt64(&reads), atomic.LoadInt64(&writes)
}

// Package batch runs the geodetic conversions over large point sets on a
// fixed worker pool. Trajectory post-processing regularly converts millions
// of points; doing it one call at a time leaves most cores idle.
//
// The conversions are pure functions, so workers write results straight
// into the output slice by index: output order always matches input order
// and no collection channel is needed.
package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bhsphd/ins-nav/transform"
)

// Direction labels used in logs and metrics.
const (
	directionECEFToLLH = "ecef_to_llh"
	directionLLHToECEF = "llh_to_ecef"
)

// Converter runs bulk coordinate conversions on a fixed number of
// goroutines. A Converter is safe for concurrent use.
type Converter struct {
	workers int
	logger  *slog.Logger
}

// NewConverter creates a converter with the given number of workers.
// workers <= 0 defaults to runtime.NumCPU(); a nil logger defaults to
// slog.Default().
func NewConverter(workers int, logger *slog.Logger) *Converter {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		workers: workers,
		logger:  logger,
	}
}

// ECEFToLLHBatch converts ECEF points (meters) to geodetic coordinates,
// preserving input order.
//
// Non-finite input points are not rejected: they convert to non-finite
// outputs per IEEE-754, are counted in metrics, and logged at Debug. On
// context cancellation the partially converted output is discarded and
// ctx.Err() is returned.
func (c *Converter) ECEFToLLHBatch(ctx context.Context, pts []transform.Vec3) ([]transform.LLH, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	start := time.Now()

	out := make([]transform.LLH, len(pts))
	var nonFinite atomic.Int64

	if err := c.run(ctx, len(pts), func(idx int) {
		p := pts[idx]
		if !p.IsFinite() {
			nonFinite.Add(1)
			c.logger.Debug("non-finite input point",
				"direction", directionECEFToLLH,
				"index", idx,
			)
		}
		out[idx] = transform.ECEFToLLH(p.X, p.Y, p.Z)
	}); err != nil {
		return nil, err
	}

	c.finish(directionECEFToLLH, len(pts), int(nonFinite.Load()), start)
	return out, nil
}

// LLHToECEFBatch converts geodetic positions (degrees, meters) to ECEF
// points, preserving input order. Cancellation and non-finite handling
// match ECEFToLLHBatch.
func (c *Converter) LLHToECEFBatch(ctx context.Context, pts []transform.LLH) ([]transform.Vec3, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	start := time.Now()

	out := make([]transform.Vec3, len(pts))
	var nonFinite atomic.Int64

	if err := c.run(ctx, len(pts), func(idx int) {
		p := pts[idx]
		if !p.IsFinite() {
			nonFinite.Add(1)
			c.logger.Debug("non-finite input point",
				"direction", directionLLHToECEF,
				"index", idx,
			)
		}
		x, y, z := transform.LLHToECEF(p.LatDeg, p.LonDeg, p.AltM)
		out[idx] = transform.Vec3{X: x, Y: y, Z: z}
	}); err != nil {
		return nil, err
	}

	c.finish(directionLLHToECEF, len(pts), int(nonFinite.Load()), start)
	return out, nil
}

// run distributes indices [0, n) across the worker pool and blocks until
// all claimed work finishes. Cancellation stops the feed; workers drain
// whatever was already queued before run returns.
func (c *Converter) run(ctx context.Context, n int, convert func(idx int)) error {
	jobs := make(chan int, c.workers*2)

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				convert(idx)
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return ctx.Err()
}

func (c *Converter) finish(direction string, points, nonFinite int, start time.Time) {
	elapsed := time.Since(start)
	recordBatch(direction, points, nonFinite, elapsed.Seconds())
	c.logger.Debug("batch conversion complete",
		"direction", direction,
		"points", points,
		"non_finite", nonFinite,
		"duration", elapsed,
	)
}

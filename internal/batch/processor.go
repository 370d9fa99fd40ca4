// Package batch exports recorded frame sequences to image files.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mocap-zone-configurator/internal/host"
	"mocap-zone-configurator/internal/logging"
	"mocap-zone-configurator/internal/raster"
)

// Config holds all shared resources for an export run.
type Config struct {
	OutputDir        string
	Format           Format
	Render           raster.Options
	Workers          int
	ProgressInterval time.Duration // 0 disables progress logging
	Logger           *zap.Logger
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	Image   string // path relative to OutputDir
	Success bool
	Error   string
}

// FrameName returns the file name of frame i.
func FrameName(i int, f Format) string {
	return fmt.Sprintf("frame_%04d%s", i, f.Ext())
}

// Run renders and writes all frames using a bounded worker pool. Per-frame
// failures are reported in the results; the returned error is non-nil only
// when ctx is cancelled before every frame was attempted.
func Run(ctx context.Context, cfg Config, frames []host.Frame) ([]Result, error) {
	logger := logging.OrNop(cfg.Logger)
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()
	done := make(chan struct{})
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		if cfg.ProgressInterval <= 0 {
			<-done
			return
		}
		ticker := time.NewTicker(cfg.ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Info("export progress",
						zap.Int64("done", p), zap.Int("total", total), zap.Float64("frames_per_sec", rate))
				}
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range frames {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = processFrame(cfg, i, frames[i])
			if !results[i].Success {
				logger.Warn("frame failed", logging.Frame(i), zap.String("error", results[i].Error))
			}
			processed.Add(1)
			return nil
		})
	}
	err := g.Wait()
	close(done)
	<-reporterDone

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		for i := range results {
			if results[i].Image == "" {
				results[i] = Result{Index: i, Error: "cancelled"}
			}
		}
		return results, fmt.Errorf("batch: export cancelled after %d/%d frames: %w", processed.Load(), total, err)
	}

	logger.Info("export complete",
		zap.Int("frames", total), zap.Duration("elapsed", time.Since(start)), logging.Path(cfg.OutputDir))
	return results, nil
}

func processFrame(cfg Config, i int, f host.Frame) Result {
	name := FrameName(i, cfg.Format)
	img := raster.RenderFrame(f, cfg.Render)
	if err := WriteImage(filepath.Join(cfg.OutputDir, name), img, cfg.Format); err != nil {
		return Result{Index: i, Image: name, Error: err.Error()}
	}
	return Result{Index: i, Image: name, Success: true}
}

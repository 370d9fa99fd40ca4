package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"mocap-zone-configurator/internal/batch"
	"mocap-zone-configurator/internal/raster"
	"mocap-zone-configurator/internal/store"
)

var sequenceFlags struct {
	from, to string
	pinned   bool
}

var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Export the camera transition between two capture modes",
	Long: `Starts at --from, switches to --to and records every frame of the camera
transition at render.fps. Frames and a manifest.json go to the output
directory.

Example:
  zonectl sequence --from setup --to bodyOnly -o renders/setup-to-body`,
	RunE: runSequence,
}

func init() {
	f := sequenceCmd.Flags()
	f.StringVar(&sequenceFlags.from, "from", store.Setup.String(), "Starting capture mode")
	f.StringVar(&sequenceFlags.to, "to", store.BodyOnly.String(), "Target capture mode")
	f.BoolVar(&sequenceFlags.pinned, "pinned", false, "Show every dimension label")
}

func runSequence(cmd *cobra.Command, args []string) error {
	from, err := store.ParseMocapMode(sequenceFlags.from)
	if err != nil {
		return err
	}
	to, err := store.ParseMocapMode(sequenceFlags.to)
	if err != nil {
		return err
	}
	imgFormat, err := batch.ParseFormat(cfg.Render.Format)
	if err != nil {
		return err
	}

	st := newStore()
	st.SetMocapMode(from)
	h := newHost(st)
	defer h.Close()
	h.SetPinned(sequenceFlags.pinned)

	fps := cfg.Render.FPS
	step := time.Second / time.Duration(fps)
	st.SetMocapMode(to)
	frames := h.Record(step, time.Now(), fps*10)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Transition %s → %s: %d frames at %d fps\n", from.Label(), st.Snapshot().Mode.Label(), len(frames), fps)
	fmt.Printf("Workers: %d, Output: %s\n", cfg.Workers, cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	bcfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    imgFormat,
		Render: raster.Options{
			Width:        cfg.Render.Size,
			Height:       cfg.Render.Size,
			Supersample:  cfg.Render.Supersample,
			FloorTexture: floorTexture().Resolve(cfg.Render.FloorTexture),
			Recorder:     recorder,
		},
		Workers:          cfg.Workers,
		ProgressInterval: 2 * time.Second,
		Logger:           logger,
	}

	start := time.Now()
	results, runErr := batch.Run(ctx, bcfg, frames)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))
	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, r := range failed[:min(len(failed), 20)] {
			fmt.Printf("  %s: %s\n", batch.FrameName(r.Index, imgFormat), r.Error)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", cfg.OutputDir, err)
	}
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batch.NewManifest(bcfg, fps, frames, results)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if runErr != nil {
		return runErr
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d frames failed", len(failed))
	}
	return nil
}

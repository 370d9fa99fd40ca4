package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"mocap-zone-configurator/internal/host"
	"mocap-zone-configurator/internal/store"
	"mocap-zone-configurator/internal/transition"
)

// Manifest describes one exported sequence.
type Manifest struct {
	RunID     string          `json:"run_id"`
	CreatedAt time.Time       `json:"created_at"`
	Format    Format          `json:"format"`
	FPS       int             `json:"fps"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Final     store.Snapshot  `json:"final"`
	Frames    []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index     int             `json:"index"`
	Image     string          `json:"image"`
	Camera    transition.Pose `json:"camera"`
	Animating bool            `json:"animating"`
	Pinned    bool            `json:"pinned"`
	Error     string          `json:"error,omitempty"`
}

// NewManifest builds the manifest for an export run with a fresh run id.
func NewManifest(cfg Config, fps int, frames []host.Frame, results []Result) Manifest {
	m := Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Format:    cfg.Format,
		FPS:       fps,
		Width:     cfg.Render.Width,
		Height:    cfg.Render.Height,
		Frames:    make([]ManifestEntry, len(frames)),
	}
	if len(frames) > 0 {
		m.Final = frames[len(frames)-1].Snapshot
	}
	for i, f := range frames {
		e := ManifestEntry{
			Index:     i,
			Image:     FrameName(i, cfg.Format),
			Camera:    f.Camera,
			Animating: f.Animating,
			Pinned:    f.Pinned,
		}
		if i < len(results) && !results[i].Success {
			e.Error = results[i].Error
		}
		m.Frames[i] = e
	}
	return m
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}

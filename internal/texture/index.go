package texture

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir for supported images. When several files share a
// stem the one earliest in Extensions wins.
func BuildIndex(dir string) (*Index, error) {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !Supported(path) {
			return nil
		}
		ext := filepath.Ext(path)
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), ext))

		existing, exists := idx.entries[stem]
		if !exists || priority(ext) < priority(filepath.Ext(existing)) {
			idx.entries[stem] = path
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("texture: index %s: %w", dir, err)
	}
	return idx, nil
}

// ResolvePath finds the file for a texture name. Names may carry an
// extension or directory; only the stem is matched.
func (idx *Index) ResolvePath(name string) (string, bool) {
	if idx == nil {
		return "", false
	}
	base := filepath.Base(name)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	p, ok := idx.entries[stem]
	return p, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

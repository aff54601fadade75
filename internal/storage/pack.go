package storage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jwebster45206/social-steps/pkg/scenario"
)

// packStore is the filesystem half shared by every driver: content packs
// live under <dataDir>/packs as JSON files.
type packStore struct {
	dataDir string
	logger  *slog.Logger
}

// ListPacks maps pack names to their filenames. Unreadable or malformed
// files are skipped with a warning; one bad pack should not hide the rest.
func (p *packStore) ListPacks() (map[string]string, error) {
	packsDir := filepath.Join(p.dataDir, "packs")
	packs := make(map[string]string)

	err := filepath.WalkDir(packsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		file, err := os.ReadFile(path)
		if err != nil {
			p.logger.Warn("Failed to read pack file", "path", path, "error", err)
			return nil
		}

		var pack scenario.Pack
		if err := json.Unmarshal(file, &pack); err != nil {
			p.logger.Warn("Failed to unmarshal pack file", "path", path, "error", err)
			return nil
		}

		name := pack.Name
		if name == "" {
			name = filepath.Base(path)
		}
		packs[name] = filepath.Base(path)
		return nil
	})

	if err != nil {
		p.logger.Error("Failed to walk packs directory", "error", err)
		return nil, fmt.Errorf("failed to list packs: %w", err)
	}

	return packs, nil
}

// GetPack loads one pack by filename.
func (p *packStore) GetPack(filename string) (*scenario.Pack, error) {
	path := filepath.Join(p.dataDir, "packs", filename)

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("pack not found: %s", filename)
		}
		return nil, fmt.Errorf("failed to read pack file: %w", err)
	}

	var pack scenario.Pack
	if err := json.Unmarshal(file, &pack); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pack: %w", err)
	}

	return &pack, nil
}

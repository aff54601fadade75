package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jwebster45206/social-steps/pkg/scenario"
	"github.com/jwebster45206/social-steps/pkg/state"
)

// FileStorage implements Storage entirely on the filesystem. Snapshots are
// written under <dataDir>/snapshots, one JSON file per session.
type FileStorage struct {
	packStore
}

// Ensure FileStorage implements Storage interface
var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates a filesystem storage instance rooted at dataDir.
func NewFileStorage(dataDir string, logger *slog.Logger) *FileStorage {
	if dataDir == "" {
		dataDir = "./data"
	}
	return &FileStorage{
		packStore: packStore{dataDir: dataDir, logger: logger},
	}
}

func (f *FileStorage) snapshotPath(id uuid.UUID) string {
	return filepath.Join(f.dataDir, "snapshots", id.String()+".json")
}

func (f *FileStorage) Ping(ctx context.Context) error {
	if _, err := os.Stat(f.dataDir); err != nil {
		return fmt.Errorf("data dir not accessible: %w", err)
	}
	return nil
}

func (f *FileStorage) Close() error {
	return nil
}

func (f *FileStorage) SaveSnapshot(ctx context.Context, id uuid.UUID, snap *state.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		f.logger.Error("Failed to marshal snapshot", "uuid", id, "error", err)
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	path := f.snapshotPath(id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshots dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		f.logger.Error("Failed to write snapshot", "uuid", id, "error", err)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

func (f *FileStorage) LoadSnapshot(ctx context.Context, id uuid.UUID) (*state.Snapshot, error) {
	data, err := os.ReadFile(f.snapshotPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Warn("Snapshot not found", "uuid", id)
			return nil, nil // Return nil for not found
		}
		f.logger.Error("Failed to read snapshot", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap state.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		f.logger.Error("Failed to unmarshal snapshot", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snap, nil
}

func (f *FileStorage) DeleteSnapshot(ctx context.Context, id uuid.UUID) error {
	if err := os.Remove(f.snapshotPath(id)); err != nil && !os.IsNotExist(err) {
		f.logger.Error("Failed to delete snapshot", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

func (f *FileStorage) ListPacks(ctx context.Context) (map[string]string, error) {
	return f.packStore.ListPacks()
}

func (f *FileStorage) GetPack(ctx context.Context, filename string) (*scenario.Pack, error) {
	return f.packStore.GetPack(filename)
}

package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jwebster45206/social-steps/pkg/scenario"
	"github.com/jwebster45206/social-steps/pkg/state"
)

// Storage persists session snapshots and loads content packs. Snapshots
// are keyed by session ID; which backend holds them depends on the driver.
// Packs are always filesystem-backed.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Snapshot operations (driver-backed)
	SaveSnapshot(ctx context.Context, id uuid.UUID, snap *state.Snapshot) error
	LoadSnapshot(ctx context.Context, id uuid.UUID) (*state.Snapshot, error)
	DeleteSnapshot(ctx context.Context, id uuid.UUID) error

	// Pack operations (filesystem-backed)
	ListPacks(ctx context.Context) (map[string]string, error)
	GetPack(ctx context.Context, filename string) (*scenario.Pack, error)
}

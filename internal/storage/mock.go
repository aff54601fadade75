package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jwebster45206/social-steps/pkg/scenario"
	"github.com/jwebster45206/social-steps/pkg/state"
)

// MockStorage is an in-memory Storage for tests.
type MockStorage struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID]*state.Snapshot
	packs     map[string]*scenario.Pack
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		snapshots: make(map[uuid.UUID]*state.Snapshot),
		packs:     make(map[string]*scenario.Pack),
	}
}

// AddPack registers a pack under the given filename
func (m *MockStorage) AddPack(filename string, p *scenario.Pack) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.packs[filename] = p
}

func (m *MockStorage) Ping(ctx context.Context) error {
	return nil
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) SaveSnapshot(ctx context.Context, id uuid.UUID, snap *state.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *snap
	m.snapshots[id] = &copied
	return nil
}

func (m *MockStorage) LoadSnapshot(ctx context.Context, id uuid.UUID) (*state.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.snapshots[id]
	if !ok {
		return nil, nil
	}
	copied := *snap
	return &copied, nil
}

func (m *MockStorage) DeleteSnapshot(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, id)
	return nil
}

func (m *MockStorage) ListPacks(ctx context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	packs := make(map[string]string, len(m.packs))
	for filename, p := range m.packs {
		name := p.Name
		if name == "" {
			name = filename
		}
		packs[name] = filename
	}
	return packs, nil
}

func (m *MockStorage) GetPack(ctx context.Context, filename string) (*scenario.Pack, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.packs[filename]
	if !ok {
		return nil, errors.New("pack not found: " + filename)
	}
	return p, nil
}

package state

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jwebster45206/social-steps/pkg/scenario"
)

// Snapshot is the manually exported session state. Fields are pointers so
// a partial snapshot can be imported: absent fields leave the session
// untouched.
type Snapshot struct {
	Player    *Position `json:"player,omitempty"`
	Comfort   *int      `json:"comfort,omitempty"`
	Score     *int      `json:"score,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// Snapshot captures the current player position, comfort and score.
func (gs *GameState) Snapshot() *Snapshot {
	player := gs.Player
	comfort := gs.Comfort
	score := gs.Score
	return &Snapshot{
		Player:    &player,
		Comfort:   &comfort,
		Score:     &score,
		Timestamp: time.Now().Unix(),
	}
}

// Export serializes the current snapshot as JSON.
func (gs *GameState) Export() ([]byte, error) {
	data, err := json.MarshalIndent(gs.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Import parses a snapshot blob and applies it. A malformed blob or an
// invalid snapshot leaves the session untouched.
func (gs *GameState) Import(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return gs.Apply(&snap)
}

// Apply overwrites session state with the snapshot's fields. All fields
// are validated before any is assigned, so a rejected snapshot changes
// nothing. An imported position must be walkable on the session grid, and
// a score may not be negative; out-of-range comfort is re-clamped rather
// than rejected.
func (gs *GameState) Apply(snap *Snapshot) error {
	if snap.Player != nil && !gs.Grid.IsWalkable(snap.Player.X, snap.Player.Y) {
		return fmt.Errorf("snapshot position (%d,%d) is not walkable", snap.Player.X, snap.Player.Y)
	}
	if snap.Score != nil && *snap.Score < 0 {
		return fmt.Errorf("snapshot score %d is negative", *snap.Score)
	}

	if snap.Player != nil {
		gs.Player = *snap.Player
	}
	if snap.Comfort != nil {
		gs.Comfort = clamp(*snap.Comfort, scenario.ComfortMin, scenario.ComfortMax)
	}
	if snap.Score != nil {
		gs.Score = *snap.Score
	}
	gs.touch()
	return nil
}

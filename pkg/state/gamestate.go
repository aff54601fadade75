package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/social-steps/pkg/grid"
	"github.com/jwebster45206/social-steps/pkg/scenario"
)

// Position is a player or NPC location on the grid. A Position held by
// GameState is always in bounds and never on a wall; every mutation
// re-checks the invariant.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Manhattan returns the Manhattan distance to other.
func (p Position) Manhattan(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Feedback is the last-resolved-choice record shown while a scenario
// dialog is open.
type Feedback struct {
	Correct bool   `json:"correct"`
	Why     string `json:"why"`
}

// Interaction is the scenario dialog currently being presented. It exists
// only between a successful interact and an explicit close.
type Interaction struct {
	NPC      *scenario.NPC
	Scenario *scenario.Scenario
	Feedback *Feedback
}

// StartComfort is the comfort level at session start, mid-scale.
const StartComfort = 5

// GameState owns all mutable session state. It is created once per session
// and mutated in place; rendering reads it, never the other way around.
type GameState struct {
	ID      uuid.UUID
	Grid    *grid.Grid
	Pack    *scenario.Pack
	Player  Position
	Comfort int
	Score   int

	// Active is non-nil while a scenario dialog is open. Movement is
	// refused while it is set.
	Active *Interaction

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a session on g with the given pack, placing the player at
// start. The start position must be walkable.
func New(g *grid.Grid, pack *scenario.Pack, start Position) (*GameState, error) {
	if !g.IsWalkable(start.X, start.Y) {
		return nil, fmt.Errorf("start position (%d,%d) is not walkable", start.X, start.Y)
	}
	now := time.Now()
	return &GameState{
		ID:        uuid.New(),
		Grid:      g,
		Pack:      pack,
		Player:    start,
		Comfort:   StartComfort,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (gs *GameState) touch() {
	gs.UpdatedAt = time.Now()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package state

import "github.com/jwebster45206/social-steps/pkg/grid"

// Direction is a one-axis movement vector. Diagonals are not a thing:
// each keypress moves at most one axis.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

// Move applies one directional input and reports whether the player moved.
// The candidate cell is clamped to the grid and must be walkable; a blocked
// move is silently rejected. Movement is refused outright while a scenario
// dialog is open.
func (gs *GameState) Move(d Direction) bool {
	if gs.Active != nil {
		return false
	}

	candidate := Position{
		X: clamp(gs.Player.X+d.DX, 0, grid.Width-1),
		Y: clamp(gs.Player.Y+d.DY, 0, grid.Height-1),
	}
	if !gs.Grid.IsWalkable(candidate.X, candidate.Y) {
		return false
	}

	gs.Player = candidate
	gs.touch()
	return true
}

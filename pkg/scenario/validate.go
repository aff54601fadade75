package scenario

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/social-steps/pkg/grid"
)

// Validate checks a pack against the shape the game requires: required
// fields, unique IDs, non-empty choice lists, NPC positions that exist on
// the grid, and referential integrity from NPCs to scenarios. A pack that
// fails validation is rejected wholesale; the caller keeps whatever pack it
// had before.
func (p *Pack) Validate(g *grid.Grid) error {
	var errs []string

	if len(p.Scenarios) == 0 {
		errs = append(errs, "pack has no scenarios")
	}

	scenarioIDs := make(map[string]bool, len(p.Scenarios))
	for i, s := range p.Scenarios {
		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("scenario %d: missing id", i))
			continue
		}
		if scenarioIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("scenario %q: duplicate id", s.ID))
		}
		scenarioIDs[s.ID] = true

		if s.Prompt == "" {
			errs = append(errs, fmt.Sprintf("scenario %q: missing prompt", s.ID))
		}
		if len(s.Choices) == 0 {
			errs = append(errs, fmt.Sprintf("scenario %q: no choices", s.ID))
		}

		choiceIDs := make(map[string]bool, len(s.Choices))
		for j, c := range s.Choices {
			if c.ID == "" {
				errs = append(errs, fmt.Sprintf("scenario %q: choice %d missing id", s.ID, j))
				continue
			}
			if choiceIDs[c.ID] {
				errs = append(errs, fmt.Sprintf("scenario %q: duplicate choice id %q", s.ID, c.ID))
			}
			choiceIDs[c.ID] = true
			if c.Label == "" {
				errs = append(errs, fmt.Sprintf("scenario %q: choice %q missing label", s.ID, c.ID))
			}
			if c.Why == "" {
				errs = append(errs, fmt.Sprintf("scenario %q: choice %q missing why", s.ID, c.ID))
			}
		}
	}

	npcIDs := make(map[string]bool, len(p.NPCs))
	for i, n := range p.NPCs {
		if n.ID == "" {
			errs = append(errs, fmt.Sprintf("npc %d: missing id", i))
			continue
		}
		if npcIDs[n.ID] {
			errs = append(errs, fmt.Sprintf("npc %q: duplicate id", n.ID))
		}
		npcIDs[n.ID] = true

		if n.Name == "" {
			errs = append(errs, fmt.Sprintf("npc %q: missing name", n.ID))
		}
		if g != nil && !g.IsWalkable(n.X, n.Y) {
			errs = append(errs, fmt.Sprintf("npc %q: position (%d,%d) is not walkable", n.ID, n.X, n.Y))
		}
		if n.ScenarioID == "" {
			errs = append(errs, fmt.Sprintf("npc %q: missing scenarioId", n.ID))
		} else if !scenarioIDs[n.ScenarioID] {
			errs = append(errs, fmt.Sprintf("npc %q: scenarioId %q does not exist", n.ID, n.ScenarioID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid pack:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}

package state

import (
	"errors"

	"github.com/jwebster45206/social-steps/pkg/scenario"
)

// Expected interaction outcomes. These degrade to a user-facing notice,
// never a crash.
var (
	// ErrNoNPCNearby means no NPC is within Manhattan distance 1.
	ErrNoNPCNearby = errors.New("no one is close enough to talk to")

	// ErrNoScenario means the nearest NPC references a scenario that does
	// not exist in the loaded pack.
	ErrNoScenario = errors.New("they have nothing to talk about right now")

	// ErrNoInteraction means a choice was resolved with no dialog open.
	ErrNoInteraction = errors.New("no scenario is open")
)

// InteractRange is the maximum Manhattan distance at which an NPC can be
// addressed.
const InteractRange = 1

// Interact opens the scenario of the closest addressable NPC. NPCs are
// scanned in pack order and the first within range wins; this is the
// tie-break, not nearest-first. Returns the selected NPC even when its
// scenario reference dangles, so the caller can name who stayed silent.
func (gs *GameState) Interact() (*scenario.NPC, error) {
	for i := range gs.Pack.NPCs {
		npc := &gs.Pack.NPCs[i]
		if gs.Player.Manhattan(Position{X: npc.X, Y: npc.Y}) > InteractRange {
			continue
		}

		sc, ok := gs.Pack.Scenario(npc.ScenarioID)
		if !ok {
			return npc, ErrNoScenario
		}

		gs.Active = &Interaction{NPC: npc, Scenario: sc}
		gs.touch()
		return npc, nil
	}
	return nil, ErrNoNPCNearby
}

// ResolveChoice evaluates a choice of the open scenario and applies its
// deltas: comfort clamps into [0,10], score only grows. The dialog stays
// open with the feedback recorded; deltas apply on every attempt.
func (gs *GameState) ResolveChoice(choiceID string) (Feedback, error) {
	if gs.Active == nil {
		return Feedback{}, ErrNoInteraction
	}

	out, err := gs.Active.Scenario.Resolve(choiceID)
	if err != nil {
		return Feedback{}, err
	}

	gs.Comfort = clamp(gs.Comfort+out.ComfortDelta, scenario.ComfortMin, scenario.ComfortMax)
	gs.Score += out.ScoreDelta

	fb := Feedback{Correct: out.Correct, Why: out.Why}
	gs.Active.Feedback = &fb
	gs.touch()
	return fb, nil
}

// CloseInteraction dismisses the open dialog with no other side effects.
// Closing when nothing is open is a no-op.
func (gs *GameState) CloseInteraction() {
	if gs.Active == nil {
		return
	}
	gs.Active = nil
	gs.touch()
}

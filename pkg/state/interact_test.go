package state

import (
	"errors"
	"testing"

	"github.com/jwebster45206/social-steps/pkg/grid"
	"github.com/jwebster45206/social-steps/pkg/scenario"
)

func TestInteract_OpensAdjacentNPCScenario(t *testing.T) {
	tests := []struct {
		name   string
		player Position
		wantID string
	}{
		{"directly below guide", Position{2, 3}, "unclear-instruction"},
		{"same cell as guide", Position{2, 2}, "unclear-instruction"},
		{"next to mia", Position{7, 5}, "turn-taking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestState(t, tt.player)
			npc, err := gs.Interact()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if gs.Active == nil {
				t.Fatal("Expected an open interaction")
			}
			if gs.Active.Scenario.ID != tt.wantID {
				t.Errorf("Opened scenario %q, want %q", gs.Active.Scenario.ID, tt.wantID)
			}
			if gs.Active.Feedback != nil {
				t.Error("Expected no feedback on a fresh interaction")
			}
			if npc == nil || npc.ScenarioID != tt.wantID {
				t.Errorf("Unexpected NPC returned: %+v", npc)
			}
		})
	}
}

func TestInteract_NoNPCNearbyChangesNothing(t *testing.T) {
	gs := newTestState(t, Position{X: 9, Y: 2}) // open floor, no NPC in range
	comfort, score := gs.Comfort, gs.Score

	npc, err := gs.Interact()
	if !errors.Is(err, ErrNoNPCNearby) {
		t.Fatalf("Expected ErrNoNPCNearby, got %v", err)
	}
	if npc != nil {
		t.Errorf("Expected no NPC, got %+v", npc)
	}
	if gs.Active != nil {
		t.Error("Expected no interaction to open")
	}
	if gs.Comfort != comfort || gs.Score != score {
		t.Error("Expected comfort and score to be unchanged")
	}
}

func TestInteract_ListOrderTieBreak(t *testing.T) {
	pack := &scenario.Pack{
		Scenarios: []scenario.Scenario{
			{ID: "first", Prompt: "?", Choices: []scenario.Choice{{ID: "a", Label: "A", Why: "w"}}},
			{ID: "second", Prompt: "?", Choices: []scenario.Choice{{ID: "a", Label: "A", Why: "w"}}},
		},
		NPCs: []scenario.NPC{
			// Both NPCs are within range of (2,2); the player is standing
			// on the second, but pack order wins.
			{ID: "far", Name: "far", X: 2, Y: 3, ScenarioID: "first"},
			{ID: "near", Name: "near", X: 2, Y: 2, ScenarioID: "second"},
		},
	}
	gs, err := New(grid.Default(), pack, Position{X: 2, Y: 2})
	if err != nil {
		t.Fatalf("Failed to create game state: %v", err)
	}

	if _, err := gs.Interact(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gs.Active.Scenario.ID != "first" {
		t.Errorf("Expected pack order to win, got scenario %q", gs.Active.Scenario.ID)
	}
}

func TestInteract_DanglingScenarioReference(t *testing.T) {
	pack := &scenario.Pack{
		Scenarios: []scenario.Scenario{
			{ID: "real", Prompt: "?", Choices: []scenario.Choice{{ID: "a", Label: "A", Why: "w"}}},
		},
		NPCs: []scenario.NPC{
			{ID: "ghost", Name: "ghost", X: 2, Y: 2, ScenarioID: "missing"},
		},
	}
	gs, err := New(grid.Default(), pack, Position{X: 2, Y: 3})
	if err != nil {
		t.Fatalf("Failed to create game state: %v", err)
	}

	npc, interactErr := gs.Interact()
	if !errors.Is(interactErr, ErrNoScenario) {
		t.Fatalf("Expected ErrNoScenario, got %v", interactErr)
	}
	if npc == nil || npc.ID != "ghost" {
		t.Errorf("Expected the silent NPC to be returned, got %+v", npc)
	}
	if gs.Active != nil {
		t.Error("Expected no interaction to open for a dangling reference")
	}
}

func TestResolveChoice_Deltas(t *testing.T) {
	tests := []struct {
		name        string
		choiceID    string
		wantComfort int
		wantScore   int
		wantCorrect bool
	}{
		{"correct adds comfort and score", "ask-clarify", StartComfort + 2, 100, true},
		{"wrong costs comfort only", "give-up", StartComfort - 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestState(t, Position{X: 2, Y: 3})
			if _, err := gs.Interact(); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			fb, err := gs.ResolveChoice(tt.choiceID)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if fb.Correct != tt.wantCorrect {
				t.Errorf("Feedback correct = %v, want %v", fb.Correct, tt.wantCorrect)
			}
			if fb.Why == "" {
				t.Error("Expected feedback to carry the choice's why text")
			}
			if gs.Comfort != tt.wantComfort {
				t.Errorf("Comfort = %d, want %d", gs.Comfort, tt.wantComfort)
			}
			if gs.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", gs.Score, tt.wantScore)
			}
			if gs.Active == nil {
				t.Error("Expected dialog to stay open after resolving")
			}
			if gs.Active.Feedback == nil || *gs.Active.Feedback != fb {
				t.Error("Expected feedback to be recorded on the interaction")
			}
		})
	}
}

func TestResolveChoice_ComfortStaysBounded(t *testing.T) {
	gs := newTestState(t, Position{X: 2, Y: 3})
	if _, err := gs.Interact(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i < 20; i++ {
		if _, err := gs.ResolveChoice("ask-clarify"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if gs.Comfort < scenario.ComfortMin || gs.Comfort > scenario.ComfortMax {
			t.Fatalf("Comfort %d out of bounds after %d correct answers", gs.Comfort, i+1)
		}
	}
	if gs.Comfort != scenario.ComfortMax {
		t.Errorf("Comfort = %d, want clamped max %d", gs.Comfort, scenario.ComfortMax)
	}

	for i := 0; i < 30; i++ {
		if _, err := gs.ResolveChoice("give-up"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if gs.Comfort < scenario.ComfortMin || gs.Comfort > scenario.ComfortMax {
			t.Fatalf("Comfort %d out of bounds after %d wrong answers", gs.Comfort, i+1)
		}
	}
	if gs.Comfort != scenario.ComfortMin {
		t.Errorf("Comfort = %d, want clamped min %d", gs.Comfort, scenario.ComfortMin)
	}
}

func TestResolveChoice_ScoreNeverDecreases(t *testing.T) {
	gs := newTestState(t, Position{X: 2, Y: 3})
	if _, err := gs.Interact(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Deltas apply on every attempt, wrong answers included. Score must
	// still be non-decreasing over any sequence.
	sequence := []string{"give-up", "ask-clarify", "copy-neighbor", "ask-clarify", "give-up"}
	last := gs.Score
	for _, choiceID := range sequence {
		if _, err := gs.ResolveChoice(choiceID); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if gs.Score < last {
			t.Fatalf("Score decreased from %d to %d", last, gs.Score)
		}
		last = gs.Score
	}
	if gs.Score != 200 {
		t.Errorf("Score = %d, want 200 after two correct answers", gs.Score)
	}
}

func TestResolveChoice_Errors(t *testing.T) {
	gs := newTestState(t, Position{X: 2, Y: 3})

	if _, err := gs.ResolveChoice("ask-clarify"); !errors.Is(err, ErrNoInteraction) {
		t.Fatalf("Expected ErrNoInteraction, got %v", err)
	}

	if _, err := gs.Interact(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	comfort, score := gs.Comfort, gs.Score
	if _, err := gs.ResolveChoice("bogus"); !errors.Is(err, scenario.ErrUnknownChoice) {
		t.Fatalf("Expected ErrUnknownChoice, got %v", err)
	}
	if gs.Comfort != comfort || gs.Score != score {
		t.Error("Expected an unknown choice to change nothing")
	}
}

func TestCloseInteraction(t *testing.T) {
	gs := newTestState(t, Position{X: 2, Y: 3})

	// Closing with nothing open is a no-op.
	gs.CloseInteraction()

	if _, err := gs.Interact(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	comfort, score := gs.Comfort, gs.Score

	gs.CloseInteraction()
	if gs.Active != nil {
		t.Error("Expected interaction to be cleared")
	}
	if gs.Comfort != comfort || gs.Score != score {
		t.Error("Expected close to have no side effects")
	}
}

// TestGuidedTour walks the scripted opening: five presses right, two down,
// then talking to the guide and asking for clarification.
func TestGuidedTour(t *testing.T) {
	gs := newTestState(t, Position{X: 1, Y: 1})

	for _, d := range []Direction{Right, Right, Right, Right, Right, Down, Down} {
		gs.Move(d)
	}
	// The wall at (3,1) pinches the corridor, so the player ends up just
	// below the guide.
	if gs.Player != (Position{X: 2, Y: 3}) {
		t.Fatalf("Player at %+v, expected (2,3)", gs.Player)
	}

	if _, err := gs.Interact(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gs.Active.Scenario.ID != "unclear-instruction" {
		t.Fatalf("Opened scenario %q, want unclear-instruction", gs.Active.Scenario.ID)
	}

	fb, err := gs.ResolveChoice("ask-clarify")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !fb.Correct {
		t.Error("Expected ask-clarify to be correct")
	}
	if gs.Comfort != StartComfort+2 {
		t.Errorf("Comfort = %d, want %d", gs.Comfort, StartComfort+2)
	}
	if gs.Score != 100 {
		t.Errorf("Score = %d, want 100", gs.Score)
	}
}

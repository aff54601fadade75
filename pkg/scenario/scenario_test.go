package scenario

import (
	"errors"
	"testing"
)

func testScenario() *Scenario {
	return &Scenario{
		ID:     "test",
		Cue:    "A test cue",
		Prompt: "What do you do?",
		Choices: []Choice{
			{ID: "right", Label: "The right thing", IsCorrect: true, Why: "Because it works."},
			{ID: "wrong", Label: "The wrong thing", IsCorrect: false, Why: "Because it backfires."},
		},
	}
}

func TestScenario_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		choiceID string
		want     Outcome
		wantErr  error
	}{
		{
			name:     "correct choice",
			choiceID: "right",
			want: Outcome{
				Correct:      true,
				ComfortDelta: CorrectComfortDelta,
				ScoreDelta:   CorrectScoreDelta,
				Why:          "Because it works.",
			},
		},
		{
			name:     "wrong choice",
			choiceID: "wrong",
			want: Outcome{
				Correct:      false,
				ComfortDelta: WrongComfortDelta,
				ScoreDelta:   0,
				Why:          "Because it backfires.",
			},
		},
		{
			name:     "unknown choice",
			choiceID: "missing",
			wantErr:  ErrUnknownChoice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := testScenario().Resolve(tt.choiceID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.choiceID, got, tt.want)
			}
		})
	}
}

func TestScenario_ResolveIsRepeatable(t *testing.T) {
	s := testScenario()

	// A scenario holds no answered state: the same choice produces the same
	// outcome every time.
	for i := 0; i < 3; i++ {
		out, err := s.Resolve("right")
		if err != nil {
			t.Fatalf("Unexpected error on attempt %d: %v", i, err)
		}
		if out.ScoreDelta != CorrectScoreDelta {
			t.Errorf("Attempt %d: expected score delta %d, got %d", i, CorrectScoreDelta, out.ScoreDelta)
		}
	}
}

func TestPack_ScenarioLookup(t *testing.T) {
	p := DefaultPack()

	s, ok := p.Scenario("unclear-instruction")
	if !ok {
		t.Fatal("Expected to find scenario unclear-instruction")
	}
	if _, ok := s.Choice("ask-clarify"); !ok {
		t.Error("Expected unclear-instruction to contain choice ask-clarify")
	}

	if _, ok := p.Scenario("nope"); ok {
		t.Error("Expected lookup of unknown id to fail")
	}
}

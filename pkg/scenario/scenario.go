package scenario

import "errors"

// Choice is one selectable response to a scenario.
type Choice struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsCorrect bool   `json:"isCorrect"`
	Why       string `json:"why"`
}

// Scenario is a social situation presented when the player approaches an NPC.
type Scenario struct {
	ID      string   `json:"id"`
	Cue     string   `json:"cue"`     // the social signal the player should notice
	Context string   `json:"context"` // what is happening around the player
	Prompt  string   `json:"prompt"`  // the question put to the player
	Choices []Choice `json:"choices"`
}

// NPC is a fixed-position character that triggers a linked scenario.
type NPC struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Sprite     string `json:"sprite,omitempty"`
	ScenarioID string `json:"scenarioId"`
}

// Pack bundles the scenarios and NPCs for one session. Packs are loaded
// whole at session start and only ever replaced wholesale.
type Pack struct {
	Name      string     `json:"name,omitempty"`
	Scenarios []Scenario `json:"scenarios"`
	NPCs      []NPC      `json:"npcs"`
}

// Scenario looks up a scenario by ID. Pack order is preserved, so the
// lookup is a linear scan.
func (p *Pack) Scenario(id string) (*Scenario, bool) {
	for i := range p.Scenarios {
		if p.Scenarios[i].ID == id {
			return &p.Scenarios[i], true
		}
	}
	return nil, false
}

// Choice deltas. Comfort is clamped into [ComfortMin, ComfortMax] when a
// delta is applied; score only ever increases.
const (
	ComfortMin = 0
	ComfortMax = 10

	CorrectComfortDelta = 2
	WrongComfortDelta   = -1
	CorrectScoreDelta   = 100
)

// ErrUnknownChoice is returned when a choice ID does not belong to the
// scenario being resolved.
var ErrUnknownChoice = errors.New("unknown choice")

// Outcome is the effect of resolving one choice. ComfortDelta is the raw
// delta before clamping.
type Outcome struct {
	Correct      bool
	ComfortDelta int
	ScoreDelta   int
	Why          string
}

// Choice looks up a choice by ID within the scenario.
func (s *Scenario) Choice(id string) (*Choice, bool) {
	for i := range s.Choices {
		if s.Choices[i].ID == id {
			return &s.Choices[i], true
		}
	}
	return nil, false
}

// Resolve evaluates one choice of the scenario. A scenario tracks no
// answered state: every resolution produces its full outcome, however many
// times the player has tried before.
func (s *Scenario) Resolve(choiceID string) (Outcome, error) {
	c, ok := s.Choice(choiceID)
	if !ok {
		return Outcome{}, ErrUnknownChoice
	}
	if c.IsCorrect {
		return Outcome{
			Correct:      true,
			ComfortDelta: CorrectComfortDelta,
			ScoreDelta:   CorrectScoreDelta,
			Why:          c.Why,
		}, nil
	}
	return Outcome{
		Correct:      false,
		ComfortDelta: WrongComfortDelta,
		Why:          c.Why,
	}, nil
}

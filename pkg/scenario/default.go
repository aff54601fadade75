package scenario

// DefaultPack returns the built-in classroom pack. The game is playable
// with no external configuration; educator-authored packs replace this
// wholesale when they validate.
func DefaultPack() *Pack {
	return &Pack{
		Name: "Classroom",
		Scenarios: []Scenario{
			{
				ID:      "unclear-instruction",
				Cue:     "Ms. Rivera just gave the class an instruction, but you missed part of it.",
				Context: "Everyone else is opening their workbooks. You are not sure which page.",
				Prompt:  "What do you do?",
				Choices: []Choice{
					{
						ID:        "ask-clarify",
						Label:     "Raise your hand and ask her to repeat the page number",
						IsCorrect: true,
						Why:       "Asking for clarification is always okay. It shows you want to do the task right.",
					},
					{
						ID:        "copy-neighbor",
						Label:     "Peek at your neighbor's book and copy them without asking",
						IsCorrect: false,
						Why:       "Guessing from a peek can go wrong, and your neighbor may find it intrusive. Asking is safer.",
					},
					{
						ID:        "give-up",
						Label:     "Close the book and wait for someone to notice",
						IsCorrect: false,
						Why:       "Waiting silently leaves you stuck. People usually cannot tell you need help unless you ask.",
					},
				},
			},
			{
				ID:      "turn-taking",
				Cue:     "Mia is telling a long story about her weekend.",
				Context: "You have something exciting to share too, and it is hard to wait.",
				Prompt:  "What is the best way to share your story?",
				Choices: []Choice{
					{
						ID:        "wait-turn",
						Label:     "Listen until she finishes, then share yours",
						IsCorrect: true,
						Why:       "Waiting for a natural pause shows respect and makes people want to listen to you too.",
					},
					{
						ID:        "talk-over",
						Label:     "Start your story while she is still talking",
						IsCorrect: false,
						Why:       "Talking over someone usually feels dismissive to them, even if you did not mean it that way.",
					},
					{
						ID:        "walk-away",
						Label:     "Walk away since she is taking too long",
						IsCorrect: false,
						Why:       "Leaving mid-story can hurt feelings. A short wait keeps the friendship comfortable.",
					},
				},
			},
			{
				ID:      "loud-room",
				Cue:     "The cafeteria is suddenly very loud and Sam notices you covering your ears.",
				Context: "The noise is making it hard to think. Sam asks if you are okay.",
				Prompt:  "How do you respond?",
				Choices: []Choice{
					{
						ID:        "say-need-break",
						Label:     "Tell Sam the noise is a lot and ask to sit somewhere quieter",
						IsCorrect: true,
						Why:       "Naming what you need is a strong move. Most people are glad to help once they know.",
					},
					{
						ID:        "pretend-fine",
						Label:     "Say you are fine and stay uncomfortable",
						IsCorrect: false,
						Why:       "Hiding discomfort tends to make it grow. Friends cannot support what they do not know about.",
					},
				},
			},
			{
				ID:      "joining-in",
				Cue:     "Coach Díaz's group is starting a game and you want to join.",
				Context: "The teams are already forming by the far wall.",
				Prompt:  "How do you join the game?",
				Choices: []Choice{
					{
						ID:        "ask-to-join",
						Label:     "Walk over and ask if you can play",
						IsCorrect: true,
						Why:       "A direct, friendly ask is the clearest signal. It gives the group an easy way to say yes.",
					},
					{
						ID:        "hover-silently",
						Label:     "Stand nearby and hope someone invites you",
						IsCorrect: false,
						Why:       "Hovering is easy to miss or misread. Asking out loud works far more often.",
					},
					{
						ID:        "grab-ball",
						Label:     "Grab the ball so they have to include you",
						IsCorrect: false,
						Why:       "Taking the ball forces the group to react and usually starts the game off on the wrong foot.",
					},
				},
			},
		},
		NPCs: []NPC{
			{ID: "guide", Name: "ms. rivera", X: 2, Y: 2, Sprite: "R", ScenarioID: "unclear-instruction"},
			{ID: "mia", Name: "mia", X: 8, Y: 5, Sprite: "M", ScenarioID: "turn-taking"},
			{ID: "sam", Name: "sam", X: 12, Y: 9, Sprite: "S", ScenarioID: "loud-room"},
			{ID: "coach", Name: "coach díaz", X: 15, Y: 3, Sprite: "C", ScenarioID: "joining-in"},
		},
	}
}

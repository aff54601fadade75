package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/social-steps/internal/config"
	"github.com/jwebster45206/social-steps/internal/storage"
	"github.com/jwebster45206/social-steps/pkg/grid"
	"github.com/jwebster45206/social-steps/pkg/scenario"
	"github.com/jwebster45206/social-steps/pkg/state"
)

const (
	logHeight  = 6
	modalWidth = 64
)

// GameUI is the BubbleTea model that runs the game.
// https://github.com/charmbracelet/bubbletea
type GameUI struct {
	cfg    *config.Config
	logger *slog.Logger
	store  storage.Storage
	gs     *state.GameState

	keys    keyMap
	logView viewport.Model
	log     []string

	// Index of the highlighted choice while a scenario dialog is open.
	choice int

	// Quit confirmation state
	showQuitModal bool

	width  int
	height int
	ready  bool
}

type snapshotSavedMsg struct {
	err error
}

type snapshotLoadedMsg struct {
	snap *state.Snapshot
	err  error
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Interact key.Binding
	Cancel   key.Binding
	Save     key.Binding
	Load     key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Interact: key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e/enter", "talk")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Load:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "load")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy json")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	wallStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	floorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("236"))

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // teal
			Bold(true)

	npcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	hudLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	comfortStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	incorrectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	panelStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

var titleCaser = cases.Title(language.English)

func NewGameUI(cfg *config.Config, logger *slog.Logger, store storage.Storage, gs *state.GameState) GameUI {
	logView := viewport.New(60, logHeight)

	ui := GameUI{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		gs:      gs,
		keys:    defaultKeyMap(),
		logView: logView,
	}
	ui.pushMessage(fmt.Sprintf("Welcome to %s. Walk up to someone and press e to talk.", gs.Pack.Name))
	return ui
}

func (m GameUI) Init() tea.Cmd {
	return nil
}

func (m *GameUI) pushMessage(msg string) {
	m.log = append(m.log, msg)
	m.logView.SetContent(strings.Join(m.log, "\n"))
	m.logView.GotoBottom()
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle quit modal first
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	// Scenario dialog swallows all input except its own keys
	if m.gs.Active != nil {
		return m.updateScenarioModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = msg.Width - 6
		m.logView.Height = logHeight
		m.logView.SetContent(strings.Join(m.log, "\n"))
		m.logView.GotoBottom()
		m.ready = true

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.showQuitModal = true
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.gs.Move(state.Up)
		case key.Matches(msg, m.keys.Down):
			m.gs.Move(state.Down)
		case key.Matches(msg, m.keys.Left):
			m.gs.Move(state.Left)
		case key.Matches(msg, m.keys.Right):
			m.gs.Move(state.Right)

		case key.Matches(msg, m.keys.Interact):
			return m.handleInteract()

		case key.Matches(msg, m.keys.Save):
			return m, m.saveSnapshot()

		case key.Matches(msg, m.keys.Load):
			return m, m.loadSnapshot()

		case key.Matches(msg, m.keys.Copy):
			m.copySnapshot()
		}

	case snapshotSavedMsg:
		if msg.err != nil {
			m.logger.Error("Failed to save snapshot", "error", msg.err)
			m.pushMessage(errorStyle.Render("Save failed: " + msg.err.Error()))
		} else {
			m.pushMessage("Snapshot saved.")
		}

	case snapshotLoadedMsg:
		m.applyLoadedSnapshot(msg)
	}

	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

func (m GameUI) handleInteract() (tea.Model, tea.Cmd) {
	npc, err := m.gs.Interact()
	switch {
	case errors.Is(err, state.ErrNoNPCNearby):
		m.pushMessage("There is no one close enough to talk to.")
	case errors.Is(err, state.ErrNoScenario):
		m.logger.Warn("NPC has no scenario", "npc", npc.ID, "scenario_id", npc.ScenarioID)
		m.pushMessage(fmt.Sprintf("%s has nothing to talk about right now.", displayName(npc)))
	case err == nil:
		m.choice = 0
	}
	return m, nil
}

func (m *GameUI) copySnapshot() {
	data, err := m.gs.Export()
	if err == nil {
		err = clipboard.WriteAll(string(data))
	}
	if err != nil {
		m.logger.Error("Failed to copy snapshot", "error", err)
		m.pushMessage(errorStyle.Render("Copy failed: " + err.Error()))
		return
	}
	m.pushMessage("Snapshot JSON copied to clipboard.")
}

func (m *GameUI) applyLoadedSnapshot(msg snapshotLoadedMsg) {
	if msg.err != nil {
		m.logger.Error("Failed to load snapshot", "error", msg.err)
		m.pushMessage(errorStyle.Render("Load failed: " + msg.err.Error()))
		return
	}
	if msg.snap == nil {
		m.pushMessage("No saved snapshot for this session yet.")
		return
	}
	if err := m.gs.Apply(msg.snap); err != nil {
		m.pushMessage(errorStyle.Render("Snapshot rejected: " + err.Error()))
		return
	}
	m.pushMessage("Snapshot loaded.")
}

func (m GameUI) saveSnapshot() tea.Cmd {
	snap := m.gs.Snapshot()
	id := m.gs.ID
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return snapshotSavedMsg{err: store.SaveSnapshot(ctx, id, snap)}
	}
}

func (m GameUI) loadSnapshot() tea.Cmd {
	id := m.gs.ID
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		snap, err := store.LoadSnapshot(ctx, id)
		return snapshotLoadedMsg{snap: snap, err: err}
	}
}

func (m GameUI) updateScenarioModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	active := m.gs.Active

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.gs.CloseInteraction()
			return m, nil
		case "up":
			if m.choice > 0 {
				m.choice--
			}
		case "down":
			if m.choice < len(active.Scenario.Choices)-1 {
				m.choice++
			}
		case "enter":
			return m.resolveChoice(m.choice)
		default:
			// Digits pick a choice directly
			s := msg.String()
			if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				if n := int(s[0] - '1'); n < len(active.Scenario.Choices) {
					return m.resolveChoice(n)
				}
			}
		}
	}

	return m, nil
}

func (m GameUI) resolveChoice(idx int) (tea.Model, tea.Cmd) {
	m.choice = idx
	choiceID := m.gs.Active.Scenario.Choices[idx].ID
	fb, err := m.gs.ResolveChoice(choiceID)
	if err != nil {
		m.logger.Error("Failed to resolve choice", "choice", choiceID, "error", err)
		return m, nil
	}
	m.logger.Info("Choice resolved",
		"scenario", m.gs.Active.Scenario.ID,
		"choice", choiceID,
		"correct", fb.Correct,
		"comfort", m.gs.Comfort,
		"score", m.gs.Score)
	return m, nil
}

func (m GameUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter", "ctrl+c":
			return m, tea.Quit
		case "n", "N", "esc":
			m.showQuitModal = false
			return m, nil
		}
	}

	return m, nil
}

func displayName(npc *scenario.NPC) string {
	return titleCaser.String(npc.Name)
}

func (m GameUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if m.gs.Active != nil {
		return m.renderScenarioModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	header := titleStyle.Render("SOCIAL STEPS")
	board := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.renderGrid()),
		panelStyle.Render(m.renderHUD()),
	)
	logPanel := panelStyle.Render(m.logView.View())
	help := promptStyle.Render(m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, header, board, logPanel, help)
}

// renderGrid draws the map with two columns per cell so tiles read roughly
// square in a terminal.
func (m GameUI) renderGrid() string {
	npcAt := make(map[state.Position]*scenario.NPC, len(m.gs.Pack.NPCs))
	for i := range m.gs.Pack.NPCs {
		npc := &m.gs.Pack.NPCs[i]
		npcAt[state.Position{X: npc.X, Y: npc.Y}] = npc
	}

	var b strings.Builder
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			pos := state.Position{X: x, Y: y}
			switch {
			case m.gs.Player == pos:
				b.WriteString(playerStyle.Render("@ "))
			case npcAt[pos] != nil:
				b.WriteString(npcStyle.Render(npcSprite(npcAt[pos]) + " "))
			case m.gs.Grid.Cell(x, y) == grid.Wall:
				b.WriteString(wallStyle.Render("██"))
			default:
				b.WriteString(floorStyle.Render("· "))
			}
		}
		if y < grid.Height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func npcSprite(npc *scenario.NPC) string {
	if npc.Sprite != "" {
		return string([]rune(npc.Sprite)[0])
	}
	return strings.ToUpper(string([]rune(npc.Name)[0]))
}

func (m GameUI) renderHUD() string {
	var b strings.Builder
	b.WriteString(hudLabelStyle.Render("COMFORT") + "\n")
	b.WriteString(comfortStyle.Render(comfortBar(m.gs.Comfort)) + "\n\n")
	b.WriteString(hudLabelStyle.Render("SCORE") + "\n")
	b.WriteString(fmt.Sprintf("%d\n\n", m.gs.Score))

	b.WriteString(hudLabelStyle.Render("PEOPLE") + "\n")
	for i := range m.gs.Pack.NPCs {
		npc := &m.gs.Pack.NPCs[i]
		b.WriteString(fmt.Sprintf("%s %s\n", npcStyle.Render(npcSprite(npc)), displayName(npc)))
	}

	return b.String()
}

func comfortBar(comfort int) string {
	return strings.Repeat("█", comfort) +
		strings.Repeat("░", scenario.ComfortMax-comfort) +
		fmt.Sprintf(" %d/%d", comfort, scenario.ComfortMax)
}

func (m GameUI) renderHelp() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right,
		m.keys.Interact, m.keys.Save, m.keys.Load, m.keys.Copy, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return "  " + strings.Join(parts, " • ")
}

func (m GameUI) renderScenarioModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	active := m.gs.Active
	wrapWidth := modalWidth - 6

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Talking with " + displayName(active.NPC)))
	content.WriteString("\n\n")
	content.WriteString(wordwrap.String(active.Scenario.Cue, wrapWidth))
	content.WriteString("\n\n")
	if active.Scenario.Context != "" {
		content.WriteString(promptStyle.Render(wordwrap.String(active.Scenario.Context, wrapWidth)))
		content.WriteString("\n\n")
	}
	content.WriteString(wordwrap.String(active.Scenario.Prompt, wrapWidth))
	content.WriteString("\n\n")

	for i, c := range active.Scenario.Choices {
		line := fmt.Sprintf("%d. %s", i+1, c.Label)
		if i == m.choice {
			content.WriteString(modalSelectedItemStyle.Render("▶ " + line))
		} else {
			content.WriteString(modalItemStyle.Render("  " + line))
		}
		content.WriteString("\n")
	}

	if fb := active.Feedback; fb != nil {
		content.WriteString("\n")
		if fb.Correct {
			content.WriteString(correctStyle.Render("That works! "))
		} else {
			content.WriteString(incorrectStyle.Render("Not quite. "))
		}
		content.WriteString(wordwrap.String(fb.Why, wrapWidth))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(promptStyle.Render("Use ↑/↓ and Enter to answer, Esc to step away"))

	modal := modalStyle.Width(modalWidth).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave the game?"))
	content.WriteString("\n\n")
	content.WriteString("Unsaved progress is lost unless you exported a snapshot.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit or N to keep playing"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

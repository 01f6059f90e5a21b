// Package tui is the terminal front end: four panels over a running game,
// advanced one turn per chosen action.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdmills/campaigncraft/internal/game"
	"github.com/jdmills/campaigncraft/tui/panels"
	"github.com/jdmills/campaigncraft/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusStandings PanelFocus = 0
	FocusElectoral PanelFocus = 1
	FocusNews      PanelFocus = 2
	FocusActions   PanelFocus = 3
)

// Model is the main TUI application model.
type Model struct {
	game *game.Game

	// Panels
	standingsPanel *panels.StandingsPanel
	electoralPanel *panels.ElectoralPanel
	newsPanel      *panels.NewsPanel
	actionPanel    *panels.ActionPanel

	// Focus management
	focusedPanel PanelFocus

	// Window dimensions
	width  int
	height int

	// Status
	statusMsg string
	ready     bool
	saveErr   error
}

// NewModel creates a new TUI model over a started game.
func NewModel(g *game.Game, cfg game.Config) *Model {
	m := &Model{
		game:           g,
		standingsPanel: panels.NewStandingsPanel(g.Sim.PlayerName()),
		electoralPanel: panels.NewElectoralPanel(),
		newsPanel:      panels.NewNewsPanel(),
		actionPanel:    panels.NewActionPanel(cfg.Actions),
		focusedPanel:   FocusActions,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.standingsPanel.Init(),
		m.electoralPanel.Init(),
		m.newsPanel.Init(),
		m.actionPanel.Init(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			m.focusedPanel = (m.focusedPanel + 1) % 4

		case "shift+tab":
			m.focusedPanel--
			if m.focusedPanel < 0 {
				m.focusedPanel = 3
			}

		case "f1":
			m.focusedPanel = FocusStandings
		case "f2":
			m.focusedPanel = FocusElectoral
		case "f3":
			m.focusedPanel = FocusNews
		case "f4":
			m.focusedPanel = FocusActions
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case panels.ActionChosenMsg:
		m.playTurn(msg)
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

func (m *Model) playTurn(msg panels.ActionChosenMsg) {
	if m.game.Sim.Result() != nil {
		return
	}

	turn, err := m.game.Sim.AdvanceTurn(msg.Action)
	if err != nil {
		m.statusMsg = "✗ " + err.Error()
		return
	}

	m.newsPanel.AddSummary(turn.Index, turn.Player.Summary)
	m.newsPanel.AddEvent(turn.Event)
	for _, opp := range turn.Opponents {
		m.newsPanel.AddSummary(turn.Index, opp.Summary)
	}
	m.statusMsg = fmt.Sprintf("Turn %d of %d", m.game.Sim.TurnNumber(), m.game.Sim.TotalTurns())
	m.refresh()

	if m.game.Sim.Result() != nil {
		m.saveErr = m.game.SaveTranscript()
	}
}

func (m *Model) refresh() {
	m.standingsPanel.SetStandings(m.game.Sim.Standings())
	m.electoralPanel.SetProjection(m.game.Projection())
	m.actionPanel.SetActions(m.game.Sim.ValidActions())
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusStandings:
		m.standingsPanel, cmd = m.standingsPanel.Update(msg)
	case FocusElectoral:
		m.electoralPanel, cmd = m.electoralPanel.Update(msg)
	case FocusNews:
		m.newsPanel, cmd = m.newsPanel.Update(msg)
	case FocusActions:
		m.actionPanel, cmd = m.actionPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if result := m.game.Sim.Result(); result != nil {
		return m.renderResults()
	}

	m.standingsPanel.SetFocus(m.focusedPanel == FocusStandings)
	m.electoralPanel.SetFocus(m.focusedPanel == FocusElectoral)
	m.newsPanel.SetFocus(m.focusedPanel == FocusNews)
	m.actionPanel.SetFocus(m.focusedPanel == FocusActions)

	// Layout:
	// ┌───────────────────────────┬───────────────┐
	// │        Standings          │               │
	// ├───────────────────────────┤ Electoral Map │
	// │          Trail            │               │
	// ├───────────────────────────┴───────────────┤
	// │                 Actions                   │
	// └───────────────────────────────────────────┘

	leftWidth := m.width * 3 / 5
	rightWidth := m.width - leftWidth

	actionHeight := 9
	topHeight := (m.height - actionHeight - 1) / 2
	trailHeight := m.height - actionHeight - topHeight - 1

	m.standingsPanel.SetSize(leftWidth, topHeight)
	m.newsPanel.SetSize(leftWidth, trailHeight)
	m.electoralPanel.SetSize(rightWidth, topHeight+trailHeight)
	m.actionPanel.SetSize(m.width, actionHeight)

	leftCol := lipgloss.JoinVertical(lipgloss.Left,
		m.standingsPanel.View(),
		m.newsPanel.View(),
	)

	topRows := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, m.electoralPanel.View())

	return lipgloss.JoinVertical(lipgloss.Left, topRows, m.actionPanel.View(), m.renderStatusBar())
}

func (m *Model) renderResults() string {
	result := m.game.Sim.Result()
	proj := m.game.Projection()

	var body string
	body += styles.WinnerStyle.Render(fmt.Sprintf("🏆 %s wins the election!", result.Winner)) + "\n\n"
	if result.TieBreak != "" {
		body += styles.MutedStyle.Render("Decided by "+result.TieBreak+" tiebreak") + "\n\n"
	}

	for _, st := range result.Standings {
		line := fmt.Sprintf("%-14s %5.1f%%", st.Name, st.Support)
		if st.Name == result.Winner {
			line = styles.WinnerStyle.Render(line)
		}
		body += line + "\n"
	}

	body += "\n" + fmt.Sprintf("Projected map: %s %d — %d %s",
		proj.NameA, proj.VotesA, proj.VotesB, proj.NameB)
	if proj.Landslide() {
		body += "\n" + styles.NewsImportantStyle.Render("A landslide!")
	}

	if m.saveErr != nil {
		body += "\n\n" + styles.LossStyle.Render("transcript save failed: "+m.saveErr.Error())
	} else if m.game.Store != nil {
		body += "\n\n" + styles.MutedStyle.Render("Run saved: "+m.game.RunID.String())
	}

	body += "\n\n" + styles.MutedStyle.Render("Press q to quit")

	box := styles.ResultsBoxStyle.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderStatusBar() string {
	help := []string{
		styles.StatusBarKeyStyle.Render("F1-F4") + styles.StatusBarDescStyle.Render(" panels"),
		styles.StatusBarKeyStyle.Render("Tab") + styles.StatusBarDescStyle.Render(" navigate"),
		styles.StatusBarKeyStyle.Render("↑↓") + styles.StatusBarDescStyle.Render(" select"),
		styles.StatusBarKeyStyle.Render("Enter") + styles.StatusBarDescStyle.Render(" commit"),
		styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit"),
	}

	helpStr := lipgloss.JoinHorizontal(lipgloss.Center,
		help[0], " │ ", help[1], " │ ", help[2], " │ ", help[3], " │ ", help[4])

	status := ""
	if m.statusMsg != "" {
		status = " │ " + m.statusMsg
	}

	return styles.StatusBarStyle.Width(m.width).Render(helpStr + status)
}

package panels

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jdmills/campaigncraft/internal/sim"
	"github.com/jdmills/campaigncraft/tui/styles"
)

// StandingsPanel displays the current poll standings and each candidate's
// resources.
type StandingsPanel struct {
	standings []sim.Standing
	player    string
	focused   bool
	width     int
	height    int
}

// NewStandingsPanel creates a new standings panel.
func NewStandingsPanel(player string) *StandingsPanel {
	return &StandingsPanel{player: player}
}

// Init initializes the panel.
func (p *StandingsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *StandingsPanel) Update(msg tea.Msg) (*StandingsPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *StandingsPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-14s %6s %8s %5s %7s %9s",
		"Candidate", "Poll", "Funds", "Staff", "Energy", "Momentum")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	for i, st := range p.standings {
		row := fmt.Sprintf("%-14s %5.1f%% %8s %5d %6.0f%% %9s",
			truncate(st.Name, 14),
			st.Support,
			"$"+humanize.Comma(int64(st.Funds)),
			st.Staff,
			st.Energy,
			momentumCell(st.Momentum),
		)

		style := momentumRowStyle(st.Momentum)
		if st.Name == p.player {
			style = styles.PlayerStyle
		}
		content.WriteString(style.Render(row))
		if i < len(p.standings)-1 {
			content.WriteString("\n")
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📊 Standings", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *StandingsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *StandingsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetStandings replaces the displayed standings, ordered by support.
func (p *StandingsPanel) SetStandings(standings []sim.Standing) {
	p.standings = append([]sim.Standing(nil), standings...)
	sort.SliceStable(p.standings, func(i, j int) bool {
		return p.standings[i].Support > p.standings[j].Support
	})
}

func momentumCell(m float64) string {
	switch {
	case m > 0.05:
		return fmt.Sprintf("+%.1f ↑", m)
	case m < -0.05:
		return fmt.Sprintf("%.1f ↓", m)
	default:
		return "0.0 ·"
	}
}

func momentumRowStyle(m float64) lipgloss.Style {
	switch {
	case m > 0.05:
		return styles.GainStyle
	case m < -0.05:
		return styles.LossStyle
	default:
		return styles.RowStyle
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

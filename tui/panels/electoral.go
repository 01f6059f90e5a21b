package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdmills/campaigncraft/internal/electoral"
	"github.com/jdmills/campaigncraft/tui/styles"
)

// ElectoralPanel displays the projected electoral map for the two-way race
// between the player and their leading rival.
type ElectoralPanel struct {
	projection    electoral.Projection
	hasProjection bool
	scrollOffset  int
	focused       bool
	width         int
	height        int
}

// NewElectoralPanel creates a new electoral map panel.
func NewElectoralPanel() *ElectoralPanel {
	return &ElectoralPanel{}
}

// Init initializes the panel.
func (p *ElectoralPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *ElectoralPanel) Update(msg tea.Msg) (*ElectoralPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.scrollOffset > 0 {
				p.scrollOffset--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.scrollOffset < len(p.projection.Regions)-1 {
				p.scrollOffset++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *ElectoralPanel) View() string {
	var content strings.Builder

	if !p.hasProjection {
		content.WriteString(styles.MutedStyle.Render("Waiting for first poll"))
	} else {
		proj := p.projection

		tally := fmt.Sprintf("%s %d — %d %s",
			truncate(proj.NameA, 12), proj.VotesA, proj.VotesB, truncate(proj.NameB, 12))
		content.WriteString(styles.HeaderStyle.Render(tally))
		if proj.TossupVotes > 0 {
			content.WriteString(styles.TossupStyle.Render(fmt.Sprintf("  (%d tossup)", proj.TossupVotes)))
		}
		content.WriteString("\n")

		visible := p.height - 6
		if visible < 1 {
			visible = 1
		}
		start := p.scrollOffset
		if start > len(proj.Regions)-visible {
			start = len(proj.Regions) - visible
		}
		if start < 0 {
			start = 0
		}
		end := start + visible
		if end > len(proj.Regions) {
			end = len(proj.Regions)
		}

		for i := start; i < end; i++ {
			rr := proj.Regions[i]
			marker := styles.TossupStyle.Render("·")
			switch rr.Winner {
			case proj.NameA:
				marker = styles.PlayerStyle.Render("●")
			case proj.NameB:
				marker = styles.RivalStyle.Render("●")
			}

			row := fmt.Sprintf("%s %-3s %3dev %+5.1f", marker, rr.Region.Abbrev, rr.Region.Votes, rr.Margin())
			if rr.Competitive() {
				row += styles.TossupStyle.Render(" ~")
			}
			content.WriteString(row)
			content.WriteString("\n")
		}

		if path := proj.PathToVictory(); path != nil {
			abbrevs := make([]string, 0, len(path))
			for _, reg := range path {
				abbrevs = append(abbrevs, reg.Abbrev)
			}
			content.WriteString(styles.MutedStyle.Render("Path to 270: " + strings.Join(abbrevs, " ")))
		} else {
			content.WriteString(styles.GainStyle.Render("Projected majority"))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("🗺  Electoral Map", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *ElectoralPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *ElectoralPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetProjection updates the displayed projection.
func (p *ElectoralPanel) SetProjection(proj electoral.Projection) {
	p.projection = proj
	p.hasProjection = true
}

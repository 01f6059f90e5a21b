package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/tui/styles"
)

// ActionPanel lets the player pick this turn's action from the affordable
// set.
type ActionPanel struct {
	actions       []campaign.Action
	table         campaign.ActionTable
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewActionPanel creates a new action selection panel.
func NewActionPanel(table campaign.ActionTable) *ActionPanel {
	return &ActionPanel{table: table}
}

// Init initializes the panel.
func (p *ActionPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *ActionPanel) Update(msg tea.Msg) (*ActionPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.actions)-1 {
				p.selectedIndex++
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter", " "))):
			if p.selectedIndex >= 0 && p.selectedIndex < len(p.actions) {
				chosen := p.actions[p.selectedIndex]
				return p, func() tea.Msg { return ActionChosenMsg{Action: chosen} }
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *ActionPanel) View() string {
	var content strings.Builder

	if len(p.actions) == 0 {
		content.WriteString(styles.MutedStyle.Render("No actions available"))
	}

	for i, a := range p.actions {
		funds, staff, energy := p.table.Cost(a)
		cost := costLabel(funds, staff, energy)

		line := fmt.Sprintf("%-16s %s", a.String(), styles.MutedStyle.Render(cost))
		if i == p.selectedIndex && p.focused {
			line = styles.SelectedRowStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		content.WriteString(line)
		if i < len(p.actions)-1 {
			content.WriteString("\n")
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("🎯 Actions", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *ActionPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *ActionPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetActions replaces the action list and clamps the selection.
func (p *ActionPanel) SetActions(actions []campaign.Action) {
	p.actions = actions
	if p.selectedIndex >= len(actions) {
		p.selectedIndex = len(actions) - 1
	}
	if p.selectedIndex < 0 {
		p.selectedIndex = 0
	}
}

// Selected returns the currently highlighted action.
func (p *ActionPanel) Selected() (campaign.Action, bool) {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.actions) {
		return p.actions[p.selectedIndex], true
	}
	return campaign.Action{}, false
}

func costLabel(funds, staff int, energy float64) string {
	var parts []string
	if funds > 0 {
		parts = append(parts, fmt.Sprintf("$%d", funds))
	}
	if staff > 0 {
		parts = append(parts, fmt.Sprintf("%d staff", staff))
	}
	if energy > 0 {
		parts = append(parts, fmt.Sprintf("%.0f energy", energy))
	}
	if len(parts) == 0 {
		return "free"
	}
	return strings.Join(parts, ", ")
}

// ActionChosenMsg is sent when the player commits to an action.
type ActionChosenMsg struct {
	Action campaign.Action
}

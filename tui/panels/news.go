package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdmills/campaigncraft/internal/events"
	"github.com/jdmills/campaigncraft/tui/styles"
)

// newsEntry is one line of the campaign trail log.
type newsEntry struct {
	turn      int
	text      string
	important bool
}

// NewsPanel displays the campaign trail log: headlines and action
// summaries, newest last.
type NewsPanel struct {
	entries       []newsEntry
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int
	maxItems      int
}

// NewNewsPanel creates a new news panel.
func NewNewsPanel() *NewsPanel {
	return &NewsPanel{maxItems: 100}
}

// Init initializes the panel.
func (p *NewsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *NewsPanel) Update(msg tea.Msg) (*NewsPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
				if p.selectedIndex < p.scrollOffset {
					p.scrollOffset = p.selectedIndex
				}
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.entries)-1 {
				p.selectedIndex++
				visible := p.visibleItems()
				if p.selectedIndex >= p.scrollOffset+visible {
					p.scrollOffset = p.selectedIndex - visible + 1
				}
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *NewsPanel) View() string {
	var content strings.Builder

	if len(p.entries) == 0 {
		content.WriteString(styles.MutedStyle.Render("The trail is quiet"))
	} else {
		visible := p.visibleItems()
		start := p.scrollOffset
		end := start + visible
		if end > len(p.entries) {
			end = len(p.entries)
		}

		for i := start; i < end; i++ {
			entry := p.entries[i]

			text := entry.text
			if len(text) > p.width-10 && p.width > 13 {
				text = text[:p.width-13] + "..."
			}

			lineStyle := styles.NewsNormalStyle
			if entry.important {
				lineStyle = styles.NewsImportantStyle
			}

			line := fmt.Sprintf("%s %s",
				styles.MutedStyle.Render(fmt.Sprintf("T%02d", entry.turn)),
				lineStyle.Render(text))

			if i == p.selectedIndex && p.focused {
				line = styles.SelectedRowStyle.Render(line)
			}

			content.WriteString(line)
			if i < end-1 {
				content.WriteString("\n")
			}
		}

		if len(p.entries) > visible {
			content.WriteString("\n")
			content.WriteString(styles.MutedStyle.Render(fmt.Sprintf(" (%d/%d)", p.selectedIndex+1, len(p.entries))))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📰 Trail", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *NewsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *NewsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// AddSummary appends an action summary line.
func (p *NewsPanel) AddSummary(turn int, summary string) {
	p.add(newsEntry{turn: turn, text: summary})
}

// AddEvent appends a headline for a drawn event. Scandals and crises are
// highlighted.
func (p *NewsPanel) AddEvent(ev *events.Event) {
	if ev == nil {
		return
	}
	important := ev.Kind == events.KindScandal || ev.Kind == events.KindCrisis
	p.add(newsEntry{turn: ev.Turn, text: ev.Headline + " — " + ev.Detail, important: important})
}

func (p *NewsPanel) add(entry newsEntry) {
	p.entries = append(p.entries, entry)
	if len(p.entries) > p.maxItems {
		p.entries = p.entries[len(p.entries)-p.maxItems:]
	}
	// Follow the newest entry unless the user scrolled away.
	if p.selectedIndex >= len(p.entries)-2 {
		p.selectedIndex = len(p.entries) - 1
		visible := p.visibleItems()
		if p.selectedIndex >= p.scrollOffset+visible {
			p.scrollOffset = p.selectedIndex - visible + 1
		}
	}
}

func (p *NewsPanel) visibleItems() int {
	v := p.height - 4
	if v < 1 {
		v = 1
	}
	return v
}

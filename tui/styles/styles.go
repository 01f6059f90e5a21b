package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	AccentColor    = lipgloss.Color("#F59E0B") // Amber

	// Race colors
	PlayerColor = lipgloss.Color("#3B82F6") // Blue
	RivalColor  = lipgloss.Color("#EF4444") // Red
	GainColor   = lipgloss.Color("#10B981") // Green
	LossColor   = lipgloss.Color("#EF4444") // Red
	TossupColor = lipgloss.Color("#F59E0B") // Amber

	// Background colors
	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#7C3AED")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(lipgloss.Color("#374151"))
)

// Text styles
var (
	PlayerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PlayerColor)

	RivalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(RivalColor)

	GainStyle = lipgloss.NewStyle().
			Foreground(GainColor)

	LossStyle = lipgloss.NewStyle().
			Foreground(LossColor)

	TossupStyle = lipgloss.NewStyle().
			Foreground(TossupColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	// News severity styles
	NewsNormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	NewsImportantStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(AccentColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// Results screen styles
var (
	WinnerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	ResultsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 3)
)

// RenderTitle renders a panel title bar.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}

package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ReelGold   = lipgloss.Color("#F5C518")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ReelGold)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Section heading, e.g. "Popular movies in Drama"
var HeadingStyle = lipgloss.NewStyle().
	Foreground(ReelGold).
	Bold(true).
	MarginTop(1)

// Frame around the whole application
var AppStyle = lipgloss.NewStyle().
	Padding(1, 2)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ReelGold).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ReelGold)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ReelGold)

// Filter prompt style
var FilterPromptStyle = lipgloss.NewStyle().
	Foreground(ReelGold).
	Bold(true)

// RenderHelp renders "key desc" pairs as a single footer line
func RenderHelp(pairs ...[2]string) string {
	var out string
	for i, p := range pairs {
		if i > 0 {
			out += HelpDescStyle.Render("  ")
		}
		out += HelpKeyStyle.Render(p[0]) + " " + HelpDescStyle.Render(p[1])
	}
	return out
}

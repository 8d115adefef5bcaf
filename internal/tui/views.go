package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/preference"
	"github.com/mmcdole/reel/internal/suggest"
	"github.com/mmcdole/reel/internal/tui/styles"
	"github.com/mmcdole/reel/internal/watchlist"
)

const topGenresShown = 3

// View renders the application
func (m Model) View() string {
	var body string
	switch m.mode {
	case ModeLoading:
		body = m.spinner.View() + " " + styles.SubtitleStyle.Render("Asking the movie catalog...")
	case ModePage:
		body = lipgloss.JoinVertical(lipgloss.Left,
			styles.TitleStyle.Render(m.pageTitle),
			m.pageBody,
			"",
			styles.RenderHelp([2]string{"enter/esc", "back"}),
		)
	case ModePrompt:
		body = m.Prompt.View()
	default:
		body = m.Picker.View()
	}

	header := styles.AccentStyle.Bold(true).Render("reel") + styles.DimStyle.Render("  movie watchlist")
	parts := []string{header, "", body}
	if m.StatusMsg != "" {
		style := styles.SuccessStyle
		if m.StatusIsErr {
			style = styles.ErrorStyle
		}
		parts = append(parts, "", style.Render(m.StatusMsg))
	}
	return styles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderLists shows both lists and the user's top genres
func renderLists(store *watchlist.Store, genres domain.Genres) string {
	var b strings.Builder

	b.WriteString(styles.HeadingStyle.Render("Plan to watch"))
	b.WriteString("\n")
	planned := store.PlannedTitles()
	if len(planned) == 0 {
		b.WriteString(styles.DimStyle.Render("  (empty)") + "\n")
	}
	for _, title := range planned {
		fmt.Fprintf(&b, "  • %s\n", title)
	}

	b.WriteString(styles.HeadingStyle.Render("Watched"))
	b.WriteString("\n")
	watched := store.Watched()
	if len(watched) == 0 {
		b.WriteString(styles.DimStyle.Render("  (empty)") + "\n")
	}
	for _, e := range watched {
		fmt.Fprintf(&b, "  • %s %s\n", e.Title, styles.AccentStyle.Render(e.Rating.String()))
	}

	counts := preference.Affinity(watched)
	if len(counts) > 0 {
		b.WriteString(styles.HeadingStyle.Render("Top genres"))
		b.WriteString("\n")
		for _, c := range counts[:min(topGenresShown, len(counts))] {
			fmt.Fprintf(&b, "  • %s %s\n", genres.Name(c.GenreID), styles.DimStyle.Render(fmt.Sprintf("(%d)", c.Count)))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderSuggestions shows each list under its heading
func renderSuggestions(lists []suggest.Suggestions) string {
	var b strings.Builder
	for _, s := range lists {
		b.WriteString(styles.HeadingStyle.Render(s.Heading()))
		b.WriteString("\n")
		switch {
		case s.Err != nil:
			b.WriteString(styles.ErrorStyle.Render("  Could not reach the movie catalog") + "\n")
		case len(s.Movies) == 0:
			b.WriteString(styles.DimStyle.Render("  No new suggestions, you've seen them all") + "\n")
		}
		for i, mv := range s.Movies {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, mv.DisplayTitle())
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

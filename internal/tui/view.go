package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/riskibarqy/pitchside/internal/domain/match"
	"github.com/riskibarqy/pitchside/internal/domain/standing"
	"github.com/riskibarqy/pitchside/internal/usecase"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"}).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).
			Padding(0, 1)

	loadingStyle = lipgloss.NewStyle().Padding(0, 1)

	cursorRowStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "232", Dark: "255"}).
			Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	matchRowStyle = lipgloss.NewStyle().PaddingLeft(2)

	modeActiveStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	modeIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "243"})

	emptyStyle = lipgloss.NewStyle().Italic(true).PaddingLeft(2).
			Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "243"})
)

func newStandingsTable(rows []standing.Standing) table.Model {
	columns := []table.Column{
		{Title: "Pos", Width: 4},
		{Title: "Club", Width: 22},
		{Title: "GP", Width: 4},
		{Title: "W", Width: 3},
		{Title: "D", Width: 3},
		{Title: "L", Width: 3},
		{Title: "GF", Width: 4},
		{Title: "GA", Width: 4},
		{Title: "GD", Width: 4},
		{Title: "PTS", Width: 4},
		{Title: "Form", Width: 10},
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, table.Row{
			strconv.Itoa(row.Position),
			row.Team.DisplayName(),
			strconv.Itoa(row.Played),
			strconv.Itoa(row.Won),
			strconv.Itoa(row.Draw),
			strconv.Itoa(row.Lost),
			strconv.Itoa(row.GoalsFor),
			strconv.Itoa(row.GoalsAgainst),
			strconv.Itoa(row.GoalDifference),
			strconv.Itoa(row.Points),
			row.Form,
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = cursorRowStyle

	return table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(20),
		table.WithStyles(styles),
	)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.nav.Snapshot()

	var body string
	switch view.Screen {
	case usecase.ScreenMatches:
		body = m.renderMatchView(view)
	default:
		body = m.renderStandings()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

func (m Model) renderStandings() string {
	sections := []string{
		titleStyle.Render("League Table"),
		m.table.View(),
	}

	if m.loading {
		sections = append(sections, loadingStyle.Render(m.spinner.View()+" loading matches..."))
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}

	return strings.Join(sections, "\n")
}

func (m Model) renderMatchView(view usecase.View) string {
	header := headerStyle.Render(fmt.Sprintf("%s - %d matches", view.TeamName, len(view.Matches)))

	sections := []string{
		header,
		renderModeBar(view.Mode),
		renderMatchList(view),
	}

	return strings.Join(sections, "\n")
}

func renderModeBar(active usecase.Mode) string {
	parts := make([]string, 0, 3)
	for _, mode := range []usecase.Mode{usecase.ModeAll, usecase.ModePlayed, usecase.ModeUnplayed} {
		label := string(mode)
		if mode == active {
			parts = append(parts, modeActiveStyle.Render(label))
			continue
		}
		parts = append(parts, modeIdleStyle.Render(label))
	}
	return "  " + strings.Join(parts, "  ")
}

func renderMatchList(view usecase.View) string {
	if len(view.Matches) == 0 {
		return emptyStyle.Render("no matches in this view")
	}

	lines := make([]string, 0, len(view.Matches))
	for i, item := range view.Matches {
		line := renderMatchLine(item)
		if i == view.Cursor {
			lines = append(lines, cursorRowStyle.Render("> "+line))
			continue
		}
		lines = append(lines, matchRowStyle.Render(line))
	}
	return strings.Join(lines, "\n")
}

func renderMatchLine(item match.Match) string {
	day := item.UTCDate.UTC().Format("Mon Jan 02")
	fixture := fmt.Sprintf("%s vs %s", item.HomeTeam.DisplayName(), item.AwayTeam.DisplayName())

	if item.Score != nil {
		return fmt.Sprintf("%s  MD%-2d  %s %d - %d %s",
			day, item.Matchday,
			item.HomeTeam.DisplayName(), item.Score.HomeGoals,
			item.Score.AwayGoals, item.AwayTeam.DisplayName(),
		)
	}

	kickoff := item.UTCDate.UTC().Format("15:04")
	return fmt.Sprintf("%s  MD%-2d  %s  %s  (%s)", day, item.Matchday, fixture, kickoff, item.Status)
}

package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riskibarqy/pitchside/internal/domain/standing"
	"github.com/riskibarqy/pitchside/internal/platform/logging"
	"github.com/riskibarqy/pitchside/internal/usecase"
)

// Model is the Bubble Tea model for the dashboard. It is a read-only
// presenter over navigator snapshots: every visible change goes through a
// navigator transition on this single-threaded update loop.
type Model struct {
	nav    *usecase.Navigator
	cache  *usecase.MatchCache
	logger *logging.Logger

	keys    keyMap
	help    help.Model
	table   table.Model
	spinner spinner.Model

	width  int
	height int

	loading       bool
	pendingTeamID string
	status        string
	quitting      bool
}

func NewModel(nav *usecase.Navigator, cache *usecase.MatchCache, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		nav:     nav,
		cache:   cache,
		logger:  logger,
		keys:    newKeyMap(),
		help:    help.New(),
		table:   newStandingsTable(nav.Standings()),
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(maxInt(msg.Height-6, 3))
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case matchesLoadedMsg:
		return m.handleMatchesLoaded(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.nav.Screen() == usecase.ScreenMatches {
		return m.handleMatchViewKey(msg)
	}
	return m.handleStandingsKey(msg)
}

func (m Model) handleStandingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		return m.selectHighlighted()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleMatchViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.nav.Back()
	case key.Matches(msg, m.keys.FilterAll):
		m.nav.SetFilter(usecase.ModeAll)
	case key.Matches(msg, m.keys.FilterPlayed):
		m.nav.SetFilter(usecase.ModePlayed)
	case key.Matches(msg, m.keys.FilterUnplayed):
		m.nav.SetFilter(usecase.ModeUnplayed)
	case key.Matches(msg, m.keys.Up):
		m.nav.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.nav.MoveCursor(1)
	}
	return m, nil
}

// selectHighlighted starts loading the highlighted team. The fetch runs as a
// background command that only warms the match cache; the actual screen
// transition happens when the completion message arrives, so input stays
// live while the network call is in flight.
func (m Model) selectHighlighted() (tea.Model, tea.Cmd) {
	row, ok := m.highlightedStanding()
	if !ok {
		return m, nil
	}

	if m.loading && m.pendingTeamID == row.Team.ID {
		// Same team selected again mid-flight; the cache coalesces the
		// underlying fetch, nothing more to do here.
		return m, nil
	}

	m.status = ""
	if m.cache.Cached(row.Team.ID) {
		return m.enterMatchView(row)
	}

	m.loading = true
	m.pendingTeamID = row.Team.ID
	return m, tea.Batch(m.spinner.Tick, warmCacheCmd(m.cache, row))
}

func (m Model) handleMatchesLoaded(msg matchesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.teamID != m.pendingTeamID {
		// The user moved on before this fetch resolved; drop the result.
		m.logger.Debug("dropping stale match load", "team_id", msg.teamID)
		return m, nil
	}

	m.loading = false
	m.pendingTeamID = ""

	if msg.err != nil {
		m.status = fmt.Sprintf("could not load matches: %v - press enter to retry", msg.err)
		return m, nil
	}

	row, ok := m.standingByTeamID(msg.teamID)
	if !ok {
		return m, nil
	}
	return m.enterMatchView(row)
}

func (m Model) enterMatchView(row standing.Standing) (tea.Model, tea.Cmd) {
	// Entering a view resolves the selection. Any load still pending for
	// another team is stale from here on: its completion message must not
	// trigger a transition, so the pending marker is cleared now.
	m.loading = false
	m.pendingTeamID = ""

	// The cache already holds this team, so the select transition resolves
	// without touching the network.
	if err := m.nav.Select(context.Background(), row); err != nil {
		m.status = fmt.Sprintf("could not load matches: %v - press enter to retry", err)
	}
	return m, nil
}

func (m Model) highlightedStanding() (standing.Standing, bool) {
	rows := m.nav.Standings()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(rows) {
		return standing.Standing{}, false
	}
	return rows[idx], true
}

func (m Model) standingByTeamID(teamID string) (standing.Standing, bool) {
	for _, row := range m.nav.Standings() {
		if row.Team.ID == teamID {
			return row, true
		}
	}
	return standing.Standing{}, false
}

func warmCacheCmd(cache *usecase.MatchCache, row standing.Standing) tea.Cmd {
	return func() tea.Msg {
		_, err := cache.Get(context.Background(), row.Team)
		return matchesLoadedMsg{teamID: row.Team.ID, err: err}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

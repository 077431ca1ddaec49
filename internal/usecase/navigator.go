package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/pitchside/internal/domain/match"
	"github.com/riskibarqy/pitchside/internal/domain/standing"
	"github.com/riskibarqy/pitchside/internal/domain/team"
	"github.com/riskibarqy/pitchside/internal/platform/logging"
)

// Screen tags the active view.
type Screen string

const (
	ScreenStandings Screen = "STANDINGS"
	ScreenMatches   Screen = "MATCH_VIEW"
)

// View is an immutable snapshot of everything the presentation layer may
// render. Every transition produces a fresh snapshot; the adapter never
// reaches into navigator fields, so each visible state is only reachable
// through a named transition.
type View struct {
	Screen    Screen
	Standings []standing.Standing
	TeamName  string
	Matches   []match.Match
	Mode      Mode
	Cursor    int
}

// Navigator owns which screen is active and which team is loaded. It is not
// safe for concurrent use: all transitions must run on the event loop, in
// the order the triggering events were observed.
type Navigator struct {
	standings []standing.Standing
	cache     *MatchCache
	logger    *logging.Logger

	screen     Screen
	activeTeam team.Team
	all        []match.Match
	visible    []match.Match
	mode       Mode
	cursor     int
}

func NewNavigator(standings []standing.Standing, cache *MatchCache, logger *logging.Logger) *Navigator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Navigator{
		standings: standings,
		cache:     cache,
		logger:    logger,
		screen:    ScreenStandings,
		mode:      ModeAll,
	}
}

// Standings returns the session's league table, in source order.
func (n *Navigator) Standings() []standing.Standing {
	return n.standings
}

// Select loads the standing's team and enters the match view. The filter
// mode always resets to ALL, even when re-entering a previously viewed team.
// On a fetch failure the navigator stays on the standings screen and the
// cache remains untouched, so the same selection can be retried.
func (n *Navigator) Select(ctx context.Context, row standing.Standing) error {
	matches, err := n.cache.Get(ctx, row.Team)
	if err != nil {
		n.logger.Warn("team selection failed", "team_id", row.Team.ID, "error", err)
		return errors.Wrapf(err, "select team %s", row.Team.ID)
	}

	n.activeTeam = row.Team
	n.all = matches
	n.mode = ModeAll
	n.visible = ApplyFilter(n.all, n.mode)
	n.cursor = CursorFor(n.visible, n.mode)
	n.screen = ScreenMatches

	n.logger.Info("entered match view",
		"team_id", row.Team.ID,
		"matches", len(matches),
		"cursor", n.cursor,
	)
	return nil
}

// SetFilter re-projects the cached full match list through mode and
// re-derives the cursor. It never refetches. Outside the match view it is a
// no-op.
func (n *Navigator) SetFilter(mode Mode) {
	if n.screen != ScreenMatches {
		return
	}
	switch mode {
	case ModeAll, ModePlayed, ModeUnplayed:
	default:
		return
	}

	n.mode = mode
	n.visible = ApplyFilter(n.all, mode)
	n.cursor = CursorFor(n.visible, mode)
}

// MoveCursor scrolls within the visible list, clamped to its bounds. The
// scrolled position is deliberately not remembered across filter changes.
func (n *Navigator) MoveCursor(delta int) {
	if n.screen != ScreenMatches || len(n.visible) == 0 {
		return
	}

	next := n.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(n.visible)-1 {
		next = len(n.visible) - 1
	}
	n.cursor = next
}

// Back returns to the standings screen. The active team's state is
// discarded; re-entry goes through Select again. From the standings screen
// it is a no-op.
func (n *Navigator) Back() {
	if n.screen != ScreenMatches {
		return
	}

	n.screen = ScreenStandings
	n.activeTeam = team.Team{}
	n.all = nil
	n.visible = nil
	n.mode = ModeAll
	n.cursor = 0
}

// Screen returns the active view tag.
func (n *Navigator) Screen() Screen {
	return n.screen
}

// Snapshot captures the current view state. Slices are copied so the
// adapter cannot mutate navigator state through the snapshot.
func (n *Navigator) Snapshot() View {
	view := View{
		Screen:    n.screen,
		Standings: append([]standing.Standing(nil), n.standings...),
		Mode:      n.mode,
		Cursor:    n.cursor,
	}
	if n.screen == ScreenMatches {
		view.TeamName = n.activeTeam.Name
		view.Matches = append([]match.Match(nil), n.visible...)
	}
	return view
}

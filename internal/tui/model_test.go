package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riskibarqy/pitchside/internal/domain/match"
	"github.com/riskibarqy/pitchside/internal/domain/standing"
	"github.com/riskibarqy/pitchside/internal/domain/team"
	"github.com/riskibarqy/pitchside/internal/usecase"
)

type stubSource struct {
	mu      sync.Mutex
	calls   int
	matches map[string][]match.Match
	err     error
}

func (s *stubSource) FetchStandings(context.Context) ([]standing.Standing, error) {
	return nil, nil
}

func (s *stubSource) FetchMatches(_ context.Context, teamID string) ([]match.Match, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.matches[teamID], nil
}

func testStandings() []standing.Standing {
	return []standing.Standing{
		{Position: 1, Team: team.Team{ID: "57", Name: "Arsenal FC", ShortName: "Arsenal"}},
		{Position: 2, Team: team.Team{ID: "64", Name: "Liverpool FC", ShortName: "Liverpool"}},
	}
}

func newTestModel(source *stubSource) (Model, *usecase.MatchCache) {
	cache := usecase.NewMatchCache(source)
	nav := usecase.NewNavigator(testStandings(), cache, nil)
	return NewModel(nav, cache, nil), cache
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("update returned %T, want tui.Model", next)
	}
	return out, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_EnterStartsBackgroundLoad(t *testing.T) {
	t.Parallel()

	source := &stubSource{matches: map[string][]match.Match{
		"57": {{ID: "m1", Matchday: 1, Status: match.StatusScheduled}},
	}}
	m, cache := newTestModel(source)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a load command for an uncached team")
	}
	if !m.loading || m.pendingTeamID != "57" {
		t.Fatalf("loading=%v pending=%q, want in-flight selection of 57", m.loading, m.pendingTeamID)
	}

	// Screen must not change until the completion message arrives.
	if m.nav.Screen() != usecase.ScreenStandings {
		t.Fatalf("screen got=%s want=%s while loading", m.nav.Screen(), usecase.ScreenStandings)
	}

	if _, err := cache.Get(context.Background(), testStandings()[0].Team); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	m, _ = update(t, m, matchesLoadedMsg{teamID: "57"})

	if m.nav.Screen() != usecase.ScreenMatches {
		t.Fatalf("screen got=%s want=%s after load", m.nav.Screen(), usecase.ScreenMatches)
	}
	if m.loading {
		t.Fatal("loading flag still set after completion")
	}
}

func TestModel_StaleLoadCompletionIsDropped(t *testing.T) {
	t.Parallel()

	source := &stubSource{matches: map[string][]match.Match{}}
	m, _ := newTestModel(source)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.pendingTeamID != "57" {
		t.Fatalf("pending got=%q want=57", m.pendingTeamID)
	}

	// A completion for a team that is no longer pending must be ignored.
	m, _ = update(t, m, matchesLoadedMsg{teamID: "64"})
	if m.nav.Screen() != usecase.ScreenStandings {
		t.Fatalf("stale completion changed screen to %s", m.nav.Screen())
	}
	if !m.loading {
		t.Fatal("stale completion cleared the in-flight selection")
	}
}

func TestModel_CachedSelectionCancelsPendingLoad(t *testing.T) {
	t.Parallel()

	source := &stubSource{matches: map[string][]match.Match{
		"57": {{ID: "m1", Matchday: 1, Status: match.StatusScheduled}},
		"64": {{ID: "m2", Matchday: 1, Status: match.StatusScheduled}},
	}}
	m, cache := newTestModel(source)

	if _, err := cache.Get(context.Background(), testStandings()[1].Team); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	// Start a slow load for Arsenal, then open the already-cached Liverpool.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.nav.Snapshot().TeamName; got != "Liverpool FC" {
		t.Fatalf("match view shows %q, want Liverpool FC", got)
	}
	if m.loading || m.pendingTeamID != "" {
		t.Fatalf("cached selection left a load pending: loading=%v pending=%q", m.loading, m.pendingTeamID)
	}

	// Arsenal's completion lands late; it must not replace the active view.
	m, _ = update(t, m, matchesLoadedMsg{teamID: "57"})
	if got := m.nav.Snapshot().TeamName; got != "Liverpool FC" {
		t.Fatalf("late completion replaced the view with %q", got)
	}
}

func TestModel_LateCompletionAfterBackStaysOnStandings(t *testing.T) {
	t.Parallel()

	source := &stubSource{matches: map[string][]match.Match{
		"57": {{ID: "m1", Matchday: 1, Status: match.StatusScheduled}},
		"64": {{ID: "m2", Matchday: 1, Status: match.StatusScheduled}},
	}}
	m, cache := newTestModel(source)

	if _, err := cache.Get(context.Background(), testStandings()[1].Team); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.nav.Screen() != usecase.ScreenStandings {
		t.Fatalf("esc did not return to standings: %s", m.nav.Screen())
	}

	m, _ = update(t, m, matchesLoadedMsg{teamID: "57"})
	if m.nav.Screen() != usecase.ScreenStandings {
		t.Fatalf("late completion pulled the user off standings to %s", m.nav.Screen())
	}
}

func TestModel_LoadFailureShowsStatusAndAllowsRetry(t *testing.T) {
	t.Parallel()

	source := &stubSource{err: errors.New("dial tcp: connection refused")}
	m, _ := newTestModel(source)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, matchesLoadedMsg{teamID: "57", err: source.err})

	if m.nav.Screen() != usecase.ScreenStandings {
		t.Fatalf("failed load left standings screen: %s", m.nav.Screen())
	}
	if m.status == "" {
		t.Fatal("expected a status message after a failed load")
	}

	// The selection can be retried now that nothing is pending.
	source.err = nil
	source.matches = map[string][]match.Match{"57": {{ID: "m1", Matchday: 1}}}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected retry to start a new load")
	}
	if m.status != "" {
		t.Fatal("retry did not clear the status message")
	}
}

func TestModel_FilterKeysAndBack(t *testing.T) {
	t.Parallel()

	source := &stubSource{matches: map[string][]match.Match{
		"57": {
			{ID: "m1", Matchday: 1, Status: match.StatusFinished},
			{ID: "m2", Matchday: 2, Status: match.StatusScheduled},
		},
	}}
	m, cache := newTestModel(source)

	if _, err := cache.Get(context.Background(), testStandings()[0].Team); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("cached team should enter the match view without a load command")
	}
	if m.nav.Screen() != usecase.ScreenMatches {
		t.Fatalf("screen got=%s want=%s", m.nav.Screen(), usecase.ScreenMatches)
	}

	m, _ = update(t, m, keyRune('p'))
	if got := m.nav.Snapshot(); got.Mode != usecase.ModePlayed || len(got.Matches) != 1 {
		t.Fatalf("after p: mode=%s visible=%d", got.Mode, len(got.Matches))
	}

	m, _ = update(t, m, keyRune('u'))
	if got := m.nav.Snapshot(); got.Mode != usecase.ModeUnplayed || len(got.Matches) != 1 {
		t.Fatalf("after u: mode=%s visible=%d", got.Mode, len(got.Matches))
	}

	m, _ = update(t, m, keyRune('a'))
	if got := m.nav.Snapshot(); got.Mode != usecase.ModeAll || got.Cursor != 1 {
		t.Fatalf("after a: mode=%s cursor=%d", got.Mode, got.Cursor)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.nav.Screen() != usecase.ScreenStandings {
		t.Fatalf("esc did not return to standings: %s", m.nav.Screen())
	}
}

func TestModel_QuitFromEitherScreen(t *testing.T) {
	t.Parallel()

	source := &stubSource{matches: map[string][]match.Match{}}
	m, _ := newTestModel(source)

	_, cmd := update(t, m, keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected tea.QuitMsg, got %T", msg)
	}
}

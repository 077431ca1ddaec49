package match

import (
	"strings"
	"time"

	"github.com/riskibarqy/pitchside/internal/domain/team"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusTimed     = "TIMED"
	StatusInPlay    = "IN_PLAY"
	StatusPaused    = "PAUSED"
	StatusFinished  = "FINISHED"
	StatusPostponed = "POSTPONED"
	StatusCancelled = "CANCELLED"
)

// Winner tags for a concluded match.
const (
	WinnerHome = "HOME_TEAM"
	WinnerAway = "AWAY_TEAM"
	WinnerDraw = "DRAW"
)

// Score is the outcome of a concluded match.
type Score struct {
	Winner    string
	HomeGoals int
	AwayGoals int
}

// Match is one fixture between two teams. Values are immutable once fetched;
// a team's match list keeps the provider's matchday/date ordering.
type Match struct {
	ID       string
	UTCDate  time.Time
	HomeTeam team.Team
	AwayTeam team.Team
	Status   string
	Matchday int
	Score    *Score
}

// Finished reports whether the match has concluded. Statuses other than
// SCHEDULED/FINISHED pass through untouched and count as not finished.
func (m Match) Finished() bool {
	return NormalizeStatus(m.Status) == StatusFinished
}

// Date is the calendar day of kickoff in UTC.
func (m Match) Date() time.Time {
	return m.UTCDate.UTC().Truncate(24 * time.Hour)
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

package footballdata

import (
	"strconv"
	"time"

	"github.com/riskibarqy/pitchside/internal/domain/match"
	"github.com/riskibarqy/pitchside/internal/domain/standing"
	"github.com/riskibarqy/pitchside/internal/domain/team"
)

// Wire shapes for the football-data.org v4 payloads. Only the fields the
// dashboard renders are decoded; everything else in the payload is ignored.

type teamItem struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type tableRow struct {
	Position       int      `json:"position" validate:"required,gt=0"`
	Team           teamItem `json:"team" validate:"required"`
	PlayedGames    int      `json:"playedGames" validate:"gte=0"`
	Form           string   `json:"form"`
	Won            int      `json:"won" validate:"gte=0"`
	Draw           int      `json:"draw" validate:"gte=0"`
	Lost           int      `json:"lost" validate:"gte=0"`
	Points         int      `json:"points"`
	GoalsFor       int      `json:"goalsFor" validate:"gte=0"`
	GoalsAgainst   int      `json:"goalsAgainst" validate:"gte=0"`
	GoalDifference int      `json:"goalDifference"`
}

type standingsGroup struct {
	Type  string     `json:"type"`
	Table []tableRow `json:"table"`
}

type standingsEnvelope struct {
	Standings []standingsGroup `json:"standings"`
}

type scoreTime struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type scoreItem struct {
	Winner   string    `json:"winner"`
	FullTime scoreTime `json:"fullTime"`
}

type matchItem struct {
	ID       int64     `json:"id" validate:"required,gt=0"`
	UTCDate  time.Time `json:"utcDate"`
	Status   string    `json:"status"`
	Matchday int       `json:"matchday"`
	HomeTeam teamItem  `json:"homeTeam"`
	AwayTeam teamItem  `json:"awayTeam"`
	Score    scoreItem `json:"score"`
}

type matchesEnvelope struct {
	Matches []matchItem `json:"matches"`
}

func (t teamItem) toDomain() team.Team {
	return team.Team{
		ID:        strconv.FormatInt(t.ID, 10),
		Name:      t.Name,
		ShortName: t.ShortName,
		TLA:       t.TLA,
		CrestURL:  t.Crest,
	}
}

func (r tableRow) toDomain() standing.Standing {
	return standing.Standing{
		Position:       r.Position,
		Team:           r.Team.toDomain(),
		Played:         r.PlayedGames,
		Won:            r.Won,
		Draw:           r.Draw,
		Lost:           r.Lost,
		Points:         r.Points,
		GoalsFor:       r.GoalsFor,
		GoalsAgainst:   r.GoalsAgainst,
		GoalDifference: r.GoalDifference,
		Form:           r.Form,
	}
}

func (m matchItem) toDomain() match.Match {
	out := match.Match{
		ID:       strconv.FormatInt(m.ID, 10),
		UTCDate:  m.UTCDate,
		HomeTeam: m.HomeTeam.toDomain(),
		AwayTeam: m.AwayTeam.toDomain(),
		Status:   match.NormalizeStatus(m.Status),
		Matchday: m.Matchday,
	}

	// The provider always sends a score block; it only means something once
	// the match has concluded.
	if out.Finished() && m.Score.FullTime.Home != nil && m.Score.FullTime.Away != nil {
		out.Score = &match.Score{
			Winner:    m.Score.Winner,
			HomeGoals: *m.Score.FullTime.Home,
			AwayGoals: *m.Score.FullTime.Away,
		}
	}

	return out
}

package standing

import (
	"fmt"

	"github.com/riskibarqy/pitchside/internal/domain/team"
)

// Standing is one league-table row: a team's rank and aggregate season
// record. The table is ordered by Position ascending and is treated as
// immutable for the session once fetched.
type Standing struct {
	Position       int
	Team           team.Team
	Played         int
	Won            int
	Draw           int
	Lost           int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Form           string
}

func (s Standing) Validate() error {
	if s.Position <= 0 {
		return fmt.Errorf("standing position must be 1-based, got %d", s.Position)
	}
	if err := s.Team.Validate(); err != nil {
		return fmt.Errorf("standing team: %w", err)
	}
	if s.GoalDifference != s.GoalsFor-s.GoalsAgainst {
		return fmt.Errorf("goal difference %d does not match goals %d-%d", s.GoalDifference, s.GoalsFor, s.GoalsAgainst)
	}

	return nil
}

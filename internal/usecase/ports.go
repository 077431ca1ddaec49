package usecase

import (
	"context"

	"github.com/riskibarqy/pitchside/internal/domain/match"
	"github.com/riskibarqy/pitchside/internal/domain/standing"
)

// SeasonDataSource is the provider boundary. FetchStandings returns the
// league table ordered by position; FetchMatches returns one team's season
// fixtures in the provider's matchday/date order. Failures from either call
// are marked with ErrFetch.
type SeasonDataSource interface {
	FetchStandings(ctx context.Context) ([]standing.Standing, error)
	FetchMatches(ctx context.Context, teamID string) ([]match.Match, error)
}

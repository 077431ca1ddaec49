package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/pitchside/internal/domain/match"
	"github.com/riskibarqy/pitchside/internal/domain/team"
	"github.com/riskibarqy/pitchside/internal/platform/resilience"
)

// MatchCache memoizes per-team match fetches for the process lifetime.
// At most one underlying fetch happens per team id per run: a stored list is
// never refreshed, so match status cannot silently change behind the user's
// back mid-session. Keys are team identity, not object identity, so equal
// teams reconstructed from separate payloads still hit the cache.
//
// Entries are write-once then read-only; concurrent first requests for the
// same team coalesce onto a single fetch. Failed fetches are never stored,
// so reselecting the team retries.
type MatchCache struct {
	source SeasonDataSource

	mu      sync.RWMutex
	entries map[string][]match.Match
	flight  resilience.SingleFlight[[]match.Match]
}

func NewMatchCache(source SeasonDataSource) *MatchCache {
	return &MatchCache{
		source:  source,
		entries: make(map[string][]match.Match),
	}
}

// Get returns the team's full match list, fetching it on first use.
func (c *MatchCache) Get(ctx context.Context, t team.Team) ([]match.Match, error) {
	if t.ID == "" {
		return nil, fmt.Errorf("%w: team id is empty", ErrInvalidInput)
	}

	if matches, ok := c.lookup(t.ID); ok {
		return matches, nil
	}

	matches, err, _ := c.flight.Do(t.ID, func() ([]match.Match, error) {
		// Re-check under the flight: a previous leader may have stored the
		// entry between our miss and this call.
		if matches, ok := c.lookup(t.ID); ok {
			return matches, nil
		}

		matches, fetchErr := c.source.FetchMatches(ctx, t.ID)
		if fetchErr != nil {
			return nil, fetchErr
		}

		c.mu.Lock()
		c.entries[t.ID] = matches
		c.mu.Unlock()
		return matches, nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Cached reports whether the team's matches are already stored, without
// triggering a fetch.
func (c *MatchCache) Cached(teamID string) bool {
	_, ok := c.lookup(teamID)
	return ok
}

func (c *MatchCache) lookup(teamID string) ([]match.Match, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matches, ok := c.entries[teamID]
	return matches, ok
}

package usecase

import (
	"testing"

	"github.com/riskibarqy/pitchside/internal/domain/match"
)

func fixtures(statuses ...string) []match.Match {
	out := make([]match.Match, 0, len(statuses))
	for i, status := range statuses {
		out = append(out, match.Match{
			ID:       string(rune('a' + i)),
			Matchday: i + 1,
			Status:   status,
		})
	}
	return out
}

func TestApplyFilter_AllIsIdentity(t *testing.T) {
	t.Parallel()

	for _, items := range [][]match.Match{
		nil,
		{},
		fixtures(match.StatusFinished, match.StatusScheduled, match.StatusFinished),
	} {
		got := ApplyFilter(items, ModeAll)
		if len(got) != len(items) {
			t.Fatalf("ALL changed length: got=%d want=%d", len(got), len(items))
		}
		for i := range items {
			if got[i].ID != items[i].ID {
				t.Fatalf("ALL reordered at %d: got=%s want=%s", i, got[i].ID, items[i].ID)
			}
		}
	}
}

func TestApplyFilter_PlayedUnplayedPartition(t *testing.T) {
	t.Parallel()

	items := fixtures(
		match.StatusFinished,
		match.StatusScheduled,
		match.StatusFinished,
		match.StatusTimed,
		match.StatusPostponed,
		match.StatusFinished,
	)

	played := ApplyFilter(items, ModePlayed)
	unplayed := ApplyFilter(items, ModeUnplayed)

	if len(played)+len(unplayed) != len(items) {
		t.Fatalf("partition lost matches: %d+%d != %d", len(played), len(unplayed), len(items))
	}

	seen := make(map[string]int, len(items))
	for _, item := range played {
		if !item.Finished() {
			t.Fatalf("PLAYED kept unfinished match %s", item.ID)
		}
		seen[item.ID]++
	}
	for _, item := range unplayed {
		if item.Finished() {
			t.Fatalf("UNPLAYED kept finished match %s", item.ID)
		}
		seen[item.ID]++
	}
	for _, item := range items {
		if seen[item.ID] != 1 {
			t.Fatalf("match %s appeared %d times across the partition", item.ID, seen[item.ID])
		}
	}

	// Stable: relative order within each side matches the source order.
	lastDay := 0
	for _, item := range played {
		if item.Matchday < lastDay {
			t.Fatalf("PLAYED reordered: matchday %d after %d", item.Matchday, lastDay)
		}
		lastDay = item.Matchday
	}
}

func TestCursorFor_FirstUnplayed(t *testing.T) {
	t.Parallel()

	items := fixtures(match.StatusFinished, match.StatusFinished, match.StatusScheduled, match.StatusScheduled)

	if got := CursorFor(ApplyFilter(items, ModeAll), ModeAll); got != 2 {
		t.Fatalf("ALL cursor got=%d want=2", got)
	}
	if got := CursorFor(ApplyFilter(items, ModeUnplayed), ModeUnplayed); got != 0 {
		t.Fatalf("UNPLAYED cursor got=%d want=0", got)
	}
}

func TestCursorFor_AllFinishedFallsBackToTop(t *testing.T) {
	t.Parallel()

	items := fixtures(match.StatusFinished, match.StatusFinished)
	if got := CursorFor(ApplyFilter(items, ModeAll), ModeAll); got != 0 {
		t.Fatalf("cursor got=%d want=0", got)
	}
}

func TestCursorFor_PlayedAlwaysTop(t *testing.T) {
	t.Parallel()

	items := fixtures(match.StatusFinished, match.StatusScheduled, match.StatusFinished)
	if got := CursorFor(ApplyFilter(items, ModePlayed), ModePlayed); got != 0 {
		t.Fatalf("cursor got=%d want=0", got)
	}
}

func TestCursorFor_EmptySequence(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{ModeAll, ModePlayed, ModeUnplayed} {
		if got := CursorFor(nil, mode); got != 0 {
			t.Fatalf("mode %s: cursor got=%d want=0 on empty input", mode, got)
		}
	}
}

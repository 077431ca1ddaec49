package usecase

import "github.com/riskibarqy/pitchside/internal/domain/match"

// Mode selects which subset of a team's matches is visible.
type Mode string

const (
	ModeAll      Mode = "ALL"
	ModePlayed   Mode = "PLAYED"
	ModeUnplayed Mode = "UNPLAYED"
)

// ApplyFilter projects the full match list through the mode. ALL is the
// identity; PLAYED and UNPLAYED partition by Finished. The filter is stable:
// relative source order is preserved and nothing is re-sorted.
func ApplyFilter(matches []match.Match, mode Mode) []match.Match {
	if mode == ModeAll {
		out := make([]match.Match, len(matches))
		copy(out, matches)
		return out
	}

	wantFinished := mode == ModePlayed
	out := make([]match.Match, 0, len(matches))
	for _, item := range matches {
		if item.Finished() == wantFinished {
			out = append(out, item)
		}
	}
	return out
}

// CursorFor picks the initial focus row for a freshly filtered view: the
// first unplayed match for ALL and UNPLAYED, the top of the list for PLAYED
// (there is no "next to play" reference point among finished matches). An
// empty list yields 0. The position is re-derived from the filtered slice on
// every mode change because raw row indices are invalid across filters.
func CursorFor(visible []match.Match, mode Mode) int {
	if mode == ModePlayed {
		return 0
	}

	for i, item := range visible {
		if !item.Finished() {
			return i
		}
	}
	return 0
}

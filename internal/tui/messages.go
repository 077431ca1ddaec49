package tui

// matchesLoadedMsg reports a finished cache warm-up for one team. The update
// loop drops it when the user has already moved on to another selection.
type matchesLoadedMsg struct {
	teamID string
	err    error
}

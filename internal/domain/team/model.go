package team

import "fmt"

// Team is one club in the competition. Identity is the provider's stable
// team id; display fields may differ between payloads for the same id.
type Team struct {
	ID        string
	Name      string
	ShortName string
	TLA       string
	CrestURL  string
}

// Equal reports identity equality. Two Team values with the same ID are the
// same club regardless of display fields.
func (t Team) Equal(other Team) bool {
	return t.ID == other.ID
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// DisplayName prefers the short name for narrow layouts.
func (t Team) DisplayName() string {
	if t.ShortName != "" {
		return t.ShortName
	}
	return t.Name
}

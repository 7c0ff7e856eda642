package fixture

import (
	"fmt"
	"time"
)

// Fixture represents one scheduled match read from a league CSV.
type Fixture struct {
	LeagueID    string
	KickoffAt   time.Time
	HomeTeam    string
	AwayTeam    string
	Competition string
}

func (f Fixture) Validate() error {
	if f.LeagueID == "" {
		return fmt.Errorf("fixture league id is required")
	}
	if f.KickoffAt.IsZero() {
		return fmt.Errorf("fixture kickoff time is required")
	}
	if f.HomeTeam == "" {
		return fmt.Errorf("fixture home team is required")
	}
	if f.AwayTeam == "" {
		return fmt.Errorf("fixture away team is required")
	}

	return nil
}

// Title is the calendar event summary for the fixture.
func (f Fixture) Title() string {
	return f.HomeTeam + " vs " + f.AwayTeam
}

// WithTeams returns a copy with both team names replaced. Rows are never
// rewritten in place; canonicalization always produces new values.
func (f Fixture) WithTeams(home, away string) Fixture {
	f.HomeTeam = home
	f.AwayTeam = away
	return f
}

// Involves reports whether either side of the fixture is in the given set.
func (f Fixture) Involves(teams map[string]struct{}) bool {
	if _, ok := teams[f.HomeTeam]; ok {
		return true
	}
	_, ok := teams[f.AwayTeam]

	return ok
}

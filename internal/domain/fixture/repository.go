package fixture

import "context"

// Repository describes fixture loading needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Fixture, error)
	TeamNamesByLeague(ctx context.Context, leagueID string) ([]string, error)
}

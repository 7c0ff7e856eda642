package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchcal/internal/domain/alias"
	"github.com/riskibarqy/matchcal/internal/domain/fixture"
	"github.com/riskibarqy/matchcal/internal/domain/league"
	"github.com/riskibarqy/matchcal/internal/platform/cache"
)

// LeagueTeams is one league's clustered team catalog. Canonical holds the
// selectable names; AliasMap records how every raw spelling folds into them.
type LeagueTeams struct {
	League    league.League
	Canonical []string
	AliasMap  map[string]string
}

// CatalogService lists leagues and their clustered team names. Clustering
// runs per league in isolation: alias maps are never shared across leagues,
// so the same club name in two files stays two independent entries.
type CatalogService struct {
	leagueRepo       league.Repository
	fixtureRepo      fixture.Repository
	store            *cache.Store[LeagueTeams]
	defaultThreshold int
	protected        alias.ProtectedPairs
}

func NewCatalogService(
	leagueRepo league.Repository,
	fixtureRepo fixture.Repository,
	store *cache.Store[LeagueTeams],
	defaultThreshold int,
	protected alias.ProtectedPairs,
) *CatalogService {
	return &CatalogService{
		leagueRepo:       leagueRepo,
		fixtureRepo:      fixtureRepo,
		store:            store,
		defaultThreshold: defaultThreshold,
		protected:        protected,
	}
}

func (s *CatalogService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

// ListLeagueTeams clusters the league's raw team names into canonical
// entries. A negative threshold selects the service default. Results are
// cached per league and threshold.
func (s *CatalogService) ListLeagueTeams(ctx context.Context, leagueID string, threshold int) (LeagueTeams, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListLeagueTeams")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return LeagueTeams{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if threshold < 0 {
		threshold = s.defaultThreshold
	}

	key := "teams:" + leagueID + ":" + strconv.Itoa(threshold)
	load := func(ctx context.Context) (LeagueTeams, error) {
		return s.clusterLeagueTeams(ctx, leagueID, threshold)
	}

	if s.store == nil {
		return load(ctx)
	}

	return s.store.GetOrLoad(ctx, key, load)
}

func (s *CatalogService) clusterLeagueTeams(ctx context.Context, leagueID string, threshold int) (LeagueTeams, error) {
	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return LeagueTeams{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return LeagueTeams{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	names, err := s.fixtureRepo.TeamNamesByLeague(ctx, leagueID)
	if err != nil {
		return LeagueTeams{}, fmt.Errorf("team names by league: %w", err)
	}

	clusters := alias.BuildClusters(names, alias.Config{
		Threshold: threshold,
		Protected: s.protected,
	})

	return LeagueTeams{
		League:    item,
		Canonical: clusters.Canonical,
		AliasMap:  clusters.Mapping,
	}, nil
}

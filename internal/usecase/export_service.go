package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchcal/internal/domain/alias"
	"github.com/riskibarqy/matchcal/internal/domain/fixture"
	"github.com/riskibarqy/matchcal/internal/domain/league"
	"github.com/riskibarqy/matchcal/internal/infrastructure/ics"
	"github.com/riskibarqy/matchcal/internal/platform/logging"
)

// ExportInput selects what goes into the calendars. Empty LeagueIDs means
// every league in the data directory; Teams is the canonical vocabulary the
// user picked. A negative Threshold selects the service default.
type ExportInput struct {
	LeagueIDs []string
	Teams     []string
	Threshold int
}

// LeagueCalendar is one league's share of an export.
type LeagueCalendar struct {
	League   league.League
	Fixtures []fixture.Fixture
	Payload  []byte
}

// ExportResult carries the combined calendar plus per-league calendars for
// every league that had at least one retained fixture.
type ExportResult struct {
	Combined []byte
	Leagues  []LeagueCalendar
	Total    int
}

// ExportService resolves fixture team names against the selected vocabulary,
// filters the rows, and emits iCalendar payloads.
type ExportService struct {
	leagueRepo       league.Repository
	fixtureRepo      fixture.Repository
	writer           *ics.Writer
	defaultThreshold int
	workers          int
	logger           *logging.Logger
}

func NewExportService(
	leagueRepo league.Repository,
	fixtureRepo fixture.Repository,
	writer *ics.Writer,
	defaultThreshold int,
	workers int,
	logger *logging.Logger,
) *ExportService {
	if writer == nil {
		writer = ics.NewWriter(nil)
	}
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ExportService{
		leagueRepo:       leagueRepo,
		fixtureRepo:      fixtureRepo,
		writer:           writer,
		defaultThreshold: defaultThreshold,
		workers:          workers,
		logger:           logger,
	}
}

// Preview returns the retained, relabeled fixtures across all selected
// leagues, sorted by kickoff time.
func (s *ExportService) Preview(ctx context.Context, input ExportInput) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.Preview")
	defer span.End()

	calendars, err := s.collect(ctx, input)
	if err != nil {
		return nil, err
	}

	return mergeFixtures(calendars), nil
}

// BuildCalendars renders one combined calendar and one calendar per league
// with retained fixtures. It fails with ErrEmptyExport when nothing matched
// the selection.
func (s *ExportService) BuildCalendars(ctx context.Context, input ExportInput) (ExportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.BuildCalendars")
	defer span.End()

	calendars, err := s.collect(ctx, input)
	if err != nil {
		return ExportResult{}, err
	}

	combined := mergeFixtures(calendars)
	if len(combined) == 0 {
		return ExportResult{}, ErrEmptyExport
	}

	out := ExportResult{Total: len(combined)}
	out.Combined, err = s.writer.Serialize(combined)
	if err != nil {
		return ExportResult{}, fmt.Errorf("serialize combined calendar: %w", err)
	}

	for _, cal := range calendars {
		if len(cal.Fixtures) == 0 {
			continue
		}
		cal.Payload, err = s.writer.Serialize(cal.Fixtures)
		if err != nil {
			return ExportResult{}, fmt.Errorf("serialize calendar for %s: %w", cal.League.ID, err)
		}
		out.Leagues = append(out.Leagues, cal)
	}

	s.logger.InfoContext(ctx, "calendars built",
		"leagues", len(out.Leagues), "fixtures", out.Total)

	return out, nil
}

// collect loads, canonicalizes, and filters every selected league on a
// worker pool. Results keep the input league order regardless of worker
// completion order.
func (s *ExportService) collect(ctx context.Context, input ExportInput) ([]LeagueCalendar, error) {
	teams := make([]string, 0, len(input.Teams))
	for _, team := range input.Teams {
		if t := strings.TrimSpace(team); t != "" {
			teams = append(teams, t)
		}
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: at least one team must be selected", ErrInvalidInput)
	}

	threshold := input.Threshold
	if threshold < 0 {
		threshold = s.defaultThreshold
	}

	leagues, err := s.selectLeagues(ctx, input.LeagueIDs)
	if err != nil {
		return nil, err
	}
	if len(leagues) == 0 {
		return nil, nil
	}

	resolver := alias.NewResolver(teams, threshold, nil)
	selected := make(map[string]struct{}, len(teams))
	for _, team := range teams {
		selected[team] = struct{}{}
	}

	pool, err := ants.NewPool(min(s.workers, len(leagues)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	calendars := make([]LeagueCalendar, len(leagues))
	errs := make([]error, len(leagues))

	var wg sync.WaitGroup
	for i, item := range leagues {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			retained, err := s.collectLeague(ctx, item, resolver, selected)
			if err != nil {
				errs[i] = err
				return
			}
			calendars[i] = LeagueCalendar{League: item, Fixtures: retained}
		}); err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit league task: %w", err)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return calendars, nil
}

func (s *ExportService) collectLeague(
	ctx context.Context,
	item league.League,
	resolver *alias.Resolver,
	selected map[string]struct{},
) ([]fixture.Fixture, error) {
	rows, err := s.fixtureRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures for %s: %w", item.ID, err)
	}

	retained := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		canonical := row.WithTeams(resolver.Resolve(row.HomeTeam), resolver.Resolve(row.AwayTeam))
		if canonical.Involves(selected) {
			retained = append(retained, canonical)
		}
	}

	sort.SliceStable(retained, func(i, j int) bool {
		return retained[i].KickoffAt.Before(retained[j].KickoffAt)
	})

	return retained, nil
}

func (s *ExportService) selectLeagues(ctx context.Context, ids []string) ([]league.League, error) {
	all, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	if len(ids) == 0 {
		return all, nil
	}

	byID := make(map[string]league.League, len(all))
	for _, item := range all {
		byID[item.ID] = item
	}

	out := make([]league.League, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		item, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: league=%s", ErrNotFound, id)
		}
		out = append(out, item)
	}

	return out, nil
}

// mergeFixtures flattens per-league rows into one kickoff-ordered slice.
// Ties sort by league id then title so repeated runs emit identical output.
func mergeFixtures(calendars []LeagueCalendar) []fixture.Fixture {
	var out []fixture.Fixture
	for _, cal := range calendars {
		out = append(out, cal.Fixtures...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		if out[i].LeagueID != out[j].LeagueID {
			return out[i].LeagueID < out[j].LeagueID
		}
		return out[i].Title() < out[j].Title()
	})

	return out
}

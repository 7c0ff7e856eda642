package csvdir

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchcal/internal/domain/fixture"
	"github.com/riskibarqy/matchcal/internal/domain/league"
	"github.com/riskibarqy/matchcal/internal/platform/logging"
)

// ErrLeagueNotFound marks lookups for a league id with no backing CSV file.
var ErrLeagueNotFound = crerr.New("league csv not found")

// Config stores repository parameters. Zero-value tables fall back to the
// league package defaults.
type Config struct {
	Dir           string
	NameTable     map[string]string
	TimezoneTable map[string]string
	Logger        *logging.Logger
}

// Repository reads leagues and fixtures from a directory of CSV files,
// one file per league. It implements league.Repository and
// fixture.Repository.
type Repository struct {
	dir    string
	names  map[string]string
	tz     map[string]string
	logger *logging.Logger
}

func NewRepository(cfg Config) *Repository {
	names := cfg.NameTable
	if names == nil {
		names = league.DefaultNameTable
	}
	tz := cfg.TimezoneTable
	if tz == nil {
		tz = league.DefaultTimezoneTable
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Repository{
		dir:    cfg.Dir,
		names:  names,
		tz:     tz,
		logger: logger,
	}
}

// List scans the directory for *.csv files, sorted case-insensitively by
// file name, and derives each league's label and timezone from the name.
func (r *Repository) List(_ context.Context) ([]league.League, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, crerr.Wrapf(err, "read data dir %s", r.dir)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			files = append(files, entry.Name())
		}
	}
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i]) < strings.ToLower(files[j])
	})

	out := make([]league.League, 0, len(files))
	for _, fileName := range files {
		out = append(out, r.leagueFromFile(fileName))
	}

	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (league.League, bool, error) {
	leagues, err := r.List(ctx)
	if err != nil {
		return league.League{}, false, err
	}

	for _, item := range leagues {
		if item.ID == id {
			return item, true, nil
		}
	}

	return league.League{}, false, nil
}

// ListByLeague parses the league's CSV into fixtures. Rows with dates that
// fail every known layout are dropped, matching how the CSV sources behave
// in practice; the drop count is logged.
func (r *Repository) ListByLeague(ctx context.Context, leagueID string) ([]fixture.Fixture, error) {
	item, ok, err := r.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, crerr.Wrapf(ErrLeagueNotFound, "league %s", leagueID)
	}

	fixtures, dropped, err := r.parseFile(filepath.Join(r.dir, item.FileName), item)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		r.logger.WarnContext(ctx, "dropped fixture rows with unparseable dates",
			"league", leagueID, "dropped", dropped)
	}

	return fixtures, nil
}

// TeamNamesByLeague returns the distinct home and away names of the league,
// sorted lexicographically.
func (r *Repository) TeamNamesByLeague(ctx context.Context, leagueID string) ([]string, error) {
	fixtures, err := r.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(fixtures)*2)
	for _, f := range fixtures {
		seen[f.HomeTeam] = struct{}{}
		seen[f.AwayTeam] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)

	return out, nil
}

func (r *Repository) leagueFromFile(fileName string) league.League {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	name := league.CleanName(fileName, r.names)

	return league.League{
		ID:       stem,
		Name:     name,
		FileName: fileName,
		Timezone: league.InferTimezone(name, r.tz),
	}
}

package csvdir

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchcal/internal/domain/fixture"
	"github.com/riskibarqy/matchcal/internal/domain/league"
)

const (
	columnDate    = "date"
	columnHome    = "home team"
	columnAway    = "away team"
	columnCompete = "competition"
	columnLeague  = "league"
)

// Source CSVs use day-first dates ("14/09/2025 18:30"); ISO layouts are
// accepted as well since exports differ between providers.
var dateLayouts = []string{
	"02/01/2006 15:04",
	"02/01/2006",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}

func (r *Repository) parseFile(path string, item league.League) ([]fixture.Fixture, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, crerr.Wrapf(err, "open league csv %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, crerr.Wrapf(err, "read header of %s", item.FileName)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{columnDate, columnHome, columnAway} {
		if _, ok := columns[required]; !ok {
			return nil, 0, crerr.Newf("league csv %s is missing column %q, found %v",
				item.FileName, required, headerNames(columns))
		}
	}

	labelColumn := -1
	if i, ok := columns[columnCompete]; ok {
		labelColumn = i
	} else if i, ok := columns[columnLeague]; ok {
		labelColumn = i
	}

	// Location per label memo: labels can vary per row when files mix
	// competitions, and each distinct label infers its own timezone.
	locations := map[string]*time.Location{}
	locationFor := func(label string) *time.Location {
		if loc, ok := locations[label]; ok {
			return loc
		}
		loc := league.LocationOrUTC(league.InferTimezone(label, r.tz))
		locations[label] = loc
		return loc
	}

	var fixtures []fixture.Fixture
	dropped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, crerr.Wrapf(err, "read row of %s", item.FileName)
		}

		home := field(record, columns[columnHome])
		away := field(record, columns[columnAway])
		if home == "" || away == "" {
			dropped++
			continue
		}

		label := item.Name
		if labelColumn >= 0 {
			if v := field(record, labelColumn); v != "" {
				label = v
			}
		}

		kickoff, ok := parseDate(field(record, columns[columnDate]), locationFor(label))
		if !ok {
			dropped++
			continue
		}

		fixtures = append(fixtures, fixture.Fixture{
			LeagueID:    item.ID,
			KickoffAt:   kickoff,
			HomeTeam:    home,
			AwayTeam:    away,
			Competition: label,
		})
	}

	return fixtures, dropped, nil
}

func parseDate(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func field(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}

func headerNames(columns map[string]int) []string {
	out := make([]string, len(columns))
	for name, i := range columns {
		if i >= 0 && i < len(out) {
			out[i] = name
		}
	}
	return out
}

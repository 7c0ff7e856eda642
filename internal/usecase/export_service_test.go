package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/matchcal/internal/domain/fixture"
	"github.com/riskibarqy/matchcal/internal/domain/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixtures() (*stubLeagueRepo, *stubFixtureRepo) {
	kick := func(day, hour int) time.Time {
		return time.Date(2025, 9, day, hour, 0, 0, 0, time.UTC)
	}

	leagues := []league.League{
		laLiga(),
		{ID: "epl-2025-UTC", Name: "Premier League", FileName: "epl-2025-UTC.csv", Timezone: "Europe/London"},
	}
	fixtures := map[string][]fixture.Fixture{
		"la-liga-2025-UTC": {
			{LeagueID: "la-liga-2025-UTC", KickoffAt: kick(20, 18), HomeTeam: "FC Barcelona", AwayTeam: "Getafe", Competition: "La Liga"},
			{LeagueID: "la-liga-2025-UTC", KickoffAt: kick(14, 20), HomeTeam: "Sevilla", AwayTeam: "Real Madrid CF", Competition: "La Liga"},
			{LeagueID: "la-liga-2025-UTC", KickoffAt: kick(15, 20), HomeTeam: "Villarreal", AwayTeam: "Osasuna", Competition: "La Liga"},
		},
		"epl-2025-UTC": {
			{LeagueID: "epl-2025-UTC", KickoffAt: kick(13, 15), HomeTeam: "Arsenal", AwayTeam: "Chelsea", Competition: "Premier League"},
		},
	}

	return &stubLeagueRepo{leagues: leagues}, &stubFixtureRepo{fixtures: fixtures}
}

func TestExportServicePreview(t *testing.T) {
	leagueRepo, fixtureRepo := exportFixtures()
	svc := NewExportService(leagueRepo, fixtureRepo, nil, 86, 4, nil)

	got, err := svc.Preview(context.Background(), ExportInput{
		Teams:     []string{"Barcelona", "Real Madrid", "Arsenal"},
		Threshold: -1,
	})
	require.NoError(t, err)

	require.Len(t, got, 3)
	// Sorted by kickoff across leagues.
	assert.Equal(t, "Arsenal vs Chelsea", got[0].Title())
	assert.Equal(t, "Sevilla vs Real Madrid", got[1].Title(), "away alias must be relabeled to its canonical name")
	assert.Equal(t, "Barcelona vs Getafe", got[2].Title(), "home alias must be relabeled to its canonical name")
}

func TestExportServicePreview_LeagueSubset(t *testing.T) {
	leagueRepo, fixtureRepo := exportFixtures()
	svc := NewExportService(leagueRepo, fixtureRepo, nil, 86, 4, nil)

	got, err := svc.Preview(context.Background(), ExportInput{
		LeagueIDs: []string{"epl-2025-UTC"},
		Teams:     []string{"Arsenal", "Barcelona"},
		Threshold: -1,
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "epl-2025-UTC", got[0].LeagueID)
}

func TestExportServiceBuildCalendars(t *testing.T) {
	leagueRepo, fixtureRepo := exportFixtures()
	svc := NewExportService(leagueRepo, fixtureRepo, nil, 86, 4, nil)

	got, err := svc.BuildCalendars(context.Background(), ExportInput{
		Teams:     []string{"Barcelona", "Arsenal"},
		Threshold: -1,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, got.Total)
	assert.Contains(t, string(got.Combined), "SUMMARY:Barcelona vs Getafe")
	assert.Contains(t, string(got.Combined), "SUMMARY:Arsenal vs Chelsea")

	require.Len(t, got.Leagues, 2)
	for _, cal := range got.Leagues {
		assert.NotEmpty(t, cal.Payload)
		assert.Len(t, cal.Fixtures, 1)
	}
	// Per-league payloads only carry their own league's events.
	assert.NotContains(t, string(got.Leagues[0].Payload), "SUMMARY:Arsenal vs Chelsea")
}

func TestExportServiceBuildCalendars_NothingMatched(t *testing.T) {
	leagueRepo, fixtureRepo := exportFixtures()
	svc := NewExportService(leagueRepo, fixtureRepo, nil, 86, 4, nil)

	_, err := svc.BuildCalendars(context.Background(), ExportInput{
		Teams:     []string{"Borussia Dortmund"},
		Threshold: -1,
	})
	assert.ErrorIs(t, err, ErrEmptyExport)
}

func TestExportServiceValidation(t *testing.T) {
	leagueRepo, fixtureRepo := exportFixtures()
	svc := NewExportService(leagueRepo, fixtureRepo, nil, 86, 4, nil)

	_, err := svc.Preview(context.Background(), ExportInput{Threshold: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Preview(context.Background(), ExportInput{
		LeagueIDs: []string{"serie-a-2025"},
		Teams:     []string{"Juventus"},
		Threshold: -1,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExportServiceDeterministicAcrossRuns(t *testing.T) {
	leagueRepo, fixtureRepo := exportFixtures()
	svc := NewExportService(leagueRepo, fixtureRepo, nil, 86, 2, nil)

	input := ExportInput{Teams: []string{"Barcelona", "Real Madrid", "Arsenal"}, Threshold: -1}

	first, err := svc.Preview(context.Background(), input)
	require.NoError(t, err)
	for range 5 {
		next, err := svc.Preview(context.Background(), input)
		require.NoError(t, err)
		require.Equal(t, first, next)
	}
}

func TestExportServiceUsesFullVocabularyForResolution(t *testing.T) {
	leagueRepo, fixtureRepo := exportFixtures()
	svc := NewExportService(leagueRepo, fixtureRepo, nil, 86, 4, nil)

	// "Unknown FC XYZ" resolves to nothing, so only rows with a selected
	// side survive; unresolved names pass through untouched.
	got, err := svc.Preview(context.Background(), ExportInput{
		Teams:     []string{"Getafe", "Unknown FC XYZ"},
		Threshold: -1,
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "FC Barcelona vs Getafe", got[0].Title(),
		"names below the threshold pass through unchanged")
}

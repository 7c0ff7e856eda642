package fixture

import (
	"testing"
	"time"
)

func TestFixtureValidate(t *testing.T) {
	kickoff := time.Date(2025, 9, 14, 18, 30, 0, 0, time.UTC)
	valid := Fixture{LeagueID: "la-liga", KickoffAt: kickoff, HomeTeam: "Barcelona", AwayTeam: "Real Madrid"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid fixture, got %v", err)
	}

	for _, invalid := range []Fixture{
		{KickoffAt: kickoff, HomeTeam: "a", AwayTeam: "b"},
		{LeagueID: "x", HomeTeam: "a", AwayTeam: "b"},
		{LeagueID: "x", KickoffAt: kickoff, AwayTeam: "b"},
		{LeagueID: "x", KickoffAt: kickoff, HomeTeam: "a"},
	} {
		if err := invalid.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", invalid)
		}
	}
}

func TestFixtureTitle(t *testing.T) {
	f := Fixture{HomeTeam: "Barcelona", AwayTeam: "Real Madrid"}
	if got := f.Title(); got != "Barcelona vs Real Madrid" {
		t.Fatalf("Title() = %q", got)
	}
}

func TestFixtureWithTeamsDoesNotMutate(t *testing.T) {
	original := Fixture{HomeTeam: "FC Barcelona", AwayTeam: "Real Madrid CF"}

	renamed := original.WithTeams("Barcelona", "Real Madrid")
	if renamed.HomeTeam != "Barcelona" || renamed.AwayTeam != "Real Madrid" {
		t.Fatalf("unexpected renamed fixture %+v", renamed)
	}
	if original.HomeTeam != "FC Barcelona" || original.AwayTeam != "Real Madrid CF" {
		t.Fatalf("original fixture was mutated: %+v", original)
	}
}

func TestFixtureInvolves(t *testing.T) {
	f := Fixture{HomeTeam: "Barcelona", AwayTeam: "Getafe"}
	selected := map[string]struct{}{"Barcelona": {}}

	if !f.Involves(selected) {
		t.Fatalf("expected home-side membership to count")
	}
	if f.Involves(map[string]struct{}{"Sevilla": {}}) {
		t.Fatalf("fixture without selected teams should not match")
	}
}

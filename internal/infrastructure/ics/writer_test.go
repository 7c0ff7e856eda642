package ics

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/matchcal/internal/domain/fixture"
)

type sequenceGenerator struct{ n int }

func (g *sequenceGenerator) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("uid-%d", g.n), nil
}

func TestWriterSerialize(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	fixtures := []fixture.Fixture{
		{
			LeagueID:    "la-liga-2025-UTC",
			KickoffAt:   time.Date(2025, 9, 14, 18, 30, 0, 0, madrid),
			HomeTeam:    "Barcelona",
			AwayTeam:    "Real Madrid",
			Competition: "La Liga",
		},
		{
			LeagueID:  "la-liga-2025-UTC",
			KickoffAt: time.Date(2025, 9, 15, 20, 0, 0, 0, madrid),
			HomeTeam:  "Sevilla",
			AwayTeam:  "Villarreal",
		},
	}

	writer := NewWriter(&sequenceGenerator{})
	payload, err := writer.Serialize(fixtures)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	text := string(payload)
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"SUMMARY:Barcelona vs Real Madrid",
		"SUMMARY:Sevilla vs Villarreal",
		"DESCRIPTION:La Liga",
		"UID:uid-1@matchcal",
		"UID:uid-2@matchcal",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("serialized calendar missing %q:\n%s", want, text)
		}
	}

	if got := strings.Count(text, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("expected 2 events, found %d", got)
	}
	// The fixture without a competition label must not emit a description.
	if got := strings.Count(text, "DESCRIPTION:"); got != 1 {
		t.Fatalf("expected 1 description, found %d", got)
	}
}

func TestWriterEmptyFixtureSet(t *testing.T) {
	writer := NewWriter(nil)

	payload, err := writer.Serialize(nil)
	if err != nil {
		t.Fatalf("serialize empty set: %v", err)
	}
	if !strings.Contains(string(payload), "BEGIN:VCALENDAR") {
		t.Fatalf("even an empty calendar must be a valid VCALENDAR")
	}
	if strings.Contains(string(payload), "BEGIN:VEVENT") {
		t.Fatalf("empty fixture set must produce no events")
	}
}

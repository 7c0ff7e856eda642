package league

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"la-liga-2025-UTC.csv", "La Liga"},
		{"epl-2025-UTC.csv", "Premier League"},
		{"premier-league-2025.csv", "Premier League"},
		{"bundesliga-2025-UTC.csv", "Bundesliga"},
		{"serie-a-2025.csv", "Serie A"},
		{"ligue-1-2025.csv", "Ligue 1"},
		{"europa-league-2026-UTC.csv", "Europa League"},
		{"scottish-premiership-2025.csv", "Scottish"},
		{"2025-fixtures.csv", "2025 Fixtures"},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			if got := CleanName(tt.fileName, DefaultNameTable); got != tt.want {
				t.Fatalf("CleanName(%q) = %q, want %q", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestCleanName_CustomTable(t *testing.T) {
	table := map[string]string{"scottish-premiership": "Scottish Premiership"}
	if got := CleanName("scottish-premiership-2025.csv", table); got != "Scottish Premiership" {
		t.Fatalf("custom table lookup failed, got %q", got)
	}
}

func TestLeagueValidate(t *testing.T) {
	valid := League{ID: "la-liga-2025-UTC", Name: "La Liga", FileName: "la-liga-2025-UTC.csv"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid league, got %v", err)
	}

	for _, invalid := range []League{
		{Name: "La Liga", FileName: "x.csv"},
		{ID: "x", FileName: "x.csv"},
		{ID: "x", Name: "La Liga"},
	} {
		if err := invalid.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", invalid)
		}
	}
}

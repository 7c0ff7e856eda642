package league

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// League is one competition backed by a single fixtures CSV file.
type League struct {
	ID       string
	Name     string
	FileName string
	Timezone string
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.FileName == "" {
		return fmt.Errorf("league file name is required")
	}

	return nil
}

// DefaultNameTable maps filename prefixes to pretty competition labels.
var DefaultNameTable = map[string]string{
	"bundesliga":        "Bundesliga",
	"la-liga":           "La Liga",
	"epl":               "Premier League",
	"premier-league":    "Premier League",
	"serie-a":           "Serie A",
	"ligue-1":           "Ligue 1",
	"ligue":             "Ligue 1",
	"eredivisie":        "Eredivisie",
	"champions-league":  "Champions League",
	"europa-league":     "Europa League",
	"conference-league": "Conference League",
}

// CleanName turns a CSV file name like "la-liga-2025-UTC.csv" into a pretty
// label like "La Liga". The leading non-numeric tokens of the stem form the
// lookup candidates against the table, two-token prefix first; when nothing
// matches, the first token is title-cased as a fallback.
func CleanName(fileName string, table map[string]string) string {
	stem := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	tokens := strings.Split(stem, "-")

	prefix := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.ContainsFunc(token, unicode.IsDigit) {
			break
		}
		prefix = append(prefix, token)
	}

	var candidates []string
	if len(prefix) >= 2 {
		candidates = append(candidates, strings.ToLower(strings.Join(prefix[:2], "-")))
	}
	if len(prefix) >= 1 {
		candidates = append(candidates, strings.ToLower(prefix[0]))
	}

	for _, key := range candidates {
		if name, ok := table[key]; ok {
			return name
		}
	}

	if len(prefix) > 0 {
		return titleCase(strings.ReplaceAll(prefix[0], "-", " "))
	}

	return titleCase(strings.ReplaceAll(stem, "-", " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

package league

import (
	"sort"
	"strings"
	"time"
)

// DefaultTimezoneTable maps competition label fragments to IANA timezone
// identifiers. Keys are matched as lowercase substrings of the label.
var DefaultTimezoneTable = map[string]string{
	"la liga":           "Europe/Madrid",
	"premier league":    "Europe/London",
	"bundesliga":        "Europe/Berlin",
	"serie a":           "Europe/Rome",
	"ligue 1":           "Europe/Paris",
	"eredivisie":        "Europe/Amsterdam",
	"champions league":  "UTC",
	"europa league":     "UTC",
	"conference league": "UTC",
}

// InferTimezone resolves a competition label to a timezone identifier by
// case-insensitive substring match against the table keys. Keys are tried
// in sorted order so the first hit is deterministic; an empty label or no
// hit yields UTC.
func InferTimezone(label string, table map[string]string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" || len(table) == 0 {
		return "UTC"
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(label, strings.ToLower(key)) {
			return table[key]
		}
	}

	return "UTC"
}

// LocationOrUTC loads the IANA location for a timezone identifier, falling
// back to UTC when the identifier is blank or unknown.
func LocationOrUTC(id string) *time.Location {
	if strings.TrimSpace(id) == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return time.UTC
	}

	return loc
}

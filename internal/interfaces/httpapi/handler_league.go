package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchcal/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.catalogService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLeagueTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueTeams")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	threshold, err := thresholdFromQuery(r.URL.Query().Get("threshold"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.catalogService.ListLeagueTeams(ctx, leagueID, threshold)
	if err != nil {
		h.logger.WarnContext(ctx, "list league teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueTeamsDTO{
		League:    leagueToDTO(teams.League),
		Canonical: teams.Canonical,
		Aliases:   teams.AliasMap,
	})
}

// thresholdFromQuery parses the optional threshold query parameter. An
// absent parameter maps to -1, which the catalog service replaces with
// its configured default.
func thresholdFromQuery(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return -1, nil
	}

	threshold, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: threshold must be an integer: %v", usecase.ErrInvalidInput, err)
	}
	if threshold < 0 || threshold > 100 {
		return 0, fmt.Errorf("%w: threshold must be between 0 and 100, got %d", usecase.ErrInvalidInput, threshold)
	}

	return threshold, nil
}

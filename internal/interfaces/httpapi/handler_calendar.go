package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/matchcal/internal/usecase"
)

func (h *Handler) PreviewCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewCalendar")
	defer span.End()

	var req calendarRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.exportService.Preview(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "calendar preview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportCalendar")
	defer span.End()

	var req calendarRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.exportService.BuildCalendars(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "calendar export failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	payload := result.Combined
	fileName := "fixtures.ics"
	if leagueID := strings.TrimSpace(r.URL.Query().Get("league")); leagueID != "" {
		calendar, ok := findLeagueCalendar(result.Leagues, leagueID)
		if !ok {
			writeError(ctx, w, fmt.Errorf("%w: league %q has no fixtures in this export", usecase.ErrNotFound, leagueID))
			return
		}
		payload = calendar.Payload
		fileName = calendar.League.ID + ".ics"
	}

	h.logger.InfoContext(ctx, "calendar exported",
		"fixtures", result.Total,
		"leagues", len(result.Leagues),
		"file_name", fileName,
	)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func findLeagueCalendar(calendars []usecase.LeagueCalendar, leagueID string) (usecase.LeagueCalendar, bool) {
	for _, calendar := range calendars {
		if calendar.League.ID == leagueID {
			return calendar, true
		}
	}
	return usecase.LeagueCalendar{}, false
}

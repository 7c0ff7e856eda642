package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchcal/internal/domain/fixture"
	"github.com/riskibarqy/matchcal/internal/domain/league"
	"github.com/riskibarqy/matchcal/internal/platform/logging"
	"github.com/riskibarqy/matchcal/internal/usecase"
)

type Handler struct {
	catalogService *usecase.CatalogService
	exportService  *usecase.ExportService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	catalogService *usecase.CatalogService,
	exportService *usecase.ExportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		catalogService: catalogService,
		exportService:  exportService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type leagueDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FileName string `json:"fileName"`
	Timezone string `json:"timezone"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:       l.ID,
		Name:     l.Name,
		FileName: l.FileName,
		Timezone: l.Timezone,
	}
}

type leagueTeamsDTO struct {
	League    leagueDTO         `json:"league"`
	Canonical []string          `json:"canonical"`
	Aliases   map[string]string `json:"aliases"`
}

type fixtureDTO struct {
	LeagueID    string `json:"leagueId"`
	KickoffAt   string `json:"kickoffAt"`
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	Competition string `json:"competition,omitempty"`
	Title       string `json:"title"`
}

func fixtureToDTO(f fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		LeagueID:    f.LeagueID,
		KickoffAt:   f.KickoffAt.Format(time.RFC3339),
		HomeTeam:    f.HomeTeam,
		AwayTeam:    f.AwayTeam,
		Competition: f.Competition,
		Title:       f.Title(),
	}
}

type calendarRequest struct {
	LeagueIDs []string `json:"leagueIds" validate:"dive,required"`
	Teams     []string `json:"teams" validate:"required,min=1,dive,required"`
	Threshold *int     `json:"threshold" validate:"omitempty,min=0,max=100"`
}

func (req calendarRequest) toInput() usecase.ExportInput {
	threshold := -1
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	return usecase.ExportInput{
		LeagueIDs: req.LeagueIDs,
		Teams:     req.Teams,
		Threshold: threshold,
	}
}

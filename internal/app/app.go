package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/matchcal/internal/config"
	"github.com/riskibarqy/matchcal/internal/domain/alias"
	"github.com/riskibarqy/matchcal/internal/domain/league"
	"github.com/riskibarqy/matchcal/internal/infrastructure/ics"
	"github.com/riskibarqy/matchcal/internal/infrastructure/repository/csvdir"
	"github.com/riskibarqy/matchcal/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchcal/internal/platform/cache"
	"github.com/riskibarqy/matchcal/internal/platform/logging"
	"github.com/riskibarqy/matchcal/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	repo := csvdir.NewRepository(csvdir.Config{
		Dir:           cfg.DataDir,
		NameTable:     mergeTable(league.DefaultNameTable, cfg.LeagueNameMap),
		TimezoneTable: mergeTable(league.DefaultTimezoneTable, cfg.TimezoneMap),
		Logger:        logger,
	})

	var store *cache.Store[usecase.LeagueTeams]
	if cfg.CacheEnabled {
		store = cache.NewStore[usecase.LeagueTeams](cfg.CacheTTL)
	}

	catalogSvc := usecase.NewCatalogService(
		repo,
		repo,
		store,
		cfg.MatchThreshold,
		alias.NewProtectedPairs(cfg.ProtectedPairs...),
	)
	exportSvc := usecase.NewExportService(
		repo,
		repo,
		ics.NewWriter(nil),
		cfg.MatchThreshold,
		cfg.ExportWorkers,
		logger,
	)

	handler := httpapi.NewHandler(catalogSvc, exportSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// mergeTable overlays overrides on the defaults without mutating either.
func mergeTable(defaults, overrides map[string]string) map[string]string {
	if len(overrides) == 0 {
		return defaults
	}

	out := make(map[string]string, len(defaults)+len(overrides))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

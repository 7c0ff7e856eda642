package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/riskibarqy/matchcal/internal/config"
	"github.com/riskibarqy/matchcal/internal/domain/alias"
	"github.com/riskibarqy/matchcal/internal/domain/league"
	"github.com/riskibarqy/matchcal/internal/infrastructure/ics"
	"github.com/riskibarqy/matchcal/internal/infrastructure/repository/csvdir"
	"github.com/riskibarqy/matchcal/internal/interfaces/cli"
	"github.com/riskibarqy/matchcal/internal/platform/logging"
	"github.com/riskibarqy/matchcal/internal/usecase"
)

func main() {
	dataDir := flag.String("data", "", "directory of league CSV files (defaults to DATA_DIR)")
	outDir := flag.String("out", "calendars", "directory for the generated .ics files")
	threshold := flag.Int("threshold", -1, "name similarity threshold 0..100 (defaults to MATCH_THRESHOLD)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *threshold >= 0 {
		if *threshold > 100 {
			fmt.Fprintln(os.Stderr, "threshold must be between 0 and 100")
			os.Exit(1)
		}
		cfg.MatchThreshold = *threshold
	}

	logger := logging.NewJSONTo(os.Stderr, cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *outDir, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, outDir string, logger *logging.Logger) error {
	repo := csvdir.NewRepository(csvdir.Config{
		Dir:    cfg.DataDir,
		Logger: logger,
	})

	catalogSvc := usecase.NewCatalogService(
		repo,
		repo,
		nil,
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

	leagues, err := catalogSvc.ListLeagues(ctx)
	if err != nil {
		return fmt.Errorf("list leagues: %w", err)
	}
	if len(leagues) == 0 {
		return fmt.Errorf("no league CSV files found in %s", cfg.DataDir)
	}

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)

	leagueIDs, err := chooseLeagues(prompter, leagues)
	if err != nil {
		return err
	}

	teamChoices, err := collectTeamNames(ctx, catalogSvc, leagueIDs)
	if err != nil {
		return err
	}

	teams, err := prompter.ChooseFrom("Select teams to follow", teamChoices)
	if err != nil {
		return fmt.Errorf("select teams: %w", err)
	}

	result, err := exportSvc.BuildCalendars(ctx, usecase.ExportInput{
		LeagueIDs: leagueIDs,
		Teams:     teams,
		Threshold: cfg.MatchThreshold,
	})
	if errors.Is(err, usecase.ErrEmptyExport) {
		return fmt.Errorf("no fixtures matched the selected teams")
	}
	if err != nil {
		return fmt.Errorf("build calendars: %w", err)
	}

	if err := writeCalendars(outDir, result); err != nil {
		return err
	}

	fmt.Printf("Wrote %d fixtures across %d league calendars to %s\n",
		result.Total, len(result.Leagues), outDir)
	return nil
}

func chooseLeagues(prompter *cli.Prompter, leagues []league.League) ([]string, error) {
	labels := make([]string, 0, len(leagues))
	idByLabel := make(map[string]string, len(leagues))
	for _, item := range leagues {
		label := fmt.Sprintf("%s (%s)", item.Name, item.ID)
		labels = append(labels, label)
		idByLabel[label] = item.ID
	}

	chosen, err := prompter.ChooseFrom("Select leagues", labels)
	if err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	ids := make([]string, 0, len(chosen))
	for _, label := range chosen {
		ids = append(ids, idByLabel[label])
	}
	return ids, nil
}

func collectTeamNames(ctx context.Context, catalogSvc *usecase.CatalogService, leagueIDs []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, id := range leagueIDs {
		teams, err := catalogSvc.ListLeagueTeams(ctx, id, -1)
		if err != nil {
			return nil, fmt.Errorf("list teams for %s: %w", id, err)
		}
		for _, name := range teams.Canonical {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func writeCalendars(outDir string, result usecase.ExportResult) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	combined := filepath.Join(outDir, "fixtures.ics")
	if err := os.WriteFile(combined, result.Combined, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", combined, err)
	}

	for _, calendar := range result.Leagues {
		path := filepath.Join(outDir, calendar.League.ID+".ics")
		if err := os.WriteFile(path, calendar.Payload, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	return nil
}

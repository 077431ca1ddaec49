package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/pitchside/internal/config"
	"github.com/riskibarqy/pitchside/internal/external/footballdata"
	"github.com/riskibarqy/pitchside/internal/platform/logging"
	"github.com/riskibarqy/pitchside/internal/tui"
	"github.com/riskibarqy/pitchside/internal/usecase"
)

func main() {
	_ = godotenv.Load(".env")

	var (
		competition string
		season      string
	)

	rootCmd := &cobra.Command{
		Use:           "pitchside",
		Short:         "Terminal dashboard for a football league table and team schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), competition, season)
		},
	}

	rootCmd.Flags().StringVarP(&competition, "competition", "c", "", "competition code, e.g. PL or BL1 (overrides FOOTBALL_COMPETITION)")
	rootCmd.Flags().StringVarP(&season, "season", "s", "", "season starting year, e.g. 2025 (overrides FOOTBALL_SEASON)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pitchside:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, competition, season string) error {
	if competition != "" {
		os.Setenv("FOOTBALL_COMPETITION", strings.ToUpper(competition))
	}
	if season != "" {
		os.Setenv("FOOTBALL_SEASON", season)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewNop()
	if cfg.LogFile != "" {
		logger, err = logging.NewFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("set up logging: %w", err)
		}
	}
	defer logger.Sync()
	logging.SetDefault(logger)

	client := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:           cfg.BaseURL,
		Token:             cfg.APIToken,
		Competition:       cfg.Competition,
		Season:            cfg.Season,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerMinute: cfg.RequestsPerMinute,
		Logger:            logger,
	})

	// The standings are the session's fixed backdrop. If they cannot be
	// loaded there is nothing to show, so fail before starting the UI.
	standings, err := client.FetchStandings(ctx)
	if err != nil {
		logger.Error("startup standings fetch failed", "error", err)
		return fmt.Errorf("load %s standings: %w", cfg.Competition, err)
	}
	if len(standings) == 0 {
		return fmt.Errorf("no standings for %s season %s", cfg.Competition, cfg.Season)
	}

	cache := usecase.NewMatchCache(client)
	nav := usecase.NewNavigator(standings, cache, logger)

	program := tea.NewProgram(tui.NewModel(nav, cache, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

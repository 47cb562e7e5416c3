// Package main provides the scouting report CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/mlb-pbp/internal/config"
	"github.com/yourusername/mlb-pbp/internal/database"
	applogger "github.com/yourusername/mlb-pbp/internal/logger"
	"github.com/yourusername/mlb-pbp/internal/models"
	"github.com/yourusername/mlb-pbp/internal/report"
	"github.com/yourusername/mlb-pbp/internal/repository"
)

var (
	configFile string
	pitcherID  int64
	batterID   int64
	sportID    int
	season     int
	balls      int
	strikes    int
	vsHand     string

	logger *logrus.Logger
	cfg    *config.Config
	db     *database.DB
	repos  *repository.Repositories
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().Int64Var(&pitcherID, "pitcher-id", 0, "Pitcher internal id")
	rootCmd.PersistentFlags().Int64Var(&batterID, "batter-id", 0, "Batter internal id")
	rootCmd.PersistentFlags().IntVar(&sportID, "sport-id", 0, "Restrict to one league")
	rootCmd.PersistentFlags().IntVar(&season, "season", 0, "Restrict to one season")
	rootCmd.PersistentFlags().IntVar(&balls, "balls", -1, "Restrict to pitches thrown at this ball count")
	rootCmd.PersistentFlags().IntVar(&strikes, "strikes", -1, "Restrict to pitches thrown at this strike count")
	rootCmd.PersistentFlags().StringVar(&vsHand, "vs-hand", "", "Restrict to one effective batter side (L or R)")
}

var rootCmd = &cobra.Command{
	Use:          "pbp-report",
	Short:        "Pitcher and batter scouting reports from persisted pitch data",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if (pitcherID == 0) == (batterID == 0) {
			return fmt.Errorf("exactly one of --pitcher-id or --batter-id is required")
		}
		if vsHand != "" && vsHand != "L" && vsHand != "R" {
			return fmt.Errorf("--vs-hand must be L or R")
		}
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

var inZoneCmd = &cobra.Command{
	Use:   "in-zone",
	Short: "In-zone rate and location breakdown per pitch type",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := fetchRows(cmd)
		if err != nil {
			return err
		}
		fmt.Println(report.InZone(rows, reportOptions()).Render())
		return nil
	},
}

var outZoneCmd = &cobra.Command{
	Use:   "out-zone",
	Short: "Out-of-zone rate, chase rate and location breakdown per pitch type",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := fetchRows(cmd)
		if err != nil {
			return err
		}
		fmt.Println(report.OutZone(rows, reportOptions()).Render())
		return nil
	},
}

func main() {
	rootCmd.AddCommand(inZoneCmd, outZoneCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.Validate(loaded); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	logger = applogger.NewLogger(cfg.App.LogLevel)
	logger.SetOutput(os.Stderr)

	db, err = database.Initialize(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	repos, err = repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to create repositories: %w", err)
	}
	return nil
}

func fetchRows(cmd *cobra.Command) ([]models.PitchScoutingRow, error) {
	filter := repository.PitchFilter{}
	if sportID != 0 {
		filter.SportID = &sportID
	}
	if season != 0 {
		filter.Season = &season
	}
	if balls >= 0 {
		filter.BallCount = &balls
	}
	if strikes >= 0 {
		filter.StrikeCount = &strikes
	}

	var (
		rows []models.PitchScoutingRow
		err  error
	)
	if pitcherID != 0 {
		rows, err = repos.Pitch.ListForPitcher(cmd.Context(), pitcherID, filter)
	} else {
		rows, err = repos.Pitch.ListForBatter(cmd.Context(), batterID, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("listing pitches: %w", err)
	}
	return rows, nil
}

func reportOptions() report.Options {
	opts := report.Options{}
	if vsHand != "" {
		opts.VsBatterHand = &vsHand
	}
	return opts
}

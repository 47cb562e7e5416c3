// Package main provides the play-by-play ingestion CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/mlb-pbp/internal/config"
	"github.com/yourusername/mlb-pbp/internal/database"
	applogger "github.com/yourusername/mlb-pbp/internal/logger"
	"github.com/yourusername/mlb-pbp/internal/metrics"
	"github.com/yourusername/mlb-pbp/internal/repository"
	"github.com/yourusername/mlb-pbp/internal/scheduler"
	"github.com/yourusername/mlb-pbp/internal/service"
	"github.com/yourusername/mlb-pbp/internal/statsapi"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile  string
	sportID     int
	startSeason int
	endSeason   int

	logger    *logrus.Logger
	cfg       *config.Config
	db        *database.DB
	repos     *repository.Repositories
	apiClient *statsapi.Client
	svc       *service.Service
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().IntVar(&sportID, "sport-id", 0, "League sport id (1=MLB, 11=AAA, ...)")
	rootCmd.PersistentFlags().IntVar(&startSeason, "start-season", 0, "First season to process")
	rootCmd.PersistentFlags().IntVar(&endSeason, "end-season", 0, "Season to stop before (exclusive); defaults to start-season+1")
}

var rootCmd = &cobra.Command{
	Use:   "pbp-sync",
	Short: "MLB play-by-play ingestion pipeline",
	Long: `Sync players, teams, games and raw plays from the MLB Stats API,
then derive structured at-bat and pitch records from the stored plays.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfiguration(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cmd.Name() == "initdb" {
			return setupDatabaseOnly()
		}
		return setupDependencies(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

// stageCmd builds a subcommand that runs one stage across the requested
// seasons. Per-record failures inside a stage are logged and counted but
// never fail the command; only a stage-level error does.
func stageCmd(use, short string, run func(ctx context.Context, sportID int, seasons service.SeasonRange) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			seasons, err := seasonRange()
			if err != nil {
				return err
			}
			return run(cmd.Context(), sportID, seasons)
		},
	}
}

var initDBCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.ApplySchema(cmd.Context(), db); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
		logger.Info("Schema applied")
		return nil
	},
}

var leaguesCmd = &cobra.Command{
	Use:   "leagues",
	Short: "List the leagues exposed by the Stats API",
	RunE: func(cmd *cobra.Command, args []string) error {
		sports, err := apiClient.Sports(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing sports: %w", err)
		}
		for _, s := range sports {
			fmt.Printf("%4d  %-8s %s\n", s.ID, s.Code, s.Name)
		}
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the full pipeline on the configured cron schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		if sportID == 0 {
			return fmt.Errorf("--sport-id is required")
		}

		sched := scheduler.NewScheduler(svc, logger)
		if err := sched.SchedulePipeline(cfg.Sync.Schedule, sportID); err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}
		logger.WithField("next_run", sched.NextRun()).Info("Scheduler running")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		return sched.Stop()
	},
}

func main() {
	rootCmd.AddCommand(
		stageCmd("players", "Sync league players", func(ctx context.Context, sportID int, seasons service.SeasonRange) error {
			_, err := svc.SyncPlayers(ctx, sportID, seasons)
			return err
		}),
		stageCmd("teams", "Sync league teams", func(ctx context.Context, sportID int, seasons service.SeasonRange) error {
			_, err := svc.SyncTeams(ctx, sportID, seasons)
			return err
		}),
		stageCmd("games", "Sync the league schedule", func(ctx context.Context, sportID int, seasons service.SeasonRange) error {
			_, err := svc.SyncGames(ctx, sportID, seasons)
			return err
		}),
		stageCmd("plays", "Stage raw plays for unprocessed games", func(ctx context.Context, sportID int, seasons service.SeasonRange) error {
			_, err := svc.LoadPlays(ctx, sportID, seasons)
			return err
		}),
		stageCmd("atbats", "Derive at-bats from staged plays", func(ctx context.Context, sportID int, seasons service.SeasonRange) error {
			_, err := svc.LoadAtBats(ctx, sportID, seasons)
			return err
		}),
		stageCmd("pitches", "Derive pitches from persisted at-bats", func(ctx context.Context, sportID int, seasons service.SeasonRange) error {
			_, err := svc.LoadPitches(ctx, sportID, seasons)
			return err
		}),
		stageCmd("fix-subs", "Repair at-bats affected by mid plate-appearance substitutions", func(ctx context.Context, sportID int, seasons service.SeasonRange) error {
			_, err := svc.FixSubstitutions(ctx, sportID, seasons)
			return err
		}),
		stageCmd("all", "Run every stage in order", func(ctx context.Context, sportID int, seasons service.SeasonRange) error {
			return svc.SyncAll(ctx, sportID, seasons)
		}),
		initDBCmd,
		leaguesCmd,
		scheduleCmd,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func seasonRange() (service.SeasonRange, error) {
	if sportID == 0 {
		return service.SeasonRange{}, fmt.Errorf("--sport-id is required")
	}
	if startSeason == 0 {
		return service.SeasonRange{}, fmt.Errorf("--start-season is required")
	}
	end := endSeason
	if end == 0 {
		end = startSeason + 1
	}
	if end <= startSeason {
		return service.SeasonRange{}, fmt.Errorf("--end-season must be after --start-season")
	}
	return service.SeasonRange{Start: startSeason, End: end}, nil
}

func loadConfiguration() error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(loaded, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(loaded); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = loaded
	return nil
}

// setupDatabaseOnly connects without requiring the schema to exist yet.
func setupDatabaseOnly() error {
	logger = applogger.NewLogger(cfg.App.LogLevel)

	var err error
	db, err = database.NewDB(context.Background(), &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

func setupDependencies(ctx context.Context) error {
	logger = applogger.NewLogger(cfg.App.LogLevel)

	var err error
	db, err = database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	repos, err = repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to create repositories: %w", err)
	}

	clientCfg := statsapi.DefaultClientConfig()
	clientCfg.BaseURL = cfg.StatsAPI.BaseURL
	clientCfg.Timeout = cfg.StatsAPI.Timeout()
	clientCfg.MaxRetries = cfg.StatsAPI.MaxRetries
	clientCfg.RateLimit = cfg.StatsAPI.RequestsPerSecond
	clientCfg.MetadataCacheTTL = cfg.StatsAPI.MetadataCacheTTL()
	apiClient = statsapi.NewClient(clientCfg, logger)

	svc = service.NewService(apiClient, repos, cfg, logger)

	if cfg.Metrics.Enabled {
		metrics.StartServer(cfg.Metrics.Port, cfg.Metrics.Path)
		logger.WithField("port", cfg.Metrics.Port).Info("Metrics server started")
	}
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/homeledger/backend/config"
	"github.com/homeledger/backend/internal/domain/valueobject"
	"github.com/homeledger/backend/internal/infra/cache"
	"github.com/homeledger/backend/internal/infra/db"
	"github.com/homeledger/backend/internal/infra/dependency"
)

var (
	flagUser    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "insightsctl",
	Short:         "Household insights operations",
	Long:          "Inspect household snapshots and insights, and create or regenerate monthly reports.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "User ID (UUID)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level to stderr")
}

// openInjector wires the application against the configured stores. Tests replace it.
var openInjector = func() (*dependency.Injector, func(), error) {
	_ = godotenv.Load()
	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without period lock", "error", err)
		redisClient = nil
	}

	injector, err := dependency.NewInjector(cfg, database.DB(), redisClient)
	if err != nil {
		_ = database.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = injector.Close()
		if redisClient != nil {
			_ = redisClient.Close()
		}
		_ = database.Close()
	}
	return injector, cleanup, nil
}

// requireUser parses --user.
func requireUser() (uuid.UUID, error) {
	if flagUser == "" {
		return uuid.Nil, fmt.Errorf("--user is required")
	}
	userID, err := uuid.Parse(flagUser)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --user %q: %w", flagUser, err)
	}
	return userID, nil
}

// parsePeriod reads a YYYY-MM period. An empty value selects now's period.
func parsePeriod(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return valueobject.PeriodKeyFor(now), nil
	}
	period, err := valueobject.ParsePeriodKey(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --period %q, expected YYYY-MM", value)
	}
	return period, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

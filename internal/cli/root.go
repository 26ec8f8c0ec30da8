package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mcoot/hiddenwords-go/internal/config"
	"github.com/mcoot/hiddenwords-go/internal/factory"
)

var (
	opts   *Options
	appCfg *config.Config
	logger zerolog.Logger
	app    *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts = DefaultOptions()
	app = nil
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "hiddenwords",
		Short: "Play hidden words against an adaptive AI",
		Long: `hiddenwords is a hidden-word grid game: each side hides words on a grid
and takes turns guessing letters, cells or whole words on the other's grid.

The AI opponent adjusts its skill to how well you are playing. Use "play"
for an interactive match and "simulate" to run batches of AI matches.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(opts.ConfigFile, cmd.Flags())
			if err != nil {
				return err
			}
			appCfg = loaded
			logger = newLogger(appCfg.Log.Level, opts.Verbose)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			err := app.Close()
			app = nil
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigFile, "config", "c", opts.ConfigFile, "Config file path (env: HIDDENWORDS_CONFIG)")
	pf.StringVarP(&opts.Output, "output", "o", opts.Output, "Output format: text, json")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Verbose output")

	// Config overrides, bound into viper by config.Load
	pf.Int("grid-size", defaults.Match.GridSize, "Grid size (env: HIDDENWORDS_MATCH_GRID_SIZE)")
	pf.Int("words", defaults.Match.WordCount, "Words hidden per side (env: HIDDENWORDS_MATCH_WORD_COUNT)")
	pf.Int("miss-limit", defaults.Match.MissLimit, "Misses allowed per side, 0 for unlimited (env: HIDDENWORDS_MATCH_MISS_LIMIT)")
	pf.Int("max-turns", defaults.Match.MaxTurns, "Turn cap before a match is drawn (env: HIDDENWORDS_MATCH_MAX_TURNS)")
	pf.String("dictionary", defaults.Match.DictionaryPath, "Dictionary file, one word per line (env: HIDDENWORDS_MATCH_DICTIONARY_PATH)")
	pf.String("storage", defaults.Storage.Type, "Storage backend: memory, redis (env: HIDDENWORDS_STORAGE_TYPE)")
	pf.String("redis-url", defaults.Storage.RedisURL, "Redis URL (env: HIDDENWORDS_STORAGE_REDIS_URL)")
	pf.String("log-level", defaults.Log.Level, "Log level: debug, info, warn, error (env: HIDDENWORDS_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newSummariesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// requireApp wires the application on first use
func requireApp(cmd *cobra.Command) (*factory.App, error) {
	if app != nil {
		return app, nil
	}
	a, err := factory.New(cmd.Context(), appCfg, logger)
	if err != nil {
		return nil, err
	}
	app = a
	return app, nil
}

func newLogger(level string, verbose bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

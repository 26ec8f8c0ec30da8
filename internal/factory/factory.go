package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcoot/hiddenwords-go/internal/config"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/clock"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/bot"
	"github.com/mcoot/hiddenwords-go/internal/services/dictionary"
	"github.com/mcoot/hiddenwords-go/internal/services/match"
	"github.com/mcoot/hiddenwords-go/internal/services/placement"
	"github.com/mcoot/hiddenwords-go/internal/services/simulation"
	"github.com/mcoot/hiddenwords-go/internal/storage"
	"github.com/mcoot/hiddenwords-go/internal/storage/memory"
	redisstorage "github.com/mcoot/hiddenwords-go/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	Config *config.Config

	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	PlacementService  *placement.Service
	BotService        *bot.Service
	MatchController   *match.Controller
	SimulationService *simulation.Service

	closers []func() error
}

// New creates a new application with all dependencies wired. The dictionary
// is loaded from cfg.Match.DictionaryPath, the storage cache, or the built-in
// list, in that order.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		store   storage.Storage
		closers []func() error
	)
	switch cfg.Storage.Type {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		redisCfg.SummaryTTL = time.Duration(cfg.Storage.SummaryTTLHours) * time.Hour
		redisStore, err := redisstorage.New(ctx, redisCfg, logger)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore.Close)
	default:
		return nil, fmt.Errorf("%w: storage type %q", model.ErrInvalidConfig, cfg.Storage.Type)
	}

	app := newWithDependencies(cfg, store, clock.New(), random.New(), logger)
	app.closers = closers

	if err := app.DictionaryService.Load(ctx, cfg.Match.DictionaryPath); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(cfg *config.Config, store storage.Storage, clk clock.Clock, rnd random.Random, logger zerolog.Logger) *App {
	dictService := dictionary.New(store, logger)
	placementService := placement.New(logger)
	botService := bot.NewService(cfg.AI, dictService, logger)
	matchController := match.NewController(cfg.Match, placementService, dictService, clk, logger)
	simulationService := simulation.New(matchController, botService, store, logger)

	return &App{
		Config:            cfg,
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		PlacementService:  placementService,
		BotService:        botService,
		MatchController:   matchController,
		SimulationService: simulationService,
	}
}

// Close releases storage connections
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

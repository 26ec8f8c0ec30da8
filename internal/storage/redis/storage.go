package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
	logger zerolog.Logger
}

// New creates a new Redis storage instance, retrying the initial ping
func New(ctx context.Context, cfg Config, logger zerolog.Logger) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)
	logger = logger.With().Str("component", "redis").Logger()

	attempts := cfg.ConnectAttempts
	if attempts == 0 {
		attempts = 1
	}

	// Verify connection
	err = retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return client.Ping(pingCtx).Err()
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(cfg.ConnectDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn().Err(err).Uint("attempt", n+1).Msg("redis ping failed, retrying")
		}),
	)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Match summary operations

func (s *Storage) SaveMatchSummary(ctx context.Context, summary *model.MatchSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, summaryKey(summary.ID), data, s.cfg.SummaryTTL)
	pipe.ZAdd(ctx, summaryIndexKey(), redis.Z{
		Score:  float64(summary.CreatedAt.UnixMilli()),
		Member: string(summary.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMatchSummary(ctx context.Context, id model.MatchID) (*model.MatchSummary, error) {
	data, err := s.client.Get(ctx, summaryKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSummaryNotFound
		}
		return nil, err
	}

	var summary model.MatchSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListMatchSummaries walks the index newest first. Expired entries are
// skipped and pruned, and further pages are read until limit summaries are
// found or the index runs out. Equal creation times order by ID descending.
func (s *Storage) ListMatchSummaries(ctx context.Context, limit int) ([]*model.MatchSummary, error) {
	summaries := []*model.MatchSummary{}
	var expired []any
	var start int64

	for {
		stop := int64(-1)
		want := limit - len(summaries)
		if limit > 0 {
			stop = start + int64(want) - 1
		}
		ids, err := s.client.ZRevRange(ctx, summaryIndexKey(), start, stop).Result()
		if err != nil {
			return nil, err
		}
		start += int64(len(ids))

		page, stale, err := s.loadSummaries(ctx, ids)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, page...)
		expired = append(expired, stale...)

		// A short or unbounded read has reached the end of the index
		if limit <= 0 || len(ids) < want || len(summaries) >= limit {
			break
		}
	}

	if len(expired) > 0 {
		if err := s.client.ZRem(ctx, summaryIndexKey(), expired...).Err(); err != nil {
			s.logger.Error().Err(err).Int("count", len(expired)).Msg("failed to prune summary index")
		}
	}

	return summaries, nil
}

// loadSummaries fetches ids in order, returning the IDs whose values expired
func (s *Storage) loadSummaries(ctx context.Context, ids []string) ([]*model.MatchSummary, []any, error) {
	if len(ids) == 0 {
		return nil, nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = summaryKey(model.MatchID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, err
	}

	summaries := make([]*model.MatchSummary, 0, len(values))
	var expired []any
	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			expired = append(expired, ids[i])
			continue
		}
		var summary model.MatchSummary
		if err := json.Unmarshal([]byte(str), &summary); err != nil {
			return nil, nil, err
		}
		summaries = append(summaries, &summary)
	}
	return summaries, expired, nil
}

func (s *Storage) DeleteMatchSummary(ctx context.Context, id model.MatchID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, summaryKey(id))
	pipe.ZRem(ctx, summaryIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	key := dictionaryKey()

	// Check if dictionary exists
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	// Get all words from the set
	words, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	return words, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	key := dictionaryKey()

	// Delete existing dictionary and add new words atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]any, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}

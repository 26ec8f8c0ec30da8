package storage

import (
	"context"

	"github.com/mcoot/hiddenwords-go/internal/model"
)

// Storage defines the interface for data persistence.
// Only finished match summaries and the dictionary cache are stored;
// live AI state never is.
type Storage interface {
	// Match summary operations
	SaveMatchSummary(ctx context.Context, summary *model.MatchSummary) error
	GetMatchSummary(ctx context.Context, id model.MatchID) (*model.MatchSummary, error)
	// ListMatchSummaries returns up to limit summaries, newest first, with
	// equal creation times ordered by ID descending. Expired summaries never
	// count toward the limit. A limit <= 0 returns all of them.
	ListMatchSummaries(ctx context.Context, limit int) ([]*model.MatchSummary, error)
	DeleteMatchSummary(ctx context.Context, id model.MatchID) error

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}

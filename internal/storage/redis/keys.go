package redis

import (
	"fmt"

	"github.com/mcoot/hiddenwords-go/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "hiddenwords"

// summaryKey returns the Redis key for a MatchSummary
func summaryKey(id model.MatchID) string {
	return fmt.Sprintf("%s:summary:%s", keyPrefix, id)
}

// summaryIndexKey returns the Redis key for the ZSET of summary IDs scored by creation time
func summaryIndexKey() string {
	return fmt.Sprintf("%s:idx:summaries", keyPrefix)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

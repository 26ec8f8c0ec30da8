package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func summaryAt(id string, created time.Time) *model.MatchSummary {
	return &model.MatchSummary{
		ID:         model.MatchID(id),
		Difficulty: model.DifficultyNormal,
		Winner:     "ai",
		FinalSkill: 0.65,
		SkillTrace: []float64{0.5, 0.65},
		CreatedAt:  created,
	}
}

// Match summary tests

func (s *StorageSuite) TestSaveAndGetMatchSummary() {
	summary := summaryAt("match-1", time.Now())

	err := s.storage.SaveMatchSummary(s.ctx, summary)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatchSummary(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(summary.Winner, retrieved.Winner)
	s.Equal(summary.SkillTrace, retrieved.SkillTrace)
}

func (s *StorageSuite) TestGetMatchSummaryNotFound() {
	_, err := s.storage.GetMatchSummary(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSummaryNotFound)
}

func (s *StorageSuite) TestStoredSummaryIsACopy() {
	summary := summaryAt("match-1", time.Now())
	_ = s.storage.SaveMatchSummary(s.ctx, summary)
	summary.SkillTrace[0] = 0.9

	retrieved, _ := s.storage.GetMatchSummary(s.ctx, "match-1")
	s.Equal(0.5, retrieved.SkillTrace[0])
}

func (s *StorageSuite) TestListMatchSummariesNewestFirst() {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveMatchSummary(s.ctx, summaryAt("old", base))
	_ = s.storage.SaveMatchSummary(s.ctx, summaryAt("new", base.Add(2*time.Minute)))
	_ = s.storage.SaveMatchSummary(s.ctx, summaryAt("mid", base.Add(time.Minute)))

	all, err := s.storage.ListMatchSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(model.MatchID("new"), all[0].ID)
	s.Equal(model.MatchID("mid"), all[1].ID)
	s.Equal(model.MatchID("old"), all[2].ID)

	limited, err := s.storage.ListMatchSummaries(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(limited, 2)
}

func (s *StorageSuite) TestListMatchSummariesTiesOrderByIDDescending() {
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveMatchSummary(s.ctx, summaryAt("a", at))
	_ = s.storage.SaveMatchSummary(s.ctx, summaryAt("c", at))
	_ = s.storage.SaveMatchSummary(s.ctx, summaryAt("b", at))

	all, err := s.storage.ListMatchSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal([]model.MatchID{"c", "b", "a"}, []model.MatchID{all[0].ID, all[1].ID, all[2].ID})
}

func (s *StorageSuite) TestListMatchSummariesEmpty() {
	summaries, err := s.storage.ListMatchSummaries(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(summaries)
}

func (s *StorageSuite) TestDeleteMatchSummary() {
	_ = s.storage.SaveMatchSummary(s.ctx, summaryAt("match-1", time.Now()))

	err := s.storage.DeleteMatchSummary(s.ctx, "match-1")
	s.Require().NoError(err)

	_, err = s.storage.GetMatchSummary(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrSummaryNotFound)
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

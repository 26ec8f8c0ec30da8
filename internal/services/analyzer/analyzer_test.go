package analyzer

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hiddenwords-go/internal/model"
)

type AnalyzerSuite struct {
	suite.Suite
}

func TestAnalyzerSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerSuite))
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

// Fill ratio tests

func (s *AnalyzerSuite) TestFillRatioEstimate() {
	s.InDelta(0.45, FillRatio(10, 10, DefaultAverageWordLength), 1e-9)
	s.InDelta(4.5/64, FillRatio(8, 1, DefaultAverageWordLength), 1e-9)
}

func (s *AnalyzerSuite) TestFillRatioClampsAndGuards() {
	s.Equal(1.0, FillRatio(2, 10, DefaultAverageWordLength))
	s.Equal(0.0, FillRatio(0, 3, DefaultAverageWordLength))
	s.Equal(0.0, FillRatio(8, 0, DefaultAverageWordLength))
}

func (s *AnalyzerSuite) TestExactFillRatio() {
	s.InDelta(0.25, ExactFillRatio(4, 4), 1e-9)
	s.Equal(1.0, ExactFillRatio(2, 9))
	s.Equal(0.0, ExactFillRatio(-1, 4))
}

func (s *AnalyzerSuite) TestDensityCategoryBoundaries() {
	s.Equal(DensityHigh, DensityCategory(0.35))
	s.Equal(DensityMedium, DensityCategory(0.349999))
	s.Equal(DensityMedium, DensityCategory(0.20))
	s.Equal(DensityLow, DensityCategory(0.199999))
	s.Equal(DensityLow, DensityCategory(0.12))
	s.Equal(DensityVeryLow, DensityCategory(0.119999))
	s.Equal(DensityVeryLow, DensityCategory(0))
	s.Equal("very_low", DensityVeryLow.String())
}

// Adjacency tests

func (s *AnalyzerSuite) TestAdjacent4() {
	s.ElementsMatch([]model.Position{pos(0, 1), pos(1, 0)}, Adjacent4(pos(0, 0), 5))
	s.Len(Adjacent4(pos(2, 2), 5), 4)
	s.Empty(Adjacent4(pos(0, 0), 1))
}

func (s *AnalyzerSuite) TestAdjacent8() {
	s.Len(Adjacent8(pos(0, 0), 5), 3)
	s.Len(Adjacent8(pos(4, 2), 5), 5)
	s.Len(Adjacent8(pos(2, 2), 5), 8)
}

func (s *AnalyzerSuite) TestCountAdjacentHits() {
	hits := NewHitSet(pos(1, 2), pos(3, 2), pos(2, 1), pos(2, 3), pos(1, 1))
	s.Equal(4, CountAdjacentHits(pos(2, 2), hits, 5))
	s.Equal(0, CountAdjacentHits(pos(4, 4), hits, 5))
}

// Hit line tests

func (s *AnalyzerSuite) TestExtendsHitLineScenario() {
	hits := NewHitSet(pos(2, 2), pos(2, 3))
	s.True(ExtendsHitLine(pos(2, 4), hits, 10))
	s.True(ExtendsHitLine(pos(2, 1), hits, 10))
	s.False(ExtendsHitLine(pos(5, 5), hits, 10))
}

func (s *AnalyzerSuite) TestExtendsHitLineBridgesGap() {
	hits := NewHitSet(pos(1, 4), pos(3, 4))
	s.True(ExtendsHitLine(pos(2, 4), hits, 10))
}

func (s *AnalyzerSuite) TestExtendsHitLineVertical() {
	hits := NewHitSet(pos(4, 0), pos(5, 0))
	s.True(ExtendsHitLine(pos(6, 0), hits, 10))
	s.True(ExtendsHitLine(pos(3, 0), hits, 10))
}

func (s *AnalyzerSuite) TestExtendsHitLineNeedsTwoHits() {
	hits := NewHitSet(pos(2, 3))
	s.False(ExtendsHitLine(pos(2, 4), hits, 10))
}

func (s *AnalyzerSuite) TestExtendsHitLineIgnoresDiagonals() {
	// Known limitation: diagonal words are placed but not followed
	hits := NewHitSet(pos(1, 1), pos(2, 2))
	s.False(ExtendsHitLine(pos(3, 3), hits, 10))
}

func (s *AnalyzerSuite) TestExtendsHitLineOutOfBounds() {
	hits := NewHitSet(pos(0, 0), pos(0, 1))
	s.False(ExtendsHitLine(pos(0, -1), hits, 10))
}

// Center bias tests

func (s *AnalyzerSuite) TestCenterBiasScore() {
	s.InDelta(0.0, CenterBiasScore(pos(0, 0), 9), 1e-9)
	s.InDelta(0.0, CenterBiasScore(pos(8, 8), 9), 1e-9)
	s.InDelta(1.0, CenterBiasScore(pos(4, 4), 9), 1e-9)
	s.Equal(1.0, CenterBiasScore(pos(0, 0), 1))

	// Even grids have no single centre cell; the middle four tie
	s.InDelta(CenterBiasScore(pos(4, 4), 8), CenterBiasScore(pos(3, 3), 8), 1e-9)
	s.Less(CenterBiasScore(pos(0, 3), 8), CenterBiasScore(pos(3, 3), 8))
}

func (s *AnalyzerSuite) TestCenterBiasScoreInRange() {
	for row := range 10 {
		for col := range 10 {
			v := CenterBiasScore(pos(row, col), 10)
			s.GreaterOrEqual(v, 0.0)
			s.LessOrEqual(v, 1.0)
		}
	}
}

// Coordinate score tests

func (s *AnalyzerSuite) TestCalculateCoordinateScoreWeights() {
	hits := NewHitSet(pos(2, 2), pos(2, 3))
	center := CenterBiasScore(pos(2, 4), 10) * 0.3

	// One adjacent hit, extends the line, sparse grid
	s.InDelta(3.0+0.5+center, CalculateCoordinateScore(pos(2, 4), hits, 10, 0), 1e-9)
	// Full grid drops the adjacency weight to 1
	s.InDelta(1.0+0.5+center, CalculateCoordinateScore(pos(2, 4), hits, 10, 1), 1e-9)
	// Midway
	s.InDelta(2.0+0.5+center, CalculateCoordinateScore(pos(2, 4), hits, 10, 0.5), 1e-9)
}

func (s *AnalyzerSuite) TestCalculateCoordinateScoreNoHits() {
	score := CalculateCoordinateScore(pos(5, 5), HitSet{}, 11, 0.2)
	s.InDelta(0.3, score, 1e-9)
}

func (s *AnalyzerSuite) TestRankCoordinatesPrefersLineExtension() {
	hits := NewHitSet(pos(2, 2), pos(2, 3))
	candidates := []model.Position{pos(9, 9), pos(5, 5), pos(2, 4), pos(3, 2)}

	ranked := RankCoordinates(candidates, hits, 10, 0.1)
	s.Require().Len(ranked, 4)
	s.Equal(pos(2, 4), ranked[0].Position)
	s.Equal(pos(3, 2), ranked[1].Position)
	s.Equal(pos(9, 9), ranked[3].Position)
	for i := 1; i < len(ranked); i++ {
		s.GreaterOrEqual(ranked[i-1].Score, ranked[i].Score)
	}
}

func (s *AnalyzerSuite) TestRankCoordinatesTiesAreRowMajor() {
	// Cells equidistant from the centre with no hits tie on score
	candidates := []model.Position{pos(4, 4), pos(0, 4), pos(4, 0), pos(0, 0)}
	ranked := RankCoordinates(candidates, HitSet{}, 5, 0)
	s.Equal(pos(0, 0), ranked[0].Position)
	s.Equal(pos(0, 4), ranked[1].Position)
	s.Equal(pos(4, 0), ranked[2].Position)
	s.Equal(pos(4, 4), ranked[3].Position)
}

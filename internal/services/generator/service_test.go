package generator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/blockfall/stc/internal/dependencies/mocks"
	"github.com/blockfall/stc/internal/dependencies/random"
	"github.com/blockfall/stc/internal/model"
)

type GeneratorSuite struct {
	suite.Suite
	random *mocks.MockRandom
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

func (s *GeneratorSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
}

// New tests

func (s *GeneratorSuite) TestNewByKind() {
	g, err := New("uniform", s.random)
	s.Require().NoError(err)
	s.IsType(&Uniform{}, g)

	g, err = New("bag", s.random)
	s.Require().NoError(err)
	s.IsType(&Bag{}, g)
}

func (s *GeneratorSuite) TestNewUnknownKind() {
	_, err := New("history", s.random)
	s.ErrorIs(err, model.ErrInvalidConfig)
}

// Uniform tests

func (s *GeneratorSuite) TestUniformFollowsRandom() {
	s.random.QueueIntn(0, 6, 2)
	g := NewUniform(s.random)

	s.Equal(model.ShapeI, g.Next())
	s.Equal(model.ShapeL, g.Next())
	s.Equal(model.ShapeT, g.Next())
}

// Bag tests

func (s *GeneratorSuite) TestBagDealsEachShapeOncePerSeven() {
	g := NewBag(random.NewSeeded(7))

	for round := 0; round < 10; round++ {
		seen := map[model.Shape]int{}
		for i := 0; i < model.ShapeCount; i++ {
			seen[g.Next()]++
		}
		s.Len(seen, model.ShapeCount, "round %d", round)
		for shape, count := range seen {
			s.Equal(1, count, "shape %s in round %d", shape, round)
		}
	}
}

func (s *GeneratorSuite) TestBagIsPermutationForAnySwapSequence() {
	s.random.QueueIntn(3, 3, 0, 1)
	s.random.Fallback = 1000
	g := NewBag(s.random)

	var got []model.Shape
	for i := 0; i < model.ShapeCount; i++ {
		got = append(got, g.Next())
	}
	s.Len(got, model.ShapeCount)
	s.ElementsMatch(model.AllShapes(), got)
}

func (s *GeneratorSuite) TestBagResetStartsNewBag() {
	g := NewBag(random.NewSeeded(3))
	_ = g.Next()
	_ = g.Next()

	g.Reset()

	seen := map[model.Shape]bool{}
	for i := 0; i < model.ShapeCount; i++ {
		seen[g.Next()] = true
	}
	s.Len(seen, model.ShapeCount)
}

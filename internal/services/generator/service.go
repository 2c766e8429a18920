package generator

import (
	"fmt"

	"github.com/blockfall/stc/internal/config"
	"github.com/blockfall/stc/internal/dependencies/random"
	"github.com/blockfall/stc/internal/model"
)

// Generator draws the shape of each next piece
type Generator interface {
	Next() model.Shape
	Reset()
}

// New creates the generator named by kind
func New(kind string, rnd random.Random) (Generator, error) {
	switch kind {
	case config.GeneratorUniform:
		return NewUniform(rnd), nil
	case config.GeneratorBag:
		return NewBag(rnd), nil
	default:
		return nil, fmt.Errorf("%w: unknown generator %q", model.ErrInvalidConfig, kind)
	}
}

// Uniform picks every shape independently with equal probability
type Uniform struct {
	random random.Random
}

// NewUniform creates a Uniform generator
func NewUniform(rnd random.Random) *Uniform {
	return &Uniform{random: rnd}
}

// Next returns a uniformly random shape
func (g *Uniform) Next() model.Shape {
	return model.Shape(g.random.Intn(model.ShapeCount))
}

// Reset is a no-op; Uniform keeps no state
func (g *Uniform) Reset() {}

// Bag deals shuffled permutations of all seven shapes, so no shape
// waits more than twelve pieces
type Bag struct {
	random random.Random
	bag    [model.ShapeCount]model.Shape
	next   int
}

// NewBag creates an empty Bag generator; the first Next fills it
func NewBag(rnd random.Random) *Bag {
	return &Bag{random: rnd, next: model.ShapeCount}
}

// Next returns the next shape of the current bag, refilling when empty
func (g *Bag) Next() model.Shape {
	if g.next >= len(g.bag) {
		g.refill()
	}
	shape := g.bag[g.next]
	g.next++
	return shape
}

// Reset discards the current bag
func (g *Bag) Reset() {
	g.next = len(g.bag)
}

func (g *Bag) refill() {
	g.bag = model.AllShapes()
	// Fisher-Yates
	for i := len(g.bag) - 1; i > 0; i-- {
		j := g.random.Intn(i + 1)
		g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
	}
	g.next = 0
}

var (
	_ Generator = (*Uniform)(nil)
	_ Generator = (*Bag)(nil)
)

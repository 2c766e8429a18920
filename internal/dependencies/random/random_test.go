package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRandomInRange(t *testing.T) {
	r := New()
	for range 100 {
		v := r.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Equal(t, 0, r.Intn(0))
}

func TestSeededRandomIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for range 50 {
		assert.Equal(t, a.Intn(7), b.Intn(7))
	}
	assert.Equal(t, 0, a.Intn(-1))
}

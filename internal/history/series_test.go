package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesStartsZeroed(t *testing.T) {
	s := NewSeries(4)
	assert.Equal(t, []float64{0, 0, 0, 0}, s.Values())
	assert.Equal(t, 0.0, s.Latest())
}

func TestSeriesPushEvictsOldest(t *testing.T) {
	s := NewSeries(3)
	s.Push(10)
	assert.Equal(t, []float64{0, 0, 10}, s.Values())
	s.Push(20)
	assert.Equal(t, []float64{0, 10, 20}, s.Values())
	assert.Equal(t, 20.0, s.Latest())
}

func TestSeriesLengthConstant(t *testing.T) {
	const c = 5
	s := NewSeries(c)
	for i := 0; i < 3*c; i++ {
		s.Push(float64(i))
		require.Len(t, s.Values(), c)
		assert.Equal(t, float64(i), s.Latest())
	}
	// After wrapping, the window holds the last c pushes in order.
	assert.Equal(t, []float64{10, 11, 12, 13, 14}, s.Values())
}

func TestSeriesValuesIsACopy(t *testing.T) {
	s := NewSeries(2)
	s.Push(1)
	v := s.Values()
	v[0] = 99
	assert.Equal(t, []float64{0, 1}, s.Values())
}

func TestSeriesMinimumCapacity(t *testing.T) {
	s := NewSeries(0)
	s.Push(7)
	assert.Equal(t, []float64{7}, s.Values())
	assert.Equal(t, 1, s.Len())
}

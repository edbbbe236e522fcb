package tdigest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentroidUpdate(t *testing.T) {
	assert := assert.New(t)

	c := Centroid{Mean: 2, Count: 1}
	c.Update(4, 1)
	assert.Equal(Centroid{Mean: 3, Count: 2}, c)

	c.Update(0, 2)
	assert.Equal(4.0, c.Count)
	assert.InDelta(1.5, c.Mean, 1e-12)
}

func TestCentroidUpdateIsStableForLargeCounts(t *testing.T) {
	c := Centroid{Mean: 1e9, Count: 1}
	for i := 0; i < 1000000; i++ {
		c.Update(1e9+1, 1)
	}
	assert.Equal(t, 1000001.0, c.Count)
	assert.InDelta(t, 1e9+1, c.Mean, 1e-3)
}

func TestCentroidString(t *testing.T) {
	assert.Equal(t, "c{0.25 x3}", Centroid{Mean: 0.25, Count: 3}.String())
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemPercent(t *testing.T) {
	assert.Equal(t, 0.0, Snapshot{}.MemPercent())
	assert.Equal(t, 25.0, Snapshot{MemUsed: 1, MemTotal: 4}.MemPercent())
	assert.Equal(t, 100.0, Snapshot{MemUsed: 8, MemTotal: 8}.MemPercent())
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "default", cfg.Theme)
	assert.Empty(t, cfg.Filter)
	assert.False(t, cfg.JSON)
	assert.Equal(t, 20, cfg.Top)
}

func TestFromFlags(t *testing.T) {
	cfg := FromFlags([]string{"-theme", "mono", "-filter", "go", "-json", "-top", "5"})
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "go", cfg.Filter)
	assert.True(t, cfg.JSON)
	assert.Equal(t, 5, cfg.Top)
}

func TestFromFlagsNoArgs(t *testing.T) {
	assert.Equal(t, Default(), FromFlags(nil))
}

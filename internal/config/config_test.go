package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigValidates(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestDefaultConfigEnablesSimplifyAndSimpleJoin(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Simplify)
	assert.True(t, cfg.Join.Simple)
	assert.False(t, cfg.Join.Subconnectedness)
	assert.False(t, cfg.Join.GroundJoinability)
}

func TestValidateRejectsNegativeMaxCriticalPairs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCriticalPairs = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateAllowsZeroMaxCriticalPairs(t *testing.T) {
	// spec.md §8 S5 relies on max_critical_pairs = 0 being a valid,
	// meaningful configuration (halt before considering anything).
	cfg := DefaultConfig()
	cfg.MaxCriticalPairs = 0
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveMaxTermSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTermSize = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsOutOfRangeRenormalisePercent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RenormalisePercent = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.RenormalisePercent = 1.5
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveInterreduceEvery(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InterreduceEvery = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveMaxRewriteRounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRewriteRounds = 0
	assert.Error(t, cfg.Validate())
}

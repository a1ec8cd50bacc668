package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "City Library", cfg.LibraryName)
	assert.Equal(t, DefaultDailyFineRate, cfg.DailyFineRate)
	assert.Equal(t, DefaultFineThreshold, cfg.FineThreshold)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "negative fine rate",
			config:  Config{DailyFineRate: -0.50, FineThreshold: 10.00},
			wantErr: ErrNegativeFineRate,
		},
		{
			name:    "negative threshold",
			config:  Config{DailyFineRate: 0.50, FineThreshold: -1.00},
			wantErr: ErrNegativeThreshold,
		},
		{
			name:   "zero rate and threshold are valid",
			config: Config{DailyFineRate: 0, FineThreshold: 0},
		},
		{
			name:   "empty name is valid at config level",
			config: Config{DailyFineRate: 0.25, FineThreshold: 5.00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sevaindia/fundlink/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name          string
		config        *config.Config
		expectedError bool
	}{
		{
			name: "Valid log level info",
			config: &config.Config{
				LogLvl: "info",
			},
			expectedError: false,
		},
		{
			name: "Valid log level error",
			config: &config.Config{
				LogLvl: "error",
			},
			expectedError: false,
		},
		{
			name: "Valid log level debug",
			config: &config.Config{
				LogLvl: "debug",
			},
			expectedError: false,
		},
		{
			name: "Invalid log level",
			config: &config.Config{
				LogLvl: "invalid",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.config)

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"valid with explicit file", Config{DataDir: "/tmp/data", DBFile: "orders.db"}, nil},
		{"valid with default file", Config{DataDir: "/tmp/data"}, nil},
		{"missing data dir", Config{}, ErrDataDirEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, tt.cfg.DBFile)
		})
	}
}

func TestConfigValidate_FillsDefaultDBFile(t *testing.T) {
	cfg := Config{DataDir: "/tmp/data"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultDBFileName, cfg.DBFile)

	cfg = Config{DataDir: "/tmp/data", DBFile: "custom.db"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "custom.db", cfg.DBFile)
}

package polly

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRegion(t *testing.T) {
	tests := []struct {
		name     string
		override string
		fromEnv  string
		want     string
	}{
		{"override wins over env", "us-east-1", "ap-south-1", "us-east-1"},
		{"override without env", "us-east-1", "", "us-east-1"},
		{"env when no override", "", "ap-south-1", "ap-south-1"},
		{"fallback", "", "", "eu-west-1"},
		{"blank override ignored", "  ", "", DefaultRegion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRegion(tt.override, tt.fromEnv))
		})
	}
}

func TestNew_RegionChain(t *testing.T) {
	// Изолируем от ~/.aws: shared config и credentials указывают в никуда.
	missing := filepath.Join(t.TempDir(), "missing")
	t.Setenv("AWS_CONFIG_FILE", missing)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", missing)
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_DEFAULT_REGION", "")

	tests := []struct {
		name     string
		envVal   string
		override string
		want     string
	}{
		{"override wins over env", "ap-south-1", "us-east-1", "us-east-1"},
		{"env when no override", "ap-south-1", "", "ap-south-1"},
		{"fallback when neither", "", "", "eu-west-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AWS_REGION", tt.envVal)

			c, err := New(context.Background(), tt.override, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Region())
		})
	}
}

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"backendservice/internal/config"
)

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MinIOConfig
		wantErr string
	}{
		{
			name:    "missing endpoint",
			cfg:     config.MinIOConfig{AccessKey: "a", SecretKey: "b", Bucket: "c"},
			wantErr: "minio endpoint is required",
		},
		{
			name:    "missing credentials",
			cfg:     config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "c"},
			wantErr: "minio credentials are required",
		},
		{
			name:    "missing bucket",
			cfg:     config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"},
			wantErr: "minio bucket is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(context.Background(), tt.cfg)
			assert.EqualError(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
}

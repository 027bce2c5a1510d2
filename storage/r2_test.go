package storage

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinPublicURL(t *testing.T) {
	base, err := url.Parse("https://cdn.example.com/exports/")
	require.NoError(t, err)

	tests := []struct {
		name string
		key  string
		want string
	}{
		{"plain key", "standings/7/a.xlsx", "https://cdn.example.com/exports/standings/7/a.xlsx"},
		{"leading slash", "/standings/7/a.xlsx", "https://cdn.example.com/exports/standings/7/a.xlsx"},
		{"empty key", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinPublicURL(base, tt.key))
		})
	}

	assert.Empty(t, JoinPublicURL(nil, "x"))
}

func TestNewR2Uploader_RequiresAllFields(t *testing.T) {
	_, err := NewR2Uploader(context.Background(), R2Config{AccountID: "acc", BucketName: "b"})
	assert.Error(t, err)
}

func TestNewR2Uploader_NormalizesBaseURL(t *testing.T) {
	u, err := NewR2Uploader(context.Background(), R2Config{
		AccountID:       "acc",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "bucket",
		PublicBaseURL:   "https://pub.example.com/brackets",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pub.example.com/brackets/standings/1/x.xlsx", u.PublicURL("standings/1/x.xlsx"))
}

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	s := Load(v)
	assert.Equal(t, "s3", s.Backend)
	assert.True(t, s.CleanupEnabled)
	assert.False(t, s.CleanupConfirm)
	assert.Equal(t, 0, s.MaxSize)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLegacyEnvironment(t *testing.T) {
	t.Setenv("AWS_S3_BUCKET", "bucket")
	t.Setenv("AWS_S3_DIRNAME", "assets")
	t.Setenv("AWS_CLOUDFRONT_DOMAIN", "https://cdn.example.com/")
	t.Setenv("AWS_S3_BUCKET_REGION", "eu-central-1")
	t.Setenv("AWS_CLI_PROFILE", "sso")

	v := viper.New()
	SetDefaults(v)

	s := Load(v)
	assert.Equal(t, "bucket", s.Bucket)
	assert.Equal(t, "assets", s.Namespace)
	assert.Equal(t, "https://cdn.example.com", s.PublicBase)
	assert.Equal(t, "eu-central-1", s.Region)
	assert.Equal(t, "sso", s.Profile)
	require.NoError(t, s.Validate())
}

func TestPrefixedEnvironmentWins(t *testing.T) {
	t.Setenv("AWS_S3_BUCKET", "legacy")
	t.Setenv("MDSHIP_STORAGE_BUCKET", "prefixed")
	t.Setenv("MDSHIP_MEDIA_MAX_SIZE", "1200")

	v := viper.New()
	SetDefaults(v)

	s := Load(v)
	assert.Equal(t, "prefixed", s.Bucket)
	assert.Equal(t, 1200, s.MaxSize)
}

func TestValidateReportsMissingKeys(t *testing.T) {
	err := Settings{Bucket: "b"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyNamespace)
	assert.Contains(t, err.Error(), KeyPublicBase)
	assert.NotContains(t, err.Error(), KeyBucket)
}

package configuration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfiguration(t *testing.T) {
	t.Run("configuration_struct_exists", func(t *testing.T) {
		require.NotNil(t, &C, "Configuration should not be nil")
		require.NotNil(t, &C.App, "App configuration should exist")
		require.NotNil(t, &C.Database, "Database configuration should exist")
	})

	t.Run("defaults_applied", func(t *testing.T) {
		require.NotZero(t, C.App.Port, "App port should have a default")
		require.NotEmpty(t, C.Database.Mongo.Host, "Mongo host should have a default")
		require.NotEmpty(t, C.Database.Mongo.Port, "Mongo port should have a default")
		require.NotEmpty(t, C.Database.Mongo.Name, "Mongo database name should have a default")
		require.NotEmpty(t, C.Media.Bucket, "Media bucket should have a default")
	})
}

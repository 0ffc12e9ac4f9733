package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"inventory-api-server/internal/config"
)

func TestNewWorkspace(t *testing.T) {
	t.Run("reads defaults from the environment", func(t *testing.T) {
		t.Setenv("DATABRICKS_HOST", "https://env.example.com")
		t.Setenv("DATABRICKS_TOKEN", "env-token")

		workspace, err := config.NewWorkspace()

		require.NoError(t, err)
		require.Equal(t, "https://env.example.com", workspace.Host)
		require.Equal(t, "env-token", workspace.Token)

		// the token is unset from the environment after the read
		_, present := os.LookupEnv("DATABRICKS_TOKEN")
		require.False(t, present)
	})

	t.Run("unset environment yields blank defaults", func(t *testing.T) {
		t.Setenv("DATABRICKS_HOST", "")
		t.Setenv("DATABRICKS_TOKEN", "")

		workspace, err := config.NewWorkspace()

		require.NoError(t, err)
		require.Empty(t, workspace.Host)
		require.Empty(t, workspace.Token)
	})
}

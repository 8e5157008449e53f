package app_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bit/internal/app"
	"go.trai.ch/bit/internal/core/domain"
	_ "go.trai.ch/bit/internal/wiring" // Register providers
)

func TestAppWiring(t *testing.T) {
	t.Setenv(domain.HomeEnvVar, t.TempDir())

	// Verify that the application graph can be constructed
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}

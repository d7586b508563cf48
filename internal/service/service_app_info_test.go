package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_ConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_LinkedVersion(t *testing.T) {
	build := models.NewAppBuildInfo("v0.3.0", "2026-10-01", "abc123")

	svc, err := NewAppInfoService(config.App{}, build, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "v0.3.0", svc.GetAppVersion(context.Background()))
	assert.Equal(t, build, svc.GetBuildInfo(context.Background()))
}

func TestNewAppInfoService_ConfigOverridesLinkedVersion(t *testing.T) {
	build := models.NewAppBuildInfo("v0.3.0", "N/A", "N/A")

	svc, err := NewAppInfoService(config.App{Version: "v1.0.0"}, build, logger.Nop())

	require.NoError(t, err)
	info := svc.GetBuildInfo(context.Background())
	assert.Equal(t, "v1.0.0", info.Version)
	assert.Empty(t, info.Commit)
}

func TestNewAppInfoService_NoVersion(t *testing.T) {
	for _, build := range []models.AppBuildInfo{{}, {Version: "N/A"}} {
		svc, err := NewAppInfoService(config.App{}, build, logger.Nop())

		assert.Nil(t, svc)
		require.ErrorIs(t, err, ErrVersionIsNotSpecified)
	}
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

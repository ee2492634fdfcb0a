package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/internal/mock"
	"github.com/equanote/equanote/models"
)

func TestUserSyncService_EnsureUserSynced_CachesSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockRemoteGateway(ctrl)
	bridge := NewUserSyncService(gateway, logger.Nop())
	ctx := context.Background()
	user := models.User{ID: "u-1", Name: "Ada"}

	// Registration fires exactly once; the second call is a cache hit.
	gateway.EXPECT().RegisterUser(ctx, user.ToRemote()).Return(user.ToRemote(), nil).Times(1)

	assert.True(t, bridge.EnsureUserSynced(ctx, user))
	assert.True(t, bridge.EnsureUserSynced(ctx, user))
	assert.True(t, bridge.IsSynced("u-1"))
}

func TestUserSyncService_EnsureUserSynced_FailureIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockRemoteGateway(ctrl)
	bridge := NewUserSyncService(gateway, logger.Nop())
	ctx := context.Background()
	user := models.User{ID: "u-1"}

	gomock.InOrder(
		gateway.EXPECT().RegisterUser(ctx, gomock.Any()).Return(models.RemoteUser{}, errors.New("offline")),
		gateway.EXPECT().RegisterUser(ctx, gomock.Any()).Return(user.ToRemote(), nil),
	)

	assert.False(t, bridge.EnsureUserSynced(ctx, user))
	assert.False(t, bridge.IsSynced("u-1"))

	// Next attempt retries and succeeds.
	assert.True(t, bridge.EnsureUserSynced(ctx, user))
	assert.True(t, bridge.IsSynced("u-1"))
}

func TestUserSyncService_CacheIsPerUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockRemoteGateway(ctrl)
	bridge := NewUserSyncService(gateway, logger.Nop())
	ctx := context.Background()

	first := models.User{ID: "u-1"}
	second := models.User{ID: "u-2"}

	gateway.EXPECT().RegisterUser(ctx, first.ToRemote()).Return(first.ToRemote(), nil)
	gateway.EXPECT().RegisterUser(ctx, second.ToRemote()).Return(second.ToRemote(), nil)

	require.True(t, bridge.EnsureUserSynced(ctx, first))
	assert.False(t, bridge.IsSynced("u-2"))

	// A different user id misses the cache and registers again.
	require.True(t, bridge.EnsureUserSynced(ctx, second))
	assert.False(t, bridge.IsSynced("u-1"))
}

func TestUserSyncService_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockRemoteGateway(ctrl)
	bridge := NewUserSyncService(gateway, logger.Nop())
	ctx := context.Background()
	user := models.User{ID: "u-1"}

	gateway.EXPECT().RegisterUser(ctx, gomock.Any()).Return(user.ToRemote(), nil).Times(2)

	require.True(t, bridge.EnsureUserSynced(ctx, user))
	bridge.Reset()
	assert.False(t, bridge.IsSynced("u-1"))

	// After reset the same user registers again.
	require.True(t, bridge.EnsureUserSynced(ctx, user))
}

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
	"github.com/equanote/equanote/internal/store"
	"github.com/equanote/equanote/models"
)

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	gateway := mock.NewMockRemoteGateway(ctrl)
	bridge := mock.NewMockUserSyncService(ctrl)
	svc := NewUserService(users, gateway, bridge, logger.Nop())

	ctx := context.Background()
	const token = "header.payload.signature"

	gomock.InOrder(
		gateway.EXPECT().SetSession(token).Return(nil),
		gateway.EXPECT().UserID().Return("u-42"),
		users.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, saved models.User) error {
				assert.Equal(t, "u-42", saved.ID)
				assert.Equal(t, "Ada", saved.Name)
				assert.Equal(t, token, saved.SessionToken)
				assert.False(t, saved.IsGuest)
				return nil
			}),
		bridge.EXPECT().EnsureUserSynced(ctx, gomock.Any()).Return(true),
	)

	err := svc.Login(ctx, models.User{Name: "Ada"}, token)
	require.NoError(t, err)
}

func TestUserService_Login_BadTokenFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	gateway := mock.NewMockRemoteGateway(ctrl)
	bridge := mock.NewMockUserSyncService(ctrl)
	svc := NewUserService(users, gateway, bridge, logger.Nop())

	boom := errors.New("malformed token")
	gateway.EXPECT().SetSession("garbage").Return(boom)
	// The local record is never written when the token is unusable.

	err := svc.Login(context.Background(), models.User{Name: "Ada"}, "garbage")
	require.ErrorIs(t, err, boom)
}

func TestUserService_Login_RegistrationFailureDoesNotFailLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	gateway := mock.NewMockRemoteGateway(ctrl)
	bridge := mock.NewMockUserSyncService(ctrl)
	svc := NewUserService(users, gateway, bridge, logger.Nop())

	ctx := context.Background()
	gateway.EXPECT().SetSession("tok").Return(nil)
	gateway.EXPECT().UserID().Return("u-42")
	users.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	bridge.EXPECT().EnsureUserSynced(ctx, gomock.Any()).Return(false)

	err := svc.Login(ctx, models.User{Name: "Ada"}, "tok")
	require.NoError(t, err)
}

func TestUserService_LoginAsGuest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	gateway := mock.NewMockRemoteGateway(ctrl)
	bridge := mock.NewMockUserSyncService(ctrl)
	svc := NewUserService(users, gateway, bridge, logger.Nop())

	ctx := context.Background()
	var saved models.User
	users.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) error {
			saved = u
			return nil
		})
	// No gateway or bridge calls: guests have no remote identity.

	user, err := svc.LoginAsGuest(ctx, "visitor")
	require.NoError(t, err)

	assert.True(t, user.IsGuest)
	assert.Equal(t, "visitor", user.Name)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.SessionToken)
	assert.Equal(t, saved, user)
}

func TestUserService_RestoreSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("re-arms the stored session", func(t *testing.T) {
		users := mock.NewMockUserRepository(ctrl)
		gateway := mock.NewMockRemoteGateway(ctrl)
		svc := NewUserService(users, gateway, mock.NewMockUserSyncService(ctrl), logger.Nop())

		stored := models.User{ID: "u-42", Name: "Ada", SessionToken: "tok"}
		users.EXPECT().Get(gomock.Any()).Return(stored, nil)
		gateway.EXPECT().SetSession("tok").Return(nil)

		user, err := svc.RestoreSession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("stale token degrades to offline", func(t *testing.T) {
		users := mock.NewMockUserRepository(ctrl)
		gateway := mock.NewMockRemoteGateway(ctrl)
		svc := NewUserService(users, gateway, mock.NewMockUserSyncService(ctrl), logger.Nop())

		stored := models.User{ID: "u-42", SessionToken: "expired"}
		users.EXPECT().Get(gomock.Any()).Return(stored, nil)
		gateway.EXPECT().SetSession("expired").Return(errors.New("malformed token"))

		user, err := svc.RestoreSession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("guest skips the gateway", func(t *testing.T) {
		users := mock.NewMockUserRepository(ctrl)
		gateway := mock.NewMockRemoteGateway(ctrl)
		svc := NewUserService(users, gateway, mock.NewMockUserSyncService(ctrl), logger.Nop())

		users.EXPECT().Get(gomock.Any()).Return(models.User{ID: "g-1", IsGuest: true}, nil)

		_, err := svc.RestoreSession(context.Background())
		require.NoError(t, err)
	})

	t.Run("no stored user", func(t *testing.T) {
		users := mock.NewMockUserRepository(ctrl)
		gateway := mock.NewMockRemoteGateway(ctrl)
		svc := NewUserService(users, gateway, mock.NewMockUserSyncService(ctrl), logger.Nop())

		users.EXPECT().Get(gomock.Any()).Return(models.User{}, store.ErrNoUserLoggedIn)

		_, err := svc.RestoreSession(context.Background())
		require.ErrorIs(t, err, store.ErrNoUserLoggedIn)
	})
}

func TestUserService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	gateway := mock.NewMockRemoteGateway(ctrl)
	bridge := mock.NewMockUserSyncService(ctrl)
	svc := NewUserService(users, gateway, bridge, logger.Nop())

	ctx := context.Background()
	gomock.InOrder(
		users.EXPECT().Delete(ctx).Return(nil),
		gateway.EXPECT().SetSession("").Return(nil),
		bridge.EXPECT().Reset(),
	)

	require.NoError(t, svc.Logout(ctx))
}

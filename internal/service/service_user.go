package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/equanote/equanote/internal/adapter"
	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/internal/store"
	"github.com/equanote/equanote/models"
)

type userService struct {
	users   store.UserRepository
	gateway adapter.RemoteGateway
	bridge  UserSyncService
	logger  *logger.Logger
}

func NewUserService(users store.UserRepository, gateway adapter.RemoteGateway, bridge UserSyncService, logger *logger.Logger) UserService {
	return &userService{users: users, gateway: gateway, bridge: bridge, logger: logger}
}

// Login implements [UserService]. The session token is handed to the gateway
// first, which resolves the stable user id from its subject claim; the record
// is then persisted under that id. Remote profile registration runs
// best-effort through the bridge — a registration failure does not fail the
// login, it is simply retried on a later sync.
func (s *userService) Login(ctx context.Context, user models.User, sessionToken string) error {
	if err := s.gateway.SetSession(sessionToken); err != nil {
		s.logger.Err(err).Msg("failed to set remote session")
		return err
	}

	user.ID = s.gateway.UserID()
	user.IsGuest = false
	user.SessionToken = sessionToken

	if err := s.users.Save(ctx, user); err != nil {
		s.logger.Err(err).Msg("failed to persist user record")
		return err
	}

	s.bridge.EnsureUserSynced(ctx, user)

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return nil
}

// LoginAsGuest implements [UserService]. Guests get a generated local id and
// no remote session: nothing they create ever syncs until they sign in.
func (s *userService) LoginAsGuest(ctx context.Context, name string) (models.User, error) {
	user := models.User{
		ID:      uuid.NewString(),
		Name:    name,
		IsGuest: true,
	}

	if err := s.users.Save(ctx, user); err != nil {
		s.logger.Err(err).Msg("failed to persist guest record")
		return models.User{}, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("guest session started")
	return user, nil
}

// RestoreSession implements [UserService]. A stale or malformed stored token
// degrades to offline mode rather than failing startup.
func (s *userService) RestoreSession(ctx context.Context) (models.User, error) {
	user, err := s.users.Get(ctx)
	if err != nil {
		return models.User{}, err
	}

	if !user.IsGuest && user.SessionToken != "" {
		if err := s.gateway.SetSession(user.SessionToken); err != nil {
			s.logger.Err(err).Msg("failed to restore remote session")
		}
	}

	return user, nil
}

// CurrentUser implements [UserService].
func (s *userService) CurrentUser(ctx context.Context) (models.User, error) {
	return s.users.Get(ctx)
}

// Logout implements [UserService]. Clears the local record, the remote
// session, and the bridge's registration cache.
func (s *userService) Logout(ctx context.Context) error {
	if err := s.users.Delete(ctx); err != nil {
		s.logger.Err(err).Msg("failed to clear user record")
		return err
	}

	if err := s.gateway.SetSession(""); err != nil {
		s.logger.Err(err).Msg("failed to clear remote session")
	}
	s.bridge.Reset()

	s.logger.Info().Msg("user logged out")
	return nil
}

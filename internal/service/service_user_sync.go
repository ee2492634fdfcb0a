package service

import (
	"context"
	"sync"

	"github.com/equanote/equanote/internal/adapter"
	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/models"
)

type userSyncService struct {
	gateway adapter.RemoteGateway
	logger  *logger.Logger

	mu           sync.Mutex
	synced       bool
	syncedUserID string
}

// NewUserSyncService constructs a UserSyncService. The cache lives for the
// lifetime of this instance, which the composition root owns; it is an
// optimization, never a correctness requirement — registration is idempotent
// on the backend.
func NewUserSyncService(gateway adapter.RemoteGateway, logger *logger.Logger) UserSyncService {
	return &userSyncService{gateway: gateway, logger: logger}
}

// EnsureUserSynced implements [UserSyncService]. A previously observed
// successful registration for the same user id short-circuits to true.
// Otherwise the registration endpoint is called; any failure returns false
// without caching so the next attempt retries.
func (s *userSyncService) EnsureUserSynced(ctx context.Context, user models.User) bool {
	s.mu.Lock()
	alreadySynced := s.synced && s.syncedUserID == user.ID
	s.mu.Unlock()

	if alreadySynced {
		s.logger.Debug().Str("user_id", user.ID).Msg("user already synced")
		return true
	}

	s.logger.Debug().Str("user_id", user.ID).Msg("attempting to sync user")

	if _, err := s.gateway.RegisterUser(ctx, user.ToRemote()); err != nil {
		s.logger.Err(err).Str("user_id", user.ID).Msg("failed to sync user")
		return false
	}

	s.mu.Lock()
	s.synced = true
	s.syncedUserID = user.ID
	s.mu.Unlock()

	s.logger.Debug().Str("user_id", user.ID).Msg("user synced successfully")
	return true
}

// IsSynced implements [UserSyncService].
func (s *userSyncService) IsSynced(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.synced && s.syncedUserID == userID
}

// Reset implements [UserSyncService]. Must be called on logout so a different
// subsequent user id is not skipped.
func (s *userSyncService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.synced = false
	s.syncedUserID = ""
}

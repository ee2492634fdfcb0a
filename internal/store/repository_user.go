package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/models"
)

const (
	getCurrentUser = `
		SELECT id, name, email, photo_url, is_guest, session_token
		FROM current_user_record
		LIMIT 1;`

	saveCurrentUser = `
		INSERT OR REPLACE INTO current_user_record (id, name, email, photo_url, is_guest, session_token)
		VALUES (?, ?, ?, ?, ?, ?);`

	deleteCurrentUser = `DELETE FROM current_user_record;`
)

type userRepository struct {
	*DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *userRepository) Get(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.DB.QueryRowContext(ctx, getCurrentUser)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PhotoURL, &user.IsGuest, &user.SessionToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserLoggedIn
		}
		log.Err(err).
			Str("func", "userRepository.Get").
			Msg("failed to scan current user row")
		return models.User{}, fmt.Errorf("failed to scan current user row: %w", err)
	}

	return user, nil
}

// Save replaces whatever user record exists. The table holds at most one row:
// the previous record is wiped so a login after a stale session cannot leave
// two users behind.
func (r *userRepository) Save(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin save user transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteCurrentUser); err != nil {
		log.Err(err).
			Str("func", "userRepository.Save").
			Msg("failed to clear previous user record")
		return fmt.Errorf("failed to clear previous user record: %w", err)
	}

	_, err = tx.ExecContext(ctx, saveCurrentUser,
		user.ID, user.Name, user.Email, user.PhotoURL, user.IsGuest, user.SessionToken)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.Save").
			Str("user_id", user.ID).
			Msg("failed to save current user")
		return fmt.Errorf("failed to save current user (id=%s): %w", user.ID, err)
	}

	return tx.Commit()
}

func (r *userRepository) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteCurrentUser); err != nil {
		log.Err(err).
			Str("func", "userRepository.Delete").
			Msg("failed to delete current user")
		return fmt.Errorf("failed to delete current user: %w", err)
	}

	return nil
}

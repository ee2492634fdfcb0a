package adapter

import (
	"context"
	"time"

	"github.com/equanote/equanote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteGateway is the network client for the remote entity store. One
// resource collection exists per entity type (books, formulas, users), scoped
// by the authenticated user id carried in the session token.
//
// Every method can fail with a transport error or a non-success response
// envelope; callers must treat both uniformly as "operation failed, entity
// remains dirty".
type RemoteGateway interface {
	// SetSession stores the session access token and resolves the stable
	// user id from its subject claim. An empty token clears the session.
	SetSession(token string) error
	// UserID returns the user id of the current session, or an empty string
	// if no session has been set.
	UserID() string

	// RegisterUser upserts the user row. Idempotent: safe to call multiple
	// times for the same user id.
	RegisterUser(ctx context.Context, user models.RemoteUser) (models.RemoteUser, error)

	CreateBook(ctx context.Context, book models.RemoteBook) (models.RemoteBook, error)
	UpdateBook(ctx context.Context, book models.RemoteBook) (models.RemoteBook, error)
	SoftDeleteBook(ctx context.Context, remoteID, userID string) error
	// ListBooks returns the user's live books, newest first. A non-nil
	// updatedAfter narrows the result to rows updated at or after it.
	ListBooks(ctx context.Context, userID string, updatedAfter *time.Time) ([]models.RemoteBook, error)

	CreateFormula(ctx context.Context, formula models.RemoteFormula) (models.RemoteFormula, error)
	UpdateFormula(ctx context.Context, formula models.RemoteFormula) (models.RemoteFormula, error)
	SoftDeleteFormula(ctx context.Context, remoteID, userID string) error
	// ListFormulas returns the user's live formulas belonging to the given
	// remote book ids, newest first. An empty bookIDs set yields an empty
	// result, not all formulas.
	ListFormulas(ctx context.Context, userID string, bookIDs []string, updatedAfter *time.Time) ([]models.RemoteFormula, error)
	// ListRecentFormulas returns the user's formulas updated at or after
	// updatedAfter regardless of book, for incremental pulls.
	ListRecentFormulas(ctx context.Context, userID string, updatedAfter time.Time) ([]models.RemoteFormula, error)
}

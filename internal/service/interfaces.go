package service

import (
	"context"
	"time"

	"github.com/equanote/equanote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncEngine performs all remote read/write orchestration for books and
// formulas. It never mutates the local store: callers persist returned remote
// ids and clear dirty flags themselves, which lets batch callers choose when
// to commit.
//
// Expected failures (transport, remote rejections, unsynced parents) travel
// as [models.UploadResult] values in the batch operations; single-entity
// operations return them as plain errors. A Go error from a batch operation
// means a programming-contract violation (no authenticated user) or context
// cancellation, never a per-item failure.
type SyncEngine interface {
	UploadBook(ctx context.Context, book models.Book) (string, error)
	UploadFormula(ctx context.Context, formula models.Formula, remoteBookID string) (string, error)

	BatchUploadBooks(ctx context.Context, books []models.Book) ([]models.UploadResult, error)
	BatchUploadFormulas(ctx context.Context, formulas []models.Formula, bookIDMapping map[int64]string) ([]models.UploadResult, error)

	FetchBooks(ctx context.Context) ([]models.RemoteBook, error)
	FetchFormulas(ctx context.Context, bookIDs []string) ([]models.RemoteFormula, error)
	FetchFormulasForBook(ctx context.Context, remoteBookID string) ([]models.RemoteFormula, error)

	PerformFullSync(ctx context.Context, localBooks []models.Book, localFormulas []models.Formula) (models.SyncResult, error)
	PerformQuickSync(ctx context.Context, lastSync time.Time) (models.SyncResult, error)

	DeleteBook(ctx context.Context, remoteID string) error
	DeleteFormula(ctx context.Context, remoteID string) error
}

// UserSyncService guarantees a remote user row exists before any book or
// formula upload is attempted. A false return means "continue working
// offline"; it never raises.
type UserSyncService interface {
	EnsureUserSynced(ctx context.Context, user models.User) bool
	IsSynced(userID string) bool
	Reset()
}

// BookService is the local CRUD surface for books. Every mutation path sets
// the dirty flag; deletes cascade locally and attempt a best-effort remote
// soft delete.
type BookService interface {
	Create(ctx context.Context, name, description, imageURI string) (models.Book, error)
	GetAll(ctx context.Context) ([]models.Book, error)
	Get(ctx context.Context, id int64) (models.Book, error)
	Update(ctx context.Context, book models.Book) (models.Book, error)
	Delete(ctx context.Context, id int64) error
}

// FormulaService is the local CRUD surface for formulas.
type FormulaService interface {
	Create(ctx context.Context, bookID int64, name, formulaText, description, imageURI string) (models.Formula, error)
	GetByBook(ctx context.Context, bookID int64) ([]models.Formula, error)
	Get(ctx context.Context, id int64) (models.Formula, error)
	Update(ctx context.Context, formula models.Formula) (models.Formula, error)
	Delete(ctx context.Context, id int64) error
}

// UserService manages the locally persisted current user and the remote
// session it carries.
type UserService interface {
	Login(ctx context.Context, user models.User, sessionToken string) error
	LoginAsGuest(ctx context.Context, name string) (models.User, error)
	// RestoreSession reloads the persisted user at startup and re-arms the
	// remote session from the stored token. Returns store.ErrNoUserLoggedIn
	// when no record exists.
	RestoreSession(ctx context.Context) (models.User, error)
	CurrentUser(ctx context.Context) (models.User, error)
	Logout(ctx context.Context) error
}

// SyncJob runs periodic incremental pulls in the background.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

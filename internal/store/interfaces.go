package store

import (
	"context"
	"time"

	"github.com/equanote/equanote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BookRepository is the local repository for books.
//
// Insert and Update persist the dirty flag as given; MarkSynced is the only
// path that clears it, and it records the remote id and sync time in the
// same statement.
type BookRepository interface {
	Insert(ctx context.Context, book models.Book) (int64, error)
	GetAll(ctx context.Context) ([]models.Book, error)
	GetByID(ctx context.Context, id int64) (models.Book, error)
	GetDirty(ctx context.Context) ([]models.Book, error)
	Update(ctx context.Context, book models.Book) error
	MarkSynced(ctx context.Context, id int64, remoteID string, syncedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}

// FormulaRepository is the local repository for formulas.
type FormulaRepository interface {
	Insert(ctx context.Context, formula models.Formula) (int64, error)
	GetByBookID(ctx context.Context, bookID int64) ([]models.Formula, error)
	GetByID(ctx context.Context, id int64) (models.Formula, error)
	GetDirty(ctx context.Context) ([]models.Formula, error)
	Update(ctx context.Context, formula models.Formula) error
	MarkSynced(ctx context.Context, id int64, remoteID string, syncedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository holds at most one current-user record at a time.
type UserRepository interface {
	Get(ctx context.Context) (models.User, error)
	Save(ctx context.Context, user models.User) error
	Delete(ctx context.Context) error
}

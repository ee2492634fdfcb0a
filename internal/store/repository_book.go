package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/models"
)

type bookRepository struct {
	*DB
	logger *logger.Logger
}

func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *bookRepository) Insert(ctx context.Context, book models.Book) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.Insert("books").
		Columns("name", "description", "image_uri", "created_at", "remote_id", "last_synced_at", "is_dirty").
		Values(book.Name, book.Description, book.ImageURI, book.CreatedAt, book.RemoteID, book.LastSyncedAt, book.IsDirty).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert book query: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.Insert").
			Str("name", book.Name).
			Msg("failed to execute insert for book")
		return 0, fmt.Errorf("failed to insert book: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted book id: %w", err)
	}

	return id, nil
}

func (r *bookRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	query, args, err := selectBooks().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select books query: %w", err)
	}

	return r.queryBooks(ctx, "bookRepository.GetAll", query, args...)
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectBooks().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Book{}, fmt.Errorf("failed to build select book query: %w", err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	book, err := scanBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		log.Err(err).
			Str("func", "bookRepository.GetByID").
			Int64("id", id).
			Msg("failed to scan book row")
		return models.Book{}, fmt.Errorf("failed to scan book row: %w", err)
	}

	return book, nil
}

func (r *bookRepository) GetDirty(ctx context.Context) ([]models.Book, error) {
	query, args, err := selectBooks().Where(dirtyPredicate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select dirty books query: %w", err)
	}

	return r.queryBooks(ctx, "bookRepository.GetDirty", query, args...)
}

func (r *bookRepository) Update(ctx context.Context, book models.Book) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.Update("books").
		Set("name", book.Name).
		Set("description", book.Description).
		Set("image_uri", book.ImageURI).
		Set("remote_id", book.RemoteID).
		Set("last_synced_at", book.LastSyncedAt).
		Set("is_dirty", book.IsDirty).
		Where(sq.Eq{"id": book.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update book query: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.Update").
			Int64("id", book.ID).
			Msg("failed to execute update for book")
		return fmt.Errorf("failed to update book (id=%d): %w", book.ID, err)
	}

	return requireRowsAffected(result, ErrBookNotFound)
}

func (r *bookRepository) MarkSynced(ctx context.Context, id int64, remoteID string, syncedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.Update("books").
		Set("remote_id", remoteID).
		Set("last_synced_at", syncedAt).
		Set("is_dirty", false).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark book synced query: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.MarkSynced").
			Int64("id", id).
			Str("remote_id", remoteID).
			Msg("failed to execute mark synced for book")
		return fmt.Errorf("failed to mark book synced (id=%d): %w", id, err)
	}

	return requireRowsAffected(result, ErrBookNotFound)
}

// Delete removes the book and all its formulas in one transaction.
func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete book transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM formulas WHERE book_id = ?`, id); err != nil {
		log.Err(err).
			Str("func", "bookRepository.Delete").
			Int64("id", id).
			Msg("failed to delete formulas of book")
		return fmt.Errorf("failed to delete formulas of book (id=%d): %w", id, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.Delete").
			Int64("id", id).
			Msg("failed to delete book")
		return fmt.Errorf("failed to delete book (id=%d): %w", id, err)
	}

	if err = requireRowsAffected(result, ErrBookNotFound); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *bookRepository) queryBooks(ctx context.Context, fn, query string, args ...any) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for books")
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		book, scanErr := scanBook(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan book row")
			return nil, fmt.Errorf("failed to scan book row: %w", scanErr)
		}
		books = append(books, book)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating book rows: %w", rowsErr)
	}

	return books, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (models.Book, error) {
	var book models.Book
	var lastSyncedAt sql.NullTime

	err := row.Scan(
		&book.ID,
		&book.Name,
		&book.Description,
		&book.ImageURI,
		&book.CreatedAt,
		&book.RemoteID,
		&lastSyncedAt,
		&book.IsDirty,
	)
	if err != nil {
		return models.Book{}, err
	}

	if lastSyncedAt.Valid {
		book.LastSyncedAt = &lastSyncedAt.Time
	}

	return book, nil
}

func requireRowsAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

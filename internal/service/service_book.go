package service

import (
	"context"
	"time"

	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/internal/store"
	"github.com/equanote/equanote/models"
)

type bookService struct {
	books  store.BookRepository
	engine SyncEngine
	logger *logger.Logger
}

func NewBookService(books store.BookRepository, engine SyncEngine, logger *logger.Logger) BookService {
	return &bookService{books: books, engine: engine, logger: logger}
}

// Create implements [BookService]. New books start dirty so that the next
// sync pass picks them up.
func (s *bookService) Create(ctx context.Context, name, description, imageURI string) (models.Book, error) {
	book := models.Book{
		Name:        name,
		Description: description,
		ImageURI:    imageURI,
		CreatedAt:   time.Now().UTC(),
		IsDirty:     true,
	}

	id, err := s.books.Insert(ctx, book)
	if err != nil {
		s.logger.Err(err).Str("name", name).Msg("failed to create book")
		return models.Book{}, err
	}
	book.ID = id

	return book, nil
}

// GetAll implements [BookService].
func (s *bookService) GetAll(ctx context.Context) ([]models.Book, error) {
	return s.books.GetAll(ctx)
}

// Get implements [BookService].
func (s *bookService) Get(ctx context.Context, id int64) (models.Book, error) {
	return s.books.GetByID(ctx, id)
}

// Update implements [BookService]. Any edit re-dirties the book; the remote
// id and last-synced timestamp survive the edit untouched.
func (s *bookService) Update(ctx context.Context, book models.Book) (models.Book, error) {
	book.IsDirty = true

	if err := s.books.Update(ctx, book); err != nil {
		s.logger.Err(err).Int64("id", book.ID).Msg("failed to update book")
		return models.Book{}, err
	}
	return book, nil
}

// Delete implements [BookService]. The local row and its formulas are removed
// first; if the book was ever uploaded, a remote soft delete follows on a
// best-effort basis — a remote failure is logged and swallowed, the local
// delete stands.
func (s *bookService) Delete(ctx context.Context, id int64) error {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.books.Delete(ctx, id); err != nil {
		s.logger.Err(err).Int64("id", id).Msg("failed to delete book")
		return err
	}

	if book.RemoteID != "" {
		if err := s.engine.DeleteBook(ctx, book.RemoteID); err != nil {
			s.logger.Err(err).Str("remote_id", book.RemoteID).Msg("remote soft delete of book failed")
		}
	}

	return nil
}

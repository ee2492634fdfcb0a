package service

import (
	"context"
	"time"

	"github.com/equanote/equanote/internal/adapter"
	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/models"
)

// uploadChunkSize bounds burst load on the remote gateway during batch
// uploads. Entities inside a chunk are processed in input order; one entity's
// failure never aborts the batch.
const uploadChunkSize = 10

type syncEngine struct {
	gateway adapter.RemoteGateway
	logger  *logger.Logger
}

func NewSyncEngine(gateway adapter.RemoteGateway, logger *logger.Logger) SyncEngine {
	return &syncEngine{gateway: gateway, logger: logger}
}

// UploadBook implements [SyncEngine]. A book that already carries a remote id
// routes to update scoped by (remoteId, userId); otherwise a create call is
// issued. Returns the remote id (new, or the existing one echoed back). The
// local store is not touched: persisting the id and clearing the dirty flag
// is the caller's job.
func (s *syncEngine) UploadBook(ctx context.Context, book models.Book) (string, error) {
	userID, err := s.requireUser()
	if err != nil {
		return "", err
	}

	remote := book.ToRemote(userID)

	var uploaded models.RemoteBook
	if book.RemoteID != "" {
		uploaded, err = s.gateway.UpdateBook(ctx, remote)
	} else {
		uploaded, err = s.gateway.CreateBook(ctx, remote)
	}
	if err != nil {
		s.logger.Err(err).Str("name", book.Name).Msg("failed to upload book")
		return "", err
	}

	if uploaded.ID == "" {
		return book.RemoteID, nil
	}
	return uploaded.ID, nil
}

// UploadFormula implements [SyncEngine]. remoteBookID must be the parent
// book's resolved remote id.
func (s *syncEngine) UploadFormula(ctx context.Context, formula models.Formula, remoteBookID string) (string, error) {
	userID, err := s.requireUser()
	if err != nil {
		return "", err
	}

	remote := formula.ToRemote(userID, remoteBookID)

	var uploaded models.RemoteFormula
	if formula.RemoteID != "" {
		uploaded, err = s.gateway.UpdateFormula(ctx, remote)
	} else {
		uploaded, err = s.gateway.CreateFormula(ctx, remote)
	}
	if err != nil {
		s.logger.Err(err).Str("name", formula.Name).Msg("failed to upload formula")
		return "", err
	}

	if uploaded.ID == "" {
		return formula.RemoteID, nil
	}
	return uploaded.ID, nil
}

// BatchUploadBooks implements [SyncEngine]. Results are aligned 1:1 with the
// input order.
func (s *syncEngine) BatchUploadBooks(ctx context.Context, books []models.Book) ([]models.UploadResult, error) {
	if _, err := s.requireUser(); err != nil {
		return nil, err
	}

	results := make([]models.UploadResult, 0, len(books))

	for chunk := range chunked(books, uploadChunkSize) {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		for _, book := range chunk {
			remoteID, err := s.UploadBook(ctx, book)
			results = append(results, uploadOutcome(book.ID, remoteID, err))
		}
	}

	return results, nil
}

// BatchUploadFormulas implements [SyncEngine]. bookIDMapping resolves each
// formula's local parent book id to its remote id; a formula whose parent is
// absent from the mapping is recorded as failed without a network call.
func (s *syncEngine) BatchUploadFormulas(ctx context.Context, formulas []models.Formula, bookIDMapping map[int64]string) ([]models.UploadResult, error) {
	if _, err := s.requireUser(); err != nil {
		return nil, err
	}

	results := make([]models.UploadResult, 0, len(formulas))

	for chunk := range chunked(formulas, uploadChunkSize) {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		for _, formula := range chunk {
			remoteBookID, ok := bookIDMapping[formula.BookID]
			if !ok {
				results = append(results, models.UploadResult{
					LocalID: formula.ID,
					Success: false,
					Error:   ErrParentBookNotSynced.Error(),
				})
				continue
			}

			remoteID, err := s.UploadFormula(ctx, formula, remoteBookID)
			results = append(results, uploadOutcome(formula.ID, remoteID, err))
		}
	}

	return results, nil
}

// FetchBooks implements [SyncEngine]. Soft-deleted rows are excluded and the
// result is ordered by creation time descending.
func (s *syncEngine) FetchBooks(ctx context.Context) ([]models.RemoteBook, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	books, err := s.gateway.ListBooks(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("count", len(books)).Msg("fetched books from remote")
	return books, nil
}

// FetchFormulas implements [SyncEngine]. An empty bookIDs set yields an empty
// result, not all formulas.
func (s *syncEngine) FetchFormulas(ctx context.Context, bookIDs []string) ([]models.RemoteFormula, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	if len(bookIDs) == 0 {
		return nil, nil
	}

	formulas, err := s.gateway.ListFormulas(ctx, userID, bookIDs, nil)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("count", len(formulas)).Msg("fetched formulas from remote")
	return formulas, nil
}

// FetchFormulasForBook implements [SyncEngine].
func (s *syncEngine) FetchFormulasForBook(ctx context.Context, remoteBookID string) ([]models.RemoteFormula, error) {
	return s.FetchFormulas(ctx, []string{remoteBookID})
}

// PerformFullSync implements [SyncEngine]. The pass is not transactional: a
// partial upload failure still produces a result describing exactly what
// succeeded; failed entities remain dirty and are retried on a later pass.
func (s *syncEngine) PerformFullSync(ctx context.Context, localBooks []models.Book, localFormulas []models.Formula) (models.SyncResult, error) {
	s.logger.Debug().Msg("starting full sync")

	remoteBooks, err := s.FetchBooks(ctx)
	if err != nil {
		return models.SyncResult{}, err
	}

	remoteBookIDs := make([]string, 0, len(remoteBooks))
	for _, rb := range remoteBooks {
		if rb.ID != "" {
			remoteBookIDs = append(remoteBookIDs, rb.ID)
		}
	}

	remoteFormulas, err := s.FetchFormulas(ctx, remoteBookIDs)
	if err != nil {
		return models.SyncResult{}, err
	}

	var booksToUpload []models.Book
	for _, book := range localBooks {
		if book.NeedsUpload() {
			booksToUpload = append(booksToUpload, book)
		}
	}

	var bookResults []models.UploadResult
	if len(booksToUpload) > 0 {
		bookResults, err = s.BatchUploadBooks(ctx, booksToUpload)
		if err != nil {
			return models.SyncResult{}, err
		}
	}

	// Resolve local book ids to remote ids: already-synced books keep their
	// existing mapping, newly uploaded ones join it.
	bookIDMapping := make(map[int64]string, len(localBooks))
	for _, book := range localBooks {
		if book.RemoteID != "" {
			bookIDMapping[book.ID] = book.RemoteID
		}
	}
	for _, result := range bookResults {
		if result.Success && result.RemoteID != "" {
			bookIDMapping[result.LocalID] = result.RemoteID
		}
	}

	var formulasToUpload []models.Formula
	for _, formula := range localFormulas {
		if formula.NeedsUpload() {
			formulasToUpload = append(formulasToUpload, formula)
		}
	}

	var formulaResults []models.UploadResult
	if len(formulasToUpload) > 0 {
		formulaResults, err = s.BatchUploadFormulas(ctx, formulasToUpload, bookIDMapping)
		if err != nil {
			return models.SyncResult{}, err
		}
	}

	s.logger.Debug().
		Int("downloaded_books", len(remoteBooks)).
		Int("downloaded_formulas", len(remoteFormulas)).
		Int("uploaded_books", len(bookResults)).
		Int("uploaded_formulas", len(formulaResults)).
		Msg("full sync completed")

	return models.SyncResult{
		DownloadedBooks:    remoteBooks,
		DownloadedFormulas: remoteFormulas,
		UploadedBooks:      bookResults,
		UploadedFormulas:   formulaResults,
		SyncTimestamp:      time.Now().UTC(),
	}, nil
}

// PerformQuickSync implements [SyncEngine]. Download-only: it pulls rows
// updated since lastSync and uploads nothing.
func (s *syncEngine) PerformQuickSync(ctx context.Context, lastSync time.Time) (models.SyncResult, error) {
	userID, err := s.requireUser()
	if err != nil {
		return models.SyncResult{}, err
	}

	recentBooks, err := s.gateway.ListBooks(ctx, userID, &lastSync)
	if err != nil {
		return models.SyncResult{}, err
	}

	recentFormulas, err := s.gateway.ListRecentFormulas(ctx, userID, lastSync)
	if err != nil {
		return models.SyncResult{}, err
	}

	return models.SyncResult{
		DownloadedBooks:    recentBooks,
		DownloadedFormulas: recentFormulas,
		SyncTimestamp:      time.Now().UTC(),
	}, nil
}

// DeleteBook implements [SyncEngine]. Marks the remote row deleted so that
// other clients' incremental pulls observe the tombstone.
func (s *syncEngine) DeleteBook(ctx context.Context, remoteID string) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	return s.gateway.SoftDeleteBook(ctx, remoteID, userID)
}

// DeleteFormula implements [SyncEngine].
func (s *syncEngine) DeleteFormula(ctx context.Context, remoteID string) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	return s.gateway.SoftDeleteFormula(ctx, remoteID, userID)
}

func (s *syncEngine) requireUser() (string, error) {
	userID := s.gateway.UserID()
	if userID == "" {
		return "", ErrNoUserLoggedIn
	}
	return userID, nil
}

func uploadOutcome(localID int64, remoteID string, err error) models.UploadResult {
	if err != nil {
		return models.UploadResult{LocalID: localID, Success: false, Error: err.Error()}
	}
	return models.UploadResult{LocalID: localID, RemoteID: remoteID, Success: true}
}

// chunked yields successive sub-slices of at most size elements.
func chunked[T any](items []T, size int) func(yield func([]T) bool) {
	return func(yield func([]T) bool) {
		for start := 0; start < len(items); start += size {
			end := min(start+size, len(items))
			if !yield(items[start:end]) {
				return
			}
		}
	}
}

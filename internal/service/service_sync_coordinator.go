package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/internal/store"
	"github.com/equanote/equanote/models"
)

// SyncState is the observable snapshot the coordinator publishes to the UI.
// Error and SyncMessage are ephemeral: they stay set until explicitly
// cleared or until the next action of the same kind starts.
type SyncState struct {
	IsLoading      bool
	IsUploading    bool
	IsDownloading  bool
	IsFullSyncing  bool
	UploadProgress float64
	SyncProgress   float64
	Error          string
	SyncMessage    string
	LastSyncResult *models.SyncResult
}

// SyncCoordinator adapts the sync engine into stateful, observable actions
// for a UI: per-operation progress, human-readable status, and a formula
// selection scoped to one book at a time. Mutual exclusion between actions is
// advisory — the UI is expected to disable triggers while one of the busy
// flags is set.
type SyncCoordinator struct {
	engine   SyncEngine
	books    store.BookRepository
	formulas store.FormulaRepository
	users    store.UserRepository
	bridge   UserSyncService
	logger   *logger.Logger

	mu             sync.Mutex
	state          SyncState
	selectedBookID int64
	selected       map[int64]struct{}
	listener       func(SyncState)
}

func NewSyncCoordinator(
	engine SyncEngine,
	books store.BookRepository,
	formulas store.FormulaRepository,
	users store.UserRepository,
	bridge UserSyncService,
	logger *logger.Logger,
) *SyncCoordinator {
	return &SyncCoordinator{
		engine:   engine,
		books:    books,
		formulas: formulas,
		users:    users,
		bridge:   bridge,
		logger:   logger,
		selected: make(map[int64]struct{}),
	}
}

// SetListener registers a callback invoked with a state snapshot after every
// state change. The callback runs outside the coordinator's lock.
func (c *SyncCoordinator) SetListener(fn func(SyncState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = fn
}

// State returns the current snapshot.
func (c *SyncCoordinator) State() SyncState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SelectBook switches the book the formula selection applies to and clears
// any previous selection, preventing stale cross-book selections.
func (c *SyncCoordinator) SelectBook(bookID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedBookID == bookID {
		return
	}
	c.selectedBookID = bookID
	c.selected = make(map[int64]struct{})
}

// SelectedBook returns the currently selected book id, zero when none.
func (c *SyncCoordinator) SelectedBook() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedBookID
}

func (c *SyncCoordinator) ToggleFormulaSelection(formulaID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.selected[formulaID]; ok {
		delete(c.selected, formulaID)
	} else {
		c.selected[formulaID] = struct{}{}
	}
}

// SelectAllFormulas replaces the selection with the given formula ids.
func (c *SyncCoordinator) SelectAllFormulas(formulaIDs []int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = make(map[int64]struct{}, len(formulaIDs))
	for _, id := range formulaIDs {
		c.selected[id] = struct{}{}
	}
}

func (c *SyncCoordinator) DeselectAllFormulas() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = make(map[int64]struct{})
}

func (c *SyncCoordinator) IsFormulaSelected(formulaID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.selected[formulaID]
	return ok
}

func (c *SyncCoordinator) SelectedFormulaCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.selected)
}

// UploadSelectedFormulas uploads the selected book (when it has never been
// uploaded) and then each selected formula sequentially, persisting every
// success immediately so that partial progress survives an abandoned run.
// Progress advances as (index+1)/count after each formula.
func (c *SyncCoordinator) UploadSelectedFormulas(ctx context.Context) {
	bookID, formulaIDs := c.snapshotSelection()
	if bookID == 0 {
		c.setError(ErrNoBookSelected.Error())
		return
	}
	if len(formulaIDs) == 0 {
		c.setError(ErrNoFormulasSelected.Error())
		return
	}
	if !c.ensureSyncableUser(ctx) {
		return
	}

	c.update(func(st *SyncState) {
		st.IsUploading = true
		st.UploadProgress = 0
		st.Error = ""
		st.SyncMessage = ""
	})

	book, err := c.books.GetByID(ctx, bookID)
	if err != nil {
		c.finishUpload(fmt.Sprintf("failed to load book: %v", err), true)
		return
	}

	remoteBookID := book.RemoteID
	if book.NeedsUpload() {
		remoteBookID, err = c.engine.UploadBook(ctx, book)
		if err != nil {
			c.finishUpload(fmt.Sprintf("failed to upload book %q: %v", book.Name, err), true)
			return
		}
		if err := c.books.MarkSynced(ctx, book.ID, remoteBookID, time.Now().UTC()); err != nil {
			c.logger.Err(err).Int64("id", book.ID).Msg("failed to persist book sync state")
		}
	}

	var succeeded, failed int
	for i, formulaID := range formulaIDs {
		formula, err := c.formulas.GetByID(ctx, formulaID)
		if err != nil {
			failed++
			c.logger.Err(err).Int64("id", formulaID).Msg("failed to load selected formula")
		} else {
			remoteID, err := c.engine.UploadFormula(ctx, formula, remoteBookID)
			if err != nil {
				failed++
			} else {
				succeeded++
				if err := c.formulas.MarkSynced(ctx, formula.ID, remoteID, time.Now().UTC()); err != nil {
					c.logger.Err(err).Int64("id", formula.ID).Msg("failed to persist formula sync state")
				}
			}
		}

		progress := float64(i+1) / float64(len(formulaIDs))
		c.update(func(st *SyncState) { st.UploadProgress = progress })
	}

	c.finishUpload(fmt.Sprintf("upload finished: %d successful, %d failed", succeeded, failed), failed > 0 && succeeded == 0)
}

// PerformFullSync gathers every local book and formula, runs the engine's
// full bidirectional pass, and persists each successful upload result.
// Progress is reported as coarse milestones rather than per entity.
func (c *SyncCoordinator) PerformFullSync(ctx context.Context) {
	if !c.ensureSyncableUser(ctx) {
		return
	}

	c.update(func(st *SyncState) {
		st.IsFullSyncing = true
		st.SyncProgress = 0
		st.Error = ""
		st.SyncMessage = ""
	})

	books, err := c.books.GetAll(ctx)
	if err != nil {
		c.finishFullSync("", fmt.Sprintf("failed to load local books: %v", err), nil)
		return
	}

	var formulas []models.Formula
	for _, book := range books {
		bookFormulas, err := c.formulas.GetByBookID(ctx, book.ID)
		if err != nil {
			c.finishFullSync("", fmt.Sprintf("failed to load local formulas: %v", err), nil)
			return
		}
		formulas = append(formulas, bookFormulas...)
	}

	c.update(func(st *SyncState) { st.SyncProgress = 0.1 })

	result, err := c.engine.PerformFullSync(ctx, books, formulas)
	if err != nil {
		c.finishFullSync("", fmt.Sprintf("full sync failed: %v", err), nil)
		return
	}

	c.update(func(st *SyncState) { st.SyncProgress = 0.8 })

	for _, r := range result.UploadedBooks {
		if !r.Success {
			continue
		}
		if err := c.books.MarkSynced(ctx, r.LocalID, r.RemoteID, result.SyncTimestamp); err != nil {
			c.logger.Err(err).Int64("id", r.LocalID).Msg("failed to persist book sync state")
		}
	}
	for _, r := range result.UploadedFormulas {
		if !r.Success {
			continue
		}
		if err := c.formulas.MarkSynced(ctx, r.LocalID, r.RemoteID, result.SyncTimestamp); err != nil {
			c.logger.Err(err).Int64("id", r.LocalID).Msg("failed to persist formula sync state")
		}
	}

	booksOK, booksFailed := models.CountOutcomes(result.UploadedBooks)
	formulasOK, formulasFailed := models.CountOutcomes(result.UploadedFormulas)
	message := fmt.Sprintf(
		"full sync: downloaded %d books, %d formulas; uploaded %d books (%d failed), %d formulas (%d failed)",
		len(result.DownloadedBooks), len(result.DownloadedFormulas),
		booksOK, booksFailed, formulasOK, formulasFailed,
	)
	c.finishFullSync(message, "", &result)
}

// DownloadFromRemote fetches remote books and their formulas and reports the
// counts. Nothing is merged into local storage here: reconciliation only
// happens as part of full sync.
func (c *SyncCoordinator) DownloadFromRemote(ctx context.Context) {
	if !c.ensureSyncableUser(ctx) {
		return
	}

	c.update(func(st *SyncState) {
		st.IsDownloading = true
		st.Error = ""
		st.SyncMessage = ""
	})

	remoteBooks, err := c.engine.FetchBooks(ctx)
	if err != nil {
		c.finishDownload("", fmt.Sprintf("download failed: %v", err))
		return
	}

	bookIDs := make([]string, 0, len(remoteBooks))
	for _, rb := range remoteBooks {
		bookIDs = append(bookIDs, rb.ID)
	}

	remoteFormulas, err := c.engine.FetchFormulas(ctx, bookIDs)
	if err != nil {
		c.finishDownload("", fmt.Sprintf("download failed: %v", err))
		return
	}

	c.finishDownload(fmt.Sprintf("downloaded %d books and %d formulas", len(remoteBooks), len(remoteFormulas)), "")
}

func (c *SyncCoordinator) ClearError() {
	c.update(func(st *SyncState) { st.Error = "" })
}

func (c *SyncCoordinator) ClearSyncMessage() {
	c.update(func(st *SyncState) { st.SyncMessage = "" })
}

func (c *SyncCoordinator) snapshotSelection() (int64, []int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]int64, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return c.selectedBookID, ids
}

// ensureSyncableUser verifies a non-guest user is present and makes sure the
// remote profile exists. A missing or guest user surfaces as an error state.
func (c *SyncCoordinator) ensureSyncableUser(ctx context.Context) bool {
	user, err := c.users.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoUserLoggedIn) {
			c.setError("sign in to sync")
		} else {
			c.setError(fmt.Sprintf("failed to load user: %v", err))
		}
		return false
	}
	if user.IsGuest {
		c.setError("syncing requires a signed-in account")
		return false
	}

	c.bridge.EnsureUserSynced(ctx, user)
	return true
}

func (c *SyncCoordinator) finishUpload(message string, isError bool) {
	c.update(func(st *SyncState) {
		st.IsUploading = false
		if isError {
			st.Error = message
		} else {
			st.SyncMessage = message
		}
	})
}

func (c *SyncCoordinator) finishFullSync(message, errMessage string, result *models.SyncResult) {
	c.update(func(st *SyncState) {
		st.IsFullSyncing = false
		if errMessage != "" {
			st.Error = errMessage
			return
		}
		st.SyncProgress = 1
		st.SyncMessage = message
		st.LastSyncResult = result
	})
}

func (c *SyncCoordinator) finishDownload(message, errMessage string) {
	c.update(func(st *SyncState) {
		st.IsDownloading = false
		if errMessage != "" {
			st.Error = errMessage
			return
		}
		st.SyncMessage = message
	})
}

func (c *SyncCoordinator) setError(message string) {
	c.update(func(st *SyncState) { st.Error = message })
}

// update mutates the state under the lock and notifies the listener with a
// snapshot outside it.
func (c *SyncCoordinator) update(mutate func(*SyncState)) {
	c.mu.Lock()
	mutate(&c.state)
	snapshot := c.state
	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener(snapshot)
	}
}

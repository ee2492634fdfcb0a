package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/internal/mock"
	"github.com/equanote/equanote/internal/store"
	"github.com/equanote/equanote/models"
)

type coordinatorMocks struct {
	engine   *mock.MockSyncEngine
	books    *mock.MockBookRepository
	formulas *mock.MockFormulaRepository
	users    *mock.MockUserRepository
	bridge   *mock.MockUserSyncService
}

func newTestCoordinator(t *testing.T, ctrl *gomock.Controller) (*SyncCoordinator, coordinatorMocks) {
	t.Helper()
	m := coordinatorMocks{
		engine:   mock.NewMockSyncEngine(ctrl),
		books:    mock.NewMockBookRepository(ctrl),
		formulas: mock.NewMockFormulaRepository(ctrl),
		users:    mock.NewMockUserRepository(ctrl),
		bridge:   mock.NewMockUserSyncService(ctrl),
	}
	c := NewSyncCoordinator(m.engine, m.books, m.formulas, m.users, m.bridge, logger.Nop())
	return c, m
}

func expectSignedInUser(m coordinatorMocks) {
	user := models.User{ID: "u-1", Name: "Ada"}
	m.users.EXPECT().Get(gomock.Any()).Return(user, nil)
	m.bridge.EXPECT().EnsureUserSynced(gomock.Any(), user).Return(true)
}

// ── Selection ────────────────────────────────────────────────────────────────

func TestSyncCoordinator_Selection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _ := newTestCoordinator(t, ctrl)

	c.SelectBook(1)
	c.ToggleFormulaSelection(10)
	c.ToggleFormulaSelection(11)
	assert.Equal(t, 2, c.SelectedFormulaCount())
	assert.True(t, c.IsFormulaSelected(10))

	c.ToggleFormulaSelection(10)
	assert.False(t, c.IsFormulaSelected(10))
	assert.Equal(t, 1, c.SelectedFormulaCount())

	c.SelectAllFormulas([]int64{10, 11, 12})
	assert.Equal(t, 3, c.SelectedFormulaCount())

	c.DeselectAllFormulas()
	assert.Equal(t, 0, c.SelectedFormulaCount())
}

func TestSyncCoordinator_SwitchingBookClearsSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _ := newTestCoordinator(t, ctrl)

	c.SelectBook(1)
	c.SelectAllFormulas([]int64{10, 11})
	require.Equal(t, 2, c.SelectedFormulaCount())

	// Re-selecting the same book keeps the selection.
	c.SelectBook(1)
	assert.Equal(t, 2, c.SelectedFormulaCount())

	// A different book clears it: no stale cross-book selections.
	c.SelectBook(2)
	assert.Equal(t, 0, c.SelectedFormulaCount())
}

// ── UploadSelectedFormulas ───────────────────────────────────────────────────

func TestSyncCoordinator_UploadSelectedFormulas_Preconditions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("no book selected", func(t *testing.T) {
		c, _ := newTestCoordinator(t, ctrl)
		c.UploadSelectedFormulas(context.Background())
		assert.Equal(t, ErrNoBookSelected.Error(), c.State().Error)
	})

	t.Run("empty selection", func(t *testing.T) {
		c, _ := newTestCoordinator(t, ctrl)
		c.SelectBook(1)
		c.UploadSelectedFormulas(context.Background())
		assert.Equal(t, ErrNoFormulasSelected.Error(), c.State().Error)
	})

	t.Run("guest cannot sync", func(t *testing.T) {
		c, m := newTestCoordinator(t, ctrl)
		c.SelectBook(1)
		c.ToggleFormulaSelection(10)
		m.users.EXPECT().Get(gomock.Any()).Return(models.User{ID: "g-1", IsGuest: true}, nil)

		c.UploadSelectedFormulas(context.Background())
		assert.Contains(t, c.State().Error, "signed-in account")
	})

	t.Run("nobody logged in", func(t *testing.T) {
		c, m := newTestCoordinator(t, ctrl)
		c.SelectBook(1)
		c.ToggleFormulaSelection(10)
		m.users.EXPECT().Get(gomock.Any()).Return(models.User{}, store.ErrNoUserLoggedIn)

		c.UploadSelectedFormulas(context.Background())
		assert.Equal(t, "sign in to sync", c.State().Error)
	})
}

func TestSyncCoordinator_UploadSelectedFormulas_UploadsBookFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, m := newTestCoordinator(t, ctrl)
	ctx := context.Background()

	book := models.Book{ID: 1, Name: "Algebra", IsDirty: true} // never uploaded
	formula := models.Formula{ID: 10, BookID: 1, Name: "f", IsDirty: true}

	c.SelectBook(1)
	c.ToggleFormulaSelection(10)

	expectSignedInUser(m)
	gomock.InOrder(
		m.books.EXPECT().GetByID(ctx, int64(1)).Return(book, nil),
		m.engine.EXPECT().UploadBook(ctx, book).Return("rb-1", nil),
		m.books.EXPECT().MarkSynced(ctx, int64(1), "rb-1", gomock.Any()).Return(nil),
		m.formulas.EXPECT().GetByID(ctx, int64(10)).Return(formula, nil),
		m.engine.EXPECT().UploadFormula(ctx, formula, "rb-1").Return("rf-10", nil),
		m.formulas.EXPECT().MarkSynced(ctx, int64(10), "rf-10", gomock.Any()).Return(nil),
	)

	var progress []float64
	c.SetListener(func(st SyncState) {
		progress = append(progress, st.UploadProgress)
	})

	c.UploadSelectedFormulas(ctx)

	st := c.State()
	assert.False(t, st.IsUploading)
	assert.Equal(t, "upload finished: 1 successful, 0 failed", st.SyncMessage)
	assert.Empty(t, st.Error)
	assert.Contains(t, progress, 1.0)
}

func TestSyncCoordinator_UploadSelectedFormulas_AlreadySyncedBookSkipsBookUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, m := newTestCoordinator(t, ctrl)
	ctx := context.Background()

	syncedAt := time.Now().Add(-time.Hour)
	book := models.Book{ID: 1, Name: "Algebra", RemoteID: "rb-1", LastSyncedAt: &syncedAt}
	formula := models.Formula{ID: 10, BookID: 1, Name: "f", IsDirty: true}

	c.SelectBook(1)
	c.ToggleFormulaSelection(10)

	expectSignedInUser(m)
	m.books.EXPECT().GetByID(ctx, int64(1)).Return(book, nil)
	// No UploadBook expectation: a clean, synced book is not re-uploaded.
	m.formulas.EXPECT().GetByID(ctx, int64(10)).Return(formula, nil)
	m.engine.EXPECT().UploadFormula(ctx, formula, "rb-1").Return("rf-10", nil)
	m.formulas.EXPECT().MarkSynced(ctx, int64(10), "rf-10", gomock.Any()).Return(nil)

	c.UploadSelectedFormulas(ctx)
	assert.Equal(t, "upload finished: 1 successful, 0 failed", c.State().SyncMessage)
}

func TestSyncCoordinator_UploadSelectedFormulas_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, m := newTestCoordinator(t, ctrl)
	ctx := context.Background()

	book := models.Book{ID: 1, Name: "Algebra", RemoteID: "rb-1"}
	good := models.Formula{ID: 10, BookID: 1, Name: "good", IsDirty: true}
	bad := models.Formula{ID: 11, BookID: 1, Name: "bad", IsDirty: true}

	c.SelectBook(1)
	c.SelectAllFormulas([]int64{10, 11})

	expectSignedInUser(m)
	m.books.EXPECT().GetByID(ctx, int64(1)).Return(book, nil)
	m.formulas.EXPECT().GetByID(ctx, int64(10)).Return(good, nil)
	m.engine.EXPECT().UploadFormula(ctx, good, "rb-1").Return("rf-10", nil)
	m.formulas.EXPECT().MarkSynced(ctx, int64(10), "rf-10", gomock.Any()).Return(nil)
	m.formulas.EXPECT().GetByID(ctx, int64(11)).Return(bad, nil)
	m.engine.EXPECT().UploadFormula(ctx, bad, "rb-1").Return("", errors.New("timeout"))
	// No MarkSynced for the failed formula: it stays dirty and retries later.

	c.UploadSelectedFormulas(ctx)

	st := c.State()
	assert.Equal(t, "upload finished: 1 successful, 1 failed", st.SyncMessage)
	assert.Empty(t, st.Error)
}

func TestSyncCoordinator_UploadSelectedFormulas_BookUploadFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, m := newTestCoordinator(t, ctrl)
	ctx := context.Background()

	book := models.Book{ID: 1, Name: "Algebra", IsDirty: true}

	c.SelectBook(1)
	c.ToggleFormulaSelection(10)

	expectSignedInUser(m)
	m.books.EXPECT().GetByID(ctx, int64(1)).Return(book, nil)
	m.engine.EXPECT().UploadBook(ctx, book).Return("", errors.New("server down"))
	// Formulas are untouched: they cannot upload without a synced parent.

	c.UploadSelectedFormulas(ctx)

	st := c.State()
	assert.False(t, st.IsUploading)
	assert.Contains(t, st.Error, "failed to upload book")
}

// ── PerformFullSync ──────────────────────────────────────────────────────────

func TestSyncCoordinator_PerformFullSync_PersistsSuccessfulResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, m := newTestCoordinator(t, ctrl)
	ctx := context.Background()

	books := []models.Book{{ID: 1, Name: "b", IsDirty: true}}
	formulas := []models.Formula{{ID: 10, BookID: 1, Name: "f", IsDirty: true}}
	syncedAt := time.Now().UTC()
	result := models.SyncResult{
		DownloadedBooks: []models.RemoteBook{{ID: "rb-other"}},
		UploadedBooks: []models.UploadResult{
			{LocalID: 1, RemoteID: "rb-1", Success: true},
		},
		UploadedFormulas: []models.UploadResult{
			{LocalID: 10, RemoteID: "rf-10", Success: true},
			{LocalID: 11, Success: false, Error: "timeout"},
		},
		SyncTimestamp: syncedAt,
	}

	expectSignedInUser(m)
	m.books.EXPECT().GetAll(ctx).Return(books, nil)
	m.formulas.EXPECT().GetByBookID(ctx, int64(1)).Return(formulas, nil)
	m.engine.EXPECT().PerformFullSync(ctx, books, formulas).Return(result, nil)
	m.books.EXPECT().MarkSynced(ctx, int64(1), "rb-1", syncedAt).Return(nil)
	m.formulas.EXPECT().MarkSynced(ctx, int64(10), "rf-10", syncedAt).Return(nil)
	// Failed upload result 11 is never persisted.

	var milestones []float64
	c.SetListener(func(st SyncState) {
		milestones = append(milestones, st.SyncProgress)
	})

	c.PerformFullSync(ctx)

	st := c.State()
	assert.False(t, st.IsFullSyncing)
	require.NotNil(t, st.LastSyncResult)
	assert.Equal(t, syncedAt, st.LastSyncResult.SyncTimestamp)
	assert.Contains(t, st.SyncMessage, "downloaded 1 books")
	assert.Contains(t, st.SyncMessage, "1 formulas (1 failed)")
	assert.Contains(t, milestones, 0.1)
	assert.Contains(t, milestones, 0.8)
	assert.Contains(t, milestones, 1.0)
}

func TestSyncCoordinator_PerformFullSync_EngineFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, m := newTestCoordinator(t, ctrl)
	ctx := context.Background()

	expectSignedInUser(m)
	m.books.EXPECT().GetAll(ctx).Return(nil, nil)
	m.engine.EXPECT().PerformFullSync(ctx, gomock.Nil(), gomock.Nil()).
		Return(models.SyncResult{}, errors.New("connection refused"))

	c.PerformFullSync(ctx)

	st := c.State()
	assert.False(t, st.IsFullSyncing)
	assert.Contains(t, st.Error, "full sync failed")
	assert.Nil(t, st.LastSyncResult)
}

// ── DownloadFromRemote ───────────────────────────────────────────────────────

func TestSyncCoordinator_DownloadFromRemote_IsPreviewOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, m := newTestCoordinator(t, ctrl)
	ctx := context.Background()

	remoteBooks := []models.RemoteBook{{ID: "rb-1"}, {ID: "rb-2"}}
	remoteFormulas := []models.RemoteFormula{{ID: "rf-1", BookID: "rb-1"}}

	expectSignedInUser(m)
	m.engine.EXPECT().FetchBooks(ctx).Return(remoteBooks, nil)
	m.engine.EXPECT().FetchFormulas(ctx, []string{"rb-1", "rb-2"}).Return(remoteFormulas, nil)
	// No repository writes: download reports counts without merging.

	c.DownloadFromRemote(ctx)

	st := c.State()
	assert.False(t, st.IsDownloading)
	assert.Equal(t, "downloaded 2 books and 1 formulas", st.SyncMessage)
}

// ── Ephemeral state ──────────────────────────────────────────────────────────

func TestSyncCoordinator_ClearErrorAndMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _ := newTestCoordinator(t, ctrl)

	c.UploadSelectedFormulas(context.Background()) // no book selected
	require.NotEmpty(t, c.State().Error)

	c.ClearError()
	assert.Empty(t, c.State().Error)

	c.ClearSyncMessage()
	assert.Empty(t, c.State().SyncMessage)
}

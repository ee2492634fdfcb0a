package store

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/models"
)

const selectFormulasSQL = `SELECT id, book_id, name, formula_text, description, image_uri, created_at, remote_id, last_synced_at, is_dirty FROM formulas`

func formulaRows(formulas ...models.Formula) *sqlmock.Rows {
	rows := sqlmock.NewRows(formulaColumns)
	for _, f := range formulas {
		var lastSynced driver.Value
		if f.LastSyncedAt != nil {
			lastSynced = *f.LastSyncedAt
		}
		rows.AddRow(f.ID, f.BookID, f.Name, f.FormulaText, f.Description, f.ImageURI, f.CreatedAt, f.RemoteID, lastSynced, f.IsDirty)
	}
	return rows
}

func TestFormulaRepository_Insert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFormulaRepository(newDBFromSQL(db), logger.Nop())

	formula := models.Formula{
		BookID:      3,
		Name:        "Quadratic formula",
		FormulaText: "x = (-b ± √(b²-4ac)) / 2a",
		CreatedAt:   time.Now().UTC(),
		IsDirty:     true,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO formulas (book_id,name,formula_text,description,image_uri,created_at,remote_id,last_synced_at,is_dirty) VALUES (?,?,?,?,?,?,?,?,?)`)).
		WithArgs(formula.BookID, formula.Name, formula.FormulaText, formula.Description, formula.ImageURI, formula.CreatedAt, formula.RemoteID, nil, formula.IsDirty).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.Insert(testContext(), formula)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormulaRepository_GetByBookID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFormulaRepository(newDBFromSQL(db), logger.Nop())

	now := time.Now().UTC().Truncate(time.Second)
	formulas := []models.Formula{
		{ID: 2, BookID: 3, Name: "Sum of angles", FormulaText: "α+β+γ=180°", CreatedAt: now, IsDirty: true},
		{ID: 1, BookID: 3, Name: "Pythagoras", FormulaText: "a²+b²=c²", CreatedAt: now.Add(-time.Minute), RemoteID: "r-1"},
	}

	mock.ExpectQuery(regexp.QuoteMeta(selectFormulasSQL+` WHERE book_id = ? ORDER BY created_at DESC`)).
		WithArgs(int64(3)).
		WillReturnRows(formulaRows(formulas...))

	got, err := repo.GetByBookID(testContext(), 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, formulas, got)
}

func TestFormulaRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFormulaRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectFormulasSQL+` WHERE id = ? ORDER BY created_at DESC`)).
		WithArgs(int64(77)).
		WillReturnRows(formulaRows())

	_, err := repo.GetByID(testContext(), 77)
	require.ErrorIs(t, err, ErrFormulaNotFound)
}

func TestFormulaRepository_GetDirty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFormulaRepository(newDBFromSQL(db), logger.Nop())

	dirty := models.Formula{ID: 9, BookID: 1, Name: "Euler", FormulaText: "e^{iπ}+1=0", CreatedAt: time.Now().UTC().Truncate(time.Second), IsDirty: true}
	mock.ExpectQuery(regexp.QuoteMeta(selectFormulasSQL+` WHERE (is_dirty = ? OR remote_id = ?) ORDER BY created_at DESC`)).
		WithArgs(true, "").
		WillReturnRows(formulaRows(dirty))

	got, err := repo.GetDirty(testContext())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, dirty, got[0])
}

func TestFormulaRepository_MarkSynced(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFormulaRepository(newDBFromSQL(db), logger.Nop())

	syncedAt := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE formulas SET remote_id = ?, last_synced_at = ?, is_dirty = ? WHERE id = ?`)).
		WithArgs("r-9", syncedAt, false, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSynced(testContext(), 9, "r-9", syncedAt)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormulaRepository_Delete_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFormulaRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM formulas WHERE id = ?`)).
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(testContext(), 123)
	require.ErrorIs(t, err, ErrFormulaNotFound)
}

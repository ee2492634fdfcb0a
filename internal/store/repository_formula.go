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

type formulaRepository struct {
	*DB
	logger *logger.Logger
}

func NewFormulaRepository(db *DB, logger *logger.Logger) FormulaRepository {
	return &formulaRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *formulaRepository) Insert(ctx context.Context, formula models.Formula) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.Insert("formulas").
		Columns("book_id", "name", "formula_text", "description", "image_uri", "created_at", "remote_id", "last_synced_at", "is_dirty").
		Values(formula.BookID, formula.Name, formula.FormulaText, formula.Description, formula.ImageURI,
			formula.CreatedAt, formula.RemoteID, formula.LastSyncedAt, formula.IsDirty).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert formula query: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "formulaRepository.Insert").
			Int64("book_id", formula.BookID).
			Str("name", formula.Name).
			Msg("failed to execute insert for formula")
		return 0, fmt.Errorf("failed to insert formula: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted formula id: %w", err)
	}

	return id, nil
}

func (r *formulaRepository) GetByBookID(ctx context.Context, bookID int64) ([]models.Formula, error) {
	query, args, err := selectFormulas().Where(sq.Eq{"book_id": bookID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select formulas query: %w", err)
	}

	return r.queryFormulas(ctx, "formulaRepository.GetByBookID", query, args...)
}

func (r *formulaRepository) GetByID(ctx context.Context, id int64) (models.Formula, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectFormulas().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Formula{}, fmt.Errorf("failed to build select formula query: %w", err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	formula, err := scanFormula(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Formula{}, ErrFormulaNotFound
		}
		log.Err(err).
			Str("func", "formulaRepository.GetByID").
			Int64("id", id).
			Msg("failed to scan formula row")
		return models.Formula{}, fmt.Errorf("failed to scan formula row: %w", err)
	}

	return formula, nil
}

func (r *formulaRepository) GetDirty(ctx context.Context) ([]models.Formula, error) {
	query, args, err := selectFormulas().Where(dirtyPredicate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select dirty formulas query: %w", err)
	}

	return r.queryFormulas(ctx, "formulaRepository.GetDirty", query, args...)
}

func (r *formulaRepository) Update(ctx context.Context, formula models.Formula) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.Update("formulas").
		Set("name", formula.Name).
		Set("formula_text", formula.FormulaText).
		Set("description", formula.Description).
		Set("image_uri", formula.ImageURI).
		Set("remote_id", formula.RemoteID).
		Set("last_synced_at", formula.LastSyncedAt).
		Set("is_dirty", formula.IsDirty).
		Where(sq.Eq{"id": formula.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update formula query: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "formulaRepository.Update").
			Int64("id", formula.ID).
			Msg("failed to execute update for formula")
		return fmt.Errorf("failed to update formula (id=%d): %w", formula.ID, err)
	}

	return requireRowsAffected(result, ErrFormulaNotFound)
}

func (r *formulaRepository) MarkSynced(ctx context.Context, id int64, remoteID string, syncedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.Update("formulas").
		Set("remote_id", remoteID).
		Set("last_synced_at", syncedAt).
		Set("is_dirty", false).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark formula synced query: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "formulaRepository.MarkSynced").
			Int64("id", id).
			Str("remote_id", remoteID).
			Msg("failed to execute mark synced for formula")
		return fmt.Errorf("failed to mark formula synced (id=%d): %w", id, err)
	}

	return requireRowsAffected(result, ErrFormulaNotFound)
}

func (r *formulaRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.Delete("formulas").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete formula query: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "formulaRepository.Delete").
			Int64("id", id).
			Msg("failed to execute delete for formula")
		return fmt.Errorf("failed to delete formula (id=%d): %w", id, err)
	}

	return requireRowsAffected(result, ErrFormulaNotFound)
}

func (r *formulaRepository) queryFormulas(ctx context.Context, fn, query string, args ...any) ([]models.Formula, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for formulas")
		return nil, fmt.Errorf("failed to query formulas: %w", err)
	}
	defer rows.Close()

	var formulas []models.Formula
	for rows.Next() {
		formula, scanErr := scanFormula(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan formula row")
			return nil, fmt.Errorf("failed to scan formula row: %w", scanErr)
		}
		formulas = append(formulas, formula)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating formula rows: %w", rowsErr)
	}

	return formulas, nil
}

func scanFormula(row rowScanner) (models.Formula, error) {
	var formula models.Formula
	var lastSyncedAt sql.NullTime

	err := row.Scan(
		&formula.ID,
		&formula.BookID,
		&formula.Name,
		&formula.FormulaText,
		&formula.Description,
		&formula.ImageURI,
		&formula.CreatedAt,
		&formula.RemoteID,
		&lastSyncedAt,
		&formula.IsDirty,
	)
	if err != nil {
		return models.Formula{}, err
	}

	if lastSyncedAt.Valid {
		formula.LastSyncedAt = &lastSyncedAt.Time
	}

	return formula, nil
}

package service

import (
	"context"
	"time"

	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/internal/store"
	"github.com/equanote/equanote/models"
)

type formulaService struct {
	formulas store.FormulaRepository
	books    store.BookRepository
	engine   SyncEngine
	logger   *logger.Logger
}

func NewFormulaService(formulas store.FormulaRepository, books store.BookRepository, engine SyncEngine, logger *logger.Logger) FormulaService {
	return &formulaService{formulas: formulas, books: books, engine: engine, logger: logger}
}

// Create implements [FormulaService]. The parent book must exist locally;
// the new formula starts dirty.
func (s *formulaService) Create(ctx context.Context, bookID int64, name, formulaText, description, imageURI string) (models.Formula, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return models.Formula{}, err
	}

	formula := models.Formula{
		BookID:      bookID,
		Name:        name,
		FormulaText: formulaText,
		Description: description,
		ImageURI:    imageURI,
		CreatedAt:   time.Now().UTC(),
		IsDirty:     true,
	}

	id, err := s.formulas.Insert(ctx, formula)
	if err != nil {
		s.logger.Err(err).Str("name", name).Msg("failed to create formula")
		return models.Formula{}, err
	}
	formula.ID = id

	return formula, nil
}

// GetByBook implements [FormulaService].
func (s *formulaService) GetByBook(ctx context.Context, bookID int64) ([]models.Formula, error) {
	return s.formulas.GetByBookID(ctx, bookID)
}

// Get implements [FormulaService].
func (s *formulaService) Get(ctx context.Context, id int64) (models.Formula, error) {
	return s.formulas.GetByID(ctx, id)
}

// Update implements [FormulaService]. Edits re-dirty the formula.
func (s *formulaService) Update(ctx context.Context, formula models.Formula) (models.Formula, error) {
	formula.IsDirty = true

	if err := s.formulas.Update(ctx, formula); err != nil {
		s.logger.Err(err).Int64("id", formula.ID).Msg("failed to update formula")
		return models.Formula{}, err
	}
	return formula, nil
}

// Delete implements [FormulaService]. Local delete first, then a best-effort
// remote soft delete when the formula was ever uploaded.
func (s *formulaService) Delete(ctx context.Context, id int64) error {
	formula, err := s.formulas.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.formulas.Delete(ctx, id); err != nil {
		s.logger.Err(err).Int64("id", id).Msg("failed to delete formula")
		return err
	}

	if formula.RemoteID != "" {
		if err := s.engine.DeleteFormula(ctx, formula.RemoteID); err != nil {
			s.logger.Err(err).Str("remote_id", formula.RemoteID).Msg("remote soft delete of formula failed")
		}
	}

	return nil
}

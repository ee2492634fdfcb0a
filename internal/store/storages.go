package store

import (
	"context"
	"fmt"

	"github.com/equanote/equanote/internal/config"
	"github.com/equanote/equanote/internal/logger"
)

// Storages groups all client-side repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	BookRepository    BookRepository
	FormulaRepository FormulaRepository
	UserRepository    UserRepository
}

// NewStorages initialises the local storage layer: it opens the SQLite
// database file specified in cfg.DB.DSN (creating it if needed), runs pending
// schema migrations, and wires the repositories.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		BookRepository:    NewBookRepository(db, logger),
		FormulaRepository: NewFormulaRepository(db, logger),
		UserRepository:    NewUserRepository(db, logger),
	}, nil
}

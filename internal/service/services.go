package service

import (
	"github.com/equanote/equanote/internal/adapter"
	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/internal/store"
)

// ClientServices wires every client-side service over one storage set and
// one remote gateway.
type ClientServices struct {
	Books       BookService
	Formulas    FormulaService
	Users       UserService
	Engine      SyncEngine
	Bridge      UserSyncService
	Coordinator *SyncCoordinator
}

func NewClientServices(storages *store.Storages, gateway adapter.RemoteGateway, log *logger.Logger) *ClientServices {
	engine := NewSyncEngine(gateway, log.GetChildLogger("sync engine"))
	bridge := NewUserSyncService(gateway, log.GetChildLogger("user sync"))

	return &ClientServices{
		Books:       NewBookService(storages.BookRepository, engine, log.GetChildLogger("book service")),
		Formulas:    NewFormulaService(storages.FormulaRepository, storages.BookRepository, engine, log.GetChildLogger("formula service")),
		Users:       NewUserService(storages.UserRepository, gateway, bridge, log.GetChildLogger("user service")),
		Engine:      engine,
		Bridge:      bridge,
		Coordinator: NewSyncCoordinator(engine, storages.BookRepository, storages.FormulaRepository, storages.UserRepository, bridge, log.GetChildLogger("sync coordinator")),
	}
}

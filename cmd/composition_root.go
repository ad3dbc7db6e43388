package cmd

import (
	"log/slog"

	httpadapter "orderbot/internal/adapters/in/http"
	"orderbot/internal/adapters/out/memory"
	"orderbot/internal/adapters/out/postgres"
	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	store      *memory.Store
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		store:      memory.NewStore(),
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) SessionStore() *memory.Store {
	return c.store
}

func (c *CompositionRoot) CreateAddItemsCommandHandler() commands.AddItemsCommandHandler {
	return commands.NewAddItemsCommandHandler(c.store)
}

func (c *CompositionRoot) CreateRemoveItemsCommandHandler() commands.RemoveItemsCommandHandler {
	return commands.NewRemoveItemsCommandHandler(c.store)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(c.store, f)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateAddItemsCommandHandler(),
		c.CreateRemoveItemsCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.store, c.config.SessionTTL, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"itemstore-backend/internal/config"
	"itemstore-backend/internal/infrastructure/database"
	"itemstore-backend/pkg/logger"

	asyncDomain "itemstore-backend/internal/domains/async"
	asyncHandler "itemstore-backend/internal/domains/async/handler"
	asyncService "itemstore-backend/internal/domains/async/service"
	"itemstore-backend/internal/domains/item"
	itemHandler "itemstore-backend/internal/domains/item/handler"
	itemRepo "itemstore-backend/internal/domains/item/repository"
	itemService "itemstore-backend/internal/domains/item/service"
	"itemstore-backend/internal/domains/user"
	userHandler "itemstore-backend/internal/domains/user/handler"
	userRepo "itemstore-backend/internal/domains/user/repository"
	userService "itemstore-backend/internal/domains/user/service"
)

// Container holds the application's dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.DB

	UserRepo user.Repository
	ItemRepo item.Repository

	UserService  user.Service
	ItemService  item.Service
	AsyncService asyncDomain.Service

	UserHandler  *userHandler.UserHandler
	ItemHandler  *itemHandler.ItemHandler
	AsyncHandler *asyncHandler.AsyncHandler
}

// NewContainer builds the full dependency graph. A failure at any layer
// aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
		"driver":      cfg.Database.Driver,
	})

	db := database.NewDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

func (c *Container) initRepositories() {
	c.UserRepo = userRepo.NewUserRepository(c.DB.SQL)
	c.ItemRepo = itemRepo.NewItemRepository(c.DB.SQL)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo)

	// Cross-domain dependency: items verify owners through the user repo.
	c.ItemService = itemService.NewItemService(c.ItemRepo, c.UserRepo)

	c.AsyncService = asyncService.NewAsyncService(
		&http.Client{Timeout: c.Config.External.FetchTimeout},
		time.Second,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ItemHandler = itemHandler.NewItemHandler(c.ItemService)
	c.AsyncHandler = asyncHandler.NewAsyncHandler(c.AsyncService)
}

// Cleanup releases infrastructure resources, in reverse initialization
// order.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		logger.Info("database connection closed", nil)
	}
}

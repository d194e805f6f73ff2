package main

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemstore-backend/internal/config"
	asyncHandler "itemstore-backend/internal/domains/async/handler"
	asyncService "itemstore-backend/internal/domains/async/service"
	itemHandler "itemstore-backend/internal/domains/item/handler"
	itemRepo "itemstore-backend/internal/domains/item/repository"
	itemService "itemstore-backend/internal/domains/item/service"
	userHandler "itemstore-backend/internal/domains/user/handler"
	userRepo "itemstore-backend/internal/domains/user/repository"
	userService "itemstore-backend/internal/domains/user/service"
	"itemstore-backend/internal/infrastructure/database"
	"itemstore-backend/pkg/container"
)

// newTestContainer builds a container over in-memory sqlite without going
// through environment-driven config loading.
func newTestContainer(t *testing.T) *container.Container {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, err := sql.Open("sqlite3", "file::memory:?_fk=1")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{
		App: config.AppConfig{Name: "Itemstore API", Version: "test", Port: "0"},
		API: config.APIConfig{Prefix: "/api"},
		Database: config.DatabaseConfig{
			Driver: "sqlite3",
			DSN:    "file::memory:?_fk=1",
		},
	}

	db := &database.DB{SQL: sqlDB, Config: &cfg.Database}
	require.NoError(t, db.EnsureSchema(context.Background()))

	c := &container.Container{Config: cfg, DB: db}
	c.UserRepo = userRepo.NewUserRepository(sqlDB)
	c.ItemRepo = itemRepo.NewItemRepository(sqlDB)
	c.UserService = userService.NewUserService(c.UserRepo)
	c.ItemService = itemService.NewItemService(c.ItemRepo, c.UserRepo)
	c.AsyncService = asyncService.NewAsyncService(&http.Client{Timeout: time.Second}, time.Millisecond)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ItemHandler = itemHandler.NewItemHandler(c.ItemService)
	c.AsyncHandler = asyncHandler.NewAsyncHandler(c.AsyncService)
	return c
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthAvailableAtRootAndUnderPrefix(t *testing.T) {
	router := SetupRouter(newTestContainer(t))

	for _, path := range []string{"/health", "/api/health"} {
		w := get(router, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"status":"ok"`, path)
	}
}

func TestRootRoute(t *testing.T) {
	router := SetupRouter(newTestContainer(t))

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Itemstore API")
}

func TestDomainRoutesRegistered(t *testing.T) {
	router := SetupRouter(newTestContainer(t))

	assert.Equal(t, http.StatusOK, get(router, "/api/users").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/items").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/async-hello").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/nope").Code)
}

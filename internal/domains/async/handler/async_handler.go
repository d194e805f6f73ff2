package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"itemstore-backend/internal/domains/async"
	"itemstore-backend/internal/shared/response"
	"itemstore-backend/pkg/logger"
)

// defaultFetchURLs are the targets for the concurrent fetch demo.
var defaultFetchURLs = []string{
	"https://jsonplaceholder.typicode.com/posts/1",
	"https://jsonplaceholder.typicode.com/posts/2",
	"https://jsonplaceholder.typicode.com/posts/3",
}

// AsyncHandler exposes the concurrency demo endpoints.
type AsyncHandler struct {
	service async.Service
}

func NewAsyncHandler(service async.Service) *AsyncHandler {
	return &AsyncHandler{service: service}
}

// Hello handles GET /async-hello
func (h *AsyncHandler) Hello(c *gin.Context) {
	msg, err := h.service.Hello(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": msg})
}

// SimulateTask handles GET /simulate-task/:task_id
func (h *AsyncHandler) SimulateTask(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid task_id parameter")
		return
	}

	result, err := h.service.SimulateTask(c.Request.Context(), taskID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ConcurrentFetch handles GET /concurrent-fetch
func (h *AsyncHandler) ConcurrentFetch(c *gin.Context) {
	results, err := h.service.FetchConcurrently(c.Request.Context(), defaultFetchURLs)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Fetched data concurrently",
		"results": results,
	})
}

// GatherExample handles GET /gather-example
func (h *AsyncHandler) GatherExample(c *gin.Context) {
	results, err := h.service.Gather(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Processed tasks in parallel",
		"results": results,
	})
}

// BackgroundTask handles POST /background-task. The worker is started and
// the response returns immediately.
func (h *AsyncHandler) BackgroundTask(c *gin.Context) {
	h.service.RunBackground()
	response.Success(c, http.StatusOK, gin.H{"message": "Background task started"})
}

func (h *AsyncHandler) handleError(c *gin.Context, err error) {
	logger.Error("async handler error", err)
	response.InternalServerError(c, "Internal server error")
}

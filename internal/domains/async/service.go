package async

import (
	"context"
	"encoding/json"
)

// TaskResult is the outcome of a simulated task.
type TaskResult struct {
	TaskID  int64  `json:"task_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FetchResult is the per-URL outcome of a concurrent fetch. Exactly one of
// Data or Error is set.
type FetchResult struct {
	URL    string          `json:"url"`
	Status int             `json:"status,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Service demonstrates concurrent I/O patterns against toy workloads. It has
// no data layer dependency.
type Service interface {
	// Hello waits briefly and returns a greeting.
	Hello(ctx context.Context) (string, error)

	// SimulateTask models a slow unit of work for the given task id.
	SimulateTask(ctx context.Context, taskID int64) (*TaskResult, error)

	// FetchConcurrently issues one GET per URL in parallel and returns a
	// result per URL, in input order, only after all complete. Individual
	// failures are reported per result, never as a call error.
	FetchConcurrently(ctx context.Context, urls []string) ([]FetchResult, error)

	// Gather runs several fixed-duration operations in parallel and
	// returns their results once the slowest finishes.
	Gather(ctx context.Context) ([]string, error)

	// RunBackground starts a fire-and-forget worker. It returns
	// immediately; there is no guarantee the worker finishes before
	// process shutdown.
	RunBackground()
}

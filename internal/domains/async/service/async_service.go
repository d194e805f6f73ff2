package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"itemstore-backend/internal/domains/async"
	"itemstore-backend/pkg/logger"
)

type asyncService struct {
	client *http.Client
	// delayUnit scales every demo delay. One second in production; tests
	// shrink it so they run fast.
	delayUnit time.Duration
}

// NewAsyncService creates the concurrency demo service. client bounds the
// outbound fetches (timeout comes from configuration).
func NewAsyncService(client *http.Client, delayUnit time.Duration) async.Service {
	if delayUnit <= 0 {
		delayUnit = time.Second
	}
	return &asyncService{client: client, delayUnit: delayUnit}
}

func (s *asyncService) Hello(ctx context.Context) (string, error) {
	if err := s.sleep(ctx, s.delayUnit); err != nil {
		return "", err
	}
	return "Hello from async endpoint!", nil
}

func (s *asyncService) SimulateTask(ctx context.Context, taskID int64) (*async.TaskResult, error) {
	logger.Info("starting task", map[string]interface{}{"task_id": taskID})
	if err := s.sleep(ctx, 2*s.delayUnit); err != nil {
		return nil, err
	}
	logger.Info("completed task", map[string]interface{}{"task_id": taskID})

	return &async.TaskResult{
		TaskID:  taskID,
		Status:  "completed",
		Message: fmt.Sprintf("Task %d processed successfully", taskID),
	}, nil
}

// FetchConcurrently fans one goroutine out per URL and waits for all of them.
// Each goroutine writes only its own slot, so no locking is needed, and
// failures stay local to their slot.
func (s *asyncService) FetchConcurrently(ctx context.Context, urls []string) ([]async.FetchResult, error) {
	results := make([]async.FetchResult, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			results[i] = s.fetchURL(ctx, url)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *asyncService) fetchURL(ctx context.Context, url string) async.FetchResult {
	result := async.FetchResult{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	resp, err := s.client.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	result.Status = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		return result
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if !json.Valid(body) {
		result.Error = "response is not valid JSON"
		return result
	}
	result.Data = body
	return result
}

// Gather runs three operations of different durations in parallel. Total
// wall time is the slowest operation, not the sum.
func (s *asyncService) Gather(ctx context.Context) ([]string, error) {
	durations := []time.Duration{
		s.delayUnit,
		s.delayUnit + s.delayUnit/2,
		s.delayUnit / 2,
	}
	results := make([]string, len(durations))

	g, ctx := errgroup.WithContext(ctx)
	for i, d := range durations {
		g.Go(func() error {
			if err := s.sleep(ctx, d); err != nil {
				return err
			}
			results[i] = fmt.Sprintf("Operation %d completed", i+1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunBackground detaches from the request entirely: the worker outlives the
// request context and its completion is only logged.
func (s *asyncService) RunBackground() {
	go func() {
		time.Sleep(5 * s.delayUnit)
		logger.Info("background task completed", nil)
	}()
}

func (s *asyncService) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

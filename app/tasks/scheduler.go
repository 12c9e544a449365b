package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dailydash/dailydash/app/cfg"
	"github.com/dailydash/dailydash/app/providers"
	"github.com/dailydash/dailydash/app/store"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

type Scheduler struct {
	newsClient   NewsFetcher
	movieClient  MovieFetcher
	feedClient   SourceFetcher
	sources      []providers.Source
	sourceCache  *store.SourceCache
	contentStore *store.ContentStore
	preferences  *store.PreferencesStore
	interval     time.Duration
	workerCount  int
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	taskQueue    chan TaskInterface
}

func NewScheduler(newsClient NewsFetcher, movieClient MovieFetcher, feedClient SourceFetcher,
	sources []providers.Source, sourceCache *store.SourceCache, contentStore *store.ContentStore,
	preferences *store.PreferencesStore) TaskSchedulerInterface {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := cfg.Get()

	return &Scheduler{
		newsClient:   newsClient,
		movieClient:  movieClient,
		feedClient:   feedClient,
		sources:      sources,
		sourceCache:  sourceCache,
		contentStore: contentStore,
		preferences:  preferences,
		interval:     time.Duration(cfg.RefreshInterval) * time.Second,
		workerCount:  cfg.WorkerCount,
		ctx:          ctx,
		cancel:       cancel,
		taskQueue:    make(chan TaskInterface, 300),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueRefreshTasks()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueRefreshTasks()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

// EnqueueRefresh enqueues one content refresh and one trending refresh task.
// Used by the scheduling ticker and by the manual refresh endpoint.
func (s *Scheduler) EnqueueRefresh() error {
	contentTask := NewRefreshContentTask(s.newsClient, s.movieClient, s.feedClient,
		s.sources, s.sourceCache, s.contentStore, s.preferences)
	if err := s.EnqueueTask(contentTask); err != nil {
		return fmt.Errorf("failed to enqueue RefreshContentTask: %w", err)
	}

	trendingTask := NewRefreshTrendingTask(s.movieClient, s.sourceCache)
	if err := s.EnqueueTask(trendingTask); err != nil {
		return fmt.Errorf("failed to enqueue RefreshTrendingTask: %w", err)
	}

	return nil
}

func (s *Scheduler) enqueueRefreshTasks() {
	if err := s.EnqueueRefresh(); err != nil {
		slog.Warn("Failed to enqueue refresh tasks", "error", err)
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)

	if err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

		if task.CanRetry() {
			task.IncrementRetryCount()
			retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
			if retryDelay > 30*time.Second {
				retryDelay = 30 * time.Second
			}

			slog.Warn("Task retry scheduled", "type", string(task.GetType()), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

			go func() {
				time.Sleep(retryDelay)
				select {
				case <-s.ctx.Done():
					slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
					return
				default:
					if retryErr := s.EnqueueTask(task); retryErr != nil {
						slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
					}
				}
			}()
		} else {
			slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		}
	}
}

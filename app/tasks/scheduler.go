package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
	"github.com/Vipul251/ai-seo-blog-generator/app/cfg"
	"github.com/Vipul251/ai-seo-blog-generator/app/database"
	"github.com/Vipul251/ai-seo-blog-generator/app/export"
	"github.com/Vipul251/ai-seo-blog-generator/app/keyword"
	"github.com/Vipul251/ai-seo-blog-generator/app/scraper"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

// pendingPostBatch caps how many post generations are enqueued per tick.
const pendingPostBatch = 10

type Scheduler struct {
	configCache *catalog.ConfigCache
	sourceRepo  database.SourceRepository
	productRepo database.ProductRepository
	keywordRepo database.KeywordRepository
	postRepo    database.PostRepository
	httpClient  *http.Client
	scraper     *scraper.Scraper
	extractor   *scraper.DescriptionExtractor
	researcher  *keyword.Researcher
	generator   *blog.Generator
	writer      *export.Writer
	userAgent   string
	interval    time.Duration
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewScheduler(configCache *catalog.ConfigCache, sourceRepo database.SourceRepository,
	productRepo database.ProductRepository, keywordRepo database.KeywordRepository,
	postRepo database.PostRepository, httpClient *http.Client) TaskSchedulerInterface {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := cfg.Get()

	return &Scheduler{
		configCache: configCache,
		sourceRepo:  sourceRepo,
		productRepo: productRepo,
		keywordRepo: keywordRepo,
		postRepo:    postRepo,
		httpClient:  httpClient,
		scraper:     scraper.NewScraper(httpClient, cfg.UserAgent),
		extractor:   scraper.NewDescriptionExtractor(),
		researcher:  keyword.NewResearcher(),
		generator:   blog.NewGenerator(),
		writer:      export.NewWriter(cfg.OutputDir),
		userAgent:   cfg.UserAgent,
		interval:    time.Duration(cfg.SchedulerInterval) * time.Second,
		workerCount: cfg.WorkerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 300),
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

		s.enqueueStartupTasks()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueTasks()
			}
		}
	}()

}

// Stop cancels the scheduler context and waits for workers and pending
// retries to finish. The queue is left open: a send racing the shutdown
// lands in the buffer instead of panicking on a closed channel.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
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

func (s *Scheduler) enqueueStartupTasks() {
	sourceConfigs := s.configCache.GetConfigs()
	if len(sourceConfigs) == 0 {
		slog.Debug("No source configurations found")
		return
	}

	slog.Debug("Processing source configurations", "count", len(sourceConfigs))

	for _, sourceConfig := range sourceConfigs {
		syncTask := NewSyncSourceTask(sourceConfig.Name, sourceConfig, s.sourceRepo)
		if err := s.EnqueueTask(syncTask); err != nil {
			slog.Warn("Failed to enqueue SyncSourceTask", "source", sourceConfig.Name, "error", err)
			continue
		}

		if !sourceConfig.Settings.Enabled {
			slog.Debug("Source disabled, skipping FetchProductsTask", "source", sourceConfig.Name)
			continue
		}

		fetchTask := NewFetchProductsTask(sourceConfig.Name, sourceConfig, s.scraper, s.sourceRepo, s.productRepo)
		if err := s.EnqueueTask(fetchTask); err != nil {
			slog.Warn("Failed to enqueue FetchProductsTask", "source", sourceConfig.Name, "error", err)
		}
	}
}

func (s *Scheduler) enqueueTasks() {
	sourceConfigs := s.configCache.GetEnabledConfigs()

	for _, sourceConfig := range sourceConfigs {
		source, err := s.sourceRepo.GetSource(sourceConfig.Name)
		if err != nil {
			slog.Warn("Failed to get source from database, skipping", "source", sourceConfig.Name, "error", err)
			continue
		}
		if source == nil {
			slog.Warn("Source not found in database, skipping", "source", sourceConfig.Name)
			continue
		}

		now := time.Now().UTC()
		if source.NextFetchAt != nil && source.NextFetchAt.After(now) {
			slog.Debug("Source not due for refresh yet", "source", sourceConfig.Name, "next_fetch_at", source.NextFetchAt)
		} else {
			fetchTask := NewFetchProductsTask(sourceConfig.Name, sourceConfig, s.scraper, s.sourceRepo, s.productRepo)
			if err := s.EnqueueTask(fetchTask); err != nil {
				slog.Warn("Failed to enqueue FetchProductsTask", "source", sourceConfig.Name, "error", err)
			}
		}

		if sourceConfig.Settings.ExtractDescriptions {
			enrichTask := NewEnrichProductsTask(sourceConfig.Name, sourceConfig, s.httpClient, s.extractor, s.productRepo, s.userAgent)
			if err := s.EnqueueTask(enrichTask); err != nil {
				slog.Warn("Failed to enqueue EnrichProductsTask", "source", sourceConfig.Name, "error", err)
			}
		}
	}

	s.enqueueGenerationTasks()
}

// enqueueGenerationTasks schedules post generation for stored products that
// have no blog post yet.
func (s *Scheduler) enqueueGenerationTasks() {
	products, err := s.productRepo.GetProductsWithoutPosts(pendingPostBatch)
	if err != nil {
		slog.Warn("Failed to get products without posts", "error", err)
		return
	}

	for _, product := range products {
		sourceConfig, err := s.configCache.GetConfig(product.SourceName)
		if err != nil {
			slog.Warn("No configuration for product source, skipping generation", "source", product.SourceName, "product", product.ID)
			continue
		}

		generateTask := NewGeneratePostTask(product.SourceName, product, sourceConfig.Settings.ExportFormats,
			s.researcher, s.generator, s.keywordRepo, s.postRepo, s.writer)
		if err := s.EnqueueTask(generateTask); err != nil {
			slog.Warn("Failed to enqueue GeneratePostTask", "source", product.SourceName, "product", product.ID, "error", err)
		}
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

			slog.Warn("Task retry scheduled", "type", string(task.GetType()), "source", task.GetSourceName(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

			// The retry goroutine joins the WaitGroup so Stop waits for
			// pending retries instead of racing them
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()

				select {
				case <-time.After(retryDelay):
				case <-s.ctx.Done():
					slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
					return
				}

				if retryErr := s.EnqueueTask(task); retryErr != nil {
					slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
				}
			}()
		} else {
			slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		}
	}
}

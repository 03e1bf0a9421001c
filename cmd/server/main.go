package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/liveboard/internal/api"
	"github.com/vytor/liveboard/internal/config"
	"github.com/vytor/liveboard/internal/db"
	"github.com/vytor/liveboard/internal/jobs"
	"github.com/vytor/liveboard/internal/logger"
	"github.com/vytor/liveboard/internal/predictor"
	"github.com/vytor/liveboard/internal/repository/sqlite"
	"github.com/vytor/liveboard/internal/services"
	"github.com/vytor/liveboard/internal/session"
	"github.com/vytor/liveboard/internal/worker"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	// The first argument, when given, selects the mode: "default" or "prediction".
	if len(os.Args) > 1 {
		cfg.Mode = os.Args[1]
	}

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	log.Info("===========================================")
	log.Info("LiveBoard Server Starting (mode=%s)", cfg.Mode)
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("model_path=%s", cfg.ModelPath)
	log.Debug("move_vocab_path=%s", cfg.VocabPath)
	log.Debug("snapshots_enabled=%t", cfg.SnapshotsEnabled)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("restore_board=%t", cfg.RestoreBoard)
	log.Debug("snapshot_worker_count=%d", cfg.SnapshotWorkerCount)
	log.Debug("snapshot_queue_size=%d", cfg.SnapshotQueueSize)
	log.Debug("request_timeout=%v", cfg.RequestTimeout)

	if err := cfg.Validate(); err != nil {
		return err
	}

	var ranker services.MoveRanker
	if cfg.PredictionEnabled() {
		p, err := loadPredictor(cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			log.Debug("releasing model")
			if err := p.Close(); err != nil {
				log.Warn("failed to close model: %v", err)
			}
			if err := predictor.ShutdownRuntime(); err != nil {
				log.Warn("failed to shut down onnxruntime: %v", err)
			}
		}()
		ranker = p
	}

	store := session.NewStore()
	var boardService services.BoardService

	if cfg.SnapshotsEnabled {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() {
			log.Debug("closing database connection")
			database.Close()
		}()

		repo := sqlite.NewSnapshotRepository(database.DB)
		pool := worker.NewPool(cfg.SnapshotWorkerCount, cfg.SnapshotQueueSize)
		// The pool outlives the signal context so queued saves drain on shutdown.
		pool.Start(context.Background())
		defer func() {
			log.Debug("stopping snapshot pool")
			pool.Stop()
		}()

		boardService = services.NewBoardService(store, ranker, repo, jobs.NewWorkerQueue(pool, repo))
	} else {
		boardService = services.NewBoardService(store, ranker, nil, nil)
	}

	if cfg.RestoreBoard {
		if err := boardService.Restore(context.Background()); err != nil {
			return fmt.Errorf("restore board: %w", err)
		}
	}

	srv := &api.Server{
		BoardService:   boardService,
		AllowedOrigin:  cfg.CORSAllowedOrigin,
		RequestTimeout: cfg.RequestTimeout,
	}
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("initiating graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()

	log.Info("===========================================")
	log.Info("LiveBoard Server Stopped")
	log.Info("===========================================")
	return err
}

// loadPredictor brings up onnxruntime, the move vocabulary and the model.
func loadPredictor(cfg config.Config, log *logger.Logger) (*predictor.Predictor, error) {
	log.Info("loading move-prediction model")
	if err := predictor.InitRuntime(cfg.OnnxRuntimeLib); err != nil {
		return nil, err
	}

	vocab, err := predictor.LoadVocabulary(cfg.VocabPath)
	if err != nil {
		_ = predictor.ShutdownRuntime()
		return nil, fmt.Errorf("load move vocabulary: %w", err)
	}

	model, err := predictor.NewONNXModel(predictor.ONNXOptions{
		ModelPath:   cfg.ModelPath,
		InputName:   cfg.ModelInputName,
		OutputName:  cfg.ModelOutputName,
		OutputWidth: vocab.Len(),
	})
	if err != nil {
		_ = predictor.ShutdownRuntime()
		return nil, fmt.Errorf("load model: %w", err)
	}
	log.Info("model ready: %d moves in vocabulary", vocab.Len())
	return predictor.New(model, vocab), nil
}

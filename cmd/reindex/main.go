// Command reindex rebuilds the inverted index for one book (-book) or for
// the whole library (-all). Books are processed in parallel up to the
// configured limit; reconciliation of a single book is always serialized.
//
// Exit codes: 0 = success, 1 = error (any failed book fails the run).
//
// Intended for backfills and recovery after bulk imports; regular edits are
// reindexed by the service that applied them.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/lexread/lexread-backend/internal/adapter/postgres"
	"github.com/lexread/lexread-backend/internal/adapter/postgres/book"
	"github.com/lexread/lexread-backend/internal/adapter/postgres/token"
	"github.com/lexread/lexread-backend/internal/adapter/postgres/totals"
	"github.com/lexread/lexread-backend/internal/adapter/postgres/vocab"
	"github.com/lexread/lexread-backend/internal/app"
	"github.com/lexread/lexread-backend/internal/config"
	"github.com/lexread/lexread-backend/internal/normalizer"
	"github.com/lexread/lexread-backend/internal/service/indexer"
	"github.com/lexread/lexread-backend/pkg/metrics"
)

func main() {
	var (
		bookID      = flag.Int64("book", 0, "reindex a single book by id")
		all         = flag.Bool("all", false, "reindex every book in the library")
		metricsAddr = flag.String("metrics-addr", "", "serve Prometheus metrics on this address for the duration of the run")
	)
	flag.Parse()

	if (*bookID != 0) == *all {
		log.Fatal("exactly one of -book or -all is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	norm, err := normalizer.New(normalizer.Config{Phrases: cfg.Normalizer.Phrases})
	if err != nil {
		logger.Error("build normalizer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m := metrics.New()
	if *metricsAddr != "" {
		srv := &http.Server{Addr: *metricsAddr, Handler: metrics.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", slog.String("error", err.Error()))
			}
		}()
		defer srv.Shutdown(context.Background()) //nolint:errcheck
	}

	bookRepo := book.New(pool)
	svc := indexer.NewService(
		logger,
		bookRepo,
		token.New(pool),
		vocab.New(pool),
		totals.New(pool),
		norm,
		postgres.NewTxManager(pool),
		m,
		cfg.Indexer.ConflictRetries,
	)

	ids := []int64{*bookID}
	if *all {
		if ids, err = bookRepo.ListIDs(ctx); err != nil {
			logger.Error("list books", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Indexer.Parallelism)
	for _, id := range ids {
		g.Go(func() error {
			_, err := svc.Reindex(gctx, id)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("reindex run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("reindex run completed", slog.Int("books", len(ids)))
}

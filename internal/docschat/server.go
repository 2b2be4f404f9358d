package docschat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moralisweb3/docschat/internal/docschat/config"
	v1 "github.com/moralisweb3/docschat/internal/docschat/handler/v1"
	"github.com/moralisweb3/docschat/internal/docschat/service/docs"
	"github.com/moralisweb3/docschat/internal/docschat/service/docs/toolset"
	"github.com/moralisweb3/docschat/internal/docschat/service/llm"
	"github.com/moralisweb3/docschat/internal/docschat/store/boltdb"
	"github.com/moralisweb3/docschat/pkg/logger"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

type apiServer struct {
	engine *gin.Engine
	addr   string

	db *boltdb.DB
}

type preparedAPIServer struct {
	*apiServer
}

func createAPIServer(cfg *config.Config) (*apiServer, error) {
	gin.SetMode(cfg.GenericServerRunOptions.Mode)

	// Corpus and tool registry.
	store, err := docs.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to load docs corpus: %w", err)
	}
	registry := toolset.New(store)
	logger.Info("[Docschat] corpus loaded, %d tools registered", registry.Len())

	// Completion service boundary with the tool descriptors bound.
	ctx := context.Background()
	cm, err := llm.NewChatModel(ctx, cfg.ModelOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chat model: %w", err)
	}
	descriptors, err := registry.Descriptors(ctx)
	if err != nil {
		return nil, err
	}
	bound, err := llm.BindTools(cm, descriptors)
	if err != nil {
		return nil, err
	}

	// Transcript persistence (optional).
	var (
		db          *boltdb.DB
		transcripts *boltdb.TranscriptStore
	)
	if cfg.StoreOptions.Enabled {
		db, err = boltdb.Open(cfg.StoreOptions.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open transcript store: %w", err)
		}
		transcripts = boltdb.NewTranscriptStore(db)
		logger.Info("[Docschat] transcript store opened at %s", cfg.StoreOptions.Path)
	}

	chatHandler := v1.NewChatHandler(
		bound, registry, transcriptWriterOrNil(transcripts),
		cfg.ChatOptions.MaxTurns, cfg.ChatOptions.EventBuffer,
	)
	transcriptHandler := v1.NewTranscriptHandler(transcriptReaderOrNil(transcripts))

	engine := gin.New()
	initRouter(engine, &routerDeps{
		chatHandler:       chatHandler,
		transcriptHandler: transcriptHandler,
		profiling:         cfg.GenericServerRunOptions.Profiling,
	})

	return &apiServer{
		engine: engine,
		addr:   cfg.GenericServerRunOptions.Addr(),
		db:     db,
	}, nil
}

// transcriptWriterOrNil avoids a typed-nil interface when persistence is off.
func transcriptWriterOrNil(s *boltdb.TranscriptStore) v1.TranscriptWriter {
	if s == nil {
		return nil
	}
	return s
}

func transcriptReaderOrNil(s *boltdb.TranscriptStore) v1.TranscriptReader {
	if s == nil {
		return nil
	}
	return s
}

func (s *apiServer) PrepareRun() preparedAPIServer {
	return preparedAPIServer{s}
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s preparedAPIServer) Run() error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[Docschat] serving on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("[Docschat] shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logger.Warn("[Docschat] closing transcript store: %v", err)
		}
	}
	return nil
}

package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/interview"
	"interview-backend/internal/llm"
	"interview-backend/internal/llm/gemini"
	"interview-backend/internal/llm/openai"
	"interview-backend/internal/shared/config"
	"interview-backend/internal/shared/server"
	"interview-backend/internal/shared/storage/db"
	"interview-backend/internal/transcripts"
	localsink "interview-backend/internal/transcripts/local"
	s3sink "interview-backend/internal/transcripts/s3"
	"interview-backend/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Oracle           llm.Client
	Transcripts      transcripts.Sink
	SessionsRepo     interview.Repo
	InterviewService *interview.Service
	InterviewHandler *interview.Handler
	UploadsHandler   *uploads.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	oracle, err := buildOracle(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sink, err := buildSink(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo interview.Repo
	if sqlDB != nil {
		repo = &interview.PGRepo{DB: sqlDB}
	} else {
		repo = interview.NewMemoryRepo()
	}

	graph := &interview.Graph{
		Oracle:      oracle,
		Transcripts: sink,
		MaxTurns:    cfg.Policy.MaxTurns,
	}
	svc := interview.NewService(repo, graph)

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Oracle:           oracle,
		Transcripts:      sink,
		SessionsRepo:     repo,
		InterviewService: svc,
		InterviewHandler: interview.NewHandler(svc),
		UploadsHandler:   uploads.NewHandler(),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		InterviewHandler: app.InterviewHandler,
		UploadsHandler:   app.UploadsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory session registry")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory session registry: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildOracle(ctx context.Context, cfg config.Config) (llm.Client, error) {
	model := cfg.LLMModel
	if strings.TrimSpace(model) == "" {
		model = cfg.Policy.Model
	}
	switch cfg.LLMProvider {
	case "gemini":
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, model, cfg.Policy.Temperature)
	default:
		return openai.NewClient(cfg.OpenAIAPIKey, model, cfg.Policy.Temperature)
	}
}

func buildSink(ctx context.Context, cfg config.Config) (transcripts.Sink, error) {
	switch cfg.TranscriptStore {
	case "s3":
		return s3sink.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localsink.New(cfg.TranscriptDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

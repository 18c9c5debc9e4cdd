package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/recruitly/talentflow/internal/cache"
	"github.com/recruitly/talentflow/internal/config"
	"github.com/recruitly/talentflow/internal/database"
	"github.com/recruitly/talentflow/internal/handler"
	"github.com/recruitly/talentflow/internal/interview"
	"github.com/recruitly/talentflow/internal/logger"
	"github.com/recruitly/talentflow/internal/mailer"
	"github.com/recruitly/talentflow/internal/notify"
	"github.com/recruitly/talentflow/internal/repository"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.ConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	rdb, err := cache.Connect(ctx, cfg.Redis)
	if err != nil {
		sugar.Warnw("redis unavailable, interview reads fall back to the database", "err", err)
	}

	repo := repository.NewRepository(pool)
	store := cache.WrapInterviewStore(repo.Interview, rdb, cfg.Redis.TTL, log)

	transport := mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.From, cfg.SMTP.Timeout)
	notifier := notify.New(transport, log, cfg.SMTP.Timeout)

	engine := interview.NewEngine(store, repo.Candidate, repo.Client, notifier, log)

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler: &handler.Handler{
			Logger: log,
			Engine: engine,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

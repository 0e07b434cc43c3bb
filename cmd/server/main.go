package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"audience_backend/internal/app/di"
	"audience_backend/internal/app/router"
	analysisadapters "audience_backend/internal/feature/analysis/adapters"
	analysishandler "audience_backend/internal/feature/analysis/transport/handler"
	analysisusecase "audience_backend/internal/feature/analysis/usecase"
	authadapters "audience_backend/internal/feature/auth/adapters"
	authentity "audience_backend/internal/feature/auth/domain/entity"
	authhandler "audience_backend/internal/feature/auth/transport/handler"
	authusecase "audience_backend/internal/feature/auth/usecase"
	questionnairehandler "audience_backend/internal/feature/questionnaire/transport/handler"
	questionnaireusecase "audience_backend/internal/feature/questionnaire/usecase"
	"audience_backend/internal/platform/db"
	httpclient "audience_backend/internal/platform/http"
	platformhandler "audience_backend/internal/platform/http/handler"
	jwtmw "audience_backend/internal/platform/jwt"
	infraredis "audience_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.OpenDB(db.LoadConfigFromEnv(), &authentity.User{}, &analysisadapters.AnalysisModel{})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig()); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// JWT_SECRETチェック
	jwtCfg := jwtmw.LoadConfig()
	if jwtCfg.Secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// LLM
	llmTimeout := httpclient.DefaultTimeout
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			llmTimeout = d
		}
	}
	generator, err := di.NewAnalysisGenerator(ctx, httpclient.NewHTTPClient(llmTimeout))
	if err != nil {
		log.Fatalf("failed to create analysis generator: %v", err)
	}

	// Repository
	userRepo := authadapters.NewUserGorm(gdb)
	analysisRepo := di.NewAnalysisRepository(gdb, rdb)
	draftRepo := di.NewDraftRepository(rdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(jwtCfg))
	analysisUC := analysisusecase.NewAnalysisUsecase(generator, analysisRepo)
	questionnaireUC := questionnaireusecase.NewQuestionnaireUsecase(draftRepo, analysisUC)

	// Handler
	handlers := router.Handlers{
		Health:        platformhandler.NewHealthHandler(readinessChecks(gdb, rdb)),
		Auth:          authhandler.NewAuthHandler(authUC),
		Analysis:      analysishandler.NewAnalysisHandler(analysisUC),
		Questionnaire: questionnairehandler.NewQuestionnaireHandler(questionnaireUC),
	}

	// ルータ生成
	r := router.NewRouter(router.Config{
		JWTSecret:    jwtCfg.Secret,
		AllowOrigins: router.ParseOrigins(os.Getenv("CORS_ALLOW_ORIGINS")),
	}, handlers)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// readinessChecks は/readyzで確認する依存先を返します。Redisは接続できた場合のみ対象にします。
func readinessChecks(gdb *gorm.DB, rdb *redisv9.Client) map[string]platformhandler.Check {
	checks := map[string]platformhandler.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}
	return checks
}

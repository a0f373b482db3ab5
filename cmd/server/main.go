package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Lucasliu251/TrashBox-Server/internal/api/handler"
	"github.com/Lucasliu251/TrashBox-Server/internal/api/router"
	"github.com/Lucasliu251/TrashBox-Server/internal/config"
	"github.com/Lucasliu251/TrashBox-Server/internal/model"
	"github.com/Lucasliu251/TrashBox-Server/internal/repository"
	"github.com/Lucasliu251/TrashBox-Server/internal/service"
	"github.com/Lucasliu251/TrashBox-Server/internal/session"
	"github.com/Lucasliu251/TrashBox-Server/internal/telemetry"
	"github.com/Lucasliu251/TrashBox-Server/internal/wechat"
	"github.com/Lucasliu251/TrashBox-Server/pkg/logger"
)

// @title TrashBox API
// @version 1.0
// @description 社区小程序后端：微信登录绑定、用户资料、帖子发布与列表
// @BasePath /api/v1
func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry, "trashbox-server")
	if err != nil {
		logger.Error("telemetry init failed", zap.Error(err))
	} else {
		defer func() { _ = shutdownTracing(context.Background()) }()
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		logger.Error("open database failed", zap.Error(err))
		return
	}
	if err := db.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		logger.Error("migrate failed", zap.Error(err))
		return
	}

	var rdb *redis.Client
	if cfg.Session.Mode == "redis" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Error("redis ping failed", zap.Error(err))
			return
		}
		defer rdb.Close()
	}

	sessions, err := session.New(cfg.Session, rdb)
	if err != nil {
		logger.Error("init session store failed", zap.Error(err))
		return
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	wx := wechat.NewClient(cfg.WeChat)
	userService := service.NewUserService(wx, userRepo, sessions)
	postService := service.NewPostService(postRepo)
	h := handler.New(userService, postService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router.New(cfg, h, sessions),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server exited", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

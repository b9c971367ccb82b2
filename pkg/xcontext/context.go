package xcontext

import (
	"context"

	"github.com/famquest-app/backend/config"
	"github.com/famquest-app/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey      struct{}
	loggerKey  struct{}
	configsKey struct{}
	userIDKey  struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the gorm.DB carried by the context. When a transaction is in
// flight the transaction handle is stored instead, so repositories pick it
// up transparently.
func DB(ctx context.Context) *gorm.DB {
	if db, ok := ctx.Value(dbKey{}).(*gorm.DB); ok {
		return db
	}
	return nil
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return l
	}
	return logger.NewLogger(logger.SILENCE)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	if cfg, ok := ctx.Value(configsKey{}).(config.Configs); ok {
		return cfg
	}
	return config.Configs{}
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

func GetRequestUserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}
	return ""
}

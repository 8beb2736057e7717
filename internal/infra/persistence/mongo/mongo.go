// Package mongo implements the persistence layer on MongoDB.
// Multi-document transactions require a replica set deployment.
package mongo

import (
	"context"
	"log/slog"

	"dashkeep/config"
	"dashkeep/internal/domain/lifecycle"
	"dashkeep/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names.
const (
	accountsCollection   = "accounts"
	profilesCollection   = "profiles"
	dashboardsCollection = "dashboards"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects lazily and registers ping, index bootstrap and disconnect hooks.
func New(params Params) (*mongo.Database, error) {
	db, err := Open(params.Config)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("MongoDB ready", slog.String("database", db.Name()))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return errors.Wrap(db.Client().Disconnect(stopCtx), "failed to disconnect MongoDB")
		},
	})

	return db, nil
}

// Open builds the client without lifecycle hooks, for command-line tools.
func Open(cfg *config.Config) (*mongo.Database, error) {
	if cfg.Mongo == nil {
		return nil, errors.New("mongo config is missing")
	}

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetConnectTimeout(cfg.Mongo.Timeout).
		SetServerSelectionTimeout(cfg.Mongo.Timeout)
	if cfg.Env.ServiceName != "" {
		opts.SetAppName(cfg.Env.ServiceName)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	return client.Database(cfg.Mongo.Database), nil
}

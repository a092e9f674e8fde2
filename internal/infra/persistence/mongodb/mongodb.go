// Package mongodb contains the concrete implementation of the persistence
// layer using the official MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"empdir/config"
	"empdir/internal/domain/lifecycle"
	"empdir/internal/errors"
	"empdir/internal/infra/persistence/model"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the process-scoped MongoDB database handle. The connection is
// established and the unique indexes ensured on startup; the client is
// disconnected on shutdown.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return errors.Wrap(err, "failed to ensure indexes")
			}

			params.Logger.Info("MongoDB connected", slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return db, nil
}

// ensureIndexes creates the unique indexes that back the uniqueness
// invariants. They are the authoritative guard against duplicate races that
// a read-then-write pre-check cannot close.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(model.UserModel{}.CollectionName())
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return errors.Wrap(err, "create user indexes")
	}

	employees := db.Collection(model.EmployeeModel{}.CollectionName())
	_, err = employees.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	return errors.Wrap(err, "create employee indexes")
}

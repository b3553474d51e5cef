package infra

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudcopper/dd/domain/errors"
	"github.com/cloudcopper/dd/infra/config"
	"github.com/cloudcopper/dd/ports"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DefaultConnectTimeout = 10 * time.Second

// NewMongoDatabase connects to database given by cfg and pings it.
// The returned func disconnects the client.
func NewMongoDatabase(ctx context.Context, log ports.Logger, cfg *config.DBConfig) (ports.DB, func(), error) {
	if cfg == nil {
		return nil, nil, errors.ErrNilConfig
	}
	log = log.With(slog.String("entity", "MongoDB"), slog.String("url", cfg.String()))

	// Timeouts given in url take precedence
	opts := options.Client().
		SetServerSelectionTimeout(DefaultConnectTimeout).
		ApplyURI(cfg.URL)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	closeClient := func() {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Error("disconnect error", slog.Any("err", err))
		}
	}

	start := time.Now()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		closeClient()
		return nil, nil, err
	}

	name := cfg.Database()
	log.Info("connected", slog.String("database", name), slog.Duration("ping", time.Since(start)))

	return client.Database(name), closeClient, nil
}

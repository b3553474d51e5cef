package infra

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/cloudcopper/dd/domain/errors"
	"github.com/cloudcopper/dd/infra/config"
	"github.com/stretchr/testify/require"
)

func TestNewMongoDatabaseNilConfig(t *testing.T) {
	assert := require.New(t)
	db, closeDb, err := NewMongoDatabase(context.Background(), slog.Default(), nil)
	assert.True(errors.Is(err, errors.ErrNilConfig))
	assert.Nil(db)
	assert.Nil(closeDb)
}

func TestNewMongoDatabaseMalformedURL(t *testing.T) {
	assert := require.New(t)
	cfg := &config.DBConfig{URL: "not a url at all", Source: config.SourceEnv}
	db, closeDb, err := NewMongoDatabase(context.Background(), slog.Default(), cfg)
	assert.Error(err)
	assert.Nil(db)
	assert.Nil(closeDb)
}

func TestNewMongoDatabaseUnreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for server selection")
	}
	assert := require.New(t)
	// Nothing listens on port 1
	cfg := &config.DBConfig{URL: "mongodb://127.0.0.1:1/dd_db?serverSelectionTimeoutMS=200", Source: config.SourceEnv}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, closeDb, err := NewMongoDatabase(ctx, slog.Default(), cfg)
	assert.Error(err)
	assert.Nil(db)
	assert.Nil(closeDb)
}

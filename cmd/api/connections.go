package main

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DioneMartin/REST-AWS/internal/infrastructure/config"
	mongostore "github.com/DioneMartin/REST-AWS/internal/infrastructure/db/mongo"
	redisstore "github.com/DioneMartin/REST-AWS/internal/infrastructure/db/redis"
)

// connections opens each shared client at most once, however many backends
// use it, and registers its readiness check and shutdown.
type connections struct {
	ctx context.Context
	cfg *config.Config
	b   *backends

	db  *mongo.Database
	rdb *goredis.Client
}

func newConnections(ctx context.Context, cfg *config.Config, b *backends) *connections {
	return &connections{ctx: ctx, cfg: cfg, b: b}
}

func (c *connections) mongo() (*mongo.Database, error) {
	if c.db != nil {
		return c.db, nil
	}
	client, db, err := mongostore.Connect(c.ctx, mongostore.Config{
		URI:      c.cfg.Mongo.URI,
		Database: c.cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}
	c.b.closers = append(c.b.closers, func() { _ = client.Disconnect(context.Background()) })
	c.b.checks["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
	c.db = db
	return db, nil
}

func (c *connections) redis() (*goredis.Client, error) {
	if c.rdb != nil {
		return c.rdb, nil
	}
	rdb, err := redisstore.Connect(c.ctx, redisstore.Config{
		Addr: c.cfg.Redis.Addr,
		DB:   c.cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	c.b.closers = append(c.b.closers, func() { _ = rdb.Close() })
	c.b.checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	c.rdb = rdb
	return rdb, nil
}

package client

import (
	"context"
	"time"

	"roomly/pkg/logger"
)

// Client bundles the backing-store connections the process may hold. Only
// the backend selected by configuration is ever dialed.
type Client struct {
	Mongo *MongoClient
	Redis *RedisClient
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) GracefulShutdown(log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if c.Mongo != nil {
		if err := c.Mongo.Client.Disconnect(ctx); err != nil {
			log.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Client.Close(); err != nil {
			log.Error("Failed to close Redis connection", "error", err)
		}
	}
}

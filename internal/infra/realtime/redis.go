package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bookslot/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// RedisBroadcaster publishes events to a Redis channel. Socket gateways
// subscribe to the channel and fan out to their connected clients, so this
// process never tracks connections itself.
type RedisBroadcaster struct {
	rdb     *redis.Client
	channel string
}

type envelope struct {
	Event   string    `json:"event"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

func NewRedisBroadcaster(cfg config.RedisConfig) (*RedisBroadcaster, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := rdb.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}

	return &RedisBroadcaster{rdb: rdb, channel: cfg.Channel}, cleanup, nil
}

// Broadcast never returns an error to the caller. A committed booking is
// booked whether or not the publish lands.
func (b *RedisBroadcaster) Broadcast(ctx context.Context, event string, payload any) {
	data, err := json.Marshal(envelope{Event: event, Payload: payload, At: time.Now()})
	if err != nil {
		slog.Warn("failed to marshal broadcast payload", "event", event, "error", err.Error())
		return
	}

	if err := b.rdb.Publish(ctx, b.channel, data).Err(); err != nil {
		slog.Warn("failed to publish event", "event", event, "error", err.Error())
	}
}

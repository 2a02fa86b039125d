package repository

import (
	"context"

	"cotizador_taller/internal/domain/catalog"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DefaultChangeFeedChannel = "catalog:changes"

// RedisChangeFeed broadcasts written catalog paths over Redis pub/sub so every
// API instance can refresh its subscribers.
type RedisChangeFeed struct {
	rdb     *redis.Client
	channel string
}

var _ changePublisher = (*RedisChangeFeed)(nil)

func NewRedisChangeFeed(rdb *redis.Client, channel string) *RedisChangeFeed {
	if channel == "" {
		channel = DefaultChangeFeedChannel
	}
	return &RedisChangeFeed{rdb: rdb, channel: channel}
}

func (f *RedisChangeFeed) Publish(ctx context.Context, path catalog.Path) error {
	return f.rdb.Publish(ctx, f.channel, path.String()).Err()
}

// Listen calls onChange for every valid path published on the channel until
// ctx is cancelled. It returns once the subscription is confirmed, running
// the receive loop in its own goroutine.
func (f *RedisChangeFeed) Listen(ctx context.Context, onChange func(catalog.Path)) error {
	ps := f.rdb.Subscribe(ctx, f.channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return err
	}

	go func() {
		defer ps.Close()
		ch := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				path := catalog.Path(msg.Payload)
				if !path.Valid() {
					log.Warn().Str("payload", msg.Payload).Msg("[catalog][feed] ignoring unknown path")
					continue
				}
				onChange(path)
			}
		}
	}()
	log.Info().Str("channel", f.channel).Msg("[catalog][feed] listening for catalog changes")
	return nil
}


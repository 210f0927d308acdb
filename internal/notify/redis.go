package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TsikyLalaina/miharina-hub-development/config"
	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisPublisher publishes match events to a Redis channel consumed by the
// platform's notification workers.
type RedisPublisher struct {
	log     *zap.SugaredLogger
	client  *redis.Client
	channel string
}

// NewRedisPublisher connects to Redis and verifies the connection.
func NewRedisPublisher(ctx context.Context, log *zap.SugaredLogger, cfg config.RedisConfig) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisPublisher{
		log:     log.Named("notify.redis"),
		client:  client,
		channel: cfg.Channel,
	}, nil
}

type matchCreatedEvent struct {
	MatchID       string  `json:"matchId"`
	RequesterID   string  `json:"requesterId"`
	TargetUserID  string  `json:"targetUserId"`
	OpportunityID *string `json:"opportunityId,omitempty"`
	MatchScore    int     `json:"matchScore"`
	Status        string  `json:"status"`
}

// MatchCreated publishes a match-created event.
func (r *RedisPublisher) MatchCreated(ctx context.Context, m entities.Match) error {
	payload, err := json.Marshal(matchCreatedEvent{
		MatchID:       m.ID,
		RequesterID:   m.RequesterID,
		TargetUserID:  m.TargetUserID,
		OpportunityID: m.OpportunityID,
		MatchScore:    m.Score,
		Status:        string(m.Status),
	})
	if err != nil {
		return fmt.Errorf("marshal match event: %w", err)
	}

	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish match event: %w", err)
	}

	r.log.Debugw("match event published", "match_id", m.ID, "channel", r.channel)
	return nil
}

// Close releases the Redis connection.
func (r *RedisPublisher) Close() error {
	return r.client.Close()
}

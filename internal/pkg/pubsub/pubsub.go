package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/qs3c/course_comment_server/internal/model/dto"
)

const (
	ChannelCommentEvents = "course_comment_events"
)

// EventMessage 评价事件消息
type EventMessage struct {
	Type  string            `json:"type"`
	Event *dto.CommentEvent `json:"event"`
}

// Publisher Redis 发布者
type Publisher struct {
	client *redis.Client
}

// NewPublisher 创建发布者
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish 发布评价事件
func (p *Publisher) Publish(ctx context.Context, msg *EventMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal event message: %w", err)
	}

	return p.client.Publish(ctx, ChannelCommentEvents, data).Err()
}

// Subscriber Redis 订阅者
type Subscriber struct {
	client *redis.Client
	logger *zap.Logger
}

// NewSubscriber 创建订阅者
func NewSubscriber(client *redis.Client, logger *zap.Logger) *Subscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Subscriber{client: client, logger: logger}
}

// Subscribe 订阅评价事件，阻塞直到 ctx 结束
func (s *Subscriber) Subscribe(ctx context.Context, handler func(*EventMessage)) error {
	pubsub := s.client.Subscribe(ctx, ChannelCommentEvents)
	defer pubsub.Close()

	// 等待订阅确认
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe %s: %w", ChannelCommentEvents, err)
	}

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			var eventMsg EventMessage
			if err := json.Unmarshal([]byte(msg.Payload), &eventMsg); err != nil {
				s.logger.Warn("Ignoring malformed event message", zap.Error(err))
				continue
			}

			handler(&eventMsg)
		}
	}
}

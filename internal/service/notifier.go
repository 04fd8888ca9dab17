package service

import (
	"context"

	"github.com/qs3c/course_comment_server/internal/model/dto"
	"github.com/qs3c/course_comment_server/internal/pkg/pubsub"
	"github.com/qs3c/course_comment_server/internal/pkg/ws"
)

// EventNotifier 新评价事件推送
type EventNotifier interface {
	NotifyCommentCreated(ctx context.Context, event *dto.CommentEvent) error
}

// HubNotifier 直接推送到本进程的 WebSocket 连接
type HubNotifier struct {
	hub *ws.Hub
}

func NewHubNotifier(hub *ws.Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyCommentCreated(_ context.Context, event *dto.CommentEvent) error {
	return n.hub.Broadcast(&ws.Message{
		Type: ws.TypeCommentCreated,
		Data: event,
	})
}

// RedisNotifier 通过 Redis 发布，由各实例的订阅者转发到本地连接
type RedisNotifier struct {
	publisher *pubsub.Publisher
}

func NewRedisNotifier(publisher *pubsub.Publisher) *RedisNotifier {
	return &RedisNotifier{publisher: publisher}
}

func (n *RedisNotifier) NotifyCommentCreated(ctx context.Context, event *dto.CommentEvent) error {
	return n.publisher.Publish(ctx, &pubsub.EventMessage{
		Type:  ws.TypeCommentCreated,
		Event: event,
	})
}

// ForwardToHub 返回把订阅到的事件转发到 hub 的处理函数
func ForwardToHub(hub *ws.Hub) func(*pubsub.EventMessage) {
	return func(msg *pubsub.EventMessage) {
		hub.Broadcast(&ws.Message{
			Type: msg.Type,
			Data: msg.Event,
		})
	}
}

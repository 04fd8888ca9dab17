package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/course_comment_server/internal/model/dto"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestEventMessage_JSON(t *testing.T) {
	msg := &EventMessage{
		Type: "comment_created",
		Event: &dto.CommentEvent{
			Comment:    &dto.CommentItem{ID: 1, CourseName: "CS101", Comment: "好", Score: 0.8},
			Statistics: &dto.Statistics{Total: 1, Positive: 1},
		},
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded EventMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "comment_created", decoded.Type)
	assert.Equal(t, "CS101", decoded.Event.Comment.CourseName)
	assert.Equal(t, int64(1), decoded.Event.Statistics.Positive)
}

func TestPublishSubscribe(t *testing.T) {
	client := setupRedis(t)
	publisher := NewPublisher(client)
	subscriber := NewSubscriber(client, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	received := make(chan *EventMessage, 1)
	done := make(chan error, 1)
	go func() {
		done <- subscriber.Subscribe(ctx, func(msg *EventMessage) {
			received <- msg
		})
	}()

	// 等待订阅生效
	require.Eventually(t, func() bool {
		n, err := client.PubSubNumSub(ctx, ChannelCommentEvents).Result()
		return err == nil && n[ChannelCommentEvents] > 0
	}, time.Second, 10*time.Millisecond)

	err := publisher.Publish(ctx, &EventMessage{
		Type:  "comment_created",
		Event: &dto.CommentEvent{Comment: &dto.CommentItem{ID: 42}},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "comment_created", msg.Type)
		assert.Equal(t, int64(42), msg.Event.Comment.ID)
	case <-ctx.Done():
		t.Fatal("Timeout waiting for message")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Subscriber did not stop")
	}
}

func TestSubscribe_IgnoresMalformed(t *testing.T) {
	client := setupRedis(t)
	subscriber := NewSubscriber(client, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	received := make(chan *EventMessage, 2)
	go subscriber.Subscribe(ctx, func(msg *EventMessage) {
		received <- msg
	})

	require.Eventually(t, func() bool {
		n, err := client.PubSubNumSub(ctx, ChannelCommentEvents).Result()
		return err == nil && n[ChannelCommentEvents] > 0
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, client.Publish(ctx, ChannelCommentEvents, "{broken").Err())
	require.NoError(t, NewPublisher(client).Publish(ctx, &EventMessage{Type: "comment_created"}))

	select {
	case msg := <-received:
		assert.Equal(t, "comment_created", msg.Type)
	case <-ctx.Done():
		t.Fatal("Timeout waiting for message")
	}
}

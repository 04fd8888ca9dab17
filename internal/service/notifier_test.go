package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/course_comment_server/internal/model/dto"
	"github.com/qs3c/course_comment_server/internal/pkg/pubsub"
	"github.com/qs3c/course_comment_server/internal/pkg/ws"
)

func testEvent() *dto.CommentEvent {
	return &dto.CommentEvent{
		Comment:    &dto.CommentItem{ID: 7, CourseName: "CS101", Comment: "good", Score: 0.8},
		Statistics: &dto.Statistics{Total: 1, Positive: 1},
	}
}

// connectHub 建立一个注册到 hub 的 WebSocket 连接
func connectHub(t *testing.T, hub *ws.Hub) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(&ws.Client{Conn: conn})
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return hub.ConnectionCount() == 1 }, time.Second, 10*time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) (string, *dto.CommentEvent) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type string           `json:"type"`
		Data dto.CommentEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg.Type, &msg.Data
}

func TestHubNotifier(t *testing.T) {
	hub := ws.NewHub(nil)
	conn := connectHub(t, hub)

	require.NoError(t, NewHubNotifier(hub).NotifyCommentCreated(context.Background(), testEvent()))

	typ, event := readEvent(t, conn)
	assert.Equal(t, ws.TypeCommentCreated, typ)
	assert.Equal(t, int64(7), event.Comment.ID)
	assert.Equal(t, int64(1), event.Statistics.Total)
}

func TestRedisNotifier_ForwardToHub(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	hub := ws.NewHub(nil)
	conn := connectHub(t, hub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subscriber := pubsub.NewSubscriber(client, nil)
	go subscriber.Subscribe(ctx, ForwardToHub(hub))

	require.Eventually(t, func() bool {
		n, err := client.PubSubNumSub(ctx, pubsub.ChannelCommentEvents).Result()
		return err == nil && n[pubsub.ChannelCommentEvents] == 1
	}, 2*time.Second, 10*time.Millisecond)

	notifier := NewRedisNotifier(pubsub.NewPublisher(client))
	require.NoError(t, notifier.NotifyCommentCreated(ctx, testEvent()))

	typ, event := readEvent(t, conn)
	assert.Equal(t, ws.TypeCommentCreated, typ)
	assert.Equal(t, "CS101", event.Comment.CourseName)
}

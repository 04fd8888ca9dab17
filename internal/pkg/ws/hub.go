package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// 消息类型
const (
	TypeCommentCreated = "comment_created"
)

// Hub 维护所有实时看板连接
type Hub struct {
	clients  map[*Client]struct{}
	mu       sync.RWMutex
	logger   *zap.Logger
	onChange func(total int)
}

type Client struct {
	Conn *websocket.Conn
	mu   sync.Mutex // 写锁，防止并发写入
}

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// OnChange 连接数变化回调（用于指标上报）
func (h *Hub) OnChange(fn func(total int)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = fn
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients[client] = struct{}{}
	total := len(h.clients)
	fn := h.onChange
	h.mu.Unlock()

	if fn != nil {
		fn(total)
	}
	h.logger.Debug("Live feed client connected", zap.Int("total", total))
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	total := len(h.clients)
	fn := h.onChange
	h.mu.Unlock()

	if client.Conn != nil {
		client.Conn.Close()
	}
	if fn != nil {
		fn(total)
	}
	h.logger.Debug("Live feed client disconnected", zap.Int("total", total))
}

// Broadcast 向所有连接发送消息，写失败的连接会被移除
func (h *Hub) Broadcast(msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	h.mu.RLock()
	// 复制一份引用，避免长时间持锁
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.write(data); err != nil {
			h.logger.Warn("Live feed write failed", zap.Error(err))
			h.Unregister(c)
		}
	}
	return nil
}

func (c *Client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, data)
}

// ConnectionCount 获取在线连接数
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll 关闭所有连接（停机时调用）
func (h *Hub) CloseAll() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*Client]struct{})
	fn := h.onChange
	h.mu.Unlock()

	for c := range clients {
		if c.Conn != nil {
			c.Conn.Close()
		}
	}
	if fn != nil {
		fn(0)
	}
}

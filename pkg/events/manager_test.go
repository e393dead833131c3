package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockReplayer implements Replayer for tests.
type mockReplayer struct {
	events [][]byte
}

func (m *mockReplayer) Replay(_ string, _ int64, limit int) [][]byte {
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit]
	}
	return m.events
}

func setupTestManager(t *testing.T, replayer Replayer) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(replayer, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func subscribeWS(t *testing.T, conn *websocket.Conn, channel string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, channel, msg["channel"])
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &mockReplayer{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeUnsubscribe(t *testing.T) {
	manager, server := setupTestManager(t, &mockReplayer{})
	conn := connectWS(t, server)

	readJSON(t, conn) // connection.established
	subscribeWS(t, conn, "task:test-123")

	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, manager.subscriberCount("task:test-123"))
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockReplayer{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	channel := "task:broadcast-test"
	subscribeWS(t, conn1, channel)
	subscribeWS(t, conn2, channel)

	payload, _ := json.Marshal(map[string]string{"type": "test", "data": "hello"})
	manager.Broadcast(channel, payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)

	assert.Equal(t, "test", msg1["type"])
	assert.Equal(t, "hello", msg1["data"])
	assert.Equal(t, "test", msg2["type"])
	assert.Equal(t, "hello", msg2["data"])
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t, &mockReplayer{})
	conn := connectWS(t, server)

	readJSON(t, conn) // connection.established

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pingMsg, _ := json.Marshal(ClientMessage{Action: "ping"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, pingMsg))

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	// A replayer with more events than the catchup limit triggers overflow.
	manyEvents := make([][]byte, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i], _ = json.Marshal(map[string]interface{}{"type": "task.output", "seq": i + 1})
	}

	_, server := setupTestManager(t, &mockReplayer{events: manyEvents})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	// Subscribe auto-catchup delivers the capped events then the overflow marker.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: "task:overflow-test"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	readJSON(t, conn) // subscription.confirmed

	var overflowReceived bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["has_more"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockReplayer{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := "task:concurrent-test"
	subscribeWS(t, conn, channel)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]interface{}{"type": "concurrent", "idx": idx})
			manager.Broadcast(channel, payload)
		}(i)
	}
	wg.Wait()

	// Read all 20 messages (order may vary due to concurrency)
	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_BroadcastToNonExistentChannel(t *testing.T) {
	manager, _ := setupTestManager(t, &mockReplayer{})

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast("nonexistent-channel", payload)
	})
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	// Client subscribed to one task should NOT receive another task's events.
	manager, server := setupTestManager(t, &mockReplayer{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	subscribeWS(t, conn1, "task:ch1")
	subscribeWS(t, conn2, "task:ch2")

	payload1, _ := json.Marshal(map[string]string{"type": "test", "target": "ch1"})
	manager.Broadcast("task:ch1", payload1)

	msg := readJSON(t, conn1)
	assert.Equal(t, "ch1", msg["target"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive ch1 broadcast")
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t, &mockReplayer{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := "task:unsub-test"
	subscribeWS(t, conn, channel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	unsubMsg, _ := json.Marshal(ClientMessage{Action: "unsubscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, unsubMsg))

	// Poll until the unsubscribe propagates.
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "should-not-receive"})
	manager.Broadcast(channel, payload)

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t, &mockReplayer{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, action := range []string{"subscribe", "unsubscribe", "catchup"} {
		lastSeq := int64(0)
		msgBytes, _ := json.Marshal(ClientMessage{Action: action, Channel: "", LastSeq: &lastSeq})
		require.NoError(t, conn.Write(ctx, websocket.MessageText, msgBytes))
		msg := readJSON(t, conn)
		assert.Equal(t, "error", msg["type"])
		assert.Contains(t, msg["message"], "channel is required")
	}

	// Connection remains usable after validation errors.
	pingMsg, _ := json.Marshal(ClientMessage{Action: "ping"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, pingMsg))
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t, &mockReplayer{})

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: "task:cleanup-test"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, 0, manager.subscriberCount("task:cleanup-test"))

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast("task:cleanup-test", payload)
	})
}

func TestHubToWebSocketDelivery(t *testing.T) {
	// End to end inside the process: hub publish reaches a subscribed
	// WebSocket client with the seq injected, and a late subscriber replays
	// the retained tail in order.
	hub := NewHub(DefaultRingSize)
	manager, server := setupTestManager(t, hub)
	hub.SetBroadcaster(manager)

	channel := TaskChannel("task-e2e")

	_, err := hub.Publish(channel, map[string]any{"type": "task.output", "chunk": "first"})
	require.NoError(t, err)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established
	subscribeWS(t, conn, channel)

	// Auto-catchup replays the pre-subscription event.
	msg := readJSON(t, conn)
	assert.Equal(t, "first", msg["chunk"])
	assert.Equal(t, float64(1), msg["seq"])

	// Live events follow.
	_, err = hub.Publish(channel, map[string]any{"type": "task.output", "chunk": "second"})
	require.NoError(t, err)

	msg = readJSON(t, conn)
	assert.Equal(t, "second", msg["chunk"])
	assert.Equal(t, float64(2), msg["seq"])
}

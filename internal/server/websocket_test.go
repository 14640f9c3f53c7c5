package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestNewHub(t *testing.T) {
	hub := NewHub()
	if hub == nil {
		t.Fatal("NewHub returned nil")
	}
	if hub.clients == nil {
		t.Error("Hub clients map is nil")
	}
	if hub.broadcast == nil {
		t.Error("Hub broadcast channel is nil")
	}
	if hub.register == nil {
		t.Error("Hub register channel is nil")
	}
	if hub.unregister == nil {
		t.Error("Hub unregister channel is nil")
	}
}

func TestHubRunAndBroadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("Failed to upgrade: %v", err)
			return
		}

		client := &Client{
			hub:  hub,
			conn: conn,
			send: make(chan []byte, 256),
		}

		hub.register <- client
		go client.writePump()
		go client.readPump()
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	// Wait for client to register
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.ClientCount() == 0 {
		t.Fatal("client never registered")
	}

	hub.Broadcast(ProgressMessage{
		Type:      "progress",
		Operation: "expand",
		Stage:     "enumerate",
		Progress:  50,
		Message:   "15551 of 31102 points",
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read message: %v", err)
	}

	var received ProgressMessage
	if err := json.Unmarshal(data, &received); err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}

	if received.Type != "progress" {
		t.Errorf("expected type progress, got %s", received.Type)
	}
	if received.Operation != "expand" {
		t.Errorf("expected operation expand, got %s", received.Operation)
	}
	if received.Stage != "enumerate" {
		t.Errorf("expected stage enumerate, got %s", received.Stage)
	}
	if received.Progress != 50 {
		t.Errorf("expected progress 50, got %d", received.Progress)
	}
	if received.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestHubClientCount(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.register <- client

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("expected 1 client, got %d", got)
	}

	hub.unregister <- client
	deadline = time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestWebSocketEndpoint(t *testing.T) {
	server := httptest.NewServer(setupRoutes())
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for GlobalHub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if GlobalHub.ClientCount() == 0 {
		t.Fatal("client never registered with global hub")
	}

	BroadcastComplete("expand", "expanded Ps.119 into 176 points",
		map[string]interface{}{"total": 176})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read message: %v", err)
	}

	var received ProgressMessage
	if err := json.Unmarshal(data, &received); err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}

	if received.Type != "complete" {
		t.Errorf("expected type complete, got %s", received.Type)
	}
	if received.Progress != 100 {
		t.Errorf("expected progress 100, got %d", received.Progress)
	}
	if received.Data["total"] != float64(176) {
		t.Errorf("expected total 176, got %v", received.Data["total"])
	}
}

func TestBroadcastHelpersNilHub(t *testing.T) {
	saved := GlobalHub
	GlobalHub = nil
	defer func() { GlobalHub = saved }()

	// Must not panic without a hub.
	BroadcastProgress("expand", "enumerate", "working", 10)
	BroadcastComplete("expand", "done", nil)
	BroadcastError("expand", "failed")
}

package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskboard-backend/internal/client"
	"taskboard-backend/internal/events"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenerFeedsEventsIntoReconciler(t *testing.T) {
	env := events.NewUpdated(events.UpdatedPayload{})
	data, err := env.Encode()
	require.NoError(t, err)

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
		// Keep the connection open until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	fetch := &fixedFetch{}
	r := client.NewReconciler(uuid.New(), fetch.fn)
	r.SetView(client.ViewKey{Date: testDay})
	require.NoError(t, r.Refresh(context.Background()))
	require.False(t, r.Dirty())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	listener := client.NewListener(url, r)
	go listener.Run(ctx)

	// The batch event must land and invalidate the view
	deadline := time.Now().Add(2 * time.Second)
	for !r.Dirty() {
		if time.Now().After(deadline) {
			t.Fatal("listener never delivered the event")
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, r.Dirty())
}

package events_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskboard-backend/internal/events"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestClient connects a websocket client registered to the given team
func dialTestClient(t *testing.T, hub *events.Hub, teamID uuid.UUID) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		client := hub.NewClient(conn, uuid.New(), teamID)
		hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForConnections(t *testing.T, hub *events.Hub, teamID uuid.UUID, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnectionCount(teamID) != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d connections, have %d", want, hub.ConnectionCount(teamID))
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func readEnvelope(t *testing.T, conn *websocket.Conn) events.Envelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	env, err := events.Decode(data)
	require.NoError(t, err)
	return env
}

func TestPublishReachesTeamSubscribers(t *testing.T) {
	hub := events.NewHub()
	go hub.Run()

	teamID := uuid.New()
	first := dialTestClient(t, hub, teamID)
	second := dialTestClient(t, hub, teamID)
	waitForConnections(t, hub, teamID, 2)

	taskID := uuid.New()
	hub.Publish(teamID, events.NewUpdated(events.UpdatedPayload{TaskID: taskID, IsCompleted: true}))

	for _, conn := range []*websocket.Conn{first, second} {
		env := readEnvelope(t, conn)
		assert.Equal(t, events.TypeTaskUpdated, env.Type)
		require.NotNil(t, env.Updated)
		assert.Equal(t, taskID, env.Updated.TaskID)
	}
}

func TestPublishStaysWithinTeam(t *testing.T) {
	hub := events.NewHub()
	go hub.Run()

	teamA := uuid.New()
	teamB := uuid.New()
	connA := dialTestClient(t, hub, teamA)
	connB := dialTestClient(t, hub, teamB)
	waitForConnections(t, hub, teamA, 1)
	waitForConnections(t, hub, teamB, 1)

	hub.Publish(teamA, events.NewAssigned(events.AssignedPayload{TaskID: uuid.New()}))

	env := readEnvelope(t, connA)
	assert.Equal(t, events.TypeTaskAssigned, env.Type)

	// The other team's client sees nothing
	connB.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err := connB.ReadMessage()
	assert.Error(t, err)
}

func TestPublishToEmptyTeamIsSafe(t *testing.T) {
	hub := events.NewHub()
	go hub.Run()
	hub.Publish(uuid.New(), events.NewUpdated(events.UpdatedPayload{}))
	assert.Equal(t, 0, hub.ConnectionCount(uuid.New()))
}

func TestDisconnectDropsSubscription(t *testing.T) {
	hub := events.NewHub()
	go hub.Run()

	teamID := uuid.New()
	conn := dialTestClient(t, hub, teamID)
	waitForConnections(t, hub, teamID, 1)

	conn.Close()
	waitForConnections(t, hub, teamID, 0)
}

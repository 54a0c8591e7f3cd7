package ws

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not reached in time")
}

func TestHubSendReachesEveryUserConnection(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	userID := uuid.New()
	a := &Client{hub: hub, userID: userID, send: make(chan []byte, 4)}
	b := &Client{hub: hub, userID: userID, send: make(chan []byte, 4)}
	other := &Client{hub: hub, userID: uuid.New(), send: make(chan []byte, 4)}

	hub.Register(a)
	hub.Register(b)
	hub.Register(other)
	waitFor(t, func() bool { return hub.ConnectionCount(userID) == 2 })

	hub.Send(userID, []byte("score"))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			if string(msg) != "score" {
				t.Fatalf("payload %q", msg)
			}
		case <-time.After(time.Second):
			t.Fatalf("connection did not receive the push")
		}
	}

	select {
	case msg := <-other.send:
		t.Fatalf("other user received %q", msg)
	default:
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	userID := uuid.New()
	c := &Client{hub: hub, userID: userID, send: make(chan []byte, 1)}

	hub.Register(c)
	waitFor(t, func() bool { return hub.ConnectionCount(userID) == 1 })

	hub.Unregister(c)
	waitFor(t, func() bool { return hub.ConnectionCount(userID) == 0 })

	select {
	case _, ok := <-c.send:
		if ok {
			t.Fatalf("expected closed channel, got a message")
		}
	case <-time.After(time.Second):
		t.Fatalf("send channel not closed on unregister")
	}
}

func TestHubSendToUnknownUserIsNoop(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	// Must not panic or block.
	hub.Send(uuid.New(), []byte("nobody home"))
}

package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnectionManager_Broadcast(t *testing.T) {
	cm := NewConnectionManager()

	a := cm.AddClient("client-a", nil)
	b := cm.AddClient("client-b", nil)
	require.Equal(t, 2, cm.SubscriberCount())

	cm.Broadcast("token_minted", map[string]any{"token_id": 1})

	for _, client := range []*Client{a, b} {
		select {
		case event := <-client.Send:
			require.Equal(t, "token_minted", event.Type)
			require.WithinDuration(t, time.Now().UTC(), event.Timestamp, time.Minute)
		default:
			t.Fatalf("client %s did not receive the event", client.ClientID)
		}
	}
}

func TestConnectionManager_RemoveClient(t *testing.T) {
	cm := NewConnectionManager()

	client := cm.AddClient("client-a", nil)
	cm.RemoveClient(client)
	require.Equal(t, 0, cm.SubscriberCount())

	select {
	case <-client.Done:
	default:
		t.Fatal("Done channel should be closed after removal")
	}

	// Removing an already removed client is a no-op
	cm.RemoveClient(client)

	cm.Broadcast("token_listed", nil)
	select {
	case <-client.Send:
		t.Fatal("removed client should not receive events")
	default:
	}
}

func TestConnectionManager_ReconnectSurvivesStaleCleanup(t *testing.T) {
	cm := NewConnectionManager()

	stale := cm.AddClient("client-a", nil)
	fresh := cm.AddClient("client-a", nil)
	require.Equal(t, 1, cm.SubscriberCount())

	// Replacement signals the old connection to stop
	select {
	case <-stale.Done:
	default:
		t.Fatal("replaced connection should be signalled to stop")
	}

	// The stale connection's cleanup must not remove the fresh subscription
	cm.RemoveClient(stale)
	require.Equal(t, 1, cm.SubscriberCount())

	cm.Broadcast("token_sold", nil)
	select {
	case event := <-fresh.Send:
		require.Equal(t, "token_sold", event.Type)
	default:
		t.Fatal("reconnected subscriber should keep receiving events")
	}

	cm.RemoveClient(fresh)
	require.Equal(t, 0, cm.SubscriberCount())
}

func TestConnectionManager_SlowSubscriberDoesNotBlock(t *testing.T) {
	cm := NewConnectionManager()

	client := cm.AddClient("client-a", nil)

	// Fill the buffer past capacity; Broadcast must never block
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < cap(client.Send)+10; i++ {
			cm.Broadcast("token_sold", i)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Broadcast blocked on a slow subscriber")
	}
	require.Equal(t, cap(client.Send), len(client.Send))
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeAndFanOut(t *testing.T) {
	InitStore("wonderland")

	ch, cancel := SubscribeStoreChanges("user-a", ResourceMoods)
	defer cancel()

	event := StoreEvent{
		Path:      ResourcePath("user-a", ResourceMoods),
		Resource:  ResourceMoods,
		Action:    "create",
		Timestamp: time.Now().UTC(),
	}
	fanOutStoreEvent(event)

	select {
	case got := <-ch:
		assert.Equal(t, event.Path, got.Path)
		assert.Equal(t, "create", got.Action)
	case <-time.After(time.Second):
		t.Fatal("expected a store event")
	}
}

func TestFanOutIsScopedToPath(t *testing.T) {
	InitStore("wonderland")

	chA, cancelA := SubscribeStoreChanges("user-a", ResourceLetters)
	defer cancelA()
	chB, cancelB := SubscribeStoreChanges("user-b", ResourceLetters)
	defer cancelB()

	fanOutStoreEvent(StoreEvent{
		Path:     ResourcePath("user-a", ResourceLetters),
		Resource: ResourceLetters,
		Action:   "create",
	})

	select {
	case <-chA:
	case <-time.After(time.Second):
		t.Fatal("user-a should receive its own event")
	}

	select {
	case <-chB:
		t.Fatal("user-b must not receive user-a's event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCancelRemovesSubscription(t *testing.T) {
	InitStore("wonderland")

	path := ResourcePath("user-c", ResourceCards)
	ch, cancel := SubscribeStoreChanges("user-c", ResourceCards)
	require.Equal(t, 1, localSubscriberCount(path))

	cancel()
	assert.Equal(t, 0, localSubscriberCount(path))

	// The channel is closed so readers unblock.
	_, open := <-ch
	assert.False(t, open)

	// Double cancel is harmless.
	cancel()
}

func TestFanOutDoesNotBlockOnSlowListener(t *testing.T) {
	InitStore("wonderland")

	_, cancel := SubscribeStoreChanges("user-d", ResourcePhotos)
	defer cancel()

	event := StoreEvent{Path: ResourcePath("user-d", ResourcePhotos), Resource: ResourcePhotos}

	done := make(chan struct{})
	go func() {
		// More events than the buffer holds; extra ones are dropped.
		for i := 0; i < 100; i++ {
			fanOutStoreEvent(event)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("fan-out blocked on a slow listener")
	}
}

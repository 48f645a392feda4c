package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/database"
)

// StoreEvent is broadcast over Redis and pushed to store subscribers whenever
// one user's resource changes.
type StoreEvent struct {
	Path      string    `json:"path"`
	Resource  string    `json:"resource"`
	Action    string    `json:"action"` // "create" or "overwrite"
	Timestamp time.Time `json:"timestamp"`
}

// storeHub tracks local subscriptions keyed by resource path. Every
// subscription established when a socket connects must be torn down on
// disconnect so listeners never leak across identity changes.
type storeHub struct {
	mu     sync.RWMutex
	subs   map[string]map[int]chan StoreEvent
	nextID int
}

var (
	defaultStoreHub   = &storeHub{subs: make(map[string]map[int]chan StoreEvent)}
	storeSubOnce      sync.Once
	storeChannelScope = "store:"
)

// SubscribeStoreChanges registers a listener for one user's resource.
// The returned cancel func must be called on teardown.
func SubscribeStoreChanges(identityID, resource string) (<-chan StoreEvent, func()) {
	path := ResourcePath(identityID, resource)
	ch := make(chan StoreEvent, 8)

	defaultStoreHub.mu.Lock()
	id := defaultStoreHub.nextID
	defaultStoreHub.nextID++
	if defaultStoreHub.subs[path] == nil {
		defaultStoreHub.subs[path] = make(map[int]chan StoreEvent)
	}
	defaultStoreHub.subs[path][id] = ch
	defaultStoreHub.mu.Unlock()

	cancel := func() {
		defaultStoreHub.mu.Lock()
		if listeners, ok := defaultStoreHub.subs[path]; ok {
			if _, ok := listeners[id]; ok {
				delete(listeners, id)
				close(ch)
			}
			if len(listeners) == 0 {
				delete(defaultStoreHub.subs, path)
			}
		}
		defaultStoreHub.mu.Unlock()
	}

	return ch, cancel
}

// fanOutStoreEvent delivers an event to all local listeners on its path.
// Sends are best-effort: a slow listener drops the event rather than
// blocking the fan-out, which is fine because subscribers re-query the
// collection on every wake-up anyway.
func fanOutStoreEvent(event StoreEvent) {
	defaultStoreHub.mu.RLock()
	defer defaultStoreHub.mu.RUnlock()

	for _, ch := range defaultStoreHub.subs[event.Path] {
		select {
		case ch <- event:
		default:
		}
	}
}

// localSubscriberCount is used by tests.
func localSubscriberCount(path string) int {
	defaultStoreHub.mu.RLock()
	defer defaultStoreHub.mu.RUnlock()
	return len(defaultStoreHub.subs[path])
}

// StartStoreSubscriber ensures a single shared Redis listener per instance.
func StartStoreSubscriber(ctx context.Context) {
	storeSubOnce.Do(func() {
		go runStoreSubscriber(ctx)
	})
}

func runStoreSubscriber(ctx context.Context) {
	client := database.RedisClient
	if client == nil {
		log.Println("Redis client not initialized; store subscriber not started")
		return
	}

	backoff := time.Second

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		func() {
			pubsub := client.PSubscribe(ctx, storeChannelScope+"*")
			defer pubsub.Close()

			log.Println("✅ Store change subscriber started (pattern: store:*)")

			for {
				msg, err := pubsub.ReceiveMessage(ctx)
				if err != nil {
					log.Printf("store subscriber error: %v", err)
					time.Sleep(backoff)
					backoff *= 2
					if backoff > 30*time.Second {
						backoff = 30 * time.Second
					}
					return
				}

				backoff = time.Second

				var event StoreEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("failed to unmarshal store event: %v", err)
					continue
				}

				fanOutStoreEvent(event)
			}
		}()
	}
}

// publishStoreChange announces a committed write. With Redis available the
// event goes through pub/sub so every instance fans out; without it the
// event is delivered to local listeners only.
func publishStoreChange(ctx context.Context, identityID, resource, action string) {
	event := StoreEvent{
		Path:      ResourcePath(identityID, resource),
		Resource:  resource,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}

	if database.RedisClient == nil {
		fanOutStoreEvent(event)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal store event: %v", err)
		return
	}

	if err := database.RedisClient.Publish(ctx, storeChannelScope+event.Path, data).Err(); err != nil {
		log.Printf("failed to publish store event: %v", err)
		// Local listeners still deserve the wake-up.
		fanOutStoreEvent(event)
	}
}

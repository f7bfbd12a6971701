package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionChange describes a session lifecycle transition delivered to
// subscribers.
type SessionChange struct {
	SessionID string
	UserID    string
	Started   bool
}

// SessionListener receives session changes.
type SessionListener func(SessionChange)

// SessionRegistry owns server-side session state. It is constructed once in
// main and injected; nothing here is package-level. Session records live in
// Redis so sign-out revokes tokens before their JWT expiry, and in-process
// observers can subscribe to start/end transitions.
type SessionRegistry struct {
	client *redis.Client
	ttl    time.Duration

	mu        sync.Mutex
	nextID    int
	listeners map[int]SessionListener
}

// NewSessionRegistry builds the registry.
func NewSessionRegistry(client *redis.Client, ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		client:    client,
		ttl:       ttl,
		listeners: make(map[int]SessionListener),
	}
}

// Subscribe registers a listener and returns its unsubscribe function.
func (r *SessionRegistry) Subscribe(listener SessionListener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = listener
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

// Start records a new session for the user and returns its id.
func (r *SessionRegistry) Start(ctx context.Context, userID string) (string, error) {
	sessionID := uuid.NewString()
	if r.client != nil {
		if err := r.client.Set(ctx, sessionKey(sessionID), userID, r.ttl).Err(); err != nil {
			return "", err
		}
	}
	r.notify(SessionChange{SessionID: sessionID, UserID: userID, Started: true})
	return sessionID, nil
}

// End removes the session record.
func (r *SessionRegistry) End(ctx context.Context, sessionID, userID string) error {
	if r.client != nil {
		if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
			return err
		}
	}
	r.notify(SessionChange{SessionID: sessionID, UserID: userID, Started: false})
	return nil
}

// Active reports whether the session record still exists. Without a Redis
// client every unexpired token is accepted as active.
func (r *SessionRegistry) Active(ctx context.Context, sessionID string) (bool, error) {
	if r.client == nil {
		return true, nil
	}
	count, err := r.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SessionRegistry) notify(change SessionChange) {
	r.mu.Lock()
	listeners := make([]SessionListener, 0, len(r.listeners))
	for _, l := range r.listeners {
		listeners = append(listeners, l)
	}
	r.mu.Unlock()

	for _, listener := range listeners {
		listener(change)
	}
}

func sessionKey(sessionID string) string {
	return "sessions/" + sessionID
}

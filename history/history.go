package history

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message is one transcript entry.
type Message struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the interface for transcript persistence.
type Store interface {
	// Append adds messages to the end of a thread's transcript.
	Append(ctx context.Context, threadID string, msgs ...Message) error

	// List returns a thread's transcript in insertion order.
	List(ctx context.Context, threadID string) ([]Message, error)

	// Threads returns the IDs of all stored threads.
	Threads(ctx context.Context) ([]string, error)

	// Clear removes a thread's transcript.
	Clear(ctx context.Context, threadID string) error

	// Close releases any resources held by the store.
	Close() error
}

// NewThreadID returns a fresh thread identifier.
func NewThreadID() string {
	return uuid.NewString()
}

// fill stamps IDs and timestamps onto messages that lack them.
func fill(threadID string, msgs []Message) []Message {
	now := time.Now().UTC()
	for i := range msgs {
		msgs[i].ThreadID = threadID
		if msgs[i].ID == "" {
			msgs[i].ID = uuid.NewString()
		}
		if msgs[i].CreatedAt.IsZero() {
			msgs[i].CreatedAt = now
		}
	}
	return msgs
}

// MemoryStore keeps transcripts in process memory. It is the default for
// demos run without a database configured.
type MemoryStore struct {
	mu      sync.RWMutex
	threads map[string][]Message
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{threads: make(map[string][]Message)}
}

// Append adds messages to a thread.
func (s *MemoryStore) Append(ctx context.Context, threadID string, msgs ...Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[threadID] = append(s.threads[threadID], fill(threadID, msgs)...)
	return nil
}

// List returns a copy of a thread's transcript.
func (s *MemoryStore) List(ctx context.Context, threadID string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.threads[threadID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// Threads returns all thread IDs, sorted.
func (s *MemoryStore) Threads(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.threads))
	for id := range s.threads {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Clear removes a thread.
func (s *MemoryStore) Clear(ctx context.Context, threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.threads, threadID)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

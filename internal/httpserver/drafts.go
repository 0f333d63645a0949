package httpserver

import (
	"sync"
	"time"

	"storefront-api/internal/service/checkout"
)

// draftTTL bounds how long an abandoned checkout stays resident.
const draftTTL = 30 * time.Minute

type draftEntry struct {
	userID    string
	draft     *checkout.Draft
	createdAt time.Time
}

// draftStore holds in-flight checkout drafts between the create and
// capture requests, keyed by provider payment id. Drafts are in-memory
// on purpose: nothing is durable until capture persists the order.
type draftStore struct {
	mu      sync.Mutex
	entries map[string]draftEntry
}

func newDraftStore() *draftStore {
	return &draftStore{entries: make(map[string]draftEntry)}
}

func (s *draftStore) Put(paymentID, userID string, draft *checkout.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpiredLocked()
	s.entries[paymentID] = draftEntry{userID: userID, draft: draft, createdAt: time.Now()}
}

// Get returns the draft for paymentID when owned by userID.
func (s *draftStore) Get(paymentID, userID string) (*checkout.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[paymentID]
	if !ok || e.userID != userID {
		return nil, false
	}
	if time.Since(e.createdAt) > draftTTL {
		delete(s.entries, paymentID)
		return nil, false
	}
	return e.draft, true
}

func (s *draftStore) Remove(paymentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, paymentID)
}

func (s *draftStore) evictExpiredLocked() {
	now := time.Now()
	for id, e := range s.entries {
		if now.Sub(e.createdAt) > draftTTL {
			delete(s.entries, id)
		}
	}
}

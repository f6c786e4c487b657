package dialog

import (
	"sync"

	"github.com/google/uuid"
)

// Store owns all conversation state, keyed by Telegram user ID. Handlers
// never touch the map directly; they go through Start, Get, the advance
// methods and Clear. Conversations for different users are independent.
type Store struct {
	mu            sync.RWMutex
	conversations map[int64]*Conversation
}

// NewStore creates an empty conversation store
func NewStore() *Store {
	return &Store{
		conversations: make(map[int64]*Conversation),
	}
}

// Start begins a new conversation for the user. Any in-progress
// conversation for the same user is discarded without warning; that
// matches the documented flow-restart behavior.
func (s *Store) Start(userID int64, productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[userID] = &Conversation{
		ProductID: productID,
		Step:      StepAwaitingDate,
	}
}

// Get returns a copy of the user's conversation, if one exists. A copy is
// returned so callers cannot mutate flow state from outside the store.
func (s *Store) Get(userID int64) (Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[userID]
	if !ok {
		return Conversation{}, false
	}
	return *conv, true
}

// AdvanceDate records the validated date and moves the conversation to the
// awaiting-time step. Returns false if the user has no conversation in the
// awaiting-date step.
func (s *Store) AdvanceDate(userID int64, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[userID]
	if !ok || conv.Step != StepAwaitingDate {
		return false
	}

	conv.Date = date
	conv.Step = StepAwaitingTime
	return true
}

// AdvanceTime records the validated time and moves the conversation to the
// awaiting-payment step.
func (s *Store) AdvanceTime(userID int64, t string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[userID]
	if !ok || conv.Step != StepAwaitingTime {
		return false
	}

	conv.Time = t
	conv.Step = StepAwaitingPayment
	return true
}

// Clear destroys the user's conversation. Called on flow completion; a
// conversation that is never completed simply stays resident until the
// next Start for the same user.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, userID)
}

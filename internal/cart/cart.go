// Package cart holds the session-scoped shopping carts. Each session owns
// its own line list; mutations go through the store and are pushed
// synchronously to every subscriber of that session.
package cart

import (
	"errors"
	"sync"

	"github.com/Muashef/audiophile-ecommerce/internal/models"
)

var ErrItemNotFound = errors.New("item not found in cart")

const (
	msgItemAdded  = "Item added to cart!"
	msgItemExists = "Item exists in cart already!"
)

// Subscriber receives the full cart snapshot after every mutation.
type Subscriber func(lines []models.CartLine)

type session struct {
	lines   []models.CartLine
	subs    map[int]Subscriber
	nextSub int
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*session)}
}

func (s *Store) session(id string) *session {

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{subs: make(map[int]Subscriber)}
		s.sessions[id] = sess
	}

	return sess
}

// AddItem appends the line unless a line with the same id already exists.
// Duplicates leave the cart untouched; the outcome is reported through the
// returned notice, never as an HTTP-level failure.
func (s *Store) AddItem(sessionID string, line models.CartLine) ([]models.CartLine, models.Notice) {

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)

	for _, existing := range sess.lines {
		if existing.ID == line.ID {
			return snapshot(sess.lines), models.Notice{
				Level:   models.NoticeLevelError,
				Message: msgItemExists,
			}
		}
	}

	if line.Quantity < 1 {
		line.Quantity = 1
	}

	sess.lines = append(sess.lines, line)
	sess.notify()

	return snapshot(sess.lines), models.Notice{
		Level:   models.NoticeLevelSuccess,
		Message: msgItemAdded,
	}
}

// SetQuantity updates the quantity of a line. Quantities below one are
// ignored: decrementing past one is a no-op, not a removal.
func (s *Store) SetQuantity(sessionID, id string, quantity int) ([]models.CartLine, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)

	for i := range sess.lines {
		if sess.lines[i].ID != id {
			continue
		}

		if quantity >= 1 && quantity != sess.lines[i].Quantity {
			sess.lines[i].Quantity = quantity
			sess.notify()
		}

		return snapshot(sess.lines), nil
	}

	return snapshot(sess.lines), ErrItemNotFound
}

func (s *Store) RemoveItem(sessionID, id string) []models.CartLine {

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)

	for i := range sess.lines {
		if sess.lines[i].ID == id {
			sess.lines = append(sess.lines[:i], sess.lines[i+1:]...)
			sess.notify()

			break
		}
	}

	return snapshot(sess.lines)
}

// Clear empties the session cart. Clearing an empty or unknown session is
// a no-op, so the confirmation flow may call it unconditionally.
func (s *Store) Clear(sessionID string) {

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || len(sess.lines) == 0 {
		return
	}

	sess.lines = nil
	sess.notify()
}

// Lines returns a copy of the current cart contents.
func (s *Store) Lines(sessionID string) []models.CartLine {

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}

	return snapshot(sess.lines)
}

// Subscribe registers fn for the session and returns an unsubscribe func.
// Notifications run synchronously inside the mutating call.
func (s *Store) Subscribe(sessionID string, fn Subscriber) func() {

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	id := sess.nextSub
	sess.nextSub++
	sess.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(sess.subs, id)
	}
}

func (sess *session) notify() {
	for _, fn := range sess.subs {
		fn(snapshot(sess.lines))
	}
}

func snapshot(lines []models.CartLine) []models.CartLine {

	out := make([]models.CartLine, len(lines))
	copy(out, lines)

	return out
}

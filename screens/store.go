package screens

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/km-arc/expense-share/framework/logging"
)

// Store keeps mounted screens addressable by id, for callers that drive a
// screen across several requests. Each screen reports to its own Recorder,
// and is used by one caller at a time through With.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]*entry
	capacity int
	logger   *log.Logger
}

type entry struct {
	mu       sync.Mutex
	screen   Screen
	recorder *Recorder
}

// NewStore creates a store holding at most capacity screens. A capacity of
// zero or less means no limit.
func NewStore(capacity int, logger *log.Logger) *Store {
	return &Store{
		entries:  make(map[string]*entry),
		capacity: capacity,
		logger:   logging.OrDiscard(logger),
	}
}

// New builds an unmounted screen of the given kind.
func New(kind Kind, nav Navigator, notify Notifier, logger *log.Logger) (Screen, error) {
	switch kind {
	case KindLogin:
		return NewLogin(nav, notify, logger), nil
	case KindSignUp:
		return NewSignUp(nav, notify, logger), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, kind)
}

// Mount creates a screen of the given kind and returns its id.
func (s *Store) Mount(kind Kind) (string, error) {
	rec := &Recorder{}
	screen, err := New(kind, rec, rec, s.logger)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capacity > 0 && len(s.entries) >= s.capacity {
		return "", ErrStoreFull
	}
	id := uuid.NewString()
	s.entries[id] = &entry{screen: screen, recorder: rec}
	s.logger.Debug("screen mounted", "id", id, "kind", kind)
	return id, nil
}

// With runs fn with exclusive access to the screen mounted under id and the
// recorder its side effects go to.
func (s *Store) With(id string, fn func(Screen, *Recorder) error) error {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScreen, id)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.screen, e.recorder)
}

// Unmount discards the screen and its form state.
func (s *Store) Unmount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScreen, id)
	}
	delete(s.entries, id)
	s.logger.Debug("screen unmounted", "id", id)
	return nil
}

// Len returns the number of mounted screens.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userdash/internal/logging"
)

// Listener is called after every state change, once the change is durable.
type Listener func(ctx context.Context, st State)

// Auth is what the rest of the client sees of the session: the current
// state, the setters, and change notifications.
type Auth interface {
	State() State
	SetToken(ctx context.Context, tok Token) error
	SignIn(ctx context.Context, tok Token, identity string) error
	Clear(ctx context.Context) error
	Subscribe(l Listener) (unsubscribe func())
}

// Store owns the token. Writes go to the Persister first; memory is only
// updated once the write succeeded, so State never runs ahead of storage.
type Store struct {
	mu        sync.Mutex
	state     State
	persister Persister
	logger    logging.Logger

	nextID    int
	listeners map[int]Listener
	order     []int
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open rehydrates a Store from p.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister: p,
		logger:    logging.Discard(),
		listeners: make(map[int]Listener),
	}
	for _, o := range opts {
		o(s)
	}

	st, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("rehydrate session: %w", err)
	}
	s.state = st
	s.logger.Debug(ctx, "session rehydrated", "status", st.Status().String())
	return s, nil
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the current token and whether one is present.
func (s *Store) Token() (Token, bool) {
	st := s.State()
	return st.Token(), st.Authorized()
}

// SetToken replaces the token, keeping the stored identity. A blank token
// is the same as Clear.
func (s *Store) SetToken(ctx context.Context, tok Token) error {
	s.mu.Lock()
	identity := s.state.identity
	s.mu.Unlock()
	return s.set(ctx, SignedIn(tok, identity))
}

// SignIn stores tok together with the identity the user signed in with.
func (s *Store) SignIn(ctx context.Context, tok Token, identity string) error {
	return s.set(ctx, SignedIn(tok, identity))
}

// Clear drops the token and the identity.
func (s *Store) Clear(ctx context.Context) error {
	return s.set(ctx, Anonymous())
}

func (s *Store) set(ctx context.Context, next State) error {
	s.mu.Lock()
	if err := s.persister.Save(ctx, next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist session: %w", err)
	}
	prev := s.state
	s.state = next
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	if prev == next {
		return nil
	}

	s.logger.Debug(ctx, "session changed", "status", next.Status().String())
	for _, l := range listeners {
		l(ctx, next)
	}
	return nil
}

// Subscribe registers l. Listeners run synchronously, in subscription
// order, on the goroutine that changed the state.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.listeners[id])
	}
	return out
}

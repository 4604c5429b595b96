package domain

import (
	"fmt"
	"log/slog"
	"sync"
)

// StoreSession holds the current store of a process, if any, and serializes
// every access to it.
type StoreSession struct {
	mu            sync.Mutex
	store         *Store
	newRepository ObjectRepositoryFactory
	codec         Codec
	logger        *slog.Logger
}

func NewStoreSession(newRepository ObjectRepositoryFactory, codec Codec, logger *slog.Logger) *StoreSession {
	return &StoreSession{
		newRepository: newRepository,
		codec:         codec,
		logger:        logger,
	}
}

// Init replaces the current store, if any, with a fresh empty one.
func (s *StoreSession) Init(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		s.store.Close()
	}
	s.store = NewStore(name, s.newRepository(), s.codec, s.logger)
	if s.logger != nil {
		s.logger.Info("store initialized", "name", name)
	}
}

func (s *StoreSession) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store != nil
}

// With runs fn with exclusive access to the current store.
func (s *StoreSession) With(fn func(store *Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return ErrNotInitialized
	}
	return fn(s.store)
}

// Save is not supported: stores live in memory only.
func (s *StoreSession) Save(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return ErrNotInitialized
	}
	return fmt.Errorf("save %q: %w", name, ErrNotImplemented)
}

// Load is not supported; the current store is kept as is.
func (s *StoreSession) Load(name string) error {
	return fmt.Errorf("load %q: %w", name, ErrNotImplemented)
}

func (s *StoreSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

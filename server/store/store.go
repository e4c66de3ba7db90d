// Package store is the process-wide registry of live tables and practice
// games. Everything lives in memory and dies with the process; a table is
// only ever touched while the store's lock is held, and callers get deep
// snapshots back, never references into guarded state.
package store

import (
	"errors"
	"sync"

	"pokertabled/server/engine"
)

var (
	ErrTableNotFound = errors.New("table not found")
	ErrGameNotFound  = errors.New("game not found")
)

type Store struct {
	mu     sync.Mutex
	tables map[string]*engine.Table
	games  map[string]*engine.Game
}

func New() *Store {
	return &Store{
		tables: make(map[string]*engine.Table),
		games:  make(map[string]*engine.Game),
	}
}

// PutTable registers a table and returns a snapshot of it.
func (s *Store) PutTable(t *engine.Table) *engine.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[t.ID] = t
	return t.Clone()
}

// Table returns a snapshot of the table, or ErrTableNotFound.
func (s *Store) Table(id string) (*engine.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[id]
	if !ok {
		return nil, ErrTableNotFound
	}
	return t.Clone(), nil
}

// UpdateTable runs fn on the live table under the lock and returns a
// snapshot of the result. fn must not retain the pointer past its return.
func (s *Store) UpdateTable(id string, fn func(*engine.Table) error) (*engine.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[id]
	if !ok {
		return nil, ErrTableNotFound
	}
	if err := fn(t); err != nil {
		return nil, err
	}
	return t.Clone(), nil
}

// PutGame registers a practice game and returns a snapshot of it.
func (s *Store) PutGame(g *engine.Game) *engine.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
	return g.Clone()
}

// Game returns a snapshot of the practice game, or ErrGameNotFound.
func (s *Store) Game(id string) (*engine.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g.Clone(), nil
}

// UpdateGame runs fn on the live game under the lock and returns a snapshot.
func (s *Store) UpdateGame(id string, fn func(*engine.Game) error) (*engine.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	if err := fn(g); err != nil {
		return nil, err
	}
	return g.Clone(), nil
}

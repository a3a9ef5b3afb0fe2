// Package watchlist manages the favorite-symbol list, persisted under its
// own store key.
package watchlist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pattarak/stockify/internal/storage"
)

// StorageKey matches the key the web dashboard used.
const StorageKey = "stockify_watchlist"

// Manager owns the favorites list. Same explicit-store model as the ledger:
// load once at construction, flush after each mutation.
type Manager struct {
	mu       sync.Mutex
	store    storage.Store
	key      string
	symbols  []string
	logger   zerolog.Logger
	onChange []func([]string)
}

// New builds a manager backed by store, loading any persisted list.
func New(ctx context.Context, store storage.Store) (*Manager, error) {
	m := &Manager{
		store:  store,
		key:    StorageKey,
		logger: log.With().Str("component", "watchlist").Logger(),
	}

	raw, ok, err := store.Get(ctx, m.key)
	if err != nil {
		return nil, fmt.Errorf("loading watchlist: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &m.symbols); err != nil {
			return nil, fmt.Errorf("decoding watchlist: %w", err)
		}
	}
	return m, nil
}

// OnChange registers a callback fired with a copy of the list after every
// committed mutation.
func (m *Manager) OnChange(fn func([]string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// Add stores symbol (uppercased) if absent. Reports whether it was added.
func (m *Manager) Add(ctx context.Context, symbol string) (bool, error) {
	symbol = normalize(symbol)
	if symbol == "" {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.contains(symbol) {
		return false, nil
	}
	next := append(append([]string{}, m.symbols...), symbol)
	if err := m.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Remove drops symbol from the list if present.
func (m *Manager) Remove(ctx context.Context, symbol string) error {
	symbol = normalize(symbol)
	if symbol == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]string, 0, len(m.symbols))
	for _, s := range m.symbols {
		if s != symbol {
			next = append(next, s)
		}
	}
	return m.commit(ctx, next)
}

// Toggle adds symbol if absent and removes it if present. Reports whether
// the symbol ended up on the list.
func (m *Manager) Toggle(ctx context.Context, symbol string) (bool, error) {
	if m.Has(symbol) {
		if err := m.Remove(ctx, symbol); err != nil {
			return true, err
		}
		return false, nil
	}
	_, err := m.Add(ctx, symbol)
	return true, err
}

// Has reports whether symbol is on the list.
func (m *Manager) Has(symbol string) bool {
	symbol = normalize(symbol)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contains(symbol)
}

// List returns a copy of the favorites in insertion order.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.symbols))
	copy(out, m.symbols)
	return out
}

func (m *Manager) contains(symbol string) bool {
	for _, s := range m.symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

func (m *Manager) commit(ctx context.Context, next []string) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding watchlist: %w", err)
	}
	if err := m.store.Set(ctx, m.key, string(raw)); err != nil {
		return fmt.Errorf("persisting watchlist: %w", err)
	}
	m.symbols = next
	for _, fn := range m.onChange {
		out := make([]string, len(next))
		copy(out, next)
		fn(out)
	}
	return nil
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

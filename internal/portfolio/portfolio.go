// Package portfolio implements the paper-trading ledger: cash balance, open
// positions and closed-trade history, persisted as one JSON blob in a
// string-keyed store.
package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pattarak/stockify/internal/i18n"
	"github.com/pattarak/stockify/internal/storage"
	"github.com/pattarak/stockify/models"
)

// StorageKey is the fixed key the ledger blob lives under. It matches the
// key the web dashboard used, so existing portfolios carry over.
const StorageKey = "stockify_portfolio_v1"

// StartingBalance is the cash a fresh ledger opens with.
const StartingBalance = 1_000_000

// Recoverable order failures. Callers branch with errors.Is; state is never
// partially applied when one of these is returned.
var (
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrPositionNotFound     = errors.New("position not found")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)

// Receipt confirms an executed order with a localized message.
type Receipt struct {
	Message string
	Profit  float64
}

// Ledger owns the portfolio state. It loads from the store once at
// construction and flushes explicitly after each mutation; a mutex makes
// the load-modify-save sequence safe for concurrent callers.
type Ledger struct {
	mu       sync.Mutex
	store    storage.Store
	key      string
	state    models.LedgerState
	locale   i18n.Locale
	logger   zerolog.Logger
	onChange []func(models.LedgerState)
}

// New builds a ledger backed by store, reading any persisted state under
// StorageKey. A missing or empty key yields the default state.
func New(ctx context.Context, store storage.Store, locale i18n.Locale) (*Ledger, error) {
	l := &Ledger{
		store:  store,
		key:    StorageKey,
		locale: locale,
		logger: log.With().Str("component", "portfolio").Logger(),
	}

	raw, ok, err := store.Get(ctx, l.key)
	if err != nil {
		return nil, fmt.Errorf("loading portfolio: %w", err)
	}
	if !ok {
		l.state = defaultState()
		return l, nil
	}

	var state models.LedgerState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("decoding portfolio blob: %w", err)
	}
	l.state = state
	return l, nil
}

func defaultState() models.LedgerState {
	return models.LedgerState{
		Balance:   StartingBalance,
		Positions: []models.Position{},
		History:   []models.HistoryEntry{},
	}
}

// OnChange registers a callback fired after every committed mutation with a
// copy of the new state. Failed operations never notify.
func (l *Ledger) OnChange(fn func(models.LedgerState)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Buy executes a market buy of qty shares at price. The order is rejected
// with ErrInsufficientBalance when cost exceeds cash on hand. Repeated buys
// into a held symbol merge into one position at the volume-weighted average
// price.
func (l *Ledger) Buy(ctx context.Context, symbol string, price, qty float64) (Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cost := price * qty
	if cost > l.state.Balance {
		return Receipt{}, ErrInsufficientBalance
	}

	next := l.state.Clone()
	next.Balance -= cost

	merged := false
	for i := range next.Positions {
		if next.Positions[i].Symbol == symbol {
			pos := &next.Positions[i]
			totalCost := pos.AvgPrice*pos.Qty + cost
			pos.Qty += qty
			pos.AvgPrice = totalCost / pos.Qty
			merged = true
			break
		}
	}
	if !merged {
		next.Positions = append(next.Positions, models.Position{
			Symbol:    symbol,
			AvgPrice:  price,
			Qty:       qty,
			EntryDate: time.Now().UTC(),
		})
	}

	if err := l.commit(ctx, next); err != nil {
		return Receipt{}, err
	}

	l.logger.Info().Str("symbol", symbol).Float64("price", price).Float64("qty", qty).Msg("buy executed")
	return Receipt{Message: fmt.Sprintf(i18n.T(l.locale, i18n.MsgBuyOK), symbol, qty)}, nil
}

// Sell closes qty shares of a held position at price, realizing P/L against
// the volume-weighted cost basis. Zero-quantity positions are removed; the
// closed trade is prepended to history.
func (l *Ledger) Sell(ctx context.Context, symbol string, price, qty float64) (Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.state.Positions {
		if l.state.Positions[i].Symbol == symbol {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Receipt{}, ErrPositionNotFound
	}
	if qty > l.state.Positions[idx].Qty {
		return Receipt{}, ErrInsufficientQuantity
	}

	next := l.state.Clone()
	pos := &next.Positions[idx]

	sellValue := price * qty
	buyCost := pos.AvgPrice * qty
	profit := sellValue - buyCost
	profitPct := profit / buyCost * 100

	next.Balance += sellValue
	pos.Qty -= qty
	if pos.Qty == 0 {
		next.Positions = append(next.Positions[:idx], next.Positions[idx+1:]...)
	}

	next.History = append([]models.HistoryEntry{{
		Symbol: symbol,
		Action: models.SignalSell,
		Price:  price,
		Qty:    qty,
		Profit: profit,
		Date:   time.Now().UTC(),
	}}, next.History...)

	if err := l.commit(ctx, next); err != nil {
		return Receipt{}, err
	}

	l.logger.Info().Str("symbol", symbol).Float64("profit", profit).Msg("sell executed")
	return Receipt{
		Message: fmt.Sprintf(i18n.T(l.locale, i18n.MsgSellOK), symbol, profit, profitPct),
		Profit:  profit,
	}, nil
}

// Summary returns a read-only snapshot of balance and open positions.
func (l *Ledger) Summary() models.PortfolioSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	positions := make([]models.Position, len(l.state.Positions))
	copy(positions, l.state.Positions)
	return models.PortfolioSummary{
		Balance:       l.state.Balance,
		PositionCount: len(positions),
		Positions:     positions,
	}
}

// History returns a copy of the closed-trade history, newest first.
func (l *Ledger) History() []models.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	history := make([]models.HistoryEntry, len(l.state.History))
	copy(history, l.state.History)
	return history
}

// Reset discards persisted state and returns the ledger to the default.
// Calling it twice yields the same state.
func (l *Ledger) Reset(ctx context.Context) (models.LedgerState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Delete(ctx, l.key); err != nil {
		return models.LedgerState{}, fmt.Errorf("deleting portfolio blob: %w", err)
	}
	l.state = defaultState()
	l.notify()
	l.logger.Info().Msg("portfolio reset")
	return l.state.Clone(), nil
}

// commit persists next and adopts it as the current state. On a store
// failure the in-memory state is left untouched.
func (l *Ledger) commit(ctx context.Context, next models.LedgerState) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding portfolio blob: %w", err)
	}
	if err := l.store.Set(ctx, l.key, string(raw)); err != nil {
		return fmt.Errorf("persisting portfolio: %w", err)
	}
	l.state = next
	l.notify()
	return nil
}

func (l *Ledger) notify() {
	for _, fn := range l.onChange {
		fn(l.state.Clone())
	}
}

// FailureMessage maps a ledger error to its localized user-facing message.
func (l *Ledger) FailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return i18n.T(l.locale, i18n.MsgInsufficientBalance)
	case errors.Is(err, ErrPositionNotFound):
		return i18n.T(l.locale, i18n.MsgPositionNotFound)
	case errors.Is(err, ErrInsufficientQuantity):
		return i18n.T(l.locale, i18n.MsgInsufficientQty)
	default:
		return err.Error()
	}
}

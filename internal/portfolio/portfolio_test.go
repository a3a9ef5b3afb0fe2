package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/pattarak/stockify/internal/i18n"
	"github.com/pattarak/stockify/internal/storage"
	"github.com/pattarak/stockify/models"
)

func newTestLedger(t *testing.T) (*Ledger, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemory()
	ledger, err := New(context.Background(), store, i18n.EN)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return ledger, store
}

func TestFreshLedgerDefaults(t *testing.T) {
	ledger, _ := newTestLedger(t)
	summary := ledger.Summary()
	if summary.Balance != StartingBalance {
		t.Errorf("Balance = %v, want %v", summary.Balance, StartingBalance)
	}
	if summary.PositionCount != 0 {
		t.Errorf("PositionCount = %v, want 0", summary.PositionCount)
	}
	if len(ledger.History()) != 0 {
		t.Error("fresh ledger has history")
	}
}

func TestBuyAveragesAndSellCloses(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	if _, err := ledger.Buy(ctx, "AAA", 100, 10); err != nil {
		t.Fatalf("first buy: %v", err)
	}
	summary := ledger.Summary()
	if summary.Balance != 999_000 {
		t.Errorf("balance after first buy = %v, want 999000", summary.Balance)
	}
	if summary.PositionCount != 1 {
		t.Fatalf("PositionCount = %v, want 1", summary.PositionCount)
	}
	pos := summary.Positions[0]
	if pos.Symbol != "AAA" || pos.AvgPrice != 100 || pos.Qty != 10 {
		t.Errorf("position = %+v, want AAA avg 100 qty 10", pos)
	}
	if pos.EntryDate.IsZero() {
		t.Error("EntryDate not set")
	}

	// Second buy merges at the volume-weighted average.
	if _, err := ledger.Buy(ctx, "AAA", 120, 10); err != nil {
		t.Fatalf("second buy: %v", err)
	}
	summary = ledger.Summary()
	if summary.Balance != 997_800 {
		t.Errorf("balance after second buy = %v, want 997800", summary.Balance)
	}
	if summary.PositionCount != 1 {
		t.Fatalf("repeated buys must merge, got %d positions", summary.PositionCount)
	}
	pos = summary.Positions[0]
	if pos.AvgPrice != 110 || pos.Qty != 20 {
		t.Errorf("position = avg %v qty %v, want avg 110 qty 20", pos.AvgPrice, pos.Qty)
	}

	// Full close realizes (130-110)*20 and removes the position.
	receipt, err := ledger.Sell(ctx, "AAA", 130, 20)
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if receipt.Profit != 400 {
		t.Errorf("Profit = %v, want 400", receipt.Profit)
	}
	summary = ledger.Summary()
	if summary.Balance != 1_000_400 {
		t.Errorf("balance after sell = %v, want 1000400", summary.Balance)
	}
	if summary.PositionCount != 0 {
		t.Errorf("closed position still present: %+v", summary.Positions)
	}

	history := ledger.History()
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	h := history[0]
	if h.Symbol != "AAA" || h.Action != models.SignalSell || h.Qty != 20 || h.Profit != 400 {
		t.Errorf("history entry = %+v", h)
	}
}

func TestPartialSellKeepsPosition(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	if _, err := ledger.Buy(ctx, "BBB", 50, 10); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if _, err := ledger.Sell(ctx, "BBB", 60, 4); err != nil {
		t.Fatalf("sell: %v", err)
	}

	summary := ledger.Summary()
	if summary.PositionCount != 1 {
		t.Fatalf("PositionCount = %v, want 1", summary.PositionCount)
	}
	pos := summary.Positions[0]
	if pos.Qty != 6 || pos.AvgPrice != 50 {
		t.Errorf("position = qty %v avg %v, want qty 6 avg 50", pos.Qty, pos.AvgPrice)
	}
}

func TestHistoryIsNewestFirst(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	ledger.Buy(ctx, "AAA", 100, 2)
	ledger.Buy(ctx, "BBB", 100, 2)
	ledger.Sell(ctx, "AAA", 110, 2)
	ledger.Sell(ctx, "BBB", 120, 2)

	history := ledger.History()
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].Symbol != "BBB" || history[1].Symbol != "AAA" {
		t.Errorf("history order = %s, %s; want BBB, AAA", history[0].Symbol, history[1].Symbol)
	}
}

func TestFailuresLeaveStateUntouched(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	before := ledger.Summary()
	if _, err := ledger.Buy(ctx, "BBB", 50, 1_000_000); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("overdraft buy error = %v, want ErrInsufficientBalance", err)
	}
	if _, err := ledger.Sell(ctx, "ZZZ", 10, 1); !errors.Is(err, ErrPositionNotFound) {
		t.Errorf("sell of unheld symbol error = %v, want ErrPositionNotFound", err)
	}

	after := ledger.Summary()
	if after.Balance != before.Balance || after.PositionCount != before.PositionCount {
		t.Errorf("failed orders mutated state: %+v -> %+v", before, after)
	}

	ledger.Buy(ctx, "CCC", 10, 5)
	if _, err := ledger.Sell(ctx, "CCC", 10, 6); !errors.Is(err, ErrInsufficientQuantity) {
		t.Errorf("oversell error = %v, want ErrInsufficientQuantity", err)
	}
	if got := ledger.Summary().Positions[0].Qty; got != 5 {
		t.Errorf("oversell mutated qty to %v", got)
	}
}

func TestFailureMessages(t *testing.T) {
	ledger, _ := newTestLedger(t)
	tests := []struct {
		err  error
		want string
	}{
		{ErrInsufficientBalance, "Insufficient balance"},
		{ErrPositionNotFound, "Position not found"},
		{ErrInsufficientQuantity, "Insufficient quantity to sell"},
	}
	for _, tt := range tests {
		if got := ledger.FailureMessage(tt.err); got != tt.want {
			t.Errorf("FailureMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestStatePersistsAcrossLedgers(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	first, err := New(ctx, store, i18n.EN)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	first.Buy(ctx, "AAA", 100, 10)
	first.Sell(ctx, "AAA", 120, 5)

	second, err := New(ctx, store, i18n.EN)
	if err != nil {
		t.Fatalf("reopening ledger: %v", err)
	}
	summary := second.Summary()
	if summary.Balance != first.Summary().Balance {
		t.Errorf("balance not persisted: %v vs %v", summary.Balance, first.Summary().Balance)
	}
	if summary.PositionCount != 1 || summary.Positions[0].Qty != 5 {
		t.Errorf("positions not persisted: %+v", summary.Positions)
	}
	if len(second.History()) != 1 {
		t.Errorf("history not persisted")
	}
}

func TestPersistedBlobShape(t *testing.T) {
	ledger, store := newTestLedger(t)
	ctx := context.Background()

	ledger.Buy(ctx, "AAA", 100, 10)
	ledger.Sell(ctx, "AAA", 110, 10)

	raw, ok, err := store.Get(ctx, StorageKey)
	if err != nil || !ok {
		t.Fatalf("blob missing: ok=%v err=%v", ok, err)
	}

	// The dashboard's field names must survive for blob compatibility.
	var blob map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		t.Fatalf("unmarshal blob: %v", err)
	}
	for _, field := range []string{"balance", "positions", "history"} {
		if _, ok := blob[field]; !ok {
			t.Errorf("blob missing field %q", field)
		}
	}

	var history []map[string]json.RawMessage
	if err := json.Unmarshal(blob["history"], &history); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}
	for _, field := range []string{"symbol", "action", "price", "qty", "profit", "date"} {
		if _, ok := history[0][field]; !ok {
			t.Errorf("history entry missing field %q", field)
		}
	}
}

func TestResetIsIdempotent(t *testing.T) {
	ledger, store := newTestLedger(t)
	ctx := context.Background()

	ledger.Buy(ctx, "AAA", 100, 10)

	first, err := ledger.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	second, err := ledger.Reset(ctx)
	if err != nil {
		t.Fatalf("second reset: %v", err)
	}

	if first.Balance != StartingBalance || second.Balance != StartingBalance {
		t.Errorf("reset balances = %v, %v; want %v", first.Balance, second.Balance, StartingBalance)
	}
	if len(first.Positions) != 0 || len(second.Positions) != 0 {
		t.Error("reset left positions behind")
	}
	if len(first.History) != 0 || len(second.History) != 0 {
		t.Error("reset left history behind")
	}
	if _, ok, _ := store.Get(ctx, StorageKey); ok {
		t.Error("reset left a persisted blob behind")
	}
}

func TestOnChangeFiresOnCommitOnly(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	var calls []float64
	ledger.OnChange(func(state models.LedgerState) {
		calls = append(calls, state.Balance)
	})

	ledger.Buy(ctx, "AAA", 100, 10)
	if len(calls) != 1 || calls[0] != 999_000 {
		t.Fatalf("calls after buy = %v", calls)
	}

	// A rejected order must not notify.
	ledger.Buy(ctx, "AAA", 50, 1_000_000)
	if len(calls) != 1 {
		t.Errorf("failed buy notified observers: %v", calls)
	}

	ledger.Sell(ctx, "AAA", 120, 10)
	ledger.Reset(ctx)
	if len(calls) != 3 {
		t.Errorf("expected 3 notifications, got %v", calls)
	}
}

func TestBuyRejectedOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: storage.NewMemory()}
	ledger, err := New(ctx, store, i18n.EN)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	store.failSet = true
	if _, err := ledger.Buy(ctx, "AAA", 100, 10); err == nil {
		t.Fatal("buy succeeded despite store failure")
	}
	if got := ledger.Summary().Balance; got != StartingBalance {
		t.Errorf("balance mutated to %v despite failed persist", got)
	}
}

type failingStore struct {
	storage.Store
	failSet bool
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.failSet {
		return errors.New("store unavailable")
	}
	return s.Store.Set(ctx, key, value)
}

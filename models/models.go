package models

import (
	"time"
)

// Trade signals produced by the analyst.
const (
	SignalBuy  = "BUY"
	SignalSell = "SELL"
	SignalWait = "WAIT"
)

// Trend directions relative to the EMA200.
const (
	TrendUp   = "UP"
	TrendDown = "DOWN"
)

// Confidence levels for a recommendation.
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// MACD holds the moving-average-convergence-divergence oscillator values.
type MACD struct {
	Line      float64 `json:"line"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram,omitempty"`
}

// SentimentMeter is the backend's fear/greed gauge, 0-100.
type SentimentMeter struct {
	Score       float64 `json:"score"`
	Description string  `json:"description,omitempty"`
}

// Valuation figures from the backend fundamentals block. Zero means the
// backend had no data for the field.
type Valuation struct {
	MarketCap    float64 `json:"marketCap,omitempty"`
	TrailingPE   float64 `json:"trailingPE,omitempty"`
	ForwardPE    float64 `json:"forwardPE,omitempty"`
	PEGRatio     float64 `json:"pegRatio,omitempty"`
	PriceToBook  float64 `json:"priceToBook,omitempty"`
	PriceToSales float64 `json:"priceToSales,omitempty"`
}

// Profitability margins and returns, expressed as fractions (0.15 = 15%).
type Profitability struct {
	GrossMargins     float64 `json:"grossMargins,omitempty"`
	OperatingMargins float64 `json:"operatingMargins,omitempty"`
	ProfitMargins    float64 `json:"profitMargins,omitempty"`
	ReturnOnEquity   float64 `json:"returnOnEquity,omitempty"`
	ReturnOnAssets   float64 `json:"returnOnAssets,omitempty"`
}

// Growth rates, expressed as fractions.
type Growth struct {
	RevenueGrowth  float64 `json:"revenueGrowth,omitempty"`
	EarningsGrowth float64 `json:"earningsGrowth,omitempty"`
}

// Consensus is the 12-month analyst consensus block.
type Consensus struct {
	TargetMean       float64 `json:"targetMean,omitempty"`
	TargetHigh       float64 `json:"targetHigh,omitempty"`
	TargetLow        float64 `json:"targetLow,omitempty"`
	Recommendation   string  `json:"recommendation,omitempty"`
	NumberOfAnalysts int     `json:"numberOfAnalysts,omitempty"`
}

// Fundamentals is the optional valuation/profitability/growth/consensus
// payload attached to an analyze response.
type Fundamentals struct {
	Valuation     Valuation     `json:"valuation"`
	Profitability Profitability `json:"profitability"`
	Growth        Growth        `json:"growth"`
	Consensus     Consensus     `json:"consensus"`
}

// MarketSnapshot is the input to the analyst, as served by the backend
// /analyze endpoint.
type MarketSnapshot struct {
	Symbol        string          `json:"symbol,omitempty"`
	Price         float64         `json:"price"`
	ChangePercent float64         `json:"change_percent,omitempty"`
	EMA200        float64         `json:"ema200"`
	RSI           float64         `json:"rsi"`
	MACD          MACD            `json:"macd"`
	Sentiment     *SentimentMeter `json:"sentiment_meter,omitempty"`
	Fundamentals  *Fundamentals   `json:"fundamentals,omitempty"`
}

// TradeSetup carries the derived entry/exit prices for a recommendation.
type TradeSetup struct {
	Entry      float64 `json:"entry"`
	BuyLimit   float64 `json:"buyLimit"`
	StopLoss   float64 `json:"stopLoss"`
	TakeProfit float64 `json:"takeProfit"`
}

// Recommendation is the structured output of the analyst.
type Recommendation struct {
	Signal     string         `json:"signal"`
	Trend      string         `json:"trend"`
	Confidence string         `json:"confidence"`
	Reason     string         `json:"reason"`
	Snapshot   MarketSnapshot `json:"marketData"`
	TradeSetup TradeSetup     `json:"tradeSetup"`
}

// Position is an open holding in the paper-trading ledger. Qty is strictly
// positive while the position exists; AvgPrice is the volume-weighted cost
// basis across all buys since the symbol was last fully closed.
type Position struct {
	Symbol    string    `json:"symbol"`
	AvgPrice  float64   `json:"avgPrice"`
	Qty       float64   `json:"qty"`
	EntryDate time.Time `json:"entryDate"`
}

// HistoryEntry records a closed (sold) trade. History is newest-first.
type HistoryEntry struct {
	Symbol string    `json:"symbol"`
	Action string    `json:"action"`
	Price  float64   `json:"price"`
	Qty    float64   `json:"qty"`
	Profit float64   `json:"profit"`
	Date   time.Time `json:"date"`
}

// LedgerState is the full persisted state of the paper-trading ledger.
// The JSON shape matches the blob the web dashboard stored, so existing
// persisted portfolios load unchanged.
type LedgerState struct {
	Balance   float64        `json:"balance"`
	Positions []Position     `json:"positions"`
	History   []HistoryEntry `json:"history"`
}

// Clone returns a deep copy so mutations can be staged and only committed
// after a successful persist.
func (s LedgerState) Clone() LedgerState {
	out := LedgerState{Balance: s.Balance}
	out.Positions = make([]Position, len(s.Positions))
	copy(out.Positions, s.Positions)
	out.History = make([]HistoryEntry, len(s.History))
	copy(out.History, s.History)
	return out
}

// PortfolioSummary is the read-only snapshot returned by the ledger.
type PortfolioSummary struct {
	Balance       float64    `json:"balance"`
	PositionCount int        `json:"positionCount"`
	Positions     []Position `json:"positions"`
}

// BacktestResult is the backend /backtest response.
type BacktestResult struct {
	Symbol         string  `json:"symbol,omitempty"`
	InitialCapital float64 `json:"initial_capital"`
	FinalCapital   float64 `json:"final_capital"`
	ReturnPct      float64 `json:"return_pct"`
	WinRate        float64 `json:"win_rate"`
	TotalTrades    int     `json:"total_trades"`
}

// Opportunity is a single entry of the backend /discover scan.
type Opportunity struct {
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Change   float64 `json:"change"`
	RSI      float64 `json:"rsi"`
	Signal   string  `json:"signal"`
	Category string  `json:"category"`
	Score    int     `json:"score"`
}

// StreakEntry is one symbol in the backend /streaks report.
type StreakEntry struct {
	Symbol      string  `json:"symbol"`
	Price       float64 `json:"price"`
	Streak      int     `json:"streak"`
	TotalChange float64 `json:"total_change"`
}

// StreakReport groups consecutive-move streaks by direction.
type StreakReport struct {
	Gainers []StreakEntry `json:"gainers"`
	Losers  []StreakEntry `json:"losers"`
}

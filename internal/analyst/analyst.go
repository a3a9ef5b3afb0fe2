// Package analyst implements the rule-based signal engine: a pure function
// of a market snapshot producing a trade recommendation plus a formatted
// report.
package analyst

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pattarak/stockify/internal/i18n"
	"github.com/pattarak/stockify/models"
)

// Policy holds the decision thresholds. The defaults reproduce the dashboard
// behaviour exactly; they are plain policy constants, not derived values.
type Policy struct {
	RSIBuyFloor       float64 // lower RSI bound for any long entry
	RSIBuyCeiling     float64 // upper RSI bound for a confluence BUY
	RSIWeakBuyCeiling float64 // upper RSI bound for an RSI-only BUY

	RSISellCeiling     float64 // upper RSI bound for any short entry
	RSISellFloor       float64 // lower RSI bound for a confluence SELL
	RSIWeakSellFloor   float64 // lower RSI bound for an RSI-only SELL

	RSINeutralLow   float64 // ranging override band
	RSINeutralHigh  float64
	MACDFlatEpsilon float64 // |line - signal| below this counts as flat

	BuyLimitPct   float64 // long: wait for this dip before entering
	StopLossPct   float64
	TakeProfitPct float64

	ShortBouncePct float64 // short: wait for this bounce before entering
	ShortStopPct   float64
	ShortTargetPct float64

	StrongTrendPct float64 // distance beyond EMA200 that counts as a strong trend
}

// DefaultPolicy returns the thresholds the original dashboard shipped with.
func DefaultPolicy() Policy {
	return Policy{
		RSIBuyFloor:       30,
		RSIBuyCeiling:     55,
		RSIWeakBuyCeiling: 50,

		RSISellCeiling:   70,
		RSISellFloor:     45,
		RSIWeakSellFloor: 50,

		RSINeutralLow:   45,
		RSINeutralHigh:  55,
		MACDFlatEpsilon: 0.1,

		BuyLimitPct:   0.98,
		StopLossPct:   0.95,
		TakeProfitPct: 1.10,

		ShortBouncePct: 1.02,
		ShortStopPct:   1.05,
		ShortTargetPct: 0.90,

		StrongTrendPct: 0.05,
	}
}

// Analyst generates recommendations from market snapshots. It holds no
// state between calls.
type Analyst struct {
	policy Policy
	locale i18n.Locale
	logger zerolog.Logger
}

// New creates an analyst with the given policy and report locale.
func New(policy Policy, locale i18n.Locale) *Analyst {
	return &Analyst{
		policy: policy,
		locale: locale,
		logger: log.With().Str("component", "analyst").Logger(),
	}
}

// Analyze evaluates the decision table over one snapshot. Pure and
// deterministic; malformed input is the caller's responsibility.
func (a *Analyst) Analyze(snap models.MarketSnapshot) models.Recommendation {
	p := a.policy

	uptrend := snap.Price > snap.EMA200
	trend := models.TrendDown
	if uptrend {
		trend = models.TrendUp
	}

	macdBullish := snap.MACD.Line > snap.MACD.Signal
	macdBearish := snap.MACD.Line < snap.MACD.Signal

	signal := models.SignalWait
	confidence := models.ConfidenceLow
	var reason string

	if uptrend {
		// Hunting for dip-buy entries.
		switch {
		case snap.RSI > p.RSIBuyFloor && snap.RSI < p.RSIBuyCeiling && macdBullish:
			signal = models.SignalBuy
			confidence = models.ConfidenceHigh
			reason = "trend-aligned with RSI in buy zone and bullish MACD crossover"
		case snap.RSI > p.RSIBuyFloor && snap.RSI < p.RSIWeakBuyCeiling:
			signal = models.SignalBuy
			confidence = models.ConfidenceMedium
			reason = "uptrend with RSI rebound potential"
		case macdBullish:
			signal = models.SignalBuy
			confidence = models.ConfidenceMedium
			reason = "uptrend with bullish MACD crossover"
		default:
			reason = "uptrend but no clean entry (RSI/MACD neutral)"
		}
	} else {
		// Hunting for bounce-sell entries.
		switch {
		case snap.RSI < p.RSISellCeiling && snap.RSI > p.RSISellFloor && macdBearish:
			signal = models.SignalSell
			confidence = models.ConfidenceHigh
			reason = "trend-aligned with RSI in sell zone and bearish MACD crossover"
		case snap.RSI < p.RSISellCeiling && snap.RSI > p.RSIWeakSellFloor:
			signal = models.SignalSell
			confidence = models.ConfidenceMedium
			reason = "downtrend with RSI pullback potential"
		case macdBearish:
			signal = models.SignalSell
			confidence = models.ConfidenceMedium
			reason = "downtrend with bearish MACD crossover"
		default:
			reason = "downtrend but no clean entry (RSI/MACD neutral)"
		}
	}

	// Ranging override: when momentum is truly flat, ignore trend bias.
	if snap.RSI >= p.RSINeutralLow && snap.RSI <= p.RSINeutralHigh &&
		math.Abs(snap.MACD.Line-snap.MACD.Signal) < p.MACDFlatEpsilon {
		signal = models.SignalWait
		confidence = models.ConfidenceHigh
		reason = "market ranging (RSI neutral, MACD flat)"
	}

	return models.Recommendation{
		Signal:     signal,
		Trend:      trend,
		Confidence: confidence,
		Reason:     reason,
		Snapshot:   snap,
		TradeSetup: a.tradeSetup(signal, snap.Price),
	}
}

// tradeSetup derives the fixed-percentage entry/exit levels around the
// quoted price. Computed for every signal so WAIT still ships guidance.
func (a *Analyst) tradeSetup(signal string, price float64) models.TradeSetup {
	p := a.policy
	if signal == models.SignalSell {
		return models.TradeSetup{
			Entry:      price,
			BuyLimit:   price * p.ShortBouncePct,
			StopLoss:   price * p.ShortStopPct,
			TakeProfit: price * p.ShortTargetPct,
		}
	}
	return models.TradeSetup{
		Entry:      price,
		BuyLimit:   price * p.BuyLimitPct,
		StopLoss:   price * p.StopLossPct,
		TakeProfit: price * p.TakeProfitPct,
	}
}

package analyst

import (
	"github.com/pattarak/stockify/internal/i18n"
	"github.com/pattarak/stockify/models"
)

// MarketContext is the narrative readout of overall market health and entry
// timing. It feeds the report only; the trade signal never depends on it.
type MarketContext struct {
	Health      string
	HealthEmoji string
	Timing      string
}

// MarketContext classifies trend health (strong beyond StrongTrendPct of
// the EMA200) and buckets RSI into timing advice per trend direction.
func (a *Analyst) MarketContext(snap models.MarketSnapshot) MarketContext {
	p := a.policy
	uptrend := snap.Price > snap.EMA200

	var ctx MarketContext
	if uptrend {
		ctx.HealthEmoji = "🟢"
		if snap.Price > snap.EMA200*(1+p.StrongTrendPct) {
			ctx.Health = i18n.T(a.locale, i18n.HealthStrongBull)
		} else {
			ctx.Health = i18n.T(a.locale, i18n.HealthBull)
		}

		switch {
		case snap.RSI < 40:
			ctx.Timing = i18n.T(a.locale, i18n.TimingBestEntry)
		case snap.RSI > 70:
			ctx.Timing = i18n.T(a.locale, i18n.TimingOverextended)
		case snap.RSI >= 40 && snap.RSI <= 60:
			ctx.Timing = i18n.T(a.locale, i18n.TimingAccumulate)
		default:
			ctx.Timing = i18n.T(a.locale, i18n.TimingWaitSignal)
		}
		return ctx
	}

	if snap.Price < snap.EMA200*(1-p.StrongTrendPct) {
		ctx.Health = i18n.T(a.locale, i18n.HealthStrongBear)
		ctx.HealthEmoji = "🔴"
	} else {
		ctx.Health = i18n.T(a.locale, i18n.HealthBear)
		ctx.HealthEmoji = "🟠"
	}

	switch {
	case snap.RSI > 60:
		ctx.Timing = i18n.T(a.locale, i18n.TimingBounceSell)
	case snap.RSI < 30:
		ctx.Timing = i18n.T(a.locale, i18n.TimingOversoldBounce)
	default:
		ctx.Timing = i18n.T(a.locale, i18n.TimingAvoidLong)
	}
	return ctx
}

// sentimentGauge buckets a 0-100 fear/greed score at the 20/40/60/80
// thresholds.
func (a *Analyst) sentimentGauge(score float64) (emoji, label string) {
	switch {
	case score > 80:
		return "🤯", i18n.T(a.locale, i18n.GaugeExtremeGreed)
	case score > 60:
		return "🤑", i18n.T(a.locale, i18n.GaugeGreed)
	case score < 20:
		return "😱", i18n.T(a.locale, i18n.GaugeExtremeFear)
	case score < 40:
		return "😨", i18n.T(a.locale, i18n.GaugeFear)
	default:
		return "😐", i18n.T(a.locale, i18n.GaugeNeutral)
	}
}

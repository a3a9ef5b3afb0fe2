package analyst

import (
	"fmt"
	"math"
	"strings"

	"github.com/pattarak/stockify/internal/i18n"
	"github.com/pattarak/stockify/models"
)

const gaugeBarLength = 10

// FormatReport composes the full human-readable report for a
// recommendation: market context, sentiment gauge, signal banner,
// fundamentals, technical summary, trade setup and options advisory.
func (a *Analyst) FormatReport(rec models.Recommendation) string {
	snap := rec.Snapshot
	ctx := a.MarketContext(snap)

	var b strings.Builder

	b.WriteString("🌤️ Market Context\n")
	b.WriteString(fmt.Sprintf("• Health: %s %s\n", ctx.Health, ctx.HealthEmoji))
	b.WriteString(fmt.Sprintf("• Timing: %s\n", ctx.Timing))

	if snap.Sentiment != nil {
		emoji, label := a.sentimentGauge(snap.Sentiment.Score)
		b.WriteString(fmt.Sprintf("• Sentiment: %s %.0f/100 (%s %s)\n",
			gaugeBar(snap.Sentiment.Score), snap.Sentiment.Score, emoji, label))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("🚩 STOCKIFY SIGNAL: %s\n(confidence: %s)\n\n", rec.Signal, rec.Confidence))

	if snap.Fundamentals != nil {
		b.WriteString(a.FundamentalReport(snap.Fundamentals, snap.Price))
		b.WriteString("\n")
	}

	trendText := "Downtrend 📉"
	if rec.Trend == models.TrendUp {
		trendText = "Uptrend 📈"
	}
	b.WriteString("📊 Technical Summary\n")
	b.WriteString(fmt.Sprintf("• Primary trend: %s (EMA200)\n", trendText))
	b.WriteString(fmt.Sprintf("• Momentum: %s\n", a.momentumText(snap)))
	b.WriteString(fmt.Sprintf("• Summary: %s, supporting the %s signal\n\n", rec.Reason, rec.Signal))

	setup := rec.TradeSetup
	tpEmoji := "💰"
	if rec.Signal == models.SignalSell {
		tpEmoji = "📉"
	}
	b.WriteString("🎯 Trade Setup\n")
	b.WriteString(fmt.Sprintf("🔵 Take Profit: %.2f %s\n", setup.TakeProfit, tpEmoji))
	b.WriteString(fmt.Sprintf("🟢 Entry: %.2f\n", setup.Entry))
	b.WriteString(fmt.Sprintf("🟡 Buy Limit: %.2f\n", setup.BuyLimit))
	b.WriteString(fmt.Sprintf("🔴 Stop Loss: %.2f 🛑\n", setup.StopLoss))

	b.WriteString(fmt.Sprintf("\n⚠️ %s\n", a.advice(rec.Signal)))

	opts := a.OptionsStrategy(snap)
	b.WriteString("\n🎯 Options Strategy\n")
	b.WriteString(fmt.Sprintf("• Recommendation: %s\n", opts.Strategy))
	b.WriteString(fmt.Sprintf("• Reason: %s\n", opts.Reason))

	return b.String()
}

// momentumText summarizes RSI zone and MACD posture.
func (a *Analyst) momentumText(snap models.MarketSnapshot) string {
	zone := "Neutral"
	if snap.RSI > 70 {
		zone = "Overbought"
	} else if snap.RSI < 30 {
		zone = "Oversold"
	}

	macdText := "MACD bearish cross"
	if snap.MACD.Line > snap.MACD.Signal {
		macdText = "MACD bullish cross"
	}
	return fmt.Sprintf("RSI at %.2f (%s), %s", snap.RSI, zone, macdText)
}

func (a *Analyst) advice(signal string) string {
	switch signal {
	case models.SignalBuy:
		return i18n.T(a.locale, i18n.AdviceBuy)
	case models.SignalSell:
		return i18n.T(a.locale, i18n.AdviceSell)
	default:
		return i18n.T(a.locale, i18n.AdviceWait)
	}
}

// gaugeBar renders a 10-slot visual bar for a 0-100 score.
func gaugeBar(score float64) string {
	fill := int(math.Round(score / 100 * gaugeBarLength))
	if fill < 0 {
		fill = 0
	}
	if fill > gaugeBarLength {
		fill = gaugeBarLength
	}
	return strings.Repeat("🟩", fill) + strings.Repeat("⬜", gaugeBarLength-fill)
}

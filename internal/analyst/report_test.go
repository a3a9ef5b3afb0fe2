package analyst

import (
	"strings"
	"testing"

	"github.com/pattarak/stockify/internal/i18n"
	"github.com/pattarak/stockify/models"
)

func TestFormatReportSurfacesEverything(t *testing.T) {
	a := newTestAnalyst()
	snap := models.MarketSnapshot{
		Symbol: "AAPL", Price: 100, EMA200: 90, RSI: 40,
		MACD:      models.MACD{Line: 1.0, Signal: 0.5},
		Sentiment: &models.SentimentMeter{Score: 72},
		Fundamentals: &models.Fundamentals{
			Valuation:     models.Valuation{TrailingPE: 12, PEGRatio: 0.8},
			Profitability: models.Profitability{ProfitMargins: 0.25, ReturnOnEquity: 0.18},
			Consensus: models.Consensus{
				TargetMean: 120, TargetHigh: 150, TargetLow: 80,
				Recommendation: "buy", NumberOfAnalysts: 30,
			},
		},
	}
	rec := a.Analyze(snap)
	report := a.FormatReport(rec)

	wantFragments := []string{
		"STOCKIFY SIGNAL: BUY",
		"High",
		"Uptrend",
		"RSI at 40.00",
		"MACD bullish cross",
		// trade setup prices
		"110.00", "100.00", "98.00", "95.00",
		// sentiment gauge
		"72/100", "Greed",
		// fundamentals
		"12.00", "Undervalued",
		"0.80", "Cheap for Growth",
		"25.00%", "High Efficiency",
		"18.00%", "Excellent",
		"120.00", "20.00%", // mean target and its upside
		"150.00", "80.00",
		// options advisory
		"Long Call",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(report, fragment) {
			t.Errorf("report missing %q\n%s", fragment, report)
		}
	}
}

func TestFormatReportWithoutOptionalSections(t *testing.T) {
	a := newTestAnalyst()
	rec := a.Analyze(models.MarketSnapshot{
		Price: 90, EMA200: 100, RSI: 60,
		MACD: models.MACD{Line: 0.5, Signal: 1.0},
	})
	report := a.FormatReport(rec)

	if !strings.Contains(report, "STOCKIFY SIGNAL: SELL") {
		t.Errorf("report missing SELL banner\n%s", report)
	}
	if strings.Contains(report, "Sentiment:") {
		t.Error("report shows a sentiment line without sentiment data")
	}
	if strings.Contains(report, "Fundamental") {
		t.Error("report shows fundamentals without fundamental data")
	}
}

func TestFormatReportThaiLocale(t *testing.T) {
	a := New(DefaultPolicy(), i18n.TH)
	rec := a.Analyze(models.MarketSnapshot{
		Price: 110, EMA200: 100, RSI: 35,
		MACD: models.MACD{Line: 1.0, Signal: 0.5},
	})
	report := a.FormatReport(rec)

	if !strings.Contains(report, "ขาขึ้นแข็งแกร่ง") {
		t.Errorf("Thai report missing localized health text\n%s", report)
	}
}

func TestFundamentalReportNilData(t *testing.T) {
	a := newTestAnalyst()
	got := a.FundamentalReport(nil, 100)
	if got != "Insufficient fundamental data" {
		t.Errorf("FundamentalReport(nil) = %q", got)
	}
}

func TestFundamentalReportMissingFieldsAreNA(t *testing.T) {
	a := newTestAnalyst()
	report := a.FundamentalReport(&models.Fundamentals{}, 100)
	if !strings.Contains(report, "N/A") {
		t.Errorf("report should mark missing figures N/A\n%s", report)
	}
	if strings.Contains(report, "Consensus") {
		t.Errorf("empty consensus block should be omitted\n%s", report)
	}
}

func TestGaugeBar(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "⬜⬜⬜⬜⬜⬜⬜⬜⬜⬜"},
		{50, "🟩🟩🟩🟩🟩⬜⬜⬜⬜⬜"},
		{100, "🟩🟩🟩🟩🟩🟩🟩🟩🟩🟩"},
	}
	for _, tt := range tests {
		if got := gaugeBar(tt.score); got != tt.want {
			t.Errorf("gaugeBar(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

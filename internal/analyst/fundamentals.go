package analyst

import (
	"fmt"
	"strings"

	"github.com/pattarak/stockify/internal/i18n"
	"github.com/pattarak/stockify/models"
)

// FundamentalReport renders the valuation/profitability/consensus narrative.
// A zero field means the backend had no data and is printed as N/A.
func (a *Analyst) FundamentalReport(f *models.Fundamentals, currentPrice float64) string {
	if f == nil {
		return i18n.T(a.locale, i18n.NoFundamentals)
	}

	var b strings.Builder
	b.WriteString("📊 Deep Fundamental Analysis\n")

	b.WriteString("1. Valuation:\n")
	pe := f.Valuation.TrailingPE
	b.WriteString(fmt.Sprintf("   • P/E Ratio: %s - %s\n", naFmt(pe), a.classifyPE(pe)))
	peg := f.Valuation.PEGRatio
	b.WriteString(fmt.Sprintf("   • PEG Ratio: %s - %s\n", naFmt(peg), a.classifyPEG(peg)))

	b.WriteString("2. Profitability:\n")
	margin := f.Profitability.ProfitMargins
	b.WriteString(fmt.Sprintf("   • Net Margin: %s - %s\n", naPctFmt(margin), a.classifyMargin(margin)))
	roe := f.Profitability.ReturnOnEquity
	b.WriteString(fmt.Sprintf("   • ROE: %s - %s\n", naPctFmt(roe), a.classifyROE(roe)))

	cons := f.Consensus
	if cons.TargetMean != 0 || cons.Recommendation != "" {
		b.WriteString("👥 Analyst Consensus (12M Forecast):\n")
		rec := strings.ToUpper(cons.Recommendation)
		if rec == "" {
			rec = "N/A"
		}
		if cons.NumberOfAnalysts > 0 {
			b.WriteString(fmt.Sprintf("   • Rating: %s (from %d brokers)\n", rec, cons.NumberOfAnalysts))
		} else {
			b.WriteString(fmt.Sprintf("   • Rating: %s\n", rec))
		}
		if cons.TargetMean != 0 && currentPrice != 0 {
			upside := (cons.TargetMean - currentPrice) / currentPrice * 100
			icon := "🚀"
			if upside <= 0 {
				icon = "🔻"
			}
			b.WriteString(fmt.Sprintf("   • Average Target: %.2f (%s %.2f%%)\n", cons.TargetMean, icon, upside))
		}
		if cons.TargetHigh != 0 && currentPrice != 0 {
			highUpside := (cons.TargetHigh - currentPrice) / currentPrice * 100
			b.WriteString(fmt.Sprintf("   • Max Bull Case: %.2f (+%.2f%%) 🌟\n", cons.TargetHigh, highUpside))
		}
		if cons.TargetLow != 0 {
			b.WriteString(fmt.Sprintf("   • Min Bear Case: %.2f\n", cons.TargetLow))
		}
	}

	return b.String()
}

func (a *Analyst) classifyPE(pe float64) string {
	switch {
	case pe == 0:
		return "N/A"
	case pe < 15:
		return i18n.T(a.locale, i18n.PECheap) + " 🟢"
	case pe > 30:
		return i18n.T(a.locale, i18n.PEExpensive) + " 🔴"
	default:
		return i18n.T(a.locale, i18n.PEFair) + " 🟡"
	}
}

func (a *Analyst) classifyPEG(peg float64) string {
	switch {
	case peg == 0:
		return "N/A"
	case peg < 1:
		return i18n.T(a.locale, i18n.PEGCheap) + " 🟢"
	case peg > 2:
		return i18n.T(a.locale, i18n.PEGExpensive) + " 🔴"
	default:
		return i18n.T(a.locale, i18n.PEGReasonable) + " 🟡"
	}
}

func (a *Analyst) classifyMargin(margin float64) string {
	switch {
	case margin == 0:
		return "N/A"
	case margin > 0.20:
		return i18n.T(a.locale, i18n.MarginHigh) + " ⭐"
	case margin > 0.10:
		return i18n.T(a.locale, i18n.MarginGood) + " 🟢"
	default:
		return i18n.T(a.locale, i18n.MarginThin) + " ⚠️"
	}
}

func (a *Analyst) classifyROE(roe float64) string {
	switch {
	case roe == 0:
		return "N/A"
	case roe > 0.15:
		return i18n.T(a.locale, i18n.ROEExcellent) + " 🏆"
	case roe > 0.08:
		return i18n.T(a.locale, i18n.ROEStandard)
	default:
		return i18n.T(a.locale, i18n.ROELow) + " ⚠️"
	}
}

func naFmt(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

func naPctFmt(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", v*100)
}

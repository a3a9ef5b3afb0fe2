package analyst

import (
	"github.com/pattarak/stockify/internal/i18n"
	"github.com/pattarak/stockify/models"
)

// OptionsStrategy is the advisory options readout. Informational only;
// independent of the main signal.
type OptionsStrategy struct {
	Strategy string
	Reason   string
}

// OptionsStrategy picks one of four directional setups from price vs EMA200
// and MACD posture, defaulting to a sideways premium-collection play.
func (a *Analyst) OptionsStrategy(snap models.MarketSnapshot) OptionsStrategy {
	price := snap.Price
	ema := snap.EMA200
	line := snap.MACD.Line
	sig := snap.MACD.Signal

	switch {
	case price > ema && line > sig && line > 0:
		return OptionsStrategy{
			Strategy: i18n.T(a.locale, i18n.OptLongCall),
			Reason:   i18n.T(a.locale, i18n.OptLongCallReason),
		}
	case price < ema && line < sig && line < 0:
		return OptionsStrategy{
			Strategy: i18n.T(a.locale, i18n.OptLongPut),
			Reason:   i18n.T(a.locale, i18n.OptLongPutReason),
		}
	case price > ema && line < sig:
		return OptionsStrategy{
			Strategy: i18n.T(a.locale, i18n.OptCoveredCall),
			Reason:   i18n.T(a.locale, i18n.OptCoveredCallReason),
		}
	case price < ema && line > sig:
		return OptionsStrategy{
			Strategy: i18n.T(a.locale, i18n.OptPutSpread),
			Reason:   i18n.T(a.locale, i18n.OptPutSpreadReason),
		}
	default:
		return OptionsStrategy{
			Strategy: i18n.T(a.locale, i18n.OptIronCondor),
			Reason:   i18n.T(a.locale, i18n.OptIronCondorReason),
		}
	}
}

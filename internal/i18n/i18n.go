// Package i18n provides the static localization table for user-facing
// narrative text. Lookup is a pure function over immutable per-locale maps;
// a missing key falls back to the key itself.
package i18n

// Locale identifies a translation table.
type Locale string

const (
	EN Locale = "en"
	TH Locale = "th"
)

// Key is an enumerated message identifier.
type Key string

const (
	// Market health
	HealthStrongBull Key = "health_strong_bull"
	HealthBull       Key = "health_bull"
	HealthStrongBear Key = "health_strong_bear"
	HealthBear       Key = "health_bear"

	// Entry/exit timing
	TimingBestEntry      Key = "timing_best_entry"
	TimingOverextended   Key = "timing_overextended"
	TimingAccumulate     Key = "timing_accumulate"
	TimingWaitSignal     Key = "timing_wait_signal"
	TimingBounceSell     Key = "timing_bounce_sell"
	TimingOversoldBounce Key = "timing_oversold_bounce"
	TimingAvoidLong      Key = "timing_avoid_long"

	// Sentiment gauge
	GaugeExtremeGreed Key = "gauge_extreme_greed"
	GaugeGreed        Key = "gauge_greed"
	GaugeNeutral      Key = "gauge_neutral"
	GaugeFear         Key = "gauge_fear"
	GaugeExtremeFear  Key = "gauge_extreme_fear"

	// Fundamental classifications
	PECheap        Key = "pe_cheap"
	PEExpensive    Key = "pe_expensive"
	PEFair         Key = "pe_fair"
	PEGCheap       Key = "peg_cheap"
	PEGExpensive   Key = "peg_expensive"
	PEGReasonable  Key = "peg_reasonable"
	MarginHigh     Key = "margin_high"
	MarginGood     Key = "margin_good"
	MarginThin     Key = "margin_thin"
	ROEExcellent   Key = "roe_excellent"
	ROEStandard    Key = "roe_standard"
	ROELow         Key = "roe_low"
	NoFundamentals Key = "no_fundamentals"

	// Options strategies
	OptLongCall    Key = "opt_long_call"
	OptLongPut     Key = "opt_long_put"
	OptCoveredCall Key = "opt_covered_call"
	OptPutSpread   Key = "opt_put_spread"
	OptIronCondor  Key = "opt_iron_condor"

	OptLongCallReason    Key = "opt_long_call_reason"
	OptLongPutReason     Key = "opt_long_put_reason"
	OptCoveredCallReason Key = "opt_covered_call_reason"
	OptPutSpreadReason   Key = "opt_put_spread_reason"
	OptIronCondorReason  Key = "opt_iron_condor_reason"

	// Trade advice
	AdviceBuy  Key = "advice_buy"
	AdviceSell Key = "advice_sell"
	AdviceWait Key = "advice_wait"

	// Ledger messages (fmt templates)
	MsgBuyOK               Key = "msg_buy_ok"
	MsgSellOK              Key = "msg_sell_ok"
	MsgInsufficientBalance Key = "msg_insufficient_balance"
	MsgPositionNotFound    Key = "msg_position_not_found"
	MsgInsufficientQty     Key = "msg_insufficient_qty"
)

var tables = map[Locale]map[Key]string{
	EN: {
		HealthStrongBull: "Very good (Strong Bullish) - market is in a strong uptrend",
		HealthBull:       "Good (Bullish) - uptrend, currently consolidating",
		HealthStrongBear: "Bad (Strong Bearish) - market is in a clear downtrend",
		HealthBear:       "Caution (Bearish) - price is below the long-term average",

		TimingBestEntry:      "Best Entry - price pulled back inside an uptrend",
		TimingOverextended:   "Overextended - wait for a pullback before chasing",
		TimingAccumulate:     "Accumulate - mid-range price, partial entries are fine",
		TimingWaitSignal:     "Wait for a clearer signal",
		TimingBounceSell:     "Bounce Sell - price bounced inside a downtrend, short/take profit",
		TimingOversoldBounce: "Oversold Bounce risk - do not chase shorts here",
		TimingAvoidLong:      "Avoid Long - the market still carries high risk",

		GaugeExtremeGreed: "Extreme Greed (watch for a top)",
		GaugeGreed:        "Greed (market is getting greedy)",
		GaugeNeutral:      "Neutral",
		GaugeFear:         "Fear (market is afraid)",
		GaugeExtremeFear:  "Extreme Fear (accumulation window)",

		PECheap:        "Undervalued",
		PEExpensive:    "Overvalued",
		PEFair:         "Fair Value",
		PEGCheap:       "Cheap for Growth",
		PEGExpensive:   "Expensive for Growth",
		PEGReasonable:  "Reasonable",
		MarginHigh:     "High Efficiency",
		MarginGood:     "Good",
		MarginThin:     "Low Margin",
		ROEExcellent:   "Excellent",
		ROEStandard:    "Standard",
		ROELow:         "Low Return",
		NoFundamentals: "Insufficient fundamental data",

		OptLongCall:    "Open a Long Call 🟢",
		OptLongPut:     "Open a Long Put 🔴",
		OptCoveredCall: "Wait / Sell Covered Call ⚠️",
		OptPutSpread:   "Wait / Sell Put Spread ⚠️",
		OptIronCondor:  "Sideways market / Iron Condor 🦅",

		OptLongCallReason:    "Strong uptrend (price > EMA200) with bullish MACD; buy the upside momentum",
		OptLongPutReason:     "Strong downtrend (price < EMA200) with bearish MACD; buy the downside momentum",
		OptCoveredCallReason: "Uptrend losing steam; watch for a pullback or consolidation",
		OptPutSpreadReason:   "Downtrend fading; watch for a reversal or base building",
		OptIronCondorReason:  "Sideways trend; consider collecting premium",

		AdviceBuy:  "Scale in as price pulls back toward support",
		AdviceSell: "Wait for a bounce to short; never short into a strong uptrend",
		AdviceWait: "Volatile market; reduce position size",

		MsgBuyOK:               "Bought %s: %.0f shares",
		MsgSellOK:              "Sold %s. P/L: %.2f (%.2f%%)",
		MsgInsufficientBalance: "Insufficient balance",
		MsgPositionNotFound:    "Position not found",
		MsgInsufficientQty:     "Insufficient quantity to sell",
	},
	TH: {
		HealthStrongBull: "ดีมาก (Strong Bullish) - ตลาดเป็นขาขึ้นแข็งแกร่ง",
		HealthBull:       "ดี (Bullish) - ตลาดเป็นขาขึ้นแต่อยู่ในช่วงพักตัว",
		HealthStrongBear: "แย่ (Strong Bearish) - ตลาดเป็นขาลงชัดเจน",
		HealthBear:       "ระมัดระวัง (Bearish) - ราคาอยู่ต่ำกว่าเส้นค่าเฉลี่ย",

		TimingBestEntry:      "จังหวะดีมาก (Best Entry) - ราคาย่อตัวลงมาในเทรนด์ขาขึ้น",
		TimingOverextended:   "ไล่ราคาเกินไป (Overextended) - ควรรอให้ราคาย่อตัวก่อน",
		TimingAccumulate:     "สะสมได้ (Accumulate) - ราคากลางๆ เข้าซื้อได้บางส่วน",
		TimingWaitSignal:     "รอสัญญาณชัดเจนกว่านี้",
		TimingBounceSell:     "จังหวะ Short/ขายทำกำไร (Bounce Sell) - ราคาเด้งขึ้นมาในขาลง",
		TimingOversoldBounce: "ระวังการเด้งสวน (Oversold Bounce) - อย่าเพิ่ง Short ตาม",
		TimingAvoidLong:      "ไม่ควรลงทุนขาขึ้น (Avoid Long) - ตลาดยังมีความเสี่ยงสูง",

		GaugeExtremeGreed: "Extreme Greed (ระวังดอย)",
		GaugeGreed:        "Greed (ตลาดกำลังโลภ)",
		GaugeNeutral:      "Neutral",
		GaugeFear:         "Fear (ตลาดกลัว)",
		GaugeExtremeFear:  "Extreme Fear (จังหวะเก็บของ)",

		PECheap:        "ถูก (Undervalued)",
		PEExpensive:    "แพง (Overvalued)",
		PEFair:         "ราคาเหมาะสม (Fair Value)",
		PEGCheap:       "เติบโตดีเทียบกับราคา (Cheap for Growth)",
		PEGExpensive:   "ราคาโตเกินพื้นฐาน (Expensive for Growth)",
		PEGReasonable:  "สมเหตุสมผล (Reasonable)",
		MarginHigh:     "กำไรสูงมาก (High Efficiency)",
		MarginGood:     "กำไรดี (Good)",
		MarginThin:     "กำไรบาง (Low Margin)",
		ROEExcellent:   "ผู้บริหารเก่ง (Excellent)",
		ROEStandard:    "มาตรฐาน (Standard)",
		ROELow:         "ผลตอบแทนต่ำ (Low Return)",
		NoFundamentals: "ไม่มีข้อมูลพื้นฐานเพียงพอ (Insufficient Data)",

		OptLongCall:    "เปิดสถานะ Long Call 🟢",
		OptLongPut:     "เปิดสถานะ Long Put 🔴",
		OptCoveredCall: "รอ / ขาย Covered Call ⚠️",
		OptPutSpread:   "รอ / ขาย Put Spread ⚠️",
		OptIronCondor:  "ตลาดไซด์เวย์ / Iron Condor 🦅",

		OptLongCallReason:    "แนวโน้มขาขึ้นแข็งแกร่ง (ราคา > EMA200) และ MACD เป็นกระทิง ซื้อตามโมเมนตัมขาขึ้น",
		OptLongPutReason:     "แนวโน้มขาลงแข็งแกร่ง (ราคา < EMA200) และ MACD เป็นหมี ซื้อตามโมเมนตัมขาลง",
		OptCoveredCallReason: "ขาขึ้นเริ่มอ่อนกำลัง ระวังการย่อตัวหรือพักฐาน",
		OptPutSpreadReason:   "ขาลงเริ่มแผ่ว ระวังการกลับตัวหรือพักฐาน",
		OptIronCondorReason:  "แนวโน้มออกข้าง พิจารณาเก็บค่าพรีเมียม (Collecting Premium)",

		AdviceBuy:  "ควรแบ่งไม้ซื้อ (Scale In) เมื่อราคาย่อตัวลงมาที่แนวรับ",
		AdviceSell: "รอเด้งเพื่อ Short, อย่า Short สวนเทรนด์ขาขึ้นแรงๆ",
		AdviceWait: "ตลาดผันผวน ควรลดขนาด Position Size ลง",

		MsgBuyOK:               "ซื้อ %s จำนวน %.0f หุ้น สำเร็จ!",
		MsgSellOK:              "ขาย %s สำเร็จ! กำไร: %.2f (%.2f%%)",
		MsgInsufficientBalance: "ยอดเงินไม่พอ (Insufficient Balance)",
		MsgPositionNotFound:    "ไม่พบหุ้นในพอร์ต (Position not found)",
		MsgInsufficientQty:     "จำนวนหุ้นไม่พอขาย (Insufficient Quantity)",
	},
}

// T resolves key under locale. Unknown locales resolve against EN; a key
// missing from every table returns the key string itself.
func T(locale Locale, key Key) string {
	if table, ok := tables[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := tables[EN][key]; ok {
		return msg
	}
	return string(key)
}

// ParseLocale maps a config value to a supported locale, defaulting to EN.
func ParseLocale(s string) Locale {
	switch Locale(s) {
	case TH:
		return TH
	default:
		return EN
	}
}

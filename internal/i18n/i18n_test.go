package i18n

import "testing"

func TestLookupPerLocale(t *testing.T) {
	tests := []struct {
		locale Locale
		key    Key
		want   string
	}{
		{EN, GaugeNeutral, "Neutral"},
		{EN, MsgInsufficientBalance, "Insufficient balance"},
		{TH, MsgInsufficientBalance, "ยอดเงินไม่พอ (Insufficient Balance)"},
		{TH, HealthStrongBull, "ดีมาก (Strong Bullish) - ตลาดเป็นขาขึ้นแข็งแกร่ง"},
	}
	for _, tt := range tests {
		if got := T(tt.locale, tt.key); got != tt.want {
			t.Errorf("T(%s, %s) = %q, want %q", tt.locale, tt.key, got, tt.want)
		}
	}
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	if got := T(Locale("de"), PECheap); got != "Undervalued" {
		t.Errorf("T(de, PECheap) = %q, want English fallback", got)
	}
}

func TestMissingKeyReturnsKeyItself(t *testing.T) {
	if got := T(EN, Key("no_such_key")); got != "no_such_key" {
		t.Errorf("T(EN, no_such_key) = %q, want the key itself", got)
	}
	if got := T(TH, Key("no_such_key")); got != "no_such_key" {
		t.Errorf("T(TH, no_such_key) = %q, want the key itself", got)
	}
}

func TestEveryEnglishKeyHasThai(t *testing.T) {
	for key := range tables[EN] {
		if _, ok := tables[TH][key]; !ok {
			t.Errorf("key %s missing from the Thai table", key)
		}
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"th", TH},
		{"en", EN},
		{"", EN},
		{"fr", EN},
	}
	for _, tt := range tests {
		if got := ParseLocale(tt.in); got != tt.want {
			t.Errorf("ParseLocale(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

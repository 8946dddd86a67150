package filter

import (
	"net/url"
	"testing"
)

func FuzzQueryEncode(f *testing.F) {
	f.Add("Last 30 Days", "All ICU Units", "")
	f.Add("All Time", "MICU", "Critical")
	f.Add("a&b=c", "%zz", "+ +")
	f.Add("", "", "\x00")

	f.Fuzz(func(t *testing.T, dateRange, unit, value string) {
		ov := Override{}
		if value != "" {
			ov = Override{Key: KeyAcuityLevel, Value: value}
		}
		q := Build(Base{DateRange: dateRange, Unit: unit}, ov)

		parsed, err := url.ParseQuery(q.Encode())
		if err != nil {
			t.Fatalf("Encode produced an unparseable query %q: %v", q.Encode(), err)
		}
		if got := parsed.Get(KeyDateRange); got != dateRange {
			t.Errorf("date_range = %q, want %q", got, dateRange)
		}
		if got := parsed.Get(KeyUnit); got != unit {
			t.Errorf("unit = %q, want %q", got, unit)
		}
		if value != "" && parsed.Get(KeyAcuityLevel) != value {
			t.Errorf("acuity_level = %q, want %q", parsed.Get(KeyAcuityLevel), value)
		}
		if len(parsed) != len(q) {
			t.Errorf("got %d keys, want %d", len(parsed), len(q))
		}
	})
}

package format

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const todayLayout = "03:04 PM"

// ReadableTime renders t relative to now. Moments on the same calendar day as
// now are shown as "Today, hh:mm AM/PM"; everything else as relative text such
// as "3 days ago".
func ReadableTime(t, now time.Time) string {
	local := t.In(now.Location())
	ty, tm, td := local.Date()
	ny, nm, nd := now.Date()
	if ty == ny && tm == nm && td == nd {
		return "Today, " + local.Format(todayLayout)
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Money renders amount as US dollars with thousands separators and two decimals.
func Money(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", amount.Round(2).InexactFloat64())
}

// Count renders integer with thousands separators.
func Count(n int64) string {
	return humanize.Comma(n)
}

package escrow

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalancePrecision is the number of decimal places balances are rendered with.
const BalancePrecision = 4

// CalculateBalance projects a lock's balance to the current wall-clock second.
func CalculateBalance(bias, slope string, timestamp int64) string {
	return CalculateBalanceAt(bias, slope, timestamp, time.Now())
}

// CalculateBalanceAt returns bias - slope*(now - timestamp) with now truncated to
// whole seconds. The result is not clamped and may be negative once the lock
// has fully decayed. Inputs that are not decimal strings count as zero.
func CalculateBalanceAt(bias, slope string, timestamp int64, now time.Time) string {
	elapsed := decimal.NewFromInt(now.Unix() - timestamp)
	balance := parseDecimal(bias).Sub(parseDecimal(slope).Mul(elapsed))
	return balance.StringFixed(BalancePrecision)
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

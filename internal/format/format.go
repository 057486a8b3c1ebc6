// Package format provides pure display formatting for company records.
package format

import (
	"fmt"
	"strings"
)

// Currency renders an amount in whole currency units as a compact
// human-readable string:
//   - >= 1B: one decimal, e.g. "$1.5B"
//   - >= 1M: no decimal when evenly divisible, e.g. "$45M", else "$3.2M"
//   - >= 1K: rounded to whole thousands, e.g. "$750K"
//   - below 1K: bare amount, e.g. "$500"
func Currency(amount int64) string {
	switch {
	case amount >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", float64(amount)/1_000_000_000)
	case amount >= 1_000_000:
		if amount%1_000_000 == 0 {
			return fmt.Sprintf("$%dM", amount/1_000_000)
		}
		return fmt.Sprintf("$%.1fM", float64(amount)/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("$%.0fK", float64(amount)/1_000)
	default:
		return fmt.Sprintf("$%d", amount)
	}
}

// FundingHistory joins round labels in chronological order with an arrow
// separator. An empty history yields an empty string.
func FundingHistory(rounds []string) string {
	return strings.Join(rounds, " → ")
}

package insight

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Display formatting for metric values. Formatting happens exactly once
// at assembly; metrics maps carry final strings.

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func formatCurrency(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 0)
}

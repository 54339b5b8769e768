// README: Tiered token pricing for usage-cost accounting.
package trip

import "math"

// Pricing tiers are on the raw token count of the call, not request volume.
// The low tier is inclusive: exactly tierThreshold tokens is still cheap;
// one token more reprices the whole count.
const (
	tierThreshold = 128000

	promptLowUSDPerMillion      = 0.075
	promptHighUSDPerMillion     = 0.15
	completionLowUSDPerMillion  = 0.30
	completionHighUSDPerMillion = 0.60
)

// CostUSD derives the call cost from token counts, rounded to 6 decimal
// places. Pure function: identical inputs always price identically.
func CostUSD(promptTokens, completionTokens int) float64 {
	promptRate := promptLowUSDPerMillion
	if promptTokens > tierThreshold {
		promptRate = promptHighUSDPerMillion
	}
	completionRate := completionLowUSDPerMillion
	if completionTokens > tierThreshold {
		completionRate = completionHighUSDPerMillion
	}

	cost := float64(promptTokens)*promptRate/1e6 + float64(completionTokens)*completionRate/1e6
	return math.Round(cost*1e6) / 1e6
}

package entities

// ScorePerTier is the linear multiplier applied to an evidence tier. Tier 4
// reaches the score ceiling of 100. Consumers depend on the numeric range, so
// the table and the multiplier are fixed.
const ScorePerTier = 25

// Evidence tiers: higher means more financially credible.
var evidenceTiers = map[string]int{
	"PAYMENT_SUCCEEDED":    1,
	"PAYMENT_VERIFIED":     1,
	"ORDER_TAGGED":         2,
	"DELIVERY_DISPATCHED":  3,
	"PROOF_MINTED":         3,
	"SETTLEMENT_CONFIRMED": 4,
}

// EvidenceTier returns the credibility tier of an event type, 0 when unknown.
func EvidenceTier(eventType string) int {
	return evidenceTiers[eventType]
}

// SettlementScore converts a tier into its 0..100 score.
func SettlementScore(tier int) int {
	return tier * ScorePerTier
}

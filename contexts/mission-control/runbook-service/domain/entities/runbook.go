package entities

import "sort"

// Runbook is a human-readable remediation guide for one reason code.
type Runbook struct {
	Code  string
	Title string
	Steps []string
}

var runbooks = map[string]Runbook{
	"webhook_invalid": {
		Code:  "webhook_invalid",
		Title: "Webhook signature invalid",
		Steps: []string{
			"Confirm webhook secret matches provider settings.",
			"Rotate webhook secret and update Secret Manager / env var.",
			"Replay webhook event from provider dashboard.",
		},
	},
	"auth_failed": {
		Code:  "auth_failed",
		Title: "Authorization failed",
		Steps: []string{
			"Confirm API token scopes (Shopify Admin, MoR provider).",
			"Rotate token and redeploy service.",
			"Verify env vars are present at runtime (not local-only).",
		},
	},
	"tag_failed": {
		Code:  "tag_failed",
		Title: "Shopify tagging failed",
		Steps: []string{
			"Check SHOPIFY_ADMIN_TOKEN scopes: write_orders/read_orders.",
			"Confirm SHOPIFY_STORE_URL is correct (myshop.myshopify.com).",
			"Retry tagging with exponential backoff; emit FAILURE envelope on final try.",
		},
	},
	"delivery_failed": {
		Code:  "delivery_failed",
		Title: "Delivery dispatch failed",
		Steps: []string{
			"Verify delivery asset exists and URL is reachable.",
			"Check storage permissions (GCS signed URL or public object).",
			"Re-dispatch delivery and emit DELIVERY_DISPATCHED once confirmed.",
		},
	},
	"payout_pending": {
		Code:  "payout_pending",
		Title: "Settlement pending",
		Steps: []string{
			"Record payout expected date in meta.payout_expected_at.",
			"Run daily payout scan job.",
			"Emit SETTLEMENT_CONFIRMED once payout reference is observed.",
		},
	},
}

// Lookup returns the runbook for a reason code.
func Lookup(code string) (Runbook, bool) {
	runbook, ok := runbooks[code]
	return runbook, ok
}

// KnownCodes lists every registered reason code in stable order.
func KnownCodes() []string {
	codes := make([]string, 0, len(runbooks))
	for code := range runbooks {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

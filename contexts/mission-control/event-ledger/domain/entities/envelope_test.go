package entities

import (
	"errors"
	"testing"

	domainerrors "flexyfins/contexts/mission-control/event-ledger/domain/errors"
)

func TestNewEnvelopeNormalizesStatusAndProofRef(t *testing.T) {
	env, err := NewEnvelope("VAL-42", "PAYMENT_VERIFIED", "verified", "", nil)
	if err != nil {
		t.Fatalf("expected valid envelope, got %v", err)
	}
	if env.Status != "VERIFIED" {
		t.Fatalf("expected uppercased status, got %q", env.Status)
	}
	if env.ProofRef != "" {
		t.Fatalf("expected empty proof_ref, got %q", env.ProofRef)
	}
}

func TestNewEnvelopeRejectsMalformedMissionID(t *testing.T) {
	for _, missionID := range []string{"", "VAL-", "val-42", "GD-42", "VAL-42x"} {
		if _, err := NewEnvelope(missionID, "MISSION_STARTED", "OK", "", nil); !errors.Is(err, domainerrors.ErrInvalidMissionID) {
			t.Fatalf("expected ErrInvalidMissionID for %q, got %v", missionID, err)
		}
	}
}

func TestNewEnvelopeRejectsMissingFields(t *testing.T) {
	if _, err := NewEnvelope("VAL-1", "", "OK", "", nil); !errors.Is(err, domainerrors.ErrInvalidEnvelope) {
		t.Fatalf("expected ErrInvalidEnvelope for empty event_type, got %v", err)
	}
	if _, err := NewEnvelope("VAL-1", "MISSION_STARTED", "  ", "", nil); !errors.Is(err, domainerrors.ErrInvalidEnvelope) {
		t.Fatalf("expected ErrInvalidEnvelope for blank status, got %v", err)
	}
}

func TestDedupKeyTreatsAbsentAndEmptyProofRefAlike(t *testing.T) {
	a, err := NewEnvelope("VAL-7", "ORDER_TAGGED", "PENDING", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewEnvelope("VAL-7", "ORDER_TAGGED", "PENDING", "  ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.SameDedupKey(b) {
		t.Fatalf("expected identical dedup keys, got %q and %q", a.DedupKey(), b.DedupKey())
	}
}

func TestFinalStatusSet(t *testing.T) {
	for _, status := range []string{"VERIFIED", "COMPLETED", "SETTLED", "OK"} {
		if !IsFinalStatus(status) {
			t.Fatalf("expected %s to be final", status)
		}
	}
	for _, status := range []string{"PENDING", "FAILED", "verified", ""} {
		if IsFinalStatus(status) {
			t.Fatalf("expected %s to be non-final", status)
		}
	}
}

func TestEvidenceTierTable(t *testing.T) {
	cases := map[string]int{
		"PAYMENT_SUCCEEDED":    1,
		"PAYMENT_VERIFIED":     1,
		"ORDER_TAGGED":         2,
		"DELIVERY_DISPATCHED":  3,
		"PROOF_MINTED":         3,
		"SETTLEMENT_CONFIRMED": 4,
		"MISSION_STARTED":      0,
		"":                     0,
	}
	for eventType, tier := range cases {
		if got := EvidenceTier(eventType); got != tier {
			t.Fatalf("tier for %q: expected %d, got %d", eventType, tier, got)
		}
	}
}

func TestSettlementScoreIsLinearInTier(t *testing.T) {
	for tier := 0; tier <= 4; tier++ {
		if got := SettlementScore(tier); got != tier*25 {
			t.Fatalf("score for tier %d: expected %d, got %d", tier, tier*25, got)
		}
	}
	if SettlementScore(EvidenceTier("PAYMENT_VERIFIED")) >= SettlementScore(EvidenceTier("SETTLEMENT_CONFIRMED")) {
		t.Fatalf("expected scores to be monotonic in tier")
	}
}

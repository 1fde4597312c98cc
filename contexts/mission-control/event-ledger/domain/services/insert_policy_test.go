package services

import (
	"testing"

	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
)

func envelope(status string) entities.Envelope {
	return entities.Envelope{
		MissionID: "VAL-1",
		EventType: "ORDER_TAGGED",
		Status:    status,
		ProofRef:  "",
	}
}

func TestDecideInsertAppendsWhenNoExistingRow(t *testing.T) {
	if got := DecideInsert(nil, envelope("PENDING")); got != DecisionAppend {
		t.Fatalf("expected append on empty key, got %v", got)
	}
}

func TestDecideInsertSuppressesDuplicateStatus(t *testing.T) {
	latest := envelope("PENDING")
	if got := DecideInsert(&latest, envelope("PENDING")); got != DecisionDuplicate {
		t.Fatalf("expected duplicate suppression, got %v", got)
	}
}

func TestDecideInsertFreezesAfterFinalStatus(t *testing.T) {
	for _, status := range entities.FinalStatusList() {
		latest := envelope(status)
		if got := DecideInsert(&latest, envelope("FAILED")); got != DecisionFrozen {
			t.Fatalf("expected frozen key after %s, got %v", status, got)
		}
	}
}

func TestDecideInsertAllowsNonFinalProgression(t *testing.T) {
	latest := envelope("PENDING")
	if got := DecideInsert(&latest, envelope("VERIFIED")); got != DecisionAppend {
		t.Fatalf("expected progression append, got %v", got)
	}

	latest = envelope("PENDING")
	if got := DecideInsert(&latest, envelope("FAILED")); got != DecisionAppend {
		t.Fatalf("expected non-final to non-final append, got %v", got)
	}
}

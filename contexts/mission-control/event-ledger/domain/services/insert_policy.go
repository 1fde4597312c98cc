package services

import (
	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
)

type InsertDecision int

const (
	// DecisionAppend stores the envelope as a new fact.
	DecisionAppend InsertDecision = iota
	// DecisionDuplicate suppresses an envelope whose status matches the
	// latest row for the same dedup key.
	DecisionDuplicate
	// DecisionFrozen suppresses any envelope arriving after a final status
	// was recorded for the dedup key.
	DecisionFrozen
)

// DecideInsert applies the dedup/finality rule against the latest existing
// row for the incoming envelope's dedup key. latest is nil when no row for
// the key exists. Callers must evaluate the decision and the append inside
// one storage transaction scoped to the key.
func DecideInsert(latest *entities.Envelope, incoming entities.Envelope) InsertDecision {
	if latest == nil {
		return DecisionAppend
	}
	if latest.Status == incoming.Status {
		return DecisionDuplicate
	}
	if entities.IsFinalStatus(latest.Status) {
		return DecisionFrozen
	}
	return DecisionAppend
}

package ports

import (
	"context"
	"time"

	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
	contractsv1 "flexyfins/contracts/gen/events/v1"
)

// AppendedEvent is the outbound integration payload persisted to outbox when
// an envelope is appended. Suppressed inserts produce no outbox row.
type AppendedEvent struct {
	EventID      string
	EventType    string
	MissionID    string
	LedgerEvent  string
	Status       string
	ProofRef     string
	PartitionKey string
	OccurredAt   time.Time
}

// LedgerRepository owns envelope persistence and the transaction boundary for
// inserts.
type LedgerRepository interface {
	// InsertEnvelope must evaluate the dedup/finality decision and, on
	// append, persist the row together with its outbox event as one atomic
	// unit scoped to the envelope's dedup key. It reports whether a new row
	// was appended; suppression is a normal outcome, not an error.
	InsertEnvelope(ctx context.Context, env entities.Envelope, event AppendedEvent) (bool, error)
}

// Summary aggregates across all stored rows, not deduplicated by mission.
type Summary struct {
	Total int
	OK    int
	Fail  int
}

// LedgerReader is the read side of the ledger. Reads need only snapshot
// consistency and run without locking against inserts.
type LedgerReader interface {
	SummaryCounts(ctx context.Context) (Summary, error)
	// LatestPerMission returns at most limit rows, exactly one per distinct
	// mission: the row with maximum ts, ties broken by highest row id.
	// Ordered by ts descending.
	LatestPerMission(ctx context.Context, limit int) ([]entities.Envelope, error)
}

// Clock allows deterministic testing of timestamp assignment.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts outbox event identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// OutboxMessage is a row ready to relay from the ledger outbox.
type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// EventPublisher publishes canonical envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

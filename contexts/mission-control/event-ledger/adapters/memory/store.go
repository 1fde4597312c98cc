package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	application "flexyfins/contexts/mission-control/event-ledger/application"
	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
	domainerrors "flexyfins/contexts/mission-control/event-ledger/domain/errors"
	"flexyfins/contexts/mission-control/event-ledger/domain/services"
	"flexyfins/contexts/mission-control/event-ledger/ports"
)

// Store is an in-memory adapter implementing the ledger ports for local
// runtime and tests. It is not intended as production persistence. The mutex
// held across decide+append gives the same per-dedup-key serializability the
// Postgres adapter gets from its advisory lock.
type Store struct {
	mu          sync.RWMutex
	rows        []entities.Envelope
	sequence    int64
	idSequence  uint64
	outbox      map[string]ports.OutboxMessage
	outboxOrder []string
	outboxSent  map[string]time.Time
	logger      *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		outbox:      make(map[string]ports.OutboxMessage),
		outboxOrder: make([]string, 0),
		outboxSent:  make(map[string]time.Time),
		logger:      application.ResolveLogger(logger),
	}
}

func (s *Store) InsertEnvelope(_ context.Context, env entities.Envelope, event ports.AppendedEvent) (bool, error) {
	payload, err := buildAppendedPayload(event)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *entities.Envelope
	for i := range s.rows {
		row := s.rows[i]
		if !row.SameDedupKey(env) {
			continue
		}
		if latest == nil || laterRow(row, *latest) {
			copied := row
			latest = &copied
		}
	}

	if services.DecideInsert(latest, env) != services.DecisionAppend {
		return false, nil
	}

	// A failed insert must leave no partial state.
	if _, exists := s.outbox[event.EventID]; exists {
		s.logger.Error("outbox event id collision",
			"event", "mission_ledger_outbox_id_collision",
			"module", "mission-control/event-ledger",
			"layer", "adapter",
			"event_id", event.EventID,
		)
		return false, domainerrors.ErrRepositoryInvariantBroke
	}

	s.sequence++
	env.Seq = s.sequence
	env.Ts = env.Ts.UTC()
	env.Meta = copyMeta(env.Meta)
	s.rows = append(s.rows, env)

	s.outbox[event.EventID] = ports.OutboxMessage{
		OutboxID:     event.EventID,
		EventType:    event.EventType,
		PartitionKey: event.PartitionKey,
		Payload:      payload,
		CreatedAt:    event.OccurredAt.UTC(),
	}
	s.outboxOrder = append(s.outboxOrder, event.EventID)

	return true, nil
}

func (s *Store) SummaryCounts(_ context.Context) (ports.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := ports.Summary{Total: len(s.rows)}
	for _, row := range s.rows {
		if entities.IsFinalStatus(row.Status) {
			summary.OK++
		}
	}
	summary.Fail = summary.Total - summary.OK
	return summary, nil
}

func (s *Store) LatestPerMission(_ context.Context, limit int) ([]entities.Envelope, error) {
	if limit < 1 {
		limit = 1
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	latestByMission := make(map[string]entities.Envelope)
	for _, row := range s.rows {
		current, ok := latestByMission[row.MissionID]
		if !ok || laterRow(row, current) {
			latestByMission[row.MissionID] = row
		}
	}

	items := make([]entities.Envelope, 0, len(latestByMission))
	for _, row := range latestByMission {
		items = append(items, row)
	}
	sort.Slice(items, func(i, j int) bool {
		return laterRow(items[i], items[j])
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.OutboxMessage, 0, limit)
	for _, outboxID := range s.outboxOrder {
		if _, sent := s.outboxSent[outboxID]; sent {
			continue
		}
		items = append(items, s.outbox[outboxID])
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxSent(_ context.Context, outboxID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.outbox[outboxID]; !ok {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	s.outboxSent[outboxID] = sentAt.UTC()
	return nil
}

// Now implements ports.Clock.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// NewID implements ports.IDGenerator with deterministic test-friendly ids.
func (s *Store) NewID(_ context.Context) (string, error) {
	value := atomic.AddUint64(&s.idSequence, 1)
	return fmt.Sprintf("ledger-%d", value), nil
}

// laterRow orders by ts, ties broken by sequence. This is the same total
// order the Postgres adapter applies with (ts DESC, id DESC).
func laterRow(a, b entities.Envelope) bool {
	if a.Ts.Equal(b.Ts) {
		return a.Seq > b.Seq
	}
	return a.Ts.After(b.Ts)
}

func copyMeta(meta map[string]any) map[string]any {
	copied := make(map[string]any, len(meta))
	for key, value := range meta {
		copied[key] = value
	}
	return copied
}

func buildAppendedPayload(event ports.AppendedEvent) ([]byte, error) {
	data, err := json.Marshal(map[string]string{
		"mission_id": event.MissionID,
		"event_type": event.LedgerEvent,
		"status":     event.Status,
		"proof_ref":  event.ProofRef,
	})
	if err != nil {
		return nil, err
	}
	return json.Marshal(ports.EventEnvelope{
		EventID:          event.EventID,
		EventType:        event.EventType,
		OccurredAt:       event.OccurredAt.UTC(),
		SourceService:    "mission-event-ledger",
		SchemaVersion:    1,
		PartitionKeyPath: "mission_id",
		PartitionKey:     event.PartitionKey,
		Data:             data,
	})
}

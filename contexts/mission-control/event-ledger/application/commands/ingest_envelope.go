package commands

import (
	"context"
	"log/slog"
	"time"

	application "flexyfins/contexts/mission-control/event-ledger/application"
	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
	"flexyfins/contexts/mission-control/event-ledger/ports"
)

const appendedEventType = "mission.envelope_appended"

type IngestEnvelopeCommand struct {
	MissionID string
	EventType string
	Status    string
	ProofRef  *string
	Meta      map[string]any
}

type IngestEnvelopeResult struct {
	Envelope entities.Envelope
	Inserted bool
}

type IngestEnvelopeUseCase struct {
	Ledger      ports.LedgerRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute runs the ingest workflow in this order:
// 1) envelope validation and normalization
// 2) server timestamp assignment
// 3) atomic dedup/finality decision and append + outbox persistence.
//
// A suppressed envelope (duplicate or frozen key) returns Inserted=false with
// a nil error; callers must not treat it as failure.
func (u IngestEnvelopeUseCase) Execute(ctx context.Context, cmd IngestEnvelopeCommand) (IngestEnvelopeResult, error) {
	logger := application.ResolveLogger(u.Logger)

	proofRef := ""
	if cmd.ProofRef != nil {
		proofRef = *cmd.ProofRef
	}
	env, err := entities.NewEnvelope(cmd.MissionID, cmd.EventType, cmd.Status, proofRef, cmd.Meta)
	if err != nil {
		logger.Warn("envelope rejected",
			"event", "ingest_envelope_rejected",
			"module", "mission-control/event-ledger",
			"layer", "application",
			"mission_id", cmd.MissionID,
			"event_type", cmd.EventType,
			"error", err.Error(),
		)
		return IngestEnvelopeResult{}, err
	}
	env.Ts = u.now()

	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return IngestEnvelopeResult{}, err
	}
	event := ports.AppendedEvent{
		EventID:      eventID,
		EventType:    appendedEventType,
		MissionID:    env.MissionID,
		LedgerEvent:  env.EventType,
		Status:       env.Status,
		ProofRef:     env.ProofRef,
		PartitionKey: env.MissionID,
		OccurredAt:   env.Ts,
	}

	inserted, err := u.Ledger.InsertEnvelope(ctx, env, event)
	if err != nil {
		logger.Error("ingest envelope failed on write transaction",
			"event", "ingest_envelope_write_failed",
			"module", "mission-control/event-ledger",
			"layer", "application",
			"mission_id", env.MissionID,
			"event_type", env.EventType,
			"proof_ref", env.ProofRef,
			"error", err.Error(),
		)
		return IngestEnvelopeResult{}, err
	}

	if inserted {
		logger.Info("envelope appended",
			"event", "ingest_envelope_appended",
			"module", "mission-control/event-ledger",
			"layer", "application",
			"mission_id", env.MissionID,
			"event_type", env.EventType,
			"status", env.Status,
			"proof_ref", env.ProofRef,
		)
	} else {
		logger.Info("envelope suppressed",
			"event", "ingest_envelope_suppressed",
			"module", "mission-control/event-ledger",
			"layer", "application",
			"mission_id", env.MissionID,
			"event_type", env.EventType,
			"status", env.Status,
			"proof_ref", env.ProofRef,
		)
	}

	return IngestEnvelopeResult{Envelope: env, Inserted: inserted}, nil
}

func (u IngestEnvelopeUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

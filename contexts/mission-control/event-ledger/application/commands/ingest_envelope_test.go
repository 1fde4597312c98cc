package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
	domainerrors "flexyfins/contexts/mission-control/event-ledger/domain/errors"
	"flexyfins/contexts/mission-control/event-ledger/ports"
)

type testLedger struct {
	lastEnvelope entities.Envelope
	lastEvent    ports.AppendedEvent
	inserted     bool
	err          error
	calls        int
}

func (l *testLedger) InsertEnvelope(_ context.Context, env entities.Envelope, event ports.AppendedEvent) (bool, error) {
	l.calls++
	l.lastEnvelope = env
	l.lastEvent = event
	return l.inserted, l.err
}

type testIDGenerator struct{}

func (testIDGenerator) NewID(_ context.Context) (string, error) {
	return "evt-fixed", nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestIngestEnvelopeNormalizesBeforeInsert(t *testing.T) {
	ledger := &testLedger{inserted: true}
	clock := fixedClock{now: time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)}
	useCase := IngestEnvelopeUseCase{
		Ledger:      ledger,
		Clock:       clock,
		IDGenerator: testIDGenerator{},
	}

	result, err := useCase.Execute(context.Background(), IngestEnvelopeCommand{
		MissionID: "VAL-42",
		EventType: "PAYMENT_VERIFIED",
		Status:    "verified",
		ProofRef:  nil,
	})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if !result.Inserted {
		t.Fatalf("expected inserted result")
	}
	if ledger.lastEnvelope.Status != "VERIFIED" {
		t.Fatalf("expected normalized status, got %q", ledger.lastEnvelope.Status)
	}
	if ledger.lastEnvelope.ProofRef != "" {
		t.Fatalf("expected nil proof_ref normalized to empty, got %q", ledger.lastEnvelope.ProofRef)
	}
	if !ledger.lastEnvelope.Ts.Equal(clock.now) {
		t.Fatalf("expected server-assigned ts %v, got %v", clock.now, ledger.lastEnvelope.Ts)
	}
	if ledger.lastEvent.EventID != "evt-fixed" || ledger.lastEvent.PartitionKey != "VAL-42" {
		t.Fatalf("unexpected outbox event: %+v", ledger.lastEvent)
	}
}

func TestIngestEnvelopeRejectsBeforeStorage(t *testing.T) {
	ledger := &testLedger{inserted: true}
	useCase := IngestEnvelopeUseCase{
		Ledger:      ledger,
		Clock:       fixedClock{now: time.Now().UTC()},
		IDGenerator: testIDGenerator{},
	}

	_, err := useCase.Execute(context.Background(), IngestEnvelopeCommand{
		MissionID: "ORDER-42",
		EventType: "MISSION_STARTED",
		Status:    "OK",
	})
	if !errors.Is(err, domainerrors.ErrInvalidMissionID) {
		t.Fatalf("expected ErrInvalidMissionID, got %v", err)
	}
	if ledger.calls != 0 {
		t.Fatalf("expected no storage call on validation failure, got %d", ledger.calls)
	}
}

func TestIngestEnvelopeSuppressionIsNotAnError(t *testing.T) {
	ledger := &testLedger{inserted: false}
	useCase := IngestEnvelopeUseCase{
		Ledger:      ledger,
		Clock:       fixedClock{now: time.Now().UTC()},
		IDGenerator: testIDGenerator{},
	}

	result, err := useCase.Execute(context.Background(), IngestEnvelopeCommand{
		MissionID: "VAL-1",
		EventType: "ORDER_TAGGED",
		Status:    "COMPLETED",
	})
	if err != nil {
		t.Fatalf("suppressed ingest must not error, got %v", err)
	}
	if result.Inserted {
		t.Fatalf("expected inserted=false on suppression")
	}
}

func TestIngestEnvelopeSurfacesStorageFailure(t *testing.T) {
	ledger := &testLedger{err: errors.New("connection reset")}
	useCase := IngestEnvelopeUseCase{
		Ledger:      ledger,
		Clock:       fixedClock{now: time.Now().UTC()},
		IDGenerator: testIDGenerator{},
	}

	_, err := useCase.Execute(context.Background(), IngestEnvelopeCommand{
		MissionID: "VAL-1",
		EventType: "ORDER_TAGGED",
		Status:    "PENDING",
	})
	if err == nil {
		t.Fatalf("expected storage error to surface")
	}
}

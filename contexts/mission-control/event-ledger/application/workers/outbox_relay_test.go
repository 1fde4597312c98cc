package workers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"flexyfins/contexts/mission-control/event-ledger/ports"
)

type testOutbox struct {
	pending []ports.OutboxMessage
	sent    []string
}

func (o *testOutbox) ListPendingOutbox(_ context.Context, _ int) ([]ports.OutboxMessage, error) {
	return o.pending, nil
}

func (o *testOutbox) MarkOutboxSent(_ context.Context, outboxID string, _ time.Time) error {
	o.sent = append(o.sent, outboxID)
	return nil
}

type testPublisher struct {
	published []ports.EventEnvelope
	topics    []string
}

func (p *testPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	p.topics = append(p.topics, topic)
	p.published = append(p.published, event)
	return nil
}

func TestOutboxRelayPublishesAndAcks(t *testing.T) {
	payload, err := json.Marshal(ports.EventEnvelope{
		EventID:   "evt-1",
		EventType: "mission.envelope_appended",
	})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}

	outbox := &testOutbox{pending: []ports.OutboxMessage{{
		OutboxID:  "evt-1",
		EventType: "mission.envelope_appended",
		Payload:   payload,
	}}}
	publisher := &testPublisher{}
	relay := OutboxRelay{
		Outbox:    outbox,
		Publisher: publisher,
		Topic:     "mission.envelopes",
	}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay cycle failed: %v", err)
	}
	if len(publisher.published) != 1 || publisher.published[0].EventID != "evt-1" {
		t.Fatalf("expected evt-1 published, got %+v", publisher.published)
	}
	if publisher.topics[0] != "mission.envelopes" {
		t.Fatalf("expected configured topic, got %s", publisher.topics[0])
	}
	if len(outbox.sent) != 1 || outbox.sent[0] != "evt-1" {
		t.Fatalf("expected evt-1 acked, got %v", outbox.sent)
	}
}

func TestOutboxRelayEmptyCycleIsNoop(t *testing.T) {
	relay := OutboxRelay{
		Outbox:    &testOutbox{},
		Publisher: &testPublisher{},
	}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("empty cycle failed: %v", err)
	}
}

package queries

import (
	"context"
	"testing"
	"time"

	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
	"flexyfins/contexts/mission-control/event-ledger/ports"
)

type testReader struct {
	summary   ports.Summary
	items     []entities.Envelope
	lastLimit int
}

func (r *testReader) SummaryCounts(_ context.Context) (ports.Summary, error) {
	return r.summary, nil
}

func (r *testReader) LatestPerMission(_ context.Context, limit int) ([]entities.Envelope, error) {
	r.lastLimit = limit
	return r.items, nil
}

func TestClampLimit(t *testing.T) {
	cases := map[int]int{
		0:    20,
		-5:   1,
		1:    1,
		50:   50,
		200:  200,
		5000: 200,
	}
	for input, expected := range cases {
		if got := ClampLimit(input); got != expected {
			t.Fatalf("ClampLimit(%d): expected %d, got %d", input, expected, got)
		}
	}
}

func TestLatestPerMissionPassesClampedLimit(t *testing.T) {
	reader := &testReader{}
	useCase := LatestPerMissionUseCase{Ledger: reader}

	if _, err := useCase.Execute(context.Background(), LatestPerMissionQuery{Limit: -1}); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if reader.lastLimit != 1 {
		t.Fatalf("expected clamped limit 1, got %d", reader.lastLimit)
	}
}

func TestProofMatrixAnnotatesTiers(t *testing.T) {
	ts := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	reader := &testReader{items: []entities.Envelope{
		{Seq: 2, Ts: ts, MissionID: "VAL-2", EventType: "SETTLEMENT_CONFIRMED", Status: "SETTLED"},
		{Seq: 1, Ts: ts, MissionID: "VAL-1", EventType: "UNKNOWN_EVENT", Status: "PENDING"},
	}}
	useCase := ProofMatrixUseCase{Ledger: reader}

	result, err := useCase.Execute(context.Background(), ProofMatrixQuery{Limit: 10})
	if err != nil {
		t.Fatalf("proof matrix failed: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result.Items))
	}
	if result.Items[0].Tier != 4 {
		t.Fatalf("expected settlement tier 4, got %d", result.Items[0].Tier)
	}
	if result.Items[1].Tier != 0 {
		t.Fatalf("expected unknown event tier 0, got %d", result.Items[1].Tier)
	}
}

func TestSettlementScoreAppliesMultiplier(t *testing.T) {
	ts := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	reader := &testReader{items: []entities.Envelope{
		{Seq: 3, Ts: ts, MissionID: "VAL-3", EventType: "SETTLEMENT_CONFIRMED", Status: "SETTLED"},
		{Seq: 2, Ts: ts, MissionID: "VAL-2", EventType: "DELIVERY_DISPATCHED", Status: "COMPLETED"},
		{Seq: 1, Ts: ts, MissionID: "VAL-1", EventType: "PAYMENT_VERIFIED", Status: "VERIFIED"},
	}}
	useCase := SettlementScoreUseCase{Ledger: reader}

	result, err := useCase.Execute(context.Background(), SettlementScoreQuery{Limit: 10})
	if err != nil {
		t.Fatalf("settlement score failed: %v", err)
	}
	expected := []int{100, 75, 25}
	for i, row := range result.Items {
		if row.Score != expected[i] {
			t.Fatalf("row %d: expected score %d, got %d", i, expected[i], row.Score)
		}
		if row.Score != row.Tier*entities.ScorePerTier {
			t.Fatalf("row %d: score %d is not tier %d * %d", i, row.Score, row.Tier, entities.ScorePerTier)
		}
	}
}

func TestSummaryDerivesFail(t *testing.T) {
	reader := &testReader{summary: ports.Summary{Total: 5, OK: 3, Fail: 2}}
	useCase := SummaryUseCase{Ledger: reader}

	result, err := useCase.Execute(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if result.Total != result.OK+result.Fail {
		t.Fatalf("expected total = ok + fail, got %+v", result)
	}
}

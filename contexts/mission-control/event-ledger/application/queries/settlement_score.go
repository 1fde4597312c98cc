package queries

import (
	"context"
	"log/slog"

	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
	"flexyfins/contexts/mission-control/event-ledger/ports"
)

// SettlementScoreRow extends the proof matrix with the linear score.
type SettlementScoreRow struct {
	Envelope entities.Envelope
	Tier     int
	Score    int
}

type SettlementScoreQuery struct {
	Limit int
}

type SettlementScoreResult struct {
	Items []SettlementScoreRow
}

type SettlementScoreUseCase struct {
	Ledger ports.LedgerReader
	Logger *slog.Logger
}

func (u SettlementScoreUseCase) Execute(ctx context.Context, query SettlementScoreQuery) (SettlementScoreResult, error) {
	matrix := ProofMatrixUseCase{Ledger: u.Ledger, Logger: u.Logger}
	result, err := matrix.Execute(ctx, ProofMatrixQuery{Limit: query.Limit})
	if err != nil {
		return SettlementScoreResult{}, err
	}

	rows := make([]SettlementScoreRow, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, SettlementScoreRow{
			Envelope: item.Envelope,
			Tier:     item.Tier,
			Score:    entities.SettlementScore(item.Tier),
		})
	}
	return SettlementScoreResult{Items: rows}, nil
}

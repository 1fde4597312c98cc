package queries

import (
	"context"
	"log/slog"

	application "flexyfins/contexts/mission-control/event-ledger/application"
	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
	"flexyfins/contexts/mission-control/event-ledger/ports"
)

// ProofMatrixRow is a latest-mission row decorated with its evidence tier.
type ProofMatrixRow struct {
	Envelope entities.Envelope
	Tier     int
}

type ProofMatrixQuery struct {
	Limit int
}

type ProofMatrixResult struct {
	Items []ProofMatrixRow
}

type ProofMatrixUseCase struct {
	Ledger ports.LedgerReader
	Logger *slog.Logger
}

func (u ProofMatrixUseCase) Execute(ctx context.Context, query ProofMatrixQuery) (ProofMatrixResult, error) {
	logger := application.ResolveLogger(u.Logger)

	items, err := u.Ledger.LatestPerMission(ctx, ClampLimit(query.Limit))
	if err != nil {
		logger.Error("proof matrix failed",
			"event", "proof_matrix_failed",
			"module", "mission-control/event-ledger",
			"layer", "application",
			"limit", query.Limit,
			"error", err.Error(),
		)
		return ProofMatrixResult{}, err
	}

	rows := make([]ProofMatrixRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, ProofMatrixRow{
			Envelope: item,
			Tier:     entities.EvidenceTier(item.EventType),
		})
	}
	return ProofMatrixResult{Items: rows}, nil
}

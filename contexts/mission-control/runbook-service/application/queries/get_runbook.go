package queries

import (
	"context"
	"log/slog"
	"strings"

	"flexyfins/contexts/mission-control/runbook-service/domain/entities"
	domainerrors "flexyfins/contexts/mission-control/runbook-service/domain/errors"
)

type GetRunbookQuery struct {
	ReasonCode string
}

type GetRunbookResult struct {
	Runbook entities.Runbook
}

type GetRunbookUseCase struct {
	Logger *slog.Logger
}

func (u GetRunbookUseCase) Execute(_ context.Context, query GetRunbookQuery) (GetRunbookResult, error) {
	code := strings.TrimSpace(query.ReasonCode)
	runbook, ok := entities.Lookup(code)
	if !ok {
		if u.Logger != nil {
			u.Logger.Warn("runbook lookup missed",
				"event", "runbook_lookup_missed",
				"module", "mission-control/runbook-service",
				"layer", "application",
				"reason_code", code,
			)
		}
		return GetRunbookResult{}, domainerrors.ErrRunbookNotFound
	}
	return GetRunbookResult{Runbook: runbook}, nil
}

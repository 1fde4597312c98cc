package queries

import (
	"context"
	"log/slog"

	application "flexyfins/contexts/mission-control/event-ledger/application"
	"flexyfins/contexts/mission-control/event-ledger/ports"
)

type SummaryResult struct {
	Total int
	OK    int
	Fail  int
}

type SummaryUseCase struct {
	Ledger ports.LedgerReader
	Logger *slog.Logger
}

// Execute counts across all stored rows; fail is derived so total = ok + fail
// holds by construction.
func (u SummaryUseCase) Execute(ctx context.Context) (SummaryResult, error) {
	logger := application.ResolveLogger(u.Logger)

	summary, err := u.Ledger.SummaryCounts(ctx)
	if err != nil {
		logger.Error("summary counts failed",
			"event", "summary_counts_failed",
			"module", "mission-control/event-ledger",
			"layer", "application",
			"error", err.Error(),
		)
		return SummaryResult{}, err
	}
	return SummaryResult{
		Total: summary.Total,
		OK:    summary.OK,
		Fail:  summary.Fail,
	}, nil
}

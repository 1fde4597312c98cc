package queries

import (
	"context"
	"log/slog"

	application "flexyfins/contexts/mission-control/event-ledger/application"
	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
	"flexyfins/contexts/mission-control/event-ledger/ports"
)

const (
	defaultLatestLimit = 20
	maxLatestLimit     = 200
)

type LatestPerMissionQuery struct {
	Limit int
}

type LatestPerMissionResult struct {
	Items []entities.Envelope
}

type LatestPerMissionUseCase struct {
	Ledger ports.LedgerReader
	Logger *slog.Logger
}

// Execute returns the current state row of each mission: exactly one row per
// distinct mission_id, ordered by ts descending.
func (u LatestPerMissionUseCase) Execute(ctx context.Context, query LatestPerMissionQuery) (LatestPerMissionResult, error) {
	logger := application.ResolveLogger(u.Logger)

	items, err := u.Ledger.LatestPerMission(ctx, ClampLimit(query.Limit))
	if err != nil {
		logger.Error("latest per mission failed",
			"event", "latest_per_mission_failed",
			"module", "mission-control/event-ledger",
			"layer", "application",
			"limit", query.Limit,
			"error", err.Error(),
		)
		return LatestPerMissionResult{}, err
	}
	return LatestPerMissionResult{Items: items}, nil
}

// ClampLimit normalizes a caller-supplied limit: zero falls back to the
// default page size, anything below one is raised to one, and oversized
// values are capped.
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return defaultLatestLimit
	case limit < 1:
		return 1
	case limit > maxLatestLimit:
		return maxLatestLimit
	default:
		return limit
	}
}

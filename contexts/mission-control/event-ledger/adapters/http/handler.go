package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "flexyfins/contexts/mission-control/event-ledger/application"
	"flexyfins/contexts/mission-control/event-ledger/application/commands"
	"flexyfins/contexts/mission-control/event-ledger/application/queries"
	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
	httptransport "flexyfins/contexts/mission-control/event-ledger/transport/http"
)

type Handler struct {
	IngestEnvelope   commands.IngestEnvelopeUseCase
	Summary          queries.SummaryUseCase
	LatestPerMission queries.LatestPerMissionUseCase
	ProofMatrix      queries.ProofMatrixUseCase
	SettlementScore  queries.SettlementScoreUseCase
	Logger           *slog.Logger
}

// IngestEnvelopeHandler godoc
// @Summary Ingest a mission event envelope
// @Description Appends the envelope unless the dedup/finality rule suppresses it. Safe to retry.
// @Tags event-ledger
// @Accept json
// @Produce json
// @Param request body httptransport.IngestEnvelopeRequest true "Envelope payload"
// @Success 200 {object} httptransport.IngestEnvelopeResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/gd/ingest [post]
func (h Handler) IngestEnvelopeHandler(ctx context.Context, req httptransport.IngestEnvelopeRequest) (httptransport.IngestEnvelopeResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("ingest request received",
		"event", "http_ingest_received",
		"module", "mission-control/event-ledger",
		"layer", "transport",
		"mission_id", req.MissionID,
		"event_type", req.EventType,
	)

	result, err := h.IngestEnvelope.Execute(ctx, commands.IngestEnvelopeCommand{
		MissionID: req.MissionID,
		EventType: req.EventType,
		Status:    req.Status,
		ProofRef:  req.ProofRef,
		Meta:      req.Meta,
	})
	if err != nil {
		return httptransport.IngestEnvelopeResponse{}, err
	}
	return httptransport.IngestEnvelopeResponse{
		OK:       true,
		Inserted: result.Inserted,
	}, nil
}

// SummaryHandler godoc
// @Summary Ledger summary counts
// @Description Returns total/ok/fail counts across all stored rows.
// @Tags event-ledger
// @Produce json
// @Success 200 {object} httptransport.SummaryResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/gd/summary [get]
func (h Handler) SummaryHandler(ctx context.Context) (httptransport.SummaryResponse, error) {
	result, err := h.Summary.Execute(ctx)
	if err != nil {
		return httptransport.SummaryResponse{}, err
	}
	return httptransport.SummaryResponse{
		Total: result.Total,
		OK:    result.OK,
		Fail:  result.Fail,
	}, nil
}

// LatestPerMissionHandler godoc
// @Summary Latest state per mission
// @Description Returns one row per distinct mission, most recent first.
// @Tags event-ledger
// @Produce json
// @Param limit query int false "Page size (min 1, max 200)"
// @Success 200 {object} httptransport.LatestPerMissionResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/gd/latest [get]
func (h Handler) LatestPerMissionHandler(ctx context.Context, limit int) (httptransport.LatestPerMissionResponse, error) {
	result, err := h.LatestPerMission.Execute(ctx, queries.LatestPerMissionQuery{Limit: limit})
	if err != nil {
		return httptransport.LatestPerMissionResponse{}, err
	}
	return httptransport.LatestPerMissionResponse{
		Items: mapEnvelopes(result.Items),
	}, nil
}

// ProofMatrixHandler godoc
// @Summary Proof matrix
// @Description Latest-per-mission rows annotated with evidence tier.
// @Tags event-ledger
// @Produce json
// @Param limit query int false "Page size (min 1, max 200)"
// @Success 200 {object} httptransport.ProofMatrixResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/gd/proof-matrix [get]
func (h Handler) ProofMatrixHandler(ctx context.Context, limit int) (httptransport.ProofMatrixResponse, error) {
	result, err := h.ProofMatrix.Execute(ctx, queries.ProofMatrixQuery{Limit: limit})
	if err != nil {
		return httptransport.ProofMatrixResponse{}, err
	}

	items := make([]httptransport.ProofMatrixRowDTO, 0, len(result.Items))
	for _, row := range result.Items {
		items = append(items, httptransport.ProofMatrixRowDTO{
			EnvelopeDTO: mapEnvelope(row.Envelope),
			Tier:        row.Tier,
		})
	}
	return httptransport.ProofMatrixResponse{Items: items}, nil
}

// SettlementScoreHandler godoc
// @Summary Settlement score
// @Description Latest-per-mission rows with tier and tier*25 score.
// @Tags event-ledger
// @Produce json
// @Param limit query int false "Page size (min 1, max 200)"
// @Success 200 {object} httptransport.SettlementScoreResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/gd/settlement-score [get]
func (h Handler) SettlementScoreHandler(ctx context.Context, limit int) (httptransport.SettlementScoreResponse, error) {
	result, err := h.SettlementScore.Execute(ctx, queries.SettlementScoreQuery{Limit: limit})
	if err != nil {
		return httptransport.SettlementScoreResponse{}, err
	}

	items := make([]httptransport.SettlementScoreRowDTO, 0, len(result.Items))
	for _, row := range result.Items {
		items = append(items, httptransport.SettlementScoreRowDTO{
			EnvelopeDTO: mapEnvelope(row.Envelope),
			Tier:        row.Tier,
			Score:       row.Score,
		})
	}
	return httptransport.SettlementScoreResponse{Items: items}, nil
}

func mapEnvelopes(items []entities.Envelope) []httptransport.EnvelopeDTO {
	mapped := make([]httptransport.EnvelopeDTO, 0, len(items))
	for _, item := range items {
		mapped = append(mapped, mapEnvelope(item))
	}
	return mapped
}

func mapEnvelope(env entities.Envelope) httptransport.EnvelopeDTO {
	meta := env.Meta
	if meta == nil {
		meta = map[string]any{}
	}
	return httptransport.EnvelopeDTO{
		Ts:        env.Ts.UTC().Format(time.RFC3339),
		MissionID: env.MissionID,
		EventType: env.EventType,
		Status:    env.Status,
		ProofRef:  env.ProofRef,
		Meta:      meta,
	}
}

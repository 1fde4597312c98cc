package httpadapter

import (
	"context"
	"log/slog"

	"flexyfins/contexts/mission-control/runbook-service/application/queries"
	httptransport "flexyfins/contexts/mission-control/runbook-service/transport/http"
)

type Handler struct {
	GetRunbook queries.GetRunbookUseCase
	Logger     *slog.Logger
}

// GetRunbookHandler godoc
// @Summary Runbook lookup
// @Description Returns the remediation runbook for a reason code.
// @Tags runbook-service
// @Produce json
// @Param reason_code path string true "Reason code"
// @Success 200 {object} httptransport.RunbookResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/gd/runbook/{reason_code} [get]
func (h Handler) GetRunbookHandler(ctx context.Context, reasonCode string) (httptransport.RunbookResponse, error) {
	result, err := h.GetRunbook.Execute(ctx, queries.GetRunbookQuery{ReasonCode: reasonCode})
	if err != nil {
		return httptransport.RunbookResponse{}, err
	}
	return httptransport.RunbookResponse{
		Code:  result.Runbook.Code,
		Title: result.Runbook.Title,
		Steps: result.Runbook.Steps,
	}, nil
}

package runbookservice

import (
	"log/slog"

	httpadapter "flexyfins/contexts/mission-control/runbook-service/adapters/http"
	"flexyfins/contexts/mission-control/runbook-service/application/queries"
)

type Module struct {
	Handler httpadapter.Handler
}

func NewModule(logger *slog.Logger) Module {
	return Module{
		Handler: httpadapter.Handler{
			GetRunbook: queries.GetRunbookUseCase{Logger: logger},
			Logger:     logger,
		},
	}
}

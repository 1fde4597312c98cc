package eventledger

import (
	"log/slog"

	httpadapter "flexyfins/contexts/mission-control/event-ledger/adapters/http"
	"flexyfins/contexts/mission-control/event-ledger/adapters/memory"
	"flexyfins/contexts/mission-control/event-ledger/application/commands"
	"flexyfins/contexts/mission-control/event-ledger/application/queries"
	"flexyfins/contexts/mission-control/event-ledger/ports"
)

// Module is the composition surface for the mission event ledger. Runtime
// wiring should consume Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Ledger      ports.LedgerRepository
	Reader      ports.LedgerReader
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires ledger use-cases against explicit ports.
func NewModule(deps Dependencies) Module {
	ingest := commands.IngestEnvelopeUseCase{
		Ledger:      deps.Ledger,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	summary := queries.SummaryUseCase{
		Ledger: deps.Reader,
		Logger: deps.Logger,
	}
	latest := queries.LatestPerMissionUseCase{
		Ledger: deps.Reader,
		Logger: deps.Logger,
	}
	matrix := queries.ProofMatrixUseCase{
		Ledger: deps.Reader,
		Logger: deps.Logger,
	}
	score := queries.SettlementScoreUseCase{
		Ledger: deps.Reader,
		Logger: deps.Logger,
	}

	handler := httpadapter.Handler{
		IngestEnvelope:   ingest,
		Summary:          summary,
		LatestPerMission: latest,
		ProofMatrix:      matrix,
		SettlementScore:  score,
		Logger:           deps.Logger,
	}

	return Module{Handler: handler}
}

// NewInMemoryModule wires ledger use cases against the in-memory adapter.
// This is the deterministic test/local-runtime bootstrap path.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore(logger)
	module := NewModule(Dependencies{
		Ledger:      store,
		Reader:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}

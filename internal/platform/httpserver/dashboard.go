package httpserver

import (
	"html/template"
	"net/http"

	ledgerentities "flexyfins/contexts/mission-control/event-ledger/domain/entities"
)

// Read-only status page over the settlement score projection. The page is a
// plain read model consumer; all ledger semantics live behind the module
// handler.
var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.App}} mission control</title>
<style>
body { font-family: monospace; background: #101418; color: #d8dee9; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #2e3440; padding: 0.4rem 0.8rem; text-align: left; }
th { background: #1b2128; }
.final { color: #a3be8c; }
.pending { color: #ebcb8b; }
</style>
</head>
<body>
<h1>{{.App}} mission control</h1>
<p>{{.Summary.Total}} envelopes · {{.Summary.OK}} ok · {{.Summary.Fail}} fail</p>
<table>
<tr><th>mission</th><th>event</th><th>status</th><th>proof</th><th>tier</th><th>score</th><th>ts</th></tr>
{{range .Rows}}
<tr>
<td>{{.MissionID}}</td>
<td>{{.EventType}}</td>
<td class="{{.StatusClass}}">{{.Status}}</td>
<td>{{.ProofRef}}</td>
<td>{{.Tier}}</td>
<td>{{.Score}}</td>
<td>{{.Ts}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`))

type dashboardRow struct {
	MissionID   string
	EventType   string
	Status      string
	StatusClass string
	ProofRef    string
	Tier        int
	Score       int
	Ts          string
}

type dashboardData struct {
	App     string
	Summary struct {
		Total int
		OK    int
		Fail  int
	}
	Rows []dashboardRow
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := s.ledger.Handler.SummaryHandler(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	scores, err := s.ledger.Handler.SettlementScoreHandler(r.Context(), 50)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	data := dashboardData{App: s.serviceName}
	data.Summary.Total = summary.Total
	data.Summary.OK = summary.OK
	data.Summary.Fail = summary.Fail
	for _, row := range scores.Items {
		statusClass := "pending"
		if ledgerentities.IsFinalStatus(row.Status) {
			statusClass = "final"
		}
		data.Rows = append(data.Rows, dashboardRow{
			MissionID:   row.MissionID,
			EventType:   row.EventType,
			Status:      row.Status,
			StatusClass: statusClass,
			ProofRef:    row.ProofRef,
			Tier:        row.Tier,
			Score:       row.Score,
			Ts:          row.Ts,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, data); err != nil {
		s.logger.Error("dashboard render failed",
			"event", "dashboard_render_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
	}
}

package httptransport

// IngestEnvelopeRequest mirrors the webhook emitter payload. proof_ref may be
// null; meta is opaque producer-defined data.
type IngestEnvelopeRequest struct {
	MissionID string         `json:"mission_id"`
	EventType string         `json:"event_type"`
	Status    string         `json:"status"`
	ProofRef  *string        `json:"proof_ref,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
}

type IngestEnvelopeResponse struct {
	OK       bool `json:"ok"`
	Inserted bool `json:"inserted"`
}

type SummaryResponse struct {
	Total int `json:"total"`
	OK    int `json:"ok"`
	Fail  int `json:"fail"`
}

type EnvelopeDTO struct {
	Ts        string         `json:"ts"`
	MissionID string         `json:"mission_id"`
	EventType string         `json:"event_type"`
	Status    string         `json:"status"`
	ProofRef  string         `json:"proof_ref"`
	Meta      map[string]any `json:"meta"`
}

type LatestPerMissionResponse struct {
	Items []EnvelopeDTO `json:"items"`
}

type ProofMatrixRowDTO struct {
	EnvelopeDTO
	Tier int `json:"tier"`
}

type ProofMatrixResponse struct {
	Items []ProofMatrixRowDTO `json:"items"`
}

type SettlementScoreRowDTO struct {
	EnvelopeDTO
	Tier  int `json:"tier"`
	Score int `json:"score"`
}

type SettlementScoreResponse struct {
	Items []SettlementScoreRowDTO `json:"items"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

package entities

import (
	"regexp"
	"strings"
	"time"

	domainerrors "flexyfins/contexts/mission-control/event-ledger/domain/errors"
)

// Final success statuses. The insert policy, summary counts, and scoring all
// read this one set so they cannot drift apart.
const (
	StatusVerified  = "VERIFIED"
	StatusCompleted = "COMPLETED"
	StatusSettled   = "SETTLED"
	StatusOK        = "OK"
)

var finalStatuses = map[string]struct{}{
	StatusVerified:  {},
	StatusCompleted: {},
	StatusSettled:   {},
	StatusOK:        {},
}

var missionIDPattern = regexp.MustCompile(`^VAL-\d+$`)

// Envelope is one reported fact about a mission's progress. Rows are
// append-only; a stored envelope is never mutated or deleted.
type Envelope struct {
	Seq       int64
	Ts        time.Time
	MissionID string
	EventType string
	Status    string
	ProofRef  string
	Meta      map[string]any
}

// NewEnvelope validates and normalizes an incoming envelope: status is
// uppercased, an absent proof_ref becomes the empty string. Seq and Ts are
// assigned later (Ts by the ingest command, Seq by storage).
func NewEnvelope(
	missionID string,
	eventType string,
	status string,
	proofRef string,
	meta map[string]any,
) (Envelope, error) {
	missionID = strings.TrimSpace(missionID)
	if !missionIDPattern.MatchString(missionID) {
		return Envelope{}, domainerrors.ErrInvalidMissionID
	}
	eventType = strings.TrimSpace(eventType)
	normalized := NormalizeStatus(status)
	if eventType == "" || normalized == "" {
		return Envelope{}, domainerrors.ErrInvalidEnvelope
	}

	return Envelope{
		MissionID: missionID,
		EventType: eventType,
		Status:    normalized,
		ProofRef:  strings.TrimSpace(proofRef),
		Meta:      meta,
	}, nil
}

// NormalizeStatus is the canonical status normalization applied before any
// dedup comparison.
func NormalizeStatus(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}

// IsFinalStatus reports whether a normalized status is terminal for its
// dedup key.
func IsFinalStatus(status string) bool {
	_, ok := finalStatuses[status]
	return ok
}

// FinalStatusList returns the success set in a stable order for storage
// queries.
func FinalStatusList() []string {
	return []string{StatusVerified, StatusCompleted, StatusSettled, StatusOK}
}

// DedupKey identifies the logical group an envelope belongs to for insert
// decisions. Absent and empty proof_ref are the same key.
func (e Envelope) DedupKey() string {
	return e.MissionID + "|" + e.EventType + "|" + e.ProofRef
}

// SameDedupKey reports whether two envelopes compete for the same latest row.
func (e Envelope) SameDedupKey(other Envelope) bool {
	return e.MissionID == other.MissionID &&
		e.EventType == other.EventType &&
		e.ProofRef == other.ProofRef
}

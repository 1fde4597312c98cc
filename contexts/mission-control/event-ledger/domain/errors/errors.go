package errors

import "errors"

var (
	ErrInvalidMissionID         = errors.New("mission_id must match VAL-<digits>")
	ErrInvalidEnvelope          = errors.New("invalid envelope")
	ErrRepositoryInvariantBroke = errors.New("repository invariant violated")
)

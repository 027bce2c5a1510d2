package services

import "errors"

// Общие ошибки, используемые в сервисах и маппинге HTTP.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")

	ErrStageNotFound       = errors.New("stage not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrEventNotFound       = errors.New("event has no stages")

	ErrStageTypeUnsupported = errors.New("stage type is not supported")
	ErrConflictingResults   = errors.New("both opponents cannot win the same match")
	ErrInvalidResult        = errors.New("result must be 'win' or 'loss'")
	ErrEmptySlotResult      = errors.New("cannot record a result for an empty slot")
	ErrParticipantName      = errors.New("participant name is required")

	ErrStorageDisabled = errors.New("export storage is not configured")
)

package delivery

import "errors"

var (
	ErrMissingRequiredFields     = errors.New("missing required fields")
	ErrInvalidPrice              = errors.New("price must be positive")
	ErrAcceptDeadlineInPast      = errors.New("accept deadline must be in the future")
	ErrDeliveryDeadlineTooEarly  = errors.New("delivery deadline must be after accept deadline")
	ErrInvalidStatus             = errors.New("invalid status")
	ErrInvalidMineFilter         = errors.New("invalid deliveries filter")

	ErrDeliveryNotFound = errors.New("delivery not found")

	ErrOwnDelivery       = errors.New("cannot accept own delivery request")
	ErrNotDeliveryPerson = errors.New("actor is not the assigned delivery person")
	ErrNotRequester      = errors.New("actor is not the requester")

	ErrNotPending        = errors.New("delivery is not pending")
	ErrInvalidTransition = errors.New("status transition not allowed")

	ErrAcceptDeadlinePassed = errors.New("accept deadline has passed")

	ErrScheduleConflict = errors.New("conflicting delivery scheduled at this time")
	ErrAlreadyTaken     = errors.New("delivery already taken by another user")
)

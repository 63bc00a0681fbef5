package runs

import "errors"

var (
	ErrRunNotFound     = errors.New("run not found")
	ErrMissingClientID = errors.New("client_id is required")
	ErrNoPunchData     = errors.New("ta table is empty")
	ErrQueueFull       = errors.New("processing queue is full")
	ErrBadFirstDate    = errors.New("first_date must be YYYY-MM-DD")
)

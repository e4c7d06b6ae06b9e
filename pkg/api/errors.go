package api

import "errors"

var (
	errMissingMonitorID = errors.New("monitor ID is required")
	errInvalidMonitorID = errors.New("monitor ID must be numeric")
)

package store

import "errors"

// ErrDashboardNotFound is returned when no dashboard exists for the
// requested id.
var ErrDashboardNotFound = errors.New("dashboard not found")

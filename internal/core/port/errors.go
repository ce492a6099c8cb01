package port

import "errors"

// ErrDuplicateReport is returned by CreateReportWithRecords when the
// report's natural key is already persisted. Losing a race between two
// concurrent deliveries of the same report surfaces as this error and
// is absorbed as "already processed".
var ErrDuplicateReport = errors.New("report already exists")

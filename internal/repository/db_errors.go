package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"

	appErrors "github.com/campusops/coe-api/pkg/errors"
)

// wrapDB adds the operation name to a database failure. Connectivity
// faults are surfaced as Server Busy so handlers answer 503 instead of a
// generic 500.
func wrapDB(op string, err error) error {
	if isConnFailure(err) {
		return appErrors.Wrap(err, appErrors.ErrServerBusy.Code, appErrors.ErrServerBusy.Status, appErrors.ErrServerBusy.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isConnFailure reports whether err means the database could not be
// reached: a refused or dropped connection, a dead pooled session, or a
// pool acquire that ran out the context deadline.
func isConnFailure(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "08" {
		return true
	}
	return false
}

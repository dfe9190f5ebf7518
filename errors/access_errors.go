// errors/access_errors.go
package errors

import "errors"

var (
	ErrInvalidRequestData = errors.New("invalid access request data")

	ErrMandatorySignals     = errors.New("mandatory signals check failed")
	ErrDiscretionarySignals = errors.New("discretionary signals check failed")
	ErrStaleRequestTime     = errors.New("stale request time")
	ErrInvalidContextTime   = errors.New("invalid context time")

	ErrAuditOperation = errors.New("audit operation failed")
	ErrInternalServer = errors.New("internal server error")
)

package alert

import "errors"

var (
	ErrAlertNotFound     = errors.New("alert not found")
	ErrAlreadyTerminal   = errors.New("alert already resolved")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidSignal     = errors.New("invalid signal")
	ErrNoActiveEmergency = errors.New("no active emergency for patient")
)

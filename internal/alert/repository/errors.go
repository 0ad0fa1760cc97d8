package repository

import "errors"

var (
	ErrNotFound        = errors.New("alert not found")
	ErrAlreadyTerminal = errors.New("alert already in terminal state")
)

package repository

import "errors"

var (
	ErrNotFound      = errors.New("actor not found")
	ErrAlreadyExists = errors.New("actor already exists")
)

package minio

import "errors"

var (
	ErrInvalidConfig = errors.New("minio: invalid configuration")
	ErrNotConnected  = errors.New("minio: client not connected")
	ErrObjectMissing = errors.New("minio: object does not exist")
)

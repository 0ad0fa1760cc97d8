package response

import (
	"encoding/json"
	"time"

	"vitalguard-api/pkg/errors"
)

// Resp is the JSON envelope returned by every endpoint.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain sentinel errors to HTTP errors per handler.
type ErrorMapping map[error]*errors.HTTPError

// Date marshals as "2006-01-02".
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

// DateTime marshals as "2006-01-02 15:04:05".
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}

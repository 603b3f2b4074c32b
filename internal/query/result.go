package query

import (
	"time"

	"github.com/edvin/camal/internal/camalapi"
)

type Status int

const (
	StatusPending Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the tri-state outcome of a query. Data is never absent: until
// the first successful fetch it holds the query's placeholder, and after an
// error it keeps the last good value when there is one.
type Result[T any] struct {
	Status    Status
	Data      T
	Err       error
	UpdatedAt time.Time
}

func (r Result[T]) IsPending() bool { return r.Status == StatusPending }
func (r Result[T]) IsSuccess() bool { return r.Status == StatusSuccess }
func (r Result[T]) IsError() bool   { return r.Status == StatusError }

// Message is the user-facing error text; for API errors it is the response
// envelope message unchanged.
func (r Result[T]) Message() string {
	return camalapi.Message(r.Err)
}

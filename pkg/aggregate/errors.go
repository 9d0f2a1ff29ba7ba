package aggregate

import (
	"errors"
	"fmt"
)

var (
	//ErrMissingField is wrapped when a record lacks SRC, DPT or SPT
	ErrMissingField = errors.New("missing required field")

	//ErrInvalidPort is wrapped when DPT or SPT is not a number
	ErrInvalidPort = errors.New("invalid port")
)

//MissingFieldError describes a drop record which cannot be aggregated
type MissingFieldError struct {
	Field     string
	Value     string
	Timestamp int64
	Err       error
}

func (e *MissingFieldError) Error() string {
	if errors.Is(e.Err, ErrInvalidPort) {
		return fmt.Sprintf("record at %d: %v: %s=%q", e.Timestamp, e.Err, e.Field, e.Value)
	}
	return fmt.Sprintf("record at %d: %v: %s", e.Timestamp, e.Err, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return e.Err
}

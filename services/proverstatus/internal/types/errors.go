package types

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStatus           = errors.New("unknown status")
	ErrInvalidAggregationRound = errors.New("invalid aggregation round")
	ErrInvalidCircuitId        = errors.New("invalid circuit id")
	ErrInvalidProtocolVersion  = errors.New("invalid protocol version")

	ErrWitnessInputNotFound      = errors.New("witness input not found")
	ErrWitnessInputAlreadyExists = errors.New("witness input already exists")
	ErrProverJobNotFound         = errors.New("prover job not found")
)

// DecodeError reports a persisted row that could not be converted into a job record.
type DecodeError struct {
	Table  string
	Column string
	Value  any
	Err    error
}

func NewDecodeError(table, column string, value any, err error) *DecodeError {
	return &DecodeError{Table: table, Column: column, Value: value, Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s.%s (value=%v): %v", e.Table, e.Column, e.Value, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

package types

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// L1BatchNumber identifies a committed batch of L2 transactions.
type L1BatchNumber uint32

func (n L1BatchNumber) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// Set implements pflag.Value.
func (n *L1BatchNumber) Set(str string) error {
	parsed, err := ParseL1BatchNumber(str)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (*L1BatchNumber) Type() string {
	return "L1BatchNumber"
}

var ErrInvalidBatchNumber = errors.New("invalid batch number")

// ParseL1BatchNumber accepts positive decimal batch numbers only.
func ParseL1BatchNumber(str string) (L1BatchNumber, error) {
	value, err := strconv.ParseUint(str, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidBatchNumber, str, err)
	}
	if value == 0 {
		return 0, fmt.Errorf("%w: batch number must be positive", ErrInvalidBatchNumber)
	}
	return L1BatchNumber(value), nil
}

// BatchL1Timestamps holds the L1 confirmation times of the commit and prove transactions of a batch.
// Either of them is nil until the corresponding transaction is confirmed.
type BatchL1Timestamps struct {
	BatchNumber L1BatchNumber
	CommittedAt *time.Time
	ProvenAt    *time.Time
}

// ProofTime returns the time elapsed between commit and prove confirmations.
// The second value is false if either timestamp is missing.
func (t *BatchL1Timestamps) ProofTime() (time.Duration, bool) {
	if t == nil || t.CommittedAt == nil || t.ProvenAt == nil {
		return 0, false
	}
	return t.ProvenAt.Sub(*t.CommittedAt), true
}

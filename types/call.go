package types

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrNegativeValue is returned for a call carrying a negative native value.
var ErrNegativeValue = errors.New("call value must not be negative")

// Call is a single external call made by the wallet as part of an Execute batch.
type Call struct {
	Target          common.Address `json:"target"`
	Value           *big.Int       `json:"value"`
	SuccessRequired bool           `json:"success_required"`
	Data            hexutil.Bytes  `json:"data"`
}

// NewCall creates a call with a zero value that must succeed.
func NewCall(target common.Address, data []byte) Call {
	return Call{
		Target:          target,
		Value:           new(big.Int),
		SuccessRequired: true,
		Data:            data,
	}
}

// Validate checks the call is encodable.
func (c Call) Validate() error {
	if c.Value != nil && c.Value.Sign() < 0 {
		return ErrNegativeValue
	}

	return nil
}

// ValueOrZero returns the call value, treating nil as zero.
func (c Call) ValueOrZero() *big.Int {
	if c.Value == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(c.Value)
}

// Render returns a display form of the call.
func (c Call) Render() []Field {
	return []Field{
		{Name: "Target", Value: c.Target},
		{Name: "Value", Value: c.ValueOrZero()},
		{Name: "Success Required", Value: c.SuccessRequired},
		{Name: "Data", Value: c.Data},
	}
}

// Field is one named value of a rendered message.
type Field struct {
	Name  string
	Value any
}

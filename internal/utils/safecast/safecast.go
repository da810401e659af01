// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"
	"math/big"

	"github.com/spf13/cast"
)

// BigIntToUint64 safely converts a *big.Int to uint64 and checks for overflow
func BigIntToUint64(value *big.Int) (uint64, error) {
	if value == nil {
		return 0, fmt.Errorf("value is nil, cannot convert to uint64")
	}

	if !value.IsUint64() {
		return 0, fmt.Errorf("value %s exceeds uint64 range", value)
	}

	return value.Uint64(), nil
}

// Uint64ToInt safely converts a uint64 to int using cast and checks for overflow
func Uint64ToInt(value uint64) (int, error) {
	if value > math.MaxInt {
		return 0, fmt.Errorf("value %d exceeds int range", value)
	}

	return cast.ToIntE(value)
}

// IntToUint64 safely converts an int to uint64 using cast and checks for underflow
func IntToUint64(value int) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d is negative, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// StringToUint64 parses a decimal string into a uint64
func StringToUint64(value string) (uint64, error) {
	if value == "" {
		return 0, fmt.Errorf("empty string, cannot convert to uint64")
	}

	if value[0] == '-' {
		return 0, fmt.Errorf("value %s is negative, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// StringToBool parses a boolean string such as "true", "1" or "false"
func StringToBool(value string) (bool, error) {
	return cast.ToBoolE(value)
}

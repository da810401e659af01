package sdkerrors

import (
	"fmt"
)

type InvalidChainIDError struct {
	ReceivedChainID uint64
}

func (e *InvalidChainIDError) Error() string {
	return fmt.Sprintf("invalid chain ID: %v", e.ReceivedChainID)
}

func NewInvalidChainIDError(receivedChainID uint64) *InvalidChainIDError {
	return &InvalidChainIDError{ReceivedChainID: receivedChainID}
}

// UnsupportedVersionError is returned when a wallet reports a version the client does not know.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return "unsupported wallet version: " + e.Version
}

func NewUnsupportedVersionError(version string) *UnsupportedVersionError {
	return &UnsupportedVersionError{Version: version}
}

// MulticallFailedError is returned when a sub-call of a batched read fails.
type MulticallFailedError struct {
	Index int
}

func (e *MulticallFailedError) Error() string {
	return fmt.Sprintf("multicall sub-call %d failed", e.Index)
}

func NewMulticallFailedError(index int) *MulticallFailedError {
	return &MulticallFailedError{Index: index}
}

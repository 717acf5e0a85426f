package models

import "errors"

// Errors reported by ledger implementations.
var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrInsufficientSupply    = errors.New("burn amount exceeds total supply")
	ErrAmountOverflow        = errors.New("amount overflows 256 bits")
	ErrNativeRejected        = errors.New("recipient rejected native transfer")
)

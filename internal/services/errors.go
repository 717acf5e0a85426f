package services

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// Field names reported by ZeroValueInputError.
const (
	FieldOrigin        = "ORIGIN"
	FieldOriginAmount  = "ORIGIN_AMOUNT"
	FieldDestination   = "DESTINATION"
	FieldTarget        = "TARGET"
	FieldTargetAmount  = "TARGET_AMOUNT"
	FieldLiquiditySafe = "LIQUIDITY_SAFE"
	FieldInitiator     = "INITIATOR"
	FieldFeeCurrency   = "FEE_CURRENCY"
	FieldFeeSafe       = "FEE_SAFE"
	FieldWallet        = "WALLET"
	FieldBuyBack       = "BUYBACK"
	FieldPlugin        = "PLUGIN"
	FieldCurrency      = "CURRENCY"
	FieldAsset         = "ASSET"
)

var (
	// ErrZeroValueInput matches every ZeroValueInputError.
	ErrZeroValueInput = errors.New("zero value input")
	// ErrInvalidMintBurnBoundary matches every InvalidMintBurnBoundaryError.
	ErrInvalidMintBurnBoundary = errors.New("invalid mint burn boundary")
	// ErrSendFailed matches every SendFailedError.
	ErrSendFailed = errors.New("send failed")
	// ErrPaused is returned by swaps while the facade is paused.
	ErrPaused = errors.New("swaps are paused")
	// ErrFeeCurrencyMismatch is returned when a fee rides on a transfer origin
	// but is quoted in another token.
	ErrFeeCurrencyMismatch = errors.New("fee currency must match an unregistered origin")
)

// ZeroValueInputError names the first required field that was left empty.
type ZeroValueInputError struct {
	Field string
}

func (e *ZeroValueInputError) Error() string {
	return fmt.Sprintf("zero value input: %s", e.Field)
}

func (e *ZeroValueInputError) Is(target error) bool {
	return target == ErrZeroValueInput
}

func zeroValue(field string) error {
	return &ZeroValueInputError{Field: field}
}

// InvalidMintBurnBoundaryError is returned when a mint exceeds the per
// operation cap or a burn would leave supply below the floor.
type InvalidMintBurnBoundaryError struct {
	Currency common.Address
	Amount   *uint256.Int
}

func (e *InvalidMintBurnBoundaryError) Error() string {
	return fmt.Sprintf("invalid mint burn boundary: currency %s amount %s", e.Currency.Hex(), e.Amount.Dec())
}

func (e *InvalidMintBurnBoundaryError) Is(target error) bool {
	return target == ErrInvalidMintBurnBoundary
}

// SendFailedError is returned when a rescue transfer could not be made.
type SendFailedError struct {
	Asset  models.Asset
	Amount *uint256.Int
	Err    error
}

func (e *SendFailedError) Error() string {
	kind := "token"
	if e.Asset.IsNative() {
		kind = "native"
	}
	return fmt.Sprintf("rescue: %s send failed: %v", kind, e.Err)
}

func (e *SendFailedError) Unwrap() error { return e.Err }

func (e *SendFailedError) Is(target error) bool {
	return target == ErrSendFailed
}

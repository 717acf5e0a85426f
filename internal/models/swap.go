package models

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// StablecoinSwap describes the settlement leg of a swap. Nil amounts are zero.
type StablecoinSwap struct {
	LiquiditySafe common.Address
	Destination   common.Address
	Origin        common.Address
	OriginAmount  *uint256.Int
	Target        common.Address
	TargetAmount  *uint256.Int
	FeeCurrency   common.Address
	FeeSafe       common.Address
	FeeAmount     *uint256.Int
}

// DefiSwap describes the optional wallet call, buy-back and referral leg.
type DefiSwap struct {
	WalletData  []byte
	Aggregator  common.Address
	SwapData    []byte
	FeeToken    Asset
	Referrer    common.Address
	ReferralFee *uint256.Int
	Plugin      common.Address
}

// LegKind is how one half of a settlement moved value.
type LegKind string

const (
	LegBurn     LegKind = "burn"
	LegMint     LegKind = "mint"
	LegTransfer LegKind = "transfer"
)

// SettleResult reports what a settlement did.
type SettleResult struct {
	Initiator    common.Address
	Origin       common.Address
	OriginLeg    LegKind
	OriginAmount *uint256.Int
	Target       common.Address
	TargetLeg    LegKind
	TargetAmount *uint256.Int
	Destination  common.Address
	FeeCurrency  common.Address
	FeeAmount    *uint256.Int
}

// DefiResult reports what a defi leg did.
type DefiResult struct {
	Wallet       common.Address
	WalletCalled bool
	BoughtBack   *uint256.Int
	Asset        Asset
	ReferralPaid *uint256.Int
	Remainder    *uint256.Int
}

// SwapResult is the outcome of a combined swap.
type SwapResult struct {
	SettleFirst bool
	Settlement  *SettleResult
	Defi        *DefiResult
}

// AmountOrZero returns v, or zero when v is nil.
func AmountOrZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return v
}

package services

//go:generate mockgen -source=defi.go -destination=defi_mock_test.go -package=services

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// ErrBuyBackNotConfigured is returned when an aggregator is requested but the
// platform has no buy-back asset.
var ErrBuyBackNotConfigured = errors.New("buy-back asset not configured")

// WalletCaller forwards an opaque payload to a user controlled wallet.
type WalletCaller interface {
	Call(ctx context.Context, wallet common.Address, payload []byte) error
}

// AggregatorCaller asks an aggregator to swap the funded amount into the
// buy-back asset, delivering proceeds to the platform account.
type AggregatorCaller interface {
	Swap(ctx context.Context, aggregator common.Address, payload []byte, funding models.Asset, amount *uint256.Int) error
}

// DefiService executes the wallet call, buy-back and referral leg.
type DefiService struct {
	platform    common.Address
	buyBack     models.Asset
	assets      AssetLedger
	wallets     WalletCaller
	aggregators AggregatorCaller
	tx          Transactor
}

// NewDefiService creates a new DefiService buying back into buyBack.
func NewDefiService(
	platform common.Address,
	buyBack models.Asset,
	assets AssetLedger,
	wallets WalletCaller,
	aggregators AggregatorCaller,
	tx Transactor,
) *DefiService {
	return &DefiService{
		platform:    platform,
		buyBack:     buyBack,
		assets:      assets,
		wallets:     wallets,
		aggregators: aggregators,
		tx:          tx,
	}
}

// ExecuteDefiLeg validates req and runs it atomically. Whatever is left of the
// dispersal asset goes to caller.
func (s *DefiService) ExecuteDefiLeg(ctx context.Context, caller, wallet common.Address, req models.DefiSwap) (*models.DefiResult, error) {
	if err := checkWallet(wallet); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var result *models.DefiResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.execute(ctx, caller, wallet, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func checkWallet(wallet common.Address) error {
	if wallet == (common.Address{}) {
		return zeroValue(FieldWallet)
	}
	return nil
}

// validate checks the both-or-neither rule of the buy-back and that a
// referral has somewhere to go. A fee token other than the buy-back asset can
// only leave the platform through the aggregator.
func (s *DefiService) validate(req models.DefiSwap) error {
	var zero common.Address

	aggregatorSet := req.Aggregator != zero
	swapDataSet := len(req.SwapData) > 0
	if aggregatorSet != swapDataSet || (aggregatorSet && !req.FeeToken.IsSet()) {
		return zeroValue(FieldBuyBack)
	}
	if req.FeeToken.IsSet() && req.FeeToken != s.buyBack && !aggregatorSet {
		return zeroValue(FieldBuyBack)
	}
	if req.FeeToken.IsSet() && (req.Referrer != zero || !isZeroAmount(req.ReferralFee)) && req.Plugin == zero {
		return zeroValue(FieldPlugin)
	}
	return nil
}

func (s *DefiService) execute(ctx context.Context, caller, wallet common.Address, req models.DefiSwap) (*models.DefiResult, error) {
	result := &models.DefiResult{
		Wallet:       wallet,
		BoughtBack:   new(uint256.Int),
		ReferralPaid: new(uint256.Int),
		Remainder:    new(uint256.Int),
	}

	if len(req.WalletData) > 0 {
		if err := s.wallets.Call(ctx, wallet, req.WalletData); err != nil {
			logger.Log.Errorw("wallet call failed", "wallet", wallet.Hex(), "error", err)
			return nil, err
		}
		result.WalletCalled = true
	}

	if !req.FeeToken.IsSet() {
		return result, nil
	}

	asset := req.FeeToken
	if req.Aggregator != (common.Address{}) {
		if !s.buyBack.IsSet() {
			return nil, ErrBuyBackNotConfigured
		}
		if req.FeeToken != s.buyBack {
			proceeds, err := s.swapFees(ctx, req)
			if err != nil {
				return nil, err
			}
			result.BoughtBack = proceeds
		}
		asset = s.buyBack
	}
	result.Asset = asset

	if !isZeroAmount(req.ReferralFee) {
		if err := s.push(ctx, asset, req.Plugin, req.ReferralFee); err != nil {
			logger.Log.Errorw("failed to pay referral fee", "plugin", req.Plugin.Hex(), "asset", asset.String(), "error", err)
			return nil, err
		}
		result.ReferralPaid = req.ReferralFee.Clone()
	}

	remainder, err := s.balance(ctx, asset)
	if err != nil {
		return nil, err
	}
	if !remainder.IsZero() {
		if err := s.push(ctx, asset, caller, remainder); err != nil {
			logger.Log.Errorw("failed to return remainder", "caller", caller.Hex(), "asset", asset.String(), "error", err)
			return nil, err
		}
	}
	result.Remainder = remainder

	return result, nil
}

// swapFees hands the platform's fee balance to the aggregator and returns the
// buy-back proceeds. Both balances are read around the external call.
func (s *DefiService) swapFees(ctx context.Context, req models.DefiSwap) (*uint256.Int, error) {
	funding, err := s.balance(ctx, req.FeeToken)
	if err != nil {
		return nil, err
	}
	before, err := s.balance(ctx, s.buyBack)
	if err != nil {
		return nil, err
	}

	if req.FeeToken.IsNative() {
		err = s.assets.SendNative(ctx, s.platform, req.Aggregator, funding)
	} else {
		err = s.assets.Approve(ctx, req.FeeToken.Token, s.platform, req.Aggregator, funding)
	}
	if err != nil {
		logger.Log.Errorw("failed to fund aggregator", "aggregator", req.Aggregator.Hex(), "amount", funding.Dec(), "error", err)
		return nil, err
	}

	if err := s.aggregators.Swap(ctx, req.Aggregator, req.SwapData, req.FeeToken, funding); err != nil {
		logger.Log.Errorw("aggregator swap failed", "aggregator", req.Aggregator.Hex(), "error", err)
		return nil, err
	}

	after, err := s.balance(ctx, s.buyBack)
	if err != nil {
		return nil, err
	}
	proceeds, underflow := new(uint256.Int).SubOverflow(after, before)
	if underflow {
		proceeds.Clear()
	}
	return proceeds, nil
}

func (s *DefiService) balance(ctx context.Context, asset models.Asset) (*uint256.Int, error) {
	if asset.IsNative() {
		return s.assets.NativeBalance(ctx, s.platform)
	}
	return s.assets.BalanceOf(ctx, asset.Token, s.platform)
}

func (s *DefiService) push(ctx context.Context, asset models.Asset, to common.Address, amount *uint256.Int) error {
	if asset.IsNative() {
		return s.assets.SendNative(ctx, s.platform, to, amount)
	}
	return s.assets.Transfer(ctx, asset.Token, s.platform, to, amount)
}

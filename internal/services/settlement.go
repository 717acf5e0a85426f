package services

//go:generate mockgen -source=settlement.go -destination=settlement_mock_test.go -package=services

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// SupplyLedger mints and burns pegged currencies. Both calls are role gated
// on the operator and fail with the ledger's own error when denied.
type SupplyLedger interface {
	Mint(ctx context.Context, operator, currency, to common.Address, amount *uint256.Int) error
	BurnFrom(ctx context.Context, operator, currency, from common.Address, amount *uint256.Int) error
	TotalSupply(ctx context.Context, currency common.Address) (*uint256.Int, error)
}

// AssetLedger moves tokens and native coin.
type AssetLedger interface {
	TransferFrom(ctx context.Context, spender, token, from, to common.Address, amount *uint256.Int) error // Pulls using the allowance from granted to spender
	Transfer(ctx context.Context, token, from, to common.Address, amount *uint256.Int) error              // Pushes from the holder's balance
	Approve(ctx context.Context, token, owner, spender common.Address, amount *uint256.Int) error
	BalanceOf(ctx context.Context, token, account common.Address) (*uint256.Int, error)
	NativeBalance(ctx context.Context, account common.Address) (*uint256.Int, error)
	SendNative(ctx context.Context, from, to common.Address, amount *uint256.Int) error
}

// Transactor runs a function as one atomic unit. Nested calls join the outer unit.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CurrencyLookup resolves registry entries.
type CurrencyLookup interface {
	Lookup(ctx context.Context, currency common.Address) (*models.Currency, error)
}

// SettlementService executes the stablecoin leg of a swap on behalf of the
// platform account.
type SettlementService struct {
	platform common.Address
	registry CurrencyLookup
	supply   SupplyLedger
	assets   AssetLedger
	tx       Transactor
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(
	platform common.Address,
	registry CurrencyLookup,
	supply SupplyLedger,
	assets AssetLedger,
	tx Transactor,
) *SettlementService {
	return &SettlementService{
		platform: platform,
		registry: registry,
		supply:   supply,
		assets:   assets,
		tx:       tx,
	}
}

type settlementPlan struct {
	initiator common.Address
	req       models.StablecoinSwap
	origin    *models.Currency
	target    *models.Currency
	fee       bool
	pull      *uint256.Int
}

// Settle validates req and runs both legs atomically.
func (s *SettlementService) Settle(ctx context.Context, initiator common.Address, req models.StablecoinSwap) (*models.SettleResult, error) {
	var result *models.SettleResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.plan(ctx, initiator, req)
		if err != nil {
			return err
		}
		result, err = s.execute(ctx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// plan validates req and resolves both currencies. Nothing moves here; a
// mint over the cap is rejected before the origin leg can run.
func (s *SettlementService) plan(ctx context.Context, initiator common.Address, req models.StablecoinSwap) (*settlementPlan, error) {
	var zero common.Address

	switch {
	case req.Origin == zero:
		return nil, zeroValue(FieldOrigin)
	case isZeroAmount(req.OriginAmount):
		return nil, zeroValue(FieldOriginAmount)
	case req.Destination == zero:
		return nil, zeroValue(FieldDestination)
	case req.Target == zero:
		return nil, zeroValue(FieldTarget)
	case isZeroAmount(req.TargetAmount):
		return nil, zeroValue(FieldTargetAmount)
	}

	origin, err := s.registry.Lookup(ctx, req.Origin)
	if err != nil {
		return nil, err
	}
	target, err := s.registry.Lookup(ctx, req.Target)
	if err != nil {
		return nil, err
	}

	if (!origin.Eligible() || !target.Eligible()) && req.LiquiditySafe == zero {
		return nil, zeroValue(FieldLiquiditySafe)
	}
	if initiator == zero {
		return nil, zeroValue(FieldInitiator)
	}

	// A transfer origin carries the fee in the same pull into the safe.
	fee := !isZeroAmount(req.FeeAmount)
	pull := req.OriginAmount.Clone()
	if fee {
		if req.FeeCurrency == zero {
			return nil, zeroValue(FieldFeeCurrency)
		}
		if origin.Eligible() {
			if req.FeeSafe == zero {
				return nil, zeroValue(FieldFeeSafe)
			}
		} else {
			if req.FeeCurrency != req.Origin {
				return nil, ErrFeeCurrencyMismatch
			}
			if _, overflow := pull.AddOverflow(pull, req.FeeAmount); overflow {
				return nil, models.ErrAmountOverflow
			}
		}
	}

	if target.Eligible() {
		maxMint := models.AmountOrZero(target.MaxMintAmount)
		if req.TargetAmount.Gt(maxMint) {
			logger.Log.Errorw("mint exceeds cap", "currency", req.Target.Hex(), "amount", req.TargetAmount.Dec(), "max", maxMint.Dec())
			return nil, &InvalidMintBurnBoundaryError{Currency: req.Target, Amount: req.TargetAmount.Clone()}
		}
	}

	return &settlementPlan{
		initiator: initiator,
		req:       req,
		origin:    origin,
		target:    target,
		fee:       fee,
		pull:      pull,
	}, nil
}

// execute runs the origin leg, including any fee, then the target leg.
// It must be called inside a unit opened by the Transactor.
func (s *SettlementService) execute(ctx context.Context, p *settlementPlan) (*models.SettleResult, error) {
	req := p.req
	result := &models.SettleResult{
		Initiator:    p.initiator,
		Origin:       req.Origin,
		OriginAmount: req.OriginAmount.Clone(),
		Target:       req.Target,
		TargetAmount: req.TargetAmount.Clone(),
		Destination:  req.Destination,
		FeeAmount:    new(uint256.Int),
	}

	if p.origin.Eligible() {
		supply, err := s.supply.TotalSupply(ctx, req.Origin)
		if err != nil {
			return nil, err
		}
		remaining, underflow := new(uint256.Int).SubOverflow(supply, req.OriginAmount)
		if underflow || remaining.Lt(models.AmountOrZero(p.origin.MinSupplyFloor)) {
			logger.Log.Errorw("burn breaches supply floor", "currency", req.Origin.Hex(), "amount", req.OriginAmount.Dec(), "supply", supply.Dec())
			return nil, &InvalidMintBurnBoundaryError{Currency: req.Origin, Amount: req.OriginAmount.Clone()}
		}
		if err := s.supply.BurnFrom(ctx, s.platform, req.Origin, p.initiator, req.OriginAmount); err != nil {
			logger.Log.Errorw("failed to burn origin", "currency", req.Origin.Hex(), "initiator", p.initiator.Hex(), "error", err)
			return nil, err
		}
		result.OriginLeg = models.LegBurn
		if p.fee {
			if err := s.assets.TransferFrom(ctx, s.platform, req.FeeCurrency, p.initiator, req.FeeSafe, req.FeeAmount); err != nil {
				logger.Log.Errorw("failed to pull fee", "token", req.FeeCurrency.Hex(), "initiator", p.initiator.Hex(), "error", err)
				return nil, err
			}
		}
	} else {
		if err := s.assets.TransferFrom(ctx, s.platform, req.Origin, p.initiator, req.LiquiditySafe, p.pull); err != nil {
			logger.Log.Errorw("failed to pull origin", "token", req.Origin.Hex(), "initiator", p.initiator.Hex(), "amount", p.pull.Dec(), "error", err)
			return nil, err
		}
		result.OriginLeg = models.LegTransfer
	}

	if p.fee {
		result.FeeCurrency = req.FeeCurrency
		result.FeeAmount = req.FeeAmount.Clone()
	}

	if p.target.Eligible() {
		if err := s.supply.Mint(ctx, s.platform, req.Target, req.Destination, req.TargetAmount); err != nil {
			logger.Log.Errorw("failed to mint target", "currency", req.Target.Hex(), "destination", req.Destination.Hex(), "error", err)
			return nil, err
		}
		result.TargetLeg = models.LegMint
	} else {
		if err := s.assets.TransferFrom(ctx, s.platform, req.Target, req.LiquiditySafe, req.Destination, req.TargetAmount); err != nil {
			logger.Log.Errorw("failed to release target", "token", req.Target.Hex(), "safe", req.LiquiditySafe.Hex(), "error", err)
			return nil, err
		}
		result.TargetLeg = models.LegTransfer
	}

	return result, nil
}

func isZeroAmount(v *uint256.Int) bool {
	return v == nil || v.IsZero()
}

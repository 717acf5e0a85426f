package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/auth"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/metrics"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrNotPaused is returned by Unpause when swaps are running.
var ErrNotPaused = errors.New("swaps are not paused")

// SwapService is the entry point for swaps, pausing and rescue. Calls are
// serialized.
type SwapService struct {
	mu     sync.Mutex
	paused bool

	platform    common.Address
	settlement  *SettlementService
	defi        *DefiService
	assets      AssetLedger
	tx          Transactor
	kafkaWriter KafkaWriter
	tracer      trace.Tracer
	metrics     *metrics.SwapMetrics
}

// NewSwapService creates a new SwapService.
func NewSwapService(
	platform common.Address,
	settlement *SettlementService,
	defi *DefiService,
	assets AssetLedger,
	tx Transactor,
	kafkaWriter KafkaWriter,
) *SwapService {
	return &SwapService{
		platform:    platform,
		settlement:  settlement,
		defi:        defi,
		assets:      assets,
		tx:          tx,
		kafkaWriter: kafkaWriter,
		tracer:      otel.Tracer("gw-pegged-settlement/services"),
		metrics:     metrics.Swaps(),
	}
}

func (s *SwapService) start(ctx context.Context, operation string, authz *auth.Authorization) (context.Context, trace.Span, time.Time) {
	ctx, span := s.tracer.Start(ctx, "swap."+operation, trace.WithAttributes(
		attribute.String("caller", authz.Caller().Hex()),
	))
	return ctx, span, time.Now()
}

func (s *SwapService) finish(span trace.Span, operation string, started time.Time, err *error) {
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
		logger.Log.Errorw("swap operation failed", "operation", operation, "error", *err)
	}
	s.metrics.Observe(operation, *err, time.Since(started))
	span.End()
}

// guard checks the role and, for pausable operations, the pause flag.
// Callers hold s.mu.
func (s *SwapService) guard(authz *auth.Authorization, role auth.Role, pausable bool) error {
	if err := authz.Require(role); err != nil {
		return err
	}
	if pausable && s.paused {
		return ErrPaused
	}
	return nil
}

// StablecoinSwap runs the settlement leg only.
func (s *SwapService) StablecoinSwap(
	ctx context.Context,
	authz *auth.Authorization,
	initiator common.Address,
	req models.StablecoinSwap,
) (result *models.SettleResult, err error) {
	ctx, span, started := s.start(ctx, "stablecoin", authz)
	defer s.finish(span, "stablecoin", started, &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.guard(authz, auth.SwapperRole, true); err != nil {
		return nil, err
	}

	result, err = s.settlement.Settle(ctx, initiator, req)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventStablecoinSwap, authz.Caller().Hex(), settleAttributes(result)))
	return result, nil
}

// DefiSwap runs the defi leg only.
func (s *SwapService) DefiSwap(
	ctx context.Context,
	authz *auth.Authorization,
	wallet common.Address,
	req models.DefiSwap,
) (result *models.DefiResult, err error) {
	ctx, span, started := s.start(ctx, "defi", authz)
	defer s.finish(span, "defi", started, &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.guard(authz, auth.SwapperRole, true); err != nil {
		return nil, err
	}

	result, err = s.defi.ExecuteDefiLeg(ctx, authz.Caller(), wallet, req)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventDefiSwap, authz.Caller().Hex(), defiAttributes(result)))
	return result, nil
}

// Swap runs both legs in one atomic unit, settlement first when settleFirst
// is set. Both legs are validated before either executes.
func (s *SwapService) Swap(
	ctx context.Context,
	authz *auth.Authorization,
	wallet common.Address,
	settleFirst bool,
	stable models.StablecoinSwap,
	defi models.DefiSwap,
) (result *models.SwapResult, err error) {
	ctx, span, started := s.start(ctx, "combined", authz)
	span.SetAttributes(attribute.Bool("settle_first", settleFirst))
	defer s.finish(span, "combined", started, &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.guard(authz, auth.SwapperRole, true); err != nil {
		return nil, err
	}
	if err = checkWallet(wallet); err != nil {
		return nil, err
	}

	result = &models.SwapResult{SettleFirst: settleFirst}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		plan, err := s.settlement.plan(ctx, wallet, stable)
		if err != nil {
			return err
		}
		if err := s.defi.validate(defi); err != nil {
			return err
		}

		settle := func() error {
			var err error
			result.Settlement, err = s.settlement.execute(ctx, plan)
			return err
		}
		runDefi := func() error {
			var err error
			result.Defi, err = s.defi.execute(ctx, authz.Caller(), wallet, defi)
			return err
		}

		first, second := settle, runDefi
		if !settleFirst {
			first, second = runDefi, settle
		}
		if err := first(); err != nil {
			return err
		}
		return second()
	})
	if err != nil {
		return nil, err
	}

	attrs := settleAttributes(result.Settlement)
	for k, v := range defiAttributes(result.Defi) {
		attrs["defi_"+k] = v
	}
	attrs["settle_first"] = strconv.FormatBool(settleFirst)
	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventSwap, authz.Caller().Hex(), attrs))

	return result, nil
}

// StablecoinToDefiSwap settles first, then runs the defi leg.
func (s *SwapService) StablecoinToDefiSwap(
	ctx context.Context,
	authz *auth.Authorization,
	wallet common.Address,
	stable models.StablecoinSwap,
	defi models.DefiSwap,
) (*models.SwapResult, error) {
	return s.Swap(ctx, authz, wallet, true, stable, defi)
}

// DefiToStablecoinSwap runs the defi leg first, then settles.
func (s *SwapService) DefiToStablecoinSwap(
	ctx context.Context,
	authz *auth.Authorization,
	wallet common.Address,
	stable models.StablecoinSwap,
	defi models.DefiSwap,
) (*models.SwapResult, error) {
	return s.Swap(ctx, authz, wallet, false, stable, defi)
}

// RescueCrypto sends amount of asset held by the platform to the caller.
// It works while paused.
func (s *SwapService) RescueCrypto(
	ctx context.Context,
	authz *auth.Authorization,
	asset models.Asset,
	amount *uint256.Int,
) (err error) {
	ctx, span, started := s.start(ctx, "rescue", authz)
	defer s.finish(span, "rescue", started, &err)
	defer func() { s.metrics.ObserveRescue(asset.IsNative(), err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.guard(authz, auth.SupportRole, false); err != nil {
		return err
	}
	if !asset.IsSet() {
		return zeroValue(FieldAsset)
	}
	amount = models.AmountOrZero(amount)
	caller := authz.Caller()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var (
			balance *uint256.Int
			err     error
		)
		if asset.IsNative() {
			balance, err = s.assets.NativeBalance(ctx, s.platform)
		} else {
			balance, err = s.assets.BalanceOf(ctx, asset.Token, s.platform)
		}
		if err != nil {
			return err
		}
		if balance.Lt(amount) {
			return &SendFailedError{Asset: asset, Amount: amount.Clone(), Err: models.ErrInsufficientBalance}
		}

		if asset.IsNative() {
			err = s.assets.SendNative(ctx, s.platform, caller, amount)
		} else {
			err = s.assets.Transfer(ctx, asset.Token, s.platform, caller, amount)
		}
		if err != nil {
			return &SendFailedError{Asset: asset, Amount: amount.Clone(), Err: err}
		}
		return nil
	})
	if err != nil {
		return err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventRescue, caller.Hex(), map[string]string{
		"asset":  asset.String(),
		"amount": amount.Dec(),
		"to":     caller.Hex(),
	}))
	return nil
}

// Pause stops all swaps until Unpause.
func (s *SwapService) Pause(ctx context.Context, authz *auth.Authorization) error {
	return s.setPaused(ctx, authz, true)
}

// Unpause resumes swaps.
func (s *SwapService) Unpause(ctx context.Context, authz *auth.Authorization) error {
	return s.setPaused(ctx, authz, false)
}

// Paused reports whether swaps are paused.
func (s *SwapService) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *SwapService) setPaused(ctx context.Context, authz *auth.Authorization, paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := authz.Require(auth.PauserRole); err != nil {
		logger.Log.Errorw("pause change denied", "caller", authz.Caller().Hex(), "error", err)
		return err
	}
	if s.paused == paused {
		if paused {
			return ErrPaused
		}
		return ErrNotPaused
	}

	s.paused = paused
	s.metrics.SetPaused(paused)

	eventType := models.EventUnpaused
	if paused {
		eventType = models.EventPaused
	}
	logger.Log.Infow("pause state changed", "paused", paused, "caller", authz.Caller().Hex())
	publishEvent(ctx, s.kafkaWriter, newEvent(eventType, authz.Caller().Hex(), map[string]string{
		"paused": strconv.FormatBool(paused),
	}))
	return nil
}

func settleAttributes(r *models.SettleResult) map[string]string {
	if r == nil {
		return map[string]string{}
	}
	attrs := map[string]string{
		"initiator":     r.Initiator.Hex(),
		"origin":        r.Origin.Hex(),
		"origin_leg":    string(r.OriginLeg),
		"origin_amount": r.OriginAmount.Dec(),
		"target":        r.Target.Hex(),
		"target_leg":    string(r.TargetLeg),
		"target_amount": r.TargetAmount.Dec(),
		"destination":   r.Destination.Hex(),
	}
	if !isZeroAmount(r.FeeAmount) {
		attrs["fee_currency"] = r.FeeCurrency.Hex()
		attrs["fee_amount"] = r.FeeAmount.Dec()
	}
	return attrs
}

func defiAttributes(r *models.DefiResult) map[string]string {
	if r == nil {
		return map[string]string{}
	}
	return map[string]string{
		"wallet":        r.Wallet.Hex(),
		"wallet_called": strconv.FormatBool(r.WalletCalled),
		"asset":         r.Asset.String(),
		"bought_back":   r.BoughtBack.Dec(),
		"referral_paid": r.ReferralPaid.Dec(),
		"remainder":     r.Remainder.Dec(),
	}
}

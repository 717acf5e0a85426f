package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/auth"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// StablecoinSwapper runs the settlement leg.
type StablecoinSwapper interface {
	StablecoinSwap(ctx context.Context, authz *auth.Authorization, initiator common.Address, req models.StablecoinSwap) (*models.SettleResult, error)
}

// DefiSwapper runs the defi leg.
type DefiSwapper interface {
	DefiSwap(ctx context.Context, authz *auth.Authorization, wallet common.Address, req models.DefiSwap) (*models.DefiResult, error)
}

// Swapper runs both legs in the requested order.
type Swapper interface {
	Swap(ctx context.Context, authz *auth.Authorization, wallet common.Address, settleFirst bool, stable models.StablecoinSwap, defi models.DefiSwap) (*models.SwapResult, error)
}

// StablecoinToDefiSwapper settles, then runs the defi leg.
type StablecoinToDefiSwapper interface {
	StablecoinToDefiSwap(ctx context.Context, authz *auth.Authorization, wallet common.Address, stable models.StablecoinSwap, defi models.DefiSwap) (*models.SwapResult, error)
}

// DefiToStablecoinSwapper runs the defi leg, then settles.
type DefiToStablecoinSwapper interface {
	DefiToStablecoinSwap(ctx context.Context, authz *auth.Authorization, wallet common.Address, stable models.StablecoinSwap, defi models.DefiSwap) (*models.SwapResult, error)
}

// StablecoinLeg is the settlement leg of a request. Amounts are decimal strings.
// swagger:model StablecoinLeg
type StablecoinLeg struct {
	LiquiditySafe string `json:"liquidity_safe"`
	Destination   string `json:"destination"`
	Origin        string `json:"origin"`
	OriginAmount  string `json:"origin_amount"`
	Target        string `json:"target"`
	TargetAmount  string `json:"target_amount"`
	FeeCurrency   string `json:"fee_currency,omitempty"`
	FeeSafe       string `json:"fee_safe,omitempty"`
	FeeAmount     string `json:"fee_amount,omitempty"`
}

func (l StablecoinLeg) toModel() (models.StablecoinSwap, error) {
	var (
		m   models.StablecoinSwap
		err error
	)
	addresses := []struct {
		field string
		value string
		dst   *common.Address
	}{
		{"liquidity_safe", l.LiquiditySafe, &m.LiquiditySafe},
		{"destination", l.Destination, &m.Destination},
		{"origin", l.Origin, &m.Origin},
		{"target", l.Target, &m.Target},
		{"fee_currency", l.FeeCurrency, &m.FeeCurrency},
		{"fee_safe", l.FeeSafe, &m.FeeSafe},
	}
	for _, a := range addresses {
		if *a.dst, err = parseAddress(a.field, a.value); err != nil {
			return m, err
		}
	}
	if m.OriginAmount, err = parseAmount("origin_amount", l.OriginAmount); err != nil {
		return m, err
	}
	if m.TargetAmount, err = parseAmount("target_amount", l.TargetAmount); err != nil {
		return m, err
	}
	if m.FeeAmount, err = parseAmount("fee_amount", l.FeeAmount); err != nil {
		return m, err
	}
	return m, nil
}

// DefiLeg is the wallet call, buy-back and referral leg of a request.
// Payloads are 0x-prefixed hex. fee_token is "native" or a token address.
// swagger:model DefiLeg
type DefiLeg struct {
	WalletData  string `json:"wallet_data,omitempty"`
	Aggregator  string `json:"aggregator,omitempty"`
	SwapData    string `json:"swap_data,omitempty"`
	FeeToken    string `json:"fee_token,omitempty"`
	Referrer    string `json:"referrer,omitempty"`
	ReferralFee string `json:"referral_fee,omitempty"`
	Plugin      string `json:"plugin,omitempty"`
}

func (l DefiLeg) toModel() (models.DefiSwap, error) {
	var (
		m   models.DefiSwap
		err error
	)
	if m.WalletData, err = parseBytes("wallet_data", l.WalletData); err != nil {
		return m, err
	}
	if m.Aggregator, err = parseAddress("aggregator", l.Aggregator); err != nil {
		return m, err
	}
	if m.SwapData, err = parseBytes("swap_data", l.SwapData); err != nil {
		return m, err
	}
	if m.FeeToken, err = parseAsset("fee_token", l.FeeToken); err != nil {
		return m, err
	}
	if m.Referrer, err = parseAddress("referrer", l.Referrer); err != nil {
		return m, err
	}
	if m.ReferralFee, err = parseAmount("referral_fee", l.ReferralFee); err != nil {
		return m, err
	}
	if m.Plugin, err = parseAddress("plugin", l.Plugin); err != nil {
		return m, err
	}
	return m, nil
}

// StablecoinSwapRequest represents the JSON body of a settlement-only swap
// swagger:model StablecoinSwapRequest
type StablecoinSwapRequest struct {
	// Account the origin leg pulls from
	// required: true
	Initiator  string        `json:"initiator"`
	Stablecoin StablecoinLeg `json:"stablecoin"`
}

// DefiSwapRequest represents the JSON body of a defi-only swap
// swagger:model DefiSwapRequest
type DefiSwapRequest struct {
	// Wallet executing wallet_data
	// required: true
	Wallet string  `json:"wallet"`
	Defi   DefiLeg `json:"defi"`
}

// SwapRequest represents the JSON body of a combined swap
// swagger:model SwapRequest
type SwapRequest struct {
	// Wallet executing wallet_data and initiating the settlement
	// required: true
	Wallet string `json:"wallet"`

	// Settle before the defi leg
	SettleFirst bool          `json:"settle_first"`
	Stablecoin  StablecoinLeg `json:"stablecoin"`
	Defi        DefiLeg       `json:"defi"`
}

// SettleResponse reports a settlement
// swagger:model SettleResponse
type SettleResponse struct {
	Initiator    string `json:"initiator"`
	Origin       string `json:"origin"`
	OriginLeg    string `json:"origin_leg"`
	OriginAmount string `json:"origin_amount"`
	Target       string `json:"target"`
	TargetLeg    string `json:"target_leg"`
	TargetAmount string `json:"target_amount"`
	Destination  string `json:"destination"`
	FeeCurrency  string `json:"fee_currency,omitempty"`
	FeeAmount    string `json:"fee_amount,omitempty"`
}

// DefiResponse reports a defi leg
// swagger:model DefiResponse
type DefiResponse struct {
	Wallet       string `json:"wallet"`
	WalletCalled bool   `json:"wallet_called"`
	Asset        string `json:"asset,omitempty"`
	BoughtBack   string `json:"bought_back"`
	ReferralPaid string `json:"referral_paid"`
	Remainder    string `json:"remainder"`
}

// SwapResponse reports a combined swap
// swagger:model SwapResponse
type SwapResponse struct {
	SettleFirst bool            `json:"settle_first"`
	Settlement  *SettleResponse `json:"settlement"`
	Defi        *DefiResponse   `json:"defi"`
}

func newSettleResponse(r *models.SettleResult) *SettleResponse {
	if r == nil {
		return nil
	}
	resp := &SettleResponse{
		Initiator:    r.Initiator.Hex(),
		Origin:       r.Origin.Hex(),
		OriginLeg:    string(r.OriginLeg),
		OriginAmount: amountString(r.OriginAmount),
		Target:       r.Target.Hex(),
		TargetLeg:    string(r.TargetLeg),
		TargetAmount: amountString(r.TargetAmount),
		Destination:  r.Destination.Hex(),
	}
	if r.FeeCurrency != (common.Address{}) {
		resp.FeeCurrency = r.FeeCurrency.Hex()
		resp.FeeAmount = amountString(r.FeeAmount)
	}
	return resp
}

func newDefiResponse(r *models.DefiResult) *DefiResponse {
	if r == nil {
		return nil
	}
	return &DefiResponse{
		Wallet:       r.Wallet.Hex(),
		WalletCalled: r.WalletCalled,
		Asset:        r.Asset.String(),
		BoughtBack:   amountString(r.BoughtBack),
		ReferralPaid: amountString(r.ReferralPaid),
		Remainder:    amountString(r.Remainder),
	}
}

func newSwapResponse(r *models.SwapResult) SwapResponse {
	return SwapResponse{
		SettleFirst: r.SettleFirst,
		Settlement:  newSettleResponse(r.Settlement),
		Defi:        newDefiResponse(r.Defi),
	}
}

// NewStablecoinSwapHandler returns an HTTP handler for settlement-only swaps.
// @Summary Settle a pegged-currency swap
// @Description Burns or pulls the origin leg and mints or transfers the target leg atomically. Requires SWAPPER_ROLE.
// @Tags swaps
// @Accept json
// @Produce json
// @Param stablecoinSwapRequest body handlers.StablecoinSwapRequest true "Settlement request"
// @Success 200 {object} handlers.SettleResponse
// @Failure 400 {object} handlers.ErrorResponse "Zero value input or mint/burn boundary violation"
// @Failure 403 {object} handlers.ErrorResponse "Missing role"
// @Failure 409 {object} handlers.ErrorResponse "Swaps are paused"
// @Failure 422 {object} handlers.ErrorResponse "Ledger rejected a transfer"
// @Router /swaps/stablecoin [post]
// @Security BearerAuth
func NewStablecoinSwapHandler(svc StablecoinSwapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StablecoinSwapRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		initiator, err := parseAddress("initiator", req.Initiator)
		if err != nil {
			writeError(w, err)
			return
		}
		stable, err := req.Stablecoin.toModel()
		if err != nil {
			writeError(w, err)
			return
		}

		result, err := svc.StablecoinSwap(r.Context(), auth.FromContext(r.Context()), initiator, stable)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newSettleResponse(result))
	}
}

// NewDefiSwapHandler returns an HTTP handler for defi-only swaps.
// @Summary Run a defi leg
// @Description Executes the wallet call, buy-back and referral payout. Requires SWAPPER_ROLE.
// @Tags swaps
// @Accept json
// @Produce json
// @Param defiSwapRequest body handlers.DefiSwapRequest true "Defi request"
// @Success 200 {object} handlers.DefiResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Failure 502 {object} handlers.ErrorResponse "Wallet or aggregator call reverted"
// @Router /swaps/defi [post]
// @Security BearerAuth
func NewDefiSwapHandler(svc DefiSwapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DefiSwapRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		wallet, err := parseAddress("wallet", req.Wallet)
		if err != nil {
			writeError(w, err)
			return
		}
		defi, err := req.Defi.toModel()
		if err != nil {
			writeError(w, err)
			return
		}

		result, err := svc.DefiSwap(r.Context(), auth.FromContext(r.Context()), wallet, defi)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newDefiResponse(result))
	}
}

// NewSwapHandler returns an HTTP handler for combined swaps.
// @Summary Run both legs atomically
// @Description Validates both legs, then runs them in the order given by settle_first. Requires SWAPPER_ROLE.
// @Tags swaps
// @Accept json
// @Produce json
// @Param swapRequest body handlers.SwapRequest true "Combined request"
// @Success 200 {object} handlers.SwapResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /swaps [post]
// @Security BearerAuth
func NewSwapHandler(svc Swapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SwapRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		wallet, stable, defi, err := req.legs()
		if err != nil {
			writeError(w, err)
			return
		}

		result, err := svc.Swap(r.Context(), auth.FromContext(r.Context()), wallet, req.SettleFirst, stable, defi)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newSwapResponse(result))
	}
}

// NewStablecoinToDefiSwapHandler returns an HTTP handler that settles first.
// settle_first in the body is ignored.
// @Summary Settle, then run the defi leg
// @Tags swaps
// @Accept json
// @Produce json
// @Param swapRequest body handlers.SwapRequest true "Combined request"
// @Success 200 {object} handlers.SwapResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /swaps/stablecoin-to-defi [post]
// @Security BearerAuth
func NewStablecoinToDefiSwapHandler(svc StablecoinToDefiSwapper) http.HandlerFunc {
	return newOrderedSwapHandler(svc.StablecoinToDefiSwap)
}

// NewDefiToStablecoinSwapHandler returns an HTTP handler that runs the defi
// leg first. settle_first in the body is ignored.
// @Summary Run the defi leg, then settle
// @Tags swaps
// @Accept json
// @Produce json
// @Param swapRequest body handlers.SwapRequest true "Combined request"
// @Success 200 {object} handlers.SwapResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /swaps/defi-to-stablecoin [post]
// @Security BearerAuth
func NewDefiToStablecoinSwapHandler(svc DefiToStablecoinSwapper) http.HandlerFunc {
	return newOrderedSwapHandler(svc.DefiToStablecoinSwap)
}

type orderedSwapFunc func(ctx context.Context, authz *auth.Authorization, wallet common.Address, stable models.StablecoinSwap, defi models.DefiSwap) (*models.SwapResult, error)

func newOrderedSwapHandler(swap orderedSwapFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SwapRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		wallet, stable, defi, err := req.legs()
		if err != nil {
			writeError(w, err)
			return
		}

		result, err := swap(r.Context(), auth.FromContext(r.Context()), wallet, stable, defi)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newSwapResponse(result))
	}
}

func (req SwapRequest) legs() (common.Address, models.StablecoinSwap, models.DefiSwap, error) {
	wallet, err := parseAddress("wallet", req.Wallet)
	if err != nil {
		return common.Address{}, models.StablecoinSwap{}, models.DefiSwap{}, err
	}
	stable, err := req.Stablecoin.toModel()
	if err != nil {
		return common.Address{}, models.StablecoinSwap{}, models.DefiSwap{}, err
	}
	defi, err := req.Defi.toModel()
	if err != nil {
		return common.Address{}, models.StablecoinSwap{}, models.DefiSwap{}, err
	}
	return wallet, stable, defi, nil
}

package services_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/auth"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/services"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/storage/memory"
	"github.com/stretchr/testify/require"
)

var (
	platform    = common.HexToAddress("0x00000000000000000000000000000000000000f0")
	maintainer  = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	initiator   = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	destination = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	safe        = common.HexToAddress("0x00000000000000000000000000000000000000d1")
	feeSafe     = common.HexToAddress("0x00000000000000000000000000000000000000d2")
	wallet      = common.HexToAddress("0x00000000000000000000000000000000000000e1")
	aggregator  = common.HexToAddress("0x00000000000000000000000000000000000000e2")
	plugin      = common.HexToAddress("0x00000000000000000000000000000000000000e3")
	referrer    = common.HexToAddress("0x00000000000000000000000000000000000000e4")

	eUSD = common.HexToAddress("0x0000000000000000000000000000000000000e01")
	eMXN = common.HexToAddress("0x0000000000000000000000000000000000000e02")
	usdc = common.HexToAddress("0x0000000000000000000000000000000000000c01")
	gov  = common.HexToAddress("0x0000000000000000000000000000000000000c02")
)

func amt(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

func mustDec(t *testing.T, s string) *uint256.Int {
	t.Helper()
	v, err := uint256.FromDecimal(s)
	require.NoError(t, err)
	return v
}

type fixture struct {
	store      *memory.Store
	registry   *services.RegistryService
	settlement *services.SettlementService
	defi       *services.DefiService
}

// newFixture returns services over a fresh in-memory ledger. The platform
// may mint and burn eUSD and eMXN, both registered with a 1e9 cap and no floor.
func newFixture(t *testing.T, wallets services.WalletCaller, aggregators services.AggregatorCaller) *fixture {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	registry := services.NewRegistryService(store.Currencies(), store.Currencies(), nil, nil)

	for _, c := range []common.Address{eUSD, eMXN} {
		require.NoError(t, store.Grant(ctx, c, auth.MinterRole.ID, platform))
		require.NoError(t, store.Grant(ctx, c, auth.BurnerRole.ID, platform))
		setCurrency(t, registry, c, true, amt(1_000_000_000), amt(0))
	}

	return &fixture{
		store:      store,
		registry:   registry,
		settlement: services.NewSettlementService(platform, registry, store, store, store),
		defi:       services.NewDefiService(platform, models.TokenAsset(gov), store, wallets, aggregators, store),
	}
}

func setCurrency(t *testing.T, registry *services.RegistryService, currency common.Address, registered bool, maxMint, minFloor *uint256.Int) {
	t.Helper()
	authz := auth.NewAuthorization(maintainer, auth.MaintainerRole)
	_, err := registry.SetCurrency(context.Background(), authz, currency, registered, maxMint, minFloor)
	require.NoError(t, err)
}

// fund credits amount of token to account and lets the platform pull it.
func (f *fixture) fund(t *testing.T, token, account common.Address, amount *uint256.Int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.store.Credit(ctx, token, account, amount))
	allowed, err := f.store.Allowance(ctx, token, account, platform)
	require.NoError(t, err)
	require.NoError(t, f.store.Approve(ctx, token, account, platform, new(uint256.Int).Add(allowed, amount)))
}

func (f *fixture) balance(t *testing.T, token, account common.Address) *uint256.Int {
	t.Helper()
	v, err := f.store.BalanceOf(context.Background(), token, account)
	require.NoError(t, err)
	return v
}

func (f *fixture) native(t *testing.T, account common.Address) *uint256.Int {
	t.Helper()
	v, err := f.store.NativeBalance(context.Background(), account)
	require.NoError(t, err)
	return v
}

func (f *fixture) supply(t *testing.T, currency common.Address) *uint256.Int {
	t.Helper()
	v, err := f.store.TotalSupply(context.Background(), currency)
	require.NoError(t, err)
	return v
}
